package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

// TestimonialHandler serves player reviews.
type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

func (r testimonialRequest) toInput() ports.TestimonialInput {
	return ports.TestimonialInput{
		Name:        r.Name,
		AvatarURL:   r.AvatarURL,
		Comment:     r.Comment,
		Rating:      r.Rating,
		InitialRank: r.InitialRank,
		CurrentRank: r.CurrentRank,
	}
}

// ListApproved handles GET /api/testimonials.
//
// @Summary      List approved testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	items, err := h.service.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListPending handles GET /api/testimonials/all.
//
// @Summary      List testimonials awaiting approval
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Testimonial
// @Failure      403  {object}  errorResponse
// @Router       /api/testimonials/all [get]
func (h *TestimonialHandler) ListPending(c echo.Context) error {
	items, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Stats handles GET /api/testimonials/stats.
//
// @Summary      Testimonial statistics
// @Tags         testimonials
// @Produce      json
// @Success      200  {object}  domain.TestimonialStats
// @Router       /api/testimonials/stats [get]
func (h *TestimonialHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Get handles GET /api/testimonials/:id.
//
// @Summary      Get a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial ID"
// @Success      200  {object}  domain.Testimonial
// @Failure      404  {object}  errorResponse
// @Router       /api/testimonials/{id} [get]
func (h *TestimonialHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/testimonials. New testimonials await approval.
//
// @Summary      Submit a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      testimonialRequest  true  "Testimonial"
// @Success      201   {object}  domain.Testimonial
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req testimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.service.Create(c.Request().Context(), p.ID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/testimonials/:id.
//
// @Summary      Update a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Testimonial ID"
// @Param        body  body      testimonialRequest  true  "Testimonial"
// @Success      200   {object}  domain.Testimonial
// @Failure      404   {object}  errorResponse
// @Router       /api/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	var req testimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Approve handles PUT /api/testimonials/:id/approve.
//
// @Summary      Approve a testimonial
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Testimonial ID"
// @Success      200  {object}  domain.Testimonial
// @Failure      404  {object}  errorResponse
// @Router       /api/testimonials/{id}/approve [put]
func (h *TestimonialHandler) Approve(c echo.Context) error {
	item, err := h.service.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/testimonials/:id.
//
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Security     BearerAuth
// @Param        id   path  string  true  "Testimonial ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
