package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

// ContentHandler serves articles, videos, guides and analyses.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (r contentRequest) toInput() ports.ContentInput {
	return ports.ContentInput{
		Title:        r.Title,
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
		ContentURL:   r.ContentURL,
		Type:         domain.ContentType(r.Type),
		Tags:         r.Tags,
		Premium:      r.Premium,
		Body:         r.Content,
	}
}

// List handles GET /api/content.
//
// @Summary      List published content
// @Tags         content
// @Produce      json
// @Param        type     query     string  false  "Content type"  Enums(ARTICLE, VIDEO, GUIDE, ANALYSIS)
// @Param        premium  query     bool    false  "Premium flag"
// @Param        search   query     string  false  "Matches title or description"
// @Success      200      {array}   domain.Content
// @Failure      400      {object}  errorResponse
// @Router       /api/content [get]
func (h *ContentHandler) List(c echo.Context) error {
	filter := ports.ContentFilter{
		Type:   domain.ContentType(strings.ToUpper(c.QueryParam("type"))),
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("premium"); raw != "" {
		premium, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "premium must be a boolean")
		}
		filter.Premium = &premium
	}

	items, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Latest handles GET /api/content/latest.
//
// @Summary      Latest published content
// @Tags         content
// @Produce      json
// @Param        limit  query     int  false  "Maximum items (default 5, max 50)"
// @Success      200    {array}   domain.Content
// @Router       /api/content/latest [get]
func (h *ContentHandler) Latest(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.service.Latest(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/content/:id.
//
// @Summary      Get a content item
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  domain.Content
// @Failure      404  {object}  errorResponse
// @Router       /api/content/{id} [get]
func (h *ContentHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/content. The caller becomes the author.
//
// @Summary      Create content
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contentRequest  true  "Content"
// @Success      201   {object}  domain.Content
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/content [post]
func (h *ContentHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.service.Create(c.Request().Context(), p.ID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/content/:id.
//
// @Summary      Update content
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Content ID"
// @Param        body  body      contentRequest  true  "Content"
// @Success      200   {object}  domain.Content
// @Failure      404   {object}  errorResponse
// @Router       /api/content/{id} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Publish handles PUT /api/content/:id/publish.
//
// @Summary      Publish content
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  domain.Content
// @Failure      404  {object}  errorResponse
// @Router       /api/content/{id}/publish [put]
func (h *ContentHandler) Publish(c echo.Context) error {
	item, err := h.service.Publish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/content/:id.
//
// @Summary      Delete content
// @Tags         content
// @Security     BearerAuth
// @Param        id   path  string  true  "Content ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/content/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
