package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/api/metrics"
	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

// BookingHandler exposes bookings to authenticated callers.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings.
//
// @Summary      Book a coaching service
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking"
// @Success      201   {object}  domain.Booking
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.BookingsRejectedTotal.WithLabelValues("invalid").Inc()
		return err
	}

	b, err := h.service.Create(c.Request().Context(), p, ports.CreateBookingInput{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateBooking):
			metrics.BookingsRejectedTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrServiceInactive):
			metrics.BookingsRejectedTotal.WithLabelValues("inactive_service").Inc()
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.BookingsRejectedTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, b)
}

// ListMine handles GET /api/bookings.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.service.ListMine(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListForCoach handles GET /api/bookings/coach. Admins see every booking.
//
// @Summary      List bookings assigned to the calling coach
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      403  {object}  errorResponse
// @Router       /api/bookings/coach [get]
func (h *BookingHandler) ListForCoach(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.service.ListForCoach(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/bookings/:id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	b, err := h.service.Get(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// Cancel handles PUT /api/bookings/:id/cancel.
//
// @Summary      Cancel one of the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/bookings/{id}/cancel [put]
func (h *BookingHandler) Cancel(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	b, err := h.service.Cancel(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// UpdateStatus handles PUT /api/bookings/:id/status.
//
// @Summary      Move a booking through its lifecycle
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Booking ID"
// @Param        body  body      updateBookingStatusRequest  true  "New status"
// @Success      200   {object}  domain.Booking
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req updateBookingStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	b, err := h.service.UpdateStatus(c.Request().Context(), p, c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /api/bookings/:id.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id   path  string  true  "Booking ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
