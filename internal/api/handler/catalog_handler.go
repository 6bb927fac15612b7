package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

// CatalogHandler serves the coaching services catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (r serviceRequest) toInput() ports.ServiceInput {
	return ports.ServiceInput{
		Title:           r.Title,
		Description:     r.Description,
		Price:           r.Price,
		Type:            domain.ServiceType(r.Type),
		ImageURL:        r.ImageURL,
		Features:        r.Features,
		DurationMinutes: r.DurationMinutes,
		Popular:         r.Popular,
		CoachID:         r.CoachID,
	}
}

// List handles GET /api/services.
//
// @Summary      List coaching services
// @Tags         services
// @Produce      json
// @Param        type     query     string  false  "Service type"  Enums(INDIVIDUAL, MONTHLY, COURSE, GUIDE, TEAM)
// @Param        popular  query     bool    false  "Only popular services"
// @Param        all      query     bool    false  "Include inactive services (staff only)"
// @Success      200      {array}   domain.CoachingService
// @Failure      400      {object}  errorResponse
// @Router       /api/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.ServiceFilter{
		Type: domain.ServiceType(strings.ToUpper(c.QueryParam("type"))),
	}
	filter.PopularOnly, _ = strconv.ParseBool(c.QueryParam("popular"))

	if all, _ := strconv.ParseBool(c.QueryParam("all")); all {
		p, _ := domain.PrincipalFromContext(c.Request().Context())
		filter.IncludeInactive = p.HasRole(domain.RoleAdmin, domain.RoleCoach)
	}

	services, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Get handles GET /api/services/:id.
//
// @Summary      Get a coaching service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  domain.CoachingService
// @Failure      404  {object}  errorResponse
// @Router       /api/services/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	svc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Create handles POST /api/services.
//
// @Summary      Create a coaching service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service"
// @Success      201   {object}  domain.CoachingService
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /api/services/:id.
//
// @Summary      Update a coaching service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Service ID"
// @Param        body  body      serviceRequest  true  "Service"
// @Success      200   {object}  domain.CoachingService
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Deactivate handles DELETE /api/services/:id. The service is hidden, not removed.
//
// @Summary      Deactivate a coaching service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/services/{id} [delete]
func (h *CatalogHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "service deactivated"})
}
