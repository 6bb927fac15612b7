package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

// ProfileHandler serves the caller's own account and preferences.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (r updateProfileRequest) toUpdate() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Username:          r.Username,
		Tier:              r.Tier,
		Division:          r.Division,
		RiotID:            r.RiotID,
		MainRole:          r.MainRole,
		FavoriteChampions: r.FavoriteChampions,
	}
}

// Get handles GET /api/user/profile.
//
// @Summary      Get the caller's profile
// @Description  Returns the account and its preferences, creating default preferences on first access.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Router       /api/user/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	profile, err := h.service.Get(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/user/profile.
//
// @Summary      Update the caller's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile changes"
// @Success      200   {object}  domain.Profile
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/user/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := h.service.Update(c.Request().Context(), p, req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
