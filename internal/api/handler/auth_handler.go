package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/api/metrics"
	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

const tokenType = "Bearer"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func toAuthResponse(res *ports.AuthResult) authResponse {
	return authResponse{
		Token:    res.Token,
		Type:     tokenType,
		ID:       res.User.ID,
		Username: res.User.Username,
		Email:    res.User.Email,
		Role:     res.User.Role,
	}
}

// Register creates a new USER account and returns a token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, toAuthResponse(res))
}

// Login authenticates a user and returns a JWT.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toAuthResponse(res))
}

// Me returns the authenticated caller.
//
// @Summary      Current caller
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  principalResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p := h.authService.CurrentCaller(c.Request().Context())
	if p == nil {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, principalResponse{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		Role:      p.Role,
		Authority: p.Authority,
	})
}
