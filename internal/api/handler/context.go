package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// principal returns the caller bound by the authentication gate. Routes behind
// Authorize normally guarantee one; the check keeps handlers safe if mounted
// elsewhere.
func principal(c echo.Context) (*domain.Principal, error) {
	p, ok := domain.PrincipalFromContext(c.Request().Context())
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

// bindAndValidate decodes the request body into req and runs struct validation.
// Decode failures are 400, validation failures 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
