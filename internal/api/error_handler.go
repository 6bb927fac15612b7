package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/pkg/logger"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, domain.ErrBadCredentials.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict, "email is already in use"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "username is already taken"
	case errors.Is(err, domain.ErrDuplicateBooking):
		return http.StatusConflict, domain.ErrDuplicateBooking.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrContentNotFound),
		errors.Is(err, domain.ErrTestimonialNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, rootMessage(err)
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrServiceInactive):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	reqLog := logger.FromContext(c.Request().Context(), log)
	reqLog.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// rootMessage returns the message of the sentinel at the bottom of err's
// chain, dropping any operation prefixes added while wrapping.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
