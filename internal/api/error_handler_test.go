package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"bad credentials", domain.ErrBadCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"anonymous", domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{"forbidden", fmt.Errorf("get booking: %w", domain.ErrForbidden), http.StatusForbidden, "access forbidden"},
		{"email in use", fmt.Errorf("register: %w", domain.ErrEmailInUse), http.StatusConflict, "email is already in use"},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, "username is already taken"},
		{"duplicate booking", domain.ErrDuplicateBooking, http.StatusConflict, "booking already submitted"},
		{"not found", fmt.Errorf("find booking: %w", domain.ErrBookingNotFound), http.StatusNotFound, "booking not found"},
		{"transition", fmt.Errorf("%w: COMPLETED to PENDING", domain.ErrInvalidTransition), http.StatusUnprocessableEntity, "invalid status transition: COMPLETED to PENDING"},
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "email must be a valid email"), http.StatusUnprocessableEntity, "email must be a valid email"},
		{"unexpected", errors.New("mongo: socket closed"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.code, rec.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestHTTPErrorHandler_TokenErrorsNeverLeak(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(fmt.Errorf("validate: %w", domain.ErrTokenExpired), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "expired")
}
