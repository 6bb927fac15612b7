package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/api/metrics"
	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// PublicRoute names a registered route pattern (as reported by echo.Context.Path)
// that anonymous callers may reach.
type PublicRoute struct {
	Method string
	Path   string
}

func (r PublicRoute) key() string { return r.Method + " " + r.Path }

// Authorize rejects anonymous requests to any route outside the public
// allow-list. It must run after Authenticate and after routing.
func Authorize(public ...PublicRoute) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(public))
	for _, r := range public {
		allowed[r.key()] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := domain.PrincipalFromContext(c.Request().Context()); ok {
				return next(c)
			}
			if _, ok := allowed[PublicRoute{Method: c.Request().Method, Path: c.Path()}.key()]; ok {
				return next(c)
			}
			return deny(http.StatusUnauthorized, domain.ErrUnauthenticated)
		}
	}
}

// RequireRoles lets through only principals holding one of roles.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := domain.PrincipalFromContext(c.Request().Context())
			if !ok {
				return deny(http.StatusUnauthorized, domain.ErrUnauthenticated)
			}
			if !p.HasRole(roles...) {
				return deny(http.StatusForbidden, domain.ErrForbidden)
			}
			return next(c)
		}
	}
}

func deny(status int, err error) error {
	metrics.AccessDeniedTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	return err
}
