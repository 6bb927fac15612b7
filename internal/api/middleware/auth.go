package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/api/metrics"
	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
	"github.com/esportscoach/coaching-platform/internal/infrastructure/security"
	"github.com/esportscoach/coaching-platform/pkg/logger"
)

const bearerPrefix = "Bearer "

// Authenticate binds the caller's principal to the request context when the
// Authorization header carries a valid bearer token. It never rejects a
// request: missing, invalid or unresolvable credentials leave the request
// anonymous and Authorize decides whether that is acceptable.
func Authenticate(codec ports.TokenCodec, resolver ports.PrincipalResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqLog := logger.FromContext(req.Context(), log)
			if p := authenticate(req.Context(), req.Header.Get(echo.HeaderAuthorization), codec, resolver, reqLog); p != nil {
				c.SetRequest(req.WithContext(domain.ContextWithPrincipal(req.Context(), p)))
			}
			return next(c)
		}
	}
}

func authenticate(ctx context.Context, header string, codec ports.TokenCodec, resolver ports.PrincipalResolver, log zerolog.Logger) (p *domain.Principal) {
	defer func() {
		if r := recover(); r != nil {
			metrics.TokenValidationFailuresTotal.WithLabelValues("panic").Inc()
			log.Error().Str("panic", fmt.Sprint(r)).Msg("authentication gate recovered from panic")
			p = nil
		}
	}()

	token, ok := bearerToken(header)
	if !ok {
		return nil
	}

	subject, err := codec.Validate(token)
	if err != nil {
		reason := security.Reason(err)
		metrics.TokenValidationFailuresTotal.WithLabelValues(reason).Inc()
		log.Warn().Err(err).Str("reason", reason).Msg("bearer token rejected")
		return nil
	}

	principal, err := resolver.ResolveBySubject(ctx, subject)
	if err != nil {
		reason := "resolve_error"
		if errors.Is(err, domain.ErrUserNotFound) {
			reason = "unknown_subject"
		}
		metrics.TokenValidationFailuresTotal.WithLabelValues(reason).Inc()
		log.Warn().Err(err).Str("subject", subject).Msg("cannot resolve token subject")
		return nil
	}
	return principal
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. The scheme is matched case-sensitively.
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}
