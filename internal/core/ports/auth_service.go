package ports

import (
	"context"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// RegisterInput carries a validated sign-up request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult is returned by a successful login or registration.
type AuthResult struct {
	Token string
	User  domain.UserSummary
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	// CurrentCaller returns the principal bound to ctx, or nil.
	CurrentCaller(ctx context.Context) *domain.Principal
}
