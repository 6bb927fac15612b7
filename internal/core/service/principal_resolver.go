package service

import (
	"context"
	"fmt"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type principalResolver struct {
	users ports.UserRepository
}

// NewPrincipalResolver returns a PrincipalResolver backed by users.
func NewPrincipalResolver(users ports.UserRepository) ports.PrincipalResolver {
	return &principalResolver{users: users}
}

func (r *principalResolver) ResolveBySubject(ctx context.Context, subjectID string) (*domain.Principal, error) {
	if subjectID == "" {
		return nil, domain.ErrUserNotFound
	}
	u, err := r.users.FindByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	return domain.NewPrincipal(u), nil
}

func (r *principalResolver) ResolveByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	if email == "" {
		return nil, domain.ErrUserNotFound
	}
	u, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve email: %w", err)
	}
	return domain.NewPrincipal(u), nil
}
