// Package seed creates the staff accounts a fresh deployment needs.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

// Account describes one bootstrap account.
type Account struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// Accounts creates missing bootstrap accounts. Existing accounts, matched by
// email, are never modified.
type Accounts struct {
	resolver ports.PrincipalResolver
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	log      zerolog.Logger
	now      func() time.Time
}

func NewAccounts(resolver ports.PrincipalResolver, users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *Accounts {
	return &Accounts{resolver: resolver, users: users, hasher: hasher, log: log, now: time.Now}
}

// Ensure creates every account in accounts that does not exist yet. Accounts
// without an email or password are skipped.
func (s *Accounts) Ensure(ctx context.Context, accounts ...Account) error {
	for _, a := range accounts {
		if a.Email == "" || a.Password == "" {
			s.log.Debug().Str("role", string(a.Role)).Msg("seed account not configured, skipping")
			continue
		}
		if !a.Role.Valid() {
			return fmt.Errorf("seed %s: %w", a.Email, domain.ErrUnknownRole)
		}

		existing, err := s.resolver.ResolveByEmail(ctx, a.Email)
		switch {
		case err == nil:
			s.log.Debug().Str("user_id", existing.ID).Str("role", string(existing.Role)).Msg("seed account already present")
			continue
		case !errors.Is(err, domain.ErrUserNotFound):
			return fmt.Errorf("seed %s: %w", a.Email, err)
		}

		if err := s.create(ctx, a); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				s.log.Warn().Err(err).Str("username", a.Username).Msg("seed account conflicts with an existing user, skipping")
				continue
			}
			return fmt.Errorf("seed %s: %w", a.Email, err)
		}
	}
	return nil
}

func (s *Accounts) create(ctx context.Context, a Account) error {
	hash, err := s.hasher.Hash(a.Password)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: hash,
		Role:         a.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("seed account created")
	return nil
}
