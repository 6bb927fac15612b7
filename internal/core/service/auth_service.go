package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

// AuthService implements login, registration and caller lookup.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenCodec
	notifier ports.Notifier
	now      func() time.Time
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenCodec,
	notifier ports.Notifier,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		now:      time.Now,
		log:      log,
	}
}

// Login verifies credentials and issues a token. Unknown emails and wrong
// passwords both yield domain.ErrBadCredentials after one hash comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify("", password)
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, domain.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &ports.AuthResult{Token: token, User: user.Summary()}, nil
}

// Register creates a USER account and logs it in. The welcome notification is
// best-effort: delivery problems are logged and never fail registration.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	taken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailInUse
	}

	taken, err = s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := s.notifier.Notify(ctx, domain.WelcomeNotification(created)); err != nil {
		s.log.Warn().Err(err).Str("user_id", created.ID).Msg("welcome notification not queued")
	}

	return s.Login(ctx, in.Email, in.Password)
}

// CurrentCaller returns the principal bound to ctx, or nil when anonymous.
func (s *AuthService) CurrentCaller(ctx context.Context) *domain.Principal {
	p, _ := domain.PrincipalFromContext(ctx)
	return p
}
