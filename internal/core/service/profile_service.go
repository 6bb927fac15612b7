package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type profileService struct {
	users ports.UserRepository
	prefs ports.PreferencesRepository
	now   func() time.Time
}

// NewProfileService returns a ProfileService implementation.
func NewProfileService(users ports.UserRepository, prefs ports.PreferencesRepository) ports.ProfileService {
	return &profileService{users: users, prefs: prefs, now: time.Now}
}

// Get returns the caller's account and preferences, creating default
// preferences on first access.
func (s *profileService) Get(ctx context.Context, caller *domain.Principal) (*domain.Profile, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.prefs.GetOrCreate(ctx, domain.NewUserPreferences(user.ID, s.now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return newProfile(user, prefs), nil
}

// Update renames the account when a new username is given and applies the
// game fields to the caller's preferences.
func (s *profileService) Update(ctx context.Context, caller *domain.Principal, upd domain.ProfileUpdate) (*domain.Profile, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()

	if upd.Username != nil {
		username := strings.TrimSpace(*upd.Username)
		if username == "" {
			return nil, fmt.Errorf("%w: username must not be blank", domain.ErrInvalidInput)
		}
		if username != user.Username {
			taken, err := s.users.ExistsByUsername(ctx, username)
			if err != nil {
				return nil, fmt.Errorf("update profile: %w", err)
			}
			if taken {
				return nil, domain.ErrUsernameTaken
			}

			user.Username = username
			user.UpdatedAt = now
			if err := s.users.Update(ctx, user); err != nil {
				return nil, fmt.Errorf("update profile: %w", err)
			}
		}
	}

	prefs, err := s.prefs.GetOrCreate(ctx, domain.NewUserPreferences(user.ID, now))
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	upd.ApplyTo(&prefs.GameProfile)
	prefs.UpdatedAt = now
	if err := s.prefs.Save(ctx, prefs); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return newProfile(user, prefs), nil
}

func newProfile(user *domain.User, prefs *domain.UserPreferences) *domain.Profile {
	return &domain.Profile{
		User:        user.Summary(),
		Rank:        prefs.FullRank(),
		Preferences: prefs,
	}
}
