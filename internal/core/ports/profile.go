package ports

import (
	"context"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// PreferencesRepository stores one UserPreferences document per account.
type PreferencesRepository interface {
	// GetOrCreate returns the stored preferences for defaults.UserID, inserting
	// defaults atomically when none exist.
	GetOrCreate(ctx context.Context, defaults *domain.UserPreferences) (*domain.UserPreferences, error)
	Save(ctx context.Context, p *domain.UserPreferences) error
}

type ProfileService interface {
	Get(ctx context.Context, caller *domain.Principal) (*domain.Profile, error)
	// Update applies a partial change. A new username must be unused
	// (domain.ErrUsernameTaken otherwise).
	Update(ctx context.Context, caller *domain.Principal, upd domain.ProfileUpdate) (*domain.Profile, error)
}
