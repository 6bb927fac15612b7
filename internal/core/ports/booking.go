package ports

import (
	"context"
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// CreateBookingInput carries a booking request made by the calling user.
type CreateBookingInput struct {
	ServiceID string
	Date      time.Time
	Notes     string
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	// ListByCoach returns all bookings when coachID is empty.
	ListByCoach(ctx context.Context, coachID string) ([]*domain.Booking, error)
}

// BookingGuard rejects the same booking submitted twice within a short window.
type BookingGuard interface {
	// Acquire reports false when the same user already submitted this
	// service and date inside the guard window.
	Acquire(ctx context.Context, userID, serviceID string, date time.Time) (bool, error)
	Release(ctx context.Context, userID, serviceID string, date time.Time) error
}

// BookingService operations act on behalf of the principal passed in.
type BookingService interface {
	Create(ctx context.Context, caller *domain.Principal, in CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, caller *domain.Principal, id string) (*domain.Booking, error)
	ListMine(ctx context.Context, caller *domain.Principal) ([]*domain.Booking, error)
	ListForCoach(ctx context.Context, caller *domain.Principal) ([]*domain.Booking, error)
	Cancel(ctx context.Context, caller *domain.Principal, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, caller *domain.Principal, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
