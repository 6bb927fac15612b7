package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type bookingService struct {
	bookings ports.BookingRepository
	services ports.CoachingServiceRepository
	resolver ports.PrincipalResolver
	guard    ports.BookingGuard
	notifier ports.Notifier
	now      func() time.Time
	log      zerolog.Logger
}

// NewBookingService returns a BookingService implementation.
func NewBookingService(
	bookings ports.BookingRepository,
	services ports.CoachingServiceRepository,
	resolver ports.PrincipalResolver,
	guard ports.BookingGuard,
	notifier ports.Notifier,
	log zerolog.Logger,
) ports.BookingService {
	return &bookingService{
		bookings: bookings,
		services: services,
		resolver: resolver,
		guard:    guard,
		notifier: notifier,
		now:      time.Now,
		log:      log,
	}
}

// Create books an active service for caller. The amount and coach are taken
// from the service; both parties are notified best-effort.
func (s *bookingService) Create(ctx context.Context, caller *domain.Principal, in ports.CreateBookingInput) (*domain.Booking, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	svc, err := s.services.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, domain.ErrServiceInactive
	}

	// 1. Double-submit guard. A guard outage must not block bookings.
	acquired, err := s.guard.Acquire(ctx, caller.ID, svc.ID, in.Date)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("user_id", caller.ID).Msg("booking guard unavailable, continuing")
	case !acquired:
		return nil, domain.ErrDuplicateBooking
	}

	// 2. Persist.
	now := s.now().UTC()
	b := &domain.Booking{
		ID:            uuid.NewString(),
		UserID:        caller.ID,
		ServiceID:     svc.ID,
		CoachID:       svc.CoachID,
		Date:          in.Date.UTC(),
		Status:        domain.BookingPending,
		Notes:         in.Notes,
		PaymentStatus: domain.PaymentPending,
		Amount:        svc.Price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if relErr := s.guard.Release(ctx, caller.ID, svc.ID, in.Date); relErr != nil {
			s.log.Warn().Err(relErr).Str("user_id", caller.ID).Msg("failed to release booking guard")
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// 3. Notify.
	s.notifyCreated(ctx, caller, svc, b)
	return b, nil
}

func (s *bookingService) notifyCreated(ctx context.Context, caller *domain.Principal, svc *domain.CoachingService, b *domain.Booking) {
	confirmation := domain.Notification{
		Kind:         domain.NotifyBookingConfirmation,
		To:           caller.Email,
		Name:         caller.Username,
		ServiceTitle: svc.Title,
		Date:         b.Date,
		Amount:       b.Amount,
	}
	if err := s.notifier.Notify(ctx, confirmation); err != nil {
		s.log.Warn().Err(err).Str("booking_id", b.ID).Msg("booking confirmation not queued")
	}

	if b.CoachID == "" {
		return
	}
	coach, err := s.resolver.ResolveBySubject(ctx, b.CoachID)
	if err != nil {
		s.log.Warn().Err(err).Str("booking_id", b.ID).Str("coach_id", b.CoachID).Msg("coach not resolvable, skipping notice")
		return
	}
	notice := domain.Notification{
		Kind:         domain.NotifyBookingReceived,
		To:           coach.Email,
		Name:         coach.Username,
		ServiceTitle: svc.Title,
		CustomerName: caller.Username,
		Date:         b.Date,
		Amount:       b.Amount,
	}
	if err := s.notifier.Notify(ctx, notice); err != nil {
		s.log.Warn().Err(err).Str("booking_id", b.ID).Msg("coach notice not queued")
	}
}

func (s *bookingService) Get(ctx context.Context, caller *domain.Principal, id string) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.VisibleTo(caller) {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

func (s *bookingService) ListMine(ctx context.Context, caller *domain.Principal) ([]*domain.Booking, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.bookings.ListByUser(ctx, caller.ID)
}

// ListForCoach returns the caller's coaching bookings, or every booking for admins.
func (s *bookingService) ListForCoach(ctx context.Context, caller *domain.Principal) ([]*domain.Booking, error) {
	switch {
	case caller == nil:
		return nil, domain.ErrUnauthenticated
	case caller.Role == domain.RoleAdmin:
		return s.bookings.ListByCoach(ctx, "")
	case caller.Role == domain.RoleCoach:
		return s.bookings.ListByCoach(ctx, caller.ID)
	default:
		return nil, domain.ErrForbidden
	}
}

// Cancel lets a user withdraw one of their own bookings.
func (s *bookingService) Cancel(ctx context.Context, caller *domain.Principal, id string) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller == nil || b.UserID != caller.ID {
		return nil, domain.ErrForbidden
	}
	return s.transition(ctx, b, domain.BookingCancelled)
}

// UpdateStatus is reserved for admins and the coach the booking belongs to.
func (s *bookingService) UpdateStatus(ctx context.Context, caller *domain.Principal, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrInvalidInput, status)
	}

	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.HasRole(domain.RoleAdmin) && !(caller.HasRole(domain.RoleCoach) && b.CoachID == caller.ID) {
		return nil, domain.ErrForbidden
	}
	return s.transition(ctx, b, status)
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	return s.bookings.Delete(ctx, id)
}

func (s *bookingService) transition(ctx context.Context, b *domain.Booking, next domain.BookingStatus) (*domain.Booking, error) {
	if !b.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, b.Status, next)
	}
	b.Status = next
	b.UpdatedAt = s.now().UTC()
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return b, nil
}
