package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type catalogService struct {
	repo ports.CoachingServiceRepository
	now  func() time.Time
}

// NewCatalogService returns a CatalogService implementation.
func NewCatalogService(repo ports.CoachingServiceRepository) ports.CatalogService {
	return &catalogService{repo: repo, now: time.Now}
}

func (s *catalogService) List(ctx context.Context, filter ports.ServiceFilter) ([]*domain.CoachingService, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown service type %q", domain.ErrInvalidInput, filter.Type)
	}
	return s.repo.List(ctx, filter)
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.CoachingService, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) Create(ctx context.Context, in ports.ServiceInput) (*domain.CoachingService, error) {
	if err := validateServiceInput(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	svc := &domain.CoachingService{
		ID:        uuid.NewString(),
		Active:    true,
		CreatedAt: now,
	}
	applyServiceInput(svc, in, now)

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id string, in ports.ServiceInput) (*domain.CoachingService, error) {
	if err := validateServiceInput(in); err != nil {
		return nil, err
	}

	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyServiceInput(svc, in, s.now().UTC())

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

// Deactivate hides a service from listings without removing it, so existing
// bookings keep their reference.
func (s *catalogService) Deactivate(ctx context.Context, id string) error {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	svc.Active = false
	svc.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, svc); err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	return nil
}

func validateServiceInput(in ports.ServiceInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case in.Price < 0:
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	case !in.Type.Valid():
		return fmt.Errorf("%w: unknown service type %q", domain.ErrInvalidInput, in.Type)
	}
	return nil
}

func applyServiceInput(svc *domain.CoachingService, in ports.ServiceInput, now time.Time) {
	svc.Title = in.Title
	svc.Description = in.Description
	svc.Price = in.Price
	svc.Type = in.Type
	svc.ImageURL = in.ImageURL
	svc.Features = append([]string(nil), in.Features...)
	svc.DurationMinutes = in.DurationMinutes
	svc.Popular = in.Popular
	svc.CoachID = in.CoachID
	svc.UpdatedAt = now
}
