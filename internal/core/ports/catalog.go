package ports

import (
	"context"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// ServiceFilter narrows a catalog listing. Zero values mean "any".
type ServiceFilter struct {
	Type        domain.ServiceType
	PopularOnly bool
	// IncludeInactive is only honoured for staff listings.
	IncludeInactive bool
}

// ServiceInput carries the editable fields of a coaching service.
type ServiceInput struct {
	Title           string
	Description     string
	Price           float64
	Type            domain.ServiceType
	ImageURL        string
	Features        []string
	DurationMinutes int
	Popular         bool
	CoachID         string
}

// CoachingServiceRepository defines persistence for the service catalog.
type CoachingServiceRepository interface {
	Create(ctx context.Context, s *domain.CoachingService) error
	Update(ctx context.Context, s *domain.CoachingService) error
	FindByID(ctx context.Context, id string) (*domain.CoachingService, error)
	List(ctx context.Context, filter ServiceFilter) ([]*domain.CoachingService, error)
}

type CatalogService interface {
	List(ctx context.Context, filter ServiceFilter) ([]*domain.CoachingService, error)
	Get(ctx context.Context, id string) (*domain.CoachingService, error)
	Create(ctx context.Context, in ServiceInput) (*domain.CoachingService, error)
	Update(ctx context.Context, id string, in ServiceInput) (*domain.CoachingService, error)
	Deactivate(ctx context.Context, id string) error
}
