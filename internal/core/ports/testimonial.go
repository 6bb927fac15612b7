package ports

import (
	"context"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// TestimonialInput carries the editable fields of a testimonial.
type TestimonialInput struct {
	Name        string
	AvatarURL   string
	Comment     string
	Rating      int
	InitialRank string
	CurrentRank string
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Testimonial, error)
	// ListByApproval returns testimonials with the given approval flag, newest first.
	ListByApproval(ctx context.Context, approved bool) ([]*domain.Testimonial, error)
	// ApprovedStats counts approved testimonials and averages their rating.
	ApprovedStats(ctx context.Context) (domain.TestimonialStats, error)
}

type TestimonialService interface {
	ListApproved(ctx context.Context) ([]*domain.Testimonial, error)
	ListPending(ctx context.Context) ([]*domain.Testimonial, error)
	Stats(ctx context.Context) (domain.TestimonialStats, error)
	Get(ctx context.Context, id string) (*domain.Testimonial, error)
	Create(ctx context.Context, userID string, in TestimonialInput) (*domain.Testimonial, error)
	Update(ctx context.Context, id string, in TestimonialInput) (*domain.Testimonial, error)
	Approve(ctx context.Context, id string) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
}
