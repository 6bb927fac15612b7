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

type testimonialService struct {
	repo ports.TestimonialRepository
	now  func() time.Time
}

// NewTestimonialService returns a TestimonialService implementation.
func NewTestimonialService(repo ports.TestimonialRepository) ports.TestimonialService {
	return &testimonialService{repo: repo, now: time.Now}
}

func (s *testimonialService) ListApproved(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.repo.ListByApproval(ctx, true)
}

func (s *testimonialService) ListPending(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.repo.ListByApproval(ctx, false)
}

func (s *testimonialService) Stats(ctx context.Context) (domain.TestimonialStats, error) {
	return s.repo.ApprovedStats(ctx)
}

func (s *testimonialService) Get(ctx context.Context, id string) (*domain.Testimonial, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a testimonial awaiting moderation.
func (s *testimonialService) Create(ctx context.Context, userID string, in ports.TestimonialInput) (*domain.Testimonial, error) {
	if err := validateTestimonialInput(in); err != nil {
		return nil, err
	}

	t := &domain.Testimonial{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   s.now().UTC(),
	}
	applyTestimonialInput(t, in)

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, in ports.TestimonialInput) (*domain.Testimonial, error) {
	if err := validateTestimonialInput(in); err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTestimonialInput(t, in)

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) Approve(ctx context.Context, id string) (*domain.Testimonial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Approved {
		return t, nil
	}

	t.Approved = true
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("approve testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateTestimonialInput(in ports.TestimonialInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case strings.TrimSpace(in.Comment) == "":
		return fmt.Errorf("%w: comment is required", domain.ErrInvalidInput)
	case in.Rating < domain.MinRating || in.Rating > domain.MaxRating:
		return fmt.Errorf("%w: rating must be between %d and %d", domain.ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	return nil
}

func applyTestimonialInput(t *domain.Testimonial, in ports.TestimonialInput) {
	t.Name = in.Name
	t.AvatarURL = in.AvatarURL
	t.Comment = in.Comment
	t.Rating = in.Rating
	t.InitialRank = in.InitialRank
	t.CurrentRank = in.CurrentRank
}
