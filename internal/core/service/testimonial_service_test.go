package service

import (
	"context"
	"errors"
	"testing"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type stubTestimonialRepo struct {
	items map[string]*domain.Testimonial
}

func newStubTestimonialRepo() *stubTestimonialRepo {
	return &stubTestimonialRepo{items: make(map[string]*domain.Testimonial)}
}

func (r *stubTestimonialRepo) Create(_ context.Context, t *domain.Testimonial) error {
	clone := *t
	r.items[t.ID] = &clone
	return nil
}

func (r *stubTestimonialRepo) Update(_ context.Context, t *domain.Testimonial) error {
	clone := *t
	r.items[t.ID] = &clone
	return nil
}

func (r *stubTestimonialRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *stubTestimonialRepo) FindByID(_ context.Context, id string) (*domain.Testimonial, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrTestimonialNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTestimonialRepo) ListByApproval(_ context.Context, approved bool) ([]*domain.Testimonial, error) {
	var out []*domain.Testimonial
	for _, t := range r.items {
		if t.Approved == approved {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTestimonialRepo) ApprovedStats(_ context.Context) (domain.TestimonialStats, error) {
	var stats domain.TestimonialStats
	var sum int
	for _, t := range r.items {
		if t.Approved {
			stats.Total++
			sum += t.Rating
		}
	}
	if stats.Total > 0 {
		stats.AverageRating = float64(sum) / float64(stats.Total)
	}
	return stats, nil
}

func TestTestimonialService_Moderation(t *testing.T) {
	svc := NewTestimonialService(newStubTestimonialRepo())

	created, err := svc.Create(context.Background(), "u1", ports.TestimonialInput{Name: "alice", Comment: "Climbed two ranks", Rating: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Approved || created.UserID != "u1" || created.Date.IsZero() {
		t.Fatalf("unexpected testimonial: %+v", created)
	}

	approved, _ := svc.ListApproved(context.Background())
	pending, _ := svc.ListPending(context.Background())
	if len(approved) != 0 || len(pending) != 1 {
		t.Fatalf("expected 0 approved / 1 pending, got %d / %d", len(approved), len(pending))
	}

	if _, err := svc.Approve(context.Background(), created.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 1 || stats.AverageRating != 5 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestTestimonialService_RatingBounds(t *testing.T) {
	svc := NewTestimonialService(newStubTestimonialRepo())

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), "u1", ports.TestimonialInput{Name: "x", Comment: "y", Rating: rating})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("rating %d: expected ErrInvalidInput, got %v", rating, err)
		}
	}
}

func TestTestimonialService_EmptyStats(t *testing.T) {
	svc := NewTestimonialService(newStubTestimonialRepo())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 0 || stats.AverageRating != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
