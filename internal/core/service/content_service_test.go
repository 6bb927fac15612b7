package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type stubContentRepo struct {
	items      map[string]*domain.Content
	lastFilter ports.ContentFilter
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{items: make(map[string]*domain.Content)}
}

func (r *stubContentRepo) Create(_ context.Context, c *domain.Content) error {
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubContentRepo) Update(_ context.Context, c *domain.Content) error {
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubContentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrContentNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubContentRepo) FindByID(_ context.Context, id string) (*domain.Content, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContentRepo) ListPublished(_ context.Context, f ports.ContentFilter) ([]*domain.Content, error) {
	r.lastFilter = f
	var out []*domain.Content
	for _, c := range r.items {
		if c.Published {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func TestContentService_Latest_Limits(t *testing.T) {
	repo := newStubContentRepo()
	svc := NewContentService(repo)

	tests := []struct {
		in   int
		want int
	}{
		{0, 5},
		{-3, 5},
		{12, 12},
		{500, 50},
	}
	for _, tt := range tests {
		if _, err := svc.Latest(context.Background(), tt.in); err != nil {
			t.Fatalf("latest(%d): %v", tt.in, err)
		}
		if repo.lastFilter.Limit != tt.want {
			t.Fatalf("latest(%d): expected limit %d, got %d", tt.in, tt.want, repo.lastFilter.Limit)
		}
	}
}

func TestContentService_PublishFlow(t *testing.T) {
	repo := newStubContentRepo()
	svc := NewContentService(repo)

	c, err := svc.Create(context.Background(), "a1", ports.ContentInput{Title: "Macro fundamentals", Type: domain.ContentGuide})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if c.Published || c.AuthorID != "a1" {
		t.Fatalf("unexpected new content: %+v", c)
	}

	listed, _ := svc.List(context.Background(), ports.ContentFilter{})
	if len(listed) != 0 {
		t.Fatalf("drafts must not be listed")
	}

	published, err := svc.Publish(context.Background(), c.ID)
	if err != nil || !published.Published || published.PublishedAt == nil {
		t.Fatalf("publish failed: %v", err)
	}
	first := *published.PublishedAt

	time.Sleep(time.Millisecond)
	again, err := svc.Publish(context.Background(), c.ID)
	if err != nil || !again.PublishedAt.Equal(first) {
		t.Fatalf("republish should keep original date: %v", err)
	}

	listed, _ = svc.List(context.Background(), ports.ContentFilter{Search: "  macro "})
	if len(listed) != 1 || repo.lastFilter.Search != "macro" {
		t.Fatalf("expected trimmed search and one result, got %q (%d)", repo.lastFilter.Search, len(listed))
	}
}

func TestContentService_Validation(t *testing.T) {
	svc := NewContentService(newStubContentRepo())

	if _, err := svc.Create(context.Background(), "a1", ports.ContentInput{Title: "x", Type: "PODCAST"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.List(context.Background(), ports.ContentFilter{Type: "PODCAST"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}
