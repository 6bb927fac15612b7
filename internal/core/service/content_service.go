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

const (
	defaultLatestLimit = 5
	maxLatestLimit     = 50
)

type contentService struct {
	repo ports.ContentRepository
	now  func() time.Time
}

// NewContentService returns a ContentService implementation.
func NewContentService(repo ports.ContentRepository) ports.ContentService {
	return &contentService{repo: repo, now: time.Now}
}

func (s *contentService) List(ctx context.Context, filter ports.ContentFilter) ([]*domain.Content, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, filter.Type)
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.ListPublished(ctx, filter)
}

// Latest returns the newest published items; limit defaults to 5 and is capped at 50.
func (s *contentService) Latest(ctx context.Context, limit int) ([]*domain.Content, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	if limit > maxLatestLimit {
		limit = maxLatestLimit
	}
	return s.repo.ListPublished(ctx, ports.ContentFilter{Limit: limit})
}

func (s *contentService) Get(ctx context.Context, id string) (*domain.Content, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contentService) Create(ctx context.Context, authorID string, in ports.ContentInput) (*domain.Content, error) {
	if err := validateContentInput(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c := &domain.Content{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		CreatedAt: now,
	}
	applyContentInput(c, in, now)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return c, nil
}

func (s *contentService) Update(ctx context.Context, id string, in ports.ContentInput) (*domain.Content, error) {
	if err := validateContentInput(in); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyContentInput(c, in, s.now().UTC())

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return c, nil
}

// Publish marks content visible. Publishing twice keeps the first publish date.
func (s *contentService) Publish(ctx context.Context, id string) (*domain.Content, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Published {
		return c, nil
	}

	now := s.now().UTC()
	c.Published = true
	c.PublishedAt = &now
	c.UpdatedAt = now

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("publish content: %w", err)
	}
	return c, nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateContentInput(in ports.ContentInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case !in.Type.Valid():
		return fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, in.Type)
	}
	return nil
}

func applyContentInput(c *domain.Content, in ports.ContentInput, now time.Time) {
	c.Title = in.Title
	c.Description = in.Description
	c.ThumbnailURL = in.ThumbnailURL
	c.ContentURL = in.ContentURL
	c.Type = in.Type
	c.Tags = append([]string(nil), in.Tags...)
	c.Premium = in.Premium
	c.Body = in.Body
	c.UpdatedAt = now
}
