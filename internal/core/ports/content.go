package ports

import (
	"context"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// ContentFilter narrows a content listing. Only published content is listed.
type ContentFilter struct {
	Type    domain.ContentType
	Premium *bool
	// Search matches title or description, case-insensitive.
	Search string
	Limit  int
}

// ContentInput carries the editable fields of a content item.
type ContentInput struct {
	Title        string
	Description  string
	ThumbnailURL string
	ContentURL   string
	Type         domain.ContentType
	Tags         []string
	Premium      bool
	Body         string
}

type ContentRepository interface {
	Create(ctx context.Context, c *domain.Content) error
	Update(ctx context.Context, c *domain.Content) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Content, error)
	// ListPublished returns published items, newest first.
	ListPublished(ctx context.Context, filter ContentFilter) ([]*domain.Content, error)
}

type ContentService interface {
	List(ctx context.Context, filter ContentFilter) ([]*domain.Content, error)
	Latest(ctx context.Context, limit int) ([]*domain.Content, error)
	Get(ctx context.Context, id string) (*domain.Content, error)
	Create(ctx context.Context, authorID string, in ContentInput) (*domain.Content, error)
	Update(ctx context.Context, id string, in ContentInput) (*domain.Content, error)
	Publish(ctx context.Context, id string) (*domain.Content, error)
	Delete(ctx context.Context, id string) error
}
