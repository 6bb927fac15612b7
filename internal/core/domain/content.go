package domain

import "time"

// ContentType classifies a published piece of content.
type ContentType string

const (
	ContentArticle  ContentType = "ARTICLE"
	ContentVideo    ContentType = "VIDEO"
	ContentGuide    ContentType = "GUIDE"
	ContentAnalysis ContentType = "ANALYSIS"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentArticle, ContentVideo, ContentGuide, ContentAnalysis:
		return true
	}
	return false
}

// Content is an article, video, guide or analysis written by staff.
type Content struct {
	ID           string      `json:"id" bson:"_id"`
	Title        string      `json:"title" bson:"title"`
	Description  string      `json:"description" bson:"description"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	ContentURL   string      `json:"content_url,omitempty" bson:"content_url,omitempty"`
	Type         ContentType `json:"type" bson:"type"`
	Tags         []string    `json:"tags" bson:"tags"`
	Premium      bool        `json:"is_premium" bson:"is_premium"`
	AuthorID     string      `json:"author_id,omitempty" bson:"author_id,omitempty"`
	Body         string      `json:"content,omitempty" bson:"body,omitempty"`
	Published    bool        `json:"is_published" bson:"is_published"`
	PublishedAt  *time.Time  `json:"published_at,omitempty" bson:"published_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}
