package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a player review shown on the landing page once approved.
type Testimonial struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	AvatarURL   string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Comment     string    `json:"comment" bson:"comment"`
	Rating      int       `json:"rating" bson:"rating"`
	InitialRank string    `json:"initial_rank,omitempty" bson:"initial_rank,omitempty"`
	CurrentRank string    `json:"current_rank,omitempty" bson:"current_rank,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
	UserID      string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Approved    bool      `json:"is_approved" bson:"is_approved"`
}

// TestimonialStats summarises approved testimonials.
type TestimonialStats struct {
	Total         int64   `json:"total_testimonials"`
	AverageRating float64 `json:"average_rating"`
}
