package handler

import (
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges operations that return no resource.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=6,max=40"`
}

// authResponse is the body of a successful login or registration.
type authResponse struct {
	Token    string      `json:"token"`
	Type     string      `json:"type"`
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

type principalResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Authority string      `json:"authority"`
}

// --- Profile ---

// updateProfileRequest is a partial update; omitted fields stay unchanged.
type updateProfileRequest struct {
	Username          *string  `json:"username"           validate:"omitempty,notblank,min=3,max=20"`
	Tier              *string  `json:"tier"               validate:"omitempty,max=20"`
	Division          *string  `json:"division"           validate:"omitempty,max=5"`
	RiotID            *string  `json:"riot_id"            validate:"omitempty,max=40"`
	MainRole          *string  `json:"main_role"          validate:"omitempty,max=20"`
	FavoriteChampions []string `json:"favorite_champions" validate:"omitempty,max=10,dive,notblank,max=30"`
}

// --- Catalog ---

type serviceRequest struct {
	Title           string   `json:"title"            validate:"required,notblank,max=120"`
	Description     string   `json:"description"      validate:"required,notblank"`
	Price           float64  `json:"price"            validate:"gte=0"`
	Type            string   `json:"type"             validate:"required,oneof=INDIVIDUAL MONTHLY COURSE GUIDE TEAM"`
	ImageURL        string   `json:"image_url"        validate:"omitempty,url"`
	Features        []string `json:"features"`
	DurationMinutes int      `json:"duration_minutes" validate:"gte=0"`
	Popular         bool     `json:"is_popular"`
	CoachID         string   `json:"coach_id"`
}

// --- Content ---

type contentRequest struct {
	Title        string   `json:"title"         validate:"required,notblank,max=200"`
	Description  string   `json:"description"   validate:"required,notblank"`
	ThumbnailURL string   `json:"thumbnail_url" validate:"omitempty,url"`
	ContentURL   string   `json:"content_url"   validate:"omitempty,url"`
	Type         string   `json:"type"          validate:"required,oneof=ARTICLE VIDEO GUIDE ANALYSIS"`
	Tags         []string `json:"tags"`
	Premium      bool     `json:"is_premium"`
	Content      string   `json:"content"`
}

// --- Testimonials ---

type testimonialRequest struct {
	Name        string `json:"name"         validate:"required,notblank,max=100"`
	AvatarURL   string `json:"avatar_url"   validate:"omitempty,url"`
	Comment     string `json:"comment"      validate:"required,notblank,max=1000"`
	Rating      int    `json:"rating"       validate:"required,min=1,max=5"`
	InitialRank string `json:"initial_rank"`
	CurrentRank string `json:"current_rank"`
}

// --- Bookings ---

type createBookingRequest struct {
	ServiceID string    `json:"service_id" validate:"required,notblank"`
	Date      time.Time `json:"date"       validate:"required"`
	Notes     string    `json:"notes"      validate:"max=500"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}
