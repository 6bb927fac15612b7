package domain

import "time"

// ServiceType classifies a coaching offer.
type ServiceType string

const (
	ServiceIndividual ServiceType = "INDIVIDUAL"
	ServiceMonthly    ServiceType = "MONTHLY"
	ServiceCourse     ServiceType = "COURSE"
	ServiceGuide      ServiceType = "GUIDE"
	ServiceTeam       ServiceType = "TEAM"
)

// Valid reports whether t is a known service type.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceIndividual, ServiceMonthly, ServiceCourse, ServiceGuide, ServiceTeam:
		return true
	}
	return false
}

// CoachingService is a bookable offer in the catalog. Deactivated services are
// kept for booking history but hidden from listings.
type CoachingService struct {
	ID              string      `json:"id" bson:"_id"`
	Title           string      `json:"title" bson:"title"`
	Description     string      `json:"description" bson:"description"`
	Price           float64     `json:"price" bson:"price"`
	Type            ServiceType `json:"type" bson:"type"`
	ImageURL        string      `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Features        []string    `json:"features" bson:"features"`
	DurationMinutes int         `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	Popular         bool        `json:"is_popular" bson:"is_popular"`
	Active          bool        `json:"is_active" bson:"is_active"`
	CoachID         string      `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}
