package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// bookingTransitions defines the allowed state machine transitions.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// PaymentStatus tracks the payment attached to a booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Booking is a reservation of a coaching service by a user.
type Booking struct {
	ID            string        `json:"id" bson:"_id"`
	UserID        string        `json:"user_id" bson:"user_id"`
	ServiceID     string        `json:"service_id" bson:"service_id"`
	CoachID       string        `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	Date          time.Time     `json:"date" bson:"date"`
	Status        BookingStatus `json:"status" bson:"status"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status" bson:"payment_status"`
	PaymentID     string        `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	Amount        float64       `json:"amount" bson:"amount"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// VisibleTo reports whether p may read b: its owner, its coach, or an admin.
func (b *Booking) VisibleTo(p *Principal) bool {
	if p == nil {
		return false
	}
	return p.Role == RoleAdmin || b.UserID == p.ID || (b.CoachID != "" && b.CoachID == p.ID)
}
