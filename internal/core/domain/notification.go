package domain

import "time"

// NotificationKind selects the message template used for delivery.
type NotificationKind string

const (
	NotifyWelcome             NotificationKind = "welcome"
	NotifyBookingConfirmation NotificationKind = "booking_confirmation"
	NotifyBookingReceived     NotificationKind = "booking_received"
)

// Notification is an outbound message to a single recipient.
type Notification struct {
	Kind NotificationKind
	To   string
	Name string

	// Booking details, set for booking notifications only.
	ServiceTitle string
	CustomerName string
	Date         time.Time
	Amount       float64
}

// WelcomeNotification greets a freshly registered user.
func WelcomeNotification(u *User) Notification {
	return Notification{Kind: NotifyWelcome, To: u.Email, Name: u.Username}
}
