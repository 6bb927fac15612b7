package mail

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

func TestRender_BookingConfirmation(t *testing.T) {
	msg, err := Render(domain.Notification{
		Kind:         domain.NotifyBookingConfirmation,
		To:           "alice@example.com",
		Name:         "alice",
		ServiceTitle: "VOD review",
		Date:         time.Date(2026, 11, 2, 18, 30, 0, 0, time.UTC),
		Amount:       49.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Your booking is confirmed", msg.Subject)
	assert.Contains(t, msg.Text, "02/11/2026 18:30")
	assert.Contains(t, msg.Text, "49.50")
	assert.Contains(t, msg.Text, `"VOD review"`)
}

func TestRender_EscapesHTML(t *testing.T) {
	msg, err := Render(domain.Notification{Kind: domain.NotifyWelcome, To: "x@example.com", Name: "<script>alert(1)</script>"})
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestRender_UnknownKind(t *testing.T) {
	_, err := Render(domain.Notification{Kind: "sms"})
	assert.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer(zerolog.Nop())
	assert.NoError(t, m.Send(context.Background(), domain.Notification{Kind: domain.NotifyWelcome, To: "x@example.com"}))
	assert.Error(t, m.Send(context.Background(), domain.Notification{Kind: "sms"}))
}
