package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// LogMailer renders notifications and logs them instead of sending. Used when
// no mail provider is configured.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, n domain.Notification) error {
	msg, err := Render(n)
	if err != nil {
		return err
	}
	m.log.Info().
		Str("kind", string(n.Kind)).
		Str("to", n.To).
		Str("subject", msg.Subject).
		Msg("notification not sent: mail provider disabled")
	return nil
}
