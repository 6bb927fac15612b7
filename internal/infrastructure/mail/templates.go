package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

const dateLayout = "02/01/2006 15:04"

// Message is a rendered notification ready for a transport.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

type template struct {
	subject string
	body    string
}

var templates = map[domain.NotificationKind]template{
	domain.NotifyWelcome: {
		subject: "Welcome to the coaching platform",
		body: `Hi {{.Name}},

Your account is ready. Browse our coaching services and book your first session whenever you like.

Good luck on the ladder!`,
	},
	domain.NotifyBookingConfirmation: {
		subject: "Your booking is confirmed",
		body: `Hi {{.Name}},

We received your booking for "{{.ServiceTitle}}" on {{date .Date}}.
Amount: {{money .Amount}}

Your coach will confirm the session shortly.`,
	},
	domain.NotifyBookingReceived: {
		subject: "New booking received",
		body: `Hi {{.Name}},

{{.CustomerName}} booked "{{.ServiceTitle}}" on {{date .Date}}.
Amount: {{money .Amount}}`,
	},
}

var funcs = map[string]any{
	"date":  func(t time.Time) string { return t.Format(dateLayout) },
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// Render produces the subject and bodies for n. The HTML body escapes every
// user-supplied field.
func Render(n domain.Notification) (Message, error) {
	tpl, ok := templates[n.Kind]
	if !ok {
		return Message{}, fmt.Errorf("render: unknown notification kind %q", n.Kind)
	}

	text, err := texttemplate.New(string(n.Kind)).Funcs(funcs).Parse(tpl.body)
	if err != nil {
		return Message{}, fmt.Errorf("render %s: %w", n.Kind, err)
	}
	html, err := htmltemplate.New(string(n.Kind)).Funcs(funcs).Parse(`<p>` + tpl.body + `</p>`)
	if err != nil {
		return Message{}, fmt.Errorf("render %s: %w", n.Kind, err)
	}

	var tb, hb bytes.Buffer
	if err := text.Execute(&tb, n); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", n.Kind, err)
	}
	if err := html.Execute(&hb, n); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", n.Kind, err)
	}

	return Message{Subject: tpl.subject, Text: tb.String(), HTML: hb.String()}, nil
}
