package ports

import (
	"context"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// Notifier accepts outbound notifications for asynchronous delivery.
// Notify must not block on delivery.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
