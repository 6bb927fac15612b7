package queue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/api/metrics"
	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	sendTimeout    = 15 * time.Second
)

// ErrQueueFull is returned by Notify when the recipient's worker is saturated.
var ErrQueueFull = errors.New("notification queue full")

// Mailer delivers a single notification.
type Mailer interface {
	Send(ctx context.Context, n domain.Notification) error
}

type job struct {
	id string
	n  domain.Notification
}

// Dispatcher delivers notifications on a fixed set of workers, sharded by
// recipient so messages to one address keep their order.
type Dispatcher struct {
	workers []chan job
	mailer  Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers, each
// buffering up to queueSize jobs. Non-positive values fall back to defaults.
func NewDispatcher(numWorkers, queueSize int, mailer Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = channelBuffer
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, queueSize)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify queues n without blocking and satisfies ports.Notifier.
func (d *Dispatcher) Notify(_ context.Context, n domain.Notification) error {
	if n.To == "" {
		return fmt.Errorf("notify %s: missing recipient", n.Kind)
	}

	idx := d.shardIndex(n.To)
	select {
	case d.workers[idx] <- job{id: uuid.NewString(), n: n}:
		metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return nil
	default:
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "dropped").Inc()
		return ErrQueueFull
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	depth := metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()
			d.deliver(ctx, id, j)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, worker int, j job) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	kind := string(j.n.Kind)
	if err := d.mailer.Send(sendCtx, j.n); err != nil {
		metrics.NotificationsTotal.WithLabelValues(kind, "failed").Inc()
		d.log.Error().Err(err).
			Str("job_id", j.id).
			Str("kind", kind).
			Int("worker_id", worker).
			Msg("notification delivery failed")
		return
	}
	metrics.NotificationsTotal.WithLabelValues(kind, "sent").Inc()
	d.log.Debug().Str("job_id", j.id).Str("kind", kind).Msg("notification delivered")
}
