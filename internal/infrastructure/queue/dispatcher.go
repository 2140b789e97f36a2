package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	processTimeout = 5 * time.Second
)

// Dispatcher routes security events to a fixed set of workers using
// consistent hashing on the email, preserving per-account event ordering
// while keeping the login path non-blocking.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue routes an event to the worker responsible for its email. The trail
// is best-effort: when a shard's buffer is full the event is dropped and
// logged, never letting a slow store back-pressure the login path.
func (d *Dispatcher) Enqueue(event domain.AuditEvent) {
	select {
	case d.workers[d.shardIndex(event.Email)] <- event:
	default:
		d.log.Warn().
			Str("email", event.Email).
			Str("type", string(event.Type)).
			Msg("audit buffer full, event dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			// A hung store must not pin the worker forever.
			procCtx, cancel := context.WithTimeout(ctx, processTimeout)
			err := d.service.Process(procCtx, event)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("email", event.Email).
					Str("type", string(event.Type)).
					Int("worker_id", id).
					Msg("audit event persistence failed")
			}
		}
	}
}
