package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recordingAuditService) Process(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditService) Recent(_ context.Context, _ int) ([]domain.AuditEvent, error) {
	return nil, nil
}

func (r *recordingAuditService) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := &recordingAuditService{}
	d := NewDispatcher(3, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const total = 50
	for i := 0; i < total; i++ {
		d.Enqueue(domain.AuditEvent{
			Type:  domain.AuditLoginFailure,
			Email: "cliente@prueba.com",
		})
	}

	deadline := time.After(2 * time.Second)
	for svc.count() < total {
		select {
		case <-deadline:
			t.Fatalf("delivered %d of %d events before deadline", svc.count(), total)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

type hangingAuditService struct{}

func (hangingAuditService) Process(ctx context.Context, _ domain.AuditEvent) error {
	<-ctx.Done()
	return ctx.Err()
}

func (hangingAuditService) Recent(_ context.Context, _ int) ([]domain.AuditEvent, error) {
	return nil, nil
}

// A hung store fills a shard's buffer; further enqueues must drop the event
// rather than block the caller, since Enqueue sits on the login path.
func TestDispatcher_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	d := NewDispatcher(1, hangingAuditService{}, zerolog.Nop())
	// Workers are deliberately not started: every slot stays occupied.

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+2; i++ {
			d.Enqueue(domain.AuditEvent{
				Type:  domain.AuditLoginFailure,
				Email: "cliente@prueba.com",
			})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked once the buffer filled")
	}
}

func TestDispatcher_SameEmailAlwaysSameShard(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditService{}, zerolog.Nop())

	first := d.shardIndex("doctor@prueba.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("doctor@prueba.com"); got != first {
			t.Fatalf("shard changed between calls: %d then %d", first, got)
		}
	}
}
