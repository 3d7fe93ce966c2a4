package booking

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/restaurant-table-booking/internal/queue"
	"github.com/iliyamo/restaurant-table-booking/internal/store"
)

// DefaultDurationMinutes is the fixed seating window applied to every
// reservation and walk-in.
const DefaultDurationMinutes = 120

// EventPublisher delivers reservation lifecycle events to the message
// broker.  Publishing is best-effort; implementations log their own
// failures and the service ignores the returned error.
type EventPublisher interface {
	PublishReservationEvent(ctx context.Context, event queue.ReservationEvent) error
}

// Service executes booking commands against the store.  Each command is
// atomic: it validates, mutates the snapshot, recomputes derived table
// statuses and persists, all under the store's single-writer lock.
type Service struct {
	store  *store.Store
	events EventPublisher // nil disables event publishing
	now    func() time.Time
}

// NewService returns a Service bound to the given store.  events may be
// nil when no broker is configured.
func NewService(st *store.Store, events EventPublisher) *Service {
	return &Service{store: st, events: events, now: time.Now}
}

// publish sends a lifecycle event when a publisher is configured.
// Broker failures never affect the command outcome.
func (s *Service) publish(ctx context.Context, event queue.ReservationEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishReservationEvent(ctx, event); err != nil {
		log.Printf("booking: publish %s event failed: %v", event.Type, err)
	}
}
