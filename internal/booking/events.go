package booking

import (
	"time"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/queue"
)

func (s *Service) reservationEvent(typ string, r model.Reservation) queue.ReservationEvent {
	return queue.ReservationEvent{
		Type:          typ,
		ReservationID: r.ID,
		Customer:      r.Customer,
		PartySize:     r.PartySize,
		Status:        string(r.Status),
		TableID:       r.TableID,
		Time:          r.Time,
		OccurredAt:    s.now().UTC().Format(time.RFC3339),
	}
}
