// Package queue defines the reservation lifecycle events exchanged over
// the message broker and the best-effort publisher and consumer that
// move them.
package queue

// ReservationEvent is published when a reservation is created, changes
// status or is deleted.  It carries enough information for downstream
// consumers to log, notify or feed analytics without querying the
// booking service.
type ReservationEvent struct {
	Type          string `json:"type"` // reservation.created | reservation.status_changed | reservation.deleted
	ReservationID string `json:"reservation_id"`
	Customer      string `json:"customer"`
	PartySize     int    `json:"party_size"`
	Status        string `json:"status"`
	TableID       *int   `json:"table_id,omitempty"`
	Time          string `json:"time"`
	OccurredAt    string `json:"occurred_at"`
}
