package model

// ReservationStatus is the lifecycle state of a reservation.  All
// transitions are explicitly commanded by staff; there is no automatic
// expiry.
type ReservationStatus string

const (
	ReservationOpen      ReservationStatus = "Open"
	ReservationSeated    ReservationStatus = "Seated"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// ValidReservationStatus reports whether s is one of the four lifecycle
// states.
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationOpen, ReservationSeated, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Reservation records a booked party or a walk-in.  Booked reservations
// carry ids with the "R" prefix, walk-ins the "W" prefix; both are
// zero-padded sequence numbers that are never reused.
//
// Time and EndTime are stored as "YYYY-MM-DD HH:MM" wall-clock strings,
// the same representation the presentation layer submits.  EndTime is
// always Time plus DurationMinutes.  TableID is nil while the party has
// no table assigned.
type Reservation struct {
	ID              string            `json:"id"`
	Customer        string            `json:"customer"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	Preference      string            `json:"preference"`
	PartySize       int               `json:"partySize"`
	Time            string            `json:"time"`
	EndTime         string            `json:"endTime"`
	DurationMinutes int               `json:"durationMinutes"`
	Status          ReservationStatus `json:"status"`
	Notes           string            `json:"notes"`
	TableID         *int              `json:"tableId"`
	LastModified    string            `json:"lastModified"`
}
