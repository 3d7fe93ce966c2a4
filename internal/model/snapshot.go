package model

// Snapshot is the full authoritative state of the booking system.  The
// store owns exactly one Snapshot per process; every command mutates it
// under the store's single-writer lock and the whole record is persisted
// as one JSON document afterwards.
//
// The three counters are monotonically increasing and are never reused,
// even after a reservation or order is deleted.
type Snapshot struct {
	Tables                []Table       `json:"tables"`
	Reservations          []Reservation `json:"reservations"`
	Orders                []Order       `json:"orders"`
	Menu                  []MenuItem    `json:"menu"`
	Staff                 []Staff       `json:"staff"`
	BookingDate           string        `json:"bookingDate"`
	NextReservationNumber int           `json:"nextReservationNumber"`
	NextWalkInNumber      int           `json:"nextWalkInNumber"`
	NextOrderNumber       int           `json:"nextOrderNumber"`
}

// TableByID returns the table with the given id, or nil.
func (s *Snapshot) TableByID(id int) *Table {
	for i := range s.Tables {
		if s.Tables[i].ID == id {
			return &s.Tables[i]
		}
	}
	return nil
}

// ReservationByID returns the reservation with the given id, or nil.
func (s *Snapshot) ReservationByID(id string) *Reservation {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			return &s.Reservations[i]
		}
	}
	return nil
}

// MenuItemByName returns the menu item with the given name, or nil.
func (s *Snapshot) MenuItemByName(name string) *MenuItem {
	for i := range s.Menu {
		if s.Menu[i].Name == name {
			return &s.Menu[i]
		}
	}
	return nil
}

// StaffByName returns the staff member with the given name, or nil.
func (s *Snapshot) StaffByName(name string) *Staff {
	for i := range s.Staff {
		if s.Staff[i].Name == name {
			return &s.Staff[i]
		}
	}
	return nil
}
