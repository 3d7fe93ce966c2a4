// Package store owns the authoritative in-memory booking snapshot.  All
// reads and mutations go through the single-writer lock so the
// check-then-act sequences in the booking logic (check availability,
// then assign) stay atomic when the store is exposed to concurrent HTTP
// clients.
package store

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/persist"
	"github.com/iliyamo/restaurant-table-booking/internal/timeutil"
)

// saveTimeout bounds the best-effort persistence call that runs at the
// end of each mutating command.
const saveTimeout = 2 * time.Second

// Store pairs the snapshot with its persistence driver.
type Store struct {
	mu     sync.Mutex
	driver persist.Driver
	state  *model.Snapshot
}

// New builds a store from whatever the driver holds.  Missing, corrupt
// or structurally invalid data falls back to the seed dataset; load
// never fails.
func New(driver persist.Driver) *Store {
	s := &Store{driver: driver}
	s.state = s.load()
	return s
}

// Update runs fn with exclusive access to the snapshot, then persists
// it.  The error from fn is returned unchanged; persistence errors are
// logged and swallowed because the in-memory state stays authoritative.
func (s *Store) Update(fn func(*model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.state); err != nil {
		return err
	}
	s.save()
	return nil
}

// View runs fn with exclusive access to the snapshot without persisting
// afterwards.  fn may still mutate derived data (table statuses are
// recomputed on reads).
func (s *Store) View(fn func(*model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

func (s *Store) save() {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("store: marshal snapshot failed: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.driver.Save(ctx, data); err != nil {
		log.Printf("store: save snapshot failed: %v", err)
	}
}

// rawSnapshot mirrors the persisted layout with pointer fields so a
// structurally incomplete document is detectable: a required collection
// decoded as nil means the key was absent and the whole document is
// discarded in favor of the seed.
type rawSnapshot struct {
	Tables                *[]model.Table       `json:"tables"`
	Reservations          *[]model.Reservation `json:"reservations"`
	Orders                *[]model.Order       `json:"orders"`
	Menu                  *[]model.MenuItem    `json:"menu"`
	Staff                 *[]model.Staff       `json:"staff"`
	BookingDate           *string              `json:"bookingDate"`
	NextReservationNumber *int                 `json:"nextReservationNumber"`
	NextWalkInNumber      *int                 `json:"nextWalkInNumber"`
	NextOrderNumber       *int                 `json:"nextOrderNumber"`
}

func (s *Store) load() *model.Snapshot {
	now := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	data, err := s.driver.Load(ctx)
	if err != nil {
		if err != persist.ErrNoData {
			log.Printf("store: load snapshot failed, seeding: %v", err)
		}
		return Seed(now)
	}
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("store: snapshot is not valid JSON, seeding: %v", err)
		return Seed(now)
	}
	if raw.Tables == nil || raw.Reservations == nil || raw.Orders == nil || raw.Menu == nil || raw.Staff == nil {
		log.Printf("store: snapshot is structurally incomplete, seeding")
		return Seed(now)
	}
	st := &model.Snapshot{
		Tables:       *raw.Tables,
		Reservations: *raw.Reservations,
		Orders:       *raw.Orders,
		Menu:         *raw.Menu,
		Staff:        *raw.Staff,
	}
	// Missing counters are repaired from entity counts instead of
	// failing the load.
	if raw.NextReservationNumber != nil {
		st.NextReservationNumber = *raw.NextReservationNumber
	} else {
		st.NextReservationNumber = 1000 + len(st.Reservations) + 1
	}
	if raw.NextOrderNumber != nil {
		st.NextOrderNumber = *raw.NextOrderNumber
	} else {
		st.NextOrderNumber = 5000 + len(st.Orders) + 1
	}
	if raw.NextWalkInNumber != nil {
		st.NextWalkInNumber = *raw.NextWalkInNumber
	} else {
		walkIns := 0
		for _, r := range st.Reservations {
			if strings.HasPrefix(r.ID, "W") {
				walkIns++
			}
		}
		st.NextWalkInNumber = 5000 + walkIns + 1
	}
	if raw.BookingDate != nil {
		st.BookingDate = *raw.BookingDate
	} else {
		st.BookingDate = timeutil.FormatDate(now)
	}
	return st
}
