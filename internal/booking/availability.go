package booking

import (
	"sort"
	"time"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/timeutil"
)

// IsTableAvailable reports whether the table is free for the half-open
// window starting at start.  A conflict is any other non-cancelled
// reservation assigned to the same table whose window overlaps.  The
// reservation named by ignoreReservationID is excluded so an existing
// reservation can be re-checked against its own slot.  A reservation
// whose stored time no longer parses cannot be compared and is treated
// as non-conflicting.
func IsTableAvailable(st *model.Snapshot, tableID int, start time.Time, durationMinutes int, ignoreReservationID string) bool {
	end := timeutil.AddMinutes(start, durationMinutes)
	for i := range st.Reservations {
		r := &st.Reservations[i]
		if r.TableID == nil || *r.TableID != tableID {
			continue
		}
		if r.Status == model.ReservationCancelled {
			continue
		}
		if ignoreReservationID != "" && r.ID == ignoreReservationID {
			continue
		}
		existingStart, ok := timeutil.Parse(r.Time)
		if !ok {
			continue
		}
		minutes := r.DurationMinutes
		if minutes == 0 {
			minutes = DefaultDurationMinutes
		}
		existingEnd := timeutil.AddMinutes(existingStart, minutes)
		if timeutil.Overlaps(start, end, existingStart, existingEnd) {
			return false
		}
	}
	return true
}

// FindAvailableTable picks the best free table for a party: candidates
// must seat the party and be in service, and are tried smallest
// capacity first (then lowest id) so large tables are not wasted on
// small parties.  Returns nil when no candidate is free.
func FindAvailableTable(st *model.Snapshot, partySize int, start time.Time, durationMinutes int, ignoreReservationID string) *int {
	candidates := make([]model.Table, 0, len(st.Tables))
	for _, t := range st.Tables {
		if t.Capacity >= partySize && t.Status != model.TableOutOfService {
			candidates = append(candidates, t)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity != candidates[j].Capacity {
			return candidates[i].Capacity < candidates[j].Capacity
		}
		return candidates[i].ID < candidates[j].ID
	})
	for _, t := range candidates {
		if IsTableAvailable(st, t.ID, start, durationMinutes, ignoreReservationID) {
			id := t.ID
			return &id
		}
	}
	return nil
}
