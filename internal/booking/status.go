package booking

import (
	"time"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/timeutil"
)

// RecomputeTableStatuses rebuilds every table's derived status from the
// reservation list.  Tables not marked OutOfService reset to Free, then
// each non-cancelled, non-completed reservation with a table projects
// its effect: Occupied while seated or inside its window, Reserved when
// the window is still ahead.  Reservations are processed in insertion
// order; overlapping assignments on one table are prevented upstream by
// the availability checks, not resolved here.  The rebuild is
// idempotent and runs after every mutation and on table and reservation
// reads.
func RecomputeTableStatuses(st *model.Snapshot, now time.Time) {
	for i := range st.Tables {
		if st.Tables[i].Status != model.TableOutOfService {
			st.Tables[i].Status = model.TableFree
		}
	}
	for i := range st.Reservations {
		r := &st.Reservations[i]
		if r.TableID == nil || r.Status == model.ReservationCancelled {
			continue
		}
		table := st.TableByID(*r.TableID)
		if table == nil || table.Status == model.TableOutOfService {
			continue
		}
		if r.Status == model.ReservationCompleted {
			continue
		}
		start, ok := timeutil.Parse(r.Time)
		if !ok {
			continue
		}
		minutes := r.DurationMinutes
		if minutes == 0 {
			minutes = DefaultDurationMinutes
		}
		end := timeutil.AddMinutes(start, minutes)
		if r.Status == model.ReservationSeated || (!now.Before(start) && now.Before(end)) {
			table.Status = model.TableOccupied
		} else if now.Before(start) {
			table.Status = model.TableReserved
		}
	}
}
