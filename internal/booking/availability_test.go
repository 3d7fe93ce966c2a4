package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	require.NoError(t, err)
	return parsed
}

func reservationAt(id string, tableID int, start string, status model.ReservationStatus) model.Reservation {
	tid := tableID
	return model.Reservation{
		ID:              id,
		Customer:        "Test Guest",
		Phone:           "555-0000",
		PartySize:       2,
		Time:            start,
		DurationMinutes: 120,
		Status:          status,
		TableID:         &tid,
	}
}

func TestIsTableAvailable(t *testing.T) {
	st := &model.Snapshot{
		Tables: []model.Table{{ID: 1, Capacity: 4, Status: model.TableFree}},
		Reservations: []model.Reservation{
			reservationAt("R1001", 1, "2026-03-14 18:00", model.ReservationOpen),
		},
	}

	t.Run("overlapping window conflicts", func(t *testing.T) {
		assert.False(t, IsTableAvailable(st, 1, at(t, "2026-03-14 19:00"), 120, ""))
	})

	t.Run("back to back does not conflict", func(t *testing.T) {
		assert.True(t, IsTableAvailable(st, 1, at(t, "2026-03-14 20:00"), 120, ""))
		assert.True(t, IsTableAvailable(st, 1, at(t, "2026-03-14 16:00"), 120, ""))
	})

	t.Run("other tables are unaffected", func(t *testing.T) {
		assert.True(t, IsTableAvailable(st, 2, at(t, "2026-03-14 18:30"), 120, ""))
	})

	t.Run("own reservation is ignored", func(t *testing.T) {
		assert.True(t, IsTableAvailable(st, 1, at(t, "2026-03-14 18:00"), 120, "R1001"))
	})

	t.Run("cancelled reservations do not block", func(t *testing.T) {
		cancelled := &model.Snapshot{
			Tables: st.Tables,
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "2026-03-14 18:00", model.ReservationCancelled),
			},
		}
		assert.True(t, IsTableAvailable(cancelled, 1, at(t, "2026-03-14 18:30"), 120, ""))
	})

	t.Run("unreadable stored time does not block", func(t *testing.T) {
		garbled := &model.Snapshot{
			Tables: st.Tables,
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "not a time", model.ReservationOpen),
			},
		}
		assert.True(t, IsTableAvailable(garbled, 1, at(t, "2026-03-14 18:30"), 120, ""))
	})

	t.Run("zero duration falls back to the default window", func(t *testing.T) {
		short := &model.Snapshot{Tables: st.Tables, Reservations: []model.Reservation{
			reservationAt("R1001", 1, "2026-03-14 18:00", model.ReservationOpen),
		}}
		short.Reservations[0].DurationMinutes = 0
		assert.False(t, IsTableAvailable(short, 1, at(t, "2026-03-14 19:30"), 120, ""))
	})
}

func TestFindAvailableTablePrefersSmallestThenLowestID(t *testing.T) {
	// Declared out of id order on purpose: the picker sorts candidates
	// itself rather than trusting slice order.
	st := &model.Snapshot{
		Tables: []model.Table{
			{ID: 5, Capacity: 6, Status: model.TableFree},
			{ID: 2, Capacity: 4, Status: model.TableFree},
			{ID: 1, Capacity: 4, Status: model.TableFree},
		},
	}

	got := FindAvailableTable(st, 3, at(t, "2026-03-14 18:00"), 120, "")
	require.NotNil(t, got)
	assert.Equal(t, 1, *got)
}

func TestFindAvailableTableSkipsUnsuitable(t *testing.T) {
	start := at(t, "2026-03-14 18:00")

	t.Run("too small", func(t *testing.T) {
		st := &model.Snapshot{Tables: []model.Table{{ID: 1, Capacity: 2, Status: model.TableFree}}}
		assert.Nil(t, FindAvailableTable(st, 4, start, 120, ""))
	})

	t.Run("out of service", func(t *testing.T) {
		st := &model.Snapshot{Tables: []model.Table{{ID: 1, Capacity: 4, Status: model.TableOutOfService}}}
		assert.Nil(t, FindAvailableTable(st, 2, start, 120, ""))
	})

	t.Run("booked table falls through to the next candidate", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{
				{ID: 1, Capacity: 4, Status: model.TableFree},
				{ID: 2, Capacity: 4, Status: model.TableFree},
			},
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "2026-03-14 18:00", model.ReservationOpen),
			},
		}
		got := FindAvailableTable(st, 2, start, 120, "")
		require.NotNil(t, got)
		assert.Equal(t, 2, *got)
	})
}
