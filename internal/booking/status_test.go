package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
)

func TestRecomputeTableStatuses(t *testing.T) {
	now := at(t, "2026-03-14 18:30")

	t.Run("seated reservation occupies its table", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{{ID: 1, Capacity: 2, Status: model.TableFree}},
			Reservations: []model.Reservation{
				reservationAt("W5001", 1, "2026-03-14 20:00", model.ReservationSeated),
			},
		}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, model.TableOccupied, st.Tables[0].Status)
	})

	t.Run("open reservation inside its window occupies", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{{ID: 1, Capacity: 2, Status: model.TableFree}},
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "2026-03-14 18:00", model.ReservationOpen),
			},
		}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, model.TableOccupied, st.Tables[0].Status)
	})

	t.Run("future reservation reserves", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{{ID: 1, Capacity: 2, Status: model.TableFree}},
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "2026-03-14 20:00", model.ReservationOpen),
			},
		}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, model.TableReserved, st.Tables[0].Status)
	})

	t.Run("elapsed window frees the table", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{{ID: 1, Capacity: 2, Status: model.TableReserved}},
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "2026-03-14 10:00", model.ReservationOpen),
			},
		}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, model.TableFree, st.Tables[0].Status)
	})

	t.Run("cancelled and completed do not project", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{
				{ID: 1, Capacity: 2, Status: model.TableOccupied},
				{ID: 2, Capacity: 2, Status: model.TableOccupied},
			},
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "2026-03-14 18:00", model.ReservationCancelled),
				reservationAt("R1002", 2, "2026-03-14 18:00", model.ReservationCompleted),
			},
		}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, model.TableFree, st.Tables[0].Status)
		assert.Equal(t, model.TableFree, st.Tables[1].Status)
	})

	t.Run("out of service is sticky", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{{ID: 1, Capacity: 2, Status: model.TableOutOfService}},
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "2026-03-14 18:00", model.ReservationSeated),
			},
		}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, model.TableOutOfService, st.Tables[0].Status)
	})

	t.Run("unreadable stored time leaves the table free", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{{ID: 1, Capacity: 2, Status: model.TableFree}},
			Reservations: []model.Reservation{
				reservationAt("R1001", 1, "garbage", model.ReservationOpen),
			},
		}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, model.TableFree, st.Tables[0].Status)
	})

	t.Run("rebuild is idempotent", func(t *testing.T) {
		st := &model.Snapshot{
			Tables: []model.Table{
				{ID: 1, Capacity: 2, Status: model.TableFree},
				{ID: 2, Capacity: 4, Status: model.TableFree},
			},
			Reservations: []model.Reservation{
				reservationAt("W5001", 1, "2026-03-14 18:00", model.ReservationSeated),
				reservationAt("R1001", 2, "2026-03-14 20:00", model.ReservationOpen),
			},
		}
		RecomputeTableStatuses(st, now)
		first := []model.TableStatus{st.Tables[0].Status, st.Tables[1].Status}
		RecomputeTableStatuses(st, now)
		assert.Equal(t, first, []model.TableStatus{st.Tables[0].Status, st.Tables[1].Status})
		assert.Equal(t, model.TableOccupied, st.Tables[0].Status)
		assert.Equal(t, model.TableReserved, st.Tables[1].Status)
	})
}
