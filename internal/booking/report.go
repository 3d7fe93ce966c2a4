package booking

import (
	"context"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/timeutil"
)

// Report is the daily summary served to managers.
type Report struct {
	Date              string  `json:"date"`
	TotalReservations int     `json:"totalReservations"`
	SeatedGuests      int     `json:"seatedGuests"`
	Revenue           float64 `json:"revenue"`
}

// DailyReport summarizes the current booking sheet.  Seated guests are
// the party sizes of Seated and Completed reservations.  Revenue sums
// every stored order, not only today's; filtering by booking date is an
// open product question and the historical behavior is kept.  A stale
// booking date is rolled forward to today, and only that roll-forward
// persists; a read with a current date writes nothing.
func (s *Service) DailyReport(_ context.Context) (Report, error) {
	today := timeutil.FormatDate(s.now())
	var report Report
	stale := false
	err := s.store.View(func(st *model.Snapshot) error {
		stale = st.BookingDate != today
		if !stale {
			report = buildReport(st)
		}
		return nil
	})
	if err != nil || !stale {
		return report, err
	}
	err = s.store.Update(func(st *model.Snapshot) error {
		st.BookingDate = today
		report = buildReport(st)
		return nil
	})
	return report, err
}

func buildReport(st *model.Snapshot) Report {
	seated := 0
	for _, r := range st.Reservations {
		if r.Status == model.ReservationSeated || r.Status == model.ReservationCompleted {
			seated += r.PartySize
		}
	}
	revenue := 0.0
	for _, o := range st.Orders {
		revenue += o.Total
	}
	return Report{
		Date:              st.BookingDate,
		TotalReservations: len(st.Reservations),
		SeatedGuests:      seated,
		Revenue:           revenue,
	}
}
