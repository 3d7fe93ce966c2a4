package booking

import (
	"context"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
)

// TableReservationView is the reservation summary nested under a table
// in the tables listing, including the ids of orders placed for it.
type TableReservationView struct {
	ID        string                  `json:"id"`
	Customer  string                  `json:"customer"`
	PartySize int                     `json:"partySize"`
	Status    model.ReservationStatus `json:"status"`
	Orders    []string                `json:"orders"`
}

// TableView is a table with the non-cancelled reservations assigned to
// it.
type TableView struct {
	model.Table
	Reservations []TableReservationView `json:"reservations"`
}

// Tables recomputes statuses, persists the refreshed snapshot and
// returns every table with its active reservation summaries.
func (s *Service) Tables(_ context.Context) ([]TableView, error) {
	var views []TableView
	err := s.store.Update(func(st *model.Snapshot) error {
		RecomputeTableStatuses(st, s.now())
		views = make([]TableView, 0, len(st.Tables))
		for _, t := range st.Tables {
			view := TableView{Table: t, Reservations: []TableReservationView{}}
			for _, r := range st.Reservations {
				if r.TableID == nil || *r.TableID != t.ID || r.Status == model.ReservationCancelled {
					continue
				}
				orders := []string{}
				for _, o := range st.Orders {
					if o.ReservationID == r.ID {
						orders = append(orders, o.ID)
					}
				}
				view.Reservations = append(view.Reservations, TableReservationView{
					ID:        r.ID,
					Customer:  r.Customer,
					PartySize: r.PartySize,
					Status:    r.Status,
					Orders:    orders,
				})
			}
			views = append(views, view)
		}
		return nil
	})
	return views, err
}

// Reservations recomputes statuses and returns all reservations in
// insertion order.  Unlike Tables this read does not persist.
func (s *Service) Reservations(_ context.Context) ([]model.Reservation, error) {
	var out []model.Reservation
	err := s.store.View(func(st *model.Snapshot) error {
		RecomputeTableStatuses(st, s.now())
		out = make([]model.Reservation, len(st.Reservations))
		copy(out, st.Reservations)
		return nil
	})
	return out, err
}

// Orders returns all recorded orders.
func (s *Service) Orders(_ context.Context) ([]model.Order, error) {
	var out []model.Order
	err := s.store.View(func(st *model.Snapshot) error {
		out = make([]model.Order, len(st.Orders))
		copy(out, st.Orders)
		return nil
	})
	return out, err
}

// Menu returns the static menu.
func (s *Service) Menu(_ context.Context) ([]model.MenuItem, error) {
	var out []model.MenuItem
	err := s.store.View(func(st *model.Snapshot) error {
		out = make([]model.MenuItem, len(st.Menu))
		copy(out, st.Menu)
		return nil
	})
	return out, err
}

// Staff returns the static staff directory.
func (s *Service) Staff(_ context.Context) ([]model.Staff, error) {
	var out []model.Staff
	err := s.store.View(func(st *model.Snapshot) error {
		out = make([]model.Staff, len(st.Staff))
		copy(out, st.Staff)
		return nil
	})
	return out, err
}
