package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/timeutil"
)

// ReservationForm carries the raw form fields for a booking or walk-in
// request.  PartySize and Time stay strings until validated here so the
// handler layer does no interpretation of its own.
type ReservationForm struct {
	Name       string
	Phone      string
	PartySize  string
	Time       string
	Email      string
	Preference string
	Notes      string
}

// CreateReservation validates the form and appends a new reservation.
// Walk-ins start Seated at the current time; booked reservations start
// Open at the requested time.  A table is auto-assigned when one fits;
// finding none is not an error, the reservation is simply created
// unassigned.  Returns a copy of the stored reservation.
func (s *Service) CreateReservation(ctx context.Context, form ReservationForm, walkIn bool) (model.Reservation, error) {
	var created model.Reservation
	err := s.store.Update(func(st *model.Snapshot) error {
		if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Phone) == "" || strings.TrimSpace(form.PartySize) == "" {
			return validationf("name, phone and party size are required")
		}
		partySize, err := strconv.Atoi(strings.TrimSpace(form.PartySize))
		if err != nil || partySize <= 0 {
			return validationf("party size must be a positive number")
		}

		now := s.now()
		start := now
		if !walkIn {
			parsed, ok := timeutil.Parse(form.Time)
			if !ok {
				return validationf("time must use the format YYYY-MM-DD HH:MM")
			}
			start = parsed
		}

		var id string
		if walkIn {
			id = fmt.Sprintf("W%04d", st.NextWalkInNumber)
			st.NextWalkInNumber++
		} else {
			id = fmt.Sprintf("R%04d", st.NextReservationNumber)
			st.NextReservationNumber++
		}

		status := model.ReservationOpen
		if walkIn {
			status = model.ReservationSeated
		}
		reservation := model.Reservation{
			ID:              id,
			Customer:        strings.TrimSpace(form.Name),
			Phone:           strings.TrimSpace(form.Phone),
			Email:           strings.TrimSpace(form.Email),
			Preference:      strings.TrimSpace(form.Preference),
			PartySize:       partySize,
			Time:            timeutil.Format(start),
			EndTime:         timeutil.Format(timeutil.AddMinutes(start, DefaultDurationMinutes)),
			DurationMinutes: DefaultDurationMinutes,
			Status:          status,
			Notes:           strings.TrimSpace(form.Notes),
			TableID:         FindAvailableTable(st, partySize, start, DefaultDurationMinutes, id),
			LastModified:    timeutil.Format(now),
		}
		st.Reservations = append(st.Reservations, reservation)
		RecomputeTableStatuses(st, now)
		created = reservation
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, s.reservationEvent("reservation.created", created))
	return created, nil
}

// SetStatus moves a reservation to one of the four lifecycle states.
// Any transition between valid states is allowed; moving to Cancelled
// also releases the table assignment.
func (s *Service) SetStatus(ctx context.Context, id string, status model.ReservationStatus) error {
	var updated model.Reservation
	err := s.store.Update(func(st *model.Snapshot) error {
		r := st.ReservationByID(id)
		if r == nil {
			return notFoundf("reservation %s not found", id)
		}
		if !model.ValidReservationStatus(status) {
			return validationf("invalid status %q", status)
		}
		r.Status = status
		if status == model.ReservationCancelled {
			r.TableID = nil
		}
		now := s.now()
		r.LastModified = timeutil.Format(now)
		RecomputeTableStatuses(st, now)
		updated = *r
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, s.reservationEvent("reservation.status_changed", updated))
	return nil
}

// AssignManual places a reservation at a specific table after checking
// that the table exists, seats the party and is free for the
// reservation's stored time window.  Returns a copy of the updated
// reservation.
func (s *Service) AssignManual(_ context.Context, id string, tableID int) (model.Reservation, error) {
	var updated model.Reservation
	err := s.store.Update(func(st *model.Snapshot) error {
		r := st.ReservationByID(id)
		if r == nil {
			return notFoundf("reservation %s not found", id)
		}
		table := st.TableByID(tableID)
		if table == nil {
			return notFoundf("table %d not found", tableID)
		}
		start, ok := timeutil.Parse(r.Time)
		if !ok {
			return validationf("reservation time is invalid")
		}
		if table.Capacity < r.PartySize {
			return conflictf("table %d seats %d, party is %d", tableID, table.Capacity, r.PartySize)
		}
		if !IsTableAvailable(st, tableID, start, r.DurationMinutes, r.ID) {
			return conflictf("table %d is already booked for that time", tableID)
		}
		r.TableID = &tableID
		now := s.now()
		r.LastModified = timeutil.Format(now)
		RecomputeTableStatuses(st, now)
		updated = *r
		return nil
	})
	return updated, err
}

// AssignAuto places a reservation at the best fitting free table, or
// fails with a conflict when none is available.
func (s *Service) AssignAuto(_ context.Context, id string) (model.Reservation, error) {
	var updated model.Reservation
	err := s.store.Update(func(st *model.Snapshot) error {
		r := st.ReservationByID(id)
		if r == nil {
			return notFoundf("reservation %s not found", id)
		}
		start, ok := timeutil.Parse(r.Time)
		if !ok {
			return validationf("reservation time is invalid")
		}
		tableID := FindAvailableTable(st, r.PartySize, start, r.DurationMinutes, r.ID)
		if tableID == nil {
			return conflictf("no table available")
		}
		r.TableID = tableID
		now := s.now()
		r.LastModified = timeutil.Format(now)
		RecomputeTableStatuses(st, now)
		updated = *r
		return nil
	})
	return updated, err
}

// ClearAssignment releases a reservation's table unconditionally.
func (s *Service) ClearAssignment(_ context.Context, id string) (model.Reservation, error) {
	var updated model.Reservation
	err := s.store.Update(func(st *model.Snapshot) error {
		r := st.ReservationByID(id)
		if r == nil {
			return notFoundf("reservation %s not found", id)
		}
		r.TableID = nil
		now := s.now()
		r.LastModified = timeutil.Format(now)
		RecomputeTableStatuses(st, now)
		updated = *r
		return nil
	})
	return updated, err
}

// DeleteReservation removes a reservation and cascades removal of every
// order that references it.
func (s *Service) DeleteReservation(ctx context.Context, id string) error {
	var removed model.Reservation
	err := s.store.Update(func(st *model.Snapshot) error {
		idx := -1
		for i := range st.Reservations {
			if st.Reservations[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return notFoundf("reservation %s not found", id)
		}
		removed = st.Reservations[idx]
		st.Reservations = append(st.Reservations[:idx], st.Reservations[idx+1:]...)
		kept := st.Orders[:0]
		for _, o := range st.Orders {
			if o.ReservationID != id {
				kept = append(kept, o)
			}
		}
		st.Orders = kept
		RecomputeTableStatuses(st, s.now())
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, s.reservationEvent("reservation.deleted", removed))
	return nil
}
