package handler

import (
	"errors"   // for errors.As classification of booking failures
	"net/http" // HTTP status codes
	"strconv"  // parsing form parameters
	"strings"  // trimming and case folding of form values

	"github.com/iliyamo/restaurant-table-booking/internal/booking" // booking core
	"github.com/iliyamo/restaurant-table-booking/internal/model"   // domain types
	"github.com/labstack/echo/v4"                                  // Echo web framework
)

// BookingHandler exposes the booking core over the form-encoded REST
// surface the front desk UI consumes.  All validation beyond parameter
// extraction lives in the booking service; this layer only maps typed
// failures to status codes and plain-text messages.
type BookingHandler struct {
	Svc *booking.Service
}

// NewBookingHandler constructs a BookingHandler.  The service must be
// non-nil.
func NewBookingHandler(svc *booking.Service) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc}
}

// writeError maps a booking failure to its HTTP status.  The original
// server answers failures with a plain-text message body, which the UI
// displays verbatim, so that shape is kept.
func writeError(c echo.Context, err error) error {
	var be *booking.Error
	if errors.As(err, &be) {
		status := http.StatusInternalServerError
		switch be.Kind {
		case booking.KindValidation:
			status = http.StatusBadRequest
		case booking.KindNotFound:
			status = http.StatusNotFound
		case booking.KindConflict:
			status = http.StatusConflict
		}
		return c.String(status, be.Message)
	}
	return c.String(http.StatusInternalServerError, "internal error")
}

// GetTables handles GET /api/tables.  Statuses are recomputed as part
// of the read and each table carries its active reservation summaries.
func (h *BookingHandler) GetTables(c echo.Context) error {
	views, err := h.Svc.Tables(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// GetReservations handles GET /api/reservations.
func (h *BookingHandler) GetReservations(c echo.Context) error {
	out, err := h.Svc.Reservations(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetOrders handles GET /api/orders.
func (h *BookingHandler) GetOrders(c echo.Context) error {
	out, err := h.Svc.Orders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetMenu handles GET /api/menu.
func (h *BookingHandler) GetMenu(c echo.Context) error {
	out, err := h.Svc.Menu(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetStaff handles GET /api/staff.
func (h *BookingHandler) GetStaff(c echo.Context) error {
	out, err := h.Svc.Staff(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetReport handles GET /api/report.
func (h *BookingHandler) GetReport(c echo.Context) error {
	report, err := h.Svc.DailyReport(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func reservationForm(c echo.Context) booking.ReservationForm {
	return booking.ReservationForm{
		Name:       c.FormValue("name"),
		Phone:      c.FormValue("phone"),
		PartySize:  c.FormValue("partySize"),
		Time:       c.FormValue("time"),
		Email:      c.FormValue("email"),
		Preference: c.FormValue("preference"),
		Notes:      c.FormValue("notes"),
	}
}

// CreateReservation handles POST /api/reservations.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
	created, err := h.Svc.CreateReservation(c.Request().Context(), reservationForm(c), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": created.ID})
}

// CreateWalkIn handles POST /api/walkins.  Walk-ins are seated
// immediately; any submitted time field is ignored.
func (h *BookingHandler) CreateWalkIn(c echo.Context) error {
	created, err := h.Svc.CreateReservation(c.Request().Context(), reservationForm(c), true)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": created.ID})
}

// PlaceOrder handles POST /api/orders.  The items field repeats, one
// "name|qty" entry per line item.
func (h *BookingHandler) PlaceOrder(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid form body")
	}
	order, err := h.Svc.PlaceOrder(c.Request().Context(), c.FormValue("reservationId"), params["items"])
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": order.ID, "total": order.Total})
}

// UpdateStatus handles POST /api/reservations/:id/status.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	status := c.FormValue("status")
	if status == "" {
		return c.String(http.StatusBadRequest, "status is required")
	}
	if err := h.Svc.SetStatus(c.Request().Context(), c.Param("id"), model.ReservationStatus(status)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// AssignTable handles POST /api/reservations/:id/table.  The mode field
// selects auto assignment or clearing; otherwise a tableId is required
// for manual assignment.  Success returns the updated reservation.
func (h *BookingHandler) AssignTable(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	var (
		updated model.Reservation
		err     error
	)
	switch strings.ToLower(c.FormValue("mode")) {
	case "clear":
		updated, err = h.Svc.ClearAssignment(ctx, id)
	case "auto":
		updated, err = h.Svc.AssignAuto(ctx, id)
	default:
		raw := c.FormValue("tableId")
		if raw == "" {
			return c.String(http.StatusBadRequest, "tableId is required")
		}
		tableID, convErr := strconv.Atoi(raw)
		if convErr != nil || tableID <= 0 {
			return c.String(http.StatusBadRequest, "invalid tableId")
		}
		updated, err = h.Svc.AssignManual(ctx, id, tableID)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteReservation handles DELETE /api/reservations/:id.  Orders
// placed for the reservation are removed with it.
func (h *BookingHandler) DeleteReservation(c echo.Context) error {
	if err := h.Svc.DeleteReservation(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
