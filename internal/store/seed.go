package store

import (
	"math"
	"time"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
	"github.com/iliyamo/restaurant-table-booking/internal/timeutil"
)

// Seed duration for every seeded reservation, matching the system-wide
// default seating window.
const seedDurationMinutes = 120

// Seed builds the deterministic demo dataset used when no persisted
// snapshot exists: five tables, five menu items, three staff members,
// one seated party in progress, one booking for tonight and one sample
// order.  Counters start where the seeded ids leave off.
func Seed(now time.Time) *model.Snapshot {
	// Tonight at 18:00, or tomorrow if that has already passed.
	upcoming := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	if !upcoming.After(now) {
		upcoming = upcoming.AddDate(0, 0, 1)
	}
	inProgress := now.Add(-45 * time.Minute)

	menu := []model.MenuItem{
		{Name: "Seared Salmon", Category: "Entree", Price: 24.5},
		{Name: "Garden Salad", Category: "Starter", Price: 8.5},
		{Name: "Ribeye Steak", Category: "Entree", Price: 36.0},
		{Name: "Tiramisu", Category: "Dessert", Price: 7.5},
		{Name: "Fresh Lemonade", Category: "Drink", Price: 4.5},
	}

	table1, table3 := 1, 3
	reservations := []model.Reservation{
		{
			ID:              "R1001",
			Customer:        "Oliver King",
			Phone:           "555-0101",
			Preference:      "Window seat",
			PartySize:       2,
			Time:            timeutil.Format(inProgress),
			EndTime:         timeutil.Format(timeutil.AddMinutes(inProgress, seedDurationMinutes)),
			DurationMinutes: seedDurationMinutes,
			Status:          model.ReservationSeated,
			Notes:           "Dessert pre-ordered",
			TableID:         &table1,
			LastModified:    timeutil.Format(now),
		},
		{
			ID:              "R1002",
			Customer:        "May Lin",
			Phone:           "555-0102",
			Email:           "may.lin@example.com",
			Preference:      "No spicy dishes",
			PartySize:       4,
			Time:            timeutil.Format(upcoming),
			EndTime:         timeutil.Format(timeutil.AddMinutes(upcoming, seedDurationMinutes)),
			DurationMinutes: seedDurationMinutes,
			Status:          model.ReservationOpen,
			TableID:         &table3,
			LastModified:    timeutil.Format(now),
		},
	}

	sampleItems := []model.OrderItem{
		{Name: menu[0].Name, Category: menu[0].Category, Price: menu[0].Price, Quantity: 1},
		{Name: menu[4].Name, Category: menu[4].Category, Price: menu[4].Price, Quantity: 2},
	}
	total := 0.0
	for i := range sampleItems {
		sampleItems[i].LineTotal = round2(sampleItems[i].Price * float64(sampleItems[i].Quantity))
		total += sampleItems[i].LineTotal
	}

	return &model.Snapshot{
		Tables: []model.Table{
			{ID: 1, Capacity: 2, Location: "Window", Status: model.TableFree},
			{ID: 2, Capacity: 2, Location: "Window", Status: model.TableFree},
			{ID: 3, Capacity: 4, Location: "Center", Status: model.TableFree},
			{ID: 4, Capacity: 4, Location: "Center", Status: model.TableFree},
			{ID: 5, Capacity: 6, Location: "Patio", Status: model.TableFree},
		},
		Reservations: reservations,
		Orders: []model.Order{
			{ID: "O5001", ReservationID: "R1001", Items: sampleItems, Total: round2(total)},
		},
		Menu: menu,
		Staff: []model.Staff{
			{Name: "Alice", Role: model.RoleFrontDesk, Contact: "alice@example.com"},
			{Name: "Bob", Role: model.RoleFrontDesk, Contact: "bob@example.com"},
			{Name: "Grace", Role: model.RoleManager, Contact: "grace@example.com"},
		},
		BookingDate:           timeutil.FormatDate(now),
		NextReservationNumber: 1003,
		NextWalkInNumber:      5001,
		NextOrderNumber:       5002,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
