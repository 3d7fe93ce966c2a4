package booking

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iliyamo/restaurant-table-booking/internal/model"
)

// PlaceOrder validates the item specs against the menu and records an
// order for the reservation.  Each spec is "name|qty".  Line totals are
// rounded to two decimals individually and the order total is the
// rounded sum of the lines, money-style.  Returns a copy of the stored
// order.
func (s *Service) PlaceOrder(_ context.Context, reservationID string, itemSpecs []string) (model.Order, error) {
	var created model.Order
	err := s.store.Update(func(st *model.Snapshot) error {
		if strings.TrimSpace(reservationID) == "" {
			return validationf("reservation id is required")
		}
		if st.ReservationByID(reservationID) == nil {
			return notFoundf("reservation %s not found", reservationID)
		}
		if len(itemSpecs) == 0 {
			return validationf("order needs at least one item")
		}

		items := make([]model.OrderItem, 0, len(itemSpecs))
		for _, spec := range itemSpecs {
			name, qtyRaw, found := strings.Cut(spec, "|")
			if !found {
				return validationf("item must use the format name|quantity")
			}
			qty, err := strconv.Atoi(qtyRaw)
			if name == "" || err != nil || qty <= 0 {
				return validationf("item must use the format name|quantity")
			}
			menuItem := st.MenuItemByName(name)
			if menuItem == nil {
				return validationf("unknown menu item: %s", name)
			}
			items = append(items, model.OrderItem{
				Name:      menuItem.Name,
				Category:  menuItem.Category,
				Price:     menuItem.Price,
				Quantity:  qty,
				LineTotal: round2(menuItem.Price * float64(qty)),
			})
		}

		total := 0.0
		for _, item := range items {
			total += item.LineTotal
		}
		order := model.Order{
			ID:            fmt.Sprintf("O%d", st.NextOrderNumber),
			ReservationID: reservationID,
			Items:         items,
			Total:         round2(total),
		}
		st.NextOrderNumber++
		st.Orders = append(st.Orders, order)
		created = order
		return nil
	})
	return created, err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
