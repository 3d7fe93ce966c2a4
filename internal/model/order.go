package model

// OrderItem is one line of a food order.  LineTotal is the unit price
// times the quantity, rounded to two decimals when the line is recorded.
type OrderItem struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Order is a recorded food order for a reservation.  Orders are
// immutable once placed and are removed only when their reservation is
// deleted.  The id comes from the order counter ("O5002" style); Total
// is the sum of line totals, rounded to two decimals.
type Order struct {
	ID            string      `json:"id"`
	ReservationID string      `json:"reservationId"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
}
