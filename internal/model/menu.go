package model

// MenuItem is static reference data describing one dish.  The name is
// the unique key used when recording orders.
type MenuItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
