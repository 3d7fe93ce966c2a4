package model

// TableStatus is the derived occupancy state of a dining table.  Every
// value except OutOfService is recomputed from the reservation list;
// OutOfService is the only manually set state and survives recomputation.
type TableStatus string

const (
	TableFree         TableStatus = "Free"
	TableReserved     TableStatus = "Reserved"
	TableOccupied     TableStatus = "Occupied"
	TableOutOfService TableStatus = "OutOfService"
)

// Table describes a physical dining table.  Tables are created at seed
// time and never deleted; only their derived status changes afterwards.
// Location is a free-text area label (Window, Center, Patio).
type Table struct {
	ID       int         `json:"id"`
	Capacity int         `json:"capacity"`
	Location string      `json:"location"`
	Status   TableStatus `json:"status"`
}
