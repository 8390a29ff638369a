package models

// Table locations as served by the tables backend.
const (
	LocationIndoor  = "indoor"
	LocationOutdoor = "outdoor"
)

// Table is a bookable unit owned by the tables backend. The client never
// mutates one locally; it only renders what the last fetch returned.
// "Deleting" a table is a soft-deactivation server-side, so an inactive
// table keeps showing up until the next refetch filters it out.
type Table struct {
	ID              int64  `json:"id"`
	TableNumber     int    `json:"table_number"`
	SeatingCapacity int    `json:"seating_capacity"`
	Location        string `json:"location"`
	IsActive        bool   `json:"is_active"`
}
