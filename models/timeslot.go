package models

// TimeSlot is a half-open [StartTime, EndTime) interval the reservations
// backend computes per (table, date) query. Slots are ephemeral: the client
// displays them and selects one, never stores or recomputes them.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}
