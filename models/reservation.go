package models

// Reservation statuses the client can observe. The only transition it can
// trigger is confirmed -> cancelled.
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

type Reservation struct {
	ID              int64   `json:"id"`
	TableID         int64   `json:"table_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	GuestCount      int     `json:"guest_count"`
	ReservationDate string  `json:"reservation_date"`
	SlotStartTime   string  `json:"slot_start_time"`
	SlotEndTime     string  `json:"slot_end_time"`
	SpecialRequests *string `json:"special_requests"`
	Status          string  `json:"status"`
}
