package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/reservetable/webapp/models"
)

// CreateReservationInput mirrors the reservations backend's create payload.
// SpecialRequests stays a pointer so an omitted value marshals as null rather
// than an empty string.
type CreateReservationInput struct {
	TableID         int64   `json:"table_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	GuestCount      int     `json:"guest_count"`
	ReservationDate string  `json:"reservation_date"`
	SlotStartTime   string  `json:"slot_start_time"`
	SpecialRequests *string `json:"special_requests"`
}

func (c *Client) ListReservations(ctx context.Context, filters map[string]string) ([]models.Reservation, error) {
	var out struct {
		Reservations []models.Reservation `json:"reservations"`
	}
	if err := c.do(ctx, "GET", c.reservationsBase+queryString(filters), nil, &out); err != nil {
		return nil, err
	}
	return out.Reservations, nil
}

func (c *Client) GetReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/%d", c.reservationsBase, id), nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) CreateReservation(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.do(ctx, "POST", c.reservationsBase, input, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation flips a confirmed reservation to cancelled. The backend
// rejects reservations that are already cancelled or unknown.
func (c *Client) CancelReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.do(ctx, "PATCH", fmt.Sprintf("%s/%d/cancel", c.reservationsBase, id), nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Availability returns the backend-computed slot grid for one table on one
// date. The date is not re-validated here; the picker already bounds it.
func (c *Client) Availability(ctx context.Context, tableID int64, date string) ([]models.TimeSlot, error) {
	var out struct {
		Slots []models.TimeSlot `json:"slots"`
	}
	endpoint := fmt.Sprintf("%s/tables/%d/availability?date=%s", c.reservationsBase, tableID, url.QueryEscape(date))
	if err := c.do(ctx, "GET", endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out.Slots, nil
}
