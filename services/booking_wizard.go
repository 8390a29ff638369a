package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/reservetable/webapp/gateway"
	"github.com/reservetable/webapp/models"
)

type WizardStep int

const (
	StepSelectTable WizardStep = iota + 1
	StepSelectSlot
	StepEnterDetails
)

// AvailabilityFetcher is the slice of the gateway the wizard needs for its
// date self-loop.
type AvailabilityFetcher interface {
	Availability(ctx context.Context, tableID int64, date string) ([]models.TimeSlot, error)
}

// BookingForm keeps the customer-detail fields exactly as entered. GuestCount
// stays a string until submit so a failed booking round-trips the raw input
// back into the form.
type BookingForm struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	GuestCount      string
	SpecialRequests string
}

// BookingWizard is the three-step booking flow: select table, pick a date and
// slot, enter details. One instance lives per session and is torn down on a
// successful submit. All validation beyond basic shape checks belongs to the
// reservations backend; the wizard only guards its own transitions.
type BookingWizard struct {
	Step  WizardStep
	Table *models.Table
	Date  string
	Slots []models.TimeSlot
	Slot  *models.TimeSlot
	Form  BookingForm
}

func NewBookingWizard() *BookingWizard {
	return &BookingWizard{Step: StepSelectTable}
}

// SelectTable moves to the slot step. Any previously chosen date, slot grid,
// slot and guest count are cleared so nothing sized for another table leaks
// through; the remaining form fields survive.
func (w *BookingWizard) SelectTable(table models.Table) {
	w.Table = &table
	w.Step = StepSelectSlot
	w.Date = ""
	w.Slots = nil
	w.Slot = nil
	w.Form.GuestCount = ""
}

// ChangeDate is the step-2 self-loop: it drops the selected slot and fetches
// the grid for the new date. A failed fetch degrades to an empty grid with no
// error surfaced. An empty date just clears the grid.
func (w *BookingWizard) ChangeDate(ctx context.Context, date string, fetcher AvailabilityFetcher) {
	if w.Step != StepSelectSlot || w.Table == nil {
		return
	}
	w.Date = date
	w.Slot = nil
	w.Slots = nil
	if date == "" {
		return
	}
	slots, err := fetcher.Availability(ctx, w.Table.ID, date)
	if err != nil {
		return
	}
	w.Slots = slots
}

// SelectSlot advances to the details step. Picking a slot whose availability
// flag is false is a no-op: the wizard stays on step 2 untouched.
func (w *BookingWizard) SelectSlot(startTime string) bool {
	if w.Step != StepSelectSlot {
		return false
	}
	for _, slot := range w.Slots {
		if slot.StartTime != startTime {
			continue
		}
		if !slot.Available {
			return false
		}
		chosen := slot
		w.Slot = &chosen
		w.Step = StepEnterDetails
		return true
	}
	return false
}

// Back from details keeps table, date and slot so the grid re-renders as
// left; back from the slot step discards the whole selection.
func (w *BookingWizard) Back() {
	switch w.Step {
	case StepEnterDetails:
		w.Step = StepSelectSlot
	case StepSelectSlot:
		w.Step = StepSelectTable
		w.Table = nil
		w.Date = ""
		w.Slots = nil
		w.Slot = nil
	}
}

// Payload assembles the reservation-create request from the current
// selections. Guest count is parsed here; empty special requests become an
// explicit null on the wire.
func (w *BookingWizard) Payload() (gateway.CreateReservationInput, error) {
	if w.Step != StepEnterDetails || w.Table == nil || w.Slot == nil {
		return gateway.CreateReservationInput{}, errors.New("no table and time slot selected")
	}
	guests, err := strconv.Atoi(strings.TrimSpace(w.Form.GuestCount))
	if err != nil {
		return gateway.CreateReservationInput{}, errors.New("guest count must be a number")
	}

	input := gateway.CreateReservationInput{
		TableID:         w.Table.ID,
		CustomerName:    w.Form.CustomerName,
		CustomerEmail:   w.Form.CustomerEmail,
		CustomerPhone:   w.Form.CustomerPhone,
		GuestCount:      guests,
		ReservationDate: w.Date,
		SlotStartTime:   w.Slot.StartTime,
	}
	if w.Form.SpecialRequests != "" {
		requests := w.Form.SpecialRequests
		input.SpecialRequests = &requests
	}
	return input, nil
}

// Reset returns the wizard to a fresh step 1, discarding every selection and
// all form fields. Used after a successful submit.
func (w *BookingWizard) Reset() {
	*w = BookingWizard{Step: StepSelectTable}
}
