package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reservetable/webapp/models"
)

type fakeAvailability struct {
	slots       []models.TimeSlot
	err         error
	calls       int
	lastTableID int64
	lastDate    string
}

func (f *fakeAvailability) Availability(_ context.Context, tableID int64, date string) ([]models.TimeSlot, error) {
	f.calls++
	f.lastTableID = tableID
	f.lastDate = date
	return f.slots, f.err
}

func tableFour() models.Table {
	return models.Table{ID: 1, TableNumber: 5, SeatingCapacity: 4, Location: "indoor", IsActive: true}
}

func wizardAtSlotStep(t *testing.T, fetcher *fakeAvailability) *BookingWizard {
	t.Helper()
	w := NewBookingWizard()
	w.SelectTable(tableFour())
	w.ChangeDate(context.Background(), "2024-06-01", fetcher)
	return w
}

func TestWizard_StartsAtTableStep(t *testing.T) {
	w := NewBookingWizard()
	assert.Equal(t, StepSelectTable, w.Step)
	assert.Nil(t, w.Table)
	assert.Empty(t, w.Slots)
}

func TestWizard_SelectTableClearsDateSlotAndGuestCount(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)
	w.SelectSlot("18:00")
	w.Form.GuestCount = "4"
	w.Back() // back to slot grid

	other := models.Table{ID: 2, TableNumber: 9, SeatingCapacity: 2, Location: "outdoor", IsActive: true}
	w.Back() // discard, back to table step
	w.SelectTable(other)

	assert.Equal(t, StepSelectSlot, w.Step)
	assert.Equal(t, int64(2), w.Table.ID)
	assert.Empty(t, w.Date)
	assert.Empty(t, w.Slots)
	assert.Nil(t, w.Slot)
	assert.Empty(t, w.Form.GuestCount)
}

func TestWizard_ChangeDateFetchesAvailabilityForTableAndDate(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, int64(1), fetcher.lastTableID)
	assert.Equal(t, "2024-06-01", fetcher.lastDate)
	assert.Len(t, w.Slots, 1)
}

func TestWizard_ChangeDateClearsPreviouslyChosenSlot(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)
	w.SelectSlot("18:00")
	w.Back()

	w.ChangeDate(context.Background(), "2024-06-02", fetcher)

	assert.Nil(t, w.Slot)
	assert.Equal(t, StepSelectSlot, w.Step)
}

func TestWizard_ChangeDateFailureDegradesToEmptyGrid(t *testing.T) {
	fetcher := &fakeAvailability{err: errors.New("backend down")}
	w := wizardAtSlotStep(t, fetcher)

	assert.Equal(t, StepSelectSlot, w.Step)
	assert.Empty(t, w.Slots)
	assert.Equal(t, "2024-06-01", w.Date)
}

func TestWizard_EmptyDateClearsGridWithoutFetching(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)

	w.ChangeDate(context.Background(), "", fetcher)

	assert.Equal(t, 1, fetcher.calls)
	assert.Empty(t, w.Slots)
}

func TestWizard_UnavailableSlotIsANoOp(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{
		{StartTime: "18:00", EndTime: "19:30", Available: false},
		{StartTime: "19:30", EndTime: "21:00", Available: true},
	}}
	w := wizardAtSlotStep(t, fetcher)

	ok := w.SelectSlot("18:00")

	assert.False(t, ok)
	assert.Equal(t, StepSelectSlot, w.Step)
	assert.Nil(t, w.Slot)

	// picking it again changes nothing either
	assert.False(t, w.SelectSlot("18:00"))
	assert.Equal(t, StepSelectSlot, w.Step)
}

func TestWizard_UnknownSlotIsANoOp(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)

	assert.False(t, w.SelectSlot("23:00"))
	assert.Equal(t, StepSelectSlot, w.Step)
}

func TestWizard_BackFromDetailsPreservesSelection(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)
	w.SelectSlot("18:00")

	w.Back()

	assert.Equal(t, StepSelectSlot, w.Step)
	assert.NotNil(t, w.Table)
	assert.Equal(t, "2024-06-01", w.Date)
	assert.NotNil(t, w.Slot)
	assert.Len(t, w.Slots, 1)
}

func TestWizard_BackFromSlotStepDiscardsSelection(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)

	w.Back()

	assert.Equal(t, StepSelectTable, w.Step)
	assert.Nil(t, w.Table)
	assert.Empty(t, w.Date)
	assert.Empty(t, w.Slots)
	assert.Nil(t, w.Slot)
}

func TestWizard_PayloadBuildsCreateRequest(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)
	w.SelectSlot("18:00")
	w.Form = BookingForm{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "555-0101",
		GuestCount:      "3",
		SpecialRequests: "window seat",
	}

	input, err := w.Payload()

	assert.NoError(t, err)
	assert.Equal(t, int64(1), input.TableID)
	assert.Equal(t, 3, input.GuestCount)
	assert.Equal(t, "2024-06-01", input.ReservationDate)
	assert.Equal(t, "18:00", input.SlotStartTime)
	if assert.NotNil(t, input.SpecialRequests) {
		assert.Equal(t, "window seat", *input.SpecialRequests)
	}
}

func TestWizard_PayloadNormalizesEmptySpecialRequestsToNull(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)
	w.SelectSlot("18:00")
	w.Form = BookingForm{CustomerName: "Ada", CustomerEmail: "a@b.c", CustomerPhone: "1", GuestCount: "2"}

	input, err := w.Payload()

	assert.NoError(t, err)
	assert.Nil(t, input.SpecialRequests)
}

func TestWizard_PayloadRejectsNonNumericGuestCount(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)
	w.SelectSlot("18:00")
	w.Form.GuestCount = "many"

	_, err := w.Payload()

	assert.Error(t, err)
	// the wizard stays where it is: the form is re-rendered with the input intact
	assert.Equal(t, StepEnterDetails, w.Step)
	assert.Equal(t, "many", w.Form.GuestCount)
}

func TestWizard_ResetReturnsToFreshStepOne(t *testing.T) {
	fetcher := &fakeAvailability{slots: []models.TimeSlot{{StartTime: "18:00", EndTime: "19:30", Available: true}}}
	w := wizardAtSlotStep(t, fetcher)
	w.SelectSlot("18:00")
	w.Form = BookingForm{CustomerName: "Ada", GuestCount: "2"}

	w.Reset()

	assert.Equal(t, StepSelectTable, w.Step)
	assert.Nil(t, w.Table)
	assert.Nil(t, w.Slot)
	assert.Empty(t, w.Date)
	assert.Empty(t, w.Slots)
	assert.Equal(t, BookingForm{}, w.Form)
}
