package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reservetable/webapp/gateway"
	"github.com/reservetable/webapp/services"
	"github.com/reservetable/webapp/session"
	"github.com/reservetable/webapp/utils"
)

type BookingController struct {
	tables       TableGateway
	reservations ReservationGateway
	sessions     *session.Store
}

func NewBookingController(tables TableGateway, reservations ReservationGateway, sessions *session.Store) *BookingController {
	return &BookingController{tables: tables, reservations: reservations, sessions: sessions}
}

// ShowWizard renders whichever step the session's wizard is on. On the table
// step the active-table list is fetched fresh each time; a failed fetch just
// shows the empty state. The date input's lower bound is the local today,
// advisory only.
func (bc *BookingController) ShowWizard(c *gin.Context) {
	sess := bc.sessions.Get(c)
	wizard := sess.WizardView()

	data := gin.H{
		"Wizard": wizard,
		"Step":   int(wizard.Step),
		"Today":  time.Now().Format("2006-01-02"),
	}
	if wizard.Step == services.StepSelectTable {
		tables, err := bc.tables.ListTables(c.Request.Context(), map[string]string{"is_active": "true"})
		if err != nil {
			utils.ErrorLogger.Printf("wizard: table fetch failed: %v", err)
			tables = nil
		}
		data["Tables"] = tables
	}

	render(c, sess, http.StatusOK, "book.html", "book", data)
}

func (bc *BookingController) SelectTable(c *gin.Context) {
	sess := bc.sessions.Get(c)

	id, err := strconv.ParseInt(c.PostForm("table_id"), 10, 64)
	if err == nil {
		table, getErr := bc.tables.GetTable(c.Request.Context(), id)
		if getErr != nil {
			sess.SetFlash(session.FlashError, getErr.Error())
		} else {
			sess.WithWizard(func(w *services.BookingWizard) { w.SelectTable(*table) })
		}
	}
	c.Redirect(http.StatusSeeOther, "/book")
}

// ChangeDate drives the step-2 self-loop; availability failures are swallowed
// inside the wizard and come back as an empty grid.
func (bc *BookingController) ChangeDate(c *gin.Context) {
	sess := bc.sessions.Get(c)
	sess.WithWizard(func(w *services.BookingWizard) {
		w.ChangeDate(c.Request.Context(), c.PostForm("date"), bc.reservations)
	})
	c.Redirect(http.StatusSeeOther, "/book")
}

// SelectSlot advances to the details step unless the slot is unavailable, in
// which case the wizard ignores the pick and step 2 re-renders unchanged.
func (bc *BookingController) SelectSlot(c *gin.Context) {
	sess := bc.sessions.Get(c)
	sess.WithWizard(func(w *services.BookingWizard) { w.SelectSlot(c.PostForm("start_time")) })
	c.Redirect(http.StatusSeeOther, "/book")
}

func (bc *BookingController) Back(c *gin.Context) {
	sess := bc.sessions.Get(c)
	sess.WithWizard(func(w *services.BookingWizard) { w.Back() })
	c.Redirect(http.StatusSeeOther, "/book")
}

// Submit books the reservation. Success resets the whole wizard behind a
// success banner; failure keeps step 3 with every entered field intact so the
// user can retry without re-typing.
func (bc *BookingController) Submit(c *gin.Context) {
	sess := bc.sessions.Get(c)

	var input gateway.CreateReservationInput
	var err error
	sess.WithWizard(func(w *services.BookingWizard) {
		w.Form = services.BookingForm{
			CustomerName:    c.PostForm("customer_name"),
			CustomerEmail:   c.PostForm("customer_email"),
			CustomerPhone:   c.PostForm("customer_phone"),
			GuestCount:      c.PostForm("guest_count"),
			SpecialRequests: c.PostForm("special_requests"),
		}
		input, err = w.Payload()
	})
	if err != nil {
		sess.SetFlash(session.FlashError, err.Error())
		c.Redirect(http.StatusSeeOther, "/book")
		return
	}

	if _, err := bc.reservations.CreateReservation(c.Request.Context(), input); err != nil {
		sess.SetFlash(session.FlashError, err.Error())
		c.Redirect(http.StatusSeeOther, "/book")
		return
	}

	utils.InfoLogger.Printf("wizard: reservation booked for table %d on %s", input.TableID, input.ReservationDate)
	sess.SetFlash(session.FlashSuccess, "Reservation confirmed! Your table is booked.")
	sess.WithWizard(func(w *services.BookingWizard) { w.Reset() })
	c.Redirect(http.StatusSeeOther, "/book")
}
