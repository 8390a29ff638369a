package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reservetable/webapp/session"
	"github.com/reservetable/webapp/utils"
)

type ReservationController struct {
	reservations ReservationGateway
	sessions     *session.Store
}

func NewReservationController(reservations ReservationGateway, sessions *session.Store) *ReservationController {
	return &ReservationController{reservations: reservations, sessions: sessions}
}

// ListReservations renders the ledger, filtered by {date, status} from the
// query string. Same refetch-on-change policy as the catalog.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	sess := rc.sessions.Get(c)

	filters := map[string]string{
		"date":   c.Query("date"),
		"status": c.Query("status"),
	}
	reservations, err := rc.reservations.ListReservations(c.Request.Context(), filters)
	if err != nil {
		utils.ErrorLogger.Printf("ledger: reservation fetch failed: %v", err)
		sess.SetFlash(session.FlashError, "Failed to load reservations")
		reservations = nil
	}

	render(c, sess, http.StatusOK, "reservations.html", "reservations", gin.H{
		"Reservations": reservations,
		"FilterDate":   c.Query("date"),
		"FilterStatus": c.Query("status"),
	})
}

// ConfirmCancel is the explicit confirmation step before cancelling.
func (rc *ReservationController) ConfirmCancel(c *gin.Context) {
	sess := rc.sessions.Get(c)

	id, ok := parseID(c, "reservation_id")
	if !ok {
		redirectBack(c, "/reservations")
		return
	}
	reservation, err := rc.reservations.GetReservation(c.Request.Context(), id)
	if err != nil {
		sess.SetFlash(session.FlashError, err.Error())
		redirectBack(c, "/reservations")
		return
	}

	render(c, sess, http.StatusOK, "reservation_confirm.html", "reservations", gin.H{
		"Reservation": reservation,
		"Query":       c.Request.URL.RawQuery,
	})
}

// CancelReservation performs the confirmed -> cancelled transition, then
// redirects so the ledger refetches. The list is never patched locally: if
// the row no longer matches the filter it simply disappears.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	sess := rc.sessions.Get(c)

	id, ok := parseID(c, "reservation_id")
	if !ok {
		redirectBack(c, "/reservations")
		return
	}
	if _, err := rc.reservations.CancelReservation(c.Request.Context(), id); err != nil {
		sess.SetFlash(session.FlashError, err.Error())
		redirectBack(c, "/reservations")
		return
	}

	utils.InfoLogger.Printf("ledger: reservation %d cancelled", id)
	sess.SetFlash(session.FlashSuccess, "Reservation cancelled successfully")
	redirectBack(c, "/reservations")
}
