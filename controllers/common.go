package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reservetable/webapp/gateway"
	"github.com/reservetable/webapp/models"
	"github.com/reservetable/webapp/session"
)

// TableGateway is the slice of the gateway client the table-facing views
// consume. Declared here so tests can swap in a mock.
type TableGateway interface {
	ListTables(ctx context.Context, filters map[string]string) ([]models.Table, error)
	GetTable(ctx context.Context, id int64) (*models.Table, error)
	CreateTable(ctx context.Context, input gateway.CreateTableInput) (*models.Table, error)
	DeactivateTable(ctx context.Context, id int64) error
}

// ReservationGateway covers the ledger and the booking wizard.
type ReservationGateway interface {
	ListReservations(ctx context.Context, filters map[string]string) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*models.Reservation, error)
	CreateReservation(ctx context.Context, input gateway.CreateReservationInput) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id int64) (*models.Reservation, error)
	Availability(ctx context.Context, tableID int64, date string) ([]models.TimeSlot, error)
}

// render merges the layout fields every page shares: the active nav item and
// the session's pending flash banner (popped here, so it shows exactly once).
func render(c *gin.Context, sess *session.Session, code int, name, active string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Active"] = active
	data["Flash"] = sess.PopFlash()
	c.HTML(code, name, data)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	return id, err == nil
}

// listURL rebuilds the current view path with its filter query, so redirects
// after a mutation land back on the same filter-scoped list.
func listURL(c *gin.Context, path string) string {
	if raw := c.Request.URL.RawQuery; raw != "" {
		return path + "?" + raw
	}
	return path
}

func redirectBack(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, listURL(c, path))
}
