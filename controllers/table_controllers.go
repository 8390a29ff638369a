package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reservetable/webapp/gateway"
	"github.com/reservetable/webapp/session"
	"github.com/reservetable/webapp/utils"
)

type TableController struct {
	tables   TableGateway
	sessions *session.Store
}

func NewTableController(tables TableGateway, sessions *session.Store) *TableController {
	return &TableController{tables: tables, sessions: sessions}
}

// ListTables renders the catalog. Filters {location, capacity} live in the
// query string; any change is a full refetch, never an incremental update.
func (tc *TableController) ListTables(c *gin.Context) {
	sess := tc.sessions.Get(c)

	filters := map[string]string{
		"location": c.Query("location"),
		"capacity": c.Query("capacity"),
	}
	tables, err := tc.tables.ListTables(c.Request.Context(), filters)
	if err != nil {
		utils.ErrorLogger.Printf("catalog: table fetch failed: %v", err)
		sess.SetFlash(session.FlashError, "Failed to load tables")
		tables = nil
	}

	render(c, sess, http.StatusOK, "tables.html", "tables", gin.H{
		"Tables":         tables,
		"FilterLocation": c.Query("location"),
		"FilterCapacity": c.Query("capacity"),
		"ShowForm":       c.Query("form") == "1",
		"FormNumber":     "",
		"FormCapacity":   "",
		"FormLocation":   "",
	})
}

// CreateTable handles the inline create form. On success the filter-scoped
// list is refetched via redirect so server-assigned fields show up; on
// failure the form re-renders with the entered values intact.
func (tc *TableController) CreateTable(c *gin.Context) {
	sess := tc.sessions.Get(c)

	form := gin.H{
		"FormNumber":   c.PostForm("table_number"),
		"FormCapacity": c.PostForm("seating_capacity"),
		"FormLocation": c.PostForm("location"),
	}

	number, numErr := strconv.Atoi(c.PostForm("table_number"))
	capacity, capErr := strconv.Atoi(c.PostForm("seating_capacity"))
	if numErr != nil || capErr != nil {
		sess.SetFlash(session.FlashError, "Table number and seating capacity must be numbers")
		tc.renderWithForm(c, sess, form)
		return
	}

	_, err := tc.tables.CreateTable(c.Request.Context(), gateway.CreateTableInput{
		TableNumber:     number,
		SeatingCapacity: capacity,
		Location:        c.PostForm("location"),
	})
	if err != nil {
		sess.SetFlash(session.FlashError, err.Error())
		tc.renderWithForm(c, sess, form)
		return
	}

	utils.InfoLogger.Printf("catalog: table %d created", number)
	sess.SetFlash(session.FlashSuccess, "Table created successfully!")
	redirectBack(c, "/tables")
}

// ConfirmDeactivate shows the explicit confirmation step before the
// irreversible deactivation.
func (tc *TableController) ConfirmDeactivate(c *gin.Context) {
	sess := tc.sessions.Get(c)

	id, ok := parseID(c, "table_id")
	if !ok {
		redirectBack(c, "/tables")
		return
	}
	table, err := tc.tables.GetTable(c.Request.Context(), id)
	if err != nil {
		sess.SetFlash(session.FlashError, err.Error())
		redirectBack(c, "/tables")
		return
	}

	render(c, sess, http.StatusOK, "table_confirm.html", "tables", gin.H{
		"Table": table,
		"Query": c.Request.URL.RawQuery,
	})
}

func (tc *TableController) DeactivateTable(c *gin.Context) {
	sess := tc.sessions.Get(c)

	id, ok := parseID(c, "table_id")
	if !ok {
		redirectBack(c, "/tables")
		return
	}
	if err := tc.tables.DeactivateTable(c.Request.Context(), id); err != nil {
		sess.SetFlash(session.FlashError, err.Error())
		redirectBack(c, "/tables")
		return
	}

	utils.InfoLogger.Printf("catalog: table %d deactivated", id)
	sess.SetFlash(session.FlashSuccess, "Table deactivated")
	redirectBack(c, "/tables")
}

// renderWithForm refetches the current filtered list and re-renders the
// catalog with the create form open and its values preserved.
func (tc *TableController) renderWithForm(c *gin.Context, sess *session.Session, form gin.H) {
	filters := map[string]string{
		"location": c.Query("location"),
		"capacity": c.Query("capacity"),
	}
	tables, err := tc.tables.ListTables(c.Request.Context(), filters)
	if err != nil {
		utils.ErrorLogger.Printf("catalog: table fetch failed: %v", err)
		tables = nil
	}

	data := gin.H{
		"Tables":         tables,
		"FilterLocation": c.Query("location"),
		"FilterCapacity": c.Query("capacity"),
		"ShowForm":       true,
	}
	for k, v := range form {
		data[k] = v
	}
	render(c, sess, http.StatusOK, "tables.html", "tables", data)
}
