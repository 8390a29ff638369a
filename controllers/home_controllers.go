package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reservetable/webapp/services"
	"github.com/reservetable/webapp/session"
	"github.com/reservetable/webapp/utils"
)

type HomeController struct {
	tables   TableGateway
	sessions *session.Store
}

func NewHomeController(tables TableGateway, sessions *session.Store) *HomeController {
	return &HomeController{tables: tables, sessions: sessions}
}

// Index renders the landing page. The four counters come from one unfiltered
// table fetch reduced client-side; a failed fetch degrades to the zero
// summary with no banner, the dashboard is not critical.
func (hc *HomeController) Index(c *gin.Context) {
	sess := hc.sessions.Get(c)

	tables, err := hc.tables.ListTables(c.Request.Context(), nil)
	if err != nil {
		utils.ErrorLogger.Printf("home: table fetch failed: %v", err)
		tables = nil
	}

	render(c, sess, http.StatusOK, "home.html", "home", gin.H{
		"Summary": services.SummarizeTables(tables),
	})
}
