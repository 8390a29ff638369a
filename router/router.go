package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reservetable/webapp/controllers"
	"github.com/reservetable/webapp/gateway"
	"github.com/reservetable/webapp/middlewares"
	"github.com/reservetable/webapp/session"
	"github.com/reservetable/webapp/utils"
)

// SetupRouter wires the four views onto their paths. The gateway client is
// the only shared collaborator; every view keeps its own transient state.
func SetupRouter(client *gateway.Client, sessions *session.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	homeCtrl := controllers.NewHomeController(client, sessions)
	tableCtrl := controllers.NewTableController(client, sessions)
	bookingCtrl := controllers.NewBookingController(client, client, sessions)
	reservationCtrl := controllers.NewReservationController(client, sessions)

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", nil)
	})

	// Landing / summary
	r.GET("/", homeCtrl.Index)

	// Table catalog
	r.GET("/tables", tableCtrl.ListTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.GET("/tables/:table_id/deactivate", tableCtrl.ConfirmDeactivate)
	r.POST("/tables/:table_id/deactivate", tableCtrl.DeactivateTable)

	// Booking wizard
	r.GET("/book", bookingCtrl.ShowWizard)
	r.POST("/book", bookingCtrl.Submit)
	r.POST("/book/table", bookingCtrl.SelectTable)
	r.POST("/book/date", bookingCtrl.ChangeDate)
	r.POST("/book/slot", bookingCtrl.SelectSlot)
	r.POST("/book/back", bookingCtrl.Back)

	// Reservation ledger
	r.GET("/reservations", reservationCtrl.ListReservations)
	r.GET("/reservations/:reservation_id/cancel", reservationCtrl.ConfirmCancel)
	r.POST("/reservations/:reservation_id/cancel", reservationCtrl.CancelReservation)

	return r
}
