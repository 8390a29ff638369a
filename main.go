package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/reservetable/webapp/config"
	"github.com/reservetable/webapp/gateway"
	"github.com/reservetable/webapp/router"
	"github.com/reservetable/webapp/session"
	"github.com/reservetable/webapp/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := gateway.NewClient(cfg.Backends.TablesURL, cfg.Backends.ReservationsURL, cfg.Backends.Timeout())
	sessions := session.NewStore()

	r := router.SetupRouter(client, sessions)

	utils.InfoLogger.Printf("Listening on %s (tables=%s reservations=%s)",
		cfg.HTTP.Address, cfg.Backends.TablesURL, cfg.Backends.ReservationsURL)
	if err := r.Run(cfg.HTTP.Address); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
