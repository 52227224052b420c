package main

import (
	"fmt"
	"log"

	"salon-backend/config"
	"salon-backend/models"
	"salon-backend/routes"
	"salon-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	db := config.ConnectDB(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Revenue{},
		&models.AdminSettings{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := services.NewSeedService(db).Bootstrap(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	r := routes.SetupRouter(db, cfg)
	printRoutes(r)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
