package controllers

import (
	"net/http"
	"time"

	"salon-backend/services"
	"salon-backend/utils"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	seed *services.SeedService
}

func NewHealthController(seed *services.SeedService) *HealthController {
	return &HealthController{seed: seed}
}

func (hc *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// CreateDemoData seeds the fixed service catalog.
func (hc *HealthController) CreateDemoData(c *gin.Context) {
	if err := hc.seed.SeedDemoServices(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create demo data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Demo data created successfully"})
}
