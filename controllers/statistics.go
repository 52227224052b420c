package controllers

import (
	"net/http"

	"salon-backend/repository"
	"salon-backend/utils"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	repo *repository.Repository
}

func NewStatisticsController(repo *repository.Repository) *StatisticsController {
	return &StatisticsController{repo: repo}
}

func (sc *StatisticsController) GetStatistics(c *gin.Context) {
	stats, err := sc.repo.ComputeStatistics()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
