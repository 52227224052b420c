package controllers

import (
	"net/http"

	"salon-backend/repository"
	"salon-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	repo *repository.Repository
}

func NewSettingsController(repo *repository.Repository) *SettingsController {
	return &SettingsController{repo: repo}
}

// SettingsInput defines the JSON structure for replacing the settings
// singleton.
type SettingsInput struct {
	BusinessName              string `json:"business_name" binding:"required"`
	BusinessAddress           string `json:"business_address"`
	BusinessPhone             string `json:"business_phone"`
	BusinessEmail             string `json:"business_email"`
	WorkingHours              string `json:"working_hours"`
	NotificationReminderHours int    `json:"notification_reminder_hours"`
}

// GetSettings serves both the admin route and the public read alias. The
// singleton row is created with defaults on first read.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.repo.GetOrCreateAdminSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.NotificationReminderHours == 0 {
		input.NotificationReminderHours = 24
	}

	settings, err := sc.repo.UpdateAdminSettings(repository.SettingsFields{
		BusinessName:              input.BusinessName,
		BusinessAddress:           input.BusinessAddress,
		BusinessPhone:             input.BusinessPhone,
		BusinessEmail:             input.BusinessEmail,
		WorkingHours:              input.WorkingHours,
		NotificationReminderHours: input.NotificationReminderHours,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
