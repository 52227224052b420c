package repository

import (
	"errors"

	"salon-backend/models"

	"gorm.io/gorm"
)

// SettingsFields is the full editable field set of the settings singleton.
type SettingsFields struct {
	BusinessName              string
	BusinessAddress           string
	BusinessPhone             string
	BusinessEmail             string
	WorkingHours              string
	NotificationReminderHours int
}

// GetOrCreateAdminSettings returns the singleton settings row, inserting it
// with defaults on first read.
func (r *Repository) GetOrCreateAdminSettings() (*models.AdminSettings, error) {
	var settings models.AdminSettings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.AdminSettings{
		BusinessName:              "Beauty Salon",
		NotificationReminderHours: 24,
	}
	if err := r.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateAdminSettings replaces the singleton's fields, inserting the row if
// none exists yet.
func (r *Repository) UpdateAdminSettings(fields SettingsFields) (*models.AdminSettings, error) {
	var settings models.AdminSettings
	err := r.db.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings.BusinessName = fields.BusinessName
	settings.BusinessAddress = fields.BusinessAddress
	settings.BusinessPhone = fields.BusinessPhone
	settings.BusinessEmail = fields.BusinessEmail
	settings.WorkingHours = fields.WorkingHours
	settings.NotificationReminderHours = fields.NotificationReminderHours

	if err := r.db.Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
