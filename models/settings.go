package models

// AdminSettings is a singleton row, created lazily with defaults on first
// read.
type AdminSettings struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	BusinessName    string `gorm:"default:'Beauty Salon'" json:"business_name"`
	BusinessAddress string `gorm:"type:text" json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
	BusinessEmail   string `json:"business_email"`
	WorkingHours    string `gorm:"type:text" json:"working_hours"`

	// Lead time, in hours, for an external notifier to remind clients
	// before their appointment.
	NotificationReminderHours int `gorm:"default:24" json:"notification_reminder_hours"`
}
