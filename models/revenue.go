package models

import (
	"time"
)

// Revenue is written exactly once, when an appointment first reaches the
// completed status. ServiceRevenue is the service price at transition time.
type Revenue struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Date          time.Time `gorm:"index" json:"date"`
	ServiceID     uint      `gorm:"index;not null" json:"service_id"`
	AppointmentID uint      `gorm:"index;not null" json:"appointment_id"`

	ServiceRevenue float64 `gorm:"type:decimal(10,2)" json:"service_revenue"`
	MaterialCosts  float64 `gorm:"type:decimal(10,2);default:0" json:"material_costs"`
	NetRevenue     float64 `gorm:"type:decimal(10,2)" json:"net_revenue"`
}
