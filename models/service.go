package models

import (
	"time"
)

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"index;not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int     `json:"duration"` // in minutes
	Description string  `gorm:"type:text" json:"description"`

	// IsActive is a soft-delete marker: inactive services disappear from
	// listings but stay referenced by old appointments.
	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`

	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"-"`
}
