package models

import (
	"time"
)

// Appointment statuses. Any status may follow any other; the lifecycle is
// advisory, not a restricted state machine.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ClientID        uint      `gorm:"index;not null" json:"client_id"`
	ServiceID       uint      `gorm:"index;not null" json:"service_id"`
	AppointmentDate time.Time `gorm:"index" json:"appointment_date"`
	Status          string    `gorm:"default:'pending'" json:"status"`
	Notes           *string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`

	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

// AppointmentDetails is the flat projection returned by the joined
// appointment queries: appointment columns plus the client and service
// fields the admin views need.
type AppointmentDetails struct {
	ID              uint      `json:"id"`
	ClientID        uint      `json:"client_id"`
	ServiceID       uint      `json:"service_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	ServiceName     string    `json:"service_name"`
	ServicePrice    float64   `json:"service_price"`
}
