package models

import (
	"time"
)

// Client is the person a booking is made for. Phone is the natural key:
// appointment creation upserts clients by phone instead of inserting
// duplicates.
type Client struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"index;not null" json:"name"`
	Phone string  `gorm:"uniqueIndex;not null" json:"phone"`
	Email *string `json:"email"`
	Notes *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`

	Appointments []Appointment `gorm:"foreignKey:ClientID" json:"-"`
}
