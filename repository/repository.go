// Package repository holds the typed data-access operations. Each method
// runs against the supplied gorm handle, so callers can scope a Repository
// to a transaction via New(tx).
package repository

import (
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}
