package repository

import (
	"salon-backend/models"
)

// ServiceFields is the full editable field set of a service. Updates
// replace every field explicitly; the active flag is managed separately.
type ServiceFields struct {
	Name        string
	Price       float64
	Duration    int
	Description string
}

func (r *Repository) CreateService(fields ServiceFields) (*models.Service, error) {
	service := models.Service{
		Name:        fields.Name,
		Price:       fields.Price,
		Duration:    fields.Duration,
		Description: fields.Description,
		IsActive:    true,
	}

	if err := r.db.Create(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

// ListActiveServices returns only services that have not been soft-deleted.
func (r *Repository) ListActiveServices(offset, limit int) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("is_active = ?", true).Offset(offset).Limit(limit).Find(&services).Error
	return services, err
}

func (r *Repository) GetService(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService replaces all editable fields of the service.
func (r *Repository) UpdateService(id uint, fields ServiceFields) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}

	service.Name = fields.Name
	service.Price = fields.Price
	service.Duration = fields.Duration
	service.Description = fields.Description

	if err := r.db.Save(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}
