package repository

import (
	"errors"

	"salon-backend/models"

	"gorm.io/gorm"
)

// UpsertClient inserts a client or, when the phone is already known,
// overwrites the existing row's fields with the non-nil incoming values.
// Phone is the natural key: the same phone never produces two rows.
func (r *Repository) UpsertClient(name, phone string, email, notes *string) (*models.Client, error) {
	var existing models.Client
	err := r.db.Where("phone = ?", phone).First(&existing).Error
	if err == nil {
		existing.Name = name
		if email != nil {
			existing.Email = email
		}
		if notes != nil {
			existing.Notes = notes
		}
		if err := r.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client := models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
		Notes: notes,
	}
	if err := r.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *Repository) ListClients(offset, limit int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Offset(offset).Limit(limit).Find(&clients).Error
	return clients, err
}

func (r *Repository) GetClient(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
