// Package services holds the domain rules around the appointment lifecycle:
// booking upserts the client by phone, and completing an appointment books
// revenue exactly once.
package services

import (
	"errors"
	"fmt"
	"time"

	"salon-backend/models"
	"salon-backend/repository"

	"gorm.io/gorm"
)

// ErrInvalidStatus is returned for a status outside the known lifecycle set.
var ErrInvalidStatus = errors.New("invalid appointment status")

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

// Book creates an appointment inside a single transaction: the client is
// upserted by phone, the service is verified to exist, and the appointment
// starts out pending.
func (s *AppointmentService) Book(clientName, clientPhone string, serviceID uint, date time.Time, notes *string) (*models.Appointment, error) {
	var appointment *models.Appointment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		client, err := repo.UpsertClient(clientName, clientPhone, nil, nil)
		if err != nil {
			return err
		}

		if _, err := repo.GetService(serviceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("service %d not found", serviceID)
			}
			return err
		}

		appointment, err = repo.CreateAppointment(client.ID, serviceID, date, notes)
		return err
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

// TransitionStatus moves an appointment to newStatus. Transitions between
// valid statuses are unconditional. Entering completed inserts one Revenue
// row priced at the service's current price; an appointment that already has
// a revenue row is left alone, so re-completing is idempotent.
func (s *AppointmentService) TransitionStatus(appointmentID uint, newStatus string) (*models.AppointmentDetails, error) {
	if !models.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var details *models.AppointmentDetails

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		var appointment models.Appointment
		if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
			return err
		}

		appointment.Status = newStatus
		if err := tx.Save(&appointment).Error; err != nil {
			return err
		}

		if newStatus == models.StatusCompleted {
			if err := s.recordRevenue(tx, repo, &appointment); err != nil {
				return err
			}
		}

		var err error
		details, err = repo.GetAppointmentDetails(appointmentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return details, nil
}

func (s *AppointmentService) recordRevenue(tx *gorm.DB, repo *repository.Repository, appointment *models.Appointment) error {
	existing, err := repo.CountRevenueForAppointment(appointment.ID)
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	service, err := repo.GetService(appointment.ServiceID)
	if err != nil {
		return err
	}

	revenue := models.Revenue{
		Date:           time.Now(),
		ServiceID:      appointment.ServiceID,
		AppointmentID:  appointment.ID,
		ServiceRevenue: service.Price,
		MaterialCosts:  0,
		NetRevenue:     service.Price,
	}
	return tx.Create(&revenue).Error
}
