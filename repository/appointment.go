package repository

import (
	"time"

	"salon-backend/models"

	"gorm.io/gorm"
)

// Columns for the flat appointment projection used by the admin views.
const detailsSelect = "appointments.*, clients.name AS client_name, clients.phone AS client_phone, " +
	"services.name AS service_name, services.price AS service_price"

func (r *Repository) detailsQuery() *gorm.DB {
	return r.db.Model(&models.Appointment{}).
		Select(detailsSelect).
		Joins("JOIN clients ON clients.id = appointments.client_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Order("appointments.appointment_date DESC")
}

// CreateAppointment inserts an appointment in the initial pending status.
func (r *Repository) CreateAppointment(clientID, serviceID uint, date time.Time, notes *string) (*models.Appointment, error) {
	appointment := models.Appointment{
		ClientID:        clientID,
		ServiceID:       serviceID,
		AppointmentDate: date,
		Status:          models.StatusPending,
		Notes:           notes,
	}

	if err := r.db.Create(&appointment).Error; err != nil {
		return nil, err
	}

	return &appointment, nil
}

// ListAppointments returns appointments newest-first, each enriched with its
// client and service.
func (r *Repository) ListAppointments(offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Client").Preload("Service").
		Order("appointment_date DESC").
		Offset(offset).Limit(limit).
		Find(&appointments).Error
	return appointments, err
}

func (r *Repository) ListAppointmentsWithDetails(offset, limit int) ([]models.AppointmentDetails, error) {
	details := []models.AppointmentDetails{}
	err := r.detailsQuery().Offset(offset).Limit(limit).Scan(&details).Error
	return details, err
}

func (r *Repository) ListAppointmentsByPhone(phone string) ([]models.AppointmentDetails, error) {
	details := []models.AppointmentDetails{}
	err := r.detailsQuery().Where("clients.phone = ?", phone).Scan(&details).Error
	return details, err
}

// ListAppointmentsFiltered applies conjunctive filters: exact status match
// (skipped when empty or "all"), an inclusive dateFrom lower bound at
// midnight and an inclusive dateTo upper bound at 23:59:59 of that day.
func (r *Repository) ListAppointmentsFiltered(status string, dateFrom, dateTo *time.Time) ([]models.AppointmentDetails, error) {
	query := r.detailsQuery()

	if status != "" && status != "all" {
		query = query.Where("appointments.status = ?", status)
	}
	if dateFrom != nil {
		query = query.Where("appointments.appointment_date >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("appointments.appointment_date <= ?", *dateTo)
	}

	details := []models.AppointmentDetails{}
	err := query.Scan(&details).Error
	return details, err
}

func (r *Repository) GetAppointment(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Client").Preload("Service").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *Repository) GetAppointmentDetails(id uint) (*models.AppointmentDetails, error) {
	var details models.AppointmentDetails
	result := r.detailsQuery().Where("appointments.id = ?", id).Scan(&details)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &details, nil
}

// CountRevenueForAppointment backs the guard that keeps re-completion from
// booking revenue twice.
func (r *Repository) CountRevenueForAppointment(appointmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Revenue{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	return count, err
}
