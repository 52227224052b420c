package repository

import (
	"time"

	"salon-backend/models"
	"salon-backend/utils"
)

type PopularService struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type Statistics struct {
	TotalAppointments     int64            `json:"total_appointments"`
	CompletedAppointments int64            `json:"completed_appointments"`
	PendingAppointments   int64            `json:"pending_appointments"`
	TotalRevenue          float64          `json:"total_revenue"`
	MonthlyRevenue        float64          `json:"monthly_revenue"`
	PopularServices       []PopularService `json:"popular_services"`
}

// ComputeStatistics aggregates the admin dashboard numbers: appointment
// counts by status, net revenue overall and since the first of the current
// month, and the five most-booked services.
func (r *Repository) ComputeStatistics() (*Statistics, error) {
	stats := Statistics{PopularServices: []PopularService{}}

	if err := r.db.Model(&models.Appointment{}).
		Count(&stats.TotalAppointments).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Appointment{}).
		Where("status = ?", models.StatusCompleted).
		Count(&stats.CompletedAppointments).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Appointment{}).
		Where("status = ?", models.StatusPending).
		Count(&stats.PendingAppointments).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Revenue{}).
		Select("COALESCE(SUM(net_revenue), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	firstOfMonth := utils.FirstOfMonth(time.Now())
	if err := r.db.Model(&models.Revenue{}).
		Where("date >= ?", firstOfMonth).
		Select("COALESCE(SUM(net_revenue), 0)").
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Appointment{}).
		Select("services.name AS name, COUNT(appointments.id) AS count").
		Joins("JOIN services ON services.id = appointments.service_id").
		Group("services.name").
		Order("count DESC").
		Limit(5).
		Scan(&stats.PopularServices).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
