package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"salon-backend/repository"
	"salon-backend/services"
	"salon-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AppointmentController struct {
	repo *repository.Repository
	svc  *services.AppointmentService
}

func NewAppointmentController(repo *repository.Repository, svc *services.AppointmentService) *AppointmentController {
	return &AppointmentController{repo: repo, svc: svc}
}

// CreateAppointmentInput defines the expected JSON structure for booking.
// AppointmentDate accepts RFC3339 or the naive "2006-01-02T15:04:05" form.
type CreateAppointmentInput struct {
	ClientName      string  `json:"client_name" binding:"required"`
	ClientPhone     string  `json:"client_phone" binding:"required"`
	ServiceID       uint    `json:"service_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	Notes           *string `json:"notes"`
}

// UpdateStatusInput carries the new lifecycle status.
type UpdateStatusInput struct {
	Status string `json:"status"`
}

// CreateAppointment books an appointment, upserting the client by phone.
// Failures are logged and surfaced as 400 with the error detail.
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDateTime(input.AppointmentDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment_date format")
		return
	}

	appointment, err := ac.svc.Book(input.ClientName, input.ClientPhone, input.ServiceID, date, input.Notes)
	if err != nil {
		log.Printf("Error creating appointment: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	skip, limit := paginationParams(c)

	appointments, err := ac.repo.ListAppointments(skip, limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appointment, err := ac.repo.GetAppointment(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func (ac *AppointmentController) GetAppointmentsWithDetails(c *gin.Context) {
	skip, limit := paginationParams(c)

	details, err := ac.repo.ListAppointmentsWithDetails(skip, limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetClientAppointments returns the booking history for one phone number.
func (ac *AppointmentController) GetClientAppointments(c *gin.Context) {
	phone := c.Param("phone")

	details, err := ac.repo.ListAppointmentsByPhone(phone)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetAllAppointments is the admin view with conjunctive status and date
// filters.
func (ac *AppointmentController) GetAllAppointments(c *gin.Context) {
	status := c.Query("status")

	var dateFrom, dateTo *time.Time
	if s := c.Query("date_from"); s != "" {
		t, err := utils.ParseDateFrom(s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date_from, expected YYYY-MM-DD")
			return
		}
		dateFrom = &t
	}
	if s := c.Query("date_to"); s != "" {
		t, err := utils.ParseDateTo(s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date_to, expected YYYY-MM-DD")
			return
		}
		dateTo = &t
	}

	details, err := ac.repo.ListAppointmentsFiltered(status, dateFrom, dateTo)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, details)
}

// UpdateAppointmentStatus transitions the lifecycle status and returns the
// detailed row.
func (ac *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Status is required")
		return
	}

	details, err := ac.svc.TransitionStatus(id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status value")
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	c.JSON(http.StatusOK, details)
}
