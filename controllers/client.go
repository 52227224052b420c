package controllers

import (
	"errors"
	"net/http"

	"salon-backend/repository"
	"salon-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClientController struct {
	repo *repository.Repository
}

func NewClientController(repo *repository.Repository) *ClientController {
	return &ClientController{repo: repo}
}

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name  string  `json:"name" binding:"required"`
	Phone string  `json:"phone" binding:"required"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

// CreateClient upserts a client keyed by phone number.
func (cc *ClientController) CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := cc.repo.UpsertClient(input.Name, input.Phone, input.Email, input.Notes)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save client")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) GetClients(c *gin.Context) {
	skip, limit := paginationParams(c)

	clients, err := cc.repo.ListClients(skip, limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (cc *ClientController) GetClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := cc.repo.GetClient(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}
