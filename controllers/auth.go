package controllers

import (
	"errors"
	"net/http"

	"salon-backend/config"
	"salon-backend/repository"
	"salon-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo *repository.Repository
	cfg  *config.Config
}

func NewAuthController(repo *repository.Repository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, cfg: cfg}
}

// Token handles the form-encoded login and returns a bearer token.
func (a *AuthController) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := a.repo.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Incorrect username or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	token, err := utils.GenerateToken(user.Username, a.cfg.JWT.Secret, a.cfg.JWT.ExpiryMinutes)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Register creates a user from a form-encoded request and logs them in.
func (a *AuthController) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if username == "" || email == "" || password == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	if _, err := a.repo.FindUserByUsername(username); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := a.repo.CreateUser(username, email, hashed)
	if err != nil {
		utils.RespondWithError(c, http.StatusConflict, "Username or email already registered")
		return
	}

	token, err := utils.GenerateToken(user.Username, a.cfg.JWT.Secret, a.cfg.JWT.ExpiryMinutes)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user_id":      user.ID,
		"username":     user.Username,
		"is_admin":     user.IsAdmin,
	})
}

// Me returns the user behind the presented token.
func (a *AuthController) Me(c *gin.Context) {
	username := c.GetString("username")

	user, err := a.repo.FindUserByUsername(username)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}
