package repository

import (
	"salon-backend/models"
)

// CreateUser inserts a user with an already-hashed password. Duplicate
// usernames or emails fail on the store's uniqueness constraints.
func (r *Repository) CreateUser(username, email, hashedPassword string) (*models.User, error) {
	user := models.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}

	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
