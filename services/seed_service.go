package services

import (
	"errors"
	"log"

	"salon-backend/models"
	"salon-backend/repository"
	"salon-backend/utils"

	"gorm.io/gorm"
)

// demoCatalog is the fixed service catalog seeded at startup and by the
// demo-data endpoint.
var demoCatalog = []repository.ServiceFields{
	{Name: "Women's Haircut", Price: 1500.0, Duration: 60, Description: "Cut and styling"},
	{Name: "Men's Haircut", Price: 800.0, Duration: 30, Description: "Clipper or scissor cut"},
	{Name: "Hair Coloring", Price: 2500.0, Duration: 120, Description: "Full hair coloring"},
	{Name: "Manicure", Price: 1000.0, Duration: 60, Description: "Classic manicure"},
}

type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// Bootstrap makes sure an admin account exists and, on a fresh database,
// seeds the demo catalog.
func (s *SeedService) Bootstrap() error {
	repo := repository.New(s.db)

	if _, err := repo.FindUserByUsername("admin"); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := utils.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin := models.User{
			Username:       "admin",
			Email:          "admin@salon.com",
			HashedPassword: hashed,
			IsActive:       true,
			IsAdmin:        true,
		}
		if err := s.db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default admin user")
	}

	var count int64
	if err := s.db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := s.SeedDemoServices(); err != nil {
			return err
		}
		log.Println("Seeded demo service catalog")
	}

	return nil
}

// SeedDemoServices inserts the fixed catalog unconditionally.
func (s *SeedService) SeedDemoServices() error {
	repo := repository.New(s.db)
	for _, fields := range demoCatalog {
		if _, err := repo.CreateService(fields); err != nil {
			return err
		}
	}
	return nil
}
