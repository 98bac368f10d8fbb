package infra

import (
	"errors"
	"log"

	"gin-shop/config"
	"gin-shop/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the admin account from config when it is missing and fills an
// empty catalog with demo products.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var admin models.User
	err := db.First(&admin, "email = ?", cfg.AdminEmail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = models.User{
			Email:    cfg.AdminEmail,
			Password: string(hashedPassword),
			IsAdmin:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Seeded admin user %s", cfg.AdminEmail)
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		demo := []models.Product{
			{Name: "Mechanical Keyboard", Description: "RGB hot-swappable 87 keys", Price: 399.0, Stock: 50},
			{Name: "Gaming Mouse", Description: "Lightweight esports mouse", Price: 199.0, Stock: 100},
			{Name: "27\" 4K Monitor", Description: "IPS 99% sRGB", Price: 1699.0, Stock: 20},
		}
		if err := db.Create(&demo).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d demo products", len(demo))
	}

	return nil
}
