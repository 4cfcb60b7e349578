package config

import (
	"errors"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
	"github.com/Yash-Ghyar/Secure-E-Commerce/utils"
)

// SeedAdmin makes sure at least one admin account exists. The password
// comes from ADMIN_PASSWORD and is only used when the account is created.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		Log.Warn("ADMIN_PASSWORD not set, seeding admin with the default password")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Password: hashed,
		Role:     models.RoleAdmin,
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	Log.Infow("Admin account seeded", "username", admin.Username)
	return nil
}

// SeedDemo loads a small development dataset: one seller, one customer
// and a few products. Existing usernames are left alone.
func SeedDemo(db *gorm.DB) {
	Log.Info("Seeding demo data...")

	password, _ := utils.HashPassword("password123")

	users := []models.User{
		{Username: "seller1", Password: password, Role: models.RoleSeller, Active: true},
		{Username: "customer1", Password: password, Role: models.RoleCustomer, Active: true},
	}
	for _, user := range users {
		var existing models.User
		if err := db.Where("username = ?", user.Username).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&user).Error; err != nil {
					Log.Warnw("Failed to seed user", "username", user.Username, "error", err)
				}
			}
		}
	}

	products := []models.Product{
		{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: decimal.NewFromFloat(79.99), Stock: 12, Seller: "seller1"},
		{Name: "USB-C Hub", Description: "7 ports", Price: decimal.NewFromFloat(24.50), Stock: 30, Seller: "seller1"},
		{Name: "Desk Lamp", Description: "Warm white, dimmable", Price: decimal.NewFromFloat(18.00), Stock: 8, Seller: "seller1"},
	}
	for _, product := range products {
		var existing models.Product
		if err := db.Where("name = ? AND seller = ?", product.Name, product.Seller).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&product).Error; err != nil {
					Log.Warnw("Failed to seed product", "name", product.Name, "error", err)
				}
			}
		}
	}

	Log.Info("Demo seeding complete")
}
