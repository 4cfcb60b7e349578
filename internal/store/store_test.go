package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}))
	return db
}

func mustRegister(t *testing.T, db *gorm.DB, username, password, role string) *models.User {
	t.Helper()
	user, err := RegisterUser(db, username, password, role)
	require.NoError(t, err)
	return user
}

func mustCreateProduct(t *testing.T, db *gorm.DB, seller string, in ProductInput) *models.Product {
	t.Helper()
	product, err := CreateProduct(db, seller, in)
	require.NoError(t, err)
	return product
}
