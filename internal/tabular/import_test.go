package tabular

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

func TestImportWorkbooks(t *testing.T) {
	db := openTestDB(t)
	dataDir := t.TempDir()

	require.NoError(t, Save(filepath.Join(dataDir, UsersFile), UserColumns, []Row{
		{"username": "alice", "password": "h1", "role": "customer", "active": "True", "created_at": "2024-01-01 10:00:00"},
		{"username": "s1", "password": "h2", "role": "seller", "active": "False", "created_at": "2024-01-02 11:30:00"},
	}))
	require.NoError(t, Save(filepath.Join(dataDir, ProductsFile), ProductColumns, []Row{
		{"id": "1", "name": "Lamp", "description": "d", "price": "18.00", "stock": "8", "image": "", "seller": "s1"},
	}))
	// Duplicate/zero order ids force the repair-on-load renumbering.
	require.NoError(t, Save(filepath.Join(dataDir, OrdersFile), OrderColumns, []Row{
		{"id": "0", "product_id": "1", "product_name": "Lamp", "price": "18.00", "customer": "alice", "seller": "s1", "timestamp": "2024-02-01 09:00:00", "status": "Pending"},
		{"id": "2", "product_id": "1", "product_name": "", "price": "18.00", "customer": "alice", "seller": "s1", "timestamp": "2024-02-02 09:00:00", "status": "Pending"},
		{"id": "2", "product_id": "1", "product_name": "Lamp", "price": "18.00", "customer": "alice", "seller": "s1", "timestamp": "bogus", "status": "Shipped"},
	}))

	require.NoError(t, ImportWorkbooks(db, dataDir, nil))

	var users []models.User
	require.NoError(t, db.Order("username asc").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.True(t, users[0].Active)
	assert.False(t, users[1].Active)

	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, "Lamp", product.Name)
	assert.Equal(t, 8, product.Stock)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(18)))

	var orders []models.Order
	require.NoError(t, db.Order("id asc").Find(&orders).Error)
	// The blank-name row was dropped, the rest renumbered 1..N.
	require.Len(t, orders, 2)
	assert.EqualValues(t, 1, orders[0].ID)
	assert.EqualValues(t, 2, orders[1].ID)
	assert.Equal(t, "Shipped", orders[1].Status)
	assert.True(t, orders[1].Timestamp.IsZero(), "bogus timestamps become the zero time")
}

func TestImportWorkbooksMissingFiles(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, ImportWorkbooks(db, t.TempDir(), nil))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExportWorkbooksRoundtrip(t *testing.T) {
	db := openTestDB(t)
	dataDir := t.TempDir()

	require.NoError(t, db.Create(&models.User{Username: "alice", Password: "h1", Role: "customer", Active: true}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Lamp", Price: decimal.NewFromInt(18), Stock: 8, Seller: "s1"}).Error)

	require.NoError(t, ExportWorkbooks(db, dataDir))

	users := Load(filepath.Join(dataDir, UsersFile), UserColumns, nil)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0]["username"])
	assert.Equal(t, "True", users[0]["active"])

	products := Load(filepath.Join(dataDir, ProductsFile), ProductColumns, nil)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0]["name"])
	assert.Equal(t, "8", products[0]["stock"])

	orders := Load(filepath.Join(dataDir, OrdersFile), OrderColumns, nil)
	assert.Empty(t, orders)
}
