package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

func TestPlaceOrder(t *testing.T) {
	db := openTestDB(t)
	product := mustCreateProduct(t, db, "s1", ProductInput{Name: "Lamp", Price: "18.00", Stock: "8"})

	order, err := PlaceOrder(db, "c1", product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, "c1", order.Customer)
	assert.Equal(t, "s1", order.Seller)
	assert.Equal(t, "Lamp", order.ProductName)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.Price.Equal(decimal.NewFromInt(18)))
	assert.NotZero(t, order.ID)

	// Stock dropped by exactly the purchased quantity.
	got, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPlaceOrderSnapshotIsDenormalized(t *testing.T) {
	db := openTestDB(t)
	product := mustCreateProduct(t, db, "s1", ProductInput{Name: "Lamp", Price: "18.00", Stock: "8"})

	order, err := PlaceOrder(db, "c1", product.ID, 1)
	require.NoError(t, err)

	// A later product edit must not touch the order row.
	_, err = UpdateProduct(db, "s1", product.ID, ProductInput{Name: "Renamed", Price: "99.99", Stock: "7"})
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, "Lamp", got.ProductName)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(18)))
}

func TestPlaceOrderFailures(t *testing.T) {
	db := openTestDB(t)
	product := mustCreateProduct(t, db, "s1", ProductInput{Name: "Lamp", Price: "18.00", Stock: "2"})
	empty := mustCreateProduct(t, db, "s1", ProductInput{Name: "Gone", Price: "5.00", Stock: "0"})

	_, err := PlaceOrder(db, "c1", 9999, 1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = PlaceOrder(db, "c1", empty.ID, 1)
	require.ErrorIs(t, err, ErrOutOfStock)

	_, err = PlaceOrder(db, "c1", product.ID, 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = PlaceOrder(db, "c1", product.ID, 3)
	require.ErrorIs(t, err, ErrValidation)

	// No partial effects: stock and order table untouched.
	got, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderListingsAreScoped(t *testing.T) {
	db := openTestDB(t)
	p1 := mustCreateProduct(t, db, "s1", ProductInput{Name: "A", Price: "1", Stock: "10"})
	p2 := mustCreateProduct(t, db, "s2", ProductInput{Name: "B", Price: "1", Stock: "10"})

	_, err := PlaceOrder(db, "c1", p1.ID, 1)
	require.NoError(t, err)
	_, err = PlaceOrder(db, "c1", p2.ID, 1)
	require.NoError(t, err)
	_, err = PlaceOrder(db, "c2", p1.ID, 1)
	require.NoError(t, err)

	mine, err := ListOrdersForCustomer(db, "c1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "c1", o.Customer)
	}

	sales, err := ListOrdersForSeller(db, "s1")
	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, o := range sales {
		assert.Equal(t, "s1", o.Seller)
	}

	all, err := ListAllOrders(db)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListAllOrdersSortsZeroTimestampsLast(t *testing.T) {
	db := openTestDB(t)

	rows := []models.Order{
		{ProductName: "old", Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Status: models.OrderStatusPending},
		{ProductName: "unparsed", Timestamp: time.Time{}, Status: models.OrderStatusPending},
		{ProductName: "new", Timestamp: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Status: models.OrderStatusPending},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	all, err := ListAllOrders(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ProductName)
	assert.Equal(t, "old", all[1].ProductName)
	assert.Equal(t, "unparsed", all[2].ProductName)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := openTestDB(t)
	product := mustCreateProduct(t, db, "s1", ProductInput{Name: "Lamp", Price: "18.00", Stock: "8"})
	order, err := PlaceOrder(db, "c1", product.ID, 1)
	require.NoError(t, err)

	updated, err := UpdateOrderStatus(db, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	_, err = UpdateOrderStatus(db, order.ID, "Teleported")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = UpdateOrderStatus(db, 9999, models.OrderStatusCancelled)
	require.ErrorIs(t, err, ErrNotFound)

	// The rejected status never landed.
	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, got.Status)
}
