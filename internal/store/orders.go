package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

// PlaceOrder creates an order for the customer and decrements the
// product's stock. Both writes run inside one transaction so a purchase
// either fully happens or not at all, and two concurrent purchases cannot
// both pass the stock check.
func PlaceOrder(db *gorm.DB, customer string, productID uint, quantity int) (*models.Order, error) {
	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("lock product: %w", err)
		}

		if product.Stock <= 0 {
			return ErrOutOfStock
		}
		if quantity < 1 || quantity > product.Stock {
			return fmt.Errorf("%w: invalid quantity", ErrValidation)
		}

		order = &models.Order{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Customer:    customer,
			Seller:      product.Seller,
			Timestamp:   time.Now(),
			Status:      models.OrderStatusPending,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		// Conditional decrement; a concurrent purchase that drained the
		// stock first leaves zero rows affected.
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", product.ID, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return fmt.Errorf("decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrOutOfStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrdersForCustomer returns the customer's purchases, newest first.
func ListOrdersForCustomer(db *gorm.DB, customer string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Where("customer = ?", customer).Order("timestamp desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return orders, nil
}

// ListOrdersForSeller returns the seller's sales, newest first.
func ListOrdersForSeller(db *gorm.DB, seller string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Where("seller = ?", seller).Order("timestamp desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list seller orders: %w", err)
	}
	return orders, nil
}

// ListAllOrders returns every order, newest first. Legacy rows whose
// timestamp never parsed carry the zero time and sort to the end.
func ListAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Order("timestamp desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new status from the closed set.
func UpdateOrderStatus(db *gorm.DB, id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status
	return &order, nil
}
