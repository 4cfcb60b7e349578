package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses form a closed set. The stored column is still a plain
// string so legacy rows with other values load without loss.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusCancelled = "Cancelled"
)

// ValidOrderStatus reports whether status belongs to the closed set.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}

// Order keeps a denormalized snapshot of the product at purchase time;
// later product edits do not touch it.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ProductID   uint            `gorm:"index" json:"product_id"`
	ProductName string          `gorm:"size:255" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Customer    string          `gorm:"size:50;index" json:"customer"`
	Seller      string          `gorm:"size:50;index" json:"seller"`
	Timestamp   time.Time       `gorm:"index" json:"timestamp"`
	Status      string          `gorm:"size:20;default:'Pending'" json:"status"`
}
