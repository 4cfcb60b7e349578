package models

import (
	"time"
)

// Roles a user can hold. Admin accounts are normally seeded, but
// registration does not forbid the role.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role belongs to the known set.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Login
	Username string `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Password string `gorm:"not null" json:"-"`

	// Role & Status
	// Active has no column default: gorm omits zero-value fields that
	// carry one, so a false would never reach the database. Writers set
	// it explicitly.
	Role   string `gorm:"default:'customer';size:20" json:"role"` // customer, seller, admin
	Active bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
