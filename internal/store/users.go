package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
	"github.com/Yash-Ghyar/Secure-E-Commerce/utils"
)

// RegisterUser creates an account with a bcrypt-hashed password and an
// active flag defaulting to true.
func RegisterUser(db *gorm.DB, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Password: hashed,
		Role:     role,
		Active:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate checks credentials and account status. The caller is
// expected to record the outcome in the security log; the distinct errors
// keep the outcomes distinguishable.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !user.Active {
		return nil, ErrInactiveAccount
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser fetches a single account by username.
func GetUser(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return &user, nil
}

// ListUsers returns every account, oldest first. Password hashes stay out
// of responses through the model's json tag.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UserCounts holds the admin dashboard totals.
type UserCounts struct {
	Total     int64 `json:"total_users"`
	Sellers   int64 `json:"total_sellers"`
	Customers int64 `json:"total_customers"`
}

func CountUsers(db *gorm.DB) (*UserCounts, error) {
	var counts UserCounts
	if err := db.Model(&models.User{}).Count(&counts.Total).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleSeller).Count(&counts.Sellers).Error; err != nil {
		return nil, fmt.Errorf("count sellers: %w", err)
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&counts.Customers).Error; err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	return &counts, nil
}

// ToggleActive flips an account's active flag and returns the updated
// user, so the caller can log which way it went.
func ToggleActive(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user.Active = !user.Active
	if err := db.Model(&user).Update("active", user.Active).Error; err != nil {
		return nil, fmt.Errorf("toggle active: %w", err)
	}
	return &user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func DeleteUser(db *gorm.DB, actor, username string) error {
	if username == actor {
		return ErrSelfDelete
	}

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := db.Delete(&user).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
