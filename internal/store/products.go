package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

// ProductInput carries the form fields for adding or editing a product.
// Price and Stock arrive as strings and are validated here, matching the
// form-level parsing the storefront does.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	Image       string `json:"image"`
}

func (in *ProductInput) parse() (decimal.Decimal, int, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() {
		return decimal.Zero, 0, fmt.Errorf("%w: invalid price value", ErrValidation)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(in.Stock))
	if err != nil || stock < 0 {
		return decimal.Zero, 0, fmt.Errorf("%w: invalid stock value", ErrValidation)
	}
	return price, stock, nil
}

// ListProducts returns the whole catalog, newest first.
func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListProductsBySeller returns the catalog rows owned by one seller.
func ListProductsBySeller(db *gorm.DB, seller string) ([]models.Product, error) {
	var products []models.Product
	if err := db.Where("seller = ?", seller).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list seller products: %w", err)
	}
	return products, nil
}

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

// CreateProduct inserts a new catalog row owned by seller.
func CreateProduct(db *gorm.DB, seller string, in ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	price, stock, err := in.parse()
	if err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Stock:       stock,
		Image:       in.Image,
		Seller:      seller,
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct edits a product owned by seller. A non-owner gets
// ErrForbidden; the image is replaced only when a new one is supplied.
func UpdateProduct(db *gorm.DB, seller string, id uint, in ProductInput) (*models.Product, error) {
	product, err := GetProduct(db, id)
	if err != nil {
		return nil, err
	}
	if product.Seller != seller {
		return nil, ErrForbidden
	}

	price, stock, err := in.parse()
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(in.Name)
	product.Description = strings.TrimSpace(in.Description)
	product.Price = price
	product.Stock = stock
	if in.Image != "" {
		product.Image = in.Image
	}

	if err := db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a catalog row. Sellers may delete only their own
// products; admins may delete any; other roles are refused outright.
func DeleteProduct(db *gorm.DB, actor, role string, id uint) error {
	product, err := GetProduct(db, id)
	if err != nil {
		return err
	}

	switch role {
	case models.RoleSeller:
		if product.Seller != actor {
			return ErrForbidden
		}
	case models.RoleAdmin:
	default:
		return ErrForbidden
	}

	if err := db.Delete(product).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
