package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/store"
	"github.com/Yash-Ghyar/Secure-E-Commerce/middleware"
	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, store.ErrNotFound
	}
	return uint(id), nil
}

// GetAllProducts - GET /products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := store.ListProducts(h.DB)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": products})
}

// GetProduct - GET /products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondStoreError(c, err)
	}
	product, err := store.GetProduct(h.DB, id)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// GetMyProducts - GET /products/seller
// The seller dashboard: their products and stock levels.
func (h *ProductHandler) GetMyProducts(c *fiber.Ctx) error {
	seller, _ := middleware.Identity(c)
	products, err := store.ListProductsBySeller(h.DB, seller)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": products})
}

// CreateProduct - POST /products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req store.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input", nil))
	}

	seller, _ := middleware.Identity(c)
	product, err := store.CreateProduct(h.DB, seller, req)
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		models.SuccessResponse("Product added successfully!", product))
}

// UpdateProduct - PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondStoreError(c, err)
	}

	var req store.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input", nil))
	}

	seller, _ := middleware.Identity(c)
	product, err := store.UpdateProduct(h.DB, seller, id, req)
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.JSON(models.SuccessResponse("Product updated successfully!", product))
}

// DeleteProduct - DELETE /products/:id
// Sellers delete their own products, admins delete any.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondStoreError(c, err)
	}

	actor, role := middleware.Identity(c)
	if err := store.DeleteProduct(h.DB, actor, role, id); err != nil {
		return respondStoreError(c, err)
	}

	return c.JSON(models.SuccessResponse("Product deleted successfully!", nil))
}
