package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/store"
	"github.com/Yash-Ghyar/Secure-E-Commerce/middleware"
	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

// BuyRequest defines the payload for a purchase
type BuyRequest struct {
	Quantity int `json:"quantity"`
}

// BuyProduct - POST /orders/buy/:id
func (h *OrderHandler) BuyProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondStoreError(c, err)
	}

	req := BuyRequest{Quantity: 1}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input", nil))
		}
	}

	customer, _ := middleware.Identity(c)
	order, err := store.PlaceOrder(h.DB, customer, id, req.Quantity)
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		models.SuccessResponse("Order placed successfully!", order))
}

// MyOrders - GET /orders/customer
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	customer, _ := middleware.Identity(c)
	orders, err := store.ListOrdersForCustomer(h.DB, customer)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": orders})
}

// SellerOrders - GET /orders/seller
func (h *OrderHandler) SellerOrders(c *fiber.Ctx) error {
	seller, _ := middleware.Identity(c)
	orders, err := store.ListOrdersForSeller(h.DB, seller)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": orders})
}

// AllOrders - GET /orders/admin
func (h *OrderHandler) AllOrders(c *fiber.Ctx) error {
	orders, err := store.ListAllOrders(h.DB)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": orders})
}

// UpdateStatusRequest defines the payload for a status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus - PUT /orders/:id/status
// Sellers and admins move orders through the status set.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondStoreError(c, err)
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input", nil))
	}

	order, err := store.UpdateOrderStatus(h.DB, id, req.Status)
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.JSON(models.SuccessResponse("Order status updated successfully!", order))
}
