package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/seclog"
	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/store"
	"github.com/Yash-Ghyar/Secure-E-Commerce/middleware"
	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
	"github.com/Yash-Ghyar/Secure-E-Commerce/utils"
)

type AuthHandler struct {
	DB  *gorm.DB
	Sec *seclog.Logger
}

func NewAuthHandler(db *gorm.DB, sec *seclog.Logger) *AuthHandler {
	return &AuthHandler{DB: db, Sec: sec}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// dashboardPath maps a role onto its landing page: admins get the admin
// dashboard, sellers their stock view, customers their own dashboard.
func dashboardPath(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/users/admin"
	case models.RoleSeller:
		return "/products/seller"
	default:
		return "/users/customer"
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input", nil))
	}

	user, err := store.RegisterUser(h.DB, req.Username, req.Password, req.Role)
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		models.SuccessResponse("Registration successful! Please login.", user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input", nil))
	}

	user, err := store.Authenticate(h.DB, req.Username, req.Password)
	if err != nil {
		// Each failure path is distinguishable in the security log even
		// though the client sees one generic answer.
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.Sec.Record(req.Username, "Failed (No such user)")
		case errors.Is(err, store.ErrInactiveAccount):
			h.Sec.Record(req.Username, "Failed (Inactive account)")
			return c.Status(fiber.StatusUnauthorized).JSON(
				models.ErrorResponse("Account is deactivated.", nil))
		case errors.Is(err, store.ErrInvalidCredentials):
			h.Sec.Record(req.Username, "Failed (Wrong password)")
		default:
			return respondStoreError(c, err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("Invalid username or password.", nil))
	}

	token, err := utils.GenerateToken(user.Username, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			models.ErrorResponse("Could not login", nil))
	}

	h.Sec.Record(user.Username, "Success")

	return c.JSON(fiber.Map{
		"token":    token,
		"user":     user,
		"redirect": dashboardPath(user.Role),
	})
}

// Logout logs the event under the token's username, or "unknown" when the
// request carries no usable token. Tokens are stateless; the client drops
// its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	username, _, ok := middleware.ParseIdentity(c)
	if !ok {
		username = "unknown"
	}
	h.Sec.Record(username, "Logout")

	return c.JSON(models.SuccessResponse("You have been logged out successfully.", nil))
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	username, _ := middleware.Identity(c)
	user, err := store.GetUser(h.DB, username)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}

// Dashboard resolves the caller's landing page by role.
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	username, role := middleware.Identity(c)
	return c.JSON(fiber.Map{
		"user":     username,
		"role":     role,
		"redirect": dashboardPath(role),
	})
}
