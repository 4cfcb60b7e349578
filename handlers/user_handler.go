package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/seclog"
	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/store"
	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/tabular"
	"github.com/Yash-Ghyar/Secure-E-Commerce/middleware"
	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

// UserHandler carries the admin-only account management surface.
type UserHandler struct {
	DB      *gorm.DB
	Sec     *seclog.Logger
	DataDir string
}

func NewUserHandler(db *gorm.DB, sec *seclog.Logger, dataDir string) *UserHandler {
	return &UserHandler{DB: db, Sec: sec, DataDir: dataDir}
}

// AdminDashboard - GET /users/admin
func (h *UserHandler) AdminDashboard(c *fiber.Ctx) error {
	username, _ := middleware.Identity(c)
	counts, err := store.CountUsers(h.DB)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"user": username, "data": counts})
}

// ListUsers - GET /users/admin/users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := store.ListUsers(h.DB)
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(fiber.Map{"data": users})
}

// ToggleActive - POST /users/admin/toggle/:username
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	actor, _ := middleware.Identity(c)
	target := c.Params("username")

	user, err := store.ToggleActive(h.DB, target)
	if err != nil {
		return respondStoreError(c, err)
	}

	action := "Deactivated"
	if user.Active {
		action = "Reactivated"
	}
	h.Sec.Record(target, fmt.Sprintf("Admin %s by %s", action, actor))

	return c.JSON(models.SuccessResponse(
		fmt.Sprintf("User %s successfully.", strings.ToLower(action)), user))
}

// DeleteUser - DELETE /users/admin/:username
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	actor, _ := middleware.Identity(c)
	target := c.Params("username")

	if err := store.DeleteUser(h.DB, actor, target); err != nil {
		return respondStoreError(c, err)
	}

	h.Sec.Record(target, fmt.Sprintf("Deleted by admin %s", actor))
	return c.JSON(models.SuccessResponse("User deleted successfully.", nil))
}

// Export - POST /admin/export
// Writes the current database state back out as the legacy spreadsheet
// workbooks, for operators still living in that world.
func (h *UserHandler) Export(c *fiber.Ctx) error {
	if err := tabular.ExportWorkbooks(h.DB, h.DataDir); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			models.ErrorResponse("Export failed", err.Error()))
	}
	return c.JSON(models.SuccessResponse("Workbooks exported.", nil))
}
