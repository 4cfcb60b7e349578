package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/store"
	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

// respondStoreError maps store sentinels onto HTTP statuses. Forbidden is
// a hard stop with no body; everything else carries the API envelope.
func respondStoreError(c *fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrForbidden) {
		return c.SendStatus(fiber.StatusForbidden)
	}

	status := fiber.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.Is(err, store.ErrNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, store.ErrDuplicateUser):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, store.ErrInvalidCredentials), errors.Is(err, store.ErrInactiveAccount):
		status, message = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrOutOfStock),
		errors.Is(err, store.ErrSelfDelete):
		status, message = fiber.StatusBadRequest, err.Error()
	}

	return c.Status(status).JSON(models.ErrorResponse(message, nil))
}
