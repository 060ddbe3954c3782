package middleware

import (
	"errors"
	"log"

	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"
	"go-cafe-pos/pkg/imageenc"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a service or repository error to an HTTP status.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrCartLineNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrDiscountNotFound),
		errors.Is(err, service.ErrFeeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrOutOfStock),
		errors.Is(err, service.ErrStockLimitReached),
		errors.Is(err, service.ErrEmptyCart):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrRequiredFieldMissing),
		errors.Is(err, service.ErrInvalidField),
		errors.Is(err, service.ErrInsufficientCash),
		errors.Is(err, service.ErrPaymentMethodRequired),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, imageenc.ErrNotImage),
		errors.Is(err, imageenc.ErrFileTooLarge):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the fiber error handler. Internal failures are logged and
// hidden from the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusFor(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		if errors.Is(err, repository.ErrSchema) {
			log.Printf("stored data corrupt on %s %s: %v", c.Method(), c.Path(), err)
		} else {
			log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		}
		msg = "Internal Server Error"
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
