package middleware

import (
	"errors"
	"fmt"
	"testing"

	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrProductNotFound, 404},
		{service.ErrFeeNotFound, 404},
		{service.ErrOutOfStock, 409},
		{service.ErrStockLimitReached, 409},
		{service.ErrEmptyCart, 409},
		{fmt.Errorf("%w: field 'Name' failed on tag 'notblank'", service.ErrRequiredFieldMissing), 422},
		{service.ErrInsufficientCash, 422},
		{service.ErrPaymentMethodRequired, 422},
		{fiber.NewError(400, "Invalid id"), 400},
		{&repository.SchemaError{Key: "products", Err: errors.New("bad")}, 500},
		{errors.New("disk on fire"), 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}
