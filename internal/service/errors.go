package service

import (
	"errors"
	"fmt"

	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"
	"go-cafe-pos/pkg/validator"
)

var (
	ErrRequiredFieldMissing  = errors.New("required field missing")
	ErrInvalidField          = errors.New("invalid field")
	ErrOutOfStock            = errors.New("product is out of stock")
	ErrStockLimitReached     = errors.New("cannot add more than available stock")
	ErrInsufficientCash      = errors.New("cash amount is less than total")
	ErrPaymentMethodRequired = errors.New("payment method required")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrEmptyCart             = errors.New("cart is empty")

	ErrProductNotFound  = repository.ErrProductNotFound
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrCartLineNotFound = repository.ErrCartLineNotFound
	ErrUserNotFound     = repository.ErrUserNotFound
	ErrDiscountNotFound = repository.ErrDiscountNotFound
	ErrFeeNotFound      = repository.ErrFeeNotFound
)

// validate runs struct validation and wraps the first failure in
// ErrRequiredFieldMissing or ErrInvalidField.
func validate(v interface{}) error {
	errs := validator.ValidateStruct(v)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	sentinel := ErrInvalidField
	if first.Tag == "required" || first.Tag == "notblank" {
		sentinel = ErrRequiredFieldMissing
	}
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", sentinel, first.FailedField, first.Tag)
}

// Notifier receives operator notifications. *ws.Hub implements it.
type Notifier interface {
	Notify(n ws.Notification)
}

type nopNotifier struct{}

func (nopNotifier) Notify(ws.Notification) {}

// NopNotifier discards every notification.
var NopNotifier Notifier = nopNotifier{}

func orNop(n Notifier) Notifier {
	if n == nil {
		return NopNotifier
	}
	return n
}
