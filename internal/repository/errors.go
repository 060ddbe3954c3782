package repository

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCartLineNotFound = errors.New("cart item not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrDiscountNotFound = errors.New("discount not found")
	ErrFeeNotFound      = errors.New("fee not found")
)
