package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrEmptyCart          = errors.New("cart is empty")
)

// InsufficientStockError aborts a checkout and names the first product whose
// stock could not cover the requested quantity.
type InsufficientStockError struct {
	ProductID uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %d", e.ProductID)
}
