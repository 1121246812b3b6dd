package models

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrInvalidInput            = errors.New("invalid input")
	ErrProductNotFound         = errors.New("product not found")
	ErrCartNotFound            = errors.New("cart not found")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrEmailTaken              = errors.New("email already registered")
	ErrUnavailable             = errors.New("feature not configured")
)

// ProductNotFoundError is returned when a catalog cannot resolve a product id
// that is present in a cart.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found in catalog", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
