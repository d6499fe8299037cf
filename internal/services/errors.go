package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the service layer. Handlers translate these into
// HTTP statuses and user-visible notices; none of them are fatal.
var (
	ErrUnauthenticated     = errors.New("authentication required")
	ErrForbidden           = errors.New("you do not have permission to perform this action")
	ErrSelfDeleteForbidden = errors.New("you cannot delete your own admin account")
	ErrDuplicateIdentity   = errors.New("username or email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrProductNotFound     = errors.New("product not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrNotFound            = errors.New("not found")
)

// InsufficientStockError carries the available count so the boundary can tell
// the user how many units are actually left. It matches ErrInsufficientStock
// under errors.Is.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q (requested %d, available %d)", e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
