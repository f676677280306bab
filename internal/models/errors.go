package models

import (
	"errors"
	"fmt"
)

// Domain errors surfaced by the ledger and recovered at the dispatcher and
// HTTP boundaries. Anything else escaping a ledger operation is a storage
// failure: the unit of work has already been rolled back.
var (
	ErrItemNotFound  = errors.New("item not found in inventory")
	ErrInvalidAction = errors.New("invalid action")
)

// InsufficientStockError is returned when a removal asks for more than is on
// hand. It carries the available quantity so callers can report it.
type InsufficientStockError struct {
	Item      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d", e.Item, e.Available)
}

// InvalidQuantityError is returned when a quantity fails validation.
type InvalidQuantityError struct {
	Quantity int
	Reason   string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d: %s", e.Quantity, e.Reason)
}
