package carton

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidQuantity marks a counter transition that would break 0 <= available <= total.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrStockConflict is returned by the ledger when a conditional update
	// matched no row because another writer got there first.
	ErrStockConflict = errors.New("stock changed concurrently")

	ErrCartonNotFound = errors.New("carton not found")
)

// Shortage describes one carton that cannot cover a requested amount.
type Shortage struct {
	CartonID   uint
	CartonSID  string
	CartonName string
	Requested  int
	Available  int
}

func (s Shortage) Shortfall() int {
	return s.Requested - s.Available
}

// InsufficientStockError lists every carton that fell short in one request.
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		name := s.CartonName
		if name == "" {
			name = s.CartonSID
		}
		if name == "" {
			name = "carton"
		}
		parts = append(parts, fmt.Sprintf("%s: requested %d, available %d, short by %d",
			name, s.Requested, s.Available, s.Shortfall()))
	}
	return "insufficient stock (" + strings.Join(parts, "; ") + ")"
}

// AsInsufficientStock unwraps err into an *InsufficientStockError.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var target *InsufficientStockError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
