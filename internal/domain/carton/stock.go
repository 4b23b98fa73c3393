package carton

import "fmt"

// Stock is the counter pair of a carton. Every constructor and transition
// keeps 0 <= available <= total.
type Stock struct {
	total     int
	available int
}

// NewStock opens a ledger with both counters equal to total.
func NewStock(total int) (Stock, error) {
	if total < 0 {
		return Stock{}, fmt.Errorf("%w: total quantity %d is negative", ErrInvalidQuantity, total)
	}
	return Stock{total: total, available: total}, nil
}

// RestoreStock rebuilds a ledger from stored or imported counters.
func RestoreStock(total, available int) (Stock, error) {
	if total < 0 || available < 0 || available > total {
		return Stock{}, fmt.Errorf("%w: available %d must be within 0..%d", ErrInvalidQuantity, available, total)
	}
	return Stock{total: total, available: available}, nil
}

func (s Stock) Total() int     { return s.total }
func (s Stock) Available() int { return s.available }

// Used is the amount already consumed by assignments.
func (s Stock) Used() int { return s.total - s.available }

// Decrement consumes n units. n must be at least 1.
func (s Stock) Decrement(n int) (Stock, error) {
	if n < 1 {
		return s, fmt.Errorf("%w: amount %d must be at least 1", ErrInvalidQuantity, n)
	}
	if n > s.available {
		return s, &InsufficientStockError{Shortages: []Shortage{{Requested: n, Available: s.available}}}
	}
	return Stock{total: s.total, available: s.available - n}, nil
}

// Restore returns n previously consumed units to available.
func (s Stock) Restore(n int) (Stock, error) {
	if n < 1 {
		return s, fmt.Errorf("%w: amount %d must be at least 1", ErrInvalidQuantity, n)
	}
	if s.available+n > s.total {
		return s, fmt.Errorf("%w: restoring %d would exceed total %d", ErrInvalidQuantity, n, s.total)
	}
	return Stock{total: s.total, available: s.available + n}, nil
}

// Revise sets a new total while keeping the used amount fixed.
func (s Stock) Revise(newTotal int) (Stock, error) {
	used := s.Used()
	if newTotal < used {
		return s, fmt.Errorf("%w: new total %d is below the %d units already used", ErrInvalidQuantity, newTotal, used)
	}
	return Stock{total: newTotal, available: newTotal - used}, nil
}

// IsLow reports available < total*ratio. An empty ledger is never low.
func (s Stock) IsLow(ratio float64) bool {
	if s.total == 0 {
		return false
	}
	return float64(s.available) < float64(s.total)*ratio
}
