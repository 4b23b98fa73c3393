package dimension

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultToleranceMM is the system-wide per-axis tolerance.
const DefaultToleranceMM = 5

var (
	ErrNegativeTolerance = errors.New("tolerance must not be negative")
	ErrNotFinite         = errors.New("value must be a finite number")
)

// Tolerance is an absolute per-axis allowance in millimetres.
// The zero value demands an exact match.
type Tolerance struct {
	mm decimal.Decimal
}

func NewTolerance(mm float64) (Tolerance, error) {
	if !isFinite(mm) {
		return Tolerance{}, ErrNotFinite
	}
	d := decimal.NewFromFloat(mm)
	if d.IsNegative() {
		return Tolerance{}, ErrNegativeTolerance
	}
	return Tolerance{mm: d}, nil
}

func DefaultTolerance() Tolerance {
	return Tolerance{mm: decimal.NewFromInt(DefaultToleranceMM)}
}

func (t Tolerance) MM() decimal.Decimal {
	return t.mm
}

func (t Tolerance) Float64() float64 {
	return t.mm.InexactFloat64()
}

// Within reports whether every axis of a and b differs by at most tol.
// It is symmetric in a and b.
func Within(a, b Box, tol Tolerance) bool {
	return axisWithin(a.Length, b.Length, tol.mm) &&
		axisWithin(a.Breadth, b.Breadth, tol.mm) &&
		axisWithin(a.Height, b.Height, tol.mm)
}

// Matches reports whether a carton's box satisfies a dieline dimension set.
// UPS plays no part in geometry.
func Matches(carton Box, target Dimension, tol Tolerance) bool {
	return Within(carton, target.Box, tol)
}

// MatchesAny is true when carton matches at least one of targets.
func MatchesAny(carton Box, targets []Dimension, tol Tolerance) bool {
	for _, target := range targets {
		if Matches(carton, target, tol) {
			return true
		}
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func axisWithin(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}
