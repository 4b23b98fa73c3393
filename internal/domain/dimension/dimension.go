// Package dimension models box geometry in millimetres and the tolerance
// rule that decides whether a carton fits a dieline dimension set.
package dimension

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxUPS bounds units per sheet so Pieces stays well inside int range.
const MaxUPS = 10_000

var (
	ErrNonPositiveSide = errors.New("length, breadth and height must be greater than zero")
	ErrNonPositiveUPS  = errors.New("ups must be greater than zero")
	ErrUPSTooLarge     = fmt.Errorf("ups must not exceed %d", MaxUPS)
)

// Box is a rectangular geometry without a production multiplier.
// Cartons carry a Box.
type Box struct {
	Length  decimal.Decimal
	Breadth decimal.Decimal
	Height  decimal.Decimal
}

func NewBox(length, breadth, height decimal.Decimal) (Box, error) {
	b := Box{Length: length, Breadth: breadth, Height: height}
	if err := b.Validate(); err != nil {
		return Box{}, err
	}
	return b, nil
}

// NewBoxFromFloat is NewBox for values coming off the wire or a spreadsheet.
func NewBoxFromFloat(length, breadth, height float64) (Box, error) {
	if !isFinite(length) || !isFinite(breadth) || !isFinite(height) {
		return Box{}, ErrNotFinite
	}
	return NewBox(decimal.NewFromFloat(length), decimal.NewFromFloat(breadth), decimal.NewFromFloat(height))
}

func (b Box) Validate() error {
	if !b.Length.IsPositive() || !b.Breadth.IsPositive() || !b.Height.IsPositive() {
		return ErrNonPositiveSide
	}
	return nil
}

func (b Box) String() string {
	return fmt.Sprintf("%s x %s x %s", b.Length.String(), b.Breadth.String(), b.Height.String())
}

// Dimension is one dieline dimension set: a target box plus units per sheet.
type Dimension struct {
	Box
	UPS int
}

func NewDimension(length, breadth, height decimal.Decimal, ups int) (Dimension, error) {
	box, err := NewBox(length, breadth, height)
	if err != nil {
		return Dimension{}, err
	}
	d := Dimension{Box: box, UPS: ups}
	if err := d.Validate(); err != nil {
		return Dimension{}, err
	}
	return d, nil
}

func NewDimensionFromFloat(length, breadth, height float64, ups int) (Dimension, error) {
	if !isFinite(length) || !isFinite(breadth) || !isFinite(height) {
		return Dimension{}, ErrNotFinite
	}
	return NewDimension(decimal.NewFromFloat(length), decimal.NewFromFloat(breadth), decimal.NewFromFloat(height), ups)
}

func (d Dimension) Validate() error {
	if err := d.Box.Validate(); err != nil {
		return err
	}
	if d.UPS <= 0 {
		return ErrNonPositiveUPS
	}
	if d.UPS > MaxUPS {
		return ErrUPSTooLarge
	}
	return nil
}

// Pieces is the number of finished units a run of sheets produces.
func (d Dimension) Pieces(sheets int) int {
	return sheets * d.UPS
}

func (d Dimension) String() string {
	return fmt.Sprintf("%s (%d up)", d.Box.String(), d.UPS)
}
