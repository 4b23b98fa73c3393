// Package carton holds the packaging stock aggregate and its quantity ledger.
package carton

import (
	"fmt"
	"strings"
	"time"

	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/id"
)

const maxNameLength = 200

// Carton is a stock-keeping unit of boxes with fixed geometry.
type Carton struct {
	id          uint
	sid         string
	name        string
	companyName string
	box         dimension.Box
	stock       Stock
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCarton creates a carton whose available quantity equals totalQuantity.
func NewCarton(name, companyName string, box dimension.Box, totalQuantity int, createdBy uint) (*Carton, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}
	stock, err := NewStock(totalQuantity)
	if err != nil {
		return nil, err
	}
	return newCarton(name, companyName, box, stock, createdBy)
}

// NewCartonWithStock creates a carton from imported counters that may
// already reflect consumption.
func NewCartonWithStock(name, companyName string, box dimension.Box, stock Stock, createdBy uint) (*Carton, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}
	return newCarton(name, companyName, box, stock, createdBy)
}

func newCarton(name, companyName string, box dimension.Box, stock Stock, createdBy uint) (*Carton, error) {
	sid, err := id.NewCartonID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Carton{
		sid:         sid,
		name:        strings.TrimSpace(name),
		companyName: strings.TrimSpace(companyName),
		box:         box,
		stock:       stock,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCarton rebuilds a Carton from persistence.
func ReconstructCarton(
	id uint,
	sid string,
	name string,
	companyName string,
	box dimension.Box,
	stock Stock,
	createdBy uint,
	createdAt, updatedAt time.Time,
) *Carton {
	return &Carton{
		id:          id,
		sid:         sid,
		name:        name,
		companyName: companyName,
		box:         box,
		stock:       stock,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Carton) ID() uint             { return c.id }
func (c *Carton) SID() string          { return c.sid }
func (c *Carton) Name() string         { return c.name }
func (c *Carton) CompanyName() string  { return c.companyName }
func (c *Carton) Box() dimension.Box   { return c.box }
func (c *Carton) Stock() Stock         { return c.stock }
func (c *Carton) CreatedBy() uint      { return c.createdBy }
func (c *Carton) CreatedAt() time.Time { return c.createdAt }
func (c *Carton) UpdatedAt() time.Time { return c.updatedAt }

func (c *Carton) TotalQuantity() int     { return c.stock.Total() }
func (c *Carton) AvailableQuantity() int { return c.stock.Available() }

// SetID sets the carton ID (only for persistence layer use)
func (c *Carton) SetID(id uint) {
	c.id = id
}

// UpdateDetails changes the descriptive fields and geometry. Counters are
// left alone; they only move through the stock ledger.
func (c *Carton) UpdateDetails(name, companyName string, box dimension.Box) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := box.Validate(); err != nil {
		return err
	}
	c.name = strings.TrimSpace(name)
	c.companyName = strings.TrimSpace(companyName)
	c.box = box
	c.updatedAt = biztime.NowUTC()
	return nil
}

// ReviseTotal applies an administrative total change in memory and returns
// the resulting ledger. Persisting it goes through StockLedger.Swap.
func (c *Carton) ReviseTotal(newTotal int) (Stock, error) {
	next, err := c.stock.Revise(newTotal)
	if err != nil {
		return c.stock, err
	}
	c.stock = next
	c.updatedAt = biztime.NowUTC()
	return next, nil
}

// IsAvailable reports whether any stock is left.
func (c *Carton) IsAvailable() bool {
	return c.stock.Available() > 0
}

func (c *Carton) IsLowStock(ratio float64) bool {
	return c.stock.IsLow(ratio)
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("carton name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("carton name exceeds maximum length of %d characters", maxNameLength)
	}
	return nil
}
