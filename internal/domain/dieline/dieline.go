// Package dieline holds die-cut templates and their dimension sets.
package dieline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/id"
)

const (
	maxNameLength  = 200
	maxNotesLength = 10000
	maxDimensions  = 50
)

var (
	ErrNoDimensions          = errors.New("dieline requires at least one dimension set")
	ErrDimensionIndexInvalid = errors.New("dimension index out of range")
	ErrDielineNotFound       = errors.New("dieline not found")
)

// Dieline is a die-cut template with one or more target dimension sets.
// Dimension order is display order only.
type Dieline struct {
	id         uint
	sid        string
	name       string
	notes      string
	dimensions []dimension.Dimension
	createdBy  uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewDieline(name, notes string, dims []dimension.Dimension, createdBy uint) (*Dieline, error) {
	if err := validate(name, notes, dims); err != nil {
		return nil, err
	}

	sid, err := id.NewDielineID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Dieline{
		sid:        sid,
		name:       strings.TrimSpace(name),
		notes:      notes,
		dimensions: cloneDims(dims),
		createdBy:  createdBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructDieline rebuilds a Dieline from persistence.
func ReconstructDieline(
	id uint,
	sid string,
	name string,
	notes string,
	dims []dimension.Dimension,
	createdBy uint,
	createdAt, updatedAt time.Time,
) *Dieline {
	return &Dieline{
		id:         id,
		sid:        sid,
		name:       name,
		notes:      notes,
		dimensions: dims,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (d *Dieline) ID() uint             { return d.id }
func (d *Dieline) SID() string          { return d.sid }
func (d *Dieline) Name() string         { return d.name }
func (d *Dieline) Notes() string        { return d.notes }
func (d *Dieline) CreatedBy() uint      { return d.createdBy }
func (d *Dieline) CreatedAt() time.Time { return d.createdAt }
func (d *Dieline) UpdatedAt() time.Time { return d.updatedAt }

// Dimensions returns a copy of the dimension sets.
func (d *Dieline) Dimensions() []dimension.Dimension {
	return cloneDims(d.dimensions)
}

// Dimension returns the dimension set at index.
func (d *Dieline) Dimension(index int) (dimension.Dimension, error) {
	if index < 0 || index >= len(d.dimensions) {
		return dimension.Dimension{}, fmt.Errorf("%w: %d (dieline %s has %d)", ErrDimensionIndexInvalid, index, d.sid, len(d.dimensions))
	}
	return d.dimensions[index], nil
}

// SetID sets the dieline ID (only for persistence layer use)
func (d *Dieline) SetID(id uint) {
	d.id = id
}

// Update replaces name, notes and the whole dimension list. Existing
// assignments keep their own snapshots and are unaffected.
func (d *Dieline) Update(name, notes string, dims []dimension.Dimension) error {
	if err := validate(name, notes, dims); err != nil {
		return err
	}
	d.name = strings.TrimSpace(name)
	d.notes = notes
	d.dimensions = cloneDims(dims)
	d.updatedAt = biztime.NowUTC()
	return nil
}

func validate(name, notes string, dims []dimension.Dimension) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("dieline name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("dieline name exceeds maximum length of %d characters", maxNameLength)
	}
	if len(notes) > maxNotesLength {
		return fmt.Errorf("notes exceed maximum length of %d characters", maxNotesLength)
	}
	if len(dims) == 0 {
		return ErrNoDimensions
	}
	if len(dims) > maxDimensions {
		return fmt.Errorf("dieline supports at most %d dimension sets", maxDimensions)
	}
	for i, dim := range dims {
		if err := dim.Validate(); err != nil {
			return fmt.Errorf("dimension set %d: %w", i, err)
		}
	}
	return nil
}

func cloneDims(dims []dimension.Dimension) []dimension.Dimension {
	out := make([]dimension.Dimension, len(dims))
	copy(out, dims)
	return out
}
