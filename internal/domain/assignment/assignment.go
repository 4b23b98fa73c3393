// Package assignment records which cartons were consumed against which
// dieline dimension sets. Assignments are append-only.
package assignment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/id"
)

const (
	// MaxSheets bounds one dimension set's sheet count.
	MaxSheets = 1_000_000
	// MaxTotalSheets is the largest total a total_sheets column can hold.
	MaxTotalSheets = math.MaxInt32
)

var (
	ErrNoDimensionSets = errors.New("at least one dimension set with sheets greater than zero is required")
	ErrNoCartons       = errors.New("at least one carton is required")
	ErrInvalidUsage    = errors.New("quantity used must be at least 1")
	ErrDuplicateCarton = errors.New("carton selected more than once")
	ErrInvalidSheets   = errors.New("sheets must be at least 1")
	ErrTooManySheets   = fmt.Errorf("sheets must not exceed %d per dimension set or %d in total", MaxSheets, MaxTotalSheets)
	ErrAlreadyReversed = errors.New("assignment already reversed")
)

// DimensionSet is a frozen copy of one dieline dimension set plus the
// number of sheets run against it. Later dieline edits do not touch it.
type DimensionSet struct {
	DielineID      uint
	DimensionIndex int
	Dimension      dimension.Dimension
	Sheets         int
}

// Pieces is the finished unit count for this set.
func (s DimensionSet) Pieces() int {
	return s.Dimension.Pieces(s.Sheets)
}

// CartonUsage is the amount of one carton consumed.
type CartonUsage struct {
	CartonID     uint
	QuantityUsed int
}

// Assignment is an immutable record of one production run.
type Assignment struct {
	id            uint
	sid           string
	dielineIDs    []uint
	dimensionSets []DimensionSet
	cartonUsage   []CartonUsage
	totalSheets   int
	assignedBy    uint
	assignedAt    time.Time
	createdAt     time.Time
	reversal      *Reversal
}

// NewAssignment validates a selection and derives totalSheets. Sets with
// zero sheets must already have been dropped by the caller.
func NewAssignment(dielineIDs []uint, sets []DimensionSet, usage []CartonUsage, assignedBy uint, assignedAt time.Time) (*Assignment, error) {
	if len(sets) == 0 {
		return nil, ErrNoDimensionSets
	}
	if len(usage) == 0 {
		return nil, ErrNoCartons
	}

	total := 0
	for i, s := range sets {
		if s.Sheets < 1 {
			return nil, fmt.Errorf("dimension set %d: %w", i, ErrInvalidSheets)
		}
		if s.Sheets > MaxSheets || total > MaxTotalSheets-s.Sheets {
			return nil, fmt.Errorf("dimension set %d: %w", i, ErrTooManySheets)
		}
		if err := s.Dimension.Validate(); err != nil {
			return nil, fmt.Errorf("dimension set %d: %w", i, err)
		}
		total += s.Sheets
	}

	seen := make(map[uint]struct{}, len(usage))
	for _, u := range usage {
		if u.QuantityUsed < 1 {
			return nil, fmt.Errorf("carton %d: %w", u.CartonID, ErrInvalidUsage)
		}
		if _, dup := seen[u.CartonID]; dup {
			return nil, fmt.Errorf("carton %d: %w", u.CartonID, ErrDuplicateCarton)
		}
		seen[u.CartonID] = struct{}{}
	}

	sid, err := id.NewAssignmentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	if assignedAt.IsZero() {
		assignedAt = now
	}

	return &Assignment{
		sid:           sid,
		dielineIDs:    append([]uint(nil), dielineIDs...),
		dimensionSets: append([]DimensionSet(nil), sets...),
		cartonUsage:   append([]CartonUsage(nil), usage...),
		totalSheets:   total,
		assignedBy:    assignedBy,
		assignedAt:    assignedAt.UTC(),
		createdAt:     now,
	}, nil
}

// ReconstructAssignment rebuilds an Assignment from persistence.
func ReconstructAssignment(
	id uint,
	sid string,
	dielineIDs []uint,
	sets []DimensionSet,
	usage []CartonUsage,
	totalSheets int,
	assignedBy uint,
	assignedAt, createdAt time.Time,
	reversal *Reversal,
) *Assignment {
	return &Assignment{
		id:            id,
		sid:           sid,
		dielineIDs:    dielineIDs,
		dimensionSets: sets,
		cartonUsage:   usage,
		totalSheets:   totalSheets,
		assignedBy:    assignedBy,
		assignedAt:    assignedAt,
		createdAt:     createdAt,
		reversal:      reversal,
	}
}

func (a *Assignment) ID() uint                      { return a.id }
func (a *Assignment) SID() string                   { return a.sid }
func (a *Assignment) DielineIDs() []uint            { return a.dielineIDs }
func (a *Assignment) DimensionSets() []DimensionSet { return a.dimensionSets }
func (a *Assignment) CartonUsage() []CartonUsage    { return a.cartonUsage }
func (a *Assignment) TotalSheets() int              { return a.totalSheets }
func (a *Assignment) AssignedBy() uint              { return a.assignedBy }
func (a *Assignment) AssignedAt() time.Time         { return a.assignedAt }
func (a *Assignment) CreatedAt() time.Time          { return a.createdAt }
func (a *Assignment) Reversal() *Reversal           { return a.reversal }
func (a *Assignment) IsReversed() bool              { return a.reversal != nil }

// SetID sets the assignment ID (only for persistence layer use)
func (a *Assignment) SetID(id uint) {
	a.id = id
}

// TotalPieces sums sheets*ups over every dimension set.
func (a *Assignment) TotalPieces() int {
	total := 0
	for _, s := range a.dimensionSets {
		total += s.Pieces()
	}
	return total
}

// TotalCartonsUsed sums quantityUsed over every carton.
func (a *Assignment) TotalCartonsUsed() int {
	total := 0
	for _, u := range a.cartonUsage {
		total += u.QuantityUsed
	}
	return total
}

// CartonIDs returns the consumed carton IDs in selection order.
func (a *Assignment) CartonIDs() []uint {
	ids := make([]uint, 0, len(a.cartonUsage))
	for _, u := range a.cartonUsage {
		ids = append(ids, u.CartonID)
	}
	return ids
}

// Reverse produces the compensating record. The assignment itself is not
// mutated in storage; the reversal row is appended next to it.
func (a *Assignment) Reverse(reversedBy uint, reason string) (*Reversal, error) {
	if a.reversal != nil {
		return nil, ErrAlreadyReversed
	}
	r := &Reversal{
		assignmentID: a.id,
		reversedBy:   reversedBy,
		reason:       reason,
		reversedAt:   biztime.NowUTC(),
	}
	a.reversal = r
	return r, nil
}
