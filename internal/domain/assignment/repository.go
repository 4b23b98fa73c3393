package assignment

import (
	"context"
	"time"

	"github.com/cartonworks/stockline/internal/shared/query"
)

// ListFilter narrows assignment listings. Results are newest first.
type ListFilter struct {
	query.PageFilter
	AssignedBy *uint
	CartonID   *uint
	Since      *time.Time
}

type Repository interface {
	// Create stores the assignment and its carton usage rows.
	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id uint) (*Assignment, error)
	GetBySID(ctx context.Context, sid string) (*Assignment, error)
	List(ctx context.Context, filter ListFilter) ([]*Assignment, int64, error)
	Count(ctx context.Context, since *time.Time) (int64, error)
	// CreateReversal appends a reversal. ErrAlreadyReversed when one exists.
	CreateReversal(ctx context.Context, r *Reversal) error
}
