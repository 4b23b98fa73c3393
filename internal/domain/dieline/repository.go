package dieline

import (
	"context"

	"github.com/cartonworks/stockline/internal/shared/query"
)

type ListFilter struct {
	query.BaseFilter
}

type Repository interface {
	Create(ctx context.Context, d *Dieline) error
	GetByID(ctx context.Context, id uint) (*Dieline, error)
	GetBySID(ctx context.Context, sid string) (*Dieline, error)
	// GetBySIDs returns the dielines found; missing SIDs are absent.
	GetBySIDs(ctx context.Context, sids []string) ([]*Dieline, error)
	// GetByIDsUnscoped includes soft-deleted dielines, for resolving history.
	GetByIDsUnscoped(ctx context.Context, ids []uint) ([]*Dieline, error)
	List(ctx context.Context, filter ListFilter) ([]*Dieline, int64, error)
	Update(ctx context.Context, d *Dieline) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
