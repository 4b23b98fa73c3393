package carton

import (
	"context"

	"github.com/cartonworks/stockline/internal/shared/query"
)

// ListFilter narrows carton listings.
type ListFilter struct {
	query.BaseFilter
	CompanyName   string
	OnlyAvailable bool
}

// Repository persists carton metadata. Counters are written only at
// creation; afterwards they move exclusively through StockLedger.
type Repository interface {
	Create(ctx context.Context, c *Carton) error
	CreateBatch(ctx context.Context, cartons []*Carton) error
	GetByID(ctx context.Context, id uint) (*Carton, error)
	GetBySID(ctx context.Context, sid string) (*Carton, error)
	// GetBySIDs returns the cartons found, in no particular order. Missing
	// SIDs are simply absent from the result.
	GetBySIDs(ctx context.Context, sids []string) ([]*Carton, error)
	// GetByIDsUnscoped includes soft-deleted cartons, for resolving history.
	GetByIDsUnscoped(ctx context.Context, ids []uint) ([]*Carton, error)
	// ListAvailable returns every carton with available > 0 ordered by id.
	ListAvailable(ctx context.Context) ([]*Carton, error)
	List(ctx context.Context, filter ListFilter) ([]*Carton, int64, error)
	UpdateDetails(ctx context.Context, c *Carton) error
	Delete(ctx context.Context, id uint) error
	// LowStock returns cartons whose available < total*ratio.
	LowStock(ctx context.Context, ratio float64, limit int) ([]*Carton, error)
	Totals(ctx context.Context) (Totals, error)
}

// Totals aggregates the whole catalog for dashboards.
type Totals struct {
	Cartons           int64
	TotalQuantity     int64
	AvailableQuantity int64
}

// StockLedger performs atomic conditional counter updates. Every method
// returns ErrStockConflict when its guard did not hold at write time.
type StockLedger interface {
	// Decrement subtracts n where available >= n.
	Decrement(ctx context.Context, cartonID uint, n int) error
	// Restore adds n where available + n <= total.
	Restore(ctx context.Context, cartonID uint, n int) error
	// Swap replaces both counters where they still equal expected.
	Swap(ctx context.Context, cartonID uint, expected, next Stock) error
}
