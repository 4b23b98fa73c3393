package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/user"
)

type mockCartonRepository struct {
	CreateFunc        func(ctx context.Context, c *carton.Carton) error
	CreateBatchFunc   func(ctx context.Context, cartons []*carton.Carton) error
	GetBySIDFunc      func(ctx context.Context, sid string) (*carton.Carton, error)
	ListFunc          func(ctx context.Context, filter carton.ListFilter) ([]*carton.Carton, int64, error)
	UpdateDetailsFunc func(ctx context.Context, c *carton.Carton) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockCartonRepository) Create(ctx context.Context, c *carton.Carton) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCartonRepository) CreateBatch(ctx context.Context, cartons []*carton.Carton) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, cartons)
	}
	return nil
}

func (m *mockCartonRepository) GetByID(ctx context.Context, id uint) (*carton.Carton, error) {
	return nil, nil
}

func (m *mockCartonRepository) GetBySID(ctx context.Context, sid string) (*carton.Carton, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCartonRepository) GetBySIDs(ctx context.Context, sids []string) ([]*carton.Carton, error) {
	return nil, nil
}

func (m *mockCartonRepository) GetByIDsUnscoped(ctx context.Context, ids []uint) ([]*carton.Carton, error) {
	return nil, nil
}

func (m *mockCartonRepository) ListAvailable(ctx context.Context) ([]*carton.Carton, error) {
	return nil, nil
}

func (m *mockCartonRepository) List(ctx context.Context, filter carton.ListFilter) ([]*carton.Carton, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCartonRepository) UpdateDetails(ctx context.Context, c *carton.Carton) error {
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(ctx, c)
	}
	return nil
}

func (m *mockCartonRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCartonRepository) LowStock(ctx context.Context, ratio float64, limit int) ([]*carton.Carton, error) {
	return nil, nil
}

func (m *mockCartonRepository) Totals(ctx context.Context) (carton.Totals, error) {
	return carton.Totals{}, nil
}

type mockStockLedger struct {
	DecrementFunc func(ctx context.Context, cartonID uint, n int) error
	RestoreFunc   func(ctx context.Context, cartonID uint, n int) error
	SwapFunc      func(ctx context.Context, cartonID uint, expected, next carton.Stock) error
}

func (m *mockStockLedger) Decrement(ctx context.Context, cartonID uint, n int) error {
	if m.DecrementFunc != nil {
		return m.DecrementFunc(ctx, cartonID, n)
	}
	return nil
}

func (m *mockStockLedger) Restore(ctx context.Context, cartonID uint, n int) error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx, cartonID, n)
	}
	return nil
}

func (m *mockStockLedger) Swap(ctx context.Context, cartonID uint, expected, next carton.Stock) error {
	if m.SwapFunc != nil {
		return m.SwapFunc(ctx, cartonID, expected, next)
	}
	return nil
}

type mockUserRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockTransactionManager struct {
	calls int
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
