package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
)

type mockDielineRepository struct {
	CreateFunc   func(ctx context.Context, d *dieline.Dieline) error
	GetBySIDFunc func(ctx context.Context, sid string) (*dieline.Dieline, error)
	ListFunc     func(ctx context.Context, filter dieline.ListFilter) ([]*dieline.Dieline, int64, error)
	UpdateFunc   func(ctx context.Context, d *dieline.Dieline) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockDielineRepository) Create(ctx context.Context, d *dieline.Dieline) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDielineRepository) GetByID(ctx context.Context, id uint) (*dieline.Dieline, error) {
	return nil, nil
}

func (m *mockDielineRepository) GetBySID(ctx context.Context, sid string) (*dieline.Dieline, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockDielineRepository) GetBySIDs(ctx context.Context, sids []string) ([]*dieline.Dieline, error) {
	return nil, nil
}

func (m *mockDielineRepository) GetByIDsUnscoped(ctx context.Context, ids []uint) ([]*dieline.Dieline, error) {
	return nil, nil
}

func (m *mockDielineRepository) List(ctx context.Context, filter dieline.ListFilter) ([]*dieline.Dieline, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockDielineRepository) Update(ctx context.Context, d *dieline.Dieline) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDielineRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDielineRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockUserRepository struct {
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
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
