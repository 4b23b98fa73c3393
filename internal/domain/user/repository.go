package user

import (
	"context"

	"github.com/cartonworks/stockline/internal/shared/query"
)

type ListFilter struct {
	query.BaseFilter
	Role Role
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByIDs includes deleted users so historical records keep their names.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}
