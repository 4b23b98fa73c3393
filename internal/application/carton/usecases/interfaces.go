package usecases

import (
	"context"
	"io"

	"github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateCartonExecutor interface {
	Execute(ctx context.Context, cmd CreateCartonCommand) (*dto.CartonDTO, error)
}

type UpdateCartonExecutor interface {
	Execute(ctx context.Context, cmd UpdateCartonCommand) (*dto.CartonDTO, error)
}

type GetCartonExecutor interface {
	Execute(ctx context.Context, query GetCartonQuery) (*dto.CartonDTO, error)
}

type ListCartonsExecutor interface {
	Execute(ctx context.Context, query ListCartonsQuery) (*ListCartonsResult, error)
}

type DeleteCartonExecutor interface {
	Execute(ctx context.Context, cmd DeleteCartonCommand) error
}

type ImportCartonsExecutor interface {
	Execute(ctx context.Context, cmd ImportCartonsCommand) (*ImportCartonsResult, error)
}

type ExportCartonsExecutor interface {
	Execute(ctx context.Context, w io.Writer, query ListCartonsQuery) error
}

func usersByID(ctx context.Context, repo user.Repository, ids []uint) (map[uint]*user.User, error) {
	users, err := repo.GetByIDs(ctx, mapper.Unique(ids))
	if err != nil {
		return nil, err
	}
	return mapper.IndexBy(users, func(u *user.User) uint { return u.ID() }), nil
}
