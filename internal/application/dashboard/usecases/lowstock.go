package usecases

import (
	"context"

	cartondto "github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/application/dashboard/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

const lowStockListLimit = 50

type LowStockExecutor interface {
	Execute(ctx context.Context) (*dto.LowStockDTO, error)
}

type LowStockUseCase struct {
	cartonRepo    carton.Repository
	userRepo      user.Repository
	lowStockRatio float64
	logger        logger.Interface
}

func NewLowStockUseCase(cartonRepo carton.Repository, userRepo user.Repository, lowStockRatio float64, logger logger.Interface) *LowStockUseCase {
	return &LowStockUseCase{cartonRepo: cartonRepo, userRepo: userRepo, lowStockRatio: lowStockRatio, logger: logger}
}

func (uc *LowStockUseCase) Execute(ctx context.Context) (*dto.LowStockDTO, error) {
	cartons, err := uc.cartonRepo.LowStock(ctx, uc.lowStockRatio, lowStockListLimit)
	if err != nil {
		uc.logger.Errorw("failed to list low stock cartons", "error", err)
		return nil, err
	}

	ids := make([]uint, 0, len(cartons))
	for _, c := range cartons {
		ids = append(ids, c.CreatedBy())
	}
	users := map[uint]*user.User{}
	if found, err := uc.userRepo.GetByIDs(ctx, mapper.Unique(ids)); err != nil {
		uc.logger.Warnw("failed to resolve carton creators", "error", err)
	} else {
		users = mapper.IndexBy(found, func(u *user.User) uint { return u.ID() })
	}

	return &dto.LowStockDTO{
		Cartons: cartondto.ToCartonDTOs(cartons, users, uc.lowStockRatio),
		Ratio:   uc.lowStockRatio,
	}, nil
}
