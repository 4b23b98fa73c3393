package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type GetCartonQuery struct {
	SID string
}

type GetCartonUseCase struct {
	cartonRepo    carton.Repository
	userRepo      user.Repository
	lowStockRatio float64
	logger        logger.Interface
}

func NewGetCartonUseCase(
	cartonRepo carton.Repository,
	userRepo user.Repository,
	lowStockRatio float64,
	logger logger.Interface,
) *GetCartonUseCase {
	return &GetCartonUseCase{
		cartonRepo:    cartonRepo,
		userRepo:      userRepo,
		lowStockRatio: lowStockRatio,
		logger:        logger,
	}
}

func (uc *GetCartonUseCase) Execute(ctx context.Context, query GetCartonQuery) (*dto.CartonDTO, error) {
	c, err := uc.cartonRepo.GetBySID(ctx, query.SID)
	if err != nil {
		uc.logger.Errorw("failed to get carton", "carton_sid", query.SID, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("carton not found", query.SID)
	}

	creator, err := uc.userRepo.GetByID(ctx, c.CreatedBy())
	if err != nil {
		uc.logger.Warnw("failed to resolve carton creator", "user_id", c.CreatedBy(), "error", err)
	}
	return dto.ToCartonDTO(c, creator, uc.lowStockRatio), nil
}
