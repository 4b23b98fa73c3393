package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

type CreateCartonCommand struct {
	Name          string
	CompanyName   string
	Length        float64
	Breadth       float64
	Height        float64
	TotalQuantity int
	CreatedBy     uint
}

type CreateCartonUseCase struct {
	cartonRepo    carton.Repository
	userRepo      user.Repository
	lowStockRatio float64
	logger        logger.Interface
}

func NewCreateCartonUseCase(
	cartonRepo carton.Repository,
	userRepo user.Repository,
	lowStockRatio float64,
	logger logger.Interface,
) *CreateCartonUseCase {
	return &CreateCartonUseCase{
		cartonRepo:    cartonRepo,
		userRepo:      userRepo,
		lowStockRatio: lowStockRatio,
		logger:        logger,
	}
}

func (uc *CreateCartonUseCase) Execute(ctx context.Context, cmd CreateCartonCommand) (*dto.CartonDTO, error) {
	uc.logger.Infow("executing create carton use case", "name", cmd.Name, "created_by", cmd.CreatedBy)

	box, err := dimension.NewBoxFromFloat(cmd.Length, cmd.Breadth, cmd.Height)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	c, err := carton.NewCarton(utils.SanitizeName(cmd.Name), utils.SanitizeName(cmd.CompanyName), box, cmd.TotalQuantity, cmd.CreatedBy)
	if err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.cartonRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create carton", "error", err)
		return nil, err
	}

	creator, err := uc.userRepo.GetByID(ctx, cmd.CreatedBy)
	if err != nil {
		uc.logger.Warnw("failed to resolve carton creator", "user_id", cmd.CreatedBy, "error", err)
	}

	uc.logger.Infow("carton created successfully", "carton_sid", c.SID(), "total_quantity", c.TotalQuantity())
	return dto.ToCartonDTO(c, creator, uc.lowStockRatio), nil
}
