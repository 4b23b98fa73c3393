package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type DeleteCartonCommand struct {
	SID string
}

// DeleteCartonUseCase soft-deletes a carton. Assignments that consumed it
// still resolve its name through unscoped lookups.
type DeleteCartonUseCase struct {
	cartonRepo carton.Repository
	logger     logger.Interface
}

func NewDeleteCartonUseCase(cartonRepo carton.Repository, logger logger.Interface) *DeleteCartonUseCase {
	return &DeleteCartonUseCase{cartonRepo: cartonRepo, logger: logger}
}

func (uc *DeleteCartonUseCase) Execute(ctx context.Context, cmd DeleteCartonCommand) error {
	uc.logger.Infow("executing delete carton use case", "carton_sid", cmd.SID)

	c, err := uc.cartonRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get carton", "carton_sid", cmd.SID, "error", err)
		return err
	}
	if c == nil {
		return errors.NewNotFoundError("carton not found", cmd.SID)
	}

	if err := uc.cartonRepo.Delete(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete carton", "carton_sid", cmd.SID, "error", err)
		return err
	}

	uc.logger.Infow("carton deleted successfully", "carton_sid", cmd.SID)
	return nil
}
