package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type DeleteDielineCommand struct {
	SID string
}

type DeleteDielineUseCase struct {
	dielineRepo dieline.Repository
	logger      logger.Interface
}

func NewDeleteDielineUseCase(dielineRepo dieline.Repository, logger logger.Interface) *DeleteDielineUseCase {
	return &DeleteDielineUseCase{dielineRepo: dielineRepo, logger: logger}
}

func (uc *DeleteDielineUseCase) Execute(ctx context.Context, cmd DeleteDielineCommand) error {
	uc.logger.Infow("executing delete dieline use case", "dieline_sid", cmd.SID)

	d, err := uc.dielineRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get dieline", "dieline_sid", cmd.SID, "error", err)
		return err
	}
	if d == nil {
		return errors.NewNotFoundError("dieline not found", cmd.SID)
	}

	if err := uc.dielineRepo.Delete(ctx, d.ID()); err != nil {
		uc.logger.Errorw("failed to delete dieline", "dieline_sid", cmd.SID, "error", err)
		return err
	}

	uc.logger.Infow("dieline deleted successfully", "dieline_sid", cmd.SID)
	return nil
}
