package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/dieline/dto"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// UpdateDielineCommand replaces name, notes and the whole dimension list.
// Assignments made earlier keep their own dimension snapshots.
type UpdateDielineCommand struct {
	SID        string
	Name       string
	Notes      string
	Dimensions []DimensionInput
}

type UpdateDielineUseCase struct {
	dielineRepo dieline.Repository
	userRepo    user.Repository
	renderer    NotesRenderer
	logger      logger.Interface
}

func NewUpdateDielineUseCase(
	dielineRepo dieline.Repository,
	userRepo user.Repository,
	renderer NotesRenderer,
	logger logger.Interface,
) *UpdateDielineUseCase {
	return &UpdateDielineUseCase{
		dielineRepo: dielineRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *UpdateDielineUseCase) Execute(ctx context.Context, cmd UpdateDielineCommand) (*dto.DielineDTO, error) {
	uc.logger.Infow("executing update dieline use case", "dieline_sid", cmd.SID)

	dims, err := toDimensions(cmd.Dimensions)
	if err != nil {
		return nil, err
	}

	d, err := uc.dielineRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get dieline", "dieline_sid", cmd.SID, "error", err)
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dieline not found", cmd.SID)
	}

	if err := d.Update(utils.SanitizeName(cmd.Name), cmd.Notes, dims); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.dielineRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update dieline", "dieline_sid", cmd.SID, "error", err)
		return nil, err
	}

	creator, err := uc.userRepo.GetByID(ctx, d.CreatedBy())
	if err != nil {
		uc.logger.Warnw("failed to resolve dieline creator", "user_id", d.CreatedBy(), "error", err)
	}

	uc.logger.Infow("dieline updated successfully", "dieline_sid", d.SID(), "dimension_sets", len(dims))
	return dto.ToDielineDTO(d, creator, renderNotes(uc.renderer, uc.logger, d.SID(), d.Notes())), nil
}
