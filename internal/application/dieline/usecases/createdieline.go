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

type CreateDielineCommand struct {
	Name       string
	Notes      string
	Dimensions []DimensionInput
	CreatedBy  uint
}

type CreateDielineUseCase struct {
	dielineRepo dieline.Repository
	userRepo    user.Repository
	renderer    NotesRenderer
	logger      logger.Interface
}

func NewCreateDielineUseCase(
	dielineRepo dieline.Repository,
	userRepo user.Repository,
	renderer NotesRenderer,
	logger logger.Interface,
) *CreateDielineUseCase {
	return &CreateDielineUseCase{
		dielineRepo: dielineRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *CreateDielineUseCase) Execute(ctx context.Context, cmd CreateDielineCommand) (*dto.DielineDTO, error) {
	uc.logger.Infow("executing create dieline use case", "name", cmd.Name, "dimension_sets", len(cmd.Dimensions))

	dims, err := toDimensions(cmd.Dimensions)
	if err != nil {
		return nil, err
	}

	d, err := dieline.NewDieline(utils.SanitizeName(cmd.Name), cmd.Notes, dims, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.dielineRepo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to create dieline", "error", err)
		return nil, err
	}

	creator, err := uc.userRepo.GetByID(ctx, cmd.CreatedBy)
	if err != nil {
		uc.logger.Warnw("failed to resolve dieline creator", "user_id", cmd.CreatedBy, "error", err)
	}

	uc.logger.Infow("dieline created successfully", "dieline_sid", d.SID())
	return dto.ToDielineDTO(d, creator, renderNotes(uc.renderer, uc.logger, d.SID(), d.Notes())), nil
}
