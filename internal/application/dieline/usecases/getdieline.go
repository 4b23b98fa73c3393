package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/dieline/dto"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type GetDielineQuery struct {
	SID string
}

type GetDielineUseCase struct {
	dielineRepo dieline.Repository
	userRepo    user.Repository
	renderer    NotesRenderer
	logger      logger.Interface
}

func NewGetDielineUseCase(
	dielineRepo dieline.Repository,
	userRepo user.Repository,
	renderer NotesRenderer,
	logger logger.Interface,
) *GetDielineUseCase {
	return &GetDielineUseCase{
		dielineRepo: dielineRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetDielineUseCase) Execute(ctx context.Context, query GetDielineQuery) (*dto.DielineDTO, error) {
	d, err := uc.dielineRepo.GetBySID(ctx, query.SID)
	if err != nil {
		uc.logger.Errorw("failed to get dieline", "dieline_sid", query.SID, "error", err)
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dieline not found", query.SID)
	}

	creator, err := uc.userRepo.GetByID(ctx, d.CreatedBy())
	if err != nil {
		uc.logger.Warnw("failed to resolve dieline creator", "user_id", d.CreatedBy(), "error", err)
	}
	return dto.ToDielineDTO(d, creator, renderNotes(uc.renderer, uc.logger, d.SID(), d.Notes())), nil
}
