package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/assignment/dto"
	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type GetAssignmentQuery struct {
	SID string
}

type GetAssignmentUseCase struct {
	assignmentRepo assignment.Repository
	assembler      *Assembler
	logger         logger.Interface
}

func NewGetAssignmentUseCase(assignmentRepo assignment.Repository, assembler *Assembler, logger logger.Interface) *GetAssignmentUseCase {
	return &GetAssignmentUseCase{assignmentRepo: assignmentRepo, assembler: assembler, logger: logger}
}

func (uc *GetAssignmentUseCase) Execute(ctx context.Context, q GetAssignmentQuery) (*dto.AssignmentDTO, error) {
	a, err := uc.assignmentRepo.GetBySID(ctx, q.SID)
	if err != nil {
		uc.logger.Errorw("failed to get assignment", "assignment_sid", q.SID, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("assignment not found", q.SID)
	}
	return uc.assembler.AssembleOne(ctx, a)
}
