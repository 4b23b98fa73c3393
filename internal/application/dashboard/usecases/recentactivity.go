package usecases

import (
	"context"

	assignmentusecases "github.com/cartonworks/stockline/internal/application/assignment/usecases"
	"github.com/cartonworks/stockline/internal/application/dashboard/dto"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type RecentActivityExecutor interface {
	Execute(ctx context.Context) (*dto.RecentActivityDTO, error)
}

// RecentActivityUseCase returns the newest assignments across all operators.
type RecentActivityUseCase struct {
	list   assignmentusecases.ListAssignmentsExecutor
	logger logger.Interface
}

func NewRecentActivityUseCase(list assignmentusecases.ListAssignmentsExecutor, logger logger.Interface) *RecentActivityUseCase {
	return &RecentActivityUseCase{list: list, logger: logger}
}

func (uc *RecentActivityUseCase) Execute(ctx context.Context) (*dto.RecentActivityDTO, error) {
	result, err := uc.list.Execute(ctx, assignmentusecases.ListAssignmentsQuery{
		Page:     1,
		PageSize: constants.RecentActivityLimit,
	})
	if err != nil {
		uc.logger.Errorw("failed to load recent activity", "error", err)
		return nil, err
	}
	return &dto.RecentActivityDTO{Assignments: result.Assignments}, nil
}
