package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/dashboard/dto"
	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type GetStatsUseCase struct {
	dielineRepo    dieline.Repository
	cartonRepo     carton.Repository
	assignmentRepo assignment.Repository
	userRepo       user.Repository
	lowStockRatio  float64
	logger         logger.Interface
}

func NewGetStatsUseCase(
	dielineRepo dieline.Repository,
	cartonRepo carton.Repository,
	assignmentRepo assignment.Repository,
	userRepo user.Repository,
	lowStockRatio float64,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		dielineRepo:    dielineRepo,
		cartonRepo:     cartonRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		lowStockRatio:  lowStockRatio,
		logger:         logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	dielines, err := uc.dielineRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count dielines", "error", err)
		return nil, err
	}

	totals, err := uc.cartonRepo.Totals(ctx)
	if err != nil {
		uc.logger.Errorw("failed to total cartons", "error", err)
		return nil, err
	}

	assignments, err := uc.assignmentRepo.Count(ctx, nil)
	if err != nil {
		uc.logger.Errorw("failed to count assignments", "error", err)
		return nil, err
	}

	// The window includes today, so it starts RecentAssignmentDays-1 days back.
	since := biztime.DaysAgoStartUTC(biztime.NowUTC(), constants.RecentAssignmentDays-1)
	recent, err := uc.assignmentRepo.Count(ctx, &since)
	if err != nil {
		uc.logger.Errorw("failed to count recent assignments", "error", err)
		return nil, err
	}

	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, err
	}

	low, err := uc.cartonRepo.LowStock(ctx, uc.lowStockRatio, 0)
	if err != nil {
		uc.logger.Errorw("failed to list low stock cartons", "error", err)
		return nil, err
	}

	return &dto.StatsDTO{
		TotalDielines:     dielines,
		TotalCartons:      totals.Cartons,
		TotalAssignments:  assignments,
		TotalUsers:        users,
		LowStockCartons:   len(low),
		RecentAssignments: recent,
		RecentWindowDays:  constants.RecentAssignmentDays,
		TotalQuantity:     totals.TotalQuantity,
		AvailableQuantity: totals.AvailableQuantity,
		UsedQuantity:      totals.TotalQuantity - totals.AvailableQuantity,
	}, nil
}
