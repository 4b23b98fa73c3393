package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/query"
)

type ListCartonsQuery struct {
	Search        string
	CompanyName   string
	OnlyAvailable bool
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type ListCartonsResult struct {
	Cartons    []*dto.CartonDTO `json:"cartons"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

type ListCartonsUseCase struct {
	cartonRepo    carton.Repository
	userRepo      user.Repository
	lowStockRatio float64
	logger        logger.Interface
}

func NewListCartonsUseCase(
	cartonRepo carton.Repository,
	userRepo user.Repository,
	lowStockRatio float64,
	logger logger.Interface,
) *ListCartonsUseCase {
	return &ListCartonsUseCase{
		cartonRepo:    cartonRepo,
		userRepo:      userRepo,
		lowStockRatio: lowStockRatio,
		logger:        logger,
	}
}

func (uc *ListCartonsUseCase) Execute(ctx context.Context, q ListCartonsQuery) (*ListCartonsResult, error) {
	filter := toListFilter(q)

	cartons, total, err := uc.cartonRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list cartons", "error", err)
		return nil, err
	}

	users, err := usersByID(ctx, uc.userRepo, creatorIDs(cartons))
	if err != nil {
		uc.logger.Warnw("failed to resolve carton creators", "error", err)
		users = map[uint]*user.User{}
	}

	return &ListCartonsResult{
		Cartons:    dto.ToCartonDTOs(cartons, users, uc.lowStockRatio),
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.Limit(),
	}, nil
}

func toListFilter(q ListCartonsQuery) carton.ListFilter {
	return carton.ListFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
			query.WithSearch(q.Search),
		),
		CompanyName:   q.CompanyName,
		OnlyAvailable: q.OnlyAvailable,
	}
}

func creatorIDs(cartons []*carton.Carton) []uint {
	ids := make([]uint, 0, len(cartons))
	for _, c := range cartons {
		ids = append(ids, c.CreatedBy())
	}
	return ids
}
