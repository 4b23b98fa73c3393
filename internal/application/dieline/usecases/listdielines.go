package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/dieline/dto"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/mapper"
	"github.com/cartonworks/stockline/internal/shared/query"
)

type ListDielinesQuery struct {
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListDielinesResult struct {
	Dielines   []*dto.DielineDTO `json:"dielines"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// ListDielinesUseCase returns dielines without rendered notes.
type ListDielinesUseCase struct {
	dielineRepo dieline.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListDielinesUseCase(dielineRepo dieline.Repository, userRepo user.Repository, logger logger.Interface) *ListDielinesUseCase {
	return &ListDielinesUseCase{dielineRepo: dielineRepo, userRepo: userRepo, logger: logger}
}

func (uc *ListDielinesUseCase) Execute(ctx context.Context, q ListDielinesQuery) (*ListDielinesResult, error) {
	filter := dieline.ListFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
			query.WithSearch(q.Search),
		),
	}

	dielines, total, err := uc.dielineRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list dielines", "error", err)
		return nil, err
	}

	creatorIDs := make([]uint, 0, len(dielines))
	for _, d := range dielines {
		creatorIDs = append(creatorIDs, d.CreatedBy())
	}
	users := map[uint]*user.User{}
	if found, err := uc.userRepo.GetByIDs(ctx, mapper.Unique(creatorIDs)); err != nil {
		uc.logger.Warnw("failed to resolve dieline creators", "error", err)
	} else {
		users = mapper.IndexBy(found, func(u *user.User) uint { return u.ID() })
	}

	items := make([]*dto.DielineDTO, 0, len(dielines))
	for _, d := range dielines {
		items = append(items, dto.ToDielineDTO(d, users[d.CreatedBy()], ""))
	}

	return &ListDielinesResult{
		Dielines:   items,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.Limit(),
	}, nil
}
