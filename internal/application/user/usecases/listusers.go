package usecases

import (
	"context"
	"fmt"

	"github.com/cartonworks/stockline/internal/application/user/dto"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/query"
)

type ListUsersQuery struct {
	Search    string
	Role      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListUsersResult struct {
	Users      []*dto.UserDTO `json:"users"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	role := user.Role(q.Role)
	if role != "" && !role.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("%s: %s", user.ErrInvalidRole.Error(), q.Role))
	}

	filter := user.ListFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
			query.WithSearch(q.Search),
		),
		Role: role,
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Users:      dto.ToUserDTOs(users),
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.Limit(),
	}, nil
}
