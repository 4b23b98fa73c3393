package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/user/dto"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}
