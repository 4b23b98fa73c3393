package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/user/dto"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type GetUserQuery struct {
	SID string
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, q GetUserQuery) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetBySID(ctx, q.SID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_sid", q.SID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found", q.SID)
	}
	return dto.ToUserDTO(u), nil
}
