package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cartonworks/stockline/internal/application/user/dto"
	"github.com/cartonworks/stockline/internal/domain/user"
	vo "github.com/cartonworks/stockline/internal/domain/user/valueobjects"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

// UpdateUserCommand changes only the fields that are set.
type UpdateUserCommand struct {
	SID   string
	Name  *string
	Email *string
	Role  *string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_sid", cmd.SID)

	if cmd.Name == nil && cmd.Email == nil && cmd.Role == nil {
		return nil, errors.NewValidationError("at least one field must be provided for update")
	}

	u, err := uc.userRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_sid", cmd.SID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found", cmd.SID)
	}

	if cmd.Email != nil {
		addr, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if addr.String() != u.Email() {
			existing, err := uc.userRepo.GetByEmail(ctx, addr.String())
			if err != nil {
				uc.logger.Errorw("failed to check email", "user_sid", cmd.SID, "error", err)
				return nil, err
			}
			if existing != nil && existing.SID() != u.SID() {
				return nil, errors.NewConflictError("email already in use", addr.String())
			}
			if err := u.ChangeEmail(addr.String()); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	name, role := u.Name(), u.Role()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Role != nil {
		role = user.Role(strings.ToLower(strings.TrimSpace(*cmd.Role)))
	}
	if cmd.Name != nil || cmd.Role != nil {
		if err := u.Rename(name, role); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid user: %v", err))
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update user", "user_sid", cmd.SID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "user_sid", cmd.SID)
	return dto.ToUserDTO(u), nil
}
