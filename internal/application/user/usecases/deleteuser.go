package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

// DeleteUserCommand removes SID. ActingUserID is the caller, who may not
// delete their own account.
type DeleteUserCommand struct {
	SID          string
	ActingUserID uint
}

// DeleteUserUseCase soft-deletes a user. Records they created keep
// resolving their name.
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_sid", cmd.SID, "acting_user_id", cmd.ActingUserID)

	u, err := uc.userRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_sid", cmd.SID, "error", err)
		return err
	}
	if u == nil {
		return errors.NewNotFoundError("user not found", cmd.SID)
	}
	if u.ID() == cmd.ActingUserID {
		return errors.NewValidationError("you cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, u.ID()); err != nil {
		uc.logger.Errorw("failed to delete user", "user_sid", cmd.SID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted successfully", "user_sid", cmd.SID)
	return nil
}
