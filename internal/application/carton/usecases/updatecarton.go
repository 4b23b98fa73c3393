package usecases

import (
	"context"
	stderrors "errors"

	"github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// UpdateCartonCommand replaces the descriptive fields. A nil TotalQuantity
// leaves the counters untouched.
type UpdateCartonCommand struct {
	SID           string
	Name          string
	CompanyName   string
	Length        float64
	Breadth       float64
	Height        float64
	TotalQuantity *int
}

type UpdateCartonUseCase struct {
	cartonRepo    carton.Repository
	ledger        carton.StockLedger
	userRepo      user.Repository
	txMgr         TransactionManager
	lowStockRatio float64
	maxAttempts   int
	logger        logger.Interface
}

func NewUpdateCartonUseCase(
	cartonRepo carton.Repository,
	ledger carton.StockLedger,
	userRepo user.Repository,
	txMgr TransactionManager,
	lowStockRatio float64,
	maxAttempts int,
	logger logger.Interface,
) *UpdateCartonUseCase {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &UpdateCartonUseCase{
		cartonRepo:    cartonRepo,
		ledger:        ledger,
		userRepo:      userRepo,
		txMgr:         txMgr,
		lowStockRatio: lowStockRatio,
		maxAttempts:   maxAttempts,
		logger:        logger,
	}
}

func (uc *UpdateCartonUseCase) Execute(ctx context.Context, cmd UpdateCartonCommand) (*dto.CartonDTO, error) {
	uc.logger.Infow("executing update carton use case", "carton_sid", cmd.SID)

	box, err := dimension.NewBoxFromFloat(cmd.Length, cmd.Breadth, cmd.Height)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	name := utils.SanitizeName(cmd.Name)
	company := utils.SanitizeName(cmd.CompanyName)

	var updated *carton.Carton
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			c, err := uc.cartonRepo.GetBySID(txCtx, cmd.SID)
			if err != nil {
				return err
			}
			if c == nil {
				return errors.NewNotFoundError("carton not found", cmd.SID)
			}

			if err := c.UpdateDetails(name, company, box); err != nil {
				return translateDomainError(err)
			}
			if err := uc.cartonRepo.UpdateDetails(txCtx, c); err != nil {
				return err
			}

			if cmd.TotalQuantity != nil && *cmd.TotalQuantity != c.TotalQuantity() {
				expected := c.Stock()
				next, err := c.ReviseTotal(*cmd.TotalQuantity)
				if err != nil {
					return errors.NewInvalidQuantityError(err.Error()).WithMeta(map[string]int{
						"requested_total": *cmd.TotalQuantity,
						"used_quantity":   expected.Used(),
					})
				}
				if err := uc.ledger.Swap(txCtx, c.ID(), expected, next); err != nil {
					return err
				}
			}

			updated = c
			return nil
		})
		if !stderrors.Is(err, carton.ErrStockConflict) {
			break
		}
		uc.logger.Warnw("carton stock changed during update, retrying",
			"carton_sid", cmd.SID, "attempt", attempt)
	}

	if err != nil {
		if stderrors.Is(err, carton.ErrStockConflict) {
			return nil, errors.NewConflictError("carton stock is changing, please retry")
		}
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update carton", "carton_sid", cmd.SID, "error", err)
		}
		return nil, err
	}

	creator, err := uc.userRepo.GetByID(ctx, updated.CreatedBy())
	if err != nil {
		uc.logger.Warnw("failed to resolve carton creator", "user_id", updated.CreatedBy(), "error", err)
	}

	uc.logger.Infow("carton updated successfully",
		"carton_sid", updated.SID(),
		"total_quantity", updated.TotalQuantity(),
		"available_quantity", updated.AvailableQuantity(),
	)
	return dto.ToCartonDTO(updated, creator, uc.lowStockRatio), nil
}
