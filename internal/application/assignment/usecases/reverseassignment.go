package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cartonworks/stockline/internal/application/assignment/dto"
	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

const maxReasonLength = 500

type ReverseAssignmentCommand struct {
	SID        string
	ReversedBy uint
	Reason     string
}

// ReverseAssignmentUseCase appends a reversal and returns every consumed
// unit to its carton in one transaction. The assignment row is untouched.
type ReverseAssignmentUseCase struct {
	assignmentRepo assignment.Repository
	cartonRepo     carton.Repository
	ledger         carton.StockLedger
	txMgr          TransactionManager
	assembler      *Assembler
	logger         logger.Interface
}

func NewReverseAssignmentUseCase(
	assignmentRepo assignment.Repository,
	cartonRepo carton.Repository,
	ledger carton.StockLedger,
	txMgr TransactionManager,
	assembler *Assembler,
	logger logger.Interface,
) *ReverseAssignmentUseCase {
	return &ReverseAssignmentUseCase{
		assignmentRepo: assignmentRepo,
		cartonRepo:     cartonRepo,
		ledger:         ledger,
		txMgr:          txMgr,
		assembler:      assembler,
		logger:         logger,
	}
}

func (uc *ReverseAssignmentUseCase) Execute(ctx context.Context, cmd ReverseAssignmentCommand) (*dto.AssignmentDTO, error) {
	uc.logger.Infow("executing reverse assignment use case", "assignment_sid", cmd.SID, "reversed_by", cmd.ReversedBy)

	reason := strings.TrimSpace(cmd.Reason)
	if len(reason) > maxReasonLength {
		return nil, errors.NewValidationError(fmt.Sprintf("reason exceeds maximum length of %d characters", maxReasonLength))
	}

	var reversed *assignment.Assignment
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assignmentRepo.GetBySID(txCtx, cmd.SID)
		if err != nil {
			return err
		}
		if a == nil {
			return errors.NewNotFoundError("assignment not found", cmd.SID)
		}

		rev, err := a.Reverse(cmd.ReversedBy, reason)
		if err != nil {
			return err
		}
		if err := uc.assignmentRepo.CreateReversal(txCtx, rev); err != nil {
			return err
		}

		usage := append([]assignment.CartonUsage(nil), a.CartonUsage()...)
		sort.Slice(usage, func(i, j int) bool { return usage[i].CartonID < usage[j].CartonID })
		for _, u := range usage {
			c, err := uc.cartonRepo.GetByID(txCtx, u.CartonID)
			if err != nil {
				return err
			}
			if c == nil {
				uc.logger.Warnw("skipping restore for deleted carton",
					"assignment_sid", cmd.SID, "carton_id", u.CartonID, "quantity", u.QuantityUsed)
				continue
			}
			if err := uc.ledger.Restore(txCtx, u.CartonID, u.QuantityUsed); err != nil {
				if stderrors.Is(err, carton.ErrStockConflict) {
					return errors.NewConflictError(fmt.Sprintf(
						"carton %s cannot take back %d units without exceeding its total", c.Name(), u.QuantityUsed))
				}
				return err
			}
		}

		reversed = a
		return nil
	})
	if err != nil {
		if stderrors.Is(err, assignment.ErrAlreadyReversed) {
			return nil, errors.NewConflictError("assignment already reversed", cmd.SID)
		}
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to reverse assignment", "assignment_sid", cmd.SID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("assignment reversed successfully", "assignment_sid", cmd.SID, "cartons_restored", reversed.TotalCartonsUsed())
	return uc.assembler.AssembleOne(ctx, reversed)
}
