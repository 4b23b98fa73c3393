package usecases

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"github.com/cartonworks/stockline/internal/application/assignment/dto"
	cartondto "github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/compatibility"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/goroutine"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

const lowStockAlertTimeout = 30 * time.Second

type CreateAssignmentCommand struct {
	DielineSIDs    []string
	DimensionSets  []DimensionSetInput
	CartonSIDs     []string
	CartonUsage    []CartonUsageInput
	AssignedBy     uint
	IdempotencyKey string
}

type CreateAssignmentResult struct {
	Assignment *dto.AssignmentDTO
	// Replayed is set when the idempotency key matched an earlier request.
	Replayed bool
}

// AllocationOptions tunes the engine.
type AllocationOptions struct {
	MaxCommitAttempts    int
	LowStockRatio        float64
	EnforceCompatibility bool
}

// CreateAssignmentUseCase validates a selection against fresh stock and
// commits the assignment and every carton decrement in one transaction.
type CreateAssignmentUseCase struct {
	assignmentRepo assignment.Repository
	dielineRepo    dieline.Repository
	cartonRepo     carton.Repository
	ledger         carton.StockLedger
	txMgr          TransactionManager
	resolver       *compatibility.Resolver
	assembler      *Assembler
	idempotency    IdempotencyStore
	notifier       LowStockNotifier
	opts           AllocationOptions
	logger         logger.Interface
}

func NewCreateAssignmentUseCase(
	assignmentRepo assignment.Repository,
	dielineRepo dieline.Repository,
	cartonRepo carton.Repository,
	ledger carton.StockLedger,
	txMgr TransactionManager,
	resolver *compatibility.Resolver,
	assembler *Assembler,
	idempotency IdempotencyStore,
	notifier LowStockNotifier,
	opts AllocationOptions,
	logger logger.Interface,
) *CreateAssignmentUseCase {
	if opts.MaxCommitAttempts < 1 {
		opts.MaxCommitAttempts = 1
	}
	return &CreateAssignmentUseCase{
		assignmentRepo: assignmentRepo,
		dielineRepo:    dielineRepo,
		cartonRepo:     cartonRepo,
		ledger:         ledger,
		txMgr:          txMgr,
		resolver:       resolver,
		assembler:      assembler,
		idempotency:    idempotency,
		notifier:       notifier,
		opts:           opts,
		logger:         logger,
	}
}

func (uc *CreateAssignmentUseCase) Execute(ctx context.Context, cmd CreateAssignmentCommand) (*CreateAssignmentResult, error) {
	uc.logger.Infow("executing create assignment use case",
		"assigned_by", cmd.AssignedBy,
		"dimension_sets", len(cmd.DimensionSets),
		"cartons", len(cmd.CartonUsage),
	)

	useKey := uc.idempotency != nil && cmd.IdempotencyKey != ""
	if useKey {
		if replay, err := uc.replay(ctx, cmd); replay != nil || err != nil {
			return replay, err
		}
		release, err := uc.idempotency.Claim(ctx, cmd.AssignedBy, cmd.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		defer release(context.WithoutCancel(ctx))
		if replay, err := uc.replay(ctx, cmd); replay != nil || err != nil {
			return replay, err
		}
	}

	sel, err := parseSelection(cmd)
	if err != nil {
		return nil, err
	}

	dielineIDs, sets, err := uc.resolveDimensionSets(ctx, sel)
	if err != nil {
		return nil, err
	}

	if err := uc.checkCartons(ctx, sel, sets); err != nil {
		return nil, err
	}

	created, crossed, err := uc.commit(ctx, sel, dielineIDs, sets, cmd.AssignedBy)
	if err != nil {
		return nil, err
	}

	if useKey {
		// The assignment is committed; the key must outlive a client disconnect.
		if err := uc.idempotency.Remember(context.WithoutCancel(ctx), cmd.AssignedBy, cmd.IdempotencyKey, created.SID()); err != nil {
			uc.logger.Warnw("failed to remember idempotency key", "assignment_sid", created.SID(), "error", err)
		}
	}
	uc.alertLowStock(ctx, crossed)

	result, err := uc.assembler.AssembleOne(ctx, created)
	if err != nil {
		uc.logger.Errorw("failed to resolve created assignment", "assignment_sid", created.SID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("assignment created successfully",
		"assignment_sid", created.SID(),
		"total_sheets", created.TotalSheets(),
		"cartons_used", created.TotalCartonsUsed(),
	)
	return &CreateAssignmentResult{Assignment: result}, nil
}

func (uc *CreateAssignmentUseCase) replay(ctx context.Context, cmd CreateAssignmentCommand) (*CreateAssignmentResult, error) {
	sid, ok, err := uc.idempotency.Recall(ctx, cmd.AssignedBy, cmd.IdempotencyKey)
	if err != nil || !ok {
		return nil, err
	}
	a, err := uc.assignmentRepo.GetBySID(ctx, sid)
	if err != nil || a == nil {
		return nil, err
	}
	result, err := uc.assembler.AssembleOne(ctx, a)
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("replaying assignment for idempotency key", "assignment_sid", sid)
	return &CreateAssignmentResult{Assignment: result, Replayed: true}, nil
}

// resolveDimensionSets loads the referenced dielines and snapshots the
// chosen dimension sets from them.
func (uc *CreateAssignmentUseCase) resolveDimensionSets(ctx context.Context, sel *selection) ([]uint, []assignment.DimensionSet, error) {
	found, err := uc.dielineRepo.GetBySIDs(ctx, sel.dielineSIDs)
	if err != nil {
		uc.logger.Errorw("failed to load dielines", "error", err)
		return nil, nil, err
	}
	bySID := mapper.IndexBy(found, func(d *dieline.Dieline) string { return d.SID() })

	dielineIDs := make([]uint, 0, len(sel.dielineSIDs))
	for _, sid := range sel.dielineSIDs {
		d, ok := bySID[sid]
		if !ok {
			return nil, nil, errors.NewNotFoundError("dieline not found", sid)
		}
		dielineIDs = append(dielineIDs, d.ID())
	}

	sets := make([]assignment.DimensionSet, 0, len(sel.sets))
	for i, in := range sel.sets {
		d := bySID[in.DielineSID]
		dim, err := d.Dimension(in.DimensionIndex)
		if err != nil {
			return nil, nil, invalidSelection("dimension set %d: %s", i, err.Error())
		}
		sets = append(sets, assignment.DimensionSet{
			DielineID:      d.ID(),
			DimensionIndex: in.DimensionIndex,
			Dimension:      dim,
			Sheets:         in.Sheets,
		})
	}
	return dielineIDs, sets, nil
}

// checkCartons verifies every carton exists and, when enabled, fits at
// least one chosen dimension set. Stock is checked later inside the
// transaction.
func (uc *CreateAssignmentUseCase) checkCartons(ctx context.Context, sel *selection, sets []assignment.DimensionSet) error {
	found, err := uc.cartonRepo.GetBySIDs(ctx, sel.cartonSIDs)
	if err != nil {
		uc.logger.Errorw("failed to load cartons", "error", err)
		return err
	}
	bySID := mapper.IndexBy(found, func(c *carton.Carton) string { return c.SID() })

	targets := make([]dimension.Dimension, 0, len(sets))
	for _, s := range sets {
		targets = append(targets, s.Dimension)
	}

	for _, sid := range sel.cartonSIDs {
		c, ok := bySID[sid]
		if !ok {
			return errors.NewNotFoundError("carton not found", sid)
		}
		if uc.opts.EnforceCompatibility && !uc.resolver.CompatibleWithAny(c, targets) {
			return invalidSelection("carton %s (%s mm) does not fit any selected dimension set within %s mm",
				c.Name(), c.Box().String(), uc.resolver.Tolerance().MM().String())
		}
	}
	return nil
}

func (uc *CreateAssignmentUseCase) commit(
	ctx context.Context,
	sel *selection,
	dielineIDs []uint,
	sets []assignment.DimensionSet,
	assignedBy uint,
) (*assignment.Assignment, []*carton.Carton, error) {
	var (
		created *assignment.Assignment
		crossed []*carton.Carton
		err     error
	)

	for attempt := 1; attempt <= uc.opts.MaxCommitAttempts; attempt++ {
		err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			current, err := uc.currentStock(txCtx, sel)
			if err != nil {
				return err
			}
			short, err := shortages(sel.cartonSIDs, sel.quantities, current)
			if err != nil {
				return err
			}
			if len(short) > 0 {
				return &carton.InsufficientStockError{Shortages: short}
			}

			usage := make([]assignment.CartonUsage, 0, len(sel.cartonSIDs))
			for _, sid := range sel.cartonSIDs {
				usage = append(usage, assignment.CartonUsage{CartonID: current[sid].ID(), QuantityUsed: sel.quantities[sid]})
			}

			a, err := assignment.NewAssignment(dielineIDs, sets, usage, assignedBy, time.Time{})
			if err != nil {
				return errors.NewInvalidSelectionError(err.Error())
			}
			if err := uc.assignmentRepo.Create(txCtx, a); err != nil {
				return err
			}

			ordered := append([]assignment.CartonUsage(nil), usage...)
			sort.Slice(ordered, func(i, j int) bool { return ordered[i].CartonID < ordered[j].CartonID })
			for _, u := range ordered {
				if err := uc.ledger.Decrement(txCtx, u.CartonID, u.QuantityUsed); err != nil {
					return err
				}
			}

			created = a
			crossed = crossedLowStock(sel, current, uc.opts.LowStockRatio)
			return nil
		})
		if !stderrors.Is(err, carton.ErrStockConflict) {
			break
		}
		uc.logger.Warnw("stock changed during assignment commit, retrying", "attempt", attempt, "error", err)
	}

	if err == nil {
		return created, crossed, nil
	}
	return nil, nil, uc.translateCommitError(ctx, sel, err)
}

func (uc *CreateAssignmentUseCase) currentStock(ctx context.Context, sel *selection) (map[string]*carton.Carton, error) {
	found, err := uc.cartonRepo.GetBySIDs(ctx, sel.cartonSIDs)
	if err != nil {
		return nil, err
	}
	return mapper.IndexBy(found, func(c *carton.Carton) string { return c.SID() }), nil
}

func (uc *CreateAssignmentUseCase) translateCommitError(ctx context.Context, sel *selection, err error) error {
	if stderrors.Is(err, carton.ErrStockConflict) {
		// Retries exhausted: report against what is in stock now.
		current, readErr := uc.currentStock(ctx, sel)
		if readErr != nil {
			uc.logger.Errorw("failed to re-read stock after commit conflicts", "error", readErr)
			return readErr
		}
		short, shortErr := shortages(sel.cartonSIDs, sel.quantities, current)
		if shortErr != nil {
			err = shortErr
		} else if len(short) > 0 {
			err = &carton.InsufficientStockError{Shortages: short}
		} else {
			uc.logger.Warnw("assignment commit kept conflicting", "attempts", uc.opts.MaxCommitAttempts)
			return errors.NewConflictError("stock is changing too quickly, please retry")
		}
	}

	if insufficient, ok := carton.AsInsufficientStock(err); ok {
		uc.logger.Infow("assignment rejected for insufficient stock", "cartons", len(insufficient.Shortages))
		return errors.NewInsufficientStockError(insufficient.Error()).
			WithMeta(cartondto.ToShortageDTOs(insufficient.Shortages))
	}
	if stderrors.Is(err, carton.ErrCartonNotFound) {
		return errors.NewNotFoundError("carton not found", err.Error())
	}
	if !errors.IsAppError(err) {
		uc.logger.Errorw("failed to commit assignment", "error", err)
	}
	return err
}

// crossedLowStock returns the cartons this allocation pushes below the
// low-stock line, carrying their post-allocation counters.
func crossedLowStock(sel *selection, before map[string]*carton.Carton, ratio float64) []*carton.Carton {
	var result []*carton.Carton
	for _, sid := range sel.cartonSIDs {
		c := before[sid]
		after, err := c.Stock().Decrement(sel.quantities[sid])
		if err != nil || c.Stock().IsLow(ratio) || !after.IsLow(ratio) {
			continue
		}
		result = append(result, carton.ReconstructCarton(
			c.ID(), c.SID(), c.Name(), c.CompanyName(), c.Box(), after, c.CreatedBy(), c.CreatedAt(), c.UpdatedAt(),
		))
	}
	return result
}

func (uc *CreateAssignmentUseCase) alertLowStock(ctx context.Context, cartons []*carton.Carton) {
	if uc.notifier == nil || len(cartons) == 0 {
		return
	}
	goroutine.Detached(ctx, uc.logger, "low-stock-alert", lowStockAlertTimeout, func(ctx context.Context) {
		if err := uc.notifier.NotifyLowStock(ctx, cartons); err != nil {
			uc.logger.Warnw("failed to send low stock alert", "cartons", len(cartons), "error", err)
		}
	})
}
