package usecases

import (
	"context"
	"strings"

	cartondto "github.com/cartonworks/stockline/internal/application/carton/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/compatibility"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

// CompatibleCartonsQuery asks which in-stock cartons fit any dimension set
// of the given dielines. A nil ToleranceMM uses the configured default.
type CompatibleCartonsQuery struct {
	DielineSIDs []string
	ToleranceMM *float64
}

type CompatibleCartonsResult struct {
	Cartons     []*cartondto.CartonDTO `json:"cartons"`
	ToleranceMM float64                `json:"tolerance_mm"`
}

type CompatibleCartonsUseCase struct {
	dielineRepo   dieline.Repository
	cartonRepo    carton.Repository
	userRepo      user.Repository
	resolver      *compatibility.Resolver
	lowStockRatio float64
	logger        logger.Interface
}

func NewCompatibleCartonsUseCase(
	dielineRepo dieline.Repository,
	cartonRepo carton.Repository,
	userRepo user.Repository,
	resolver *compatibility.Resolver,
	lowStockRatio float64,
	logger logger.Interface,
) *CompatibleCartonsUseCase {
	return &CompatibleCartonsUseCase{
		dielineRepo:   dielineRepo,
		cartonRepo:    cartonRepo,
		userRepo:      userRepo,
		resolver:      resolver,
		lowStockRatio: lowStockRatio,
		logger:        logger,
	}
}

func (uc *CompatibleCartonsUseCase) Execute(ctx context.Context, q CompatibleCartonsQuery) (*CompatibleCartonsResult, error) {
	sids := make([]string, 0, len(q.DielineSIDs))
	for _, sid := range q.DielineSIDs {
		if sid = strings.TrimSpace(sid); sid != "" {
			sids = append(sids, sid)
		}
	}
	sids = mapper.Unique(sids)
	if len(sids) == 0 {
		return nil, errors.NewInvalidSelectionError("select at least one dieline")
	}

	resolver := uc.resolver
	if q.ToleranceMM != nil {
		tol, err := dimension.NewTolerance(*q.ToleranceMM)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		resolver = resolver.WithTolerance(tol)
	}

	found, err := uc.dielineRepo.GetBySIDs(ctx, sids)
	if err != nil {
		uc.logger.Errorw("failed to load dielines", "error", err)
		return nil, err
	}
	bySID := mapper.IndexBy(found, func(d *dieline.Dieline) string { return d.SID() })
	dielines := make([]*dieline.Dieline, 0, len(sids))
	for _, sid := range sids {
		d, ok := bySID[sid]
		if !ok {
			return nil, errors.NewNotFoundError("dieline not found", sid)
		}
		dielines = append(dielines, d)
	}

	available, err := uc.cartonRepo.ListAvailable(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list available cartons", "error", err)
		return nil, err
	}
	matched := resolver.ResolveMany(dielines, available)

	creatorIDs := make([]uint, 0, len(matched))
	for _, c := range matched {
		creatorIDs = append(creatorIDs, c.CreatedBy())
	}
	users := map[uint]*user.User{}
	if list, err := uc.userRepo.GetByIDs(ctx, mapper.Unique(creatorIDs)); err != nil {
		uc.logger.Warnw("failed to resolve carton creators", "error", err)
	} else {
		users = mapper.IndexBy(list, func(u *user.User) uint { return u.ID() })
	}

	uc.logger.Debugw("resolved compatible cartons",
		"dielines", len(dielines),
		"candidates", len(available),
		"compatible", len(matched),
		"tolerance_mm", resolver.Tolerance().Float64(),
	)
	return &CompatibleCartonsResult{
		Cartons:     cartondto.ToCartonDTOs(matched, users, uc.lowStockRatio),
		ToleranceMM: resolver.Tolerance().Float64(),
	}, nil
}
