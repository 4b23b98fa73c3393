package usecases

import (
	"context"
	"fmt"

	"github.com/cartonworks/stockline/internal/application/assignment/dto"
	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

// Assembler resolves the dielines, cartons and users an assignment refers
// to. Soft-deleted dielines and cartons still resolve so history stays
// readable.
type Assembler struct {
	dielineRepo dieline.Repository
	cartonRepo  carton.Repository
	userRepo    user.Repository
}

func NewAssembler(dielineRepo dieline.Repository, cartonRepo carton.Repository, userRepo user.Repository) *Assembler {
	return &Assembler{dielineRepo: dielineRepo, cartonRepo: cartonRepo, userRepo: userRepo}
}

func (a *Assembler) Assemble(ctx context.Context, items []*assignment.Assignment) ([]*dto.AssignmentDTO, error) {
	var dielineIDs, cartonIDs, userIDs []uint
	for _, item := range items {
		dielineIDs = append(dielineIDs, item.DielineIDs()...)
		for _, s := range item.DimensionSets() {
			dielineIDs = append(dielineIDs, s.DielineID)
		}
		cartonIDs = append(cartonIDs, item.CartonIDs()...)
		userIDs = append(userIDs, item.AssignedBy())
		if r := item.Reversal(); r != nil {
			userIDs = append(userIDs, r.ReversedBy())
		}
	}

	dielines, err := a.dielineRepo.GetByIDsUnscoped(ctx, mapper.Unique(dielineIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dielines: %w", err)
	}
	cartons, err := a.cartonRepo.GetByIDsUnscoped(ctx, mapper.Unique(cartonIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cartons: %w", err)
	}
	users, err := a.userRepo.GetByIDs(ctx, mapper.Unique(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}

	lookups := dto.Lookups{
		Dielines: mapper.IndexBy(dielines, func(d *dieline.Dieline) uint { return d.ID() }),
		Cartons:  mapper.IndexBy(cartons, func(c *carton.Carton) uint { return c.ID() }),
		Users:    mapper.IndexBy(users, func(u *user.User) uint { return u.ID() }),
	}

	result := make([]*dto.AssignmentDTO, 0, len(items))
	for _, item := range items {
		result = append(result, dto.ToAssignmentDTO(item, lookups))
	}
	return result, nil
}

func (a *Assembler) AssembleOne(ctx context.Context, item *assignment.Assignment) (*dto.AssignmentDTO, error) {
	result, err := a.Assemble(ctx, []*assignment.Assignment{item})
	if err != nil {
		return nil, err
	}
	return result[0], nil
}
