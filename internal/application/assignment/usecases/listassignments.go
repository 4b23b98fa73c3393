package usecases

import (
	"context"
	"time"

	"github.com/cartonworks/stockline/internal/application/assignment/dto"
	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/query"
)

// ListAssignmentsQuery lists newest first. AssignedBy narrows to one
// operator; CartonSID gives the usage history of one carton.
type ListAssignmentsQuery struct {
	Page       int
	PageSize   int
	AssignedBy *uint
	CartonSID  string
	Since      *time.Time
}

type ListAssignmentsResult struct {
	Assignments []*dto.AssignmentDTO `json:"assignments"`
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

type ListAssignmentsUseCase struct {
	assignmentRepo assignment.Repository
	cartonRepo     carton.Repository
	assembler      *Assembler
	logger         logger.Interface
}

func NewListAssignmentsUseCase(
	assignmentRepo assignment.Repository,
	cartonRepo carton.Repository,
	assembler *Assembler,
	logger logger.Interface,
) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		cartonRepo:     cartonRepo,
		assembler:      assembler,
		logger:         logger,
	}
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, q ListAssignmentsQuery) (*ListAssignmentsResult, error) {
	filter, err := uc.buildFilter(ctx, q)
	if err != nil {
		return nil, err
	}

	items, total, err := uc.assignmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assignments", "error", err)
		return nil, err
	}

	result, err := uc.assembler.Assemble(ctx, items)
	if err != nil {
		uc.logger.Errorw("failed to resolve assignments", "error", err)
		return nil, err
	}

	return &ListAssignmentsResult{
		Assignments: result,
		TotalCount:  total,
		Page:        filter.Page,
		PageSize:    filter.Limit(),
	}, nil
}

func (uc *ListAssignmentsUseCase) buildFilter(ctx context.Context, q ListAssignmentsQuery) (assignment.ListFilter, error) {
	base := query.NewBaseFilter(query.WithPage(q.Page, q.PageSize))
	filter := assignment.ListFilter{
		PageFilter: base.PageFilter,
		AssignedBy: q.AssignedBy,
		Since:      q.Since,
	}
	if q.CartonSID != "" {
		c, err := uc.cartonRepo.GetBySID(ctx, q.CartonSID)
		if err != nil {
			return filter, err
		}
		if c == nil {
			return filter, errors.NewNotFoundError("carton not found", q.CartonSID)
		}
		id := c.ID()
		filter.CartonID = &id
	}
	return filter, nil
}
