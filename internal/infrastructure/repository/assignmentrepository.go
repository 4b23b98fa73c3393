package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/mappers"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/db"
	apperrors "github.com/cartonworks/stockline/internal/shared/errors"
)

type AssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
}

func NewAssignmentRepository(database *gorm.DB) assignment.Repository {
	return &AssignmentRepositoryImpl{
		db:     database,
		mapper: mappers.NewAssignmentMapper(),
	}
}

// Create inserts the assignment row and its carton rows in one statement
// group. Callers wrap it in the same transaction as the stock decrements.
func (r *AssignmentRepositoryImpl) Create(ctx context.Context, a *assignment.Assignment) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *AssignmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	if err := r.preloaded(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AssignmentRepositoryImpl) GetBySID(ctx context.Context, sid string) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	if err := r.preloaded(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment by SID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AssignmentRepositoryImpl) List(ctx context.Context, filter assignment.ListFilter) ([]*assignment.Assignment, int64, error) {
	q := r.filtered(ctx, filter.AssignedBy, filter.CartonID, filter.Since).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	var list []*models.AssignmentModel
	if err := q.
		Preload("Cartons").
		Preload("Reversal").
		Order("assigned_at DESC").
		Order("id DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	return r.mapper.ToEntities(list), total, nil
}

func (r *AssignmentRepositoryImpl) Count(ctx context.Context, since *time.Time) (int64, error) {
	var total int64
	if err := r.filtered(ctx, nil, nil, since).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return total, nil
}

func (r *AssignmentRepositoryImpl) CreateReversal(ctx context.Context, rev *assignment.Reversal) error {
	model := r.mapper.ReversalToModel(rev)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return assignment.ErrAlreadyReversed
		}
		return fmt.Errorf("failed to create assignment reversal: %w", err)
	}
	rev.SetID(model.ID)
	return nil
}

func (r *AssignmentRepositoryImpl) preloaded(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).Preload("Cartons").Preload("Reversal")
}

func (r *AssignmentRepositoryImpl) filtered(ctx context.Context, assignedBy, cartonID *uint, since *time.Time) *gorm.DB {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.AssignmentModel{})
	if assignedBy != nil {
		q = q.Where("assigned_by = ?", *assignedBy)
	}
	if cartonID != nil {
		sub := db.GetTxFromContext(ctx, r.db).
			Table(constants.TableAssignmentCartons).
			Select("assignment_id").
			Where("carton_id = ?", *cartonID)
		q = q.Where("id IN (?)", sub)
	}
	if since != nil {
		q = q.Where("assigned_at >= ?", *since)
	}
	return q
}
