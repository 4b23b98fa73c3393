package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/mappers"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/db"
	apperrors "github.com/cartonworks/stockline/internal/shared/errors"
)

var dielineSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type DielineRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DielineMapper
}

func NewDielineRepository(database *gorm.DB) dieline.Repository {
	return &DielineRepositoryImpl{
		db:     database,
		mapper: mappers.NewDielineMapper(),
	}
}

func (r *DielineRepositoryImpl) Create(ctx context.Context, d *dieline.Dieline) error {
	model := r.mapper.ToModel(d)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create dieline: %w", err)
	}
	d.SetID(model.ID)
	return nil
}

func (r *DielineRepositoryImpl) GetByID(ctx context.Context, id uint) (*dieline.Dieline, error) {
	var model models.DielineModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dieline by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *DielineRepositoryImpl) GetBySID(ctx context.Context, sid string) (*dieline.Dieline, error) {
	var model models.DielineModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dieline by SID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *DielineRepositoryImpl) GetBySIDs(ctx context.Context, sids []string) ([]*dieline.Dieline, error) {
	if len(sids) == 0 {
		return []*dieline.Dieline{}, nil
	}

	var list []*models.DielineModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid IN ?", sids).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get dielines by SIDs: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *DielineRepositoryImpl) GetByIDsUnscoped(ctx context.Context, ids []uint) ([]*dieline.Dieline, error) {
	if len(ids) == 0 {
		return []*dieline.Dieline{}, nil
	}

	var list []*models.DielineModel
	if err := db.GetTxFromContext(ctx, r.db).Unscoped().Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get dielines by IDs: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *DielineRepositoryImpl) List(ctx context.Context, filter dieline.ListFilter) ([]*dieline.Dieline, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.DielineModel{})
	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dielines: %w", err)
	}

	var list []*models.DielineModel
	if err := q.
		Order(filter.OrderClause(dielineSortColumns, "created_at DESC")).
		Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.Limit())).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list dielines: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *DielineRepositoryImpl) Update(ctx context.Context, d *dieline.Dieline) error {
	model := r.mapper.ToModel(d)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DielineModel{}).
		Where("id = ?", d.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"notes":      model.Notes,
			"dimensions": model.Dimensions,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update dieline: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("dieline not found")
	}
	return nil
}

func (r *DielineRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.DielineModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete dieline: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("dieline not found")
	}
	return nil
}

func (r *DielineRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.DielineModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count dielines: %w", err)
	}
	return total, nil
}
