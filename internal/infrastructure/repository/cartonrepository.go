package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/mappers"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/db"
	apperrors "github.com/cartonworks/stockline/internal/shared/errors"
)

var cartonSortColumns = map[string]string{
	"name":               "name",
	"company_name":       "company_name",
	"available_quantity": "available_quantity",
	"total_quantity":     "total_quantity",
	"created_at":         "created_at",
}

type CartonRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CartonMapper
}

func NewCartonRepository(database *gorm.DB) carton.Repository {
	return &CartonRepositoryImpl{
		db:     database,
		mapper: mappers.NewCartonMapper(),
	}
}

func (r *CartonRepositoryImpl) Create(ctx context.Context, c *carton.Carton) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("carton already exists")
		}
		return fmt.Errorf("failed to create carton: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

// CreateBatch inserts all cartons or none.
func (r *CartonRepositoryImpl) CreateBatch(ctx context.Context, cartons []*carton.Carton) error {
	if len(cartons) == 0 {
		return nil
	}

	list := make([]*models.CartonModel, 0, len(cartons))
	for _, c := range cartons {
		list = append(list, r.mapper.ToModel(c))
	}

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(list, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create cartons: %w", err)
	}

	for i, model := range list {
		cartons[i].SetID(model.ID)
	}
	return nil
}

func (r *CartonRepositoryImpl) GetByID(ctx context.Context, id uint) (*carton.Carton, error) {
	var model models.CartonModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get carton by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CartonRepositoryImpl) GetBySID(ctx context.Context, sid string) (*carton.Carton, error) {
	var model models.CartonModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get carton by SID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CartonRepositoryImpl) GetBySIDs(ctx context.Context, sids []string) ([]*carton.Carton, error) {
	if len(sids) == 0 {
		return []*carton.Carton{}, nil
	}

	var list []*models.CartonModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid IN ?", sids).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get cartons by SIDs: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *CartonRepositoryImpl) GetByIDsUnscoped(ctx context.Context, ids []uint) ([]*carton.Carton, error) {
	if len(ids) == 0 {
		return []*carton.Carton{}, nil
	}

	var list []*models.CartonModel
	if err := db.GetTxFromContext(ctx, r.db).Unscoped().Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get cartons by IDs: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *CartonRepositoryImpl) ListAvailable(ctx context.Context) ([]*carton.Carton, error) {
	var list []*models.CartonModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("available_quantity > 0").
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list available cartons: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *CartonRepositoryImpl) List(ctx context.Context, filter carton.ListFilter) ([]*carton.Carton, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.CartonModel{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR company_name LIKE ?", like, like)
	}
	if filter.CompanyName != "" {
		q = q.Where("company_name = ?", filter.CompanyName)
	}
	if filter.OnlyAvailable {
		q = q.Where("available_quantity > 0")
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cartons: %w", err)
	}

	var list []*models.CartonModel
	if err := q.
		Order(filter.OrderClause(cartonSortColumns, "created_at DESC")).
		Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.Limit())).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cartons: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// UpdateDetails writes descriptive columns only; counters are never part of it.
func (r *CartonRepositoryImpl) UpdateDetails(ctx context.Context, c *carton.Carton) error {
	box := c.Box()
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CartonModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"name":         c.Name(),
			"company_name": c.CompanyName(),
			"length":       box.Length,
			"breadth":      box.Breadth,
			"height":       box.Height,
			"updated_at":   c.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update carton: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("carton not found")
	}
	return nil
}

func (r *CartonRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CartonModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete carton: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("carton not found")
	}
	return nil
}

func (r *CartonRepositoryImpl) LowStock(ctx context.Context, ratio float64, limit int) ([]*carton.Carton, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Where("total_quantity > 0 AND available_quantity < total_quantity * ?", ratio).
		Order("available_quantity ASC").
		Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var list []*models.CartonModel
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list low stock cartons: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *CartonRepositoryImpl) Totals(ctx context.Context) (carton.Totals, error) {
	var row struct {
		Cartons           int64
		TotalQuantity     int64
		AvailableQuantity int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CartonModel{}).
		Select("COUNT(*) AS cartons, COALESCE(SUM(total_quantity), 0) AS total_quantity, COALESCE(SUM(available_quantity), 0) AS available_quantity").
		Scan(&row).Error
	if err != nil {
		return carton.Totals{}, fmt.Errorf("failed to aggregate cartons: %w", err)
	}
	return carton.Totals{
		Cartons:           row.Cartons,
		TotalQuantity:     row.TotalQuantity,
		AvailableQuantity: row.AvailableQuantity,
	}, nil
}
