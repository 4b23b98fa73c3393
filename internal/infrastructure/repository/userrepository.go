package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/mappers"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/db"
	apperrors "github.com/cartonworks/stockline/internal/shared/errors"
)

var userSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
}

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) user.Repository {
	return &UserRepositoryImpl{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user with this email already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"name":       u.Name(),
			"email":      u.Email(),
			"role":       string(u.Role()),
			"updated_at": u.UpdatedAt(),
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("email already in use", u.Email())
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepositoryImpl) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return r.first(ctx, "sid = ?", sid)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}
	var list []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Unscoped().Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	return r.mapper.ToEntities(list), nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", string(filter.Role))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var list []*models.UserModel
	if err := q.
		Order(filter.OrderClause(userSortColumns, "created_at DESC")).
		Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.Limit())).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return r.mapper.ToEntities(list), total, nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) first(ctx context.Context, cond string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}
