package mappers

import (
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) []*user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(model.ID, model.SID, model.Name, model.Email, user.Role(model.Role), model.CreatedAt, model.UpdatedAt)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		Email:     entity.Email(),
		Role:      string(entity.Role()),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(list []*models.UserModel) []*user.User {
	return mapper.MapSlice(list, m.ToEntity)
}
