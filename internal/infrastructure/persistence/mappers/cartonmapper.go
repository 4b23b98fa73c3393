package mappers

import (
	"fmt"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

// CartonMapper converts between carton entities and models.
type CartonMapper interface {
	ToEntity(model *models.CartonModel) (*carton.Carton, error)
	ToModel(entity *carton.Carton) *models.CartonModel
	ToEntities(models []*models.CartonModel) ([]*carton.Carton, error)
}

type CartonMapperImpl struct{}

func NewCartonMapper() CartonMapper {
	return &CartonMapperImpl{}
}

func (m *CartonMapperImpl) ToEntity(model *models.CartonModel) (*carton.Carton, error) {
	if model == nil {
		return nil, nil
	}

	stock, err := carton.RestoreStock(model.TotalQuantity, model.AvailableQuantity)
	if err != nil {
		return nil, fmt.Errorf("carton %s: %w", model.SID, err)
	}

	box := dimension.Box{Length: model.Length, Breadth: model.Breadth, Height: model.Height}

	return carton.ReconstructCarton(
		model.ID,
		model.SID,
		model.Name,
		model.CompanyName,
		box,
		stock,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *CartonMapperImpl) ToModel(entity *carton.Carton) *models.CartonModel {
	if entity == nil {
		return nil
	}

	box := entity.Box()
	return &models.CartonModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		Name:              entity.Name(),
		CompanyName:       entity.CompanyName(),
		Length:            box.Length,
		Breadth:           box.Breadth,
		Height:            box.Height,
		TotalQuantity:     entity.TotalQuantity(),
		AvailableQuantity: entity.AvailableQuantity(),
		CreatedBy:         entity.CreatedBy(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}
}

func (m *CartonMapperImpl) ToEntities(list []*models.CartonModel) ([]*carton.Carton, error) {
	return mapper.MapSliceWithID(list, m.ToEntity, func(model *models.CartonModel) uint { return model.ID })
}
