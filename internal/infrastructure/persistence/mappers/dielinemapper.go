package mappers

import (
	"fmt"

	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

type DielineMapper interface {
	ToEntity(model *models.DielineModel) (*dieline.Dieline, error)
	ToModel(entity *dieline.Dieline) *models.DielineModel
	ToEntities(models []*models.DielineModel) ([]*dieline.Dieline, error)
}

type DielineMapperImpl struct{}

func NewDielineMapper() DielineMapper {
	return &DielineMapperImpl{}
}

func (m *DielineMapperImpl) ToEntity(model *models.DielineModel) (*dieline.Dieline, error) {
	if model == nil {
		return nil, nil
	}

	dims := make([]dimension.Dimension, 0, len(model.Dimensions))
	for i, d := range model.Dimensions {
		dim := DimensionFromJSON(d)
		if err := dim.Validate(); err != nil {
			return nil, fmt.Errorf("dieline %s dimension %d: %w", model.SID, i, err)
		}
		dims = append(dims, dim)
	}

	return dieline.ReconstructDieline(
		model.ID,
		model.SID,
		model.Name,
		model.Notes,
		dims,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *DielineMapperImpl) ToModel(entity *dieline.Dieline) *models.DielineModel {
	if entity == nil {
		return nil
	}

	return &models.DielineModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		Name:       entity.Name(),
		Notes:      entity.Notes(),
		Dimensions: mapper.MapSlice(entity.Dimensions(), DimensionToJSON),
		CreatedBy:  entity.CreatedBy(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *DielineMapperImpl) ToEntities(list []*models.DielineModel) ([]*dieline.Dieline, error) {
	return mapper.MapSliceWithID(list, m.ToEntity, func(model *models.DielineModel) uint { return model.ID })
}

func DimensionToJSON(d dimension.Dimension) models.DimensionJSON {
	return models.DimensionJSON{Length: d.Length, Breadth: d.Breadth, Height: d.Height, UPS: d.UPS}
}

func DimensionFromJSON(d models.DimensionJSON) dimension.Dimension {
	return dimension.Dimension{
		Box: dimension.Box{Length: d.Length, Breadth: d.Breadth, Height: d.Height},
		UPS: d.UPS,
	}
}
