package mappers

import (
	"sort"

	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/mapper"
)

type AssignmentMapper interface {
	ToEntity(model *models.AssignmentModel) *assignment.Assignment
	ToModel(entity *assignment.Assignment) *models.AssignmentModel
	ToEntities(models []*models.AssignmentModel) []*assignment.Assignment
	ReversalToModel(r *assignment.Reversal) *models.AssignmentReversalModel
}

type AssignmentMapperImpl struct{}

func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

func (m *AssignmentMapperImpl) ToEntity(model *models.AssignmentModel) *assignment.Assignment {
	if model == nil {
		return nil
	}

	sets := mapper.MapSlice([]models.DimensionSetJSON(model.DimensionSets), func(s models.DimensionSetJSON) assignment.DimensionSet {
		return assignment.DimensionSet{
			DielineID:      s.DielineID,
			DimensionIndex: s.DimensionIndex,
			Dimension:      DimensionFromJSON(s.DimensionJSON),
			Sheets:         s.Sheets,
		}
	})

	rows := append([]models.AssignmentCartonModel(nil), model.Cartons...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	usage := mapper.MapSlice(rows, func(r models.AssignmentCartonModel) assignment.CartonUsage {
		return assignment.CartonUsage{CartonID: r.CartonID, QuantityUsed: r.QuantityUsed}
	})

	var reversal *assignment.Reversal
	if r := model.Reversal; r != nil {
		reversal = assignment.ReconstructReversal(r.ID, r.AssignmentID, r.ReversedBy, r.Reason, r.ReversedAt)
	}

	return assignment.ReconstructAssignment(
		model.ID,
		model.SID,
		[]uint(model.DielineIDs),
		sets,
		usage,
		model.TotalSheets,
		model.AssignedBy,
		model.AssignedAt,
		model.CreatedAt,
		reversal,
	)
}

// ToModel includes the carton rows so a single Create inserts both.
func (m *AssignmentMapperImpl) ToModel(entity *assignment.Assignment) *models.AssignmentModel {
	if entity == nil {
		return nil
	}

	sets := mapper.MapSlice(entity.DimensionSets(), func(s assignment.DimensionSet) models.DimensionSetJSON {
		return models.DimensionSetJSON{
			DielineID:      s.DielineID,
			DimensionIndex: s.DimensionIndex,
			DimensionJSON:  DimensionToJSON(s.Dimension),
			Sheets:         s.Sheets,
		}
	})

	rows := make([]models.AssignmentCartonModel, 0, len(entity.CartonUsage()))
	for i, u := range entity.CartonUsage() {
		rows = append(rows, models.AssignmentCartonModel{
			AssignmentID: entity.ID(),
			CartonID:     u.CartonID,
			Position:     i,
			QuantityUsed: u.QuantityUsed,
		})
	}

	return &models.AssignmentModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		DielineIDs:    nonNilUints(entity.DielineIDs()),
		DimensionSets: sets,
		TotalSheets:   entity.TotalSheets(),
		AssignedBy:    entity.AssignedBy(),
		AssignedAt:    entity.AssignedAt(),
		CreatedAt:     entity.CreatedAt(),
		Cartons:       rows,
	}
}

func (m *AssignmentMapperImpl) ToEntities(list []*models.AssignmentModel) []*assignment.Assignment {
	return mapper.MapSlice(list, m.ToEntity)
}

func (m *AssignmentMapperImpl) ReversalToModel(r *assignment.Reversal) *models.AssignmentReversalModel {
	if r == nil {
		return nil
	}
	return &models.AssignmentReversalModel{
		ID:           r.ID(),
		AssignmentID: r.AssignmentID(),
		ReversedBy:   r.ReversedBy(),
		Reason:       r.Reason(),
		ReversedAt:   r.ReversedAt(),
	}
}

func nonNilUints(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return ids
}
