package dto

import (
	"time"

	"github.com/cartonworks/stockline/internal/application/common/dto"
	dielinedto "github.com/cartonworks/stockline/internal/application/dieline/dto"
	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
)

// DimensionSetDTO shows the snapshot frozen on the assignment, not the
// dieline's current dimensions.
type DimensionSetDTO struct {
	Dieline        *dielinedto.DielineRefDTO `json:"dieline"`
	DimensionIndex int                       `json:"dimension_index"`
	Length         float64                   `json:"length"`
	Breadth        float64                   `json:"breadth"`
	Height         float64                   `json:"height"`
	UPS            int                       `json:"ups"`
	Sheets         int                       `json:"sheets"`
	Pieces         int                       `json:"pieces"`
}

type CartonUsageDTO struct {
	CartonID     string `json:"carton_id"`
	CartonName   string `json:"carton_name"`
	CompanyName  string `json:"company_name"`
	Dimensions   string `json:"dimensions"`
	QuantityUsed int    `json:"quantity_used"`
}

type ReversalDTO struct {
	ReversedBy *dto.UserRefDTO `json:"reversed_by"`
	Reason     string          `json:"reason"`
	ReversedAt time.Time       `json:"reversed_at"`
}

type AssignmentDTO struct {
	ID               string                      `json:"id"`
	Dielines         []*dielinedto.DielineRefDTO `json:"dielines"`
	DimensionSets    []DimensionSetDTO           `json:"dimension_sets"`
	CartonUsage      []CartonUsageDTO            `json:"carton_usage"`
	TotalSheets      int                         `json:"total_sheets"`
	TotalPieces      int                         `json:"total_pieces"`
	TotalCartonsUsed int                         `json:"total_cartons_used"`
	AssignedBy       *dto.UserRefDTO             `json:"assigned_by"`
	AssignedAt       time.Time                   `json:"assigned_at"`
	CreatedAt        time.Time                   `json:"created_at"`
	Reversal         *ReversalDTO                `json:"reversal,omitempty"`
}

// Lookups holds the entities an assignment references, keyed by id.
// Deleted dielines and cartons are expected to be present as well.
type Lookups struct {
	Dielines map[uint]*dieline.Dieline
	Cartons  map[uint]*carton.Carton
	Users    map[uint]*user.User
}

func ToAssignmentDTO(a *assignment.Assignment, l Lookups) *AssignmentDTO {
	if a == nil {
		return nil
	}

	dielines := make([]*dielinedto.DielineRefDTO, 0, len(a.DielineIDs()))
	for _, id := range a.DielineIDs() {
		if ref := dielinedto.ToDielineRefDTO(l.Dielines[id]); ref != nil {
			dielines = append(dielines, ref)
		}
	}

	sets := make([]DimensionSetDTO, 0, len(a.DimensionSets()))
	for _, s := range a.DimensionSets() {
		sets = append(sets, DimensionSetDTO{
			Dieline:        dielinedto.ToDielineRefDTO(l.Dielines[s.DielineID]),
			DimensionIndex: s.DimensionIndex,
			Length:         dto.Millimetres(s.Dimension.Length),
			Breadth:        dto.Millimetres(s.Dimension.Breadth),
			Height:         dto.Millimetres(s.Dimension.Height),
			UPS:            s.Dimension.UPS,
			Sheets:         s.Sheets,
			Pieces:         s.Pieces(),
		})
	}

	usage := make([]CartonUsageDTO, 0, len(a.CartonUsage()))
	for _, u := range a.CartonUsage() {
		item := CartonUsageDTO{QuantityUsed: u.QuantityUsed}
		if c := l.Cartons[u.CartonID]; c != nil {
			item.CartonID = c.SID()
			item.CartonName = c.Name()
			item.CompanyName = c.CompanyName()
			item.Dimensions = c.Box().String() + " mm"
		}
		usage = append(usage, item)
	}

	result := &AssignmentDTO{
		ID:               a.SID(),
		Dielines:         dielines,
		DimensionSets:    sets,
		CartonUsage:      usage,
		TotalSheets:      a.TotalSheets(),
		TotalPieces:      a.TotalPieces(),
		TotalCartonsUsed: a.TotalCartonsUsed(),
		AssignedBy:       dto.ToUserRefDTO(l.Users[a.AssignedBy()]),
		AssignedAt:       a.AssignedAt(),
		CreatedAt:        a.CreatedAt(),
	}
	if r := a.Reversal(); r != nil {
		result.Reversal = &ReversalDTO{
			ReversedBy: dto.ToUserRefDTO(l.Users[r.ReversedBy()]),
			Reason:     r.Reason(),
			ReversedAt: r.ReversedAt(),
		}
	}
	return result
}
