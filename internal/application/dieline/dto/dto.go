package dto

import (
	"time"

	"github.com/cartonworks/stockline/internal/application/common/dto"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/domain/user"
)

type DimensionDTO struct {
	Index   int     `json:"index"`
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
	UPS     int     `json:"ups"`
	Label   string  `json:"label"`
}

type DielineDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Notes      string          `json:"notes"`
	NotesHTML  string          `json:"notes_html,omitempty"`
	Dimensions []DimensionDTO  `json:"dimensions"`
	CreatedBy  *dto.UserRefDTO `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func ToDimensionDTO(index int, d dimension.Dimension) DimensionDTO {
	return DimensionDTO{
		Index:   index,
		Length:  dto.Millimetres(d.Length),
		Breadth: dto.Millimetres(d.Breadth),
		Height:  dto.Millimetres(d.Height),
		UPS:     d.UPS,
		Label:   d.String(),
	}
}

func ToDimensionDTOs(dims []dimension.Dimension) []DimensionDTO {
	result := make([]DimensionDTO, 0, len(dims))
	for i, d := range dims {
		result = append(result, ToDimensionDTO(i, d))
	}
	return result
}

func ToDielineDTO(d *dieline.Dieline, creator *user.User, notesHTML string) *DielineDTO {
	if d == nil {
		return nil
	}
	return &DielineDTO{
		ID:         d.SID(),
		Name:       d.Name(),
		Notes:      d.Notes(),
		NotesHTML:  notesHTML,
		Dimensions: ToDimensionDTOs(d.Dimensions()),
		CreatedBy:  dto.ToUserRefDTO(creator),
		CreatedAt:  d.CreatedAt(),
		UpdatedAt:  d.UpdatedAt(),
	}
}

// DielineRefDTO is the short form used inside assignment responses.
type DielineRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToDielineRefDTO(d *dieline.Dieline) *DielineRefDTO {
	if d == nil {
		return nil
	}
	return &DielineRefDTO{ID: d.SID(), Name: d.Name()}
}
