package dto

import (
	"time"

	"github.com/cartonworks/stockline/internal/application/common/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/user"
)

type CartonDTO struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	CompanyName       string          `json:"company_name"`
	Length            float64         `json:"length"`
	Breadth           float64         `json:"breadth"`
	Height            float64         `json:"height"`
	Dimensions        string          `json:"dimensions"`
	TotalQuantity     int             `json:"total_quantity"`
	AvailableQuantity int             `json:"available_quantity"`
	UsedQuantity      int             `json:"used_quantity"`
	IsLowStock        bool            `json:"is_low_stock"`
	CreatedBy         *dto.UserRefDTO `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func ToCartonDTO(c *carton.Carton, creator *user.User, lowStockRatio float64) *CartonDTO {
	if c == nil {
		return nil
	}
	box := c.Box()
	return &CartonDTO{
		ID:                c.SID(),
		Name:              c.Name(),
		CompanyName:       c.CompanyName(),
		Length:            dto.Millimetres(box.Length),
		Breadth:           dto.Millimetres(box.Breadth),
		Height:            dto.Millimetres(box.Height),
		Dimensions:        box.String() + " mm",
		TotalQuantity:     c.TotalQuantity(),
		AvailableQuantity: c.AvailableQuantity(),
		UsedQuantity:      c.Stock().Used(),
		IsLowStock:        c.IsLowStock(lowStockRatio),
		CreatedBy:         dto.ToUserRefDTO(creator),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}

// ToCartonDTOs resolves creators from users, keyed by user id.
func ToCartonDTOs(cartons []*carton.Carton, users map[uint]*user.User, lowStockRatio float64) []*CartonDTO {
	result := make([]*CartonDTO, 0, len(cartons))
	for _, c := range cartons {
		result = append(result, ToCartonDTO(c, users[c.CreatedBy()], lowStockRatio))
	}
	return result
}

// ShortageDTO is one entry of an insufficient-stock error.
type ShortageDTO struct {
	CartonID   string `json:"carton_id"`
	CartonName string `json:"carton_name"`
	Requested  int    `json:"requested"`
	Available  int    `json:"available"`
	Shortfall  int    `json:"shortfall"`
}

func ToShortageDTOs(shortages []carton.Shortage) []ShortageDTO {
	result := make([]ShortageDTO, 0, len(shortages))
	for _, s := range shortages {
		result = append(result, ShortageDTO{
			CartonID:   s.CartonSID,
			CartonName: s.CartonName,
			Requested:  s.Requested,
			Available:  s.Available,
			Shortfall:  s.Shortfall(),
		})
	}
	return result
}
