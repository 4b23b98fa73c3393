package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/shared/constants"
)

// DimensionJSON is one dimension set as stored in a JSON column.
type DimensionJSON struct {
	Length  decimal.Decimal `json:"length"`
	Breadth decimal.Decimal `json:"breadth"`
	Height  decimal.Decimal `json:"height"`
	UPS     int             `json:"ups"`
}

// DielineModel is the GORM model for dielines. Dimension sets are embedded
// as JSON since they are always read and replaced as a whole.
type DielineModel struct {
	ID         uint                               `gorm:"primaryKey;autoIncrement"`
	SID        string                             `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name       string                             `gorm:"column:name;size:200;not null;index"`
	Notes      string                             `gorm:"column:notes;type:text"`
	Dimensions datatypes.JSONSlice[DimensionJSON] `gorm:"column:dimensions;not null"`
	CreatedBy  uint                               `gorm:"column:created_by;not null;index"`
	CreatedAt  time.Time                          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time                          `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  gorm.DeletedAt                     `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (DielineModel) TableName() string {
	return constants.TableDielines
}
