package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/shared/constants"
)

// CartonModel is the GORM model for cartons. The check constraint mirrors
// the ledger invariant so a bad write fails in the database too.
type CartonModel struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"`
	SID               string          `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name              string          `gorm:"column:name;size:200;not null;index"`
	CompanyName       string          `gorm:"column:company_name;size:200;index"`
	Length            decimal.Decimal `gorm:"column:length;type:decimal(10,2);not null"`
	Breadth           decimal.Decimal `gorm:"column:breadth;type:decimal(10,2);not null"`
	Height            decimal.Decimal `gorm:"column:height;type:decimal(10,2);not null"`
	TotalQuantity     int             `gorm:"column:total_quantity;not null;default:0;check:chk_cartons_stock,available_quantity >= 0 AND available_quantity <= total_quantity"`
	AvailableQuantity int             `gorm:"column:available_quantity;not null;default:0;index"`
	CreatedBy         uint            `gorm:"column:created_by;not null;index"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt         gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (CartonModel) TableName() string {
	return constants.TableCartons
}
