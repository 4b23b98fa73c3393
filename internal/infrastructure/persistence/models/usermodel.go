package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/shared/constants"
)

// UserModel is the GORM model for operators.
type UserModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	SID       string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name      string         `gorm:"column:name;size:100;not null"`
	Email     string         `gorm:"column:email;size:255;not null;uniqueIndex"`
	Role      string         `gorm:"column:role;size:20;not null;default:employee"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
