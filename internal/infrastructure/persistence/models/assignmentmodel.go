package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/cartonworks/stockline/internal/shared/constants"
)

// DimensionSetJSON is the frozen dimension snapshot stored on an assignment.
type DimensionSetJSON struct {
	DielineID      uint `json:"dieline_id"`
	DimensionIndex int  `json:"dimension_index"`
	DimensionJSON
	Sheets int `json:"sheets"`
}

// AssignmentModel is the GORM model for assignments. Rows are insert-only.
type AssignmentModel struct {
	ID            uint                                  `gorm:"primaryKey;autoIncrement"`
	SID           string                                `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	DielineIDs    datatypes.JSONSlice[uint]             `gorm:"column:dieline_ids;not null"`
	DimensionSets datatypes.JSONSlice[DimensionSetJSON] `gorm:"column:dimension_sets;not null"`
	TotalSheets   int                                   `gorm:"column:total_sheets;not null"`
	AssignedBy    uint                                  `gorm:"column:assigned_by;not null;index"`
	AssignedAt    time.Time                             `gorm:"column:assigned_at;not null;index"`
	CreatedAt     time.Time                             `gorm:"column:created_at;autoCreateTime"`

	Cartons  []AssignmentCartonModel  `gorm:"foreignKey:AssignmentID"`
	Reversal *AssignmentReversalModel `gorm:"foreignKey:AssignmentID"`
}

// TableName returns the table name for GORM
func (AssignmentModel) TableName() string {
	return constants.TableAssignments
}

// AssignmentCartonModel is one carton consumed by an assignment.
type AssignmentCartonModel struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	AssignmentID uint `gorm:"column:assignment_id;not null;uniqueIndex:uk_assignment_carton"`
	CartonID     uint `gorm:"column:carton_id;not null;uniqueIndex:uk_assignment_carton;index"`
	Position     int  `gorm:"column:position;not null"`
	QuantityUsed int  `gorm:"column:quantity_used;not null;check:chk_assignment_cartons_qty,quantity_used >= 1"`
}

// TableName returns the table name for GORM
func (AssignmentCartonModel) TableName() string {
	return constants.TableAssignmentCartons
}

// AssignmentReversalModel records the compensation of an assignment.
type AssignmentReversalModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	AssignmentID uint      `gorm:"column:assignment_id;not null;uniqueIndex"`
	ReversedBy   uint      `gorm:"column:reversed_by;not null"`
	Reason       string    `gorm:"column:reason;size:500"`
	ReversedAt   time.Time `gorm:"column:reversed_at;not null"`
}

// TableName returns the table name for GORM
func (AssignmentReversalModel) TableName() string {
	return constants.TableAssignmentReversals
}
