package dto

import (
	assignmentdto "github.com/cartonworks/stockline/internal/application/assignment/dto"
	cartondto "github.com/cartonworks/stockline/internal/application/carton/dto"
)

type StatsDTO struct {
	TotalDielines     int64 `json:"total_dielines"`
	TotalCartons      int64 `json:"total_cartons"`
	TotalAssignments  int64 `json:"total_assignments"`
	TotalUsers        int64 `json:"total_users"`
	LowStockCartons   int   `json:"low_stock_cartons"`
	RecentAssignments int64 `json:"recent_assignments"`
	RecentWindowDays  int   `json:"recent_window_days"`
	TotalQuantity     int64 `json:"total_quantity"`
	AvailableQuantity int64 `json:"available_quantity"`
	UsedQuantity      int64 `json:"used_quantity"`
}

type RecentActivityDTO struct {
	Assignments []*assignmentdto.AssignmentDTO `json:"assignments"`
}

type LowStockDTO struct {
	Cartons []*cartondto.CartonDTO `json:"cartons"`
	Ratio   float64                `json:"ratio"`
}
