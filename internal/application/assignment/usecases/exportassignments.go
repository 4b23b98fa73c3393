package usecases

import (
	"context"
	"io"
	"strings"

	"github.com/cartonworks/stockline/internal/application/assignment/dto"
	"github.com/cartonworks/stockline/internal/infrastructure/spreadsheet"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/query"
)

const exportPageSize = 100

// ExportAssignmentsUseCase writes the usage log to a workbook with one
// sheet of assignments and one row per consumed carton.
type ExportAssignmentsUseCase struct {
	list   *ListAssignmentsUseCase
	logger logger.Interface
}

func NewExportAssignmentsUseCase(list *ListAssignmentsUseCase, logger logger.Interface) *ExportAssignmentsUseCase {
	return &ExportAssignmentsUseCase{list: list, logger: logger}
}

func (uc *ExportAssignmentsUseCase) Execute(ctx context.Context, w io.Writer, q ListAssignmentsQuery) error {
	filter, err := uc.list.buildFilter(ctx, q)
	if err != nil {
		return err
	}
	filter.PageFilter = query.PageFilter{Page: 1, PageSize: exportPageSize}

	var all []*dto.AssignmentDTO
	for {
		items, total, err := uc.list.assignmentRepo.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to list assignments for export", "page", filter.Page, "error", err)
			return err
		}
		page, err := uc.list.assembler.Assemble(ctx, items)
		if err != nil {
			return err
		}
		all = append(all, page...)
		if len(items) == 0 || int64(filter.Page*exportPageSize) >= total {
			break
		}
		filter.Page++
	}

	uc.logger.Infow("exporting assignments", "count", len(all))
	return spreadsheet.WriteWorkbook(w, assignmentSheet(all), usageSheet(all))
}

func assignmentSheet(items []*dto.AssignmentDTO) spreadsheet.Sheet {
	rows := make([][]interface{}, 0, len(items))
	for _, a := range items {
		names := make([]string, 0, len(a.Dielines))
		for _, d := range a.Dielines {
			names = append(names, d.Name)
		}
		rows = append(rows, []interface{}{
			a.ID,
			a.AssignedAt.Format(constants.DateTimeLayout),
			userName(a),
			strings.Join(names, ", "),
			a.TotalSheets,
			a.TotalPieces,
			a.TotalCartonsUsed,
			yesNo(a.Reversal != nil),
		})
	}
	return spreadsheet.Sheet{
		Name:    "Assignments",
		Headers: []string{"Assignment", "Assigned At", "Assigned By", "Dielines", "Total Sheets", "Total Pieces", "Cartons Used", "Reversed"},
		Rows:    rows,
	}
}

func usageSheet(items []*dto.AssignmentDTO) spreadsheet.Sheet {
	var rows [][]interface{}
	for _, a := range items {
		for _, u := range a.CartonUsage {
			rows = append(rows, []interface{}{a.ID, u.CartonName, u.CompanyName, u.Dimensions, u.QuantityUsed})
		}
	}
	return spreadsheet.Sheet{
		Name:    "Carton Usage",
		Headers: []string{"Assignment", "Carton", "Company Name", "Dimensions", "Quantity Used"},
		Rows:    rows,
	}
}

func userName(a *dto.AssignmentDTO) string {
	if a.AssignedBy == nil {
		return "Legacy record"
	}
	return a.AssignedBy.Name
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
