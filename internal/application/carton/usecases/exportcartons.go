package usecases

import (
	"context"
	"io"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/infrastructure/spreadsheet"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/query"
)

const exportPageSize = 100

var cartonExportHeaders = []string{
	"Name", "Company Name", "Length (mm)", "Breadth (mm)", "Height (mm)",
	"Total Quantity", "Available Quantity", "Used Quantity", "Low Stock",
}

// ExportCartonsUseCase writes every carton matching the query to an .xlsx
// workbook. Paging fields of the query are ignored.
type ExportCartonsUseCase struct {
	cartonRepo    carton.Repository
	lowStockRatio float64
	logger        logger.Interface
}

func NewExportCartonsUseCase(cartonRepo carton.Repository, lowStockRatio float64, logger logger.Interface) *ExportCartonsUseCase {
	return &ExportCartonsUseCase{cartonRepo: cartonRepo, lowStockRatio: lowStockRatio, logger: logger}
}

func (uc *ExportCartonsUseCase) Execute(ctx context.Context, w io.Writer, q ListCartonsQuery) error {
	filter := toListFilter(q)
	filter.PageFilter = query.PageFilter{Page: 1, PageSize: exportPageSize}

	var rows [][]interface{}
	for {
		cartons, total, err := uc.cartonRepo.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to list cartons for export", "page", filter.Page, "error", err)
			return err
		}
		for _, c := range cartons {
			box := c.Box()
			rows = append(rows, []interface{}{
				c.Name(),
				c.CompanyName(),
				box.Length.InexactFloat64(),
				box.Breadth.InexactFloat64(),
				box.Height.InexactFloat64(),
				c.TotalQuantity(),
				c.AvailableQuantity(),
				c.Stock().Used(),
				yesNo(c.IsLowStock(uc.lowStockRatio)),
			})
		}
		if len(cartons) == 0 || int64(filter.Page*exportPageSize) >= total {
			break
		}
		filter.Page++
	}

	uc.logger.Infow("exporting cartons", "count", len(rows))
	return spreadsheet.WriteWorkbook(w, spreadsheet.Sheet{
		Name:    "Cartons",
		Headers: cartonExportHeaders,
		Rows:    rows,
	})
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
