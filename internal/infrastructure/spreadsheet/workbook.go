// Package spreadsheet reads and writes .xlsx workbooks for bulk carton
// import and for exports.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const minColumnWidth = 15

// Sheet is one worksheet of an export.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// WriteWorkbook renders sheets in order and writes the .xlsx bytes to w.
func WriteWorkbook(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	headers := make([]interface{}, len(sheet.Headers))
	for i, h := range sheet.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers of %q: %w", sheet.Name, err)
	}

	for r, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %q: %w", r+2, sheet.Name, err)
		}
	}

	if len(sheet.Headers) == 0 {
		return nil
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style headers of %q: %w", sheet.Name, err)
	}
	for i, h := range sheet.Headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(h) + 2)
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s of %q: %w", col, sheet.Name, err)
		}
	}
	return nil
}
