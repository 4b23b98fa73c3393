package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/cartonworks/stockline/internal/shared/utils"
)

// CartonRow is one parsed import row. Row is the 1-based spreadsheet row.
type CartonRow struct {
	Row               int             `json:"-"`
	Name              string          `json:"name" validate:"required,max=200"`
	CompanyName       string          `json:"company_name" validate:"max=200"`
	Length            decimal.Decimal `json:"length"`
	Breadth           decimal.Decimal `json:"breadth"`
	Height            decimal.Decimal `json:"height"`
	TotalQuantity     int             `json:"total_quantity" validate:"gte=0"`
	AvailableQuantity int             `json:"available_quantity" validate:"gte=0,ltefield=TotalQuantity"`
	// Legacy marks rows that only carried a single Quantity column.
	Legacy bool `json:"-"`
}

// RowError describes why one row was rejected.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

type column int

const (
	colName column = iota
	colCompany
	colLength
	colBreadth
	colHeight
	colTotal
	colAvailable
	colLegacyQuantity
)

var headerAliases = map[string]column{
	"name":               colName,
	"carton":             colName,
	"company name":       colCompany,
	"companyname":        colCompany,
	"company":            colCompany,
	"length":             colLength,
	"length (mm)":        colLength,
	"breadth":            colBreadth,
	"breadth (mm)":       colBreadth,
	"width":              colBreadth,
	"height":             colHeight,
	"height (mm)":        colHeight,
	"total quantity":     colTotal,
	"totalquantity":      colTotal,
	"available quantity": colAvailable,
	"availablequantity":  colAvailable,
	"available":          colAvailable,
	"quantity":           colLegacyQuantity,
}

var ErrMissingColumns = errors.New("spreadsheet is missing required columns")

// ParseCartons reads the first worksheet of an .xlsx file. It returns the
// valid rows and one RowError per rejected row; err is reserved for files
// that cannot be read at all.
func ParseCartons(r io.Reader) ([]CartonRow, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: sheet %q is empty", ErrMissingColumns, sheets[0])
	}

	index, err := mapHeaders(rows[0])
	if err != nil {
		return nil, nil, err
	}

	var (
		parsed    []CartonRow
		rowErrors []RowError
	)
	for i, cells := range rows[1:] {
		rowNo := i + 2
		if isBlank(cells) {
			continue
		}
		row, err := parseRow(rowNo, cells, index)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: rowNo, Message: err.Error()})
			continue
		}
		parsed = append(parsed, row)
	}
	return parsed, rowErrors, nil
}

func mapHeaders(header []string) (map[column]int, error) {
	index := make(map[column]int)
	for i, h := range header {
		key := strings.ToLower(strings.Join(strings.Fields(h), " "))
		if col, ok := headerAliases[key]; ok {
			if _, dup := index[col]; !dup {
				index[col] = i
			}
		}
	}

	var missing []string
	for col, name := range map[column]string{colName: "Name", colLength: "Length", colBreadth: "Breadth", colHeight: "Height"} {
		if _, ok := index[col]; !ok {
			missing = append(missing, name)
		}
	}
	_, hasTotal := index[colTotal]
	_, hasLegacy := index[colLegacyQuantity]
	if !hasTotal && !hasLegacy {
		missing = append(missing, "Quantity or Total Quantity")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRow(rowNo int, cells []string, index map[column]int) (CartonRow, error) {
	cell := func(col column) string {
		i, ok := index[col]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	row := CartonRow{
		Row:         rowNo,
		Name:        utils.SanitizeName(cell(colName)),
		CompanyName: utils.SanitizeName(cell(colCompany)),
	}

	var err error
	if row.Length, err = parseSide("Length", cell(colLength)); err != nil {
		return row, err
	}
	if row.Breadth, err = parseSide("Breadth", cell(colBreadth)); err != nil {
		return row, err
	}
	if row.Height, err = parseSide("Height", cell(colHeight)); err != nil {
		return row, err
	}

	if raw := cell(colTotal); raw != "" {
		if row.TotalQuantity, err = parseCount("Total Quantity", raw); err != nil {
			return row, err
		}
		row.AvailableQuantity = row.TotalQuantity
		if rawAvail := cell(colAvailable); rawAvail != "" {
			if row.AvailableQuantity, err = parseCount("Available Quantity", rawAvail); err != nil {
				return row, err
			}
		}
	} else {
		if row.TotalQuantity, err = parseCount("Quantity", cell(colLegacyQuantity)); err != nil {
			return row, err
		}
		row.AvailableQuantity = row.TotalQuantity
		row.Legacy = true
	}

	if err := validateRow(row); err != nil {
		return row, err
	}
	return row, nil
}

var fieldHeaders = map[string]string{
	"Name":              "Name",
	"CompanyName":       "Company Name",
	"TotalQuantity":     "Total Quantity",
	"AvailableQuantity": "Available Quantity",
}

var rowValidator = newRowValidator()

func newRowValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name, ok := fieldHeaders[fld.Name]; ok {
			return name
		}
		return fld.Name
	})
	return v
}

func validateRow(row CartonRow) error {
	err := rowValidator.Struct(row)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, utils.FieldErrorMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func parseSide(name, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%s is required", name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q is not a number", name, raw)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s must be greater than 0", name)
	}
	return d, nil
}

func parseCount(name, raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Spreadsheets often store whole numbers as "12.0".
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("%s %q is not a whole number", name, raw)
		}
		n = int(f)
	}
	return n, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
