package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, headers []string, rows ...[]interface{}) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, Sheet{Name: "Cartons", Headers: headers, Rows: rows}))
	return bytes.NewReader(buf.Bytes())
}

func TestParseCartons_CurrentShape(t *testing.T) {
	r := workbookBytes(t,
		[]string{"Name", "Company Name", "Length (mm)", "Breadth (mm)", "Height (mm)", "Total Quantity", "Available Quantity"},
		[]interface{}{"Mailer", "Acme", 148.5, 102, 52, 100, 40},
		[]interface{}{"Shipper", "", 300, 200, 100, 10, ""},
	)

	rows, rowErrors, err := ParseCartons(r)
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, "Mailer", rows[0].Name)
	assert.Equal(t, "148.5", rows[0].Length.String())
	assert.Equal(t, 100, rows[0].TotalQuantity)
	assert.Equal(t, 40, rows[0].AvailableQuantity)
	assert.False(t, rows[0].Legacy)

	assert.Equal(t, 10, rows[1].AvailableQuantity, "missing available defaults to total")
}

func TestParseCartons_LegacyQuantity(t *testing.T) {
	r := workbookBytes(t,
		[]string{"name", "Length", "Breadth", "Height", "Quantity"},
		[]interface{}{"Old stock", 100, 100, 100, 25},
	)

	rows, rowErrors, err := ParseCartons(r)
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Legacy)
	assert.Equal(t, 25, rows[0].TotalQuantity)
	assert.Equal(t, 25, rows[0].AvailableQuantity)
}

func TestParseCartons_RowErrors(t *testing.T) {
	r := workbookBytes(t,
		[]string{"Name", "Length", "Breadth", "Height", "Total Quantity", "Available Quantity"},
		[]interface{}{"ok", 1, 1, 1, 5, 5},
		[]interface{}{"", 1, 1, 1, 5, 5},
		[]interface{}{"zero side", 0, 1, 1, 5, 5},
		[]interface{}{"too many", 1, 1, 1, 5, 6},
		[]interface{}{"fraction", 1, 1, 1, 2.5, ""},
		[]interface{}{"", "", "", "", "", ""},
	)

	rows, rowErrors, err := ParseCartons(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rowErrors, 4)

	assert.Equal(t, 3, rowErrors[0].Row)
	assert.Contains(t, rowErrors[0].Message, "Name is required")
	assert.Contains(t, rowErrors[1].Message, "Length must be greater than 0")
	assert.Contains(t, rowErrors[2].Message, "Available Quantity must not exceed")
	assert.Contains(t, rowErrors[3].Message, "not a whole number")
}

func TestParseCartons_MissingColumns(t *testing.T) {
	r := workbookBytes(t, []string{"Name", "Length"}, []interface{}{"x", 1})

	_, _, err := ParseCartons(r)
	require.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "Breadth")
	assert.Contains(t, err.Error(), "Quantity or Total Quantity")
}

func TestParseCartons_NotAWorkbook(t *testing.T) {
	_, _, err := ParseCartons(bytes.NewReader([]byte("name,length\n")))
	assert.Error(t, err)
}

func TestWriteWorkbook_MultipleSheets(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWorkbook(&buf,
		Sheet{Name: "Cartons", Headers: []string{"Name"}, Rows: [][]interface{}{{"A"}}},
		Sheet{Name: "Assignments", Headers: []string{"Total Sheets"}, Rows: [][]interface{}{{20}}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Cartons", "Assignments"}, f.GetSheetList())
	v, err := f.GetCellValue("Assignments", "A2")
	require.NoError(t, err)
	assert.Equal(t, "20", v)

	assert.Error(t, WriteWorkbook(&bytes.Buffer{}))
}
