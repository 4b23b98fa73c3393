package carton

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/domain/dimension"
)

func testBox(t *testing.T) dimension.Box {
	t.Helper()
	box, err := dimension.NewBoxFromFloat(148, 102, 52)
	require.NoError(t, err)
	return box
}

func TestNewCarton(t *testing.T) {
	c, err := NewCarton("  Kraft A ", "Acme Board", testBox(t), 10, 1)
	require.NoError(t, err)

	assert.Equal(t, "Kraft A", c.Name())
	assert.True(t, strings.HasPrefix(c.SID(), "ctn_"))
	assert.Equal(t, 10, c.TotalQuantity())
	assert.Equal(t, 10, c.AvailableQuantity())
	assert.True(t, c.IsAvailable())
}

func TestNewCarton_Invalid(t *testing.T) {
	_, err := NewCarton("", "", testBox(t), 10, 1)
	assert.Error(t, err)

	_, err = NewCarton("A", "", dimension.Box{}, 10, 1)
	assert.ErrorIs(t, err, dimension.ErrNonPositiveSide)

	_, err = NewCarton("A", "", testBox(t), -5, 1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCarton_ReviseTotal(t *testing.T) {
	stock, _ := RestoreStock(20, 5)
	c := ReconstructCarton(1, "ctn_x", "A", "", testBox(t), stock, 1, fixedTime, fixedTime)

	next, err := c.ReviseTotal(30)
	require.NoError(t, err)
	assert.Equal(t, 15, next.Available())
	assert.Equal(t, next, c.Stock())

	_, err = c.ReviseTotal(10)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 30, c.TotalQuantity())
}

func TestCarton_UpdateDetailsKeepsCounters(t *testing.T) {
	c, err := NewCarton("A", "", testBox(t), 10, 1)
	require.NoError(t, err)

	bigger, _ := dimension.NewBoxFromFloat(200, 150, 80)
	require.NoError(t, c.UpdateDetails("B", "Board Co", bigger))

	assert.Equal(t, "B", c.Name())
	assert.Equal(t, "Board Co", c.CompanyName())
	assert.Equal(t, 10, c.AvailableQuantity())
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &InsufficientStockError{Shortages: []Shortage{
		{CartonName: "Kraft A", Requested: 5, Available: 3},
	}}
	assert.Contains(t, err.Error(), "Kraft A: requested 5, available 3, short by 2")
}

var fixedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
