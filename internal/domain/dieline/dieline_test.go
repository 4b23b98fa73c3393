package dieline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/domain/dimension"
)

func dims(t *testing.T, sets ...[4]float64) []dimension.Dimension {
	t.Helper()
	out := make([]dimension.Dimension, 0, len(sets))
	for _, s := range sets {
		d, err := dimension.NewDimensionFromFloat(s[0], s[1], s[2], int(s[3]))
		require.NoError(t, err)
		out = append(out, d)
	}
	return out
}

func TestNewDieline(t *testing.T) {
	d, err := NewDieline("Tuck end 150", "", dims(t, [4]float64{150, 100, 50, 2}), 1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(d.SID(), "dl_"))
	assert.Len(t, d.Dimensions(), 1)

	got, err := d.Dimension(0)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UPS)

	_, err = d.Dimension(1)
	assert.ErrorIs(t, err, ErrDimensionIndexInvalid)
	_, err = d.Dimension(-1)
	assert.ErrorIs(t, err, ErrDimensionIndexInvalid)
}

func TestNewDieline_Invalid(t *testing.T) {
	_, err := NewDieline("x", "", nil, 1)
	assert.ErrorIs(t, err, ErrNoDimensions)

	_, err = NewDieline("", "", dims(t, [4]float64{1, 1, 1, 1}), 1)
	assert.Error(t, err)

	bad := []dimension.Dimension{{UPS: 1}}
	_, err = NewDieline("x", "", bad, 1)
	assert.ErrorIs(t, err, dimension.ErrNonPositiveSide)
}

func TestDieline_UpdateReplacesDimensions(t *testing.T) {
	d, err := NewDieline("A", "", dims(t, [4]float64{150, 100, 50, 2}), 1)
	require.NoError(t, err)

	require.NoError(t, d.Update("A2", "**glue**", dims(t, [4]float64{10, 10, 10, 1}, [4]float64{20, 20, 20, 4})))

	assert.Equal(t, "A2", d.Name())
	assert.Equal(t, "**glue**", d.Notes())
	assert.Len(t, d.Dimensions(), 2)
}

func TestDieline_DimensionsIsCopy(t *testing.T) {
	d, err := NewDieline("A", "", dims(t, [4]float64{150, 100, 50, 2}), 1)
	require.NoError(t, err)

	got := d.Dimensions()
	got[0].UPS = 99

	again, _ := d.Dimension(0)
	assert.Equal(t, 2, again.UPS)
}
