package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/query"
)

func newTestDieline(t *testing.T, name string, dims ...dimension.Dimension) *dieline.Dieline {
	t.Helper()
	if len(dims) == 0 {
		d, err := dimension.NewDimensionFromFloat(150, 100, 50, 2)
		require.NoError(t, err)
		dims = []dimension.Dimension{d}
	}
	dl, err := dieline.NewDieline(name, "", dims, 1)
	require.NoError(t, err)
	return dl
}

func TestDielineRepository_RoundTripsDimensions(t *testing.T) {
	repo := NewDielineRepository(setupTestDB(t))
	ctx := context.Background()

	small, err := dimension.NewDimensionFromFloat(150, 100, 50, 2)
	require.NoError(t, err)
	large, err := dimension.NewDimensionFromFloat(300.5, 200.25, 80, 1)
	require.NoError(t, err)

	dl := newTestDieline(t, "Tuck end", small, large)
	require.NoError(t, repo.Create(ctx, dl))

	found, err := repo.GetBySID(ctx, dl.SID())
	require.NoError(t, err)
	require.NotNil(t, found)

	dims := found.Dimensions()
	require.Len(t, dims, 2)
	assert.True(t, dims[1].Length.Equal(large.Length))
	assert.True(t, dims[1].Breadth.Equal(large.Breadth))
	assert.Equal(t, 1, dims[1].UPS)
	assert.Equal(t, 2, dims[0].UPS)
}

func TestDielineRepository_UpdateReplacesDimensions(t *testing.T) {
	repo := NewDielineRepository(setupTestDB(t))
	ctx := context.Background()

	dl := newTestDieline(t, "Tuck end")
	require.NoError(t, repo.Create(ctx, dl))

	replacement, err := dimension.NewDimensionFromFloat(200, 120, 60, 4)
	require.NoError(t, err)
	require.NoError(t, dl.Update("Tuck end v2", "**glue** flap", []dimension.Dimension{replacement}))
	require.NoError(t, repo.Update(ctx, dl))

	found, err := repo.GetByID(ctx, dl.ID())
	require.NoError(t, err)
	assert.Equal(t, "Tuck end v2", found.Name())
	assert.Equal(t, "**glue** flap", found.Notes())
	require.Len(t, found.Dimensions(), 1)
	assert.Equal(t, 4, found.Dimensions()[0].UPS)
}

func TestDielineRepository_ListCountDelete(t *testing.T) {
	repo := NewDielineRepository(setupTestDB(t))
	ctx := context.Background()

	keep := newTestDieline(t, "Crash lock bottom")
	drop := newTestDieline(t, "Sleeve")
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, drop))

	list, total, err := repo.List(ctx, dieline.ListFilter{BaseFilter: query.NewBaseFilter(query.WithSearch("crash"))})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, keep.SID(), list[0].SID())

	require.NoError(t, repo.Delete(ctx, drop.ID()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := repo.GetBySIDs(ctx, []string{keep.SID(), drop.SID()})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	history, err := repo.GetByIDsUnscoped(ctx, []uint{drop.ID()})
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
