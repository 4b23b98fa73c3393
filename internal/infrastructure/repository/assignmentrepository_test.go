package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/query"
)

func newTestAssignment(t *testing.T, dielineID uint, assignedBy uint, assignedAt time.Time, usage ...assignment.CartonUsage) *assignment.Assignment {
	t.Helper()
	dim, err := dimension.NewDimensionFromFloat(150, 100, 50, 2)
	require.NoError(t, err)
	a, err := assignment.NewAssignment(
		[]uint{dielineID},
		[]assignment.DimensionSet{{DielineID: dielineID, DimensionIndex: 0, Dimension: dim, Sheets: 20}},
		usage,
		assignedBy,
		assignedAt,
	)
	require.NoError(t, err)
	return a
}

func TestAssignmentRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssignmentRepository(gdb)
	cartons := NewCartonRepository(gdb)
	ctx := context.Background()

	a1 := newTestCarton(t, "A", 148, 102, 52, 10)
	a2 := newTestCarton(t, "B", 150, 100, 50, 10)
	require.NoError(t, cartons.Create(ctx, a1))
	require.NoError(t, cartons.Create(ctx, a2))

	// Usage order must survive the round trip even when ids are descending.
	a := newTestAssignment(t, 7, 1, time.Time{},
		assignment.CartonUsage{CartonID: a2.ID(), QuantityUsed: 3},
		assignment.CartonUsage{CartonID: a1.ID(), QuantityUsed: 5},
	)
	require.NoError(t, repo.Create(ctx, a))
	require.NotZero(t, a.ID())

	found, err := repo.GetBySID(ctx, a.SID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 20, found.TotalSheets())
	assert.Equal(t, []uint{7}, found.DielineIDs())
	require.Len(t, found.DimensionSets(), 1)
	assert.Equal(t, 2, found.DimensionSets()[0].Dimension.UPS)
	assert.Equal(t, 40, found.TotalPieces())
	assert.Equal(t, []assignment.CartonUsage{
		{CartonID: a2.ID(), QuantityUsed: 3},
		{CartonID: a1.ID(), QuantityUsed: 5},
	}, found.CartonUsage())
	assert.False(t, found.IsReversed())

	missing, err := repo.GetByID(ctx, 4242)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAssignmentRepository_ListFilters(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssignmentRepository(gdb)
	cartons := NewCartonRepository(gdb)
	ctx := context.Background()

	c1 := newTestCarton(t, "A", 100, 100, 100, 100)
	c2 := newTestCarton(t, "B", 100, 100, 100, 100)
	require.NoError(t, cartons.Create(ctx, c1))
	require.NoError(t, cartons.Create(ctx, c2))

	now := time.Now().UTC()
	old := newTestAssignment(t, 1, 1, now.Add(-30*24*time.Hour), assignment.CartonUsage{CartonID: c1.ID(), QuantityUsed: 1})
	mid := newTestAssignment(t, 1, 2, now.Add(-time.Hour), assignment.CartonUsage{CartonID: c2.ID(), QuantityUsed: 1})
	recent := newTestAssignment(t, 1, 1, now, assignment.CartonUsage{CartonID: c1.ID(), QuantityUsed: 2})
	for _, a := range []*assignment.Assignment{old, mid, recent} {
		require.NoError(t, repo.Create(ctx, a))
	}

	t.Run("newest first", func(t *testing.T) {
		list, total, err := repo.List(ctx, assignment.ListFilter{PageFilter: query.PageFilter{Page: 1, PageSize: 10}})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, list, 3)
		assert.Equal(t, recent.SID(), list[0].SID())
		assert.Equal(t, old.SID(), list[2].SID())
	})

	t.Run("by user", func(t *testing.T) {
		by := uint(2)
		list, total, err := repo.List(ctx, assignment.ListFilter{AssignedBy: &by})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, mid.SID(), list[0].SID())
	})

	t.Run("by carton", func(t *testing.T) {
		id := c1.ID()
		list, total, err := repo.List(ctx, assignment.ListFilter{CartonID: &id})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
	})

	t.Run("count since", func(t *testing.T) {
		since := now.Add(-7 * 24 * time.Hour)
		count, err := repo.Count(ctx, &since)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		all, err := repo.Count(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3), all)
	})
}

func TestAssignmentRepository_CreateReversalOnce(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssignmentRepository(gdb)
	cartons := NewCartonRepository(gdb)
	ctx := context.Background()

	c := newTestCarton(t, "A", 100, 100, 100, 10)
	require.NoError(t, cartons.Create(ctx, c))

	a := newTestAssignment(t, 1, 1, time.Time{}, assignment.CartonUsage{CartonID: c.ID(), QuantityUsed: 4})
	require.NoError(t, repo.Create(ctx, a))

	rev, err := a.Reverse(2, "wrong job")
	require.NoError(t, err)
	require.NoError(t, repo.CreateReversal(ctx, rev))
	assert.NotZero(t, rev.ID())

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	require.True(t, found.IsReversed())
	assert.Equal(t, "wrong job", found.Reversal().Reason())
	assert.Equal(t, uint(2), found.Reversal().ReversedBy())

	// A second writer holding a stale copy hits the unique key.
	stale, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	stale = newTestAssignmentCopy(t, stale)
	again, err := stale.Reverse(3, "double click")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.CreateReversal(ctx, again), assignment.ErrAlreadyReversed)
}

// newTestAssignmentCopy drops the loaded reversal to simulate a reader that
// fetched the assignment before it was reversed.
func newTestAssignmentCopy(t *testing.T, a *assignment.Assignment) *assignment.Assignment {
	t.Helper()
	return assignment.ReconstructAssignment(
		a.ID(), a.SID(), a.DielineIDs(), a.DimensionSets(), a.CartonUsage(),
		a.TotalSheets(), a.AssignedBy(), a.AssignedAt(), a.CreatedAt(), nil,
	)
}
