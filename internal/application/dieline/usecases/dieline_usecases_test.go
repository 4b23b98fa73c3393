package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/services/markdown"
)

func storedDieline(t *testing.T, id uint, sid string) *dieline.Dieline {
	t.Helper()
	dim, err := dimension.NewDimensionFromFloat(150, 100, 50, 2)
	require.NoError(t, err)
	now := time.Now().UTC()
	return dieline.ReconstructDieline(id, sid, "Mailer", "**fold** here", []dimension.Dimension{dim}, 1, now, now)
}

func TestCreateDielineUseCase_Execute(t *testing.T) {
	var saved *dieline.Dieline
	repo := &mockDielineRepository{
		CreateFunc: func(ctx context.Context, d *dieline.Dieline) error {
			d.SetID(4)
			saved = d
			return nil
		},
	}
	uc := NewCreateDielineUseCase(repo, &mockUserRepository{}, markdown.NewRenderer(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CreateDielineCommand{
		Name:  "Mailer <script>x</script>",
		Notes: "**glue** flap",
		Dimensions: []DimensionInput{
			{Length: 150, Breadth: 100, Height: 50, UPS: 2},
			{Length: 200, Breadth: 120, Height: 60, UPS: 1},
		},
		CreatedBy: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Mailer", result.Name)
	assert.Contains(t, result.NotesHTML, "<strong>glue</strong>")
	require.Len(t, result.Dimensions, 2)
	assert.Equal(t, 1, result.Dimensions[1].Index)
	assert.Equal(t, float64(200), result.Dimensions[1].Length)
	assert.Equal(t, 2, result.Dimensions[0].UPS)
}

func TestCreateDielineUseCase_Execute_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateDielineCommand
	}{
		{name: "no dimension sets", cmd: CreateDielineCommand{Name: "A"}},
		{name: "zero ups", cmd: CreateDielineCommand{Name: "A", Dimensions: []DimensionInput{{Length: 1, Breadth: 1, Height: 1, UPS: 0}}}},
		{name: "negative height", cmd: CreateDielineCommand{Name: "A", Dimensions: []DimensionInput{{Length: 1, Breadth: 1, Height: -1, UPS: 1}}}},
		{name: "blank name", cmd: CreateDielineCommand{Name: " ", Dimensions: []DimensionInput{{Length: 1, Breadth: 1, Height: 1, UPS: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateDielineUseCase(&mockDielineRepository{}, &mockUserRepository{}, nil, logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestUpdateDielineUseCase_Execute_ReplacesDimensions(t *testing.T) {
	var updated *dieline.Dieline
	repo := &mockDielineRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*dieline.Dieline, error) {
			return storedDieline(t, 2, sid), nil
		},
		UpdateFunc: func(ctx context.Context, d *dieline.Dieline) error {
			updated = d
			return nil
		},
	}
	uc := NewUpdateDielineUseCase(repo, &mockUserRepository{}, nil, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), UpdateDielineCommand{
		SID:        "dl_a",
		Name:       "Mailer v2",
		Dimensions: []DimensionInput{{Length: 151, Breadth: 101, Height: 51, UPS: 4}},
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Dimensions(), 1)
	assert.Equal(t, 4, updated.Dimensions()[0].UPS)
	assert.Equal(t, "Mailer v2", result.Name)
	assert.Empty(t, result.NotesHTML)
}

func TestUpdateDielineUseCase_Execute_NotFound(t *testing.T) {
	uc := NewUpdateDielineUseCase(&mockDielineRepository{}, &mockUserRepository{}, nil, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), UpdateDielineCommand{
		SID: "dl_missing", Name: "A", Dimensions: []DimensionInput{{Length: 1, Breadth: 1, Height: 1, UPS: 1}},
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetDielineUseCase_Execute_RendersNotes(t *testing.T) {
	repo := &mockDielineRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*dieline.Dieline, error) {
			return storedDieline(t, 2, sid), nil
		},
	}
	uc := NewGetDielineUseCase(repo, &mockUserRepository{}, markdown.NewRenderer(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), GetDielineQuery{SID: "dl_a"})
	require.NoError(t, err)
	assert.Equal(t, "dl_a", result.ID)
	assert.Contains(t, result.NotesHTML, "<strong>fold</strong>")
	assert.Equal(t, "150 x 100 x 50 (2 up)", result.Dimensions[0].Label)
}

func TestListDielinesUseCase_Execute(t *testing.T) {
	repo := &mockDielineRepository{
		ListFunc: func(ctx context.Context, filter dieline.ListFilter) ([]*dieline.Dieline, int64, error) {
			assert.Equal(t, "mail", filter.Search)
			return []*dieline.Dieline{storedDieline(t, 1, "dl_a"), storedDieline(t, 2, "dl_b")}, 2, nil
		},
	}
	uc := NewListDielinesUseCase(repo, &mockUserRepository{}, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), ListDielinesQuery{Search: "mail"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalCount)
	assert.Equal(t, 20, result.PageSize)
	require.Len(t, result.Dielines, 2)
	assert.Empty(t, result.Dielines[0].NotesHTML)
	assert.Nil(t, result.Dielines[0].CreatedBy)
}

func TestDeleteDielineUseCase_Execute(t *testing.T) {
	var deleted uint
	repo := &mockDielineRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*dieline.Dieline, error) {
			if sid == "dl_a" {
				return storedDieline(t, 5, sid), nil
			}
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	uc := NewDeleteDielineUseCase(repo, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteDielineCommand{SID: "dl_a"}))
	assert.Equal(t, uint(5), deleted)
	assert.True(t, errors.IsNotFoundError(uc.Execute(context.Background(), DeleteDielineCommand{SID: "dl_x"})))
}
