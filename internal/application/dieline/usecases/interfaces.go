package usecases

import (
	"context"

	"github.com/cartonworks/stockline/internal/application/dieline/dto"
)

type CreateDielineExecutor interface {
	Execute(ctx context.Context, cmd CreateDielineCommand) (*dto.DielineDTO, error)
}

type UpdateDielineExecutor interface {
	Execute(ctx context.Context, cmd UpdateDielineCommand) (*dto.DielineDTO, error)
}

type GetDielineExecutor interface {
	Execute(ctx context.Context, query GetDielineQuery) (*dto.DielineDTO, error)
}

type ListDielinesExecutor interface {
	Execute(ctx context.Context, query ListDielinesQuery) (*ListDielinesResult, error)
}

type DeleteDielineExecutor interface {
	Execute(ctx context.Context, cmd DeleteDielineCommand) error
}

// NotesRenderer turns markdown notes into safe HTML.
type NotesRenderer interface {
	Render(notes string) (string, error)
}

// DimensionInput is one dimension set as submitted by a client.
type DimensionInput struct {
	Length  float64
	Breadth float64
	Height  float64
	UPS     int
}
