package usecases

import (
	"context"
	"io"

	"github.com/cartonworks/stockline/internal/application/assignment/dto"
	"github.com/cartonworks/stockline/internal/domain/carton"
)

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdempotencyStore remembers which assignment a client key produced.
type IdempotencyStore interface {
	Recall(ctx context.Context, userID uint, key string) (string, bool, error)
	// Claim marks key as in flight. The returned func releases the claim.
	Claim(ctx context.Context, userID uint, key string) (func(context.Context), error)
	Remember(ctx context.Context, userID uint, key, sid string) error
}

type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, cartons []*carton.Carton) error
}

type CreateAssignmentExecutor interface {
	Execute(ctx context.Context, cmd CreateAssignmentCommand) (*CreateAssignmentResult, error)
}

type CompatibleCartonsExecutor interface {
	Execute(ctx context.Context, query CompatibleCartonsQuery) (*CompatibleCartonsResult, error)
}

type ListAssignmentsExecutor interface {
	Execute(ctx context.Context, query ListAssignmentsQuery) (*ListAssignmentsResult, error)
}

type GetAssignmentExecutor interface {
	Execute(ctx context.Context, query GetAssignmentQuery) (*dto.AssignmentDTO, error)
}

type ReverseAssignmentExecutor interface {
	Execute(ctx context.Context, cmd ReverseAssignmentCommand) (*dto.AssignmentDTO, error)
}

type ExportAssignmentsExecutor interface {
	Execute(ctx context.Context, w io.Writer, query ListAssignmentsQuery) error
}
