package usecases

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/compatibility"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/infrastructure/migration"
	"github.com/cartonworks/stockline/internal/infrastructure/repository"
	"github.com/cartonworks/stockline/internal/shared/config"
	"github.com/cartonworks/stockline/internal/shared/db"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type testEnv struct {
	t           *testing.T
	db          *gorm.DB
	assignments assignment.Repository
	dielines    dieline.Repository
	cartons     carton.Repository
	users       user.Repository
	ledger      carton.StockLedger
	txMgr       *db.TransactionManager
	resolver    *compatibility.Resolver
	assembler   *Assembler
	operator    *user.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := database.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "allocation_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, migration.NewGooseStrategy(config.DriverSQLite).Migrate(gdb))

	env := &testEnv{
		t:           t,
		db:          gdb,
		assignments: repository.NewAssignmentRepository(gdb),
		dielines:    repository.NewDielineRepository(gdb),
		cartons:     repository.NewCartonRepository(gdb),
		users:       repository.NewUserRepository(gdb),
		ledger:      repository.NewStockLedger(gdb),
		txMgr:       db.NewTransactionManager(gdb),
		resolver:    compatibility.NewResolver(dimension.DefaultTolerance()),
	}
	env.assembler = NewAssembler(env.dielines, env.cartons, env.users)

	op, err := user.NewUser("Priya Nair", "priya@example.com", user.RoleEmployee)
	require.NoError(t, err)
	require.NoError(t, env.users.Create(context.Background(), op))
	env.operator = op
	return env
}

func (e *testEnv) dieline(name string, dims ...[4]float64) *dieline.Dieline {
	e.t.Helper()
	list := make([]dimension.Dimension, 0, len(dims))
	for _, d := range dims {
		dim, err := dimension.NewDimensionFromFloat(d[0], d[1], d[2], int(d[3]))
		require.NoError(e.t, err)
		list = append(list, dim)
	}
	d, err := dieline.NewDieline(name, "", list, e.operator.ID())
	require.NoError(e.t, err)
	require.NoError(e.t, e.dielines.Create(context.Background(), d))
	return d
}

func (e *testEnv) carton(name string, l, b, h float64, total, available int) *carton.Carton {
	e.t.Helper()
	box, err := dimension.NewBoxFromFloat(l, b, h)
	require.NoError(e.t, err)
	stock, err := carton.RestoreStock(total, available)
	require.NoError(e.t, err)
	c, err := carton.NewCartonWithStock(name, "Acme Board", box, stock, e.operator.ID())
	require.NoError(e.t, err)
	require.NoError(e.t, e.cartons.Create(context.Background(), c))
	return c
}

func (e *testEnv) available(c *carton.Carton) int {
	e.t.Helper()
	fresh, err := e.cartons.GetByID(context.Background(), c.ID())
	require.NoError(e.t, err)
	require.NotNil(e.t, fresh)
	return fresh.AvailableQuantity()
}

func (e *testEnv) assignmentCount() int64 {
	e.t.Helper()
	n, err := e.assignments.Count(context.Background(), nil)
	require.NoError(e.t, err)
	return n
}

func (e *testEnv) createUseCase(ledger carton.StockLedger, idem IdempotencyStore, notifier LowStockNotifier, opts AllocationOptions) *CreateAssignmentUseCase {
	if ledger == nil {
		ledger = e.ledger
	}
	return NewCreateAssignmentUseCase(
		e.assignments, e.dielines, e.cartons, ledger, e.txMgr,
		e.resolver, e.assembler, idem, notifier, opts, logger.NewNopLogger(),
	)
}

func defaultOptions() AllocationOptions {
	return AllocationOptions{MaxCommitAttempts: 3, LowStockRatio: 0.1, EnforceCompatibility: true}
}

// flakyLedger reports a conflict for the first failures decrements.
type flakyLedger struct {
	carton.StockLedger
	mu       sync.Mutex
	failures int
	calls    int
}

func (l *flakyLedger) Decrement(ctx context.Context, cartonID uint, n int) error {
	l.mu.Lock()
	l.calls++
	fail := l.calls <= l.failures
	l.mu.Unlock()
	if fail {
		return carton.ErrStockConflict
	}
	return l.StockLedger.Decrement(ctx, cartonID, n)
}

// staleAssignments hides any recorded reversal, as a reader that loaded the
// row before a concurrent reversal committed would see it.
type staleAssignments struct {
	assignment.Repository
}

func (r *staleAssignments) GetBySID(ctx context.Context, sid string) (*assignment.Assignment, error) {
	a, err := r.Repository.GetBySID(ctx, sid)
	if err != nil || a == nil {
		return a, err
	}
	return assignment.ReconstructAssignment(a.ID(), a.SID(), a.DielineIDs(), a.DimensionSets(), a.CartonUsage(),
		a.TotalSheets(), a.AssignedBy(), a.AssignedAt(), a.CreatedAt(), nil), nil
}

// disconnectingStore cancels the request context just before the result is
// stored, as a client hanging up right after commit would.
type disconnectingStore struct {
	IdempotencyStore
	cancel context.CancelFunc
}

func (s *disconnectingStore) Remember(ctx context.Context, userID uint, key, sid string) error {
	s.cancel()
	return s.IdempotencyStore.Remember(ctx, userID, key, sid)
}

type captureNotifier struct {
	sent chan []*carton.Carton
}

func (n *captureNotifier) NotifyLowStock(ctx context.Context, cartons []*carton.Carton) error {
	n.sent <- cartons
	return nil
}
