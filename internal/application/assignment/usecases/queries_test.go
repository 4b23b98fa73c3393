package usecases

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

func TestCompatibleCartons_ToleranceRules(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	a := env.carton("A", 148, 102, 52, 10, 10)
	env.carton("B", 160, 100, 50, 10, 10)
	env.carton("Empty", 150, 100, 50, 10, 0)
	uc := NewCompatibleCartonsUseCase(env.dielines, env.cartons, env.users, env.resolver, 0.1, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CompatibleCartonsQuery{DielineSIDs: []string{d.SID()}})
	require.NoError(t, err)
	assert.Equal(t, float64(5), result.ToleranceMM)
	require.Len(t, result.Cartons, 1)
	assert.Equal(t, a.SID(), result.Cartons[0].ID)

	wider := 10.0
	result, err = uc.Execute(context.Background(), CompatibleCartonsQuery{DielineSIDs: []string{d.SID()}, ToleranceMM: &wider})
	require.NoError(t, err)
	require.Len(t, result.Cartons, 2)
	assert.Equal(t, "A", result.Cartons[0].Name)
	assert.Equal(t, "B", result.Cartons[1].Name)
}

func TestCompatibleCartons_ManyDielines(t *testing.T) {
	env := newTestEnv(t)
	d1 := env.dieline("Mailer", mailerDims)
	d2 := env.dieline("Tray", [4]float64{80, 60, 20, 8})
	env.carton("Small", 81, 59, 21, 10, 10)
	env.carton("A", 148, 102, 52, 10, 10)
	uc := NewCompatibleCartonsUseCase(env.dielines, env.cartons, env.users, env.resolver, 0.1, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CompatibleCartonsQuery{DielineSIDs: []string{d1.SID(), d2.SID(), d1.SID()}})

	require.NoError(t, err)
	require.Len(t, result.Cartons, 2)
	assert.Equal(t, "Small", result.Cartons[0].Name)
	assert.Equal(t, "A", result.Cartons[1].Name)
}

func TestCompatibleCartons_Errors(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	uc := NewCompatibleCartonsUseCase(env.dielines, env.cartons, env.users, env.resolver, 0.1, logger.NewNopLogger())
	ctx := context.Background()

	_, err := uc.Execute(ctx, CompatibleCartonsQuery{})
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidSelection))

	_, err = uc.Execute(ctx, CompatibleCartonsQuery{DielineSIDs: []string{d.SID(), "dl_gone"}})
	assert.True(t, errors.IsNotFoundError(err))

	negative := -1.0
	_, err = uc.Execute(ctx, CompatibleCartonsQuery{DielineSIDs: []string{d.SID()}, ToleranceMM: &negative})
	assert.True(t, errors.IsValidationError(err))

	for _, tol := range []float64{math.NaN(), math.Inf(1)} {
		tol := tol
		assert.NotPanics(t, func() {
			_, err = uc.Execute(ctx, CompatibleCartonsQuery{DielineSIDs: []string{d.SID()}, ToleranceMM: &tol})
		})
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestListAssignments_FiltersAndOrder(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	a := env.carton("A", 148, 102, 52, 100, 100)
	b := env.carton("B", 149, 101, 51, 100, 100)
	create := env.createUseCase(nil, nil, nil, defaultOptions())
	ctx := context.Background()

	first, err := create.Execute(ctx, singleCartonCommand(env, d.SID(), a.SID(), 1, 1))
	require.NoError(t, err)
	second, err := create.Execute(ctx, singleCartonCommand(env, d.SID(), b.SID(), 2, 2))
	require.NoError(t, err)

	list := NewListAssignmentsUseCase(env.assignments, env.cartons, env.assembler, logger.NewNopLogger())

	all, err := list.Execute(ctx, ListAssignmentsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalCount)
	require.Len(t, all.Assignments, 2)
	assert.Equal(t, second.Assignment.ID, all.Assignments[0].ID)
	assert.Equal(t, first.Assignment.ID, all.Assignments[1].ID)

	history, err := list.Execute(ctx, ListAssignmentsQuery{CartonSID: a.SID()})
	require.NoError(t, err)
	require.Len(t, history.Assignments, 1)
	assert.Equal(t, first.Assignment.ID, history.Assignments[0].ID)

	someoneElse := env.operator.ID() + 100
	mine, err := list.Execute(ctx, ListAssignmentsQuery{AssignedBy: &someoneElse})
	require.NoError(t, err)
	assert.Empty(t, mine.Assignments)

	_, err = list.Execute(ctx, ListAssignmentsQuery{CartonSID: "ctn_gone"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListAssignments_ResolvesDeletedCartons(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	a := env.carton("A", 148, 102, 52, 10, 10)
	create := env.createUseCase(nil, nil, nil, defaultOptions())
	ctx := context.Background()

	_, err := create.Execute(ctx, singleCartonCommand(env, d.SID(), a.SID(), 1, 1))
	require.NoError(t, err)
	require.NoError(t, env.cartons.Delete(ctx, a.ID()))
	require.NoError(t, env.dielines.Delete(ctx, d.ID()))

	list := NewListAssignmentsUseCase(env.assignments, env.cartons, env.assembler, logger.NewNopLogger())
	result, err := list.Execute(ctx, ListAssignmentsQuery{})
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "A", result.Assignments[0].CartonUsage[0].CartonName)
	assert.Equal(t, "Mailer", result.Assignments[0].Dielines[0].Name)
}

func TestReverseAssignment_RestoresStockOnce(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	a := env.carton("A", 148, 102, 52, 10, 10)
	b := env.carton("B", 149, 101, 51, 10, 10)
	create := env.createUseCase(nil, nil, nil, defaultOptions())
	ctx := context.Background()

	cmd := singleCartonCommand(env, d.SID(), a.SID(), 1, 4)
	cmd.CartonUsage = append(cmd.CartonUsage, CartonUsageInput{CartonSID: b.SID(), QuantityUsed: 3})
	created, err := create.Execute(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 6, env.available(a))

	reverse := NewReverseAssignmentUseCase(env.assignments, env.cartons, env.ledger, env.txMgr, env.assembler, logger.NewNopLogger())
	result, err := reverse.Execute(ctx, ReverseAssignmentCommand{SID: created.Assignment.ID, ReversedBy: env.operator.ID(), Reason: " wrong job "})

	require.NoError(t, err)
	require.NotNil(t, result.Reversal)
	assert.Equal(t, "wrong job", result.Reversal.Reason)
	assert.Equal(t, "Priya Nair", result.Reversal.ReversedBy.Name)
	assert.Equal(t, 10, env.available(a))
	assert.Equal(t, 10, env.available(b))

	_, err = reverse.Execute(ctx, ReverseAssignmentCommand{SID: created.Assignment.ID, ReversedBy: env.operator.ID()})
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 10, env.available(a))

	_, err = reverse.Execute(ctx, ReverseAssignmentCommand{SID: "asg_missing", ReversedBy: env.operator.ID()})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestReverseAssignment_LosingConcurrentReversalConflicts(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	a := env.carton("A", 148, 102, 52, 10, 10)
	create := env.createUseCase(nil, nil, nil, defaultOptions())
	ctx := context.Background()

	created, err := create.Execute(ctx, singleCartonCommand(env, d.SID(), a.SID(), 1, 4))
	require.NoError(t, err)

	first := NewReverseAssignmentUseCase(env.assignments, env.cartons, env.ledger, env.txMgr, env.assembler, logger.NewNopLogger())
	_, err = first.Execute(ctx, ReverseAssignmentCommand{SID: created.Assignment.ID, ReversedBy: env.operator.ID()})
	require.NoError(t, err)

	late := NewReverseAssignmentUseCase(&staleAssignments{env.assignments}, env.cartons, env.ledger, env.txMgr, env.assembler, logger.NewNopLogger())
	_, err = late.Execute(ctx, ReverseAssignmentCommand{SID: created.Assignment.ID, ReversedBy: env.operator.ID()})

	assert.True(t, errors.IsConflictError(err), "got %v", err)
	assert.Equal(t, 10, env.available(a))
}

func TestReverseAssignment_SkipsDeletedCartons(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	a := env.carton("A", 148, 102, 52, 10, 10)
	b := env.carton("B", 149, 101, 51, 10, 10)
	create := env.createUseCase(nil, nil, nil, defaultOptions())
	ctx := context.Background()

	cmd := singleCartonCommand(env, d.SID(), a.SID(), 1, 4)
	cmd.CartonUsage = append(cmd.CartonUsage, CartonUsageInput{CartonSID: b.SID(), QuantityUsed: 3})
	created, err := create.Execute(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, env.cartons.Delete(ctx, b.ID()))

	reverse := NewReverseAssignmentUseCase(env.assignments, env.cartons, env.ledger, env.txMgr, env.assembler, logger.NewNopLogger())
	_, err = reverse.Execute(ctx, ReverseAssignmentCommand{SID: created.Assignment.ID, ReversedBy: env.operator.ID()})

	require.NoError(t, err)
	assert.Equal(t, 10, env.available(a))
}

func TestExportAssignments_WritesBothSheets(t *testing.T) {
	env := newTestEnv(t)
	d := env.dieline("Mailer", mailerDims)
	a := env.carton("A", 148, 102, 52, 10, 10)
	create := env.createUseCase(nil, nil, nil, defaultOptions())
	ctx := context.Background()

	created, err := create.Execute(ctx, singleCartonCommand(env, d.SID(), a.SID(), 3, 2))
	require.NoError(t, err)

	list := NewListAssignmentsUseCase(env.assignments, env.cartons, env.assembler, logger.NewNopLogger())
	export := NewExportAssignmentsUseCase(list, logger.NewNopLogger())

	var buf bytes.Buffer
	require.NoError(t, export.Execute(ctx, &buf, ListAssignmentsQuery{}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Assignments")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, created.Assignment.ID, rows[1][0])
	assert.Equal(t, "Priya Nair", rows[1][2])
	assert.Equal(t, "Mailer", rows[1][3])
	assert.Equal(t, "No", rows[1][7])

	usage, err := f.GetRows("Carton Usage")
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, "A", usage[1][1])
	assert.Equal(t, "2", usage[1][4])
}
