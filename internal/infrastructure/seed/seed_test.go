package seed

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/infrastructure/migration"
	"github.com/cartonworks/stockline/internal/infrastructure/repository"
	"github.com/cartonworks/stockline/internal/shared/config"
	"github.com/cartonworks/stockline/internal/shared/db"
	apperrors "github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

const validSeed = `
users:
  - name: ada lovelace
    email: Ada@Example.com
    role: admin
dielines:
  - name: Tuck end
    created_by: ada@example.com
    dimensions:
      - { length: 150, breadth: 100, height: 50, ups: 2 }
cartons:
  - { name: A, length: 148, breadth: 102, height: 52, total_quantity: 10, created_by: ada@example.com }
  - { name: B, length: 160, breadth: 100, height: 50, total_quantity: 10, available_quantity: 4, created_by: ada@example.com }
`

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(validSeed))
	require.NoError(t, err)
	assert.Len(t, f.Users, 1)
	assert.Len(t, f.Dielines, 1)
	require.Len(t, f.Cartons, 2)
	require.NotNil(t, f.Cartons[1].AvailableQuantity)
	assert.Equal(t, 4, *f.Cartons[1].AvailableQuantity)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown key", "users:\n  - name: a\n    email: a@b.co\n    password: x\n", "password"},
		{"bad email", "users:\n  - name: a\n    email: nope\n", "email"},
		{"no dimensions", "dielines:\n  - name: d\n    created_by: a@b.co\n", "dimensions"},
		{"zero ups", "dielines:\n  - name: d\n    created_by: a@b.co\n    dimensions:\n      - { length: 1, breadth: 1, height: 1, ups: 0 }\n", "ups"},
		{"empty", "", "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			msg := err.Error()
			if appErr := apperrors.GetAppError(err); appErr != nil {
				msg += " " + appErr.Details
			}
			assert.Contains(t, msg, tt.want)
		})
	}
}

func TestLoadFile_ShippedFixtures(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, f.Users)
	assert.NotEmpty(t, f.Cartons)
}

func TestSeeder_Apply(t *testing.T) {
	gdb, err := database.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "seed.db"),
	})
	require.NoError(t, err)
	require.NoError(t, migration.NewGooseStrategy(config.DriverSQLite).Migrate(gdb))

	users := repository.NewUserRepository(gdb)
	cartons := repository.NewCartonRepository(gdb)
	seeder := NewSeeder(users, repository.NewDielineRepository(gdb), cartons, db.NewTransactionManager(gdb), logger.NewNopLogger())
	ctx := context.Background()

	f, err := Load(strings.NewReader(validSeed))
	require.NoError(t, err)

	summary, err := seeder.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Summary{UsersCreated: 1, DielinesCreated: 1, CartonsCreated: 2}, summary)

	list, err := cartons.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 4, list[1].AvailableQuantity())

	t.Run("rerun reuses users", func(t *testing.T) {
		summary, err := seeder.Apply(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.UsersSkipped)
		assert.Equal(t, 0, summary.UsersCreated)
	})

	t.Run("unknown creator rolls back everything", func(t *testing.T) {
		bad := &File{Cartons: []CartonFixture{{Name: "X", Length: 1, Breadth: 1, Height: 1, TotalQuantity: 1, CreatedBy: "ghost@example.com"}}}
		_, err := seeder.Apply(ctx, bad)
		require.ErrorContains(t, err, "unknown user")

		totals, err := cartons.Totals(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), totals.Cartons)
	})
}
