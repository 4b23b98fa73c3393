package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/infrastructure/migration"
	"github.com/cartonworks/stockline/internal/shared/config"
)

// setupTestDB opens a file-backed SQLite database migrated with the same
// scripts production uses, so check constraints are in place.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := database.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "stockline_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, migration.NewGooseStrategy(config.DriverSQLite).Migrate(gdb))
	return gdb
}

func newTestCarton(t *testing.T, name string, l, b, h float64, total int) *carton.Carton {
	t.Helper()
	box, err := dimension.NewBoxFromFloat(l, b, h)
	require.NoError(t, err)
	c, err := carton.NewCarton(name, "Acme Board", box, total, 1)
	require.NoError(t, err)
	return c
}

func newTestStock(t *testing.T, total, available int) carton.Stock {
	t.Helper()
	s, err := carton.RestoreStock(total, available)
	require.NoError(t, err)
	return s
}
