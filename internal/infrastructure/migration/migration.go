package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/shared/logger"
)

// Manager runs the configured migration strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose scripts unless autoMigrate is requested, which is
// meant for local development against throwaway databases.
func NewManager(driver string, autoMigrate bool) *Manager {
	var strategy Strategy = NewGooseStrategy(driver)
	if autoMigrate {
		strategy = NewGormAutoMigrateStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	models := AutoMigrateModels()
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
