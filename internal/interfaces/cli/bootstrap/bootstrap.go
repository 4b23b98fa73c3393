// Package bootstrap loads configuration and opens shared resources for the
// CLI commands.
package bootstrap

import (
	"fmt"

	"github.com/cartonworks/stockline/internal/infrastructure/config"
	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

// Options are the flags every command shares.
type Options struct {
	Env        string
	ConfigPath string
}

// Env holds what Setup initialized. Close releases the database handle and
// flushes the logger.
type Env struct {
	Config *config.Config
	Log    logger.Interface
}

// Setup loads configuration, the logger, the business timezone and the
// database, in that order.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(opts.Env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{Config: cfg, Log: logger.NewLogger()}, nil
}

func (e *Env) Close() {
	if err := database.Close(); err != nil {
		e.Log.Warnw("failed to close database", "error", err)
	}
	_ = logger.Sync()
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
