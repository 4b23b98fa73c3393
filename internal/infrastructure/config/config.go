package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/cartonworks/stockline/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Allocation sharedConfig.AllocationConfig `mapstructure:"allocation"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// configPath overrides the default search paths when non-empty.
func Load(env string, configPath ...string) (*Config, error) {
	v := viper.New()

	if len(configPath) > 0 && configPath[0] != "" {
		v.SetConfigFile(configPath[0])
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("STOCKLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env cover every key.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case sharedConfig.DriverMySQL, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must not be negative")
	}
	if cfg.Allocation.ToleranceMM < 0 {
		return fmt.Errorf("allocation.tolerance_mm must not be negative")
	}
	if cfg.Allocation.MaxCommitAttempts < 1 {
		return fmt.Errorf("allocation.max_commit_attempts must be at least 1")
	}
	if cfg.Allocation.LowStockRatio < 0 || cfg.Allocation.LowStockRatio > 1 {
		return fmt.Errorf("allocation.low_stock_ratio must be between 0 and 1")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.timezone", "UTC")
	v.SetDefault("server.write_rate_limit", 60)

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "stockline.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "stockline_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 720)

	// Email defaults
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "stock@stockline.local")
	v.SetDefault("email.from_name", "Stockline")
	v.SetDefault("email.alert_recipients", []string{})

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Allocation defaults
	v.SetDefault("allocation.tolerance_mm", 5)
	v.SetDefault("allocation.max_commit_attempts", 3)
	v.SetDefault("allocation.low_stock_ratio", 0.1)
	v.SetDefault("allocation.enforce_compatibility", true)
	v.SetDefault("allocation.idempotency_ttl_minutes", 1440)
}
