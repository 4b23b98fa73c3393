package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
	// WriteRateLimit caps assignment and import requests per operator per
	// minute when redis is enabled. Zero disables the limiter.
	WriteRateLimit int      `mapstructure:"write_rate_limit"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == DriverSQLite {
		return fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on", d.Path)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type EmailConfig struct {
	Enabled         bool     `mapstructure:"enabled"`
	SMTPHost        string   `mapstructure:"smtp_host"`
	SMTPPort        int      `mapstructure:"smtp_port"`
	SMTPUser        string   `mapstructure:"smtp_user"`
	SMTPPassword    string   `mapstructure:"smtp_password"`
	FromAddress     string   `mapstructure:"from_address"`
	FromName        string   `mapstructure:"from_name"`
	AlertRecipients []string `mapstructure:"alert_recipients"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AllocationConfig tunes the compatibility matcher and the allocation engine.
type AllocationConfig struct {
	ToleranceMM           float64 `mapstructure:"tolerance_mm"`
	MaxCommitAttempts     int     `mapstructure:"max_commit_attempts"`
	LowStockRatio         float64 `mapstructure:"low_stock_ratio"`
	EnforceCompatibility  bool    `mapstructure:"enforce_compatibility"`
	IdempotencyTTLMinutes int     `mapstructure:"idempotency_ttl_minutes"`
}

func (a *AllocationConfig) IdempotencyTTL() time.Duration {
	return time.Duration(a.IdempotencyTTLMinutes) * time.Minute
}
