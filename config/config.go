package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig        `mapstructure:"server"`
	Database    DatabaseConfig      `mapstructure:"database"`
	Redis       RedisConfig         `mapstructure:"redis"`
	Erp         VendorConfig        `mapstructure:"erp"`
	Marketplace VendorConfig        `mapstructure:"marketplace"`
	Session     SessionConfig       `mapstructure:"session"`
	Retry       RetryConfig         `mapstructure:"retry"`
	Sweep       SweepConfig         `mapstructure:"sweep"`
	Tenants     []TenantCredsConfig `mapstructure:"tenants"`
	Log         LogConfig           `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LockWait        time.Duration `mapstructure:"lock_wait"` // pessimistic claim bound
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// VendorConfig configures one outbound vendor API client.
type VendorConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	CallTimeout time.Duration `mapstructure:"call_timeout"`
}

// SessionConfig configures the vendor session token cache.
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RetryConfig configures the per-kind retry policies. Postings and sync
// jobs use the flat cap, pushes and labels use the lookup table.
type RetryConfig struct {
	FixedMaxAttempts int             `mapstructure:"fixed_max_attempts"`
	FixedDelay       time.Duration   `mapstructure:"fixed_delay"`
	PushBackoff      []time.Duration `mapstructure:"push_backoff"`
}

// SweepConfig configures the background retry sweepers.
type SweepConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

// TenantCredsConfig holds one tenant's vendor credentials.
type TenantCredsConfig struct {
	ID      string `mapstructure:"id"`
	AuthKey string `mapstructure:"auth_key"`
	Scope   string `mapstructure:"scope"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SSYNC.
// Nested keys use underscore: SSYNC_DATABASE_HOST, SSYNC_SWEEP_INTERVAL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "sellsync")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.lock_wait", "3s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("erp.base_url", "http://localhost:9081")
	v.SetDefault("erp.call_timeout", "30s")
	v.SetDefault("marketplace.base_url", "http://localhost:9082")
	v.SetDefault("marketplace.call_timeout", "30s")
	v.SetDefault("session.ttl", "50m")
	v.SetDefault("retry.fixed_max_attempts", 5)
	v.SetDefault("retry.fixed_delay", "10m")
	v.SetDefault("retry.push_backoff", []string{"1m", "5m", "15m", "60m", "180m"})
	v.SetDefault("sweep.interval", "1m")
	v.SetDefault("sweep.batch_size", 50)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SSYNC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
