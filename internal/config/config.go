package config

import (
	"fmt"
	"strings"
	"time"
	// athletes' timezones must resolve in minimal containers
	_ "time/tzdata"

	"github.com/2beens/athletemonitor/internal/athlete/alerts"
	"github.com/2beens/athletemonitor/internal/athlete/cycle"
	"github.com/2beens/athletemonitor/internal/athlete/readiness"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// set by Load from the selected section
	Environment string `toml:"-"`

	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	MetricsPort    int      `toml:"metrics_port"`
	AllowedOrigins []string `toml:"allowed_origins"`

	// day boundaries of the athletes (e.g. Europe/Paris)
	Timezone string `toml:"timezone"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// caching
	ResultCacheTTLSeconds  int `toml:"result_cache_ttl_seconds"`
	SubjectCacheSizeMB     int `toml:"subject_cache_size_mb"`
	SubjectCacheTTLSeconds int `toml:"subject_cache_ttl_seconds"`

	RecomputeRatePerMin int `toml:"recompute_rate_per_min"`
	BackfillWorkers     int `toml:"backfill_workers"`

	// engine thresholds
	Readiness readiness.Config `toml:"readiness"`
	Cycle     cycle.Config     `toml:"cycle"`
	Alerts    alerts.Config    `toml:"alerts"`
}

// Default returns the config every TOML section is decoded over.
func Default() *Config {
	return &Config{
		Host:                   "localhost",
		Port:                   9000,
		MetricsPort:            2112,
		Timezone:               "UTC",
		LogLevel:               "info",
		PostgresHost:           "localhost",
		PostgresPort:           "5432",
		PostgresDBName:         "athlete_monitor",
		RedisHost:              "localhost",
		RedisPort:              "6379",
		ResultCacheTTLSeconds:  300,
		SubjectCacheSizeMB:     8,
		SubjectCacheTTLSeconds: 600,
		RecomputeRatePerMin:    30,
		BackfillWorkers:        8,
		Readiness:              readiness.DefaultConfig(),
		Cycle:                  cycle.DefaultConfig(),
		Alerts:                 alerts.DefaultConfig(),
	}
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) ResultCacheTTL() time.Duration {
	return time.Duration(c.ResultCacheTTLSeconds) * time.Second
}

func (c *Config) SubjectCacheTTL() time.Duration {
	return time.Duration(c.SubjectCacheTTLSeconds) * time.Second
}

type Toml struct {
	Development *Config
	Production  *Config
}

func newToml() *Toml {
	return &Toml{
		Development: Default(),
		Production:  Default(),
	}
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		cfg.Environment = "development"
	case "prod", "production":
		cfg = t.Production
		cfg.Environment = "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file and returns the section of the given env.
func Load(env, path string) (*Config, error) {
	t := newToml()
	if _, err := toml.DecodeFile(path, t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

// Parse is Load for in-memory TOML content.
func Parse(env, content string) (*Config, error) {
	t := newToml()
	if _, err := toml.Decode(content, t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return t.Get(env)
}
