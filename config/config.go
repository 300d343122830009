package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres  PostgresConfig  `yaml:"postgres"`
	NATS      NATSConfig      `yaml:"nats"`
	HTTP      HTTPConfig      `yaml:"http"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Standings StandingsConfig `yaml:"standings"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Addr           string  `yaml:"addr"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// MetricsConfig holds the metrics endpoint configuration.
type MetricsConfig struct {
	Address     string `yaml:"address"`
	Environment string `yaml:"environment"`
}

// StandingsConfig holds settings for the aggregation core: the default
// leaderboard window, the snapshot refresh cadence, and manual per-window
// adjustments (retroactive corrections supplied as data, never hardcoded).
type StandingsConfig struct {
	DefaultWindowDays int                `yaml:"default_window_days"`
	SnapshotInterval  time.Duration      `yaml:"-"`
	Adjustments       []AdjustmentWindow `yaml:"adjustments"`
}

// UnmarshalYAML parses snapshot_interval as a Go duration string ("1h",
// "30m"); yaml.v3 cannot decode time.Duration on its own.
func (sc *StandingsConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		DefaultWindowDays int                `yaml:"default_window_days"`
		SnapshotInterval  string             `yaml:"snapshot_interval"`
		Adjustments       []AdjustmentWindow `yaml:"adjustments"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}

	sc.DefaultWindowDays = aux.DefaultWindowDays
	sc.Adjustments = aux.Adjustments
	if aux.SnapshotInterval != "" {
		d, err := time.ParseDuration(aux.SnapshotInterval)
		if err != nil {
			return fmt.Errorf("invalid snapshot_interval: %w", err)
		}
		sc.SnapshotInterval = d
	}
	return nil
}

// AdjustmentWindow is a manual correction scoped to one date window.
// Offsets are additive rank points keyed by player name; Exclude removes
// the named players from standings output inside the window.
type AdjustmentWindow struct {
	From    time.Time      `yaml:"from"`
	To      time.Time      `yaml:"to"`
	Offsets map[string]int `yaml:"offsets"`
	Exclude []string       `yaml:"exclude"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HTTP.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimitBurst = n
		}
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Metrics.Address = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Metrics.Environment = v
	}
	if v := os.Getenv("STANDINGS_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Standings.DefaultWindowDays = n
		}
	}
	if v := os.Getenv("SNAPSHOT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Standings.SnapshotInterval = d
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	cfg.NATS.URL = os.Getenv("NATS_URL")
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	cfg.HTTP.Addr = os.Getenv("HTTP_ADDR")
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS value: %v", err)
		}
		cfg.HTTP.RateLimitRPS = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST value: %v", err)
		}
		cfg.HTTP.RateLimitBurst = n
	}
	cfg.Metrics.Address = os.Getenv("METRICS_ADDRESS") // optional; empty disables metrics
	cfg.Metrics.Environment = os.Getenv("ENV")

	if v := os.Getenv("STANDINGS_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STANDINGS_WINDOW_DAYS value: %v", err)
		}
		cfg.Standings.DefaultWindowDays = n
	}
	if v := os.Getenv("SNAPSHOT_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SNAPSHOT_INTERVAL value: %v", err)
		}
		cfg.Standings.SnapshotInterval = d
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.RateLimitRPS == 0 {
		cfg.HTTP.RateLimitRPS = 20
	}
	if cfg.HTTP.RateLimitBurst == 0 {
		cfg.HTTP.RateLimitBurst = 40
	}
	if cfg.Standings.DefaultWindowDays == 0 {
		cfg.Standings.DefaultWindowDays = 365
	}
	if cfg.Standings.SnapshotInterval == 0 {
		cfg.Standings.SnapshotInterval = time.Hour
	}
}
