package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr         string   `yaml:"addr"`
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"server"`
	DataSource struct {
		Provider    string   `yaml:"provider"` // "yahoo" or "mock"
		Suffixes    []string `yaml:"suffixes"`
		HistoryDays int      `yaml:"history_days"`
	} `yaml:"data_source"`
	Analysis struct {
		RiskFreeRate float64 `yaml:"risk_free_rate"`
	} `yaml:"analysis"`
	Watchlist []string `yaml:"watchlist"`
	Schedule  struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERSCOPE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TICKERSCOPE_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analysis.RiskFreeRate = rate
		}
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = nil
		for _, sym := range strings.Split(v, ",") {
			if sym = strings.TrimSpace(sym); sym != "" {
				cfg.Watchlist = append(cfg.Watchlist, sym)
			}
		}
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if len(cfg.DataSource.Suffixes) == 0 {
		cfg.DataSource.Suffixes = []string{".NS", ".BO", ""}
	}
	if cfg.DataSource.HistoryDays == 0 {
		cfg.DataSource.HistoryDays = 365
	}
	if cfg.Schedule.RefreshCron == "" {
		// weekdays after market close
		cfg.Schedule.RefreshCron = "0 30 17 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tickerscope.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or mock, got %q", c.DataSource.Provider)
	}
	if c.DataSource.HistoryDays < 2 {
		return fmt.Errorf("data_source.history_days must be at least 2")
	}
	if c.Analysis.RiskFreeRate < 0 {
		return fmt.Errorf("analysis.risk_free_rate must not be negative")
	}
	return nil
}
