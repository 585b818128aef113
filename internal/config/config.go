package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Database struct {
		Driver      string `yaml:"driver"` // "sqlite" or "postgres"
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"database"`
	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`
	FMP struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"fmp"`
	Pipeline struct {
		Symbol     string `yaml:"symbol"`
		NumRecords int    `yaml:"num_records"`
		RawDir     string `yaml:"raw_dir"`
		StatusFile string `yaml:"status_file"`
	} `yaml:"pipeline"`
	Schedule struct {
		PricesCron     string `yaml:"prices_cron"`
		StatementsCron string `yaml:"statements_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A .env file in the working directory is loaded first so that
// local development keys never have to live in the YAML.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

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
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("FMP_BASE_URL"); v != "" {
		cfg.FMP.BaseURL = v
	}
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		cfg.FMP.APIKey = v
	}
	if v := os.Getenv("PIPELINE_SYMBOL"); v != "" {
		cfg.Pipeline.Symbol = v
	}
	if v := os.Getenv("CRON_PRICES"); v != "" {
		cfg.Schedule.PricesCron = v
	}
	if v := os.Getenv("CRON_STATEMENTS"); v != "" {
		cfg.Schedule.StatementsCron = v
	}

	// Defaults
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/insightpipe.db"
	}
	if cfg.Pipeline.Symbol == "" {
		cfg.Pipeline.Symbol = "AAPL"
	}
	if cfg.Pipeline.NumRecords == 0 {
		cfg.Pipeline.NumRecords = 100
	}
	if cfg.Pipeline.RawDir == "" {
		cfg.Pipeline.RawDir = "raw_data"
	}
	if cfg.Pipeline.StatusFile == "" {
		cfg.Pipeline.StatusFile = "status.txt"
	}
	if cfg.Schedule.PricesCron == "" {
		cfg.Schedule.PricesCron = "0 0 6 * * *"
	}
	if cfg.Schedule.StatementsCron == "" {
		cfg.Schedule.StatementsCron = "0 0 7 * * 1"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("database.sqlite_path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.PostgresDSN == "" {
			return fmt.Errorf("database.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Pipeline.NumRecords <= 0 {
		return fmt.Errorf("pipeline.num_records must be positive")
	}
	return nil
}
