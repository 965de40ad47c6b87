package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultDataDirName is the directory under the user's home holding the store.
const DefaultDataDirName = "Documents"

// Config holds all application configuration.
type Config struct {
	// Store
	DataDir string `env:"CAIXA_DATA_DIR"`
	DBFile  string `env:"CAIXA_DB_FILE"  envDefault:"fechamentos_db.txt"`

	// Save retries
	SaveMaxRetries    int           `env:"SAVE_MAX_RETRIES"    envDefault:"3"`
	SaveRetryInterval time.Duration `env:"SAVE_RETRY_INTERVAL" envDefault:"50ms"`
	SaveMaxElapsed    time.Duration `env:"SAVE_MAX_ELAPSED"    envDefault:"2s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Metrics (optional - leave empty to disable the textfile export)
	MetricsTextfile string `env:"METRICS_TEXTFILE" envDefault:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveDataDir returns DataDir, or ~/Documents when it is unset.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultDataDirName), nil
}

// StorePath returns the full path of the aggregate closings file.
func (c *Config) StorePath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.DBFile), nil
}
