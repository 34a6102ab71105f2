package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Backend
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	APITimeoutSeconds int    `mapstructure:"API_TIMEOUT_SECONDS"`
	// PerPage is the report-screen page size: large on purpose so reports
	// fetch "everything" in one request instead of truly paginating.
	PerPage int `mapstructure:"PER_PAGE"`

	// Session
	SessionFile string `mapstructure:"SESSION_FILE"`

	Env string `mapstructure:"APP_ENV"` // development | production
}

// Timeout returns the HTTP client timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("PER_PAGE", 1000)
	viper.SetDefault("SESSION_FILE", "")
	viper.SetDefault("APP_ENV", "development")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.SessionFile = filepath.Join(home, ".dressify", "session.json")
	}
	return cfg, nil
}
