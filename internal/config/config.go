// Package config loads the command line tool's settings from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Prefix is the environment variable prefix, e.g. WORKSTUDY_API_URL.
const Prefix = "WORKSTUDY"

// Config holds the CLI settings.
type Config struct {
	// APIURL is the backend base URL every endpoint is appended to.
	APIURL string `envconfig:"API_URL" default:"http://localhost:8080/api"`

	// StoragePath is the session file. Empty means DefaultStoragePath.
	StoragePath string `envconfig:"STORAGE_PATH" default:""`

	// HTTPTimeout bounds each request; 0 disables the bound.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads an optional .env file from the working directory, then the
// WORKSTUDY_ environment. Variables already set in the environment win over
// the file.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is ignored.
func LoadFrom(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_url", cfg.APIURL).
		Str("storage_path", cfg.StoragePath).
		Dur("http_timeout", cfg.HTTPTimeout).
		Str("log_level", cfg.LogLevel).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// ResolveDefaults fills derived values and validates the rest.
func (c *Config) ResolveDefaults() error {
	if c.APIURL == "" {
		return fmt.Errorf("%s_API_URL must not be empty", Prefix)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s_HTTP_TIMEOUT must not be negative", Prefix)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.StoragePath == "" {
		p, err := DefaultStoragePath()
		if err != nil {
			return err
		}
		c.StoragePath = p
	}
	return nil
}

// DefaultStoragePath is workstudy/storage.json under the user config
// directory ($XDG_CONFIG_HOME on Linux).
func DefaultStoragePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "workstudy", "storage.json"), nil
}
