package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty: page views are kept in memory.
	DefaultDatabaseURL = ""

	// DefaultViewTTL is how long an idle page view is kept.
	DefaultViewTTL = 24 * time.Hour

	// DefaultPruneInterval is how often idle page views are removed.
	DefaultPruneInterval = 10 * time.Minute

	// DefaultEnvFile is loaded into the environment before flags are parsed.
	DefaultEnvFile = ".env"
)

// LoadEnvFile reads KEY=VALUE pairs from path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("env file not found, using environment only", "path", path)
			return nil
		}
		return err
	}

	slog.Debug("env file loaded", "path", path)
	return nil
}
