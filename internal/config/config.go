// Package config holds client configuration.
package config

import (
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Log levels accepted by Config.LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config represents the client configuration.
type Config struct {
	// ServerURL is the base URL of the StarPrint data service.
	ServerURL string

	// DownloadDir receives exported files.
	DownloadDir string

	// ViewerCommand is an external program handed the preview URL of an
	// exported model. Empty disables launching a viewer.
	ViewerCommand string

	// LogFile is where the client logs; the terminal belongs to the UI.
	LogFile string

	LogLevel string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		ServerURL:   "http://localhost:8000",
		DownloadDir: defaultDownloadDir(),
		LogFile:     defaultLogFile(),
		LogLevel:    LogLevelInfo,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerURL, validation.Required, is.URL),
		validation.Field(&c.DownloadDir, validation.Required),
		validation.Field(&c.LogLevel, validation.In(
			LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError,
		)),
	)
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "exports"
	}
	return filepath.Join(home, "Downloads", "starprint")
}

func defaultLogFile() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "starprint.log"
	}
	return filepath.Join(cache, "starprint", "starprint.log")
}
