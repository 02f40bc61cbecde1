// Package config resolves the data directory and environment settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "retrodo"

	// EnvPrefix namespaces the environment variables (RETRODO_*).
	EnvPrefix = "RETRODO"
)

// Config holds configuration paths and settings.
type Config struct {
	// DataDir is where the persisted task slot lives.
	DataDir string

	// LogLevel is the logrus level name for diagnostic output.
	LogLevel string

	// APIBase is reserved for a future remote backend. Nothing consumes
	// it today; it is read here so a configured value is not lost.
	APIBase string

	// Debug forces debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// Load builds a Config from the environment. If dataDir is empty, the
// RETRODO_DATA_DIR variable applies, then the XDG default.
func Load(dataDir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")

	dir := dataDir
	if dir == "" {
		dir = v.GetString("data_dir")
	}
	if dir == "" {
		dir = DefaultDataDir()
	}

	return &Config{
		DataDir:  dir,
		LogLevel: v.GetString("log_level"),
		APIBase:  v.GetString("api_base"),
	}, nil
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.DataDir, 0700)
}
