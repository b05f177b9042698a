// Package config loads tool configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds tool-wide settings. Command-line flags take precedence; the
// environment supplies defaults so pipeline drivers can configure a whole
// batch of runs at once.
type Config struct {
	Extract ExtractConfig
	Log     LogConfig
}

// ExtractConfig holds extraction defaults.
type ExtractConfig struct {
	NoOOV      bool `env:"DLM_NO_OOV"      env-default:"false"`
	Normalize  bool `env:"DLM_NORMALIZE"   env-default:"false"`
	BufferSize int  `env:"DLM_BUFFER_SIZE" env-default:"65536"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `env:"DLM_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level. Unknown names
// fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
