package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level knobs for the simulator binaries. Flags given on
// the command line take precedence.
type Settings struct {
	ConfigDir string `env:"BATTLESIM_CONFIG_DIR" envDefault:"assets"`
	Seed      int64  `env:"BATTLESIM_SEED" envDefault:"12345"`
	Runs      int    `env:"BATTLESIM_RUNS" envDefault:"1"`
	Workers   int    `env:"BATTLESIM_WORKERS" envDefault:"8"`
	MaxTurns  int    `env:"BATTLESIM_MAX_TURNS" envDefault:"200"`
	DBPath    string `env:"BATTLESIM_DB_PATH"`
	LogLevel  string `env:"BATTLESIM_LOG_LEVEL" envDefault:"info"`
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

func (s Settings) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
