package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/reward-oracle/internal/reward"
)

const (
	DefaultLocale   = "primary"
	DefaultLogLevel = "info"
)

type Config struct {
	Locale   string `json:"locale"`
	Workers  int    `json:"workers,omitempty"`
	MaxSteps int64  `json:"max_steps,omitempty"`
	LogLevel string `json:"log_level"`
}

func Default() Config {
	return Config{Locale: DefaultLocale, LogLevel: DefaultLogLevel}
}

// Path is the per-user config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "reward-oracle", "config.json"), nil
}

// Load reads the config at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return Normalize(cfg)
}

// Normalize fills defaults, canonicalises names and rejects values the
// searchers cannot use.
func Normalize(cfg Config) (Config, error) {
	cfg.Locale = strings.TrimSpace(strings.ToLower(cfg.Locale))
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	loc, err := reward.ParseLocale(cfg.Locale)
	if err != nil {
		return Config{}, fmt.Errorf("config locale: %w", err)
	}
	cfg.Locale = loc.String()

	cfg.LogLevel = strings.TrimSpace(strings.ToLower(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config log_level: %w", err)
	}

	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("config workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.MaxSteps < 0 {
		return Config{}, fmt.Errorf("config max_steps must be >= 0, got %d", cfg.MaxSteps)
	}
	return cfg, nil
}

func (c Config) ParsedLocale() reward.Locale {
	loc, err := reward.ParseLocale(c.Locale)
	if err != nil {
		return reward.Primary
	}
	return loc
}

// Save writes cfg to path atomically, readable only by the owner.
func Save(path string, cfg Config) error {
	cfg, err := Normalize(cfg)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, append(data, '\n'), 0o600)
}
