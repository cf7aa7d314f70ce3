// Package config holds the server settings read from server.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/cardforge/internal/i18n"
	"github.com/xtding233/cardforge/internal/tribes"
)

// Log selects the logger flavor and level.
type Log struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// Config is the whole server configuration. Zero fields in the file keep
// their defaults.
type Config struct {
	HTTPAddr      string        `yaml:"http_addr"`
	GRPCAddr      string        `yaml:"grpc_addr"`
	CatalogPath   string        `yaml:"catalog_path"`
	TribesPath    string        `yaml:"tribes_path"`
	Preset        tribes.Preset `yaml:"preset"`
	Language      i18n.Lang     `yaml:"language"`
	WatchInterval time.Duration `yaml:"watch_interval"`
	Log           Log           `yaml:"log"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		HTTPAddr:      ":8080",
		GRPCAddr:      ":9090",
		CatalogPath:   "config/balance.yaml",
		TribesPath:    "data/tribes.yaml",
		Preset:        tribes.Midgard,
		Language:      i18n.EN,
		WatchInterval: 2 * time.Second,
		Log:           Log{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result. A missing
// file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []string
	if c.HTTPAddr == "" {
		errs = append(errs, "http_addr must not be empty")
	}
	if c.GRPCAddr == "" {
		errs = append(errs, "grpc_addr must not be empty")
	}
	if _, ok := i18n.Parse(string(c.Language)); !ok {
		errs = append(errs, fmt.Sprintf("language %q is not supported", c.Language))
	}
	if !slices.Contains(tribes.Presets(), c.Preset) {
		errs = append(errs, fmt.Sprintf("preset %q is unknown", c.Preset))
	}
	if c.WatchInterval <= 0 {
		errs = append(errs, "watch_interval must be > 0")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is unknown", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
