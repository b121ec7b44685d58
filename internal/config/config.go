// Package config resolves lvalgo settings from defaults, an optional YAML
// file, LVALGO_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. LVALGO_WORKERS.
const EnvPrefix = "LVALGO"

// Setting keys.
const (
	KeyLogLevel = "log_level"
	KeyColor    = "color"
	KeyCatalog  = "catalog"
	KeyWorkers  = "workers"
	KeyTrace    = "trace"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrBadColor is returned for a color mode other than auto, always or never.
	ErrBadColor = errors.New("config: invalid color mode")

	// ErrBadWorkers is returned when workers is not positive.
	ErrBadWorkers = errors.New("config: workers must be positive")
)

// Config holds the resolved settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error or off.
	LogLevel string `mapstructure:"log_level"`

	// Color selects colored output: auto (terminal only), always or never.
	Color string `mapstructure:"color"`

	// Catalog is a preset file path; empty selects the embedded presets.
	Catalog string `mapstructure:"catalog"`

	// Workers bounds how many catalog cases verify runs at once.
	Workers int `mapstructure:"workers"`

	// Trace prints every probe or bracket op.
	Trace bool `mapstructure:"trace"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Color:    ColorAuto,
		Catalog:  "",
		Workers:  4,
		Trace:    false,
	}
}

// NewViper returns a viper instance with defaults and environment binding
// installed. Flags may be bound to it before Load is called.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyCatalog, d.Catalog)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyTrace, d.Trace)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file at path into v, then decodes and
// validates the merged settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects unknown color modes and non-positive worker counts.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrBadColor, c.Color)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}

	return nil
}
