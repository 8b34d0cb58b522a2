package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rubiojr/gasprices/pkg/api"
)

const (
	DefaultAddr     = "127.0.0.1:8080"
	DefaultLang     = "en"
	DefaultLogLevel = "info"
)

var ErrNoPostcode = errors.New("postcode is required")

// Home is the optional reference location used for per-station distances.
// Location is geocoded when set; otherwise Lat and Lng are used as given.
type Home struct {
	Location string  `yaml:"location"`
	Lat      float64 `yaml:"lat"`
	Lng      float64 `yaml:"lng"`
}

// Config is the merged result of the YAML file and command line flags.
type Config struct {
	Postcode        string        `yaml:"postcode"`
	BaseURL         string        `yaml:"base_url"`
	Fuel            string        `yaml:"fuel"`
	Lang            string        `yaml:"lang"`
	LogLevel        string        `yaml:"log_level"`
	Addr            string        `yaml:"addr"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	Home            Home          `yaml:"home"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		BaseURL:  api.DefaultBaseURL,
		Fuel:     string(api.DefaultFuel),
		Lang:     DefaultLang,
		LogLevel: DefaultLogLevel,
		Addr:     DefaultAddr,
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings every command depends on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Postcode) == "" {
		return ErrNoPostcode
	}
	if _, err := api.ParseFuelKey(c.Fuel); err != nil {
		return err
	}
	switch c.Lang {
	case "en", "de":
	default:
		return fmt.Errorf("invalid lang %q (allowed: en, de)", c.Lang)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("invalid refresh interval %s", c.RefreshInterval)
	}
	return nil
}

// FuelKey returns the configured default fuel. Call after Validate.
func (c Config) FuelKey() api.FuelKey {
	key, err := api.ParseFuelKey(c.Fuel)
	if err != nil {
		return api.DefaultFuel
	}
	return key
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", s)
	}
}
