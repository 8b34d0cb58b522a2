package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/gasprices/internal/board"
	"github.com/rubiojr/gasprices/internal/config"
	"github.com/rubiojr/gasprices/internal/geo"
	"github.com/rubiojr/gasprices/internal/logging"
	"github.com/rubiojr/gasprices/pkg/api"
)

// commonFlags are shared by every command. Each flag overrides the value
// from the config file when set.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
			EnvVars: []string{"GASPRICES_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "postcode",
			Aliases: []string{"p"},
			Usage:   "Postcode to search stations around",
			EnvVars: []string{"GASPRICES_POSTCODE"},
		},
		&cli.StringFlag{
			Name:    "fuel",
			Aliases: []string{"f"},
			Usage:   "Fuel to sort by (diesel, e5, e10)",
			EnvVars: []string{"GASPRICES_FUEL"},
		},
		&cli.StringFlag{
			Name:    "lang",
			Usage:   "Language (en, de)",
			EnvVars: []string{"GASPRICES_LANG"},
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Price service base URL",
			EnvVars: []string{"GASPRICES_BASE_URL"},
		},
		&cli.StringFlag{
			Name:    "home",
			Usage:   "Home location to measure distances from, e.g. \"Alexanderplatz, Berlin\"",
			EnvVars: []string{"GASPRICES_HOME"},
		},
		&cli.Float64Flag{
			Name:    "home-lat",
			Usage:   "Latitude of the home location",
			EnvVars: []string{"GASPRICES_HOME_LAT"},
		},
		&cli.Float64Flag{
			Name:    "home-lng",
			Usage:   "Longitude of the home location",
			EnvVars: []string{"GASPRICES_HOME_LNG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"GASPRICES_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format (text, json)",
			Value:   "text",
			EnvVars: []string{"GASPRICES_LOG_FORMAT"},
		},
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("postcode") {
		cfg.Postcode = c.String("postcode")
	}
	if c.IsSet("fuel") {
		cfg.Fuel = c.String("fuel")
	}
	if c.IsSet("lang") {
		cfg.Lang = c.String("lang")
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("home") {
		cfg.Home.Location = c.String("home")
	}
	if c.IsSet("home-lat") {
		cfg.Home.Lat = c.Float64("home-lat")
	}
	if c.IsSet("home-lng") {
		cfg.Home.Lng = c.Float64("home-lng")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.IsSet("refresh-interval") {
		cfg.RefreshInterval = c.Duration("refresh-interval")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(c *cli.Context, cfg config.Config) *slog.Logger {
	// Validate already checked the level.
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	return logging.New(os.Stderr, level, c.String("log-format"))
}

// resolveHome returns the home point, geocoding the configured location
// once. ok is false when no home is configured.
func resolveHome(cfg config.Config, logger *slog.Logger) (geo.Point, bool, error) {
	if cfg.Home.Location != "" {
		place, err := geo.Geocode(cfg.Home.Location)
		if err != nil {
			return geo.Point{}, false, err
		}
		logger.Info("Home location found", "name", place.DisplayName, "lat", place.Lat, "lng", place.Lng)
		return place.Point, true, nil
	}

	p := geo.Point{Lat: cfg.Home.Lat, Lng: cfg.Home.Lng}
	if p.IsZero() {
		return geo.Point{}, false, nil
	}
	return p, true, nil
}

func newBoard(cfg config.Config, logger *slog.Logger) (*board.Board, error) {
	fuelAPI := api.NewFuelPriceAPI(api.WithBaseURL(cfg.BaseURL))

	var opts []board.Option
	home, ok, err := resolveHome(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error resolving home location: %w", err)
	}
	if ok {
		opts = append(opts, board.WithHome(home))
	}

	return board.New(fuelAPI, cfg.Postcode, logger, opts...), nil
}
