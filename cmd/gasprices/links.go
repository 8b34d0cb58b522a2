package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/gasprices/internal/view"
)

func linksCommand() *cli.Command {
	return &cli.Command{
		Name:   "links",
		Usage:  "Print a Google Maps link for every nearby station",
		Flags:  commonFlags(),
		Action: linksAction,
	}
}

func linksAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c, cfg)

	b, err := newBoard(cfg, logger)
	if err != nil {
		return err
	}
	if err := b.Refresh(c.Context); err != nil {
		return err
	}

	for _, row := range b.Snapshot(cfg.FuelKey()).Rows {
		fmt.Printf("%s\t%s\n", row.Station.Name, view.GoogleMapsLink(row.Station))
	}
	return nil
}
