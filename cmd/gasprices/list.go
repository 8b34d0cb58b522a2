package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/gasprices/internal/translations"
	"github.com/rubiojr/gasprices/internal/view"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List nearby stations sorted by the price of a fuel",
		Flags:  commonFlags(),
		Action: listAction,
	}
}

func listAction(c *cli.Context) error {
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

	page := view.NewPage(b.Snapshot(cfg.FuelKey()), translations.GetTranslations(cfg.Lang))
	return view.WriteText(os.Stdout, page)
}
