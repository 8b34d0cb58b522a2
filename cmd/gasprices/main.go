package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gasprices",
		Usage: "Find the cheapest fuel around a postcode",
		Commands: []*cli.Command{
			listCommand(),
			serveCommand(),
			linksCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
