package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/ration/config"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ration"
	app.Usage = "Exact rational arithmetic and square board queries."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "parse",
			Usage:  "Parse a rational and print its canonical and decimal forms",
			Action: parseCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Usage:    "the rational `N/D`",
					Required: true,
				},
				&cli.BoolFlag{
					Name:  "decimal",
					Usage: "read the input as a decimal literal",
				},
			},
		},
		{
			Name:   "calc",
			Usage:  "Apply + - * or / to two rationals",
			Action: calcCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "x",
					Usage:    "the left operand",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "y",
					Usage:    "the right operand",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "op",
					Value: "+",
					Usage: "the operator",
				},
			},
		},
		{
			Name:   "compare",
			Usage:  "Compare two rationals",
			Action: compareCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "x",
					Usage:    "the left operand",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "y",
					Usage:    "the right operand",
					Required: true,
				},
			},
		},
		{
			Name:   "contains",
			Usage:  "Check whether a rational lies in the inclusive range start..end",
			Action: containsCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "start",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "end",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
				},
			},
		},
		{
			Name:   "encode",
			Usage:  "Encode a rational as msgpack hex",
			Action: encodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Required: true,
				},
				&cli.BoolFlag{
					Name:  "compress",
					Usage: "compress the payload with zstd",
				},
			},
		},
		{
			Name:   "decode",
			Usage:  "Decode a msgpack hex rational, compressed or not",
			Action: decodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "raw",
					Usage:    "the msgpack `HEX`",
					Required: true,
				},
			},
		},
		{
			Name:  "board",
			Usage: "Query cells of a square board",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"w"},
					Usage:   "the board width, defaults to the configuration",
				},
			},
			Subcommands: []*cli.Command{
				{
					Name:   "cell",
					Usage:  "Look up a cell",
					Action: boardCellCmd,
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "row", Aliases: []string{"i"}, Required: true},
						&cli.IntFlag{Name: "column", Aliases: []string{"j"}, Required: true},
					},
				},
				{
					Name:   "row",
					Usage:  "List the cells of a row between two columns",
					Action: boardRowCmd,
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "row", Aliases: []string{"i"}, Required: true},
						&cli.IntFlag{Name: "from", Value: 1},
						&cli.IntFlag{Name: "to", Usage: "the last column, defaults to the width"},
					},
				},
				{
					Name:   "column",
					Usage:  "List the cells of a column between two rows",
					Action: boardColumnCmd,
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "column", Aliases: []string{"j"}, Required: true},
						&cli.IntFlag{Name: "from", Value: 1},
						&cli.IntFlag{Name: "to", Usage: "the last row, defaults to the width"},
					},
				},
				{
					Name:   "neighbour",
					Usage:  "Find the neighbour of a cell in a direction",
					Action: boardNeighbourCmd,
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "row", Aliases: []string{"i"}, Required: true},
						&cli.IntFlag{Name: "column", Aliases: []string{"j"}, Required: true},
						&cli.StringFlag{Name: "direction", Aliases: []string{"d"}, Usage: "up, down, left or right", Required: true},
					},
				},
			},
		},
	}
	return app
}
