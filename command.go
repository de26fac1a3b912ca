package main

import (
	"encoding/hex"
	"fmt"

	"github.com/MixinNetwork/ration/board"
	"github.com/MixinNetwork/ration/common"
	"github.com/MixinNetwork/ration/config"
	"github.com/MixinNetwork/ration/logger"
	"github.com/urfave/cli/v2"
)

var custom = config.Default()

func setupCmd(c *cli.Context) error {
	if file := c.String("config"); file != "" {
		conf, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = conf
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	return logger.SetFilter(custom.Log.Filter)
}

func parseCmd(c *cli.Context) error {
	input := c.String("input")
	logger.Verbosef("parse %s decimal=%t", input, c.Bool("decimal"))

	parse := common.ParseRational
	if c.Bool("decimal") {
		parse = common.NewRationalFromDecimal
	}
	r, err := parse(input)
	if err != nil {
		logger.Errorf("parse %s %s", input, err.Error())
		return err
	}
	fmt.Fprintf(c.App.Writer, "rational:\t%s\n", r.String())
	fmt.Fprintf(c.App.Writer, "decimal:\t%s\n", r.Decimal(custom.Rational.Precision))
	return nil
}

func calcCmd(c *cli.Context) error {
	x, err := common.ParseRational(c.String("x"))
	if err != nil {
		return err
	}
	y, err := common.ParseRational(c.String("y"))
	if err != nil {
		return err
	}
	op := c.String("op")
	logger.Verbosef("calc %s %s %s", x, op, y)

	var r common.Rational
	switch op {
	case "+":
		r = x.Add(y)
	case "-":
		r = x.Sub(y)
	case "*":
		r = x.Mul(y)
	case "/":
		r, err = x.Div(y)
		if err != nil {
			logger.Errorf("calc %s / %s %s", x, y, err.Error())
			return err
		}
	default:
		return fmt.Errorf("invalid operator %s", op)
	}
	fmt.Fprintln(c.App.Writer, r.String())
	return nil
}

func compareCmd(c *cli.Context) error {
	x, err := common.ParseRational(c.String("x"))
	if err != nil {
		return err
	}
	y, err := common.ParseRational(c.String("y"))
	if err != nil {
		return err
	}
	logger.Verbosef("compare %s %s", x, y)
	fmt.Fprintln(c.App.Writer, []string{"<", "=", ">"}[x.Cmp(y)+1])
	return nil
}

func containsCmd(c *cli.Context) error {
	var values [3]common.Rational
	for i, name := range []string{"start", "end", "value"} {
		r, err := common.ParseRational(c.String(name))
		if err != nil {
			return err
		}
		values[i] = r
	}
	rr := values[0].RangeTo(values[1])
	logger.Verbosef("contains %s %s", rr, values[2])
	fmt.Fprintln(c.App.Writer, rr.Contains(values[2]))
	return nil
}

func encodeCmd(c *cli.Context) error {
	r, err := common.ParseRational(c.String("input"))
	if err != nil {
		return err
	}
	logger.Verbosef("encode %s compress=%t", r, c.Bool("compress"))

	var payload []byte
	if c.Bool("compress") {
		payload = common.CompressMsgpackMarshalPanic(r)
	} else {
		payload = common.MsgpackMarshalPanic(r)
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(payload))
	return nil
}

func decodeCmd(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("raw"))
	if err != nil {
		return err
	}
	var r common.Rational
	err = common.DecompressMsgpackUnmarshal(raw, &r)
	if err != nil {
		logger.Errorf("decode %s", err.Error())
		return err
	}
	logger.Verbosef("decode %s", r)
	fmt.Fprintln(c.App.Writer, r.String())
	return nil
}

func squareBoard(c *cli.Context) (*board.SquareBoard, error) {
	width := custom.Board.Width
	if c.IsSet("width") {
		width = c.Int("width")
	}
	logger.Debugf("board width %d", width)
	return board.NewSquareBoard(width)
}

func boardCellCmd(c *cli.Context) error {
	b, err := squareBoard(c)
	if err != nil {
		return err
	}
	cell, err := b.GetCell(c.Int("row"), c.Int("column"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, cell.String())
	return nil
}

func boardRowCmd(c *cli.Context) error {
	b, err := squareBoard(c)
	if err != nil {
		return err
	}
	js := board.Range(c.Int("from"), lastIndex(c, b))
	logger.Verbosef("board row %d %d..%d", c.Int("row"), js.First, js.Last)
	cells, err := b.Row(c.Int("row"), js)
	if err != nil {
		return err
	}
	printCells(c, cells)
	return nil
}

func boardColumnCmd(c *cli.Context) error {
	b, err := squareBoard(c)
	if err != nil {
		return err
	}
	is := board.Range(c.Int("from"), lastIndex(c, b))
	logger.Verbosef("board column %d..%d %d", is.First, is.Last, c.Int("column"))
	cells, err := b.Column(is, c.Int("column"))
	if err != nil {
		return err
	}
	printCells(c, cells)
	return nil
}

func boardNeighbourCmd(c *cli.Context) error {
	b, err := squareBoard(c)
	if err != nil {
		return err
	}
	cell, err := b.GetCell(c.Int("row"), c.Int("column"))
	if err != nil {
		return err
	}
	d, err := board.ParseDirection(c.String("direction"))
	if err != nil {
		return err
	}
	n, ok := b.Neighbour(cell, d)
	if !ok {
		fmt.Fprintln(c.App.Writer, "none")
		return nil
	}
	fmt.Fprintln(c.App.Writer, n.String())
	return nil
}

func lastIndex(c *cli.Context, b *board.SquareBoard) int {
	if c.IsSet("to") {
		return c.Int("to")
	}
	return b.Width()
}

func printCells(c *cli.Context, cells []board.Cell) {
	for _, cell := range cells {
		fmt.Fprintln(c.App.Writer, cell.String())
	}
}
