package board

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds     = errors.New("cell out of bounds")
	ErrInvalidArgument = errors.New("invalid argument")
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func (d Direction) Reversed() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(d)
}

func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: direction %q", ErrInvalidArgument, s)
}

// Cell is a 1-based (row, column) position.
type Cell struct {
	I int
	J int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

// Progression is an inclusive run of indices from First to Last, descending
// when First > Last.
type Progression struct {
	First int
	Last  int
}

// Range is first..last, descending when first > last.
func Range(first, last int) Progression {
	return Progression{First: first, Last: last}
}

// DownTo is first downTo last. It builds the same progression as Range.
func DownTo(first, last int) Progression {
	return Progression{First: first, Last: last}
}

func (p Progression) Descending() bool {
	return p.First > p.Last
}

func (p Progression) Reversed() Progression {
	return Progression{First: p.Last, Last: p.First}
}

type SquareBoard struct {
	width int
	cells [][]Cell
}

func NewSquareBoard(width int) (*SquareBoard, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: board width %d", ErrInvalidArgument, width)
	}
	cells := make([][]Cell, width)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = Cell{I: i + 1, J: j + 1}
		}
	}
	return &SquareBoard{width: width, cells: cells}, nil
}

func (b *SquareBoard) Width() int {
	return b.width
}

// LookupCell reports false instead of failing when (i, j) is off the board.
func (b *SquareBoard) LookupCell(i, j int) (Cell, bool) {
	if i < 1 || i > b.width || j < 1 || j > b.width {
		return Cell{}, false
	}
	return b.cells[i-1][j-1], true
}

func (b *SquareBoard) GetCell(i, j int) (Cell, error) {
	c, ok := b.LookupCell(i, j)
	if !ok {
		return Cell{}, fmt.Errorf("%w: (%d, %d) on width %d", ErrOutOfBounds, i, j, b.width)
	}
	return c, nil
}

// AllCells returns every cell in row-major order.
func (b *SquareBoard) AllCells() []Cell {
	all := make([]Cell, 0, b.width*b.width)
	for _, row := range b.cells {
		all = append(all, row...)
	}
	return all
}

// Row returns the cells of row i along js. The far end of js is clamped to
// the board width, the near end is not.
func (b *SquareBoard) Row(i int, js Progression) ([]Cell, error) {
	if i < 1 || i > b.width {
		return nil, fmt.Errorf("%w: row %d on width %d", ErrOutOfBounds, i, b.width)
	}
	from, to, err := b.window(js)
	if err != nil {
		return nil, err
	}
	row := make([]Cell, 0, to-from)
	for j := from; j < to; j++ {
		row = append(row, b.cells[i-1][j])
	}
	if js.Descending() {
		reverse(row)
	}
	return row, nil
}

func (b *SquareBoard) Column(is Progression, j int) ([]Cell, error) {
	if j < 1 || j > b.width {
		return nil, fmt.Errorf("%w: column %d on width %d", ErrOutOfBounds, j, b.width)
	}
	from, to, err := b.window(is)
	if err != nil {
		return nil, err
	}
	column := make([]Cell, 0, to-from)
	for i := from; i < to; i++ {
		column = append(column, b.cells[i][j-1])
	}
	if is.Descending() {
		reverse(column)
	}
	return column, nil
}

// window converts p to a zero-based half-open index window.
func (b *SquareBoard) window(p Progression) (int, int, error) {
	from, to := p.First, p.Last
	if p.Descending() {
		from, to = p.Last, p.First
	}
	from = from - 1
	if to > b.width {
		to = b.width
	}
	if from < 0 || from > to {
		return 0, 0, fmt.Errorf("%w: range %d..%d on width %d", ErrOutOfBounds, p.First, p.Last, b.width)
	}
	return from, to, nil
}

func (b *SquareBoard) Neighbour(c Cell, d Direction) (Cell, bool) {
	i, j := c.I, c.J
	switch d {
	case Up:
		i--
	case Down:
		i++
	case Left:
		j--
	case Right:
		j++
	default:
		return Cell{}, false
	}
	return b.LookupCell(i, j)
}

func reverse(cells []Cell) {
	for l, r := 0, len(cells)-1; l < r; l, r = l+1, r-1 {
		cells[l], cells[r] = cells[r], cells[l]
	}
}
