package board

// GameBoard keeps an optional value of type T for every cell of its square
// board. It is not safe for concurrent use.
type GameBoard[T any] struct {
	*SquareBoard
	values map[Cell]*T
}

func NewGameBoard[T any](width int) (*GameBoard[T], error) {
	sb, err := NewSquareBoard(width)
	if err != nil {
		return nil, err
	}
	values := make(map[Cell]*T, width*width)
	for _, c := range sb.AllCells() {
		values[c] = nil
	}
	return &GameBoard[T]{SquareBoard: sb, values: values}, nil
}

func (g *GameBoard[T]) Get(c Cell) (T, bool) {
	var zero T
	v := g.values[c]
	if v == nil {
		return zero, false
	}
	return *v, true
}

// Set stores v at c, it returns false when c is not on the board.
func (g *GameBoard[T]) Set(c Cell, v T) bool {
	if _, found := g.values[c]; !found {
		return false
	}
	g.values[c] = &v
	return true
}

func (g *GameBoard[T]) Unset(c Cell) bool {
	if _, found := g.values[c]; !found {
		return false
	}
	g.values[c] = nil
	return true
}

// Filter returns in row-major order the cells whose value satisfies
// predicate. Absent values reach predicate as (zero, false).
func (g *GameBoard[T]) Filter(predicate func(v T, ok bool) bool) []Cell {
	var cells []Cell
	for _, c := range g.AllCells() {
		if g.match(c, predicate) {
			cells = append(cells, c)
		}
	}
	return cells
}

func (g *GameBoard[T]) Find(predicate func(v T, ok bool) bool) (Cell, bool) {
	for _, c := range g.AllCells() {
		if g.match(c, predicate) {
			return c, true
		}
	}
	return Cell{}, false
}

func (g *GameBoard[T]) Any(predicate func(v T, ok bool) bool) bool {
	_, found := g.Find(predicate)
	return found
}

func (g *GameBoard[T]) All(predicate func(v T, ok bool) bool) bool {
	for _, c := range g.AllCells() {
		if !g.match(c, predicate) {
			return false
		}
	}
	return true
}

func (g *GameBoard[T]) match(c Cell, predicate func(v T, ok bool) bool) bool {
	v, ok := g.Get(c)
	return predicate(v, ok)
}
