package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absent(_ string, ok bool) bool { return !ok }

func TestGameBoard(t *testing.T) {
	require := require.New(t)

	_, err := NewGameBoard[string](0)
	require.ErrorIs(err, ErrInvalidArgument)

	g, err := NewGameBoard[string](2)
	require.Nil(err)
	require.Equal(2, g.Width())
	require.Len(g.AllCells(), 4)
	require.True(g.All(absent))
	require.False(g.Any(func(_ string, ok bool) bool { return ok }))

	c, err := g.GetCell(2, 1)
	require.Nil(err)
	require.True(g.Set(c, "a"))
	v, ok := g.Get(c)
	require.True(ok)
	require.Equal("a", v)
	for _, other := range g.AllCells() {
		if other == c {
			continue
		}
		_, ok := g.Get(other)
		require.False(ok)
	}
	require.False(g.All(absent))
	require.True(g.Any(func(v string, ok bool) bool { return ok && v == "a" }))

	require.True(g.Unset(c))
	_, ok = g.Get(c)
	require.False(ok)
	require.True(g.All(absent))

	require.False(g.Set(Cell{3, 3}, "x"))
	require.False(g.Unset(Cell{0, 1}))
	_, ok = g.Get(Cell{3, 3})
	require.False(ok)
	require.Len(g.AllCells(), 4)
}

func TestGameBoardQueries(t *testing.T) {
	assert := assert.New(t)

	g, _ := NewGameBoard[int](3)
	g.Set(Cell{3, 3}, 9)
	g.Set(Cell{1, 2}, 2)
	g.Set(Cell{2, 1}, 0)

	even := func(v int, ok bool) bool { return ok && v%2 == 0 }
	assert.Equal([]Cell{{1, 2}, {2, 1}}, g.Filter(even))
	c, ok := g.Find(even)
	assert.True(ok)
	assert.Equal(Cell{1, 2}, c)

	_, ok = g.Find(func(v int, ok bool) bool { return ok && v > 100 })
	assert.False(ok)
	assert.Empty(g.Filter(func(v int, ok bool) bool { return ok && v > 100 }))
	assert.Len(g.Filter(func(_ int, ok bool) bool { return !ok }), 6)

	assert.True(g.All(func(v int, ok bool) bool { return !ok || v < 10 }))
	assert.False(g.All(func(v int, ok bool) bool { return ok }))
	assert.True(g.Any(func(v int, ok bool) bool { return ok && v == 0 }))

	g.Set(Cell{1, 2}, 7)
	v, _ := g.Get(Cell{1, 2})
	assert.Equal(7, v)
	assert.Equal([]Cell{{2, 1}}, g.Filter(even))

	n, ok := g.Neighbour(Cell{1, 2}, Down)
	assert.True(ok)
	assert.Equal(Cell{2, 2}, n)
	row, err := g.Row(3, DownTo(3, 1))
	assert.Nil(err)
	assert.Equal([]Cell{{3, 3}, {3, 2}, {3, 1}}, row)
}

func TestGameBoardStoresCopies(t *testing.T) {
	assert := assert.New(t)

	g, _ := NewGameBoard[[2]int](1)
	c, _ := g.GetCell(1, 1)
	v := [2]int{1, 2}
	g.Set(c, v)
	v[0] = 5
	stored, ok := g.Get(c)
	assert.True(ok)
	assert.Equal([2]int{1, 2}, stored)
}
