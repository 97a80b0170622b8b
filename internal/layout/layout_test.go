package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/hexgrid"
	"github.com/lox/galaxydraft/internal/randutil"
)

func TestEmbeddedLayoutsValid(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, l := range all {
		assert.NoError(t, l.Validate(), "layout %q", l.Name)
		assert.Len(t, l.Homes, l.Players, "layout %q", l.Name)
	}
}

func TestStandard6pShape(t *testing.T) {
	l, err := ByName("standard_6p")
	require.NoError(t, err)

	assert.Equal(t, 6, l.Players)
	assert.Len(t, l.Free, 30)
	assert.Equal(t, 18, l.Fixed[hexgrid.Coord{}])

	// Homes sit on the ring-3 corners, starting north.
	assert.Equal(t, hexgrid.FromAxial(0, -3), l.Homes[0].At)
	for _, h := range l.Homes {
		assert.Equal(t, 3, h.At.Length(), "home %v", h.At)
	}

	// Free slots and homes cover rings 1-3 exactly.
	covered := map[hexgrid.Coord]bool{}
	for _, c := range l.Free {
		covered[c] = true
	}
	for _, h := range l.Homes {
		covered[h.At] = true
	}
	assert.Len(t, covered, 36)
	for c := range covered {
		ring := c.Length()
		assert.GreaterOrEqual(t, ring, 1)
		assert.LessOrEqual(t, ring, 3)
	}
}

func TestParseCompletesTwoTupleCoords(t *testing.T) {
	data := `
name: tiny
players: 1
home_tiles:
  - at: [2, -1]
    label: A
free_tiles:
  - [1, -1, 0]
`
	l, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, hexgrid.Coord{Q: 2, R: -1, S: -1}, l.Homes[0].At)
	assert.Equal(t, hexgrid.Coord{Q: 1, R: -1, S: 0}, l.Free[0])
}

func TestParseRejectsImbalancedTriple(t *testing.T) {
	data := `
name: broken
players: 1
home_tiles:
  - [1, 1, 1]
free_tiles: []
`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, hexgrid.ErrInvalidCoord)
}

func TestParseRejectsHomeCountMismatch(t *testing.T) {
	data := `
name: short
players: 3
home_tiles:
  - [0, -3]
  - [3, 0]
free_tiles: []
`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHomeCount)
}

func TestLayoutBoard(t *testing.T) {
	game := catalog.BaseGame()
	l, err := ByName("standard_6p")
	require.NoError(t, err)

	b, err := l.Board(game)
	require.NoError(t, err)

	center, ok := b.At(hexgrid.Coord{})
	require.True(t, ok)
	require.False(t, center.IsPlaceholder())
	assert.Equal(t, 18, center.Tile.Number)

	home, ok := b.At(hexgrid.FromAxial(0, -3))
	require.True(t, ok)
	assert.True(t, home.IsPlaceholder())
	assert.True(t, home.Home)
	assert.Equal(t, "A", home.Label)

	free, ok := b.At(hexgrid.FromAxial(0, -1))
	require.True(t, ok)
	assert.True(t, free.IsPlaceholder())
	assert.False(t, free.Home)
}

func TestRandomFillIsDeterministic(t *testing.T) {
	game := catalog.BaseGame()
	l, err := ByName("standard_6p")
	require.NoError(t, err)

	a, err := l.RandomFill(game, randutil.New(11))
	require.NoError(t, err)
	b, err := l.RandomFill(game, randutil.New(11))
	require.NoError(t, err)

	for _, at := range l.Free {
		ca, ok := a.At(at)
		require.True(t, ok)
		cb, ok := b.At(at)
		require.True(t, ok)
		require.False(t, ca.IsPlaceholder(), "free slot %v left unfilled", at)
		assert.Equal(t, ca.Tile.Number, cb.Tile.Number, "slot %v", at)
	}

	// Home slots stay placeholders.
	for _, h := range l.Homes {
		cell, ok := a.At(h.At)
		require.True(t, ok)
		assert.True(t, cell.IsPlaceholder())
	}
}
