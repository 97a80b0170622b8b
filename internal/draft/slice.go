package draft

import (
	"fmt"

	"github.com/lox/galaxydraft/internal/board"
	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/hexgrid"
)

// sliceSize is the number of non-home tiles in a slice.
const sliceSize = 5

// HomeAnchor is the canonical home coordinate a slice is anchored at
// before rotation: the north corner of ring 3.
var HomeAnchor = hexgrid.Coord{Q: 0, R: -3, S: 3}

// sliceOffsets are the five non-home positions relative to the origin,
// in fixed order: close-left, close-mid, close-right, far-left, far-mid.
// The home sits at HomeAnchor.
var sliceOffsets = [sliceSize]hexgrid.Coord{
	{Q: -1, R: -2, S: 3}, // close-left
	{Q: 0, R: -2, S: 2},  // close-mid
	{Q: 1, R: -3, S: 2},  // close-right
	{Q: -1, R: -1, S: 2}, // far-left
	{Q: 0, R: -1, S: 1},  // far-mid
}

// Slice is one player's starting region: five tiles in fixed named
// positions plus an optional home tile. Mutable only through whole-tile
// substitution.
type Slice struct {
	tiles [sliceSize]catalog.Tile
	home  *catalog.Tile
}

// SliceFromTiles builds a slice from exactly 5 tiles, or 6 where the
// last is the home tile.
func SliceFromTiles(tiles []catalog.Tile) (*Slice, error) {
	s := &Slice{}
	switch len(tiles) {
	case sliceSize:
	case sliceSize + 1:
		home := tiles[sliceSize]
		s.home = &home
	default:
		return nil, fmt.Errorf("%w: got %d tiles", ErrSliceSize, len(tiles))
	}
	copy(s.tiles[:], tiles[:sliceSize])
	return s, nil
}

// Tiles returns the five non-home tiles in position order.
func (s *Slice) Tiles() []catalog.Tile {
	res := make([]catalog.Tile, sliceSize)
	copy(res, s.tiles[:])
	return res
}

// Home returns the home tile, if set.
func (s *Slice) Home() (catalog.Tile, bool) {
	if s.home == nil {
		return catalog.Tile{}, false
	}
	return *s.home, true
}

// SetHome assigns the home tile.
func (s *Slice) SetHome(t catalog.Tile) {
	s.home = &t
}

// Clone returns a deep copy of the slice.
func (s *Slice) Clone() *Slice {
	c := &Slice{tiles: s.tiles}
	if s.home != nil {
		home := *s.home
		c.home = &home
	}
	return c
}

// SwapTile replaces original with replacement among the non-home tiles.
// The original is located by its catalog number; ErrTileNotFound if it
// is not present.
func (s *Slice) SwapTile(original, replacement catalog.Tile) error {
	for i, t := range s.tiles {
		if t.Same(original) {
			s.tiles[i] = replacement
			return nil
		}
	}
	return fmt.Errorf("%w: tile %d", ErrTileNotFound, original.Number)
}

// Cells maps the slice onto board cells anchored at HomeAnchor, then
// rotates the whole set clockwise by rotations x 60 degrees. An unset
// home becomes a home placeholder.
func (s *Slice) Cells(rotations int) map[hexgrid.Coord]board.Cell {
	res := make(map[hexgrid.Coord]board.Cell, sliceSize+1)
	if s.home != nil {
		res[HomeAnchor] = board.HomeTileCell(*s.home)
	} else {
		res[HomeAnchor] = board.HomePlaceholder("")
	}
	for i, off := range sliceOffsets {
		res[off] = board.TileCell(s.tiles[i])
	}
	for n := 0; n < rotations; n++ {
		rotated := make(map[hexgrid.Coord]board.Cell, len(res))
		for at, cell := range res {
			rotated[at.RotateClockwise60()] = cell
		}
		res = rotated
	}
	return res
}

// Evaluate sums EvaluateTile over the five non-home tiles.
func (s *Slice) Evaluate(skip SkipValues) Value {
	var v Value
	for _, t := range s.tiles {
		v = v.Add(EvaluateTile(t, skip))
	}
	return v
}

// checkWormholes enforces the structural invariant that no non-none
// wormhole class appears on more than one tile of the slice.
func (s *Slice) checkWormholes() error {
	counts := map[catalog.Wormhole]int{}
	for _, t := range s.tiles {
		counts[t.Wormhole]++
	}
	for class, n := range counts {
		if class != catalog.WormholeNone && n > 1 {
			return fmt.Errorf("%w: %d %s wormholes", ErrWormholeClash, n, class)
		}
	}
	return nil
}
