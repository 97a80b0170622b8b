// Package board models a populated (or partially populated) hex board:
// a coordinate-to-cell mapping where a cell is either a concrete catalog
// tile or a placeholder awaiting assignment.
package board

import (
	"sort"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/hexgrid"
)

// Cell is the content of one board position. A nil Tile marks a
// placeholder; Home flags a placeholder reserved for a home system and
// Label carries an optional slot label ("A".."F") for later
// substitution.
type Cell struct {
	Tile  *catalog.Tile
	Home  bool
	Label string
}

// TileCell wraps a catalog tile as a cell.
func TileCell(t catalog.Tile) Cell {
	return Cell{Tile: &t}
}

// HomeTileCell wraps a home system tile as a cell, keeping the home
// marker so the slot stays identifiable after the tile is placed.
func HomeTileCell(t catalog.Tile) Cell {
	return Cell{Tile: &t, Home: true}
}

// Placeholder returns a free-slot placeholder cell.
func Placeholder() Cell {
	return Cell{}
}

// HomePlaceholder returns a placeholder marking a home slot.
func HomePlaceholder(label string) Cell {
	return Cell{Home: true, Label: label}
}

// IsPlaceholder reports whether the cell has no concrete tile yet.
func (c Cell) IsPlaceholder() bool {
	return c.Tile == nil
}

// Board is a coordinate-to-cell mapping.
type Board struct {
	Cells map[hexgrid.Coord]Cell
}

// New returns an empty board.
func New() *Board {
	return &Board{Cells: make(map[hexgrid.Coord]Cell)}
}

// Set places a cell at the coordinate, replacing any existing content.
func (b *Board) Set(at hexgrid.Coord, c Cell) {
	b.Cells[at] = c
}

// At returns the cell at the coordinate.
func (b *Board) At(at hexgrid.Coord) (Cell, bool) {
	c, ok := b.Cells[at]
	return c, ok
}

// Coords returns the occupied coordinates in a stable order: by ring,
// then spiral position within the ring. The spiral is sized to the
// outermost occupied ring, so every cell has an order index.
func (b *Board) Coords() []hexgrid.Coord {
	res := make([]hexgrid.Coord, 0, len(b.Cells))
	maxRing := 0
	for c := range b.Cells {
		res = append(res, c)
		if l := c.Length(); l > maxRing {
			maxRing = l
		}
	}
	order := make(map[hexgrid.Coord]int, len(b.Cells))
	for i, c := range hexgrid.SpiralCoords(ringSum(maxRing)) {
		order[c] = i
	}
	sort.Slice(res, func(i, j int) bool {
		return order[res[i]] < order[res[j]]
	})
	return res
}

// ringSum is the cell count of rings 0..k.
func ringSum(k int) int {
	return 1 + 3*k*(k+1)
}
