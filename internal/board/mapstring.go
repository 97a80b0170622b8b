package board

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/hexgrid"
)

// ErrBadMapString reports a malformed map-string import. Recoverable:
// the caller should re-prompt.
var ErrBadMapString = errors.New("board: bad map string")

// mapStringCells is the number of tile positions a map string encodes:
// rings 1 through 3 of the spiral. The center cell is implicit.
const mapStringCells = 36

// homeSlotLabels are assigned to zero entries in traversal order.
const homeSlotLabels = "ABCDEF"

// Leading zeros are rejected so every accepted string re-serializes
// byte-identically.
var mapStringRe = regexp.MustCompile(`^(0|[1-9]\d?)( (0|[1-9]\d?)){35}$`)

// ParseMapString imports a single-line map string: exactly 36
// space-separated 1-2 digit tile numbers in spiral traversal order.
// The center tile is prepended implicitly at the origin. Zero entries
// denote home slots and receive labels "A".."F" in traversal order.
func ParseMapString(s string, game *catalog.Game) (*Board, error) {
	s = strings.TrimSpace(s)
	if !mapStringRe.MatchString(s) {
		return nil, fmt.Errorf("%w: want %d space-separated tile numbers", ErrBadMapString, mapStringCells)
	}

	fields := strings.Fields(s)
	coords := hexgrid.SpiralCoords(mapStringCells + 1)

	b := New()
	b.Set(coords[0], TileCell(game.Tiles.Center))

	homes := 0
	for i, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadMapString, f)
		}
		at := coords[i+1]
		if num == 0 {
			if homes >= len(homeSlotLabels) {
				return nil, fmt.Errorf("%w: more than %d home slots", ErrBadMapString, len(homeSlotLabels))
			}
			b.Set(at, HomePlaceholder(string(homeSlotLabels[homes])))
			homes++
			continue
		}
		tile, ok := game.TileByNumber(num)
		if !ok {
			return nil, fmt.Errorf("%w: unknown tile number %d", ErrBadMapString, num)
		}
		b.Set(at, TileCell(tile))
	}
	return b, nil
}

// FormatMapString serializes the 36 non-center spiral positions back to
// a map string, placeholders as 0. The inverse of ParseMapString.
func FormatMapString(b *Board) (string, error) {
	coords := hexgrid.SpiralCoords(mapStringCells + 1)
	fields := make([]string, 0, mapStringCells)
	for _, at := range coords[1:] {
		cell, ok := b.At(at)
		if !ok {
			return "", fmt.Errorf("board: cell %v is unset", at)
		}
		if cell.IsPlaceholder() {
			fields = append(fields, "0")
			continue
		}
		fields = append(fields, strconv.Itoa(cell.Tile.Number))
	}
	return strings.Join(fields, " "), nil
}
