// Package layout defines named, player-count-specific board layouts:
// fixed tile slots, home slots, and free slots to be filled by random
// generation.
package layout

import (
	"errors"
	"fmt"

	"github.com/lox/galaxydraft/internal/board"
	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/hexgrid"
	"github.com/lox/galaxydraft/internal/randutil"
)

// ErrHomeCount reports a layout whose home-slot count does not match its
// declared player count.
var ErrHomeCount = errors.New("layout: home slot count must equal player count")

// HomeSlot is a home-tile position, optionally labeled for display.
type HomeSlot struct {
	At    hexgrid.Coord
	Label string
}

// Layout is a named arrangement of board slots for a fixed player count.
type Layout struct {
	Name    string
	Players int
	Fixed   map[hexgrid.Coord]int
	Homes   []HomeSlot
	Free    []hexgrid.Coord
}

// Validate checks the layout's structural invariants.
func (l *Layout) Validate() error {
	if l.Players < 1 {
		return fmt.Errorf("layout %q: player count %d out of range", l.Name, l.Players)
	}
	if len(l.Homes) != l.Players {
		return fmt.Errorf("%w: layout %q has %d home slots for %d players",
			ErrHomeCount, l.Name, len(l.Homes), l.Players)
	}
	return nil
}

// Board materializes the layout against a catalog: fixed slots resolve
// to their tiles, home and free slots become placeholders.
func (l *Layout) Board(game *catalog.Game) (*board.Board, error) {
	b := board.New()
	for _, at := range l.Free {
		b.Set(at, board.Placeholder())
	}
	for _, slot := range l.Homes {
		b.Set(slot.At, board.HomePlaceholder(slot.Label))
	}
	for at, num := range l.Fixed {
		tile, ok := game.TileByNumber(num)
		if !ok {
			return nil, fmt.Errorf("layout %q: unknown fixed tile %d at %v", l.Name, num, at)
		}
		b.Set(at, board.TileCell(tile))
	}
	return b, nil
}

// RandomFill materializes the layout and fills its free slots from the
// shuffled blue and red tile pool. Home slots stay placeholders.
func (l *Layout) RandomFill(game *catalog.Game, rng *randutil.Rand) (*board.Board, error) {
	b, err := l.Board(game)
	if err != nil {
		return nil, err
	}
	pool := make([]catalog.Tile, 0, len(game.Tiles.Blue)+len(game.Tiles.Red))
	pool = append(pool, game.Tiles.Blue...)
	pool = append(pool, game.Tiles.Red...)
	if len(pool) < len(l.Free) {
		return nil, fmt.Errorf("layout %q: %d free slots but only %d tiles in the pool",
			l.Name, len(l.Free), len(pool))
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for i, at := range l.Free {
		b.Set(at, board.TileCell(pool[i]))
	}
	return b, nil
}
