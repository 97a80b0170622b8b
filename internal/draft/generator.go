package draft

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/randutil"
)

// Options configures random slice generation.
type Options struct {
	// Slices is the number of slices to partition the pool into (one
	// per player).
	Slices int
	// RedsPerSlice and BluesPerSlice set the hazard/planet tile mix of
	// each slice.
	RedsPerSlice  int
	BluesPerSlice int
	// Retries is the structural-validation retry budget.
	Retries int
}

// DefaultOptions is the base configuration: six slices of 2 red + 3
// blue tiles, five retries.
func DefaultOptions() Options {
	return Options{
		Slices:        6,
		RedsPerSlice:  2,
		BluesPerSlice: 3,
		Retries:       5,
	}
}

// Generator builds random draft states from a catalog, retrying on
// structural-validation failure.
type Generator struct {
	opts   Options
	logger *log.Logger
}

// NewGenerator returns a generator with the given options. A nil logger
// discards output.
func NewGenerator(opts Options, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{opts: opts, logger: logger}
}

// Generate seeds a fresh deterministic generator and produces a draft
// state. See GenerateWithRand.
func (g *Generator) Generate(game *catalog.Game, seed int64) (*State, *randutil.Rand, error) {
	return g.generate(game, randutil.New(seed), seed)
}

// GenerateWithRand clones the caller's generator and produces a draft
// state, continuing the clone's random stream across retries so a fixed
// seed and retry ceiling always yield the same result. The advanced
// generator is returned so downstream steps can continue the stream.
func (g *Generator) GenerateWithRand(game *catalog.Game, rng *randutil.Rand) (*State, *randutil.Rand, error) {
	return g.generate(game, rng.Clone(), -1)
}

func (g *Generator) generate(game *catalog.Game, rng *randutil.Rand, seed int64) (*State, *randutil.Rand, error) {
	if g.opts.RedsPerSlice+g.opts.BluesPerSlice != sliceSize {
		return nil, nil, fmt.Errorf("%w: %d red + %d blue tiles per slice, want %d total",
			ErrSliceSize, g.opts.RedsPerSlice, g.opts.BluesPerSlice, sliceSize)
	}
	needRed := g.opts.Slices * g.opts.RedsPerSlice
	needBlue := g.opts.Slices * g.opts.BluesPerSlice
	if len(game.Tiles.Red) < needRed || len(game.Tiles.Blue) < needBlue {
		return nil, nil, fmt.Errorf("%w: need %d red and %d blue tiles, have %d and %d",
			ErrTilePool, needRed, needBlue, len(game.Tiles.Red), len(game.Tiles.Blue))
	}

	// Explicit retry loop over the same generator: each attempt
	// continues the random stream rather than restarting it.
	for attempt := 0; attempt <= g.opts.Retries; attempt++ {
		st, err := g.attempt(game, rng)
		if err == nil {
			return st, rng, nil
		}
		if !errors.Is(err, ErrWormholeClash) {
			return nil, nil, err
		}
		g.logger.Warn("generated partition failed validation, retrying",
			"attempt", attempt, "retries_left", g.opts.Retries-attempt, "err", err)
	}
	return nil, nil, &ExhaustedError{Seed: seed, Retries: g.opts.Retries}
}

// attempt shuffles the two hazard-tier pools independently, slices them
// into contiguous chunks, shuffles each chunk, and validates the
// resulting state.
func (g *Generator) attempt(game *catalog.Game, rng *randutil.Rand) (*State, error) {
	reds := append([]catalog.Tile(nil), game.Tiles.Red...)
	rng.Shuffle(len(reds), func(i, j int) { reds[i], reds[j] = reds[j], reds[i] })
	blues := append([]catalog.Tile(nil), game.Tiles.Blue...)
	rng.Shuffle(len(blues), func(i, j int) { blues[i], blues[j] = blues[j], blues[i] })

	slices := make([]*Slice, 0, g.opts.Slices)
	for i := 0; i < g.opts.Slices; i++ {
		chunk := make([]catalog.Tile, 0, g.opts.RedsPerSlice+g.opts.BluesPerSlice)
		chunk = append(chunk, reds[g.opts.RedsPerSlice*i:g.opts.RedsPerSlice*(i+1)]...)
		chunk = append(chunk, blues[g.opts.BluesPerSlice*i:g.opts.BluesPerSlice*(i+1)]...)
		rng.Shuffle(len(chunk), func(i, j int) { chunk[i], chunk[j] = chunk[j], chunk[i] })

		s, err := SliceFromTiles(chunk)
		if err != nil {
			return nil, err
		}
		slices = append(slices, s)
	}
	return NewState(slices, game)
}
