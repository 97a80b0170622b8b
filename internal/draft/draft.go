// Package draft implements the draft core: slice scoring, randomized
// slice generation with structural retry, iterative rebalancing, and
// the incremental player-choice state machine.
package draft

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/randutil"
)

// Config bundles the full pipeline settings: generation, rebalancing,
// and the outer retry budget around the two stages.
type Config struct {
	Options   Options
	Rebalance RebalanceConfig

	// GlobalRetries is how many times the generate+rebalance pair is
	// restarted when either stage exhausts its own budget.
	GlobalRetries int
}

// DefaultConfig returns the base pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Options:       DefaultOptions(),
		Rebalance:     DefaultRebalanceConfig(),
		GlobalRetries: 5,
	}
}

// Generate runs the full pipeline: random slice generation with
// structural retry, then rebalancing, restarting both stages on
// exhaustion up to the global retry budget. The whole run is
// deterministic in the seed. A nil logger discards output.
func Generate(game *catalog.Game, seed int64, cfg Config, logger *log.Logger) (*State, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gen := NewGenerator(cfg.Options, logger)
	reb := NewRebalancer(cfg.Rebalance, logger)

	rng := randutil.New(seed)
	var lastErr error
	for attempt := 0; attempt <= cfg.GlobalRetries; attempt++ {
		raw, advanced, err := gen.GenerateWithRand(game, rng)
		if err != nil {
			logger.Warn("generation attempt failed", "attempt", attempt, "seed", seed, "err", err)
			lastErr = withSeed(err, seed)
			rng = advanceRetryStream(rng)
			continue
		}
		st, err := reb.Rebalance(raw, game, advanced)
		if err != nil {
			logger.Warn("rebalance attempt failed", "attempt", attempt, "seed", seed, "err", err)
			lastErr = err
			rng = advanceRetryStream(advanced)
			continue
		}
		return st, nil
	}
	return nil, lastErr
}

// advanceRetryStream perturbs the generator between global attempts so
// a restarted pipeline does not replay the exact failing stream, while
// staying deterministic in the original seed.
func advanceRetryStream(rng *randutil.Rand) *randutil.Rand {
	next := rng.Clone()
	next.Uint64()
	return next
}

// withSeed attaches the pipeline seed to an ExhaustedError produced
// deeper in the stack, where only the cloned generator was visible.
func withSeed(err error, seed int64) error {
	if ex, ok := err.(*ExhaustedError); ok && ex.Seed < 0 {
		return &ExhaustedError{Seed: seed, Retries: ex.Retries}
	}
	return err
}
