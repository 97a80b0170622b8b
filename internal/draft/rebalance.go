package draft

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/randutil"
)

// RebalanceConfig sets the minimum-value thresholds the rebalancer
// repairs toward. MinTotal is always active; the per-dimension minima
// are active when non-nil.
type RebalanceConfig struct {
	MinTotal           float64
	MinEffResources    *float64
	MinEffInfluence    *float64
	MinStrictResources *float64
	MinStrictInfluence *float64

	// MaxIterations bounds the repair loop.
	MaxIterations int

	// SkipValues overrides the scoring bonuses; nil uses the defaults.
	SkipValues SkipValues
}

// DefaultRebalanceConfig requires a total slice value of at least 9
// within 10 iterations.
func DefaultRebalanceConfig() RebalanceConfig {
	return RebalanceConfig{
		MinTotal:      9,
		MaxIterations: 10,
	}
}

// maxPairTries bounds the random tile-pair sampling of one repair so a
// dimension with no improving pair cannot spin forever.
const maxPairTries = 100

// Rebalancer repairs value imbalance between slices by greedy pairwise
// tile swaps between the weakest and strongest slice of a violated
// dimension.
type Rebalancer struct {
	cfg    RebalanceConfig
	logger *log.Logger
}

// NewRebalancer returns a rebalancer with the given thresholds. A nil
// logger discards output.
func NewRebalancer(cfg RebalanceConfig, logger *log.Logger) *Rebalancer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Rebalancer{cfg: cfg, logger: logger}
}

func (rb *Rebalancer) thresholds() map[Quantity]float64 {
	res := map[Quantity]float64{QuantityTotal: rb.cfg.MinTotal}
	set := func(q Quantity, v *float64) {
		if v != nil {
			res[q] = *v
		}
	}
	set(QuantityEffResources, rb.cfg.MinEffResources)
	set(QuantityEffInfluence, rb.cfg.MinEffInfluence)
	set(QuantityStrictResources, rb.cfg.MinStrictResources)
	set(QuantityStrictInfluence, rb.cfg.MinStrictInfluence)
	return res
}

// Rebalance returns a copy of the state whose slices satisfy every
// active threshold, leaving the input untouched. The caller's generator
// is cloned; each iteration performs at most one swap, on the first
// violated dimension in shuffled order. When no dimension is violated
// the search has converged. RebalanceExhaustedError past the iteration
// ceiling.
func (rb *Rebalancer) Rebalance(st *State, game *catalog.Game, rng *randutil.Rand) (*State, error) {
	rng = rng.Clone()

	slices := make([]*Slice, len(st.slices))
	for i, s := range st.slices {
		slices[i] = s.Clone()
	}

	thresholds := rb.thresholds()
	converged := false
	for iter := 0; iter < rb.cfg.MaxIterations; iter++ {
		rb.logger.Debug("rebalance step", "iteration", iter)
		if !rb.step(slices, thresholds, rng) {
			converged = true
			rb.logger.Debug("rebalance converged", "iterations", iter+1)
			break
		}
	}
	if !converged {
		return nil, &RebalanceExhaustedError{Iterations: rb.cfg.MaxIterations}
	}
	return NewState(slices, game)
}

// step scans the active dimensions in shuffled order and repairs the
// first violated one. Reports whether anything was (or needed to be)
// changed; false means every threshold is satisfied.
func (rb *Rebalancer) step(slices []*Slice, thresholds map[Quantity]float64, rng *randutil.Rand) bool {
	dims := make([]Quantity, 0, len(thresholds))
	for q := range thresholds {
		dims = append(dims, q)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	rng.Shuffle(len(dims), func(i, j int) { dims[i], dims[j] = dims[j], dims[i] })

	for _, q := range dims {
		order := make([]*Slice, len(slices))
		copy(order, slices)
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Evaluate(rb.cfg.SkipValues).Get(q) < order[j].Evaluate(rb.cfg.SkipValues).Get(q)
		})
		weakest, strongest := order[0], order[len(order)-1]
		if weakest.Evaluate(rb.cfg.SkipValues).Get(q) >= thresholds[q] {
			continue
		}
		rb.swapImproving(weakest, strongest, q, rng)
		// One swap per iteration: stop scanning dimensions.
		return true
	}
	return false
}

// swapImproving samples random tile pairs from the weakest and
// strongest slice and swaps the first pair that improves the dimension.
// Planetless hazard tiles are never swapped. Sampling is bounded; a
// dimension with no improving pair leaves the slices unchanged.
func (rb *Rebalancer) swapImproving(weakest, strongest *Slice, q Quantity, rng *randutil.Rand) {
	weakTiles := weakest.Tiles()
	strongTiles := strongest.Tiles()
	for try := 0; try < maxPairTries; try++ {
		tw := weakTiles[rng.IntN(len(weakTiles))]
		ts := strongTiles[rng.IntN(len(strongTiles))]
		if !tw.HasPlanets() || !ts.HasPlanets() {
			continue
		}
		vw := EvaluateTile(tw, rb.cfg.SkipValues).Get(q)
		vs := EvaluateTile(ts, rb.cfg.SkipValues).Get(q)
		if vw >= vs {
			continue
		}
		rb.logger.Debug("swapping tiles",
			"dimension", q, "weak_tile", tw.Number, "strong_tile", ts.Number)
		// Swap the pair between the two slices. The tiles were just
		// read out of these slices, so the swaps cannot fail.
		if err := weakest.SwapTile(tw, ts); err != nil {
			return
		}
		if err := strongest.SwapTile(ts, tw); err != nil {
			return
		}
		return
	}
	rb.logger.Warn("no improving tile pair found", "dimension", q)
}
