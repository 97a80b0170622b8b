package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/randutil"
)

// sliceNumbers flattens a state's slices into their tile numbers for
// comparison.
func sliceNumbers(st *State) [][]int {
	res := make([][]int, 0, len(st.Slices()))
	for _, s := range st.Slices() {
		var nums []int
		for _, tile := range s.Tiles() {
			nums = append(nums, tile.Number)
		}
		res = append(res, nums)
	}
	return res
}

func TestGeneratorDeterministic(t *testing.T) {
	game := testGame()
	gen := NewGenerator(DefaultOptions(), nil)

	a, _, err := gen.Generate(game, 42)
	require.NoError(t, err)
	b, _, err := gen.Generate(game, 42)
	require.NoError(t, err)

	assert.Equal(t, sliceNumbers(a), sliceNumbers(b))
	assert.Len(t, a.Slices(), 6)
}

func TestGeneratorSeedsDiverge(t *testing.T) {
	game := testGame()
	gen := NewGenerator(DefaultOptions(), nil)

	base, _, err := gen.Generate(game, 1)
	require.NoError(t, err)

	diverged := false
	for _, seed := range []int64{2, 3, 4} {
		st, _, err := gen.Generate(game, seed)
		require.NoError(t, err)
		if !assert.ObjectsAreEqual(sliceNumbers(base), sliceNumbers(st)) {
			diverged = true
		}
	}
	assert.True(t, diverged, "all seeds produced identical partitions")
}

func TestGeneratorPartitionShape(t *testing.T) {
	game := testGame()
	gen := NewGenerator(DefaultOptions(), nil)

	st, _, err := gen.Generate(game, 7)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, s := range st.Slices() {
		reds, blues := 0, 0
		for _, tile := range s.Tiles() {
			assert.False(t, seen[tile.Number], "tile %d appears twice", tile.Number)
			seen[tile.Number] = true
			if tile.HasPlanets() {
				blues++
			} else {
				reds++
			}
		}
		assert.Equal(t, 2, reds)
		assert.Equal(t, 3, blues)
	}
}

func TestGeneratorBadMix(t *testing.T) {
	opts := DefaultOptions()
	opts.RedsPerSlice = 2
	opts.BluesPerSlice = 2
	gen := NewGenerator(opts, nil)

	_, _, err := gen.Generate(testGame(), 1)
	assert.ErrorIs(t, err, ErrSliceSize)
}

func TestGeneratorPoolTooSmall(t *testing.T) {
	opts := DefaultOptions()
	opts.Slices = 8 // needs 16 red, catalog has 12
	gen := NewGenerator(opts, nil)

	_, _, err := gen.Generate(testGame(), 1)
	assert.ErrorIs(t, err, ErrTilePool)
}

func TestGeneratorExhaustsRetries(t *testing.T) {
	// Every blue tile carries the same wormhole, so any slice with more
	// than one blue tile fails validation and no attempt can succeed.
	game := testGame()
	for i := range game.Tiles.Blue {
		game.Tiles.Blue[i].Wormhole = catalog.WormholeAlpha
	}

	gen := NewGenerator(DefaultOptions(), nil)
	_, _, err := gen.Generate(game, 9)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, int64(9), exhausted.Seed)
	assert.Equal(t, 5, exhausted.Retries)
}

func TestGenerateWithRandLeavesCallerStream(t *testing.T) {
	game := testGame()
	gen := NewGenerator(DefaultOptions(), nil)

	rng := randutil.New(11)
	probe := rng.Clone()

	_, advanced, err := gen.GenerateWithRand(game, rng)
	require.NoError(t, err)
	require.NotNil(t, advanced)

	// The caller's generator was cloned, not consumed.
	assert.Equal(t, probe.Uint64(), rng.Uint64())
}

func TestGenerateWithRandDeterministic(t *testing.T) {
	game := testGame()
	gen := NewGenerator(DefaultOptions(), nil)

	a, _, err := gen.GenerateWithRand(game, randutil.New(11))
	require.NoError(t, err)
	b, _, err := gen.GenerateWithRand(game, randutil.New(11))
	require.NoError(t, err)

	assert.Equal(t, sliceNumbers(a), sliceNumbers(b))
}
