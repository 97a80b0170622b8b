package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/hexgrid"
)

func newTestState(t *testing.T, players int) *State {
	t.Helper()
	st, err := NewState(testSlices(players), testGame())
	require.NoError(t, err)
	return st
}

// pick finds the label for a kind/index pair among the player's current
// choices and applies it.
func pick(t *testing.T, st *State, player int, kind ChoiceKind, index int) {
	t.Helper()
	choices, err := st.Choices(player)
	require.NoError(t, err)
	for _, c := range choices {
		if c.Kind == kind && c.Index == index {
			require.NoError(t, st.Apply(player, c.Label))
			return
		}
	}
	t.Fatalf("no available %s with index %d for player %d", kind, index, player)
}

func TestNewStateRejectsWormholeClash(t *testing.T) {
	tiles := fiveTiles()
	tiles[0].Wormhole = catalog.WormholeAlpha
	tiles[3].Wormhole = catalog.WormholeAlpha
	bad, err := SliceFromTiles(tiles)
	require.NoError(t, err)

	_, err = NewState([]*Slice{bad}, testGame())
	assert.ErrorIs(t, err, ErrWormholeClash)
}

func TestStatePlayerNames(t *testing.T) {
	st := newTestState(t, 6)

	assert.Equal(t, "player_2", st.PlayerName(2))
	require.NoError(t, st.SetPlayerName(2, "alice"))
	assert.Equal(t, "alice", st.PlayerName(2))

	assert.ErrorIs(t, st.SetPlayerName(6, "bob"), ErrPlayerRange)
	assert.ErrorIs(t, st.SetPlayerName(-1, "bob"), ErrPlayerRange)
}

func TestStateChoicesFresh(t *testing.T) {
	st := newTestState(t, 6)

	choices, err := st.Choices(0)
	require.NoError(t, err)
	// 6 seats + 6 slices + 6 factions.
	assert.Len(t, choices, 18)
	assert.Equal(t, "Speaker (Seat 0)", choices[0].Label)
	assert.Equal(t, ChoiceSeat, choices[0].Kind)

	_, err = st.Choices(6)
	assert.ErrorIs(t, err, ErrPlayerRange)
}

func TestStateApplyRemovesTakenOptions(t *testing.T) {
	st := newTestState(t, 6)

	pick(t, st, 0, ChoiceSeat, 3)

	// Player 0 no longer sees any seat choices.
	choices, err := st.Choices(0)
	require.NoError(t, err)
	for _, c := range choices {
		assert.NotEqual(t, ChoiceSeat, c.Kind)
	}

	// Other players no longer see seat 3.
	choices, err = st.Choices(1)
	require.NoError(t, err)
	for _, c := range choices {
		if c.Kind == ChoiceSeat {
			assert.NotEqual(t, 3, c.Index)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 4, 5}, st.AvailableSeats())
}

func TestStateApplyUnknownLeavesStateUntouched(t *testing.T) {
	st := newTestState(t, 6)

	err := st.Apply(0, "Seat 99")
	assert.ErrorIs(t, err, ErrUnknownChoice)

	choices, err := st.Choices(0)
	require.NoError(t, err)
	assert.Len(t, choices, 18)
	assert.Empty(t, st.seats)
}

func TestStateIsComplete(t *testing.T) {
	st := newTestState(t, 3)

	assert.False(t, st.IsComplete())
	for p := 0; p < 3; p++ {
		pick(t, st, p, ChoiceSeat, p)
		pick(t, st, p, ChoiceSlice, p)
		assert.False(t, st.IsComplete())
	}
	for p := 0; p < 3; p++ {
		pick(t, st, p, ChoiceFaction, p)
	}
	assert.True(t, st.IsComplete())
}

func TestStateSnakeOrder(t *testing.T) {
	st := newTestState(t, 3)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 0, 0, 1, 2}, st.SnakeOrder())
}

func TestStateBoardComplete(t *testing.T) {
	st := newTestState(t, 6)
	game := testGame()

	for p := 0; p < 6; p++ {
		pick(t, st, p, ChoiceSeat, (p+2)%6)
		pick(t, st, p, ChoiceSlice, p)
		pick(t, st, p, ChoiceFaction, p)
	}
	require.True(t, st.IsComplete())

	b, warnings := st.Board()
	assert.Empty(t, warnings)

	center, ok := b.At(hexgrid.Coord{})
	require.True(t, ok)
	require.NotNil(t, center.Tile)
	assert.Equal(t, 18, center.Tile.Number)

	// Each player's faction home sits at their seat's anchor.
	for p := 0; p < 6; p++ {
		seat, ok := st.Seat(p)
		require.True(t, ok)
		cell, ok := b.At(HomeAnchor.Rotate(seat))
		require.True(t, ok)
		require.NotNil(t, cell.Tile, "seat %d", seat)
		assert.Equal(t, game.Tiles.Homes[p].Number, cell.Tile.Number)
		assert.True(t, cell.Home)
	}

	// 1 center + 6 per player (5 slice tiles + home).
	assert.Len(t, b.Coords(), 37)
	for _, at := range b.Coords() {
		cell, _ := b.At(at)
		assert.False(t, cell.IsPlaceholder(), "placeholder at %v", at)
	}
}

func TestStateBoardPartial(t *testing.T) {
	st := newTestState(t, 6)

	pick(t, st, 0, ChoiceSeat, 0)
	pick(t, st, 0, ChoiceSlice, 1)

	b, warnings := st.Board()
	assert.Len(t, warnings, 3)

	// Player 0's slice is placed, home still a placeholder.
	cell, ok := b.At(HomeAnchor)
	require.True(t, ok)
	assert.True(t, cell.IsPlaceholder())

	// Remaining seats are placeholders only.
	for seat := 1; seat < 6; seat++ {
		cell, ok := b.At(seatAnchor(seat))
		require.True(t, ok)
		assert.True(t, cell.IsPlaceholder(), "seat %d", seat)
	}
}
