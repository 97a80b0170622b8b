package draft

import (
	"fmt"
	"sort"

	"github.com/lox/galaxydraft/internal/board"
	"github.com/lox/galaxydraft/internal/catalog"
	"github.com/lox/galaxydraft/internal/hexgrid"
)

// State is the aggregate draft: a fixed set of slices plus the
// incremental per-player choices of seat, slice, and faction. Slices
// are fixed at construction; assignments grow one choice at a time
// until the state is complete.
type State struct {
	slices       []*Slice
	factions     []catalog.Faction
	factionHomes []catalog.Tile
	center       catalog.Tile

	names    map[int]string
	seats    map[int]int // player -> seat position
	sliceIdx map[int]int // player -> slice index
	facIdx   map[int]int // player -> faction index
}

// NewState builds a draft state over the given slices, validating each
// slice's wormhole-uniqueness invariant. The player count is the slice
// count.
func NewState(slices []*Slice, game *catalog.Game) (*State, error) {
	if len(slices) == 0 {
		return nil, fmt.Errorf("draft: state requires at least one slice")
	}
	for i, s := range slices {
		if err := s.checkWormholes(); err != nil {
			return nil, fmt.Errorf("slice %d: %w", i, err)
		}
	}
	return &State{
		slices:       slices,
		factions:     game.Factions,
		factionHomes: game.FactionHomes(),
		center:       game.Tiles.Center,
		names:        make(map[int]string),
		seats:        make(map[int]int),
		sliceIdx:     make(map[int]int),
		facIdx:       make(map[int]int),
	}, nil
}

// PlayerCount is the number of players (and slices, and seats).
func (st *State) PlayerCount() int {
	return len(st.slices)
}

// Slices returns the draft slices. Treat as read-only.
func (st *State) Slices() []*Slice {
	return st.slices
}

// Factions returns the draftable factions.
func (st *State) Factions() []catalog.Faction {
	return st.factions
}

func (st *State) checkPlayer(player int) error {
	if player < 0 || player >= st.PlayerCount() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrPlayerRange, player, st.PlayerCount())
	}
	return nil
}

// SetPlayerName records a display name for the player.
func (st *State) SetPlayerName(player int, name string) error {
	if err := st.checkPlayer(player); err != nil {
		return err
	}
	st.names[player] = name
	return nil
}

// PlayerName returns the player's display name, or "player_<n>".
func (st *State) PlayerName(player int) string {
	if name, ok := st.names[player]; ok {
		return name
	}
	return fmt.Sprintf("player_%d", player)
}

// Seat returns the player's seat position, if chosen.
func (st *State) Seat(player int) (int, bool) {
	seat, ok := st.seats[player]
	return seat, ok
}

// SliceIndex returns the player's slice index, if chosen.
func (st *State) SliceIndex(player int) (int, bool) {
	idx, ok := st.sliceIdx[player]
	return idx, ok
}

// FactionIndex returns the player's faction index, if chosen.
func (st *State) FactionIndex(player int) (int, bool) {
	idx, ok := st.facIdx[player]
	return idx, ok
}

// AvailableSeats lists the seat positions no player has taken yet,
// computed fresh from the assignment map on every call.
func (st *State) AvailableSeats() []int {
	return st.availableIndices(st.PlayerCount(), st.seats)
}

// AvailableSlices lists the unassigned slice indices.
func (st *State) AvailableSlices() []int {
	return st.availableIndices(len(st.slices), st.sliceIdx)
}

// AvailableFactions lists the unassigned faction indices.
func (st *State) AvailableFactions() []int {
	return st.availableIndices(len(st.factions), st.facIdx)
}

func (st *State) availableIndices(n int, taken map[int]int) []int {
	used := make(map[int]bool, len(taken))
	for _, v := range taken {
		used[v] = true
	}
	var res []int
	for i := 0; i < n; i++ {
		if !used[i] {
			res = append(res, i)
		}
	}
	return res
}

// IsComplete reports whether every player has a seat, a slice, and a
// faction.
func (st *State) IsComplete() bool {
	n := st.PlayerCount()
	return len(st.seats) == n && len(st.sliceIdx) == n && len(st.facIdx) == n
}

// SnakeOrder returns the player numbers in snake draft order: forward,
// reverse, forward (one pass per choice category).
func (st *State) SnakeOrder() []int {
	n := st.PlayerCount()
	res := make([]int, 0, 3*n)
	for i := 0; i < n; i++ {
		res = append(res, i)
	}
	for i := n - 1; i >= 0; i-- {
		res = append(res, i)
	}
	for i := 0; i < n; i++ {
		res = append(res, i)
	}
	return res
}

// ChoiceKind is the category of a draft choice.
type ChoiceKind int

const (
	ChoiceSeat ChoiceKind = iota
	ChoiceSlice
	ChoiceFaction
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceSeat:
		return "seat"
	case ChoiceSlice:
		return "slice"
	case ChoiceFaction:
		return "faction"
	default:
		return fmt.Sprintf("choice(%d)", int(k))
	}
}

// Choice is one selectable option, identified to players by its label.
type Choice struct {
	Label string
	Kind  ChoiceKind
	Index int
}

// Choices lists everything the player can currently pick: open seats if
// they have none, open slices (labeled with their score) if they have
// none, open factions if they have none. The list is derived fresh on
// every call; nothing is cached.
func (st *State) Choices(player int) ([]Choice, error) {
	if err := st.checkPlayer(player); err != nil {
		return nil, err
	}
	var res []Choice
	if _, ok := st.seats[player]; !ok {
		for _, seat := range st.AvailableSeats() {
			label := fmt.Sprintf("Seat %d", seat)
			if seat == 0 {
				label = "Speaker (Seat 0)"
			}
			res = append(res, Choice{Label: label, Kind: ChoiceSeat, Index: seat})
		}
	}
	if _, ok := st.sliceIdx[player]; !ok {
		for _, idx := range st.AvailableSlices() {
			v := st.slices[idx].Evaluate(nil)
			label := fmt.Sprintf("Slice %d (~%.2f/%d/%d)",
				idx, v.Total(), v.StrictResources, v.StrictInfluence)
			res = append(res, Choice{Label: label, Kind: ChoiceSlice, Index: idx})
		}
	}
	if _, ok := st.facIdx[player]; !ok {
		for _, idx := range st.AvailableFactions() {
			res = append(res, Choice{Label: st.factions[idx].Name, Kind: ChoiceFaction, Index: idx})
		}
	}
	return res, nil
}

// Apply commits the choice with the given label for the player. The
// label is looked up among the currently available choices only, so a
// category the player already picked is never offered again.
// ErrUnknownChoice leaves the state untouched.
func (st *State) Apply(player int, label string) error {
	choices, err := st.Choices(player)
	if err != nil {
		return err
	}
	for _, c := range choices {
		if c.Label != label {
			continue
		}
		switch c.Kind {
		case ChoiceSeat:
			st.seats[player] = c.Index
		case ChoiceSlice:
			st.sliceIdx[player] = c.Index
		case ChoiceFaction:
			st.facIdx[player] = c.Index
		}
		return nil
	}
	return fmt.Errorf("%w: %q for player %d", ErrUnknownChoice, label, player)
}

// seatAnchor is the home coordinate for a seat: the canonical anchor
// rotated clockwise by the seat position.
func seatAnchor(seat int) hexgrid.Coord {
	return HomeAnchor.Rotate(seat)
}

// Board materializes the draft into a coordinate map. Players with a
// seat and slice get their slice placed at the seat's rotation; a
// chosen faction's home tile then overwrites the home coordinate.
// Unassigned positions stay placeholders. Incomplete assignment maps
// are tolerated and reported as warnings, not errors, so in-progress
// drafts can still be rendered.
func (st *State) Board() (*board.Board, []string) {
	var warnings []string
	n := st.PlayerCount()
	if len(st.seats) != n {
		warnings = append(warnings, fmt.Sprintf("seats assigned for %d of %d players", len(st.seats), n))
	}
	if len(st.sliceIdx) != n {
		warnings = append(warnings, fmt.Sprintf("slices assigned for %d of %d players", len(st.sliceIdx), n))
	}
	if len(st.facIdx) != n {
		warnings = append(warnings, fmt.Sprintf("factions assigned for %d of %d players", len(st.facIdx), n))
	}

	b := board.New()

	// Every seat's home slot starts as a placeholder so a partially
	// drafted board still shows where players will sit.
	for seat := 0; seat < n; seat++ {
		b.Set(seatAnchor(seat), board.HomePlaceholder(""))
	}

	players := make([]int, 0, len(st.seats))
	for p := range st.seats {
		players = append(players, p)
	}
	sort.Ints(players)

	for _, p := range players {
		seat := st.seats[p]
		if idx, ok := st.sliceIdx[p]; ok {
			for at, cell := range st.slices[idx].Cells(seat) {
				b.Set(at, cell)
			}
		}
		// The faction home overwrites whatever the slice placed at the
		// home coordinate; order matters.
		if idx, ok := st.facIdx[p]; ok {
			b.Set(seatAnchor(seat), board.HomeTileCell(st.factionHomes[idx]))
		}
	}

	b.Set(hexgrid.Coord{}, board.TileCell(st.center))
	return b, warnings
}
