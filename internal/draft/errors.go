package draft

import (
	"errors"
	"fmt"
)

var (
	// ErrSliceSize reports a tile grouping that is not 5 tiles (or 6
	// including a home tile). Fatal: the grouping logic is broken.
	ErrSliceSize = errors.New("draft: slice requires 5 tiles, or 6 including home")

	// ErrTileNotFound reports a swap referencing a tile that is not in
	// the slice. Fatal: indicates a caller bug.
	ErrTileNotFound = errors.New("draft: tile not found in slice")

	// ErrWormholeClash reports two tiles of the same wormhole class in
	// one slice.
	ErrWormholeClash = errors.New("draft: duplicate wormhole class in slice")

	// ErrPlayerRange reports a player index outside [0, N).
	ErrPlayerRange = errors.New("draft: player index out of range")

	// ErrUnknownChoice reports a choice label that is not currently on
	// offer for the player. Recoverable: re-prompt the player.
	ErrUnknownChoice = errors.New("draft: unknown choice")

	// ErrTilePool reports a catalog too small for the requested
	// partition.
	ErrTilePool = errors.New("draft: tile pool too small")
)

// ExhaustedError reports that structural generation retries ran out.
// Seed and Retries make the failed attempt reproducible.
type ExhaustedError struct {
	Seed    int64
	Retries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("draft: could not generate a valid partition within %d retries from seed %d",
		e.Retries, e.Seed)
}

// RebalanceExhaustedError reports that the rebalancer hit its iteration
// ceiling without converging. The caller may accept the unbalanced
// draft or regenerate with a new seed.
type RebalanceExhaustedError struct {
	Iterations int
}

func (e *RebalanceExhaustedError) Error() string {
	return fmt.Sprintf("draft: could not rebalance slices within %d iterations", e.Iterations)
}
