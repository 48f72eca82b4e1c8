// Package search implements negamax alpha-beta search with quiescence
// and MVV-LVA/killer/history move ordering over pkg/board positions.
package search

import "github.com/corvidlabs/patzer/pkg/board"

// Score bounds and mate scoring. MatedScore is biased by remaining depth so
// shorter mates sort ahead of longer ones at the root.
const (
	Inf        = 10_000_000
	MatedScore = -100_000
)

// maxPly bounds the killer table; a fixed depth search never nests this deep.
const maxPly = 128

// Context owns the killer and history move-ordering tables for a single
// top-level Search call. A fresh Context per call keeps ordering state
// from leaking between searches.
type Context struct {
	killers [maxPly][2]board.Move
	history [64][64]int32
}

// Search resets move-ordering state and returns the negamax score of b at
// depth from the side-to-move's perspective.
func Search(b *board.Board, depth int) int {
	ctx := &Context{}
	return ctx.minimax(b, depth, -Inf, Inf, 1)
}
