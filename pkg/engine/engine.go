// Package engine is the driver adapter between the bitboard/search core
// and an external protocol loop (see pkg/engine/uci): setup,
// coordinate-move application, perft, and best-move selection.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidlabs/patzer/pkg/board"
	"github.com/corvidlabs/patzer/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Engine wraps a single Board and exposes the operations a UCI-style
// driver needs: reset to start, apply a move, perft, and pick a move by
// fixed-depth search. The search itself is synchronous and runs to
// completion; there is no cancellation.
type Engine struct {
	name, author string

	mu sync.Mutex
	b  *board.Board
}

// New returns an engine identified by name/author, already reset to the
// standard starting position.
func New(ctx context.Context, name, author string) *Engine {
	e := &Engine{name: name, author: author}
	e.Setup(ctx)
	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version, for the UCI "id name" reply.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author, for the UCI "id author" reply.
func (e *Engine) Author() string {
	return e.author
}

// Setup resets the engine to the standard starting position.
func (e *Engine) Setup(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.b = board.NewBoard()
	logw.Infof(ctx, "Reset to start position")
}

// Board returns the current position. Callers must not mutate it; use
// ApplyCoordinateMove to advance the game.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b
}

// ApplyCoordinateMove parses s as pure algebraic coordinate notation
// ("e2e4", "a7a8q") and applies it to the current position, mechanically,
// with no legality check beyond what ApplyMove itself enforces: a driver
// is expected to only ever supply moves it obtained from this engine's
// own move generation.
func (e *Engine) ApplyCoordinateMove(ctx context.Context, s string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	mv, err := board.ParseMove(s)
	if err != nil {
		return err
	}
	if _, ok := board.ApplyMove(e.b, mv); !ok {
		return fmt.Errorf("illegal move: %v (no piece on %v)", s, mv.From)
	}
	logw.Debugf(ctx, "Applied %v: %v", mv, e.b)
	return nil
}

// Perft returns the number of leaf nodes at exactly depth in the legal
// move tree rooted at the current position. Perft(0) is 1.
func (e *Engine) Perft(ctx context.Context, depth int) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	nodes := countMoves(e.b, depth)
	logw.Infof(ctx, "Perft(%v) = %v", depth, nodes)
	return nodes
}

func countMoves(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GenerateLegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		u, ok := board.ApplyMove(b, mv)
		if !ok {
			continue
		}
		nodes += countMoves(b, depth-1)
		board.UnmakeMove(b, u)
	}
	return nodes
}

// FindBestMove generates legal moves at the root, searches each to
// depth-1 and returns the move with the highest score for the side to
// move; ties are broken by first-seen. Returns the null move
// (From==To==0) if there are no legal moves.
func (e *Engine) FindBestMove(ctx context.Context, depth int) board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	moves := board.GenerateLegalMoves(e.b)
	if len(moves) == 0 {
		logw.Infof(ctx, "FindBestMove: no legal moves")
		return board.Move{}
	}

	best := moves[0]
	bestScore := -search.Inf - 1
	for _, mv := range moves {
		u, ok := board.ApplyMove(e.b, mv)
		if !ok {
			continue
		}
		score := -search.Search(e.b, depth-1)
		board.UnmakeMove(e.b, u)

		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	logw.Infof(ctx, "FindBestMove(depth=%v) = %v (score=%v)", depth, best, bestScore)
	return best
}
