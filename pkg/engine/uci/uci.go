// Package uci contains a driver for using the engine under a UCI protocol
// subset: uci, isready, ucinewgame, position (startpos or fen, with a
// trailing moves list), go (perft or depth), and quit. Time controls,
// pondering, options and registration are not implemented; any other
// input line is ignored.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidlabs/patzer/pkg/board"
	"github.com/corvidlabs/patzer/pkg/engine"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

const ProtocolName = "uci"

const (
	defaultPerftDepth  = 1
	defaultSearchDepth = 4
)

// Driver runs the protocol loop for a single engine over line channels.
type Driver struct {
	e *engine.Engine

	out chan<- string

	closed atomic.Bool
	quit   chan struct{}
}

// NewDriver starts processing in to out against e. Returns immediately;
// the loop runs on its own goroutine until in closes or "quit" arrives.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 16)
	d := &Driver{e: e, out: out, quit: make(chan struct{})}
	go d.process(ctx, in)
	return d, out
}

// Close halts the driver if still running. Idempotent.
func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

// Closed reports when the driver has stopped processing input.
func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	// The caller (main) consumes the initial "uci" line itself to decide
	// which protocol driver to construct, so the handshake it triggers is
	// emitted here rather than from dispatch's "uci" case, which only
	// fires on a later, repeated "uci" command.
	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}
			if done := d.dispatch(ctx, line); done {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// dispatch handles a single protocol line. Returns true if the driver
// should stop (a "quit" was received).
func (d *Driver) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "uci":
		// Identify the engine and confirm UCI mode.
		d.out <- fmt.Sprintf("id name %v", d.e.Name())
		d.out <- fmt.Sprintf("id author %v", d.e.Author())
		d.out <- "uciok"

	case "isready":
		// Synchronous engine: always immediately ready.
		d.out <- "readyok"

	case "ucinewgame":
		d.e.Setup(ctx)

	case "position":
		d.handlePosition(ctx, args)

	case "go":
		d.handleGo(ctx, args)

	case "quit":
		logw.Infof(ctx, "Quit")
		return true
	}
	return false
}

// handlePosition implements "position [startpos | fen <6 fields>] [moves
// m1 m2 ...]". FEN decoding is not implemented: a fen payload is accepted
// syntactically (skipped over) and the board is reset to the start
// position regardless, then any trailing moves are replayed.
func (d *Driver) handlePosition(ctx context.Context, args []string) {
	d.e.Setup(ctx)
	if len(args) == 0 {
		return
	}

	rest := args[1:]
	if args[0] == "fen" {
		for len(rest) > 0 && rest[0] != "moves" {
			rest = rest[1:]
		}
	}

	for i, tok := range rest {
		if tok == "moves" {
			for _, mv := range rest[i+1:] {
				if err := d.e.ApplyCoordinateMove(ctx, mv); err != nil {
					logw.Errorf(ctx, "Invalid move %q: %v", mv, err)
					return
				}
			}
			return
		}
	}
}

// handleGo implements "go perft N" and "go [depth N]", each with a
// default when the depth token is missing.
func (d *Driver) handleGo(ctx context.Context, args []string) {
	if len(args) > 0 && args[0] == "perft" {
		depth := defaultPerftDepth
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil {
				depth = n
			}
		}
		nodes := d.e.Perft(ctx, depth)
		d.out <- fmt.Sprintf("nodes %v", nodes)
		return
	}

	depth := defaultSearchDepth
	for i, tok := range args {
		if tok == "depth" && i+1 < len(args) {
			if n, err := strconv.Atoi(args[i+1]); err == nil {
				depth = n
			}
		}
	}

	mv := d.e.FindBestMove(ctx, depth)
	d.out <- fmt.Sprintf("bestmove %v", formatMove(mv))
}

// formatMove renders a null move ("0000") the way GUIs expect when no
// legal move exists.
func formatMove(mv board.Move) string {
	if mv.IsZero() {
		return "0000"
	}
	return mv.String()
}
