// patzer is a simple UCI chess engine: bitboard movegen, negamax
// alpha-beta search with quiescence, tapered evaluation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidlabs/patzer/pkg/engine"
	"github.com/corvidlabs/patzer/pkg/engine/uci"
	"github.com/seekerror/logw"
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: patzer [options]

patzer is a UCI chess engine core: bitboard movegen and negamax
alpha-beta search with quiescence, talking the UCI protocol over
stdin/stdout.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "patzer", "corvidlabs")

	in := engine.ReadLines(ctx, os.Stdin)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteLines(ctx, os.Stdout, out)
		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported: send %q first", uci.ProtocolName)
	}
}
