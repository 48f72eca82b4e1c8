package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/seekerror/logw"
)

// ReadLines reads newline-terminated lines from r into a chan, closing it
// when r is exhausted. Async.
func ReadLines(ctx context.Context, r io.Reader) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteLines writes lines from the given chan to w, one per line.
func WriteLines(ctx context.Context, w io.Writer, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(w, line)
	}
}
