package console_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walleye-engine/walleye/pkg/engine"
	"github.com/walleye-engine/walleye/pkg/engine/console"
	"github.com/walleye-engine/walleye/pkg/search"
)

// drain collects lines from out until pred matches one, or the test times out.
func drain(t *testing.T, out <-chan string, pred func(string) bool) []string {
	t.Helper()

	var lines []string
	deadline := time.After(5 * time.Second)
	for {
		select {
		case line, ok := <-out:
			if !ok {
				t.Fatal("output stream closed before predicate matched")
			}
			lines = append(lines, line)
			if pred(line) {
				return lines
			}
		case <-deadline:
			t.Fatalf("timed out waiting for output; got so far: %v", lines)
		}
	}
}

func hasPrefix(lines []string, prefix string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

func TestConsolePrintsBoardOnStartup(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "Walleye", "test", search.AlphaBeta{}, engine.WithOptions(engine.Options{Depth: 2}))

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, search.AlphaBeta{}, in)

	lines := drain(t, out, func(s string) bool { return strings.HasPrefix(s, "fen:") })
	assert.True(t, hasPrefix(lines, "engine Walleye"))
	assert.True(t, hasPrefix(lines, files()))

	close(in)
}

func TestConsoleMoveAndUndo(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "Walleye", "test", search.AlphaBeta{}, engine.WithOptions(engine.Options{Depth: 2}))

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, search.AlphaBeta{}, in)

	drain(t, out, func(s string) bool { return strings.HasPrefix(s, "fen:") })

	in <- "e2e4"
	lines := drain(t, out, func(s string) bool { return strings.HasPrefix(s, "fen:") })
	assert.True(t, hasPrefix(lines, "fen:"))
	require.NotEmpty(t, lines)

	in <- "badmove123"
	lines = drain(t, out, func(s string) bool { return strings.HasPrefix(s, "invalid move:") })
	assert.True(t, hasPrefix(lines, "invalid move:"))

	in <- "undo"
	drain(t, out, func(s string) bool { return strings.HasPrefix(s, "fen:") })

	close(in)
}

func TestConsoleAnalyzeProducesBestMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "Walleye", "test", search.AlphaBeta{}, engine.WithOptions(engine.Options{Depth: 2}))

	in := make(chan string, 10)
	_, out := console.NewDriver(ctx, e, search.AlphaBeta{}, in)

	drain(t, out, func(s string) bool { return strings.HasPrefix(s, "fen:") })

	in <- "analyze 2"
	lines := drain(t, out, func(s string) bool { return strings.HasPrefix(s, "bestmove ") })
	assert.True(t, hasPrefix(lines, "bestmove "))

	// searchCompleted also emits the per-root-move breakdown after the bestmove line.
	lines = drain(t, out, func(s string) bool { return strings.HasPrefix(s, "Search, depth=") })
	assert.True(t, hasPrefix(lines, "Search, depth="))

	close(in)
}

func files() string {
	return "    a   b   c   d   e   f   g   h"
}
