package search

import (
	"context"
	"sync"
	"time"

	"github.com/walleye-engine/walleye/pkg/board"
	"github.com/walleye-engine/walleye/pkg/eval"
)

// Launcher starts a search on a forked board and returns a Handle to control it, plus a channel
// of principal variations reported as the search progresses.
type Launcher interface {
	Launch(ctx context.Context, b *board.Board, noise eval.Random, opt Options) (Handle, <-chan PV)
}

// Handle controls an in-flight search.
type Handle interface {
	// Halt stops the search and returns the best principal variation found so far.
	Halt() PV
}

// Iterative is a Launcher that repeatedly searches Root at increasing depths, reporting each
// completed depth's PV, until Options.DepthLimit/NodeLimit/TimeControl is exhausted or Halt is
// called.
//
// Grounded on the teacher's searchctl/iterative.go + searchctl/launcher.go + searchctl/timectrl.go
// harness: soft/hard time limits derived from the remaining clock, cooperative cancellation via
// context, and a buffered PV channel so a slow consumer does not stall the search.
type Iterative struct {
	Root Search
}

func (it Iterative) Launch(ctx context.Context, b *board.Board, noise eval.Random, opt Options) (Handle, <-chan PV) {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan PV, MaxPly)
	h := &handle{cancel: cancel, done: make(chan PV, 1)}

	go func() {
		defer close(out)
		it.run(ctx, b, noise, opt, out, h)
	}()

	return h, out
}

func (it Iterative) run(ctx context.Context, b *board.Board, noise eval.Random, opt Options, out chan<- PV, h *handle) {
	ev := eval.Standard{Noise: noise}
	start := time.Now()

	soft, hard := opt.TimeControl.Limits(b.Turn())
	if hard > 0 {
		timer := time.AfterFunc(hard, h.cancel)
		defer timer.Stop()
	}

	maxDepth, hasMaxDepth := opt.DepthLimit.V()

	var last PV
	for depth := uint(1); !hasMaxDepth || depth <= maxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}

		nodes, score, moves, err := it.Root.Search(ctx, ev, b, depth, last.Moves)
		if err != nil {
			break // cancelled mid-search: the partial result is unreliable, keep the prior PV
		}

		last = PV{Depth: depth, Nodes: nodes, Score: score, Moves: moves, Time: time.Since(start)}
		select {
		case out <- last:
		default:
		}

		if n, ok := opt.NodeLimit.V(); ok && nodes >= n {
			break
		}
		if _, mate := score.MateDistance(); mate {
			break // a forced mate is proven; deepening further cannot change that
		}
		if soft > 0 && time.Since(start) >= soft {
			break
		}
	}

	h.done <- last
	close(h.done)
}

type handle struct {
	cancel context.CancelFunc
	done   chan PV

	once  sync.Once
	final PV
}

// Halt stops the search, if still running, and returns the best PV found. Safe to call more
// than once; later calls return the same final PV.
func (h *handle) Halt() PV {
	h.cancel()
	h.once.Do(func() {
		h.final = <-h.done
	})
	return h.final
}
