// Command walleye is a UCI chess engine. Invoked without a mode flag, it speaks either the UCI
// or the console debugging protocol, selected by the first line read from stdin. The -T and -P
// flags instead run it as a one-shot movegen benchmark or self-play driver.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/walleye-engine/walleye/pkg/board"
	"github.com/walleye-engine/walleye/pkg/board/fen"
	"github.com/walleye-engine/walleye/pkg/engine"
	"github.com/walleye-engine/walleye/pkg/engine/console"
	"github.com/walleye-engine/walleye/pkg/engine/uci"
	"github.com/walleye-engine/walleye/pkg/search"
)

// debugLog is the per-process debug log (walleye_<PID>.log), if enabled. nil otherwise.
var debugLog *log.Logger

var (
	perft    = flag.Bool("T", false, "Run a perft movegen benchmark and exit")
	selfplay = flag.Bool("P", false, "Play a game against itself and exit")

	depth    = flag.Uint("depth", 6, "Search depth (perft depth, self-play depth, default engine depth)")
	position = flag.String("fen", "", "Start position (default to standard)")
	noise    = flag.Uint("noise", 10, "Evaluation noise in centipawns (zero if deterministic)")

	debug = flag.Bool("debug", false, "Write a per-process debug log to walleye_<PID>.log")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: walleye [options]

Walleye is a classical alpha-beta UCI chess engine. Run without flags, it
waits for the first protocol line on stdin ("uci" or "console") and speaks
that protocol thereafter.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *debug {
		f, err := openDebugLog()
		if err != nil {
			logw.Exitf(ctx, "Failed to open debug log: %v", err)
		}
		defer f.Close()

		debugLog = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
		debugLog.Printf("walleye started, pid=%v", os.Getpid())
	}

	if *position == "" {
		*position = fen.Initial
	}

	root := search.AlphaBeta{}
	e := engine.New(ctx, "Walleye", "walleye-engine", root, engine.WithOptions(engine.Options{
		Depth: *depth,
		Noise: *noise,
	}))

	switch {
	case *perft:
		runPerft(ctx, *position, int(*depth))
	case *selfplay:
		runSelfPlay(ctx, e)
	default:
		runProtocol(ctx, e, root)
	}
}

// runProtocol dispatches to the UCI or console driver, chosen by the first line on stdin, mirroring
// how a GUI (or a human, for console) announces which protocol it intends to speak.
func runProtocol(ctx context.Context, e *engine.Engine, root search.Search) {
	in := tee("<<", engine.ReadStdinLines(ctx))
	switch first := <-in; first {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, tee(">>", out))

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, root, in)
		go engine.WriteStdoutLines(ctx, tee(">>", out))

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}

// tee copies each line read from in to the debug log, if enabled, before forwarding it.
func tee(prefix string, in <-chan string) <-chan string {
	if debugLog == nil {
		return in
	}

	out := make(chan string, cap(in))
	go func() {
		defer close(out)
		for line := range in {
			debugLog.Printf("%v %v", prefix, line)
			out <- line
		}
	}()
	return out
}

// runPerft counts leaf nodes at each depth up to the given depth, the standard movegen
// correctness/speed benchmark.
func runPerft(ctx context.Context, position string, depth int) {
	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", position, err)
	}
	zt := board.NewZobristTable(0)

	for i := 1; i <= depth; i++ {
		b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

		start := time.Now()
		nodes := search.Perft(b, i)
		elapsed := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", position, i, nodes, elapsed.Microseconds())
	}
}

// runSelfPlay plays the engine against itself from the given position, at a fixed depth,
// printing the board after every ply, until the game reaches a result.
func runSelfPlay(ctx context.Context, e *engine.Engine) {
	if err := e.Reset(ctx, *position); err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}
	printBoard(e)

	for e.Board().Result().Outcome == board.Undecided {
		opt := search.Options{DepthLimit: lang.Some(e.Options().Depth)}
		out, err := e.Analyze(ctx, opt)
		if err != nil {
			logw.Exitf(ctx, "Analyze failed: %v", err)
		}

		var last search.PV
		for pv := range out {
			last = pv
		}
		if len(last.Moves) == 0 {
			break
		}

		best := last.Moves[0]
		if err := e.Move(ctx, best.String()); err != nil {
			logw.Exitf(ctx, "Self-play move %v failed: %v", best, err)
		}
		printBoard(e)
	}

	fmt.Println(e.Board().Result())
}

func printBoard(e *engine.Engine) {
	b := e.Board()
	fmt.Println()
	fmt.Println(b.Position())
	fmt.Printf("fen:    %v\n", e.Position())
	fmt.Printf("result: %v, ply: %v\n", b.Result(), b.Ply())
	fmt.Println()
}

// openDebugLog opens the per-process debug log in the working directory. Plain text,
// one event per line, prefixed with a timestamp.
func openDebugLog() (*os.File, error) {
	name := fmt.Sprintf("walleye_%d.log", os.Getpid())
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
