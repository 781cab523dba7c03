package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walleye-engine/walleye/pkg/board"
)

// TestMvvLvaStaysWellInsideTierGap guards against the int16 overflow/wrap a prior version of
// these constants suffered from: tierCapture plus any mvvLva delta must stay under
// math.MaxInt16, and must never dip low enough to collide with tierKiller.
func TestMvvLvaStaysWellInsideTierGap(t *testing.T) {
	pieces := []board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King}

	var min, max board.MovePriority
	for _, attacker := range pieces {
		for _, victim := range []board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen} {
			m := board.Move{Type: board.Capture, Piece: attacker, Capture: victim}
			d := mvvLva(m)
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}
	}

	assert.Greater(t, tierCapture+min, tierKiller, "a losing capture must still outrank a killer")
	assert.Less(t, int32(tierCapture)+int32(max), int32(1<<15), "must not overflow int16")
}

func TestOrderMovesRanksCapturesAboveKillersAboveQuiet(t *testing.T) {
	k := newKillers()
	quiet := board.Move{Type: board.Quiet, Piece: board.Knight, From: board.B1, To: board.C3}
	killer := board.Move{Type: board.Quiet, Piece: board.Knight, From: board.G1, To: board.F3}
	capture := board.Move{Type: board.Capture, Piece: board.Pawn, Capture: board.Knight}

	k.Record(0, killer)

	fn := orderMoves(k, 0, board.Move{}, false)
	assert.Greater(t, fn(capture), fn(killer))
	assert.Greater(t, fn(killer), fn(quiet))
}

func TestOrderMovesPutsHintFirst(t *testing.T) {
	k := newKillers()
	capture := board.Move{Type: board.Capture, Piece: board.Pawn, Capture: board.Queen}
	quiet := board.Move{Type: board.Quiet, Piece: board.Knight, From: board.B1, To: board.C3}

	fn := orderMoves(k, 0, quiet, true)
	assert.Greater(t, fn(quiet), fn(capture), "hinted move must outrank even a capture")
}
