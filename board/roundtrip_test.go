package board_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fenwick-chess/bbperft/board"
	"github.com/fenwick-chess/bbperft/fen"
	"github.com/fenwick-chess/bbperft/movegen"
)

// legalMoves drives the real generator (not a hand-built fixture) so this
// test exercises MakeMove/UnmakeMove against every move kind the generator
// actually emits from a given position, not just the ones a human thought to
// write down.
func legalMoves(p board.Position) []board.Move {
	var v movegen.MoveRecordingVisitor
	movegen.Generate(&p, &v)
	moves := make([]board.Move, len(v.Moves))
	for i, rm := range v.Moves {
		moves[i] = rm.Move
	}
	return moves
}

// walkRoundTrip asserts apply-then-undo restores p bitwise for every legal
// move, then recurses one ply into each successor up to depth.
func walkRoundTrip(t *testing.T, p board.Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	for _, m := range legalMoves(p) {
		before := p
		u := p.MakeMove(m)
		p.UnmakeMove(u)

		if diff := cmp.Diff(before, p); diff != "" {
			t.Fatalf("apply(%v) then undo did not restore the position (-before +after):\n%s", m, diff)
		}

		next := p
		next.MakeMove(m)
		walkRoundTrip(t, next, depth-1)
	}
}

func TestApplyUndoRoundTripsAcrossAuthoritativePositions(t *testing.T) {
	positions := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}

	for _, f := range positions {
		p, err := fen.Parse(f)
		if err != nil {
			t.Fatalf("fen.Parse(%q): %v", f, err)
		}
		walkRoundTrip(t, p, 2)
	}
}
