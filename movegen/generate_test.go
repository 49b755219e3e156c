package movegen

import (
	"testing"

	"github.com/fenwick-chess/bbperft/board"
	"github.com/stretchr/testify/assert"
)

func startingPosition() board.Position {
	var p board.Position
	back := [8]board.PieceTag{
		board.TagRook, board.TagKnight, board.TagBishop, board.TagQueen,
		board.TagKing, board.TagBishop, board.TagKnight, board.TagRook,
	}
	for file := 0; file < 8; file++ {
		p.SetSquare(file, back[file], true)
		p.SetSquare(board.A2+file, board.TagPawn, true)
		p.SetSquare(board.A7+file, board.TagPawn, false)
		p.SetSquare(board.A8+file, back[file], false)
	}
	p.Turn = board.White
	p.Castling = board.CastlingWK | board.CastlingWQ | board.CastlingBK | board.CastlingBQ
	p.EP = board.NoSquare
	return p
}

func countMoves(p board.Position) int {
	var v CountingVisitor
	Generate(&p, &v)
	return int(v.Count)
}

func TestStartingPositionHas20Moves(t *testing.T) {
	assert.Equal(t, 20, countMoves(startingPosition()))
}

// Kiwipete-ish double check: black rook on e-file and knight both threaten
// the white king; only king moves are legal.
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.E8, board.TagRook, false)
	p.SetSquare(board.D3, board.TagKnight, false)
	p.SetSquare(board.A1, board.TagRook, true)
	p.Turn = board.White
	p.Castling = 0
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)
	for _, rm := range v.Moves {
		assert.Equal(t, board.E1, rm.Move.From(), "only the king may move under double check")
	}
	assert.NotZero(t, len(v.Moves))
}

// A rook pinned on the e-file may shuffle along the file but not step off it.
func TestPinnedRookRestrictedToRay(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.E4, board.TagRook, true)
	p.SetSquare(board.E8, board.TagRook, false)
	p.Turn = board.White
	p.Castling = 0
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)
	for _, rm := range v.Moves {
		if rm.Move.From() == board.E4 {
			to := rm.Move.To()
			assert.True(t, to == board.E2 || to == board.E3 || to == board.E5 ||
				to == board.E6 || to == board.E7 || to == board.E8,
				"pinned rook stepped off the pin ray to %d", to)
		}
	}
}

// A pawn pinned along the diagonal it captures on may still take the pinning
// piece, but may not push forward off that diagonal.
func TestPinnedPawnMayCaptureAlongPinRay(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.D2, board.TagPawn, true)
	p.SetSquare(board.C3, board.TagBishop, false)
	p.Turn = board.White
	p.Castling = 0
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)

	sawCapture := false
	for _, rm := range v.Moves {
		if rm.Move.From() != board.D2 {
			continue
		}
		assert.Equal(t, board.C3, rm.Move.To(), "pinned pawn made an off-ray move to %d", rm.Move.To())
		sawCapture = true
	}
	assert.True(t, sawCapture)
}

// Classic en-passant discovered check: removing both pawns from the fifth
// rank exposes the white king to the black rook.
func TestEnPassantDiscoveredCheckSuppressed(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E5, board.TagKing, true)
	p.SetSquare(board.D5, board.TagPawn, true)
	p.SetSquare(board.C5, board.TagPawn, false)
	p.SetSquare(board.A5, board.TagRook, false)
	p.Turn = board.White
	p.Castling = 0
	p.EP = board.C6

	var v MoveRecordingVisitor
	Generate(&p, &v)
	for _, rm := range v.Moves {
		assert.NotEqual(t, board.MoveEnPassant, rm.Move.Kind(), "en passant should be suppressed by the discovered check")
	}
}

// Without the rook on the rank, the same en-passant capture is legal.
func TestEnPassantLegalWithoutDiscoveredCheck(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.D5, board.TagPawn, true)
	p.SetSquare(board.C5, board.TagPawn, false)
	p.Turn = board.White
	p.Castling = 0
	p.EP = board.C6

	var v MoveRecordingVisitor
	Generate(&p, &v)
	sawEP := false
	for _, rm := range v.Moves {
		if rm.Move.Kind() == board.MoveEnPassant {
			sawEP = true
		}
	}
	assert.True(t, sawEP)
}

func TestCastleBlockedByAttackedSquare(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.H1, board.TagRook, true)
	p.SetSquare(board.F8, board.TagRook, false) // attacks f1
	p.Turn = board.White
	p.Castling = board.CastlingWK
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)
	for _, rm := range v.Moves {
		assert.NotEqual(t, board.MoveCastling, rm.Move.Kind())
	}
}

func TestCastleAllowedWhenClear(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.H1, board.TagRook, true)
	p.Turn = board.White
	p.Castling = board.CastlingWK
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)
	sawCastle := false
	for _, rm := range v.Moves {
		if rm.Move.Kind() == board.MoveCastling {
			sawCastle = true
		}
	}
	assert.True(t, sawCastle)
}

// Promotions are emitted in a fixed queen, rook, bishop, knight order.
func TestPromotionOrder(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.H8, board.TagKing, false)
	p.SetSquare(board.B7, board.TagPawn, true)
	p.Turn = board.White
	p.Castling = 0
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)

	var promos []board.PromotionPiece
	for _, rm := range v.Moves {
		if rm.Move.Kind() == board.MovePromotion && rm.Move.From() == board.B7 {
			promos = append(promos, rm.Move.PromotionPiece())
		}
	}
	assert.Equal(t, []board.PromotionPiece{
		board.PromotionQueen, board.PromotionRook, board.PromotionBishop, board.PromotionKnight,
	}, promos)
}

// Two enemy rooks stacked on the same file: the near one delivers check, the
// far one is blocked and contributes nothing to checkMask. The king must
// still be barred from the square directly behind it on that file — an
// x-ray retreat the near rook would deliver the instant the king stepped
// off the file — even though neither rook's own attack mask reaches that
// square while the king still occupies it.
func TestKingCannotRetreatAlongXRayWithSecondAttackerBehind(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E4, board.TagKing, true)
	p.SetSquare(board.E6, board.TagRook, false)
	p.SetSquare(board.E8, board.TagRook, false)
	p.Turn = board.White
	p.Castling = 0
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)
	for _, rm := range v.Moves {
		if rm.Move.From() != board.E4 {
			continue
		}
		assert.NotEqual(t, board.E3, rm.Move.To(), "king retreated onto the x-rayed square behind it")
		assert.NotEqual(t, board.E5, rm.Move.To(), "king stepped onto a square still covered by the checking rook")
	}
}

// Capturing a rook on its untouched home corner clears that side's right,
// exercised here through full legal generation + MakeMove.
func TestRookCapturedOnCornerViaGeneratedMove(t *testing.T) {
	var p board.Position
	p.SetSquare(board.A1, board.TagRook, true)
	p.SetSquare(board.A8, board.TagRook, false)
	p.SetSquare(board.E8, board.TagKing, false)
	p.SetSquare(board.H1, board.TagKing, true)
	p.Castling = board.CastlingWK | board.CastlingWQ | board.CastlingBK | board.CastlingBQ
	p.Turn = board.Black
	p.EP = board.NoSquare

	var v MoveRecordingVisitor
	Generate(&p, &v)
	for _, rm := range v.Moves {
		if rm.Move.From() == board.A8 && rm.Move.To() == board.A1 {
			assert.Zero(t, rm.Successor.Castling&board.CastlingWQ)
			return
		}
	}
	t.Fatal("expected Ra8xa1 to be a legal move")
}
