package uci

import (
	"testing"

	"github.com/fenwick-chess/bbperft/board"
	"github.com/fenwick-chess/bbperft/movegen"
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

func TestFormatQuietMove(t *testing.T) {
	m := board.NewMove(board.E2, board.E4, board.MoveNormal)
	assert.Equal(t, "e2e4", Format(m))
}

func TestFormatPromotion(t *testing.T) {
	m := board.NewPromotionMove(board.B7, board.B8, board.PromotionQueen)
	assert.Equal(t, "b7b8q", Format(m))

	m = board.NewPromotionMove(board.B7, board.B8, board.PromotionKnight)
	assert.Equal(t, "b7b8n", Format(m))
}

func TestParseResolvesAgainstLegalMoves(t *testing.T) {
	p := startingPosition()
	var v movegen.MoveRecordingVisitor
	movegen.Generate(&p, &v)

	legal := make([]board.Move, len(v.Moves))
	for i, rm := range v.Moves {
		legal[i] = rm.Move
	}

	m, err := Parse("e2e4", legal)
	assert.NoError(t, err)
	assert.Equal(t, board.E2, m.From())
	assert.Equal(t, board.E4, m.To())
}

func TestParseRejectsIllegalMove(t *testing.T) {
	p := startingPosition()
	var v movegen.MoveRecordingVisitor
	movegen.Generate(&p, &v)

	legal := make([]board.Move, len(v.Moves))
	for i, rm := range v.Moves {
		legal[i] = rm.Move
	}

	_, err := Parse("e2e5", legal)
	assert.Error(t, err)
}

func TestParseRejectsMalformedText(t *testing.T) {
	_, err := Parse("e2", nil)
	assert.Error(t, err)

	_, err = Parse("i2e4", nil)
	assert.Error(t, err)

	_, err = Parse("e2e4x", nil)
	assert.Error(t, err)
}

func TestParseDistinguishesPromotionPiece(t *testing.T) {
	var p board.Position
	p.SetSquare(board.E1, board.TagKing, true)
	p.SetSquare(board.A8, board.TagKing, false)
	p.SetSquare(board.B7, board.TagPawn, true)
	p.Turn = board.White
	p.EP = board.NoSquare

	var v movegen.MoveRecordingVisitor
	movegen.Generate(&p, &v)
	legal := make([]board.Move, len(v.Moves))
	for i, rm := range v.Moves {
		legal[i] = rm.Move
	}

	m, err := Parse("b7b8r", legal)
	assert.NoError(t, err)
	assert.Equal(t, board.PromotionRook, m.PromotionPiece())
}
