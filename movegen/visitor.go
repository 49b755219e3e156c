package movegen

import "github.com/fenwick-chess/bbperft/board"

// CountingVisitor tallies legal moves without ever materialising a successor
// position, which is all a perft leaf needs.
type CountingVisitor struct {
	Count int64
}

func (v *CountingVisitor) OnMove(_ board.Position, _ bool, _, _ int)           { v.Count++ }
func (v *CountingVisitor) OnKingMove(_ board.Position, _ bool, _, _ int)       { v.Count++ }
func (v *CountingVisitor) OnEnPassant(_ board.Position, _ bool, _, _ int)      { v.Count++ }
func (v *CountingVisitor) OnPawnPush2(_ board.Position, _ bool, _ int)         { v.Count++ }
func (v *CountingVisitor) OnPromotion(_ board.Position, _ bool, _, _ int, _ board.PromotionPiece) {
	v.Count++
}
func (v *CountingVisitor) OnKingsideCastle(_ board.Position, _ bool)  { v.Count++ }
func (v *CountingVisitor) OnQueensideCastle(_ board.Position, _ bool) { v.Count++ }

// MaterializingVisitor appends the successor position of every legal move to
// Positions, for callers that need the actual resulting boards (e.g.
// exploring a position interactively) rather than just a count.
type MaterializingVisitor struct {
	Positions []board.Position
}

func (v *MaterializingVisitor) OnMove(pos board.Position, _ bool, from, to int) {
	pos.MakeQuietMove(from, to)
	v.Positions = append(v.Positions, pos)
}

func (v *MaterializingVisitor) OnKingMove(pos board.Position, white bool, from, to int) {
	pos.MakeKingMove(white, from, to)
	v.Positions = append(v.Positions, pos)
}

func (v *MaterializingVisitor) OnEnPassant(pos board.Position, white bool, from, to int) {
	pos.MakeEnPassant(white, from, to)
	v.Positions = append(v.Positions, pos)
}

func (v *MaterializingVisitor) OnPawnPush2(pos board.Position, white bool, from int) {
	pos.MakePawnPush2(white, from)
	v.Positions = append(v.Positions, pos)
}

func (v *MaterializingVisitor) OnPromotion(pos board.Position, white bool, from, to int, promo board.PromotionPiece) {
	pos.MakePromotion(white, from, to, promo)
	v.Positions = append(v.Positions, pos)
}

func (v *MaterializingVisitor) OnKingsideCastle(pos board.Position, white bool) {
	pos.MakeKingsideCastle(white)
	v.Positions = append(v.Positions, pos)
}

func (v *MaterializingVisitor) OnQueensideCastle(pos board.Position, white bool) {
	pos.MakeQueensideCastle(white)
	v.Positions = append(v.Positions, pos)
}

// RecordedMove pairs a packed move with the successor it leads to, so a
// caller can print the move (via package uci) alongside exploring or
// counting its subtree (perft.Divide).
type RecordedMove struct {
	Move      board.Move
	Successor board.Position
}

// MoveRecordingVisitor builds the move list package uci and package perft's
// Divide need: the packed move itself, not just its effect.
type MoveRecordingVisitor struct {
	Moves []RecordedMove
}

func (v *MoveRecordingVisitor) push(m board.Move, pos board.Position) {
	v.Moves = append(v.Moves, RecordedMove{Move: m, Successor: pos})
}

func (v *MoveRecordingVisitor) OnMove(pos board.Position, _ bool, from, to int) {
	pos.MakeQuietMove(from, to)
	v.push(board.NewMove(from, to, board.MoveNormal), pos)
}

func (v *MoveRecordingVisitor) OnKingMove(pos board.Position, white bool, from, to int) {
	pos.MakeKingMove(white, from, to)
	v.push(board.NewMove(from, to, board.MoveNormal), pos)
}

func (v *MoveRecordingVisitor) OnEnPassant(pos board.Position, white bool, from, to int) {
	pos.MakeEnPassant(white, from, to)
	v.push(board.NewMove(from, to, board.MoveEnPassant), pos)
}

func (v *MoveRecordingVisitor) OnPawnPush2(pos board.Position, white bool, from int) {
	var to int
	if white {
		to = from + 16
	} else {
		to = from - 16
	}
	pos.MakePawnPush2(white, from)
	v.push(board.NewMove(from, to, board.MoveNormal), pos)
}

func (v *MoveRecordingVisitor) OnPromotion(pos board.Position, white bool, from, to int, promo board.PromotionPiece) {
	pos.MakePromotion(white, from, to, promo)
	v.push(board.NewPromotionMove(from, to, promo), pos)
}

func (v *MoveRecordingVisitor) OnKingsideCastle(pos board.Position, white bool) {
	var from, to int
	if white {
		from, to = board.E1, board.G1
	} else {
		from, to = board.E8, board.G8
	}
	pos.MakeKingsideCastle(white)
	v.push(board.NewMove(from, to, board.MoveCastling), pos)
}

func (v *MoveRecordingVisitor) OnQueensideCastle(pos board.Position, white bool) {
	var from, to int
	if white {
		from, to = board.E1, board.C1
	} else {
		from, to = board.E8, board.C8
	}
	pos.MakeQueensideCastle(white)
	v.push(board.NewMove(from, to, board.MoveCastling), pos)
}
