package board

// Position is the immutable-from-the-generator's-perspective chess position:
// a four-word tagged bitboard plus the handful of scalars FEN carries beyond
// piece placement.
//
// Bit i of Bits[k] is the k-th bit of square i's 4-bit tag (high to low:
// Bits[3] Bits[2] Bits[1] Bits[0]):
//
//	0000: empty
//	1???: white piece, 0???: black piece (with at least one of bits 0-2 set)
//	tag bits 2,1,0 select the piece type: 001 bishop, 010 rook, 011 queen,
//	100 pawn, 101 knight, 111 king (000-with-side-bit and 110 are unused)
//
// A Position is cheap to copy (32 bytes of bitboards plus three small
// scalars), so callers pass it by value freely; movegen's generator and
// board's own Make*/Unmake helpers rely on that to avoid any allocation.
type Position struct {
	Bits     [4]uint64
	Turn     Color
	Castling CastlingRights
	EP       int
}

// clear empties a square across all four board words.
func (p *Position) clear(sq int) {
	mask := ^(uint64(1) << sq)
	p.Bits[0] &= mask
	p.Bits[1] &= mask
	p.Bits[2] &= mask
	p.Bits[3] &= mask
}

// dupe copies the tag at square from onto square to, leaving from untouched.
func (p *Position) dupe(from, to int) {
	toMask := ^(uint64(1) << to)
	for i := range p.Bits {
		bit := (p.Bits[i] >> from) & 1
		p.Bits[i] = (p.Bits[i] & toMask) | (bit << to)
	}
}

// relocate moves whatever sits on from to to, leaving from empty.
func (p *Position) relocate(from, to int) {
	p.dupe(from, to)
	p.clear(from)
}

// SetSquare places a piece of the given tag and colour on sq.
func (p *Position) SetSquare(sq int, tag PieceTag, white bool) {
	p.clear(sq)
	mask := uint64(1) << sq
	if tag&0b001 != 0 {
		p.Bits[0] |= mask
	}
	if tag&0b010 != 0 {
		p.Bits[1] |= mask
	}
	if tag&0b100 != 0 {
		p.Bits[2] |= mask
	}
	if white {
		p.Bits[3] |= mask
	}
}

// ClearSquare empties sq.
func (p *Position) ClearSquare(sq int) { p.clear(sq) }

// PieceAt reports the tag and colour of the piece on sq, if any.
func (p *Position) PieceAt(sq int) (tag PieceTag, white bool, ok bool) {
	tag = PieceTag((p.Bits[2]>>sq)&1<<2 | (p.Bits[1]>>sq)&1<<1 | (p.Bits[0]>>sq)&1)
	if tag == 0 {
		return 0, false, false
	}
	return tag, (p.Bits[3]>>sq)&1 != 0, true
}

// Occupancy returns every occupied square.
func (p *Position) Occupancy() uint64 { return p.Bits[0] | p.Bits[1] | p.Bits[2] }

// ColourMask returns a mask with every bit set for the given side (white=1,
// black=0 — a black mask is everything NOT tagged white, including empty
// squares, since the side bit is only meaningful where a piece exists).
func (p *Position) ColourMask(white bool) uint64 {
	if white {
		return p.Bits[3]
	}
	return ^p.Bits[3]
}

// ColourPieces returns the squares occupied by the given side's pieces.
func (p *Position) ColourPieces(white bool) uint64 {
	return p.Occupancy() & p.ColourMask(white)
}

// EnemyOrEmpty returns every square NOT occupied by the given side's own
// pieces — the base destination mask for every piece generator.
func (p *Position) EnemyOrEmpty(white bool) uint64 { return ^p.ColourPieces(white) }

func (p *Position) PawnMask() uint64     { return ^p.Bits[0] &^ p.Bits[1] & p.Bits[2] }
func (p *Position) KnightMask() uint64   { return p.Bits[0] &^ p.Bits[1] & p.Bits[2] }
func (p *Position) KingMask() uint64     { return p.Bits[0] & p.Bits[1] & p.Bits[2] }
func (p *Position) DiagonalMask() uint64 { return p.Bits[0] &^ p.Bits[2] } // bishops + queens
func (p *Position) OrthoMask() uint64    { return p.Bits[1] &^ p.Bits[2] } // rooks + queens

func (p *Position) ColourPawns(white bool) uint64    { return p.PawnMask() & p.ColourMask(white) }
func (p *Position) ColourKnights(white bool) uint64  { return p.KnightMask() & p.ColourMask(white) }
func (p *Position) ColourKing(white bool) uint64     { return p.KingMask() & p.ColourMask(white) }
func (p *Position) ColourDiagonal(white bool) uint64 { return p.DiagonalMask() & p.ColourMask(white) }
func (p *Position) ColourOrtho(white bool) uint64    { return p.OrthoMask() & p.ColourMask(white) }

// cornerRight maps a corner square to the castling right it guards, or 0 if
// sq isn't a corner.
func cornerRight(sq int) CastlingRights {
	switch sq {
	case A1:
		return CastlingWQ
	case H1:
		return CastlingWK
	case A8:
		return CastlingBQ
	case H8:
		return CastlingBK
	default:
		return 0
	}
}

// clearCornerRights drops the castling right guarded by sq, if sq is a
// corner square. Applying this to both endpoints of every move — regardless
// of which piece is moving — correctly clears a right both when the rook
// itself moves away AND when it is captured on its home square without ever
// having moved.
func (p *Position) clearCornerRights(sq int) {
	p.Castling &^= cornerRight(sq)
}

// afterMove applies the bookkeeping common to every move kind: clearing the
// stale en-passant target, dropping any castling right whose corner was
// touched, and handing the turn to the other side.
func (p *Position) afterMove(from, to int) {
	p.EP = NoSquare
	p.clearCornerRights(from)
	p.clearCornerRights(to)
	p.Turn = Opponent(p.Turn)
}

// MakeQuietMove plays a non-pawn, non-king quiet move or simple capture.
func (p *Position) MakeQuietMove(from, to int) {
	p.relocate(from, to)
	p.afterMove(from, to)
}

// MakeKingMove plays a king step (not a castle), clearing both of the
// mover's castling rights.
func (p *Position) MakeKingMove(white bool, from, to int) {
	p.relocate(from, to)
	if white {
		p.Castling &^= CastlingWK | CastlingWQ
	} else {
		p.Castling &^= CastlingBK | CastlingBQ
	}
	p.afterMove(from, to)
}

// MakeEnPassant plays an en-passant capture, removing the captured pawn from
// the square adjacent to the destination.
func (p *Position) MakeEnPassant(white bool, from, to int) {
	p.relocate(from, to)
	if white {
		p.ClearSquare(to - 8)
	} else {
		p.ClearSquare(to + 8)
	}
	p.afterMove(from, to)
}

// MakePawnPush2 plays a double pawn push and sets the resulting en-passant
// target.
func (p *Position) MakePawnPush2(white bool, from int) {
	var to int
	if white {
		to = from + 16
	} else {
		to = from - 16
	}
	p.relocate(from, to)
	p.afterMove(from, to)
	if white {
		p.EP = from + 8
	} else {
		p.EP = from - 8
	}
}

// MakePromotion replaces the pawn on from with the chosen promoted piece on
// to (capturing whatever stood there).
func (p *Position) MakePromotion(white bool, from, to int, promo PromotionPiece) {
	p.ClearSquare(from)
	p.SetSquare(to, promotionTag[promo], white)
	p.afterMove(from, to)
}

// Kingside/queenside rook+king corner squares, by colour.
const (
	whiteKingHome = E1
	whiteRookK    = H1
	whiteRookQ    = A1
	blackKingHome = E8
	blackRookK    = H8
	blackRookQ    = A8
)

// MakeKingsideCastle plays O-O for the given side.
func (p *Position) MakeKingsideCastle(white bool) {
	if white {
		p.relocate(whiteKingHome, G1)
		p.relocate(whiteRookK, F1)
		p.Castling &^= CastlingWK | CastlingWQ
	} else {
		p.relocate(blackKingHome, G8)
		p.relocate(blackRookK, F8)
		p.Castling &^= CastlingBK | CastlingBQ
	}
	p.EP = NoSquare
	p.Turn = Opponent(p.Turn)
}

// MakeQueensideCastle plays O-O-O for the given side.
func (p *Position) MakeQueensideCastle(white bool) {
	if white {
		p.relocate(whiteKingHome, C1)
		p.relocate(whiteRookQ, D1)
		p.Castling &^= CastlingWK | CastlingWQ
	} else {
		p.relocate(blackKingHome, C8)
		p.relocate(blackRookQ, D8)
		p.Castling &^= CastlingBK | CastlingBQ
	}
	p.EP = NoSquare
	p.Turn = Opponent(p.Turn)
}

// UnMove is a snapshot sufficient to restore a Position to exactly the state
// it had before a MakeMove call. Positions are small enough (32 bytes of
// bitboards plus three scalars) that snapshotting the whole value is cheaper
// and far simpler than computing a delta.
type UnMove struct {
	prev Position
}

// MakeMove applies the packed move m in place and returns an UnMove that
// restores the prior state. This lets a perft driver walk the search tree
// without heap allocation: generate into a MoveList, MakeMove, recurse,
// UnmakeMove.
func (p *Position) MakeMove(m Move) UnMove {
	u := UnMove{prev: *p}
	from, to := m.From(), m.To()
	tag, white, _ := p.PieceAt(from)

	switch m.Kind() {
	case MoveEnPassant:
		p.MakeEnPassant(white, from, to)
	case MoveCastling:
		if to == G1 || to == G8 {
			p.MakeKingsideCastle(white)
		} else {
			p.MakeQueensideCastle(white)
		}
	case MovePromotion:
		p.MakePromotion(white, from, to, m.PromotionPiece())
	default:
		switch {
		case tag == TagKing:
			p.MakeKingMove(white, from, to)
		case tag == TagPawn && abs(to-from) == 16:
			p.MakePawnPush2(white, from)
		default:
			p.MakeQuietMove(from, to)
		}
	}

	return u
}

// UnmakeMove restores the position to the state captured by u.
func (p *Position) UnmakeMove(u UnMove) { *p = u.prev }

// Apply returns the successor of playing m, leaving p untouched.
func (p Position) Apply(m Move) Position {
	p.MakeMove(m)
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
