// Package board declares the tagged bitboard representation a chess position
// is built from, the packed Move encoding, and the square/piece/colour
// constants the rest of the module is built on top of.
package board

// Color is an alias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	White Color = iota
	Black
)

// Opponent returns the other side.
func Opponent(c Color) Color { return c ^ 1 }

// PieceTag is the 3-bit piece-type code stored in bits b2 b1 b0 of a square's
// tag (see Position). 0b000 and 0b110 are unused.
type PieceTag = uint8

const (
	TagBishop PieceTag = 0b001
	TagRook   PieceTag = 0b010
	TagQueen  PieceTag = 0b011
	TagPawn   PieceTag = 0b100
	TagKnight PieceTag = 0b101
	TagKing   PieceTag = 0b111
)

// PromotionPiece is an alias type to avoid bothersome conversion between int
// and PromotionPiece.
type PromotionPiece = int

// 00 - knight, 01 - bishop, 10 - rook, 11 - queen.
const (
	PromotionKnight PromotionPiece = iota
	PromotionBishop
	PromotionRook
	PromotionQueen
)

// promotionTag maps a PromotionPiece to the PieceTag placed on the board.
var promotionTag = [4]PieceTag{TagKnight, TagBishop, TagRook, TagQueen}

// MoveKind is an alias type to avoid bothersome conversion between int and
// MoveKind.
type MoveKind = int

const (
	// Quiet moves and simple captures.
	MoveNormal MoveKind = iota
	// King and queenside castling.
	MoveCastling
	// Knight/bishop/rook/queen promotions (with or without capture).
	MovePromotion
	// En-passant capture.
	MoveEnPassant
)

/*
Move represents a chess move packed into a 16-bit unsigned integer:
  - 0-5:   To (destination) square index.
  - 6-11:  From (origin/source) square index.
  - 12-13: Promotion piece (see PromotionPiece); meaningless unless Kind is
    MovePromotion.
  - 14-15: Move kind (see MoveKind).
*/
type Move uint16

// NewMove creates a non-promotion move.
func NewMove(from, to int, kind MoveKind) Move {
	return Move(to | (from << 6) | (kind << 14))
}

// NewPromotionMove creates a promotion move to the given piece.
func NewPromotionMove(from, to int, promo PromotionPiece) Move {
	return Move(to | (from << 6) | (promo << 12) | (MovePromotion << 14))
}

func (m Move) To() int                        { return int(m & 0x3F) }
func (m Move) From() int                      { return int(m>>6) & 0x3F }
func (m Move) PromotionPiece() PromotionPiece { return PromotionPiece(m>>12) & 0x3 }
func (m Move) Kind() MoveKind                 { return MoveKind(m>>14) & 0x3 }

// MoveList stores moves in a preallocated array so that move generation
// never needs a heap allocation. 218 is the largest known legal-move count
// for a single chess position.
// See https://www.talkchess.com/forum/viewtopic.php?t=61792
type MoveList struct {
	Moves [218]Move
	Len   int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

// Square2String maps a square index to its algebraic name.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Each square, using little-endian rank-file mapping: A1 is the LSB, H8 the
// MSB. File increases with +1, rank increases with +8.
const (
	A1 int = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare indicates the absence of an en-passant target.
const NoSquare = -1

// Rank masks, used for promotion/double-push detection.
const (
	FirstRank   uint64 = 0xFF
	SecondRank  uint64 = FirstRank << 8
	FourthRank  uint64 = FirstRank << 24
	FifthRank   uint64 = FirstRank << 32
	SeventhRank uint64 = FirstRank << 48
	EighthRank  uint64 = FirstRank << 56
)

// CastlingRights is a 4-bit flag set of surviving castling rights.
//
//	bit 0: white kingside (O-O)
//	bit 1: white queenside (O-O-O)
//	bit 2: black kingside (O-O)
//	bit 3: black queenside (O-O-O)
type CastlingRights = uint8

const (
	CastlingWK CastlingRights = 1 << iota
	CastlingWQ
	CastlingBK
	CastlingBQ
)
