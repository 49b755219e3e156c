package movegen

import (
	"github.com/fenwick-chess/bbperft/bitutil"
	"github.com/fenwick-chess/bbperft/board"
)

// Visitor receives fully legal moves from Generate, one callback per move
// kind. It is handed the position BEFORE the move (by value, so it's free to
// mutate its own copy) together with enough information to play the move
// itself — the generator never constructs a successor position on its own,
// so a caller that only wants a count (CountingVisitor) never allocates.
type Visitor interface {
	OnMove(pos board.Position, white bool, from, to int)
	OnKingMove(pos board.Position, white bool, from, to int)
	OnEnPassant(pos board.Position, white bool, from, to int)
	OnPawnPush2(pos board.Position, white bool, from int)
	OnPromotion(pos board.Position, white bool, from, to int, promo board.PromotionPiece)
	OnKingsideCastle(pos board.Position, white bool)
	OnQueensideCastle(pos board.Position, white bool)
}

// Generate emits every legal move for the side to move in p by calling the
// matching method of v. It gives up early (generating only king moves) when
// checkerCount reports check from more than one kind of attacker, since no
// non-king move can resolve a double check. Two checkers of the same kind
// count once there; for those the check mask itself leaves no non-king move.
func Generate(p *board.Position, v Visitor) {
	white := p.Turn == board.White

	generateKingMoves(p, white, v)

	if checkerCount(p, white) > 1 {
		return
	}

	generatePawnMoves(p, white, v)
	generateKnightMoves(p, white, v)
	generateDiagonalMoves(p, white, v)
	generateOrthoMoves(p, white, v)
}

// checkerCount counts how many of the four attacker kinds (knight, pawn,
// diagonal slider, orthogonal slider) currently give check. Each kind adds at
// most one, however many pieces of that kind give check.
func checkerCount(p *board.Position, white bool) int {
	king := p.ColourKing(white)
	cnt := 0

	if knightLikeAttackMask(king)&p.ColourKnights(!white) != 0 {
		cnt++
	}
	if pawnLikeAttackMask(king, white)&p.ColourPawns(!white) != 0 {
		cnt++
	}
	if diagonalLikeAttackMask(p, king)&p.ColourDiagonal(!white) != 0 {
		cnt++
	}
	if orthoLikeAttackMask(p, king)&p.ColourOrtho(!white) != 0 {
		cnt++
	}
	return cnt
}

func promoRank(white bool) uint64 {
	if white {
		return board.EighthRank
	}
	return board.FirstRank
}

func emitPawnTo(p *board.Position, white bool, from, to int, v Visitor) {
	if uint64(1)<<to&promoRank(white) != 0 {
		for _, promo := range [4]board.PromotionPiece{board.PromotionQueen, board.PromotionRook, board.PromotionBishop, board.PromotionKnight} {
			v.OnPromotion(*p, white, from, to, promo)
		}
		return
	}
	v.OnMove(*p, white, from, to)
}

func generatePawnMoves(p *board.Position, white bool, v Visitor) {
	check := checkMask(p, white)
	horPins := horizontalPinMask(p, white)
	orthoPins := orthoPinMask(p, white)
	neDiagPins := diagNEPinMask(p, white)
	nwDiagPins := diagNWPinMask(p, white)
	diagPins := neDiagPins | nwDiagPins

	occ := p.Occupancy()
	empty := ^occ
	emptyFree := empty & check

	base := p.ColourPawns(white)
	upPawns := base &^ diagPins &^ horPins
	nePawns := base &^ nwDiagPins &^ orthoPins // captures along the a1-h8 diagonal (step +9 white, -9 black)
	nwPawns := base &^ neDiagPins &^ orthoPins // captures along the a8-h1 diagonal (step +7 white, -7 black)

	// An en-passant capture resolves a check not by landing on the checker's
	// square but by removing the checker from an adjacent one, so it needs
	// its own check-resolution test: legal whenever there is no check, or
	// when the pawn it captures sits on a check-resolving square.
	enemy := p.ColourPieces(!white) & check
	if p.EP != board.NoSquare {
		var capturedSquare int
		if white {
			capturedSquare = p.EP - 8
		} else {
			capturedSquare = p.EP + 8
		}
		if check == fullMask || check&(uint64(1)<<capturedSquare) != 0 {
			enemy |= uint64(1) << p.EP
		}
	}

	var up1, up2, ne, nw uint64
	if white {
		up1 = (emptyFree >> 8) & upPawns
		up2 = (emptyFree>>16)&(empty>>8)&upPawns&board.SecondRank
		ne = (enemy >> 9) & nePawns &^ bitutil.FileH
		nw = (enemy >> 7) & nwPawns &^ bitutil.FileA
	} else {
		up1 = (emptyFree << 8) & upPawns
		up2 = (emptyFree<<16)&(empty<<8)&upPawns&board.SeventhRank
		ne = (enemy << 9) & nePawns &^ bitutil.FileA
		nw = (enemy << 7) & nwPawns &^ bitutil.FileH
	}

	for up1 != 0 {
		from := bitutil.PopLSB(&up1)
		var to int
		if white {
			to = from + 8
		} else {
			to = from - 8
		}
		emitPawnTo(p, white, from, to, v)
	}

	for up2 != 0 {
		from := bitutil.PopLSB(&up2)
		v.OnPawnPush2(*p, white, from)
	}

	for ne != 0 {
		from := bitutil.PopLSB(&ne)
		var to int
		if white {
			to = from + 9
		} else {
			to = from - 9
		}
		emitPawnCapture(p, white, from, to, v)
	}

	for nw != 0 {
		from := bitutil.PopLSB(&nw)
		var to int
		if white {
			to = from + 7
		} else {
			to = from - 7
		}
		emitPawnCapture(p, white, from, to, v)
	}
}

// emitPawnCapture distinguishes an en-passant capture (destination is the EP
// square and currently empty) from an ordinary diagonal capture, and, for
// ordinary captures, checks whether it lands on the promotion rank.
func emitPawnCapture(p *board.Position, white bool, from, to int, v Visitor) {
	if to == p.EP {
		if legalEnPassant(p, white, from) {
			v.OnEnPassant(*p, white, from, to)
		}
		return
	}
	emitPawnTo(p, white, from, to, v)
}

// legalEnPassant applies the two-deep horizontal pin guard: an en-passant
// capture removes both the moving pawn and the captured pawn from the same
// rank in one move, which can expose a horizontal discovered check that an
// ordinary one-deep pin test can't see.
func legalEnPassant(p *board.Position, white bool, from int) bool {
	pinned := horizontalPinThroughTwo(p, white)
	fromBit := uint64(1) << from
	return pinned&fromBit == 0
}

func generateKnightMoves(p *board.Position, white bool, v Visitor) {
	base := p.EnemyOrEmpty(white) & checkMask(p, white)
	pinned := orthoPinMask(p, white) | diagNEPinMask(p, white) | diagNWPinMask(p, white)

	knights := p.ColourKnights(white) &^ pinned
	for knights != 0 {
		from := bitutil.PopLSB(&knights)
		to := knightLikeAttackMask(uint64(1)<<from) & base
		for to != 0 {
			t := bitutil.PopLSB(&to)
			v.OnMove(*p, white, from, t)
		}
	}
}

func generateDiagonalMoves(p *board.Position, white bool, v Visitor) {
	base := p.EnemyOrEmpty(white) & checkMask(p, white)
	orthoPins := orthoPinMask(p, white)
	diagPins := diagNEPinMask(p, white) | diagNWPinMask(p, white)

	free := p.ColourDiagonal(white) &^ diagPins &^ orthoPins
	for free != 0 {
		from := bitutil.PopLSB(&free)
		to := diagonalLikeAttackMask(p, uint64(1)<<from) & base
		for to != 0 {
			t := bitutil.PopLSB(&to)
			v.OnMove(*p, white, from, t)
		}
	}

	pinned := p.ColourDiagonal(white) & diagPins
	for pinned != 0 {
		from := bitutil.PopLSB(&pinned)
		to := diagonalLikeAttackMask(p, uint64(1)<<from) & base & diagPins
		for to != 0 {
			t := bitutil.PopLSB(&to)
			v.OnMove(*p, white, from, t)
		}
	}
}

func generateOrthoMoves(p *board.Position, white bool, v Visitor) {
	base := p.EnemyOrEmpty(white) & checkMask(p, white)
	orthoPins := orthoPinMask(p, white)
	diagPins := diagNEPinMask(p, white) | diagNWPinMask(p, white)

	free := p.ColourOrtho(white) &^ diagPins &^ orthoPins
	for free != 0 {
		from := bitutil.PopLSB(&free)
		to := orthoLikeAttackMask(p, uint64(1)<<from) & base
		for to != 0 {
			t := bitutil.PopLSB(&to)
			v.OnMove(*p, white, from, t)
		}
	}

	pinned := p.ColourOrtho(white) & orthoPins
	for pinned != 0 {
		from := bitutil.PopLSB(&pinned)
		to := orthoLikeAttackMask(p, uint64(1)<<from) & base & orthoPins
		for to != 0 {
			t := bitutil.PopLSB(&to)
			v.OnMove(*p, white, from, t)
		}
	}
}

// generateKingMoves emits king steps and castles. A king may never step onto
// a square the enemy attacks, and, for each axis currently delivering check,
// it additionally may not step to the square immediately behind itself on
// that axis: a slider's attack continues through the square the king is
// vacating (an X-ray), so that retreat looks safe under a naive "is the
// destination attacked" test but isn't.
func generateKingMoves(p *board.Position, white bool, v Visitor) {
	enemyAttacks := attackMask(p, !white)
	king := p.ColourKing(white)
	from := bitutil.BitScan(king)

	to := kingLikeAttackMask(king) & p.EnemyOrEmpty(white) &^ enemyAttacks
	enemies := p.ColourPieces(!white)

	if horizontalCheckMask(p, white) != fullMask {
		to &^= (((king >> 1) &^ bitutil.FileH) | ((king << 1) &^ bitutil.FileA)) &^ enemies
	}
	if verticalCheckMask(p, white) != fullMask {
		to &^= ((king >> 8) | (king << 8)) &^ enemies
	}
	if diagNECheckMask(p, white) != fullMask {
		to &^= (((king >> 9) &^ bitutil.FileH) | ((king << 9) &^ bitutil.FileA)) &^ enemies
	}
	if diagNWCheckMask(p, white) != fullMask {
		to &^= (((king >> 7) &^ bitutil.FileA) | ((king << 7) &^ bitutil.FileH)) &^ enemies
	}

	for to != 0 {
		t := bitutil.PopLSB(&to)
		v.OnKingMove(*p, white, from, t)
	}

	generateCastles(p, white, enemyAttacks, v)
}

func generateCastles(p *board.Position, white bool, enemyAttacks uint64, v Visitor) {
	occ := p.Occupancy()

	if white {
		if p.Castling&board.CastlingWK != 0 {
			if occ&(sqMask(board.F1)|sqMask(board.G1)) == 0 &&
				enemyAttacks&(sqMask(board.E1)|sqMask(board.F1)|sqMask(board.G1)) == 0 {
				v.OnKingsideCastle(*p, white)
			}
		}
		if p.Castling&board.CastlingWQ != 0 {
			if occ&(sqMask(board.B1)|sqMask(board.C1)|sqMask(board.D1)) == 0 &&
				enemyAttacks&(sqMask(board.E1)|sqMask(board.D1)|sqMask(board.C1)) == 0 {
				v.OnQueensideCastle(*p, white)
			}
		}
		return
	}

	if p.Castling&board.CastlingBK != 0 {
		if occ&(sqMask(board.F8)|sqMask(board.G8)) == 0 &&
			enemyAttacks&(sqMask(board.E8)|sqMask(board.F8)|sqMask(board.G8)) == 0 {
			v.OnKingsideCastle(*p, white)
		}
	}
	if p.Castling&board.CastlingBQ != 0 {
		if occ&(sqMask(board.B8)|sqMask(board.C8)|sqMask(board.D8)) == 0 &&
			enemyAttacks&(sqMask(board.E8)|sqMask(board.D8)|sqMask(board.C8)) == 0 {
			v.OnQueensideCastle(*p, white)
		}
	}
}

func sqMask(sq int) uint64 { return uint64(1) << sq }
