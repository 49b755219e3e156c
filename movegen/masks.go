// Package movegen generates fully legal chess moves from a board.Position.
// Nothing here mutates the board directly in place: callers drive generation
// through a Visitor, which decides for itself how (or whether) to materialise
// each successor.
package movegen

import (
	"github.com/fenwick-chess/bbperft/bitutil"
	"github.com/fenwick-chess/bbperft/board"
)

// attackMask returns every square attacked by the given side, used both to
// restrict king moves and to test castling squares for check.
func attackMask(p *board.Position, white bool) uint64 {
	return pawnAttackMask(p, white) |
		knightLikeAttackMask(p.ColourKnights(white)) |
		diagonalLikeAttackMask(p, p.ColourDiagonal(white)) |
		orthoLikeAttackMask(p, p.ColourOrtho(white)) |
		kingLikeAttackMask(p.ColourKing(white))
}

func pawnAttackMask(p *board.Position, white bool) uint64 {
	return pawnLikeAttackMask(p.ColourPawns(white), white)
}

// pawnLikeAttackMask returns the squares the given pawn set attacks, ignoring
// whether those squares hold a capturable piece. Used for both real pawns and
// the king's "could a pawn attack me from here" check test.
func pawnLikeAttackMask(pawns uint64, white bool) uint64 {
	if white {
		return ((pawns << 9) &^ bitutil.FileA) | ((pawns << 7) &^ bitutil.FileH)
	}
	return ((pawns >> 7) &^ bitutil.FileA) | ((pawns >> 9) &^ bitutil.FileH)
}

func knightLikeAttackMask(knights uint64) uint64 {
	r1 := knights &^ bitutil.FileA
	r2 := knights &^ bitutil.FileAB
	l1 := knights &^ bitutil.FileH
	l2 := knights &^ bitutil.FileGH
	inner := (r1 >> 1) | (l1 << 1)
	outer := (r2 >> 2) | (l2 << 2)
	return (outer << 8) | (outer >> 8) | (inner << 16) | (inner >> 16)
}

func diagonalLikeAttackMask(p *board.Position, pieces uint64) uint64 {
	occ := p.Occupancy()
	ne := bitutil.Slide(pieces, 9, occ, bitutil.FileA, bitutil.Left)
	nw := bitutil.Slide(pieces, 7, occ, bitutil.FileH, bitutil.Left)
	se := bitutil.Slide(pieces, 7, occ, bitutil.FileA, bitutil.Right)
	sw := bitutil.Slide(pieces, 9, occ, bitutil.FileH, bitutil.Right)
	return ne | nw | se | sw
}

func orthoLikeAttackMask(p *board.Position, pieces uint64) uint64 {
	occ := p.Occupancy()
	e := bitutil.Slide(pieces, 1, occ, bitutil.FileA, bitutil.Left)
	w := bitutil.Slide(pieces, 1, occ, bitutil.FileH, bitutil.Right)
	n := bitutil.Slide(pieces, 8, occ, 0, bitutil.Left)
	s := bitutil.Slide(pieces, 8, occ, 0, bitutil.Right)
	return e | w | n | s
}

func kingLikeAttackMask(king uint64) uint64 {
	n := king << 8
	s := king >> 8
	around := king | n | s
	return ((around >> 1) &^ bitutil.FileH) | ((around << 1) &^ bitutil.FileA) | n | s
}

// fullMask is the "unrestricted" value each per-axis check mask below starts
// from. A mask keeps it unless a slider checks the king along that axis, in
// which case it narrows to the ray between king and checker (inclusive),
// which is also the set of squares that resolve the check for a non-king
// mover.
const fullMask = ^uint64(0)

func horizontalCheckMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyOrtho := p.ColourOrtho(!white)
	mask := fullMask
	if r := bitutil.Slide(king, 1, occ, bitutil.FileH, bitutil.Right); r&enemyOrtho != 0 {
		mask &= r
	}
	if r := bitutil.Slide(king, 1, occ, bitutil.FileA, bitutil.Left); r&enemyOrtho != 0 {
		mask &= r
	}
	return mask
}

func verticalCheckMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyOrtho := p.ColourOrtho(!white)
	mask := fullMask
	if r := bitutil.Slide(king, 8, occ, 0, bitutil.Left); r&enemyOrtho != 0 {
		mask &= r
	}
	if r := bitutil.Slide(king, 8, occ, 0, bitutil.Right); r&enemyOrtho != 0 {
		mask &= r
	}
	return mask
}

// diagNECheckMask checks the a1-h8-parallel diagonal through the king (step 9).
func diagNECheckMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyDiag := p.ColourDiagonal(!white)
	mask := fullMask
	if r := bitutil.Slide(king, 9, occ, bitutil.FileA, bitutil.Left); r&enemyDiag != 0 {
		mask &= r
	}
	if r := bitutil.Slide(king, 9, occ, bitutil.FileH, bitutil.Right); r&enemyDiag != 0 {
		mask &= r
	}
	return mask
}

// diagNWCheckMask checks the a8-h1-parallel diagonal through the king (step 7).
func diagNWCheckMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyDiag := p.ColourDiagonal(!white)
	mask := fullMask
	if r := bitutil.Slide(king, 7, occ, bitutil.FileH, bitutil.Left); r&enemyDiag != 0 {
		mask &= r
	}
	if r := bitutil.Slide(king, 7, occ, bitutil.FileA, bitutil.Right); r&enemyDiag != 0 {
		mask &= r
	}
	return mask
}

// checkMask returns the set of squares a non-king piece may move to in order
// to resolve any current check: the checking piece's square (a capture) or a
// square on the ray between king and a sliding checker (a block). When the
// king isn't in check this is fullMask, i.e. no restriction. Double checks
// collapse it to 0 along one of the axis tests below, correctly forbidding
// every non-king move.
func checkMask(p *board.Position, white bool) uint64 {
	mask := horizontalCheckMask(p, white) &
		verticalCheckMask(p, white) &
		diagNECheckMask(p, white) &
		diagNWCheckMask(p, white)

	king := p.ColourKing(white)
	enemyKnights := p.ColourKnights(!white)
	if attackers := knightLikeAttackMask(king) & enemyKnights; attackers != 0 {
		mask &= attackers
	}

	enemyPawns := p.ColourPawns(!white)
	if attackers := pawnLikeAttackMask(king, white) & enemyPawns; attackers != 0 {
		mask &= attackers
	}

	return mask
}

// pinRay slides one step from the king, then one more step from whatever it
// first hit; if that second ray reaches an enemy slider of the matching
// type, both steps together form the pin ray (the pinned piece sits
// somewhere on r1, the pinner on r2).
func pinRay(king uint64, step uint8, occ, edge1, edge2, enemySlider uint64, dir1, dir2 bitutil.Dir) uint64 {
	r1 := bitutil.Slide(king, step, occ, edge1, dir1)
	r2 := bitutil.Slide(r1&occ, step, occ, edge2, dir2)
	if r2&enemySlider != 0 {
		return r1 | r2
	}
	return 0
}

func horizontalPinMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyOrtho := p.ColourOrtho(!white)
	east := pinRay(king, 1, occ, bitutil.FileA, bitutil.FileA, enemyOrtho, bitutil.Left, bitutil.Left)
	west := pinRay(king, 1, occ, bitutil.FileH, bitutil.FileH, enemyOrtho, bitutil.Right, bitutil.Right)
	return east | west
}

func verticalPinMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyOrtho := p.ColourOrtho(!white)
	north := pinRay(king, 8, occ, 0, 0, enemyOrtho, bitutil.Left, bitutil.Left)
	south := pinRay(king, 8, occ, 0, 0, enemyOrtho, bitutil.Right, bitutil.Right)
	return north | south
}

func orthoPinMask(p *board.Position, white bool) uint64 {
	return horizontalPinMask(p, white) | verticalPinMask(p, white)
}

func diagNEPinMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyDiag := p.ColourDiagonal(!white)
	ne := pinRay(king, 9, occ, bitutil.FileA, bitutil.FileA, enemyDiag, bitutil.Left, bitutil.Left)
	sw := pinRay(king, 9, occ, bitutil.FileH, bitutil.FileH, enemyDiag, bitutil.Right, bitutil.Right)
	return ne | sw
}

func diagNWPinMask(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyDiag := p.ColourDiagonal(!white)
	nw := pinRay(king, 7, occ, bitutil.FileH, bitutil.FileH, enemyDiag, bitutil.Left, bitutil.Left)
	se := pinRay(king, 7, occ, bitutil.FileA, bitutil.FileA, enemyDiag, bitutil.Right, bitutil.Right)
	return nw | se
}

func diagonalPinMask(p *board.Position, white bool) uint64 {
	return diagNEPinMask(p, white) | diagNWPinMask(p, white)
}

// horizontalPinThroughTwo is horizontalPinMask but tolerates two intervening
// occupied squares on the king's side of the pinner instead of one. An
// en-passant capture removes two pawns from the same rank in one move, so a
// pin that only becomes live once BOTH pawns are gone needs this two-deep
// version to be caught; the ordinary one-deep pin test would miss it because
// today, with both pawns still on the board, the ray never reaches the
// pinning rook/queen. The 3-hop ray below already walks past both the moving
// pawn and the captured pawn on the real (unmodified) occupancy — pre-masking
// either square out would shift which hop lands on the rook/queen and break
// the detection.
func horizontalPinThroughTwo(p *board.Position, white bool) uint64 {
	king := p.ColourKing(white)
	occ := p.Occupancy()
	enemyOrtho := p.ColourOrtho(!white)

	east := pinThroughTwoRay(king, 1, occ, bitutil.FileA, enemyOrtho, bitutil.Left)
	west := pinThroughTwoRay(king, 1, occ, bitutil.FileH, enemyOrtho, bitutil.Right)
	return east | west
}

// pinThroughTwoRay slides past up to two occupied squares (instead of
// pinRay's one) looking for an enemy slider beyond them.
func pinThroughTwoRay(king uint64, step uint8, occ, edge, enemySlider uint64, dir bitutil.Dir) uint64 {
	r1 := bitutil.Slide(king, step, occ, edge, dir)
	r2 := bitutil.Slide(r1&occ, step, occ, edge, dir)
	r3 := bitutil.Slide(r2&occ, step, occ, edge, dir)
	if r3&enemySlider != 0 {
		return r1 | r2 | r3
	}
	return 0
}
