// Package uci formats and parses pseudo-UCI move text: <from><to>[promo],
// e.g. "e2e4" or "e7e8q". This is just the move-text fragment of the UCI
// protocol, not a full engine interface.
package uci

import (
	"fmt"

	"github.com/fenwick-chess/bbperft/board"
)

var promoLetter = [4]byte{'n', 'b', 'r', 'q'}

// Format renders m as pseudo-UCI move text.
func Format(m board.Move) string {
	s := board.Square2String[m.From()] + board.Square2String[m.To()]
	if m.Kind() == board.MovePromotion {
		s += string(promoLetter[m.PromotionPiece()])
	}
	return s
}

// Parse resolves UCI move text against the legal moves available from pos,
// matching on origin, destination and (for promotions) the promoted piece.
// Move text alone doesn't carry enough information to reconstruct a packed
// board.Move correctly (it can't distinguish a normal king step from a
// castle, or tell whether a pawn's diagonal step is a capture or an
// en-passant capture) so resolving it against the legal move list already
// computed by package movegen is the only sound way to parse it.
func Parse(text string, legal []board.Move) (board.Move, error) {
	from, to, promo, hasPromo, err := split(text)
	if err != nil {
		return 0, err
	}

	for _, m := range legal {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Kind() == board.MovePromotion {
			if hasPromo && m.PromotionPiece() == promo {
				return m, nil
			}
			continue
		}
		if !hasPromo {
			return m, nil
		}
	}

	return 0, fmt.Errorf("uci: %q is not a legal move in this position", text)
}

func split(text string) (from, to int, promo board.PromotionPiece, hasPromo bool, err error) {
	if len(text) != 4 && len(text) != 5 {
		return 0, 0, 0, false, fmt.Errorf("uci: malformed move text %q", text)
	}

	from, err = parseSquare(text[0:2])
	if err != nil {
		return 0, 0, 0, false, err
	}
	to, err = parseSquare(text[2:4])
	if err != nil {
		return 0, 0, 0, false, err
	}

	if len(text) == 5 {
		hasPromo = true
		switch text[4] {
		case 'n':
			promo = board.PromotionKnight
		case 'b':
			promo = board.PromotionBishop
		case 'r':
			promo = board.PromotionRook
		case 'q':
			promo = board.PromotionQueen
		default:
			return 0, 0, 0, false, fmt.Errorf("uci: invalid promotion piece %q", text[4])
		}
	}

	return from, to, promo, hasPromo, nil
}

func parseSquare(s string) (int, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("uci: invalid square %q", s)
	}
	return int(s[0]-'a') + int(s[1]-'1')*8, nil
}
