// Package fen converts between Forsyth-Edwards Notation strings and
// board.Position. Unlike a bitboard array, a tagged board can represent an
// illegal square (two pieces, say) only by construction bugs elsewhere, so
// Parse validates the FEN text itself and returns an error rather than
// panicking on malformed input.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fenwick-chess/bbperft/board"
)

// Parse parses a FEN string into a Position. The halfmove and fullmove
// counters are read for validation but not retained: the core move
// generator has no use for them.
func Parse(fenStr string) (board.Position, error) {
	fields := strings.Fields(fenStr)
	if len(fields) != 6 {
		return board.Position{}, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	var p board.Position

	if err := parsePlacement(&p, fields[0]); err != nil {
		return board.Position{}, fmt.Errorf("fen: %w", err)
	}

	switch fields[1] {
	case "w":
		p.Turn = board.White
	case "b":
		p.Turn = board.Black
	default:
		return board.Position{}, fmt.Errorf("fen: invalid active colour %q", fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.Castling |= board.CastlingWK
			case 'Q':
				p.Castling |= board.CastlingWQ
			case 'k':
				p.Castling |= board.CastlingBK
			case 'q':
				p.Castling |= board.CastlingBQ
			default:
				return board.Position{}, fmt.Errorf("fen: invalid castling flag %q", c)
			}
		}
	}

	ep, err := parseSquare(fields[3])
	if err != nil {
		return board.Position{}, fmt.Errorf("fen: %w", err)
	}
	p.EP = ep

	if _, err := strconv.Atoi(fields[4]); err != nil {
		return board.Position{}, fmt.Errorf("fen: invalid halfmove counter %q", fields[4])
	}
	if _, err := strconv.Atoi(fields[5]); err != nil {
		return board.Position{}, fmt.Errorf("fen: invalid fullmove counter %q", fields[5])
	}

	return p, nil
}

func parsePlacement(p *board.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}

	for i, rank := range ranks {
		sq := (7 - i) * 8
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				sq += int(c - '0')
			default:
				tag, white, err := pieceFromSymbol(byte(c))
				if err != nil {
					return err
				}
				if sq < 0 || sq >= 64 {
					return fmt.Errorf("rank %d overflows the board", 8-i)
				}
				p.SetSquare(sq, tag, white)
				sq++
			}
		}
		if sq != (7-i)*8+8 {
			return fmt.Errorf("rank %d does not sum to 8 files", 8-i)
		}
	}
	return nil
}

func pieceFromSymbol(c byte) (board.PieceTag, bool, error) {
	white := c >= 'A' && c <= 'Z'
	switch c {
	case 'P', 'p':
		return board.TagPawn, white, nil
	case 'N', 'n':
		return board.TagKnight, white, nil
	case 'B', 'b':
		return board.TagBishop, white, nil
	case 'R', 'r':
		return board.TagRook, white, nil
	case 'Q', 'q':
		return board.TagQueen, white, nil
	case 'K', 'k':
		return board.TagKing, white, nil
	default:
		return 0, false, fmt.Errorf("invalid piece symbol %q", c)
	}
}

func parseSquare(s string) (int, error) {
	if s == "-" {
		return board.NoSquare, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	return int(s[0]-'a') + int(s[1]-'1')*8, nil
}

var pieceSymbol = map[board.PieceTag][2]byte{
	board.TagPawn:   {'P', 'p'},
	board.TagKnight: {'N', 'n'},
	board.TagBishop: {'B', 'b'},
	board.TagRook:   {'R', 'r'},
	board.TagQueen:  {'Q', 'q'},
	board.TagKing:   {'K', 'k'},
}

// Serialize renders p as a FEN string. Since Position carries no halfmove or
// fullmove counters, these are always emitted as "0 1".
func Serialize(p board.Position) string {
	var sb strings.Builder
	sb.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			tag, white, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			symbols := pieceSymbol[tag]
			if white {
				sb.WriteByte(symbols[0])
			} else {
				sb.WriteByte(symbols[1])
			}
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Turn == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if p.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.Castling&board.CastlingWK != 0 {
			sb.WriteByte('K')
		}
		if p.Castling&board.CastlingWQ != 0 {
			sb.WriteByte('Q')
		}
		if p.Castling&board.CastlingBK != 0 {
			sb.WriteByte('k')
		}
		if p.Castling&board.CastlingBQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if p.EP == board.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteByte("abcdefgh"[p.EP%8])
		sb.WriteByte('1' + byte(p.EP/8))
	}

	sb.WriteString(" 0 1")
	return sb.String()
}
