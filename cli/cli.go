// Package cli implements a line-oriented REPL for exploring positions and
// running perft from a terminal: set a position from FEN, play a sequence
// of moves, and measure the legal move tree below the result.
package cli

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/fenwick-chess/bbperft/board"
	"github.com/fenwick-chess/bbperft/fen"
	"github.com/fenwick-chess/bbperft/movegen"
	"github.com/fenwick-chess/bbperft/perft"
	"github.com/fenwick-chess/bbperft/uci"
)

var pieceSymbol = map[board.PieceTag][2]rune{
	board.TagPawn:   {'♙', '♟'},
	board.TagKnight: {'♘', '♞'},
	board.TagBishop: {'♗', '♝'},
	board.TagRook:   {'♖', '♜'},
	board.TagQueen:  {'♕', '♛'},
	board.TagKing:   {'♔', '♚'},
}

var whitePieceColor = color.New(color.FgHiWhite, color.Bold)
var blackPieceColor = color.New(color.FgHiBlack, color.Bold)

// FormatPosition renders a full position as an 8x8 board plus its metadata,
// colouring white and black pieces distinctly when writing to a terminal.
func FormatPosition(p board.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d  ", rank+1))
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			tag, white, ok := p.PieceAt(sq)
			if !ok {
				sb.WriteString(".  ")
				continue
			}
			symbols := pieceSymbol[tag]
			if white {
				sb.WriteString(whitePieceColor.Sprintf("%c", symbols[0]))
			} else {
				sb.WriteString(blackPieceColor.Sprintf("%c", symbols[1]))
			}
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	sb.WriteString("Active color: ")
	if p.Turn == board.White {
		sb.WriteString("white\n")
	} else {
		sb.WriteString("black\n")
	}

	sb.WriteString("En passant: ")
	if p.EP == board.NoSquare {
		sb.WriteString("none\n")
	} else {
		sb.WriteString(board.Square2String[p.EP] + "\n")
	}

	sb.WriteString("Castling rights: ")
	if p.Castling == 0 {
		sb.WriteString("-")
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
	sb.WriteByte('\n')

	return sb.String()
}

// legalMoves returns every legal move available from p, for resolving
// pseudo-UCI move text and for the "move" command's illegal-move warning.
func legalMoves(p board.Position) []board.Move {
	var v movegen.MoveRecordingVisitor
	movegen.Generate(&p, &v)
	moves := make([]board.Move, len(v.Moves))
	for i, rm := range v.Moves {
		moves[i] = rm.Move
	}
	return moves
}

// Run starts the REPL, reading lines from a liner instance and writing
// output to out. It returns when the user issues "quit" or closes stdin.
func Run(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	pos, _ := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	for {
		input, err := line.Prompt("bbperft> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return err
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "fen":
			p, err := fen.Parse(strings.Join(fields[1:], " "))
			if err != nil {
				log.Printf("warning: %v", err)
				continue
			}
			pos = p
			fmt.Fprint(out, FormatPosition(pos))

		case "move":
			for _, text := range fields[1:] {
				m, err := uci.Parse(text, legalMoves(pos))
				if err != nil {
					log.Printf("warning: %v", err)
					break
				}
				pos = pos.Apply(m)
			}
			fmt.Fprint(out, FormatPosition(pos))

		case "perft":
			depth, err := parseDepth(fields)
			if err != nil {
				log.Printf("warning: %v", err)
				continue
			}
			start := time.Now()
			entries := perft.Divide(pos, depth, true)
			for _, e := range entries {
				fmt.Fprintf(out, "%s: %d\n", uci.Format(e.Move), e.Nodes)
			}
			fmt.Fprintf(out, "total: %d\n", perft.Total(entries))
			fmt.Fprintf(out, "elapsed: %s\n", time.Since(start))

		case "quit":
			return nil

		default:
			log.Printf("warning: unknown command %q", fields[0])
		}
	}
}

func parseDepth(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("usage: perft <depth>")
	}
	var depth int
	if _, err := fmt.Sscanf(fields[1], "%d", &depth); err != nil || depth < 0 {
		return 0, fmt.Errorf("invalid depth %q", fields[1])
	}
	return depth, nil
}
