// Package perft counts the leaf nodes of the legal move tree to a fixed
// depth, the standard correctness benchmark for a move generator: any
// divergence from the known-good node counts pinpoints a move generation
// bug long before it would otherwise surface.
//
// See https://www.chessprogramming.org/Perft_Results
package perft

import (
	"sync"

	"github.com/fenwick-chess/bbperft/board"
	"github.com/fenwick-chess/bbperft/movegen"
)

// Perft walks the legal move tree rooted at p to the given depth and
// returns the number of leaf nodes. depth 0 counts the root itself as one
// node; depth 1 is the same as the root's legal move count.
func Perft(p board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var v movegen.CountingVisitor
	if depth == 1 {
		movegen.Generate(&p, &v)
		return v.Count
	}

	var rv movegen.MoveRecordingVisitor
	movegen.Generate(&p, &rv)

	var nodes int64
	for _, rm := range rv.Moves {
		nodes += Perft(rm.Successor, depth-1)
	}
	return nodes
}

// DivideEntry pairs a root move with the leaf count of the subtree it leads
// to, for comparing against a reference engine's per-move breakdown.
type DivideEntry struct {
	Move  board.Move
	Nodes int64
}

// Divide returns Perft(depth) broken down per legal root move. A depth
// below 1 is treated as depth 1 (each root move counts one node). When
// parallel is true, each root move's subtree is walked on its own
// goroutine — safe because board.Position is copied by value into every
// successor, so sibling subtrees never share mutable state.
func Divide(p board.Position, depth int, parallel bool) []DivideEntry {
	var rv movegen.MoveRecordingVisitor
	movegen.Generate(&p, &rv)

	entries := make([]DivideEntry, len(rv.Moves))

	if depth <= 1 {
		for i, rm := range rv.Moves {
			entries[i] = DivideEntry{Move: rm.Move, Nodes: 1}
		}
		return entries
	}

	if !parallel {
		for i, rm := range rv.Moves {
			entries[i] = DivideEntry{Move: rm.Move, Nodes: Perft(rm.Successor, depth-1)}
		}
		return entries
	}

	var wg sync.WaitGroup
	wg.Add(len(rv.Moves))
	for i, rm := range rv.Moves {
		go func(i int, rm movegen.RecordedMove) {
			defer wg.Done()
			entries[i] = DivideEntry{Move: rm.Move, Nodes: Perft(rm.Successor, depth-1)}
		}(i, rm)
	}
	wg.Wait()
	return entries
}

// Total sums the node counts of a Divide breakdown.
func Total(entries []DivideEntry) int64 {
	var n int64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}
