// Package bitutil implements helpful bit utilities used in move generation
// and perft driving logic: LSB scanning and the sliding-fill primitive that
// every attack/check/pin mask in package movegen is built from.
package bitutil

// Edge masks, named after the files they cover. Used as the post-shift mask
// that removes the spurious bit a left/right shift produces when it would
// have walked off the board; the two-file masks serve the knight's two-file
// jumps.
const (
	FileA  uint64 = 0x0101010101010101
	FileH  uint64 = 0x8080808080808080
	FileAB uint64 = FileA | FileA<<1
	FileGH uint64 = FileH | FileH>>1
)

// Dir selects which way Slide shifts the bit-set on each iteration.
type Dir uint8

const (
	Left Dir = iota
	Right
)

// Slide dilates pieces by repeatedly shifting it step bits in direction dir,
// stopping propagation at blockers and masking away any bit that would have
// wrapped around the board edge named by edge. The result INCLUDES the first
// blocker hit along each ray (needed for capture targets) but propagates no
// further.
//
// Six extra iterations (seven shifts total, including the first) are enough
// to sweep a full rank, file or diagonal: the longest ray on an 8x8 board is
// 7 squares.
func Slide(pieces uint64, step uint8, blockers, edge uint64, dir Dir) uint64 {
	var mask uint64
	if dir == Left {
		mask = (pieces << step) &^ edge
	} else {
		mask = (pieces >> step) &^ edge
	}

	for range 6 {
		if dir == Left {
			mask |= ((mask &^ blockers) << step) &^ edge
		} else {
			mask |= ((mask &^ blockers) >> step) &^ edge
		}
	}

	return mask
}

// Precalculated magic used to form indices for the bitScanLookup array.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// Precalculated lookup table of LSB indices for 64 uints.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the least significant set bit of bitboard.
// Callers must not pass an empty bitboard.
func BitScan(bitboard uint64) int {
	return bitScanLookup[(bitboard&-bitboard)*bitscanMagic>>58]
}

// PopLSB removes the least significant bit from bitboard and returns its
// index, or -1 if bitboard is empty.
func PopLSB(bitboard *uint64) int {
	if *bitboard == 0 {
		return -1
	}

	lsb := BitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// CountBits returns the number of bits set in bitboard.
func CountBits(bitboard uint64) int {
	var cnt int
	for bitboard > 0 {
		cnt++
		bitboard &= bitboard - 1
	}
	return cnt
}
