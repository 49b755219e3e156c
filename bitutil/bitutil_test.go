package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlideRookOnEmptyBoard(t *testing.T) {
	// Rook on a1 (bit 0) sliding up the a-file on an empty board reaches
	// every other square on the file (the origin square is not included).
	got := Slide(1, 8, 0, 0, Left)
	assert.Equal(t, FileA&^1, got)
}

func TestSlideStopsAtBlocker(t *testing.T) {
	// Rook on a1 sliding up the a-file, blocked by a piece on a4 (bit 24):
	// the ray includes a4 (capture target) but nothing past it.
	const a4 = uint64(1) << 24
	got := Slide(1, 8, a4, 0, Left)
	want := uint64(1)<<8 | uint64(1)<<16 | a4
	assert.Equal(t, want, got)
}

func TestSlideRightwardNoWraparound(t *testing.T) {
	// Rook on h1 (bit 7) sliding right (towards increasing file) must not
	// wrap onto a2.
	const h1 = uint64(1) << 7
	got := Slide(h1, 1, 0, FileA, Left)
	assert.Zero(t, got)
}

func TestBitScan(t *testing.T) {
	for i := 0; i < 64; i++ {
		var bitboard uint64 = 1 << i

		got := BitScan(bitboard)
		if got != i {
			t.Fatalf("Expected: %d got %d", i, got)
		}
	}
}

func TestPopLSB(t *testing.T) {
	for i := 0; i < 64; i++ {
		var bitboard uint64 = 1 << i

		got := PopLSB(&bitboard)
		if got != i {
			t.Fatalf("Expected %d got %d", i, got)
		}
	}

	var bitboard uint64 = 0
	got := PopLSB(&bitboard)
	if got != -1 {
		t.Fatalf("Expected -1 got %d", got)
	}
}

func TestCountBits(t *testing.T) {
	var got int

	got = CountBits(0x8000000000000000)
	if got != 1 {
		t.Fatalf("Expected 1 got %d", got)
	}

	got = CountBits(0x0)
	if got != 0 {
		t.Fatalf("Expected 0 got %d", got)
	}

	got = CountBits(0xFFFFFFFFFFFFFFFF)
	if got != 64 {
		t.Fatalf("Expected 64 got %d", got)
	}
}

func BenchmarkBitScan(b *testing.B) {
	for b.Loop() {
		BitScan(0x8000000000000000)
	}
}

func BenchmarkPopLSB(b *testing.B) {
	var bitboard uint64 = 0xFFFFFFFFFFFFFFFF

	for b.Loop() {
		PopLSB(&bitboard)
	}
}

func BenchmarkCountBits(b *testing.B) {
	for b.Loop() {
		CountBits(0xFFFFFFFFFFFFFFFF)
	}
}
