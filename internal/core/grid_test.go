package core

import "testing"

func TestByteGridAccessors(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	g.Set(4, 0, 9)
	g.Set(-1, 1, 9)

	if got := g.At(3, 2); got != 7 {
		t.Fatalf("At(3,2)=%d, expected 7", got)
	}
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("row-major index holds %d, expected 7", got)
	}
	sum := 0
	for _, v := range g.Cells() {
		sum += int(v)
	}
	if sum != 7 {
		t.Fatalf("out-of-range writes landed in the buffer (sum %d)", sum)
	}
	if g.At(0, 3) != 0 || g.In(4, 0) || !g.In(0, 0) {
		t.Fatal("bounds checks disagree with the grid size")
	}

	g.Clear()
	if g.At(3, 2) != 0 {
		t.Fatal("Clear left data behind")
	}
}

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(5, 3)
	cases := [][4]int{
		{0, 0, 0, 0},
		{5, 3, 0, 0},
		{-1, -1, 4, 2},
		{7, 4, 2, 1},
		{-6, -4, 4, 2},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc[0], tc[1])
		if x != tc[2] || y != tc[3] {
			t.Fatalf("Wrap(%d,%d)=(%d,%d), expected (%d,%d)", tc[0], tc[1], x, y, tc[2], tc[3])
		}
	}
}

func TestNewByteGridClampsSize(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("grid %dx%d with %d cells, expected 1x1", g.W, g.H, len(g.Cells()))
	}
}
