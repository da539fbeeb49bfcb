package life

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	g := newGrid(t, 6, 6, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	h := NewHistory(3)
	h.Record(g.Hash())
	g.AdvanceGeneration()
	if p := h.Period(g.Hash()); p != 1 {
		t.Fatalf("block period %d, expected 1", p)
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	g := newGrid(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	h := NewHistory(3)
	h.Record(g.Hash())
	g.AdvanceGeneration()
	if p := h.Period(g.Hash()); p != 0 {
		t.Fatalf("period %d after one step, expected 0", p)
	}
	h.Record(g.Hash())
	g.AdvanceGeneration()
	if p := h.Period(g.Hash()); p != 2 {
		t.Fatalf("blinker period %d, expected 2", p)
	}
}

func TestHistoryForgetsOldStates(t *testing.T) {
	h := NewHistory(2)
	h.Record("a")
	h.Record("b")
	h.Record("c")
	if p := h.Period("a"); p != 0 {
		t.Fatalf("evicted state matched with period %d", p)
	}
	if p := h.Period("b"); p != 2 {
		t.Fatalf("period %d, expected 2", p)
	}
	h.Reset()
	if p := h.Period("c"); p != 0 {
		t.Fatalf("reset history matched with period %d", p)
	}
}
