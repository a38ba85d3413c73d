package life

import "testing"

func TestHistoryRotationReusesBuffers(t *testing.T) {
	var h history
	h.init()

	// Remember the backing arrays; rotation must never reallocate.
	seen := map[*byte]bool{}
	for _, b := range h.boards {
		seen[&b[0]] = true
	}

	for i := 0; i < 8; i++ {
		h.current().Set(0, 0, byte(i%9)+1)
		h.rotate()
		if !seen[&h.current()[0]] {
			t.Fatalf("rotation %d produced a new buffer", i)
		}
	}
	if h.cur != 0 {
		t.Fatalf("cur = %d after 8 rotations, want 0", h.cur)
	}
}

func TestHistoryWindowRelationships(t *testing.T) {
	var h history
	h.init()

	// Tag each generation, rotate, and check the window keeps pointing
	// at the right generations.
	h.current().Set(0, 0, 1) // gen 0
	h.rotate()
	h.current().Set(0, 0, 2) // gen 1
	h.rotate()
	h.current().Set(0, 0, 3) // gen 2

	if got := h.previous().Get(0, 0); got != 2 {
		t.Fatalf("previous = %d, want gen 1", got)
	}
	if got := h.scratch().Get(0, 0); got == 3 || got == 2 {
		t.Fatalf("scratch aliases a retained generation (%d)", got)
	}
}

func TestHistoryStagnantOnParentRepeat(t *testing.T) {
	var h history
	h.init()
	// A still life: evolving reproduces the parent in scratch.
	h.current().Set(4, 4, 9)
	h.scratch().Set(4, 4, 9)
	if !h.stagnant() {
		t.Fatal("repeat of the parent not detected")
	}
}

func TestHistoryStagnantOnPeriodTwoRepeat(t *testing.T) {
	var h history
	h.init()
	h.previous().Set(4, 4, 9)
	h.scratch().Set(4, 4, 9)
	h.current().Set(5, 5, 9)
	if !h.stagnant() {
		t.Fatal("period-2 repeat not detected")
	}
}

func TestHistoryNotStagnantOnFreshBoard(t *testing.T) {
	var h history
	h.init()
	h.current().Set(4, 4, 9)
	h.previous().Set(5, 5, 9)
	h.scratch().Set(6, 6, 9)
	if h.stagnant() {
		t.Fatal("distinct boards reported stagnant")
	}
}

func TestHistoryClear(t *testing.T) {
	var h history
	h.init()
	for i := range h.boards {
		h.boards[i].Set(1, 1, 9)
	}
	h.clear()
	for i, b := range h.boards {
		if b.Get(1, 1) != 0 {
			t.Fatalf("buffer %d not cleared", i)
		}
	}
}
