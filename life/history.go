package life

// MaxRounds is the round cap: a board that runs this long without
// repeating gets reset anyway.
const MaxRounds = 200

// history is a fixed ring of reusable board buffers rotated by index, so
// no frame ever allocates. It retains the board on display plus the two
// generations before it; the fourth buffer is the scratch space the next
// generation is evolved into.
type history struct {
	boards [4]Board
	cur    int
}

func (h *history) init() {
	for i := range h.boards {
		h.boards[i] = NewBoard()
	}
}

// current is the board being displayed and evolved from.
func (h *history) current() Board { return h.boards[h.cur] }

// scratch is the buffer the next generation is evolved into.
func (h *history) scratch() Board { return h.boards[(h.cur+1)&3] }

// previous is the generation before current, i.e. two steps back from the
// board sitting in scratch.
func (h *history) previous() Board { return h.boards[(h.cur+3)&3] }

// rotate makes the freshly evolved scratch board current. The oldest
// buffer becomes the new scratch.
func (h *history) rotate() { h.cur = (h.cur + 1) & 3 }

// clear kills every buffer.
func (h *history) clear() {
	for _, b := range h.boards {
		b.Clear()
	}
}

// stagnant reports whether the freshly evolved scratch board has repeated
// a recent state: the board it was evolved from (still lifes and extinct
// boards) or the board two steps back (period-2 oscillators like
// blinkers, which are everywhere in this automaton).
func (h *history) stagnant() bool {
	next := h.scratch()
	return next.Equal(h.current()) || next.Equal(h.previous())
}
