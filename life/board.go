// Package life implements the simulation core: the padded board, the Life
// rule with fade-out decay, stagnation detection and the frame scheduler
// that ties it all to the platform timer.
package life

import (
	"bytes"
	"io"
	"math/rand"
)

// Board dimensions. The logical board is inset in a larger padded board,
// leaving one permanently dead cell around each edge so neighbour counting
// never has to bounds-check.
const (
	Cols = 32
	Rows = 8

	paddedCols = Cols + 2
	paddedRows = Rows + 2

	// CellCount is the length of the backing array, padding included.
	CellCount = paddedCols * paddedRows

	// Offset is the flat index of logical cell (0,0). It skips the top
	// padding row and the first padding column of the first real row.
	Offset = Cols + 3
)

// MaxIntensity marks a fully alive cell. Intensities 1-8 are the fading
// remnants of a cell that has died; 0 is dead.
const MaxIntensity = 9

// Density is the proportion of live cells when randomizing a new board.
const Density = 0.3

// Board is a flat padded byte grid. Each cell holds an intensity 0-9.
type Board []byte

// NewBoard allocates an all-dead padded board.
func NewBoard() Board {
	return make(Board, CellCount)
}

// Index converts a logical cell position to a flat board index.
func Index(col, row int) int {
	return Offset + row*paddedCols + col
}

// Get returns the intensity of the logical cell (col, row).
func (b Board) Get(col, row int) byte {
	return b[Index(col, row)]
}

// Set writes the intensity of the logical cell (col, row).
func (b Board) Set(col, row int, v byte) {
	b[Index(col, row)] = v
}

// Equal reports whether two boards hold identical cells.
func (b Board) Equal(other Board) bool {
	return bytes.Equal(b, other)
}

// Clear kills every cell.
func (b Board) Clear() {
	for i := range b {
		b[i] = 0
	}
}

// Randomize populates the logical cells, setting each to fully alive with
// the given probability. The padding is left untouched.
func (b Board) Randomize(rng *rand.Rand, density float64) {
	for i := 0; i < Cols*Rows; i++ {
		v := byte(0)
		if rng.Float64() <= density {
			v = MaxIntensity
		}
		// Skip the two padding cells at the end of each row.
		b[Offset+i+2*(i/Cols)] = v
	}
}

// Fprint writes the logical board to w as rows of ASCII digits, one rune
// per cell, with dead cells shown as spaces. This is the reference text
// representation used by the tests and the bench dump flag.
func (b Board) Fprint(w io.Writer) {
	line := make([]byte, Cols+1)
	line[Cols] = '\n'
	pos := Offset
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if v := b[pos]; v == 0 {
				line[c] = ' '
			} else {
				line[c] = '0' + v
			}
			pos++
		}
		pos += 2
		w.Write(line)
	}
}

// String returns the Fprint representation.
func (b Board) String() string {
	var buf bytes.Buffer
	b.Fprint(&buf)
	return buf.String()
}
