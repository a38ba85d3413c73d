package life

/*

any live cell with two or three live neighbours survives
any other live cell starts fading out
any dead cell with exactly three live neighbours becomes a live cell
any fading cell loses one intensity per generation until it reaches zero

*/

// Evolve runs one generation of the rule, reading in and writing the
// logical cells of out. Only cells at full intensity count as neighbours;
// fading remnants are cosmetic. The padding of out is never written, and
// border cells read the padding as dead, which is why neither loop needs a
// bounds check. Evolve is pure: same input, same output, no allocation.
func Evolve(in, out Board) {
	if len(in) != CellCount || len(out) != CellCount {
		panic("life: evolve called with wrong board size")
	}

	pos := Offset
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			// Count the 8 neighbours sitting at full intensity.
			count := 0
			if in[pos-Cols-3] == MaxIntensity {
				count++
			}
			if in[pos-Cols-2] == MaxIntensity {
				count++
			}
			if in[pos-Cols-1] == MaxIntensity {
				count++
			}
			if in[pos-1] == MaxIntensity {
				count++
			}
			if in[pos+1] == MaxIntensity {
				count++
			}
			if in[pos+Cols+1] == MaxIntensity {
				count++
			}
			if in[pos+Cols+2] == MaxIntensity {
				count++
			}
			if in[pos+Cols+3] == MaxIntensity {
				count++
			}

			v := in[pos]
			if v == MaxIntensity {
				if count == 2 || count == 3 {
					out[pos] = MaxIntensity
				} else {
					out[pos] = v - 1
				}
			} else {
				if count == 3 {
					out[pos] = MaxIntensity
				} else if v > 0 {
					out[pos] = v - 1
				} else {
					out[pos] = 0
				}
			}
			pos++
		}
		pos += 2
	}
}
