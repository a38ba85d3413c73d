package util

// Cell is a pixel position on the display: X is the column, Y the row.
type Cell struct {
	X, Y int
}
