package engine

// RotateClockwise returns s rotated 90 degrees clockwise.
// An R x C shape becomes C x R with out[c][R-1-r] = in[r][c].
func RotateClockwise(s Shape) Shape {
	out := Shape{rows: s.cols, cols: s.rows, cells: make([]bool, len(s.cells))}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			out.cells[c*out.cols+(s.rows-1-r)] = s.cells[r*s.cols+c]
		}
	}
	return out
}
