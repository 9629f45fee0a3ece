package engine

// CanPlace reports whether shape s anchored at (row, col) lands entirely on
// empty, in-bounds cells.
func CanPlace(b Board, s Shape, row, col int) bool {
	if s.Size() == 0 {
		return false
	}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if !s.cells[r*s.cols+c] {
				continue
			}
			br, bc := row+r, col+c
			if !InBounds(br, bc) || b[br][bc].Filled {
				return false
			}
		}
	}
	return true
}

// AnyPlacementExists reports whether s fits somewhere on b.
func AnyPlacementExists(b Board, s Shape) bool {
	for row := 0; row <= BoardSize-s.rows; row++ {
		for col := 0; col <= BoardSize-s.cols; col++ {
			if CanPlace(b, s, row, col) {
				return true
			}
		}
	}
	return false
}

// Stamp writes every occupied cell of s at (row, col) with colour c.
// Returns the board unchanged and false if the placement is illegal.
func Stamp(b Board, s Shape, row, col int, c Color) (Board, bool) {
	if !CanPlace(b, s, row, col) {
		return b, false
	}
	for _, off := range s.Cells() {
		b[row+off.Row][col+off.Col] = Occupied(c)
	}
	return b, true
}

// PreviewCell is one board cell a prospective placement would cover.
type PreviewCell struct {
	Row   int
	Col   int
	Valid bool // Cell is empty and the whole placement is legal
}

// Preview lists the in-bounds cells covered by s at (row, col).
// Cells falling off the board are omitted.
func Preview(b Board, s Shape, row, col int) []PreviewCell {
	legal := CanPlace(b, s, row, col)
	var out []PreviewCell
	for _, off := range s.Cells() {
		br, bc := row+off.Row, col+off.Col
		if !InBounds(br, bc) {
			continue
		}
		out = append(out, PreviewCell{
			Row:   br,
			Col:   bc,
			Valid: legal && !b[br][bc].Filled,
		})
	}
	return out
}
