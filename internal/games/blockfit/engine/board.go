package engine

// BoardSize is the board dimension in both axes.
const BoardSize = 8

// Cell is a single board square.
type Cell struct {
	Filled bool  // Whether a block occupies the cell
	Color  Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell filled with the given colour.
func Occupied(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Board is the fixed 8x8 play field, indexed [row][col].
// It is a value type: assignment copies every cell.
type Board [BoardSize][BoardSize]Cell

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// At returns the cell at (row, col), or an empty cell if out of bounds.
func (b Board) At(row, col int) Cell {
	if !InBounds(row, col) {
		return Empty()
	}
	return b[row][col]
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Filled {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether no cell is occupied.
func (b Board) IsEmpty() bool {
	return b.FilledCount() == 0
}
