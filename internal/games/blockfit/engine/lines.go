package engine

// CompleteLines returns the indices of fully occupied rows and columns.
func CompleteLines(b Board) (rows, cols []int) {
	for r := range BoardSize {
		full := true
		for c := range BoardSize {
			if !b[r][c].Filled {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, r)
		}
	}
	for c := range BoardSize {
		full := true
		for r := range BoardSize {
			if !b[r][c].Filled {
				full = false
				break
			}
		}
		if full {
			cols = append(cols, c)
		}
	}
	return rows, cols
}

// ResolveLines clears every complete row and column found on the same
// snapshot of b. The count is rows plus columns; an intersecting cell is
// cleared once but both lines count. Remaining cells never move.
func ResolveLines(b Board) (Board, int) {
	rows, cols := CompleteLines(b)
	return clearLines(b, rows, cols), len(rows) + len(cols)
}

func clearLines(b Board, rows, cols []int) Board {
	for _, r := range rows {
		for c := range BoardSize {
			b[r][c] = Empty()
		}
	}
	for _, c := range cols {
		for r := range BoardSize {
			b[r][c] = Empty()
		}
	}
	return b
}
