// Package engine implements the Blockfit game-state engine: board, shape
// catalog, placement rules, line clearing, rotation and the state machine that
// ties them together. It is UI-agnostic and deterministic given its Source.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Shape validation errors.
var (
	ErrEmptyShape    = errors.New("shape has no occupied cells")
	ErrRaggedShape   = errors.New("shape rows differ in length")
	ErrShapeTooLarge = errors.New("shape exceeds board dimensions")
	ErrLooseBorder   = errors.New("shape has an empty border row or column")
)

// Offset is a cell position relative to a shape's top-left corner.
type Offset struct {
	Row int
	Col int
}

// Shape is an immutable boolean occupancy matrix describing a block footprint.
// The zero value is an empty shape and is never produced by NewShape.
type Shape struct {
	rows  int
	cols  int
	cells []bool // row-major, len rows*cols
}

// NewShape validates and copies a boolean matrix into a Shape.
// The matrix must be rectangular, fit on the board, contain at least one
// occupied cell and have no fully empty border row or column.
func NewShape(m [][]bool) (Shape, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}
	rows, cols := len(m), len(m[0])
	if rows > BoardSize || cols > BoardSize {
		return Shape{}, fmt.Errorf("%dx%d: %w", rows, cols, ErrShapeTooLarge)
	}

	s := Shape{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for r, row := range m {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrRaggedShape)
		}
		copy(s.cells[r*cols:], row)
	}

	if s.Size() == 0 {
		return Shape{}, ErrEmptyShape
	}
	if !s.rowOccupied(0) || !s.rowOccupied(rows-1) || !s.colOccupied(0) || !s.colOccupied(cols-1) {
		return Shape{}, ErrLooseBorder
	}
	return s, nil
}

// ParseShape builds a Shape from string art, one string per row.
// '#' marks an occupied cell and '.' an empty one.
func ParseShape(art ...string) (Shape, error) {
	m := make([][]bool, len(art))
	for r, line := range art {
		m[r] = make([]bool, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				m[r][c] = true
			case '.':
			default:
				return Shape{}, fmt.Errorf("row %d: unexpected %q in shape art", r, ch)
			}
		}
	}
	return NewShape(m)
}

// MustShape is like ParseShape but panics on invalid art.
// It is meant for package-level catalog data.
func MustShape(art ...string) Shape {
	s, err := ParseShape(art...)
	if err != nil {
		panic(fmt.Sprintf("engine: invalid shape %q: %v", art, err))
	}
	return s
}

// Rows returns the bounding-box height.
func (s Shape) Rows() int { return s.rows }

// Cols returns the bounding-box width.
func (s Shape) Cols() int { return s.cols }

// At reports whether the cell at (r, c) is occupied.
// Out-of-range coordinates report false.
func (s Shape) At(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return false
	}
	return s.cells[r*s.cols+c]
}

// Size returns the number of occupied cells.
func (s Shape) Size() int {
	n := 0
	for _, v := range s.cells {
		if v {
			n++
		}
	}
	return n
}

// Cells returns the offsets of all occupied cells in row-major order.
func (s Shape) Cells() []Offset {
	out := make([]Offset, 0, len(s.cells))
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] {
				out = append(out, Offset{Row: r, Col: c})
			}
		}
	}
	return out
}

// Matrix returns a fresh copy of the occupancy matrix.
func (s Shape) Matrix() [][]bool {
	m := make([][]bool, s.rows)
	for r := range m {
		m[r] = make([]bool, s.cols)
		copy(m[r], s.cells[r*s.cols:(r+1)*s.cols])
	}
	return m
}

// Equal reports whether two shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape as '#'/'.' rows separated by '|'.
func (s Shape) String() string {
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('|')
		}
		for c := 0; c < s.cols; c++ {
			if s.At(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (s Shape) rowOccupied(r int) bool {
	for c := 0; c < s.cols; c++ {
		if s.At(r, c) {
			return true
		}
	}
	return false
}

func (s Shape) colOccupied(c int) bool {
	for r := 0; r < s.rows; r++ {
		if s.At(r, c) {
			return true
		}
	}
	return false
}
