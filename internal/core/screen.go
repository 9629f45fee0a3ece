package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a coloured character buffer. Games draw into it and the platform
// turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and blanks the buffer.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set writes a default-coloured rune. Out-of-bounds writes are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetWithColor(x, y, r, ColorDefault)
}

// SetWithColor writes a coloured rune. Out-of-bounds writes are dropped.
func (s *Screen) SetWithColor(x, y int, r rune, c Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes coloured text starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetWithColor(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered writes text centred horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawTextColor(x, y, text, c)
}

// FillRect paints every cell of r.
func (s *Screen) FillRect(r Rect, ch rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetWithColor(x, y, ch, c)
		}
	}
}

// DrawBox outlines r with light box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetWithColor(x, r.Y, '─', c)
		s.SetWithColor(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetWithColor(r.X, y, '│', c)
		s.SetWithColor(right, y, '│', c)
	}
	s.SetWithColor(r.X, r.Y, '┌', c)
	s.SetWithColor(right, r.Y, '┐', c)
	s.SetWithColor(r.X, bottom, '└', c)
	s.SetWithColor(right, bottom, '┘', c)
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns the whole buffer as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
