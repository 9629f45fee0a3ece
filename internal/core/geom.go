// Package core holds the terminal-independent building blocks shared by the
// game and the platform layer: a coloured character buffer, semantic input
// frames and runtime configuration. It imports nothing from Bubble Tea so
// game code stays testable without a terminal.
package core

// Rect is a screen-space rectangle in character cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap maps val into [0, n) cyclically. n must be positive.
func Wrap(val, n int) int {
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
