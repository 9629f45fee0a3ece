package blockfit

import (
	"github.com/euartex/blockfit/internal/core"
	"github.com/euartex/blockfit/internal/games/blockfit/engine"
)

const (
	cellW     = 2 // Terminal columns per board cell
	maxShape  = 5 // Largest template extent in either axis
	slotGap   = 1
	hudHeight = 2

	boardBoxW = engine.BoardSize*cellW + 2
	boardBoxH = engine.BoardSize + 2
	slotBoxW  = maxShape*cellW + 2
	slotBoxH  = maxShape + 2
	trayW     = engine.OfferSize*slotBoxW + (engine.OfferSize-1)*slotGap

	minWidth  = trayW + 2
	minHeight = hudHeight + 1 + boardBoxH + 1 + slotBoxH + 1
)

// layout is where everything sits on screen for one terminal size.
type layout struct {
	width  int
	board  core.Rect // Outer box, border included
	slots  [engine.OfferSize]core.Rect
	status int // Row for transient messages
}

func computeLayout(w, h int) (layout, bool) {
	if w < minWidth || h < minHeight {
		return layout{width: w}, false
	}
	l := layout{width: w}
	l.board = core.NewRect((w-boardBoxW)/2, hudHeight+1, boardBoxW, boardBoxH)

	trayX := (w - trayW) / 2
	trayY := l.board.Bottom() + 1
	for i := range l.slots {
		l.slots[i] = core.NewRect(trayX+i*(slotBoxW+slotGap), trayY, slotBoxW, slotBoxH)
	}
	l.status = trayY + slotBoxH
	return l, true
}

// cellOrigin returns the screen position of board cell (row, col).
func (l layout) cellOrigin(row, col int) (int, int) {
	return l.board.X + 1 + col*cellW, l.board.Y + 1 + row
}

// HitKind classifies what a screen position points at.
type HitKind int

const (
	HitNone HitKind = iota
	HitBoard
	HitSlot
)

// Hit is the result of HitTest.
type Hit struct {
	Kind HitKind
	Row  int // Board row when Kind is HitBoard
	Col  int // Board column when Kind is HitBoard
	Slot int // Zero-based tray slot when Kind is HitSlot
}

func (l layout) hitTest(x, y int) Hit {
	inner := l.board.Inset(1)
	if inner.Contains(x, y) {
		return Hit{Kind: HitBoard, Row: y - inner.Y, Col: (x - inner.X) / cellW}
	}
	for i, r := range l.slots {
		if r.Contains(x, y) {
			return Hit{Kind: HitSlot, Slot: i}
		}
	}
	return Hit{}
}
