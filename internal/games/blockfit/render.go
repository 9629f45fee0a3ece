package blockfit

import (
	"fmt"
	"slices"

	"github.com/euartex/blockfit/internal/core"
	"github.com/euartex/blockfit/internal/games/blockfit/engine"
)

const (
	blockGlyph = '█'
	ghostGlyph = '▒'
	emptyGlyph = '·'
)

var blockColors = map[engine.Color]core.Color{
	engine.ColorRed:    core.ColorRed,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorPurple: core.ColorMagenta,
	engine.ColorGold:   core.ColorGold,
	engine.ColorBomb:   core.ColorOrange,
}

func screenColor(c engine.Color) core.Color {
	if sc, ok := blockColors[c]; ok {
		return sc
	}
	return core.ColorWhite
}

var helpLines = []string{
	"HOW TO PLAY",
	"",
	"Pick a block from the tray and drop it",
	"on the board. Fill a whole row or column",
	"to clear it. Each line scores 100 x level.",
	"The game ends when no block fits.",
	"",
	"arrows/hjkl move  1-3/tab pick  r rotate",
	"enter place  n new game  ? help  esc menu",
	"",
	"Press enter to start",
}

// Render draws the whole game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	s := g.eng.State()
	g.renderHUD(dst, s)
	g.renderBoard(dst, s)
	g.renderTray(dst, s)
	g.renderStatus(dst)

	switch {
	case g.showHelp:
		drawPanel(dst, helpLines, core.ColorCyan)
	case s.IsGameOver():
		drawPanel(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Final score    %d", s.Score),
			fmt.Sprintf("Level reached  %d", s.Level),
			fmt.Sprintf("Blocks placed  %d", s.Placed),
			fmt.Sprintf("Lines cleared  %d", g.lines),
			"",
			"n new game   esc menu",
		}, core.ColorBrightRed)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minWidth, minHeight, g.screenW, g.screenH), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, s engine.State) {
	dst.DrawTextCentered(0, g.Title(), core.ColorCyan)

	nextLevel := s.Level * g.eng.Rules().BlocksPerLevel
	hud := fmt.Sprintf("Score %d   Level %d   Blocks %d/%d   Lines %d",
		s.Score, s.Level, s.Placed, nextLevel, g.lines)
	dst.DrawTextCentered(1, hud, core.ColorWhite)
}

func (g *Game) renderBoard(dst *core.Screen, s engine.State) {
	l := g.lay
	dst.DrawBox(l.board, core.ColorGray)

	for r := range engine.BoardSize {
		for c := range engine.BoardSize {
			x, y := l.cellOrigin(r, c)
			cell := s.Board[r][c]
			if cell.Filled {
				drawCell(dst, x, y, blockGlyph, screenColor(cell.Color))
			} else {
				dst.SetWithColor(x, y, emptyGlyph, core.ColorGray)
			}
		}
	}

	if g.flashLeft > 0 {
		for r := range engine.BoardSize {
			for c := range engine.BoardSize {
				if slices.Contains(g.flashRows, r) || slices.Contains(g.flashCols, c) {
					x, y := l.cellOrigin(r, c)
					drawCell(dst, x, y, blockGlyph, core.ColorWhite)
				}
			}
		}
	}

	blk, ok := s.SelectedBlock()
	if !ok {
		return
	}
	if g.cfg.Display.Ghost {
		for _, pc := range engine.Preview(s.Board, blk.Shape, g.cursorRow, g.cursorCol) {
			x, y := l.cellOrigin(pc.Row, pc.Col)
			color := screenColor(blk.Color)
			if !pc.Valid {
				color = core.ColorBrightRed
			}
			drawCell(dst, x, y, ghostGlyph, color)
		}
	}
	// Anchor marker on the left border row and top border column.
	ax, ay := l.cellOrigin(g.cursorRow, g.cursorCol)
	dst.SetWithColor(l.board.X, ay, '▸', core.ColorCyan)
	dst.SetWithColor(ax, l.board.Y, '▾', core.ColorCyan)
}

func (g *Game) renderTray(dst *core.Screen, s engine.State) {
	for i, box := range g.lay.slots {
		border := core.ColorGray
		if i < len(s.Offered) && s.Offered[i].ID == s.Selected {
			border = core.ColorCyan
		}
		dst.DrawBox(box, border)
		dst.SetWithColor(box.X+1, box.Y, rune('1'+i), border)

		if i >= len(s.Offered) {
			continue
		}
		blk := s.Offered[i]
		inner := box.Inset(1)
		ox := inner.X + (inner.W-blk.Shape.Cols()*cellW)/2
		oy := inner.Y + (inner.H-blk.Shape.Rows())/2
		color := screenColor(blk.Color)
		if !engine.AnyPlacementExists(s.Board, blk.Shape) {
			color = core.ColorGray
		}
		for _, off := range blk.Shape.Cells() {
			drawCell(dst, ox+off.Col*cellW, oy+off.Row, blockGlyph, color)
		}
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	if g.messageTTL > 0 && g.message != "" {
		dst.DrawTextCentered(g.lay.status, g.message, g.msgColor)
	}
}

func drawCell(dst *core.Screen, x, y int, glyph rune, c core.Color) {
	for i := range cellW {
		dst.SetWithColor(x+i, y, glyph, c)
	}
}

// drawPanel draws a bordered, centred message box over whatever is below.
func drawPanel(dst *core.Screen, lines []string, c core.Color) {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	box := core.NewRect((dst.Width()-w-4)/2, (dst.Height()-len(lines)-2)/2, w+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box.Y+1+i, line, color)
	}
}
