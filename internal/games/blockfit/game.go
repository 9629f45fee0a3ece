// Package blockfit adapts the block-placement engine to the terminal platform:
// cursor and tray navigation, mouse hit testing, animations and rendering.
package blockfit

import (
	"fmt"
	"math/rand"

	"github.com/euartex/blockfit/internal/config"
	"github.com/euartex/blockfit/internal/core"
	"github.com/euartex/blockfit/internal/games/blockfit/engine"
	"github.com/euartex/blockfit/internal/registry"
)

// Mode selects the palette rules.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeBonus   Mode = "bonus"
)

// Registry IDs.
const (
	IDClassic = "blockfit"
	IDBonus   = "blockfit_bonus"
)

// Game is one Blockfit session.
type Game struct {
	mode Mode
	cfg  config.BlockfitConfig
	rng  *rand.Rand
	eng  *engine.Engine
	tick uint64
	fps  int

	screenW, screenH int
	lay              layout
	tooSmall         bool

	cursorRow, cursorCol int
	lines                int // Lines cleared this game

	showHelp   bool
	flashRows  []int
	flashCols  []int
	flashLeft  int // Frames left in the line-clear flash
	message    string
	msgColor   core.Color
	messageTTL int
}

var activeConfig *config.BlockfitConfig

// SetConfig installs the configuration used by every subsequent Reset.
// Without it, games load the default search path.
func SetConfig(cfg config.BlockfitConfig) {
	activeConfig = &cfg
}

func currentConfig() config.BlockfitConfig {
	if activeConfig != nil {
		return *activeConfig
	}
	cfg, err := config.Load("")
	if err != nil {
		return config.DefaultBlockfitConfig()
	}
	return cfg
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBonus creates a game whose palette gains special colours at higher levels.
func NewBonus() *Game {
	return &Game{mode: ModeBonus}
}

func init() {
	registry.Register(IDClassic, func() registry.Game { return New() })
	registry.Register(IDBonus, func() registry.Game { return NewBonus() })
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	if g.mode == ModeBonus {
		return IDBonus
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBonus {
		return "Blockfit (Bonus)"
	}
	return "Blockfit"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	if g.mode == ModeBonus {
		return "Gold and bomb blocks join the deal at higher levels"
	}
	return "Fit blocks on an 8x8 board and clear full lines"
}

// Reset starts a fresh game. Equal seeds give identical games.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = currentConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.fps = max(cfg.TickRate, 1)
	g.tick = 0

	palette, err := g.cfg.Colors()
	if err != nil || len(palette) == 0 {
		palette = engine.ClassicPalette()
	}
	ecfg := engine.Config{
		Rules:   g.cfg.EngineRules(),
		Palette: palette,
		Source:  g.rng,
		IDs:     engine.UUIDs{Reader: g.rng},
	}
	if g.mode == ModeBonus {
		special, err := g.cfg.SpecialColors()
		if err != nil || len(special) == 0 {
			special = engine.SpecialPalette()
		}
		ecfg.SpecialPalette = special
		ecfg.SpecialFromLevel = g.cfg.Palette.SpecialFromLevel
	}
	g.eng = engine.New(ecfg)

	g.showHelp = g.cfg.Display.ShowInstructions
	g.startOver()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout without touching the game in progress.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.lay, _ = computeLayout(width, height)
	g.tooSmall = width < minWidth || height < minHeight
}

// startOver resets per-game presentation state around a fresh engine game.
func (g *Game) startOver() {
	g.lines = 0
	g.flashRows, g.flashCols, g.flashLeft = nil, nil, 0
	g.message, g.messageTTL = "", 0
	g.cursorRow, g.cursorCol = engine.BoardSize/2-1, engine.BoardSize/2-1
	g.autoSelect()
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashLeft > 0 {
		g.flashLeft--
	}
	if g.messageTTL > 0 {
		g.messageTTL--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.showHelp {
		if in.Has(core.ActionHelp) || in.Has(core.ActionPlace) || (in.Pointer != nil && in.Pointer.Click) {
			g.showHelp = false
		}
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionHelp) {
		g.showHelp = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionNewGame) {
		g.eng.NewGame()
		g.startOver()
		return core.StepResult{State: g.State()}
	}

	if g.eng.State().IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Pointer != nil {
		g.handlePointer(*in.Pointer)
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	for slot := range engine.OfferSize {
		if in.Has(core.SlotAction(slot)) {
			g.selectSlot(slot)
		}
	}
	if in.Has(core.ActionCycle) {
		if n := len(g.eng.State().Offered); n > 0 {
			g.selectSlot(core.Wrap(g.selectedSlot()+1, n))
		}
	}
	if in.Has(core.ActionRotate) && g.eng.RotateSelected() {
		g.clampCursor()
	}
	if in.Has(core.ActionPlace) {
		g.place(g.cursorRow, g.cursorCol)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handlePointer(p core.Pointer) {
	hit := g.HitTest(p.X, p.Y)
	switch hit.Kind {
	case HitBoard:
		if p.Click {
			g.place(hit.Row, hit.Col)
		}
		g.cursorRow, g.cursorCol = hit.Row, hit.Col
		g.clampCursor()
	case HitSlot:
		if p.Click {
			g.selectSlot(hit.Slot)
		}
	}
}

// HitTest reports what the screen cell (x, y) points at.
func (g *Game) HitTest(x, y int) Hit {
	if g.tooSmall {
		return Hit{}
	}
	return g.lay.hitTest(x, y)
}

func (g *Game) moveCursor(dRow, dCol int) {
	g.cursorRow += dRow
	g.cursorCol += dCol
	g.clampCursor()
}

// clampCursor keeps the selected block's bounding box on the board.
func (g *Game) clampCursor() {
	maxRow, maxCol := engine.BoardSize-1, engine.BoardSize-1
	if b, ok := g.eng.State().SelectedBlock(); ok {
		maxRow = engine.BoardSize - b.Shape.Rows()
		maxCol = engine.BoardSize - b.Shape.Cols()
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, maxRow)
	g.cursorCol = core.Clamp(g.cursorCol, 0, maxCol)
}

func (g *Game) selectedSlot() int {
	s := g.eng.State()
	for i, b := range s.Offered {
		if b.ID == s.Selected {
			return i
		}
	}
	return -1
}

// selectSlot selects the block in a tray slot. Empty slots are ignored.
func (g *Game) selectSlot(slot int) {
	offered := g.eng.State().Offered
	if slot < 0 || slot >= len(offered) {
		return
	}
	if g.eng.SelectBlock(offered[slot].ID) {
		g.clampCursor()
	}
}

// autoSelect keeps a block in hand whenever one is available.
func (g *Game) autoSelect() {
	if g.selectedSlot() < 0 {
		g.selectSlot(0)
	}
}

func (g *Game) place(row, col int) {
	out := g.eng.PlaceAt(row, col)
	if !out.Placed {
		if _, ok := g.eng.State().SelectedBlock(); ok {
			g.say("Doesn't fit there", core.ColorBrightRed)
		}
		return
	}

	g.lines += out.Lines
	if out.Lines > 0 {
		g.flashRows, g.flashCols = out.Rows, out.Cols
		g.flashLeft = max(g.fps*2/5, 1)
		g.say(fmt.Sprintf("+%d  %d %s!", out.Points, out.Lines, plural(out.Lines, "line", "lines")), core.ColorBrightGreen)
	}
	if out.LeveledUp {
		g.say(fmt.Sprintf("Level %d!", g.eng.State().Level), core.ColorGold)
	}
	if !out.GameOver {
		g.autoSelect()
	}
}

func (g *Game) say(msg string, c core.Color) {
	g.message, g.msgColor = msg, c
	g.messageTTL = g.fps * 3 / 2
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	s := g.eng.State()
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		Blocks:   s.Placed,
		Lines:    g.lines,
		GameOver: s.IsGameOver(),
		Paused:   g.showHelp || g.tooSmall,
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
