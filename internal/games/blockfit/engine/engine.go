package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Rules holds the scoring and progression constants.
type Rules struct {
	PointsPerLine  int // Points per cleared line, multiplied by the level
	BlocksPerLevel int // Level L ends once L*BlocksPerLevel blocks are placed
}

// DefaultRules returns the standard constants.
func DefaultRules() Rules {
	return Rules{
		PointsPerLine:  100,
		BlocksPerLevel: 10,
	}
}

// Validate checks that both constants are positive.
func (r Rules) Validate() error {
	var errs []error
	if r.PointsPerLine < 1 {
		errs = append(errs, fmt.Errorf("points per line must be positive, got %d", r.PointsPerLine))
	}
	if r.BlocksPerLevel < 1 {
		errs = append(errs, fmt.Errorf("blocks per level must be positive, got %d", r.BlocksPerLevel))
	}
	return errors.Join(errs...)
}

// Config configures an Engine. Zero fields fall back to defaults.
type Config struct {
	Rules            Rules
	Palette          []Color  // Colours dealt at every level
	SpecialPalette   []Color  // Added to Palette from SpecialFromLevel on
	SpecialFromLevel int      // 0 disables special colours
	Source           Source   // Defaults to a time-seeded math/rand
	IDs              IDSource // Defaults to random UUIDs
}

// DefaultConfig returns the classic configuration.
func DefaultConfig() Config {
	return Config{
		Rules:   DefaultRules(),
		Palette: ClassicPalette(),
	}
}

// Outcome describes what a PlaceAt call did. The zero value means no-op.
type Outcome struct {
	Placed    bool
	Lines     int   // Completed rows plus completed columns
	Rows      []int // Cleared row indices
	Cols      []int // Cleared column indices
	Points    int
	LeveledUp bool
	Dealt     bool // A new offered set replaced the old one
	GameOver  bool
}

// Engine owns a single game's State and applies player commands to it.
// It is not safe for concurrent use.
type Engine struct {
	cfg   Config
	state State
}

// New creates an engine and starts a fresh game.
func New(cfg Config) *Engine {
	if cfg.Rules.PointsPerLine < 1 {
		cfg.Rules.PointsPerLine = DefaultRules().PointsPerLine
	}
	if cfg.Rules.BlocksPerLevel < 1 {
		cfg.Rules.BlocksPerLevel = DefaultRules().BlocksPerLevel
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = ClassicPalette()
	}
	if cfg.Source == nil {
		cfg.Source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.IDs == nil {
		cfg.IDs = UUIDs{}
	}

	e := &Engine{cfg: cfg}
	e.NewGame()
	return e
}

// Rules returns the active rules.
func (e *Engine) Rules() Rules {
	return e.cfg.Rules
}

// State returns a snapshot of the current game.
func (e *Engine) State() State {
	return e.state.clone()
}

// NewGame discards the current game and starts over.
func (e *Engine) NewGame() {
	next := State{
		Level:   1,
		Phase:   PhasePlaying,
		Offered: e.deal(1),
	}
	e.checkGameOver(&next)
	e.state = next
}

// SelectBlock selects an offered block. Returns false (no-op) for unknown IDs
// or when the game is over.
func (e *Engine) SelectBlock(id BlockID) bool {
	if e.state.IsGameOver() {
		return false
	}
	if e.state.indexOf(id) < 0 {
		return false
	}
	e.state.Selected = id
	return true
}

// RotateSelected turns the selected block 90 degrees clockwise in place.
// Returns false (no-op) when nothing is selected.
func (e *Engine) RotateSelected() bool {
	i := e.state.indexOf(e.state.Selected)
	if e.state.Selected == "" || i < 0 {
		return false
	}
	next := e.state.clone()
	next.Offered[i].Shape = RotateClockwise(next.Offered[i].Shape)
	e.state = next
	return true
}

// PlaceAt drops the selected block with its top-left corner at (row, col) and
// resolves every consequence: line clears, scoring, level-up, replenishment and
// game-over. Illegal requests leave the state untouched and return a zero
// Outcome.
func (e *Engine) PlaceAt(row, col int) Outcome {
	if e.state.IsGameOver() {
		return Outcome{}
	}
	blk, ok := e.state.SelectedBlock()
	if !ok {
		return Outcome{}
	}
	board, ok := Stamp(e.state.Board, blk.Shape, row, col, blk.Color)
	if !ok {
		return Outcome{}
	}

	next := e.state.clone()
	next.Board = board
	next.Offered = removeBlock(next.Offered, blk.ID)
	next.Placed++
	next.Selected = ""

	rows, cols := CompleteLines(next.Board)
	next.Board = clearLines(next.Board, rows, cols)
	lines := len(rows) + len(cols)
	points := lines * e.cfg.Rules.PointsPerLine * next.Level
	next.Score += points

	out := Outcome{
		Placed: true,
		Lines:  lines,
		Rows:   rows,
		Cols:   cols,
		Points: points,
	}

	// One deal at most: a level-up deal also refills an exhausted set.
	if next.Placed >= next.Level*e.cfg.Rules.BlocksPerLevel {
		next.Level++
		next.Offered = e.deal(next.Level)
		out.LeveledUp = true
		out.Dealt = true
	} else if len(next.Offered) == 0 {
		next.Offered = e.deal(next.Level)
		out.Dealt = true
	}

	e.checkGameOver(&next)
	out.GameOver = next.IsGameOver()
	e.state = next
	return out
}

// checkGameOver ends the game when offered blocks exist but none fits.
func (e *Engine) checkGameOver(s *State) {
	if len(s.Offered) == 0 {
		return
	}
	for _, b := range s.Offered {
		if AnyPlacementExists(s.Board, b.Shape) {
			return
		}
	}
	s.Phase = PhaseGameOver
	s.Selected = ""
}

func removeBlock(blocks []Block, id BlockID) []Block {
	out := blocks[:0]
	for _, b := range blocks {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
