package blockfit

import "github.com/euartex/blockfit/internal/games/blockfit/engine"

// GameStateType is the coarse phase shown to the player.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateHelp        GameStateType = "help"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures everything needed to compare two runs.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Level     int
	Placed    int
	Lines     int
	Board     engine.Board
	Offered   []string // Shape art per tray slot
	Colors    []engine.Color
	Selected  int // Tray slot, -1 when empty-handed
	CursorRow int
	CursorCol int
	State     GameStateType
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.eng.State()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.showHelp:
		state = StateHelp
	case s.IsGameOver():
		state = StateGameOver
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     s.Score,
		Level:     s.Level,
		Placed:    s.Placed,
		Lines:     g.lines,
		Board:     s.Board,
		Selected:  g.selectedSlot(),
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		State:     state,
	}
	for _, b := range s.Offered {
		snap.Offered = append(snap.Offered, b.Shape.String())
		snap.Colors = append(snap.Colors, b.Color)
	}
	return snap
}
