package engine

// Phase is the state machine position.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// BlockID identifies a block within the offered set.
type BlockID string

// Block is one offered piece.
type Block struct {
	ID    BlockID
	Shape Shape
	Color Color
}

// State is a complete, self-contained game snapshot.
type State struct {
	Board    Board
	Score    int
	Level    int
	Placed   int     // Blocks placed since the game started
	Offered  []Block // Up to OfferSize blocks, IDs unique
	Selected BlockID // Empty when nothing is selected
	Phase    Phase
}

// IsGameOver reports whether the game has ended.
func (s State) IsGameOver() bool {
	return s.Phase == PhaseGameOver
}

// Block returns the offered block with the given ID.
func (s State) Block(id BlockID) (Block, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Offered[i], true
	}
	return Block{}, false
}

// SelectedBlock returns the currently selected block, if any.
func (s State) SelectedBlock() (Block, bool) {
	if s.Selected == "" {
		return Block{}, false
	}
	return s.Block(s.Selected)
}

func (s State) indexOf(id BlockID) int {
	for i, b := range s.Offered {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// clone returns a copy sharing nothing mutable with s.
// Shapes are immutable, so copying the Block values is enough.
func (s State) clone() State {
	out := s
	out.Offered = append([]Block(nil), s.Offered...)
	return out
}
