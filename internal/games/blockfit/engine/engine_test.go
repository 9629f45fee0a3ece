package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource cycles through vals, reducing each modulo n.
type fixedSource struct {
	vals []int
	i    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v % n
}

// newTestEngine deals only red singles with sequential IDs.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(Config{
		Rules:   DefaultRules(),
		Palette: ClassicPalette(),
		Source:  &fixedSource{vals: []int{0}},
		IDs:     &CounterIDs{Prefix: "b"},
	})
}

func singles(ids ...BlockID) []Block {
	out := make([]Block, len(ids))
	for i, id := range ids {
		out[i] = Block{ID: id, Shape: MustShape("#"), Color: ColorRed}
	}
	return out
}

func TestNewGame(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()

	assert.True(t, s.Board.IsEmpty())
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.Placed)
	assert.Empty(t, s.Selected)
	assert.Equal(t, PhasePlaying, s.Phase)
	require.Len(t, s.Offered, OfferSize)
	assertUniqueIDs(t, s.Offered)

	// Starting over discards progress.
	require.True(t, e.SelectBlock(s.Offered[0].ID))
	require.True(t, e.PlaceAt(0, 0).Placed)
	e.NewGame()
	s = e.State()
	assert.True(t, s.Board.IsEmpty())
	assert.Equal(t, 0, s.Placed)
	assert.Len(t, s.Offered, OfferSize)
}

func TestDefaultsFilledIn(t *testing.T) {
	e := New(Config{})
	assert.Equal(t, DefaultRules(), e.Rules())
	s := e.State()
	require.Len(t, s.Offered, OfferSize)
	assertUniqueIDs(t, s.Offered)
	for _, b := range s.Offered {
		assert.False(t, b.Color.IsSpecial())
	}
}

func TestSelectBlock(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()

	assert.True(t, e.SelectBlock(s.Offered[1].ID))
	assert.Equal(t, s.Offered[1].ID, e.State().Selected)

	// Unknown ID is a no-op, the previous selection stays.
	before := e.State()
	assert.False(t, e.SelectBlock("nope"))
	assert.Equal(t, before, e.State())

	assert.True(t, e.SelectBlock(s.Offered[2].ID))
	assert.Equal(t, s.Offered[2].ID, e.State().Selected)
}

func TestRotateSelected(t *testing.T) {
	e := newTestEngine(t)
	e.state.Offered = []Block{
		{ID: "a", Shape: MustShape("#.", "#.", "##"), Color: ColorBlue},
		{ID: "b", Shape: MustShape("##"), Color: ColorRed},
	}

	before := e.State()
	assert.False(t, e.RotateSelected(), "rotate without selection")
	assert.Equal(t, before, e.State())

	require.True(t, e.SelectBlock("a"))
	require.True(t, e.RotateSelected())

	s := e.State()
	assert.Equal(t, "###|#..", s.Offered[0].Shape.String())
	assert.Equal(t, "##", s.Offered[1].Shape.String(), "other blocks untouched")
	assert.Equal(t, BlockID("a"), s.Selected)
	assert.Equal(t, before.Board, s.Board)
	assert.Equal(t, before.Score, s.Score)

	for range 3 {
		require.True(t, e.RotateSelected())
	}
	assert.True(t, before.Offered[0].Shape.Equal(e.State().Offered[0].Shape))
}

func TestStateSnapshotIsIsolated(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()
	s.Offered[0] = Block{ID: "hijack"}
	s.Board[0][0] = Occupied(ColorGold)

	fresh := e.State()
	assert.NotEqual(t, BlockID("hijack"), fresh.Offered[0].ID)
	assert.False(t, fresh.Board[0][0].Filled)
}

func TestPlaceAtNoOps(t *testing.T) {
	e := newTestEngine(t)
	e.state.Offered = []Block{
		{ID: "bar", Shape: MustShape("####"), Color: ColorBlue},
		{ID: "dot", Shape: MustShape("#"), Color: ColorRed},
	}
	e.state.Board[3][3] = Occupied(ColorGreen)

	before := e.State()
	assert.Equal(t, Outcome{}, e.PlaceAt(0, 0), "no selection")
	assert.Equal(t, before, e.State())

	require.True(t, e.SelectBlock("bar"))
	before = e.State()

	for _, pos := range [][2]int{{0, 5}, {-1, 0}, {8, 0}, {3, 0}, {3, 3}} {
		assert.Equal(t, Outcome{}, e.PlaceAt(pos[0], pos[1]), "PlaceAt(%d, %d)", pos[0], pos[1])
		assert.Equal(t, before, e.State(), "PlaceAt(%d, %d) changed state", pos[0], pos[1])
	}
}

func TestPlaceAtWithoutLines(t *testing.T) {
	e := newTestEngine(t)
	e.state.Offered = []Block{
		{ID: "ell", Shape: MustShape("#.", "#.", "##"), Color: ColorPurple},
		{ID: "dot", Shape: MustShape("#"), Color: ColorRed},
	}
	require.True(t, e.SelectBlock("ell"))
	before := e.State()

	out := e.PlaceAt(2, 2)
	assert.True(t, out.Placed)
	assert.Zero(t, out.Lines)
	assert.Zero(t, out.Points)
	assert.False(t, out.Dealt)
	assert.False(t, out.LeveledUp)
	assert.False(t, out.GameOver)

	s := e.State()
	assert.Equal(t, before.Board.FilledCount()+4, s.Board.FilledCount())
	assert.Equal(t, Occupied(ColorPurple), s.Board.At(4, 3))
	assert.Equal(t, before.Placed+1, s.Placed)
	assert.Equal(t, before.Score, s.Score)
	assert.Equal(t, before.Level, s.Level)
	assert.Empty(t, s.Selected)
	assert.Equal(t, []Block{before.Offered[1]}, s.Offered)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestPlaceAtClearsTwoLines(t *testing.T) {
	e := newTestEngine(t)
	e.state.Board = boardFrom(t,
		".#######",
		"#.......",
		"#.......",
		"#.......",
		"#.......",
		"#.......",
		"#.......",
		"#......#",
	)
	e.state.Offered = singles("x", "y")
	require.True(t, e.SelectBlock("x"))

	out := e.PlaceAt(0, 0)
	assert.True(t, out.Placed)
	assert.Equal(t, 2, out.Lines)
	assert.Equal(t, []int{0}, out.Rows)
	assert.Equal(t, []int{0}, out.Cols)
	assert.Equal(t, 200, out.Points)

	s := e.State()
	assert.Equal(t, 200, s.Score)
	assert.Equal(t, 1, s.Board.FilledCount())
	assert.True(t, s.Board.At(7, 7).Filled)
	assertNoCompleteLines(t, s.Board)
}

func TestScoreScalesWithLevel(t *testing.T) {
	e := newTestEngine(t)
	e.state.Level = 3
	e.state.Placed = 25
	e.state.Score = 1000
	e.state.Board = boardFrom(t,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"#######.",
	)
	e.state.Offered = singles("x", "y")
	require.True(t, e.SelectBlock("x"))

	out := e.PlaceAt(7, 7)
	assert.Equal(t, 1, out.Lines)
	assert.Equal(t, 300, out.Points)
	assert.Equal(t, 1300, e.State().Score)
	assert.Equal(t, 3, e.State().Level)
}

func TestLevelUp(t *testing.T) {
	e := newTestEngine(t)
	e.state.Placed = 9
	e.state.Offered = singles("x", "y", "z")
	e.state.Board = boardFrom(t,
		"#######.",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".#######",
	)
	// Clear the bottom row on the level-up placement: scored at the old level.
	require.True(t, e.SelectBlock("x"))

	out := e.PlaceAt(7, 0)
	assert.True(t, out.LeveledUp)
	assert.True(t, out.Dealt)
	assert.Equal(t, 1, out.Lines)
	assert.Equal(t, 100, out.Points)

	s := e.State()
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 10, s.Placed)
	require.Len(t, s.Offered, OfferSize)
	assertUniqueIDs(t, s.Offered)
	for _, b := range s.Offered {
		assert.NotContains(t, []BlockID{"x", "y", "z"}, b.ID, "level-up deals a brand-new set")
	}
}

func TestLevelUpAtHigherLevel(t *testing.T) {
	e := newTestEngine(t)
	e.state.Level = 2
	e.state.Placed = 18
	e.state.Offered = singles("x", "y")
	require.True(t, e.SelectBlock("x"))

	out := e.PlaceAt(0, 0)
	assert.False(t, out.LeveledUp)
	assert.Equal(t, 2, e.State().Level)

	require.True(t, e.SelectBlock("y"))
	out = e.PlaceAt(0, 1)
	assert.True(t, out.LeveledUp)
	assert.Equal(t, 3, e.State().Level)
	assert.Len(t, e.State().Offered, OfferSize)
}

func TestReplenishWhenOfferedSetEmpties(t *testing.T) {
	e := newTestEngine(t)
	e.state.Offered = singles("last")
	require.True(t, e.SelectBlock("last"))

	out := e.PlaceAt(4, 4)
	assert.True(t, out.Dealt)
	assert.False(t, out.LeveledUp)

	s := e.State()
	require.Len(t, s.Offered, OfferSize)
	assertUniqueIDs(t, s.Offered)
	assert.Equal(t, 1, s.Level)
}

func TestLevelUpAndEmptySetDealOnce(t *testing.T) {
	ids := &CounterIDs{Prefix: "n"}
	e := New(Config{Source: &fixedSource{vals: []int{0}}, IDs: ids})
	e.state.Placed = 9
	e.state.Offered = singles("last")
	require.True(t, e.SelectBlock("last"))

	out := e.PlaceAt(0, 0)
	assert.True(t, out.LeveledUp)
	assert.True(t, out.Dealt)

	// n1-n3 came from the opening deal, n4-n6 from the single refill.
	assert.Equal(t, BlockID("n7"), ids.NextID())
}

func TestGameOver(t *testing.T) {
	// Deal only 3x3 squares after the last single is placed.
	e := New(Config{
		Source: &fixedSource{vals: []int{15, 0}},
		IDs:    &CounterIDs{Prefix: "g"},
	})
	e.state.Board = boardFrom(t,
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
	)
	e.state.Offered = singles("last")
	require.True(t, e.SelectBlock("last"))

	out := e.PlaceAt(0, 1)
	require.True(t, out.Placed)
	assert.True(t, out.Dealt)
	assert.True(t, out.GameOver)

	s := e.State()
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.True(t, s.IsGameOver())
	require.Len(t, s.Offered, OfferSize)
	for _, b := range s.Offered {
		assert.Equal(t, "square3", TemplateName(b.Shape))
		assert.False(t, AnyPlacementExists(s.Board, b.Shape))
	}

	// Terminal: only NewGame leaves it.
	before := e.State()
	assert.False(t, e.SelectBlock(s.Offered[0].ID))
	assert.Equal(t, Outcome{}, e.PlaceAt(0, 3))
	assert.Equal(t, before, e.State())

	e.NewGame()
	assert.Equal(t, PhasePlaying, e.State().Phase)
	assert.True(t, e.State().Board.IsEmpty())
}

func TestFullBoardIsGameOver(t *testing.T) {
	e := newTestEngine(t)

	var full Board
	for r := range BoardSize {
		for c := range BoardSize {
			full[r][c] = Occupied(ColorBlue)
		}
	}
	s := State{
		Board:    full,
		Level:    1,
		Phase:    PhasePlaying,
		Offered:  singles("a", "b", "c"),
		Selected: "a",
	}

	e.checkGameOver(&s)
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Empty(t, s.Selected, "game over clears the selection")

	// An empty offered set is never game over, even on a full board.
	s = State{Board: full, Level: 1, Phase: PhasePlaying}
	e.checkGameOver(&s)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestNoGameOverWhileSomeBlockFits(t *testing.T) {
	e := newTestEngine(t)
	e.state.Board = boardFrom(t,
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
	)
	e.state.Offered = []Block{
		{ID: "dot", Shape: MustShape("#"), Color: ColorRed},
		{ID: "big", Shape: MustShape("###", "###", "###"), Color: ColorRed},
		{ID: "dot2", Shape: MustShape("#"), Color: ColorRed},
	}
	require.True(t, e.SelectBlock("dot"))

	out := e.PlaceAt(0, 1)
	assert.True(t, out.Placed)
	assert.False(t, out.GameOver)
	assert.Equal(t, PhasePlaying, e.State().Phase)
}

func TestRotationNeverEndsTheGame(t *testing.T) {
	e := newTestEngine(t)
	e.state.Board = boardFrom(t,
		"#.######",
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
		"#######.",
	)
	e.state.Offered = []Block{{ID: "bar", Shape: MustShape("##"), Color: ColorRed}}
	require.True(t, e.SelectBlock("bar"))

	require.True(t, e.RotateSelected())
	assert.Equal(t, PhasePlaying, e.State().Phase)
}

func TestSpecialPalette(t *testing.T) {
	e := New(Config{
		Palette:          ClassicPalette(),
		SpecialPalette:   SpecialPalette(),
		SpecialFromLevel: 2,
		Source:           &fixedSource{vals: []int{0, 5}},
		IDs:              &CounterIDs{},
	})
	assert.Len(t, e.paletteFor(1), len(ClassicPalette()))
	assert.Len(t, e.paletteFor(2), len(ClassicPalette())+len(SpecialPalette()))

	// Level 1 deals never include gold: index 5 wraps to red.
	for _, b := range e.State().Offered {
		assert.Equal(t, ColorRed, b.Color)
	}

	e.state.Placed = 9
	e.state.Offered = singles("x")
	require.True(t, e.SelectBlock("x"))
	require.True(t, e.PlaceAt(0, 0).LeveledUp)
	for _, b := range e.State().Offered {
		assert.Equal(t, ColorGold, b.Color)
	}
}

func TestRulesValidate(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())
	assert.Error(t, Rules{PointsPerLine: 0, BlocksPerLevel: 10}.Validate())
	assert.Error(t, Rules{PointsPerLine: 100, BlocksPerLevel: -1}.Validate())
}

func TestCustomRules(t *testing.T) {
	e := New(Config{
		Rules:  Rules{PointsPerLine: 7, BlocksPerLevel: 2},
		Source: &fixedSource{vals: []int{0}},
		IDs:    &CounterIDs{},
	})
	e.state.Board = boardFrom(t,
		".#######",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	e.state.Offered = singles("a", "b")
	require.True(t, e.SelectBlock("a"))
	assert.Equal(t, 7, e.PlaceAt(0, 0).Points)

	require.True(t, e.SelectBlock("b"))
	assert.True(t, e.PlaceAt(5, 5).LeveledUp)
}

func TestUUIDsReproducibleFromSeed(t *testing.T) {
	a := UUIDs{Reader: rand.New(rand.NewSource(42))}
	b := UUIDs{Reader: rand.New(rand.NewSource(42))}
	seen := map[BlockID]bool{}
	for range 10 {
		id := a.NextID()
		assert.Equal(t, id, b.NextID())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.NotEqual(t, UUIDs{}.NextID(), UUIDs{}.NextID())
}

func TestDeterministicReplay(t *testing.T) {
	play := func() State {
		e := New(Config{
			Source: rand.New(rand.NewSource(7)),
			IDs:    UUIDs{Reader: rand.New(rand.NewSource(8))},
		})
		for range 40 {
			if !greedyMove(e) {
				break
			}
		}
		return e.State()
	}
	assert.Equal(t, play(), play())
}

// TestInvariantsUnderPlay drives full games and checks the state after every
// placement.
func TestInvariantsUnderPlay(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		e := New(Config{
			Source: rand.New(rand.NewSource(seed)),
			IDs:    &CounterIDs{},
		})
		prevScore := 0
		for step := 0; step < 500; step++ {
			if !greedyMove(e) {
				break
			}
			s := e.State()
			assertNoCompleteLines(t, s.Board)
			assert.LessOrEqual(t, len(s.Offered), OfferSize)
			assertUniqueIDs(t, s.Offered)
			assert.Equal(t, 1+s.Placed/DefaultRules().BlocksPerLevel, s.Level)
			assert.Zero(t, s.Score%DefaultRules().PointsPerLine)
			assert.GreaterOrEqual(t, s.Score, prevScore)
			prevScore = s.Score
			if s.IsGameOver() {
				for _, b := range s.Offered {
					assert.False(t, AnyPlacementExists(s.Board, b.Shape))
				}
				break
			}
		}
	}
}

// greedyMove places the first offered block at its first legal anchor.
func greedyMove(e *Engine) bool {
	s := e.State()
	if s.IsGameOver() {
		return false
	}
	for _, b := range s.Offered {
		for row := range BoardSize {
			for col := range BoardSize {
				if CanPlace(s.Board, b.Shape, row, col) {
					e.SelectBlock(b.ID)
					return e.PlaceAt(row, col).Placed
				}
			}
		}
	}
	return false
}

func assertUniqueIDs(t *testing.T, blocks []Block) {
	t.Helper()
	seen := map[BlockID]bool{}
	for _, b := range blocks {
		assert.NotEmpty(t, b.ID)
		assert.False(t, seen[b.ID], "duplicate block id %s", b.ID)
		seen[b.ID] = true
	}
}

func assertNoCompleteLines(t *testing.T, b Board) {
	t.Helper()
	rows, cols := CompleteLines(b)
	assert.Empty(t, rows)
	assert.Empty(t, cols)
}
