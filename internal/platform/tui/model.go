package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/euartex/blockfit/internal/core"
	"github.com/euartex/blockfit/internal/registry"
	"github.com/euartex/blockfit/internal/storage"
)

// footerHeight is the row reserved under the game for the key help.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one running game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	help        help.Model
	embedded    bool // Owned by a SessionModel; back does not quit the program
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a model for the given game. A nil logger logs to the
// default charmbracelet logger; a nil store disables result saving.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

func gameHeight(h int) int {
	return max(h-footerHeight, 0)
}

// gameConfig is the runtime config the game sees: the terminal minus the footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.resultSaved = false
	} else if !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished game. Failures are logged, the game goes on.
func (m Model) saveResult() {
	st := m.gameState
	m.logger.Info("game over",
		"game", m.game.ID(),
		"score", st.Score,
		"level", st.Level,
		"blocks", st.Blocks,
		"lines", st.Lines,
	)
	if m.store == nil || st.Blocks == 0 {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		GameID:       m.game.ID(),
		Score:        st.Score,
		Level:        st.Level,
		BlocksPlaced: st.Blocks,
		LinesCleared: st.Lines,
	})
	if err != nil {
		m.logger.Warn("could not save result", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under ~/.blockfit/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".blockfit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the game above a one-line key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// GameState returns the state after the most recent tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the user quits or goes back.
// It reports whether the user asked for the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
