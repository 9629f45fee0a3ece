package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/euartex/blockfit/internal/core"
	"github.com/euartex/blockfit/internal/registry"
	"github.com/euartex/blockfit/internal/storage"
)

// MenuItemKind tells what choosing a menu entry does.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemScores
	MenuItemHowTo
	MenuItemQuit
)

// MenuItem is one selectable line of the main menu.
type MenuItem struct {
	Kind        MenuItemKind
	GameID      string // Set for MenuItemGame
	Title       string
	Description string
	Best        int // High score of the mode, 0 when none
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var howToPlay = []string{
	"Drop the offered blocks on the 8x8 board.",
	"A full row or column clears and scores",
	"100 points per line times your level.",
	"Every 10 blocks placed raises the level.",
	"When the last offered block is used,",
	"three new ones are dealt.",
	"The game ends when no offered block fits.",
	"",
	"Mouse: click a tray slot, then a board cell.",
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	showHowTo      bool
	quitting       bool
	selected       *MenuItem // Set when user picks a mode
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered mode.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)

	for _, g := range games {
		item := MenuItem{
			Kind:        MenuItemGame,
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Kind: MenuItemScores, Title: "High Scores"},
		MenuItem{Kind: MenuItemHowTo, Title: "How to Play"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.showHowTo {
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect, MenuActionBack:
			m.showHowTo = false
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(m.items))

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(m.items))

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		return m.choose()
	}

	return m, nil
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]
	switch item.Kind {
	case MenuItemGame:
		m.selected = &item
		return m, tea.Quit
	case MenuItemScores:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuItemHowTo:
		m.showHowTo = true
	case MenuItemQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  B L O C K F I T  "), m.width))
	b.WriteString("\n\n")

	if m.showHowTo {
		b.WriteString(centerText(menuTitleStyle.Render("How to Play"), m.width))
		b.WriteString("\n\n")
		for _, line := range howToPlay {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render("Enter/Esc: Back"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if item.Kind != MenuItemGame && (i == 0 || m.items[i-1].Kind == MenuItemGame) {
			b.WriteString("\n")
		}

		line := item.Title
		if item.Best > 0 {
			line = fmt.Sprintf("%-18s best %d", item.Title, item.Best)
		}
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line + " ")
		} else {
			line = "  " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if desc := m.items[m.cursor].Description; desc != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen mode, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
