// Package registry is the catalogue of playable game modes. Modes register a
// factory from init() and the platform looks them up by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/euartex/blockfit/internal/core"
)

// Game is what the platform drives: a fixed-rate step function plus a
// renderer. Implementations must not depend on Bubble Tea.
type Game interface {
	// ID is the stable mode identifier used by the CLI and score storage.
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset starts a new session with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one frame of input and advances animations.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current summary.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line menu blurb.
type Describer interface {
	Description() string
}

// Resizable is implemented by games that can adapt to a new screen size
// without starting over. Other games are Reset on resize.
type Resizable interface {
	Resize(width, height int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	factories[id] = f
	infos[id] = info
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Info returns the metadata for a mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}
