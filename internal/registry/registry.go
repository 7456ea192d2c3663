// Package registry lets track variants register themselves from init()
// so the frontends can list and build them by ID.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/lane-dodger/internal/core"
)

// Game is the interface the frontends drive.
// Implementations contain pure logic with no Bubble Tea or ebiten dependency;
// the platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the variant identifier (e.g., "corridor").
	// Used for CLI arguments and as the score table key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh run using the screen size and seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies the input edges observed since the previous call and then
	// advances the simulation by dt seconds of wall-clock time.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Describer is implemented by games that carry a one-line description.
type Describer interface {
	Blurb() string
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Blurb string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries []entry
	byID    = make(map[string]int)
	mu      sync.RWMutex
)

// Register adds a variant factory. Variants are listed in registration order.
// Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	sample := f()
	info := GameInfo{ID: id, Title: sample.Title()}
	if d, ok := sample.(Describer); ok {
		info.Blurb = d.Blurb()
	}

	byID[id] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns all registered variants in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return entries[i].factory(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
