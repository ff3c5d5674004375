// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so frontends can look
// them up by ID without importing each game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/core"
)

// Game is the contract between a game and the platform hosts.
// Games contain pure logic; hosts handle input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier, used for CLI arguments.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game. The RuntimeConfig provides the screen
	// size, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, level and status flags.
	State() core.GameState
}

// Logged is implemented by games that emit structured log records.
type Logged interface {
	SetLogger(l *log.Logger)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID and hands it the logger when the
// game accepts one. A nil logger leaves the game's own default in place.
func Create(id string, logger *log.Logger) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g := f()
	if lg, ok := g.(Logged); ok && logger != nil {
		lg.SetLogger(logger)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
