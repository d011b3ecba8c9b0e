// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so front ends can discover
// and instantiate them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/shooter3d/internal/core"
)

// Game is the contract every simulation offers to the front ends.
// Games hold pure logic; the platform owns input, timing and output.
type Game interface {
	// ID returns a unique identifier used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state. Called once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with this tick's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Reporter is implemented by games that can describe themselves as plain
// text and report what happened during the last tick.
type Reporter interface {
	StatusLines() []string
	GameOverLines() []string
	Events() []core.Event
}

// ReportingGame is a Game that is also a Reporter.
type ReportingGame interface {
	Game
	Reporter
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

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// CreateReporting instantiates a game that must also implement Reporter.
func CreateReporting(id string) (ReportingGame, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	rg, ok := g.(ReportingGame)
	if !ok {
		return nil, fmt.Errorf("registry: game %q does not report text status", id)
	}
	return rg, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
