// Package registry maps game IDs to factories. Each game variant registers
// itself from init(), so the CLI and the SSH server only need a blank
// import and an ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/jumpboy/internal/core"
)

// Game is what the platform drives: one fixed tick per Step, a render into
// a character screen, and a summary state. Games never touch the terminal.
type Game interface {
	// ID is the stable key used by the CLI and the score history.
	ID() string
	Title() string

	// Reset starts a new session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions pressed or held this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, un-Reset game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. The title is read from a throwaway instance.
// Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new instance of the variant.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
