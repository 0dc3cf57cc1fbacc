// Package tui runs games in the terminal with Bubble Tea, locally or over
// SSH, and shows the score history.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/registry"
	"github.com/vovakirdan/jumpboy/internal/storage"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	hold     holdTracker
	input    core.InputFrame
	state    core.GameState
	saved    int
	quitting bool
}

// NewModel creates a model for game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		hold:   newHoldTracker(cfg.TickRate, DefaultHoldWindow),
		input:  core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The game scales to the screen, so a resize keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	switch {
	case quit, action == core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionConfirm:
		m.hold.press(&m.input)
	case action != core.ActionNone:
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.tick(&m.input)
	result := m.game.Step(m.input)
	m.state = result.State
	if result.Finished != nil {
		m.record(*result.Finished)
	}
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record writes a finished run to the score history. Empty runs are skipped.
func (m *Model) record(r core.RunResult) {
	if m.store == nil || r.Point <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), r.Mode, r.Stage, r.Point)
	m.saved++
}

// saveScreenshot writes the current screen as text under ~/.arcade.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
