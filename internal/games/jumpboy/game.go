// Package jumpboy implements Jump Boy, a one-button platformer: the jumper
// stomps or leaps over rolling balls until the stage clock runs out.
//
// The simulation is frame-stepped and deterministic for a given seed and
// input sequence. Rendering, sound and persistence are reached through
// small collaborator interfaces.
package jumpboy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/config"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/registry"
)

// Game IDs. The hard variant starts in the second mode.
const (
	GameID     = "jumpboy"
	HardGameID = "jumpboy_hard"
)

// Package-level settings applied on Reset, set by the CLI.
var (
	configPath string
	startStage int
	persister  Persister
	audio      Audio = LogAudio{}
)

// SetConfigPath sets a custom YAML config path. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartStage sets the 1-based stage to start from. 0 keeps the saved
// level.
func SetStartStage(stage int) {
	startStage = stage
}

// SetPersister sets where snapshots are saved. nil disables saving.
func SetPersister(p Persister) {
	persister = p
}

// SetAudio sets the sound collaborator. nil restores the logging one.
func SetAudio(a Audio) {
	if a == nil {
		a = LogAudio{}
	}
	audio = a
}

// Game adapts the scene machine to the arcade platform.
type Game struct {
	hard bool
	now  func() time.Time

	cfg   config.JumpBoyConfig
	s     *session
	scene Scene
}

// New creates a Jump Boy game in normal mode.
func New() *Game {
	return &Game{now: time.Now}
}

// NewHard creates a Jump Boy game starting in hard mode.
func NewHard() *Game {
	return &Game{hard: true, now: time.Now}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(HardGameID, func() registry.Game {
		return NewHard()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.hard {
		return HardGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.hard {
		return "Jump Girl"
	}
	return "Jump Boy"
}

// Reset builds a new session. Config errors fall back to the embedded
// defaults so a broken user file never blocks play.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("config load failed, using defaults", "err", err)
		cfg = config.DefaultJumpBoyConfig()
	}
	g.cfg = cfg

	fps := rc.TickRate
	if fps <= 0 {
		fps = cfg.FPS
	}

	s := newSession(cfg, clock.NewStopwatch(fps), rand.New(rand.NewSource(rc.Seed)), audio, persister, g.now)
	s.load()
	if g.hard {
		s.snap.Level = Level{Mode: 1}
	}
	if startStage > 0 {
		lvl := Level{Mode: s.snap.Level.Mode, Stage: startStage - 1}
		if s.design.Valid(lvl) {
			s.snap.Level = lvl
		} else {
			logger.Warn("start stage not configured", "stage", startStage)
		}
	}

	g.s = s
	g.scene = newOpening(s)
	logger.Debug("reset", "level", s.snap.Level, "fps", fps, "seed", rc.Seed)
}

// newSession wires a session with an empty score board at the first level.
func newSession(cfg config.JumpBoyConfig, sw *clock.Stopwatch, rng *rand.Rand, a Audio, store Persister, now func() time.Time) *session {
	d := NewDesign(cfg, rng)
	s := &session{
		cfg:    cfg,
		design: d,
		sw:     sw,
		audio:  a,
		store:  store,
		now:    now,
		snap: &Snapshot{
			Level:      d.FirstLevel(),
			ScoreBoard: &ScoreBoard{},
		},
	}
	return s
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.scene = g.scene.Update(in)

	res := core.StepResult{State: g.State()}
	if g.s.finished != nil {
		res.Finished = g.s.finished
		g.s.finished = nil
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Scene: g.scene.Name(),
		Mode:  g.s.snap.Level.Mode,
		Stage: g.s.snap.Level.Stage,
	}
	if p, ok := g.scene.(interface{ Point() int }); ok {
		st.Score = p.Point()
	}
	switch g.scene.(type) {
	case *gameOver:
		st.GameOver = true
	case *pause:
		st.Paused = true
	}
	return st
}

// Snapshot exposes the live aggregate, mainly for tests and tools.
func (g *Game) Snapshot() *Snapshot {
	return g.s.snap
}

// FrameMs returns the simulation time in milliseconds.
func (g *Game) FrameMs() int {
	return g.s.sw.NowMs()
}
