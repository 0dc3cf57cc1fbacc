package jumpboy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/config"
	"github.com/vovakirdan/jumpboy/internal/core"
)

// recordAudio remembers everything it was asked to play.
type recordAudio struct {
	sounds []SoundID
	music  []string
}

func (a *recordAudio) PlaySound(id SoundID)  { a.sounds = append(a.sounds, id) }
func (a *recordAudio) PlayMusic(name string) { a.music = append(a.music, name) }
func (a *recordAudio) StopMusic()            {}

func (a *recordAudio) count(id SoundID) int {
	n := 0
	for _, s := range a.sounds {
		if s == id {
			n++
		}
	}
	return n
}

// memoryStore is an in-memory Persister.
type memoryStore struct {
	data  []byte
	saves int
}

func (m *memoryStore) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *memoryStore) Load() ([]byte, error) { return m.data, nil }

var fixedNow = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

func testDesign(seed int64) *Design {
	return NewDesign(config.DefaultJumpBoyConfig(), rand.New(rand.NewSource(seed)))
}

// testSession builds a session on the embedded config at level l.
func testSession(t *testing.T, l Level) (*session, *recordAudio) {
	t.Helper()
	a := &recordAudio{}
	s := newSession(config.DefaultJumpBoyConfig(), clock.NewStopwatch(30), rand.New(rand.NewSource(42)), a, nil, fixedNow)
	s.snap.Level = l
	s.initialSprites(true)
	return s, a
}

// groundJumper places a standing-by jumper on the ground at x.
func groundJumper(s *session, x float64) *Jumper {
	j := s.snap.Jumper
	j.Origin = core.Vec{X: x, Y: s.snap.Field.Bottom() - j.Size.H}
	j.StandBy()
	return j
}

func confirm() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

func hold() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionHold)
	return in
}

func cancel() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionCancel)
	return in
}

func none() core.InputFrame {
	return core.NewInputFrame()
}

// newTestGame resets a game with no user config and fixed time.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.now = fixedNow
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

// stepUntil steps g with no input until the scene is name or limit frames
// passed.
func stepUntil(t *testing.T, g *Game, name string, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if g.scene.Name() == name {
			return
		}
		g.Step(none())
	}
	if g.scene.Name() != name {
		t.Fatalf("scene = %s after %d frames, expected %s", g.scene.Name(), limit, name)
	}
}
