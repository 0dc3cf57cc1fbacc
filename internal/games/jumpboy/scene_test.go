package jumpboy

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/jumpboy/internal/core"
)

// withAudio installs a recording audio for the test.
func withAudio(t *testing.T) *recordAudio {
	a := &recordAudio{}
	SetAudio(a)
	t.Cleanup(func() { SetAudio(nil) })
	return a
}

func withStore(t *testing.T) *memoryStore {
	m := &memoryStore{}
	SetPersister(m)
	t.Cleanup(func() { SetPersister(nil) })
	return m
}

// toPlay skips the opening, starts from the title and waits for play.
func toPlay(t *testing.T, g *Game) *play {
	t.Helper()
	g.Step(confirm())
	if g.scene.Name() != "title" {
		t.Fatalf("scene = %s after skipping the opening, expected title", g.scene.Name())
	}
	g.Step(confirm())
	stepUntil(t, g, "ready", 100)
	stepUntil(t, g, "play", 2000)
	return g.scene.(*play)
}

func TestOpeningRunsToTitle(t *testing.T) {
	a := withAudio(t)
	g := newTestGame(t, 1)
	if g.scene.Name() != "opening" {
		t.Fatalf("scene = %s, expected opening", g.scene.Name())
	}
	stepUntil(t, g, "title", 1000)

	if a.count(SoundTitle) != 1 {
		t.Errorf("title sounds = %d, expected 1", a.count(SoundTitle))
	}
	if j := g.Snapshot().Jumper; j.Origin.X != g.Snapshot().Field.StartX {
		t.Errorf("jumper x = %v, expected the start line", j.Origin.X)
	}
}

func TestOpeningSkip(t *testing.T) {
	a := withAudio(t)
	g := newTestGame(t, 1)
	g.Step(confirm())
	if g.scene.Name() != "title" {
		t.Fatalf("scene = %s, expected title", g.scene.Name())
	}
	if a.count(SoundTitle) != 1 {
		t.Errorf("title sounds = %d, expected 1", a.count(SoundTitle))
	}
}

func TestTitleToPlay(t *testing.T) {
	a := withAudio(t)
	g := newTestGame(t, 1)
	p := toPlay(t, g)

	if a.count(SoundSelect) != 1 {
		t.Errorf("select sounds = %d, expected 1", a.count(SoundSelect))
	}
	if a.count(SoundReady) != 3 {
		t.Errorf("countdown beeps = %d, expected 3", a.count(SoundReady))
	}
	j := g.Snapshot().Jumper
	if !j.StandingBy() {
		t.Errorf("jumper Action() = %v, expected stand_by", j.Action())
	}
	if p.PlayRemainingMs() != 15000 {
		t.Errorf("PlayRemainingMs() = %d, expected the full limit", p.PlayRemainingMs())
	}
	if got := a.music[len(a.music)-1]; got != "field1" {
		t.Errorf("music = %s, expected field1", got)
	}
}

func TestPlaySpawnsBalls(t *testing.T) {
	g := newTestGame(t, 1)
	toPlay(t, g)

	g.Step(none())
	balls := g.Snapshot().Balls
	if len(balls) != 1 || !balls[0].Spinning() {
		t.Fatalf("expected one rolling ball on the first frame, got %d", len(balls))
	}

	// The second ball waits for the stage wait and the gap.
	spinning := func() int {
		n := 0
		for _, b := range g.Snapshot().Balls {
			if b.Spinning() {
				n++
			}
		}
		return n
	}
	for i := 0; i < 30; i++ {
		g.Step(none())
		if spinning() > 1 {
			t.Fatalf("frame %d: second ball rolled before its wait", i)
		}
	}
}

func TestPauseResume(t *testing.T) {
	a := withAudio(t)
	g := newTestGame(t, 1)
	toPlay(t, g)
	for i := 0; i < 10; i++ {
		g.Step(none())
	}

	p := g.scene.(*play)
	remaining := p.PlayRemainingMs()
	res := g.Step(cancel())
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	positions := map[int]float64{}
	for _, b := range g.Snapshot().Balls {
		positions[b.ID] = b.Origin.X
	}

	for i := 0; i < 60; i++ {
		g.Step(none())
	}
	ps := g.scene.(*pause)
	if ps.PlayRemainingMs() != remaining {
		t.Errorf("PlayRemainingMs() = %d while paused, expected %d", ps.PlayRemainingMs(), remaining)
	}
	for _, b := range g.Snapshot().Balls {
		if b.Origin.X != positions[b.ID] {
			t.Errorf("ball %d moved while paused", b.ID)
		}
	}

	g.Step(confirm())
	if g.scene.Name() != "play" {
		t.Fatalf("scene = %s, expected play", g.scene.Name())
	}
	if a.count(SoundPause) != 1 || a.count(SoundRestart) != 1 {
		t.Errorf("pause/restart sounds = %d/%d, expected 1/1", a.count(SoundPause), a.count(SoundRestart))
	}
}

func TestGameOver(t *testing.T) {
	store := withStore(t)
	g := newTestGame(t, 1)
	toPlay(t, g)

	j := g.Snapshot().Jumper
	j.SetLife(1)
	j.Damage()
	res := g.Step(none())

	if !res.State.GameOver {
		t.Fatalf("scene = %s, expected game over", res.State.Scene)
	}
	if res.Finished == nil {
		t.Fatal("expected a finished run")
	}
	if res.Finished.Mode != 0 || res.Finished.Stage != 0 {
		t.Errorf("Finished = %+v, expected mode 0 stage 0", *res.Finished)
	}
	if next := g.Step(none()); next.Finished != nil {
		t.Error("finished run reported twice")
	}
	if len(g.Snapshot().ScoreBoard.Scores) != 1 {
		t.Errorf("scores = %d, expected 1", len(g.Snapshot().ScoreBoard.Scores))
	}
	if store.saves == 0 {
		t.Error("expected the snapshot saved")
	}

	// Confirm is ignored until the banners are done.
	g.Step(confirm())
	if g.scene.Name() != "game_over" {
		t.Fatalf("scene = %s, expected game_over", g.scene.Name())
	}
	for i := 0; i < 120; i++ {
		g.Step(none())
	}
	g.Step(confirm())
	if g.scene.Name() != "title" {
		t.Fatalf("scene = %s, expected title", g.scene.Name())
	}
	if g.Snapshot().Level != (Level{}) {
		t.Errorf("Level = %v, expected the first level", g.Snapshot().Level)
	}
}

func TestStageClearAdvances(t *testing.T) {
	a := withAudio(t)
	withStore(t)
	g := newTestGame(t, 1)
	p := toPlay(t, g)

	point := p.Point()
	p.playTimer.SetLimit(0)
	res := g.Step(none())
	if res.State.Scene != "stage_clear" {
		t.Fatalf("scene = %s, expected stage_clear", res.State.Scene)
	}
	if a.count(SoundTimeUp) != 1 {
		t.Errorf("time up sounds = %d, expected 1", a.count(SoundTimeUp))
	}

	stepUntil(t, g, "ready", 2000)
	r := g.scene.(*ready)
	if g.Snapshot().Level != (Level{Stage: 1}) {
		t.Errorf("Level = %v, expected the second stage", g.Snapshot().Level)
	}
	if r.Point() != point+5 {
		t.Errorf("Point() = %d, expected %d with the full life bonus", r.Point(), point+5)
	}
	if len(g.Snapshot().ScoreBoard.Scores) != 1 {
		t.Errorf("scores = %d, expected 1", len(g.Snapshot().ScoreBoard.Scores))
	}
	if len(g.Snapshot().Balls) != 0 {
		t.Errorf("balls = %d, expected the field cleared", len(g.Snapshot().Balls))
	}
}

func TestReadyRecoversLife(t *testing.T) {
	a := withAudio(t)
	g := newTestGame(t, 1)
	p := toPlay(t, g)

	j := g.Snapshot().Jumper
	j.SetLife(2)
	p.playTimer.SetLimit(0)
	stepUntil(t, g, "ready", 2000)
	stepUntil(t, g, "play", 2000)

	if got := g.Snapshot().Jumper.Life(); got != 4 {
		t.Errorf("Life() = %d, expected 4 after recovering two", got)
	}
	if a.count(SoundRecoverLife) != 2 {
		t.Errorf("recover sounds = %d, expected 2", a.count(SoundRecoverLife))
	}
}

func TestLastStageGoesToGameClear(t *testing.T) {
	store := withStore(t)
	SetStartStage(12)
	t.Cleanup(func() { SetStartStage(0) })
	g := newTestGame(t, 1)
	if g.Snapshot().Level != (Level{Stage: 11}) {
		t.Fatalf("Level = %v, expected the last stage", g.Snapshot().Level)
	}
	p := toPlay(t, g)

	p.playTimer.SetLimit(0)
	var finished []*core.RunResult
	for i := 0; i < 3000 && g.scene.Name() != "title"; i++ {
		if res := g.Step(none()); res.Finished != nil {
			finished = append(finished, res.Finished)
		}
		if i == 0 && g.scene.Name() != "stage_clear" {
			t.Fatalf("scene = %s, expected stage_clear", g.scene.Name())
		}
	}

	if g.scene.Name() != "title" {
		t.Fatalf("scene = %s, expected title", g.scene.Name())
	}
	if len(finished) != 1 {
		t.Errorf("finished runs = %d, expected 1 from the ending", len(finished))
	}
	if g.Snapshot().Level != (Level{Mode: 1}) {
		t.Errorf("Level = %v, expected the hard mode", g.Snapshot().Level)
	}

	var saved map[string]any
	if err := json.Unmarshal(store.data, &saved); err != nil {
		t.Fatalf("saved snapshot: %v", err)
	}
	if saved["level"] != float64(1) {
		t.Errorf("saved level = %v, expected 1", saved["level"])
	}
}

func TestSavedModeRestored(t *testing.T) {
	store := withStore(t)
	store.data = []byte(`{"score_board": [{"created_at": 1714564800, "level": 0, "stage": 3, "point": 120}], "level": 1}`)
	g := newTestGame(t, 1)

	if g.Snapshot().Level != (Level{Mode: 1}) {
		t.Errorf("Level = %v, expected mode 1", g.Snapshot().Level)
	}
	if len(g.Snapshot().ScoreBoard.Scores) != 1 {
		t.Errorf("scores = %d, expected 1", len(g.Snapshot().ScoreBoard.Scores))
	}
}

func TestHardGameStartsInSecondMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := NewHard()
	g.Reset(core.DefaultConfig())
	if g.Snapshot().Level.Mode != 1 {
		t.Errorf("Mode = %d, expected 1", g.Snapshot().Level.Mode)
	}
	if g.Snapshot().Jumper.Param.MaxLife != 3 {
		t.Errorf("MaxLife = %d, expected 3", g.Snapshot().Jumper.Param.MaxLife)
	}
	if g.ID() != HardGameID {
		t.Errorf("ID() = %s, expected %s", g.ID(), HardGameID)
	}
}

func TestDeterminism(t *testing.T) {
	script := func(frame int) core.InputFrame {
		switch {
		case frame < 2:
			return confirm()
		case frame%23 == 0:
			return confirm()
		case frame%23 < 6:
			return hold()
		}
		return none()
	}

	g1 := newTestGame(t, 7)
	g2 := newTestGame(t, 7)
	for i := 0; i < 1500; i++ {
		r1, r2 := g1.Step(script(i)), g2.Step(script(i))
		if r1.State != r2.State {
			t.Fatalf("frame %d: states diverged: %+v vs %+v", i, r1.State, r2.State)
		}
		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if s1.Jumper.Origin != s2.Jumper.Origin {
			t.Fatalf("frame %d: jumper diverged", i)
		}
		if len(s1.Balls) != len(s2.Balls) {
			t.Fatalf("frame %d: ball count %d vs %d", i, len(s1.Balls), len(s2.Balls))
		}
		for k := range s1.Balls {
			if s1.Balls[k].Origin != s2.Balls[k].Origin || s1.Balls[k].Param.SpinDistance != s2.Balls[k].Param.SpinDistance {
				t.Fatalf("frame %d: ball %d diverged", i, k)
			}
		}
	}
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != GameID || g.Title() != "Jump Boy" {
		t.Errorf("ID() = %s Title() = %s, expected %s Jump Boy", g.ID(), g.Title(), GameID)
	}
}
