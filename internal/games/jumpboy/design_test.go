package jumpboy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/jumpboy/internal/core"
)

func TestNextLevel(t *testing.T) {
	d := testDesign(1)
	tests := []struct {
		in     Level
		expect Level
		ok     bool
	}{
		{Level{0, 0}, Level{0, 1}, true},
		{Level{0, 11}, Level{1, 0}, true},
		{Level{1, 5}, Level{1, 6}, true},
		{Level{1, 11}, Level{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, ok := d.NextLevel(tt.in)
			if got != tt.expect || ok != tt.ok {
				t.Errorf("NextLevel(%v) = %v, %v, expected %v, %v", tt.in, got, ok, tt.expect, tt.ok)
			}
		})
	}
}

func TestUnconfiguredLevelPanics(t *testing.T) {
	d := testDesign(1)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "no stage configured") {
			t.Errorf("panic = %v, expected a configuration message", r)
		}
	}()
	d.PlayLimitMs(Level{Mode: 0, Stage: 12})
}

func TestSpinDistanceAntiRepetition(t *testing.T) {
	lvl := Level{Stage: 2}
	tests := []struct {
		name   string
		prev   []float64
		expect []int
	}{
		{"no history is fast", nil, []int{3}},
		{"one ball is fast", []float64{3}, []int{3}},
		{"two slow balls give a fast one", []float64{2, 2}, []int{3}},
		{"two fast balls give a slow one", []float64{3, 3}, []int{2}},
		{"mixed history draws", []float64{2, 3}, []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDesign(5)
			for _, p := range tt.prev {
				d.prev = append(d.prev, BallParam{SpinDistance: p})
			}
			got := int(d.Ball(lvl, testSession2(t).sw).Param.SpinDistance)
			found := false
			for _, e := range tt.expect {
				if got == e {
					found = true
				}
			}
			if !found {
				t.Errorf("SpinDistance = %d, expected one of %v", got, tt.expect)
			}
		})
	}
}

// testSession2 returns a bare session for its stopwatch.
func testSession2(t *testing.T) *session {
	s, _ := testSession(t, Level{})
	return s
}

func TestLeapHeightAlternates(t *testing.T) {
	d := testDesign(1)
	sw := testSession2(t).sw
	lvl := Level{Stage: 6}

	expect := []float64{48, 96, 48, 96}
	for i, e := range expect {
		b := d.Ball(lvl, sw)
		if b.Param.FirstY != e {
			t.Errorf("ball %d FirstY = %v, expected %v", i, b.Param.FirstY, e)
		}
		if b.Param.MaxAccel != -8 {
			t.Errorf("ball %d MaxAccel = %d, expected -8", i, b.Param.MaxAccel)
		}
	}
}

func TestLeapAccelSpan(t *testing.T) {
	d := testDesign(3)
	sw := testSession2(t).sw
	for i := 0; i < 50; i++ {
		b := d.Ball(Level{Stage: 11}, sw)
		if b.Param.MaxAccel > -6 || b.Param.MaxAccel < -10 {
			t.Fatalf("MaxAccel = %d, expected within [-10, -6]", b.Param.MaxAccel)
		}
	}
}

func TestNextBallWait(t *testing.T) {
	d := testDesign(1)
	s := testSession2(t)
	balls := func(n int) []*Ball {
		out := make([]*Ball, n)
		for i := range out {
			out[i] = d.Ball(Level{}, s.sw)
		}
		return out
	}

	tests := []struct {
		name   string
		lvl    Level
		balls  []*Ball
		expect []int
		ok     bool
	}{
		{"first ball has no wait", Level{Stage: 3}, nil, []int{0}, true},
		{"fixed wait", Level{Stage: 0}, balls(1), []int{2000}, true},
		{"cap reached", Level{Stage: 3}, balls(2), []int{0}, false},
		{"under cap", Level{Stage: 3}, balls(1), []int{3000}, true},
		{"stepped wait", Level{Stage: 2}, balls(1), []int{1000, 2000}, true},
		{"zero base wait", Level{Stage: 11}, balls(2), []int{0, 1000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.NextBallWait(tt.lvl, tt.balls)
			if ok != tt.ok {
				t.Fatalf("NextBallWait() ok = %v, expected %v", ok, tt.ok)
			}
			for _, e := range tt.expect {
				if got == e {
					return
				}
			}
			t.Errorf("NextBallWait() = %d, expected one of %v", got, tt.expect)
		})
	}
}

func TestCanSpin(t *testing.T) {
	s := testSession2(t)
	d := s.design
	lvl := Level{Stage: 0}
	f := d.Field(lvl)

	waiting := d.Ball(lvl, s.sw)
	last := d.Ball(lvl, s.sw)
	last.Spin()

	// Stage 1 gap is half the field width.
	tests := []struct {
		name   string
		lastX  float64
		last   *Ball
		expect bool
	}{
		{"no rolling ball", 0, nil, true},
		{"newest ball too close", 79, last, false},
		{"newest ball past the gap", 80, last, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last.Origin = core.Vec{X: tt.lastX}
			if got := d.CanSpin(lvl, f, waiting, tt.last); got != tt.expect {
				t.Errorf("CanSpin() = %v, expected %v", got, tt.expect)
			}
		})
	}

	waiting.SpinAfter(s.sw, 1000)
	last.Origin.X = 150
	if d.CanSpin(lvl, f, waiting, last) {
		t.Error("CanSpin() = true while the ball's own wait runs")
	}
}

func TestBonusPoint(t *testing.T) {
	s := testSession2(t)
	d := s.design
	tests := []struct {
		name   string
		lvl    Level
		life   int
		expect int
	}{
		{"normal full", Level{}, 5, 5},
		{"normal one down", Level{}, 4, 2},
		{"normal two down", Level{}, 3, 0},
		{"hard full", Level{Mode: 1}, 3, 6},
		{"hard one down", Level{Mode: 1}, 2, 3},
		{"hard last life", Level{Mode: 1}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := d.Jumper(tt.lvl, s.sw)
			j.SetLife(tt.life)
			if got := d.BonusPoint(tt.lvl, j); got != tt.expect {
				t.Errorf("BonusPoint() = %d, expected %d", got, tt.expect)
			}
		})
	}
}

func TestDesignLookups(t *testing.T) {
	d := testDesign(1)
	if got := d.PlayLimitMs(Level{Stage: 11}); got != 40000 {
		t.Errorf("PlayLimitMs() = %d, expected 40000", got)
	}
	if got := d.RecoveryLife(Level{Mode: 1}); got != 1 {
		t.Errorf("RecoveryLife() = %d, expected 1", got)
	}
	if got := d.FieldMusic(Level{Stage: 9}); got != "field4" {
		t.Errorf("FieldMusic() = %s, expected field4", got)
	}
	if got := d.ModeTitle(Level{Mode: 1}); got != "JUMP GIRL" {
		t.Errorf("ModeTitle() = %s, expected JUMP GIRL", got)
	}

	f := d.Field(Level{Stage: 9})
	if len(f.Obstacles) != 2 {
		t.Fatalf("wood obstacles = %d, expected 2", len(f.Obstacles))
	}
	if f.StartX != 80 {
		t.Errorf("StartX = %v, expected 80", f.StartX)
	}
}
