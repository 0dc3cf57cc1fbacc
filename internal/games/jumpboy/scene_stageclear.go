package jumpboy

import (
	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/sequence"
)

const nextWalkWaitMs = 3000

// stageClear waits for the jumper to land, pays the life bonus and moves
// on to the next stage, or to the ending after the last stage of a mode.
type stageClear struct {
	stage
	seq *sequence.Sequence[Scene]

	next        Level
	hasNext     bool
	sameSurface bool
	bonus       int

	showClear bool
	showNext  bool
	walked    bool
}

func newStageClear(st stage) *stageClear {
	st.audio.StopMusic()
	st.playTimer.Pause()
	for _, b := range st.snap.Balls {
		b.Stop()
	}
	st.snap.Jumper.Stop()

	c := &stageClear{stage: st, next: st.snap.Level, hasNext: true}
	c.seq = sequence.New[Scene](st.sw,
		sequence.Step[Scene]{Process: c.waitJumper},
		sequence.Step[Scene]{DelayMs: 1000, Process: func(bool, *clock.Timer) bool {
			c.showClear = true
			c.audio.PlaySound(SoundStageClear)
			return true
		}},
		sequence.Step[Scene]{DelayMs: 2000, Process: c.walkOff},
	)
	return c
}

func (c *stageClear) Name() string { return "stage_clear" }

func (c *stageClear) Update(in core.InputFrame) Scene {
	if !c.hasNext {
		return newGameClear(c.stage)
	}
	if c.seq.Ended() || (c.showNext && in.Holding()) {
		c.snap.Level = c.next
		c.initialSprites(false)
		if c.sameSurface {
			c.snap.Jumper.Origin.X = c.snap.Field.StartX
		}
		c.save()
		return newReady(c.session, c.point)
	}
	if next := c.frame(c.seq, in, true); next != nil {
		return next
	}
	return c
}

// waitJumper lets a jump in flight land before scoring the stage.
func (c *stageClear) waitJumper(bool, *clock.Timer) bool {
	j := c.snap.Jumper
	if j.Jumping() {
		return false
	}
	j.Stop()

	c.bonus = c.design.BonusPoint(c.snap.Level, j)
	c.point += c.bonus

	c.next, c.hasNext = c.design.NextLevel(c.snap.Level)
	if c.hasNext && c.next.Mode != c.snap.Level.Mode {
		c.hasNext = false
	}
	if !c.hasNext {
		// The ending records the run.
		return true
	}
	c.record(c.point)
	c.save()
	c.sameSurface = c.design.Surface(c.next) == c.snap.Field.Surface
	return true
}

// walkOff shows the next stage and walks the jumper out when the surface
// changes.
func (c *stageClear) walkOff(first bool, timer *clock.Timer) bool {
	j := c.snap.Jumper
	if first {
		c.showNext = true
		if !c.sameSurface {
			j.Walk(c.snap.Field.Left() - j.Size.W)
		}
		return false
	}
	if j.Walking() {
		return false
	}
	if !c.sameSurface && !c.walked {
		timer.SetLimit(nextWalkWaitMs)
		timer.Reset()
		c.walked = true
	}
	return true
}

// Next returns the level that follows, if any.
func (c *stageClear) Next() (Level, bool) { return c.next, c.hasNext }
