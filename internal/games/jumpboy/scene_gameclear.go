package jumpboy

import (
	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/sequence"
)

// gameClear is the ending of a mode: joy hops, a walk off screen, then the
// title with the next mode.
type gameClear struct {
	stage
	seq *sequence.Sequence[Scene]

	next    Level
	hasNext bool

	showClear  bool
	showThanks bool
	showBye    bool
}

func newGameClear(st stage) *gameClear {
	st.audio.StopMusic()
	st.record(st.point)
	st.save()

	g := &gameClear{stage: st}
	g.next, g.hasNext = st.design.NextLevel(st.snap.Level)
	g.seq = sequence.New[Scene](st.sw,
		sequence.Step[Scene]{DelayMs: 2000, Process: func(bool, *clock.Timer) bool {
			g.showClear = true
			g.snap.Jumper.Joy()
			g.audio.PlayMusic(g.design.EndMusic(g.snap.Level))
			return true
		}},
		sequence.Step[Scene]{Process: func(bool, *clock.Timer) bool {
			return !g.snap.Jumper.Joying()
		}},
		sequence.Step[Scene]{DelayMs: 2000, Process: g.walkOff},
		sequence.Step[Scene]{DelayMs: 3000},
	)
	return g
}

func (g *gameClear) Name() string { return "game_clear" }

func (g *gameClear) Update(in core.InputFrame) Scene {
	if g.seq.Ended() {
		if g.hasNext {
			g.snap.Level = g.next
		} else {
			g.snap.Level = g.design.FirstLevel()
		}
		g.initialSprites(true)
		g.save()
		return newTitle(g.session)
	}
	if next := g.frame(g.seq, in, true); next != nil {
		return next
	}
	return g
}

func (g *gameClear) walkOff(first bool, _ *clock.Timer) bool {
	j := g.snap.Jumper
	if first {
		g.showThanks = true
		j.Walk(g.snap.Field.Left() - j.Size.W)
		return false
	}
	if j.Walking() {
		return false
	}
	g.showBye = true
	return true
}
