package jumpboy

import (
	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/sequence"
)

type gameOver struct {
	stage
	seq          *sequence.Sequence[Scene]
	showGameOver bool
	showGameEnd  bool
}

func newGameOver(st stage) *gameOver {
	st.audio.StopMusic()
	st.playTimer.Pause()
	for _, b := range st.snap.Balls {
		b.Stop()
	}
	st.record(st.point)
	st.save()

	g := &gameOver{stage: st}
	g.seq = sequence.New[Scene](st.sw,
		sequence.Step[Scene]{DelayMs: 1000, Process: func(bool, *clock.Timer) bool {
			g.showGameOver = true
			g.audio.PlaySound(SoundGameOver)
			return true
		}},
		sequence.Step[Scene]{DelayMs: 2000, Process: func(bool, *clock.Timer) bool {
			g.showGameEnd = true
			return true
		}},
	)
	return g
}

func (g *gameOver) Name() string { return "game_over" }

func (g *gameOver) Update(in core.InputFrame) Scene {
	if g.seq.Ended() && in.Confirmed() {
		g.snap.Level = g.design.FirstLevel()
		g.initialSprites(true)
		g.save()
		return newTitle(g.session)
	}
	if next := g.frame(g.seq, in, true); next != nil {
		return next
	}
	return g
}
