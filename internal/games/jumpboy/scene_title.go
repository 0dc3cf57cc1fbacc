package jumpboy

import (
	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/sequence"
)

// RankingSize is the number of scores shown on the title screen.
const RankingSize = 3

// title waits for confirm. Left alone, the jumper wanders off and the
// ranking slides in.
type title struct {
	*session
	seq         *sequence.Sequence[Scene]
	waitStart   bool
	showStart   bool
	showRanking bool
	ranking     slide
}

func newTitle(s *session) *title {
	t := &title{session: s, showStart: true}
	s.audio.PlayMusic(s.design.TitleMusic(s.snap.Level))
	t.seq = sequence.New[Scene](s.sw,
		sequence.Step[Scene]{Process: t.walkJumper},
		sequence.Step[Scene]{DelayMs: 15000, Process: t.escapeJumper},
		sequence.Step[Scene]{DelayMs: 1000, Process: t.showScores},
	)
	return t
}

func (t *title) Name() string { return "title" }

func (t *title) Update(in core.InputFrame) Scene {
	if !t.waitStart && in.Confirmed() {
		t.waitStart = true
		t.seq = sequence.New[Scene](t.sw, sequence.Step[Scene]{
			DelayMs: 1000,
			Next:    func() (Scene, bool) { return newReady(t.session, 0), true },
		})
		t.audio.PlaySound(SoundSelect)
		t.audio.StopMusic()
	}
	if next := t.frame(t.seq, in, true); next != nil {
		return next
	}
	t.ranking.update()
	return t
}

func (t *title) walkJumper(bool, *clock.Timer) bool {
	t.snap.Jumper.Walk(t.snap.Field.StartX)
	return true
}

func (t *title) escapeJumper(first bool, _ *clock.Timer) bool {
	if first {
		t.snap.Jumper.Walk(t.snap.Field.Right())
		return false
	}
	return !t.snap.Jumper.Walking()
}

func (t *title) showScores(first bool, _ *clock.Timer) bool {
	if first {
		t.showRanking = true
		t.showStart = false
		t.ranking.start(-t.snap.Field.MaxSize.H/2, rankingY, slideSpeed)
		return false
	}
	if t.ranking.moving() {
		return false
	}
	t.showStart = true
	return true
}

// Ranking returns the scores shown on the title screen.
func (t *title) Ranking() []Score {
	return t.snap.ScoreBoard.Ranking(RankingSize)
}
