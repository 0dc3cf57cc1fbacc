package jumpboy

import (
	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/sequence"
)

// Banner rows in world pixels.
const (
	titleY     = 32
	subtitleY  = 56
	rankingY   = 24
	slideSpeed = 0.5
)

// opening walks the jumper in and slides the title down.
type opening struct {
	*session
	seq       *sequence.Sequence[Scene]
	title     slide
	showTitle bool
	playTitle bool
}

func newOpening(s *session) *opening {
	s.initialSprites(true)

	o := &opening{session: s}
	o.seq = sequence.New[Scene](s.sw,
		sequence.Step[Scene]{DelayMs: 500, Process: o.walkJumper},
		sequence.Step[Scene]{DelayMs: 2000, Process: o.moveTitle},
		sequence.Step[Scene]{DelayMs: 500, Process: o.playTitleSound},
		sequence.Step[Scene]{DelayMs: 500, Next: func() (Scene, bool) { return newTitle(s), true }},
	)
	return o
}

func (o *opening) Name() string { return "opening" }

func (o *opening) Update(in core.InputFrame) Scene {
	if in.Confirmed() {
		if !o.playTitle {
			o.audio.PlaySound(SoundTitle)
		}
		return newTitle(o.session)
	}
	if next := o.frame(o.seq, in, true); next != nil {
		return next
	}
	o.title.update()
	return o
}

func (o *opening) walkJumper(first bool, _ *clock.Timer) bool {
	if first {
		o.snap.Jumper.Walk(o.snap.Field.StartX)
		return false
	}
	return !o.snap.Jumper.Walking()
}

func (o *opening) moveTitle(first bool, _ *clock.Timer) bool {
	if first {
		o.showTitle = true
		o.title.start(-8, titleY, slideSpeed)
		o.audio.PlayMusic(o.design.TitleMusic(o.snap.Level))
		return false
	}
	return !o.title.moving()
}

func (o *opening) playTitleSound(bool, *clock.Timer) bool {
	o.playTitle = true
	o.audio.PlaySound(SoundTitle)
	return true
}
