package jumpboy

import (
	"sort"

	"github.com/vovakirdan/jumpboy/internal/core"
)

// play is the stage itself.
type play struct {
	stage
}

func newPlay(st stage) *play {
	for _, b := range st.snap.Balls {
		b.Resume()
	}
	st.snap.Jumper.Resume()
	st.playTimer.Resume()
	st.audio.PlayMusic(st.design.FieldMusic(st.snap.Level))
	return &play{stage: st}
}

func (p *play) Name() string { return "play" }

// Update runs one frame in a fixed order: clock, balls, jumper, collision
// resolution, terminal checks, spawning.
func (p *play) Update(in core.InputFrame) Scene {
	if in.Cancelled() {
		p.audio.PlaySound(SoundPause)
		return newPause(p.stage)
	}

	p.frame(nil, in, true)
	p.point += resolveBalls(p.snap)

	if p.snap.Jumper.FallingDown() {
		return newGameOver(p.stage)
	}
	if p.playTimer.Over() {
		p.audio.PlaySound(SoundTimeUp)
		return newStageClear(p.stage)
	}

	p.spawn()
	return p
}

// spawn lets at most one waiting ball start rolling, and queues a new ball
// when none is waiting.
func (p *play) spawn() {
	snap := p.snap

	stopped := false
	if len(snap.Balls) > 0 {
		oldest := make([]*Ball, len(snap.Balls))
		copy(oldest, snap.Balls)
		sort.SliceStable(oldest, func(i, j int) bool {
			return oldest[i].ElapsedMs() > oldest[j].ElapsedMs()
		})

		var last *Ball
		spun := false
		for _, b := range oldest {
			if !b.Stopping() {
				last = b
				continue
			}
			if !spun && p.design.CanSpin(snap.Level, snap.Field, b, last) {
				b.Spin()
				spun = true
			} else {
				stopped = true
			}
		}
	}

	if stopped {
		return
	}
	wait, ok := p.design.NextBallWait(snap.Level, snap.Balls)
	if !ok {
		return
	}
	b := p.design.Ball(snap.Level, p.sw)
	b.Origin = p.ballReadyOrigin(b)
	b.SpinAfter(p.sw, wait)
	snap.Balls = append(snap.Balls, b)
}

// PlayRemainingMs is the time left on the stage clock.
func (st *stage) PlayRemainingMs() int {
	if st.playTimer == nil {
		return 0
	}
	return st.playTimer.RemainingMs()
}
