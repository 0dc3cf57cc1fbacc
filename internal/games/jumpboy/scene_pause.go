package jumpboy

import "github.com/vovakirdan/jumpboy/internal/core"

// pause freezes the stage. Entities are not updated and their timers are
// detached until play resumes.
type pause struct {
	stage
}

func newPause(st stage) *pause {
	st.playTimer.Pause()
	for _, b := range st.snap.Balls {
		b.Pause()
	}
	st.snap.Jumper.Pause()
	return &pause{stage: st}
}

func (p *pause) Name() string { return "pause" }

func (p *pause) Update(in core.InputFrame) Scene {
	if in.Confirmed() || in.Cancelled() {
		p.audio.PlaySound(SoundRestart)
		return newPlay(p.stage)
	}
	p.frame(nil, in, false)
	return p
}
