package jumpboy

import "github.com/vovakirdan/jumpboy/internal/clock"

// flash is a blink window of count periods. Odd periods hide the sprite.
type flash struct {
	sw       *clock.Stopwatch
	periodMs int
	count    int
	timer    *clock.Timer
}

func newFlash(sw *clock.Stopwatch, periodMs, count int) flash {
	return flash{sw: sw, periodMs: periodMs, count: count}
}

func (f *flash) start() {
	f.timer = clock.NewTimer(f.sw, f.periodMs*f.count, true)
}

func (f *flash) active() bool {
	return f.timer != nil && !f.timer.Over()
}

func (f *flash) visible() bool {
	if !f.active() {
		return true
	}
	return (f.timer.ElapsedMs()/f.periodMs)%2 == 1
}

func (f *flash) pause() {
	if f.timer != nil {
		f.timer.Pause()
	}
}

func (f *flash) resume() {
	if f.timer != nil {
		f.timer.Resume()
	}
}
