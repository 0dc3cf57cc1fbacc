package jumpboy

import (
	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/sequence"
)

// Banners shown before play starts.
const (
	describeNone = iota - 1
	describeStage
	describeReady
)

const (
	describeMs  = 1000
	recoverMs   = 1000
	countdownMs = 3000
)

// ready brings the jumper to the start line, restores some life, shows
// the stage banner and counts down.
type ready struct {
	stage
	seq *sequence.Sequence[Scene]

	maxAddLife int
	addLife    int

	describe   int
	showStage  bool
	countdown  *clock.Timer
	lastSecond int
}

func newReady(s *session, point int) *ready {
	s.audio.StopMusic()

	r := &ready{
		stage: stage{
			session:   s,
			point:     point,
			playTimer: clock.NewTimer(s.sw, s.design.PlayLimitMs(s.snap.Level), false),
		},
		describe:   describeNone,
		lastSecond: -1,
	}

	j := s.snap.Jumper
	j.Stop()
	if j.Life() < j.Param.MaxLife {
		r.maxAddLife = min(s.design.RecoveryLife(s.snap.Level), j.Param.MaxLife-j.Life())
	}
	logger.Debug("ready", "level", s.snap.Level, "recover", r.maxAddLife)

	r.seq = sequence.New[Scene](s.sw,
		sequence.Step[Scene]{Process: r.walkJumper},
		sequence.Step[Scene]{Process: r.recoverLife},
		sequence.Step[Scene]{DelayMs: 1000, Process: r.describeStage},
		sequence.Step[Scene]{Process: r.startCountdown},
		sequence.Step[Scene]{
			Process: r.waitCountdown,
			Next:    func() (Scene, bool) { return newPlay(r.stage), true },
		},
	)
	return r
}

func (r *ready) Name() string { return "ready" }

func (r *ready) Update(in core.InputFrame) Scene {
	if next := r.frame(r.seq, in, true); next != nil {
		return next
	}
	return r
}

func (r *ready) walkJumper(first bool, _ *clock.Timer) bool {
	if first {
		r.snap.Jumper.Walk(r.snap.Field.StartX)
		return false
	}
	return !r.snap.Jumper.Walking()
}

// recoverLife adds one life per second up to maxAddLife.
func (r *ready) recoverLife(first bool, timer *clock.Timer) bool {
	if first {
		if r.maxAddLife == 0 {
			return true
		}
	} else {
		if r.addLife == r.maxAddLife {
			return true
		}
		j := r.snap.Jumper
		j.SetLife(j.Life() + 1)
		r.addLife++
		r.audio.PlaySound(SoundRecoverLife)
	}
	timer.SetLimit(recoverMs)
	timer.Reset()
	return false
}

// describeStage shows the stage banner, then READY, one second each.
func (r *ready) describeStage(_ bool, timer *clock.Timer) bool {
	if r.describe == describeNone {
		r.describe = describeStage
		r.audio.PlaySound(SoundStart)
	} else {
		if r.describe == describeStage {
			r.showStage = true
		}
		r.describe++
		if r.describe > describeReady {
			r.describe = describeNone
			return true
		}
	}
	timer.SetLimit(describeMs)
	timer.Reset()
	return false
}

func (r *ready) startCountdown(bool, *clock.Timer) bool {
	r.countdown = clock.NewTimer(r.sw, countdownMs, true)
	r.lastSecond = -1
	return true
}

// waitCountdown beeps once per second and lets the jumper stand by at zero.
func (r *ready) waitCountdown(bool, *clock.Timer) bool {
	if r.countdown.Over() {
		r.snap.Jumper.StandBy()
		return true
	}
	if sec := r.countdown.ElapsedMs() / 1000; sec != r.lastSecond {
		r.audio.PlaySound(SoundReady)
		r.lastSecond = sec
	}
	return false
}

// Countdown returns the seconds left before play, or 0 when not counting.
func (r *ready) Countdown() int {
	if r.countdown == nil || r.countdown.Over() {
		return 0
	}
	return (r.countdown.RemainingMs() + 999) / 1000
}
