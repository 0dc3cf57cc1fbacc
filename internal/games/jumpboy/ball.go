package jumpboy

import (
	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
)

// BallAction is the ball's state.
type BallAction int

const (
	BallStop BallAction = iota
	BallSpin
	BallBurst
)

func (a BallAction) String() string {
	switch a {
	case BallStop:
		return "stop"
	case BallSpin:
		return "spin"
	case BallBurst:
		return "burst"
	default:
		return "unknown"
	}
}

// Ball motions: four rotation angles, then the burst pose.
const (
	BallMotionAngle0 = iota
	BallMotionAngle90
	BallMotionAngle180
	BallMotionAngle270
	BallMotionBurst
)

const (
	ballFlashMs    = 40
	ballFlashCount = 4
)

// BallParam is drawn once per ball by the stage controller.
type BallParam struct {
	Kind         string
	SpinDistance float64
	// MaxAccel is the leap kick; zero disables leaping.
	MaxAccel   int
	FirstY     float64
	SpinPeriod int
	Points     map[BallAction]int
}

// Ball is a rolling hazard.
type Ball struct {
	ID     int
	Param  BallParam
	Origin core.Vec
	Size   core.Size

	action BallAction
	motion int

	// SpinRight is true while the ball rolls toward the right edge.
	SpinRight bool

	points    map[BallAction]int
	spunTimer *clock.Timer
	age       *clock.Timer
	flash     flash

	arc          arc
	spinInterval int
	startSpin    bool
	bounced      bool
	dead         bool
}

// NewBall creates a stopped ball rolling right once spun.
func NewBall(id int, param BallParam, size core.Size, sw *clock.Stopwatch) *Ball {
	return &Ball{
		ID:        id,
		Param:     param,
		Size:      size,
		SpinRight: true,
		age:       clock.NewTimer(sw, clock.NoLimit, true),
		flash:     newFlash(sw, ballFlashMs, ballFlashCount),
	}
}

func (b *Ball) Action() BallAction { return b.action }
func (b *Ball) Motion() int        { return b.motion }
func (b *Ball) Stopping() bool     { return b.action == BallStop }
func (b *Ball) Spinning() bool     { return b.action == BallSpin }
func (b *Ball) Bursting() bool     { return b.action == BallBurst }
func (b *Ball) Dead() bool         { return b.dead }

// Bounced reports whether the ball turned around this frame.
func (b *Ball) Bounced() bool { return b.bounced }

// Visible reports whether the sprite is shown this frame.
func (b *Ball) Visible() bool { return !b.dead && b.flash.visible() }

func (b *Ball) Box() core.Box   { return core.Box{Origin: b.Origin, Size: b.Size} }
func (b *Ball) Left() float64   { return b.Origin.X }
func (b *Ball) Right() float64  { return b.Origin.X + b.Size.W }
func (b *Ball) Bottom() float64 { return b.Origin.Y + b.Size.H }

// ElapsedMs is the time since the ball was created, excluding pauses.
func (b *Ball) ElapsedMs() int { return b.age.ElapsedMs() }

// SpinReady reports whether the pre-spin wait, if any, has elapsed.
func (b *Ball) SpinReady() bool {
	return b.spunTimer == nil || b.spunTimer.Over()
}

func (b *Ball) setAction(a BallAction) {
	logger.Debug("ball", "id", b.ID, "action", a, "from", b.action)
	b.action = a
}

func (b *Ball) Stop() {
	if !b.Spinning() {
		return
	}
	b.setAction(BallStop)
}

// Spin starts rolling. Leaping balls are lifted FirstY and start falling.
func (b *Ball) Spin() {
	if !b.Stopping() {
		return
	}
	b.setAction(BallSpin)
	b.spunTimer = nil
	if b.Param.MaxAccel != 0 {
		b.Origin.Y -= b.Param.FirstY
		b.arc = arc{accel: 1, kick: b.Param.MaxAccel, prevY: b.Box().Center().Y}
	}
	b.points = b.Param.Points
	b.startSpin = true
}

// SpinAfter arms a wait before the ball may spin, or spins at once when
// ms is not positive.
func (b *Ball) SpinAfter(sw *clock.Stopwatch, ms int) {
	if !b.Stopping() {
		return
	}
	if ms <= 0 {
		b.Spin()
		return
	}
	logger.Debug("ball spin wait", "id", b.ID, "ms", ms)
	b.spunTimer = clock.NewTimer(sw, ms, true)
}

// Burst starts the destruction flash. The ball dies when it ends.
func (b *Ball) Burst() {
	if !b.Spinning() {
		return
	}
	b.setAction(BallBurst)
	b.flash.start()
}

// Strike zeroes every future award of the ball.
func (b *Ball) Strike() {
	logger.Debug("ball strike", "id", b.ID)
	b.points = nil
}

// Point is the award for the ball's present action.
func (b *Ball) Point() int {
	return b.points[b.action]
}

func (b *Ball) Pause() {
	b.age.Pause()
	if b.spunTimer != nil {
		b.spunTimer.Pause()
	}
	b.flash.pause()
}

func (b *Ball) Resume() {
	b.age.Resume()
	if b.spunTimer != nil {
		b.spunTimer.Resume()
	}
	b.flash.resume()
}

// Exited reports whether the ball has fully left the field on the side it
// is rolling toward.
func (b *Ball) Exited(f *Field) bool {
	if b.SpinRight {
		return b.Left() >= f.Right()
	}
	return b.Right() <= f.Left()
}

// Update advances the ball one frame.
func (b *Ball) Update(f *Field, audio Audio) {
	b.bounced = false

	switch b.action {
	case BallSpin:
		if b.startSpin {
			audio.PlaySound(SoundBallSpin)
			b.startSpin = false
		}
		b.Origin.X = b.roll(f, audio)
		if b.arc.accel != 0 {
			b.leap(f, audio)
		}
		b.rotate()
	case BallBurst:
		if b.motion != BallMotionBurst {
			audio.PlaySound(SoundBallBurst)
		}
		b.motion = BallMotionBurst
		if !b.flash.active() {
			logger.Debug("ball dead", "id", b.ID)
			b.dead = true
		}
	}
}

// roll returns the next left edge, turning around at obstacle edges.
func (b *Ball) roll(f *Field, audio Audio) float64 {
	if b.SpinRight {
		x := b.Origin.X + b.Param.SpinDistance
		if end, ok := f.RightEnd(b.Origin); ok && x >= end-b.Size.W {
			b.turn(audio)
			return end - b.Size.W
		}
		return x
	}
	x := b.Origin.X - b.Param.SpinDistance
	if end, ok := f.LeftEnd(b.Origin); ok && x <= end {
		b.turn(audio)
		return end
	}
	return x
}

func (b *Ball) turn(audio Audio) {
	b.SpinRight = !b.SpinRight
	b.bounced = true
	logger.Debug("ball bounce", "id", b.ID, "right", b.SpinRight)
	audio.PlaySound(SoundBallBounce)
}

// leap runs the vertical arc, kicking again on every landing.
func (b *Ball) leap(f *Field, audio Audio) {
	y := b.Box().Center().Y
	if b.Bottom() >= f.Bottom() && !b.arc.kicking() {
		b.arc.start(b.Param.MaxAccel, y)
		return
	}
	if b.arc.kicking() {
		audio.PlaySound(SoundBallLeap)
	}
	minY, maxY := centerBounds(f, b.Size.H)
	b.Origin.Y = b.arc.step(y, minY, maxY) - b.Size.H/2
}

func (b *Ball) rotate() {
	if b.spinInterval < b.Param.SpinPeriod {
		b.spinInterval++
		return
	}
	b.spinInterval = 0
	if b.SpinRight {
		b.motion = (b.motion + 1) % 4
	} else {
		b.motion = (b.motion + 3) % 4
	}
}
