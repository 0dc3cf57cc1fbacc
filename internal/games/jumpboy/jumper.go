package jumpboy

import (
	"math/rand"

	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/core"
)

// JumperAction is the jumper's state.
type JumperAction int

const (
	JumperStop JumperAction = iota
	JumperWalk
	JumperStandBy
	JumperJump
	JumperFallDown
	JumperJoy
)

func (a JumperAction) String() string {
	switch a {
	case JumperStop:
		return "stop"
	case JumperWalk:
		return "walk"
	case JumperStandBy:
		return "stand_by"
	case JumperJump:
		return "jump"
	case JumperFallDown:
		return "fall_down"
	case JumperJoy:
		return "joy"
	default:
		return "unknown"
	}
}

// JumperMotion selects the sprite pose. It never feeds back into physics.
type JumperMotion int

const (
	JumperMotionStop JumperMotion = iota
	JumperMotionWalkLeft
	JumperMotionWalkRight
	JumperMotionJumpUp
	JumperMotionJumpDown
	JumperMotionFallDown
	JumperMotionJoy
)

// Damage flash window.
const (
	jumperFlashMs    = 100
	jumperFlashCount = 4
)

// JumperParam holds per-mode tuning.
type JumperParam struct {
	MaxLife        int
	MaxAccel       int
	WalkDistance   float64
	WalkPeriod     int
	KeepJumpHeight float64
	JoyRepeatCount int
}

// Jumper is the player character. Every transition method has a guard;
// calls from the wrong state are ignored.
type Jumper struct {
	Param  JumperParam
	Origin core.Vec
	Size   core.Size

	action JumperAction
	motion JumperMotion
	life   int

	damaging    bool
	startDamage bool
	flash       flash

	walkX        float64
	walkInterval int

	arc      arc
	topY     float64
	keepJump bool
	joyCount int

	rng *rand.Rand
}

// NewJumper creates a stopped jumper with full life.
func NewJumper(param JumperParam, size core.Size, sw *clock.Stopwatch, rng *rand.Rand) *Jumper {
	return &Jumper{
		Param: param,
		Size:  size,
		life:  param.MaxLife,
		flash: newFlash(sw, jumperFlashMs, jumperFlashCount),
		rng:   rng,
	}
}

func (j *Jumper) Action() JumperAction { return j.action }
func (j *Jumper) Motion() JumperMotion { return j.motion }
func (j *Jumper) Life() int            { return j.life }

// SetLife overrides the life counter, clamped to [0, MaxLife].
func (j *Jumper) SetLife(life int) {
	j.life = core.Clamp(life, 0, j.Param.MaxLife)
}

func (j *Jumper) Box() core.Box    { return core.Box{Origin: j.Origin, Size: j.Size} }
func (j *Jumper) Center() core.Vec { return j.Box().Center() }
func (j *Jumper) Bottom() float64  { return j.Origin.Y + j.Size.H }

// Damaging reports whether the post-damage invulnerability window is open.
func (j *Jumper) Damaging() bool { return j.damaging }

// Visible reports whether the sprite is shown this frame.
func (j *Jumper) Visible() bool { return j.flash.visible() }

func (j *Jumper) Stopping() bool    { return j.action == JumperStop }
func (j *Jumper) Walking() bool     { return j.action == JumperWalk }
func (j *Jumper) StandingBy() bool  { return j.action == JumperStandBy }
func (j *Jumper) Jumping() bool     { return j.action == JumperJump }
func (j *Jumper) FallingDown() bool { return j.action == JumperFallDown }
func (j *Jumper) Joying() bool      { return j.action == JumperJoy }

// Descending reports whether the jumper is in a jump and moving down.
func (j *Jumper) Descending() bool {
	return j.Jumping() && j.Center().Y > j.arc.prevY
}

func (j *Jumper) clear(all bool) {
	if all {
		j.damaging = false
		j.startDamage = false
	}
	j.walkX = 0
	j.arc = arc{}
	j.topY = 0
	j.keepJump = false
	j.joyCount = 0
	j.walkInterval = 0
}

func (j *Jumper) setAction(a JumperAction) {
	logger.Debug("jumper", "action", a, "from", j.action, "life", j.life)
	j.action = a
}

// Stop cancels the hold-to-extend charge of a jump in flight, or forces
// Stop from any other state.
func (j *Jumper) Stop() {
	if j.action == JumperJump {
		j.keepJump = false
		return
	}
	j.setAction(JumperStop)
	j.clear(true)
}

// Walk starts walking the left edge toward x.
func (j *Jumper) Walk(x float64) {
	if !j.Stopping() {
		return
	}
	j.setAction(JumperWalk)
	j.clear(true)
	j.walkX = x
}

func (j *Jumper) StandBy() {
	if !j.Stopping() {
		return
	}
	j.setAction(JumperStandBy)
	j.clear(true)
}

func (j *Jumper) Jump() {
	if !j.StandingBy() {
		return
	}
	j.setAction(JumperJump)
	j.clear(false)
	j.arc.start(j.Param.MaxAccel, j.Center().Y)
	j.keepJump = true
}

// Damage takes one life. At zero life the jumper falls down; otherwise the
// flash window starts and further damage is ignored until it ends.
func (j *Jumper) Damage() {
	if !j.StandingBy() && !j.Jumping() {
		return
	}
	j.life--
	if j.life <= 0 {
		j.life = 0
		j.setAction(JumperFallDown)
		j.clear(true)
		return
	}
	logger.Debug("jumper damage", "life", j.life)
	j.damaging = true
	j.startDamage = true
	j.flash.start()
}

// Joy starts the celebration hops.
func (j *Jumper) Joy() {
	if !j.Stopping() {
		return
	}
	j.setAction(JumperJoy)
	j.clear(true)
	j.arc.start(j.fuzzyAccel(), j.Center().Y)
}

// fuzzyAccel returns a kick between half and all of MaxAccel.
func (j *Jumper) fuzzyAccel() int {
	half := j.Param.MaxAccel / 2
	sign := 1
	if j.Param.MaxAccel < 0 {
		sign = -1
	}
	return half + sign*dice(j.rng, core.Abs(half))
}

func (j *Jumper) Pause()  { j.flash.pause() }
func (j *Jumper) Resume() { j.flash.resume() }

// Update advances the jumper one frame.
func (j *Jumper) Update(f *Field, in core.InputFrame, audio Audio) {
	if j.damaging {
		if j.startDamage {
			audio.PlaySound(SoundJumperDamage)
			j.startDamage = false
		}
		if !j.flash.active() {
			j.damaging = false
		}
	}

	switch j.action {
	case JumperStop:
		j.motion = JumperMotionStop
	case JumperWalk:
		j.updateWalk(audio)
	case JumperStandBy:
		j.motion = JumperMotionStop
		if in.Confirmed() {
			j.Jump()
		}
	case JumperJump:
		j.updateJump(f, in, audio)
	case JumperFallDown:
		if j.motion != JumperMotionFallDown {
			audio.PlaySound(SoundJumperFallDown)
		}
		j.motion = JumperMotionFallDown
	case JumperJoy:
		j.updateJoy(f, audio)
	}
}

func (j *Jumper) updateWalk(audio Audio) {
	diff := j.walkX - j.Origin.X
	step := core.ClampF(diff, -j.Param.WalkDistance, j.Param.WalkDistance)
	if step == diff {
		j.Origin.X = j.walkX
	} else {
		j.Origin.X += step
	}

	if j.Origin.X == j.walkX {
		j.setAction(JumperStop)
		j.clear(true)
	}

	if j.walkInterval < j.Param.WalkPeriod {
		j.walkInterval++
		return
	}
	j.walkInterval = 0
	if j.motion == JumperMotionWalkLeft || j.motion == JumperMotionWalkRight {
		j.motion = JumperMotionStop
		return
	}
	if step <= 0 {
		j.motion = JumperMotionWalkLeft
	} else {
		j.motion = JumperMotionWalkRight
	}
	audio.PlaySound(SoundJumperWalk)
}

func (j *Jumper) updateJump(f *Field, in core.InputFrame, audio Audio) {
	if j.Bottom() >= f.Bottom() && !j.arc.kicking() {
		j.setAction(JumperStandBy)
		j.clear(false)
		return
	}
	if j.arc.kicking() {
		audio.PlaySound(SoundJumperJump)
	}

	y := j.Center().Y
	minY, maxY := centerBounds(f, j.Size.H)
	next := j.arc.step(y, minY, maxY)
	j.Origin.Y = next - j.Size.H/2

	if next < y {
		j.motion = JumperMotionJumpUp
	} else {
		j.motion = JumperMotionJumpDown
	}

	// Near the apex the fall is suspended while the button stays held.
	if y < next {
		switch {
		case !j.keepJump:
		case next >= j.topY+j.Param.KeepJumpHeight:
			j.keepJump = false
		case in.Holding():
			j.arc.accel = 0
		default:
			j.keepJump = false
		}
	} else {
		j.topY = next
	}
}

func (j *Jumper) updateJoy(f *Field, audio Audio) {
	j.motion = JumperMotionJoy

	if j.Bottom() >= f.Bottom() && !j.arc.kicking() {
		j.joyCount++
		if j.joyCount >= j.Param.JoyRepeatCount {
			j.setAction(JumperStop)
			j.clear(true)
			return
		}
		j.arc.start(j.fuzzyAccel(), j.Center().Y)
		return
	}
	if j.arc.kicking() {
		audio.PlaySound(SoundJumperJoy)
	}

	minY, maxY := centerBounds(f, j.Size.H)
	j.Origin.Y = j.arc.step(j.Center().Y, minY, maxY) - j.Size.H/2
}

// dice returns a uniform integer in [0, n].
func dice(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n + 1)
}
