package jumpboy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/config"
	"github.com/vovakirdan/jumpboy/internal/core"
)

// Design is the stage controller: it builds fields, jumpers and balls for
// a level and decides when balls may appear.
type Design struct {
	cfg    config.JumpBoyConfig
	rng    *rand.Rand
	prev   []BallParam
	nextID int
}

// NewDesign creates a stage controller over cfg.
func NewDesign(cfg config.JumpBoyConfig, rng *rand.Rand) *Design {
	return &Design{cfg: cfg, rng: rng}
}

// Reset forgets the ball history used for anti-repetition.
func (d *Design) Reset() {
	d.prev = nil
	d.nextID = 0
}

// FirstLevel returns the first stage of the first mode.
func (d *Design) FirstLevel() Level {
	return Level{}
}

// NextLevel walks stages, then modes. It reports false past the last stage
// of the last mode.
func (d *Design) NextLevel(l Level) (Level, bool) {
	if l.Stage+1 < len(d.cfg.Stages) {
		return Level{Mode: l.Mode, Stage: l.Stage + 1}, true
	}
	if l.Mode+1 < len(d.cfg.Modes) {
		return Level{Mode: l.Mode + 1}, true
	}
	return Level{}, false
}

// Valid reports whether l names a configured mode and stage.
func (d *Design) Valid(l Level) bool {
	_, okMode := d.cfg.Mode(l.Mode)
	_, okStage := d.cfg.Stage(l.Stage)
	return okMode && okStage
}

// rules returns the configuration of l. An unconfigured level is a
// programming or configuration error and panics.
func (d *Design) rules(l Level) (config.ModeConfig, config.StageConfig) {
	mode, okMode := d.cfg.Mode(l.Mode)
	stage, okStage := d.cfg.Stage(l.Stage)
	if !okMode || !okStage {
		panic(fmt.Sprintf("jumpboy: no stage configured for %s", l))
	}
	return mode, stage
}

func (d *Design) spriteSize() core.Size {
	return core.Size{W: d.cfg.Field.SpriteSize, H: d.cfg.Field.SpriteSize}
}

// ModeTitle returns the display title of l's mode.
func (d *Design) ModeTitle(l Level) string {
	mode, _ := d.rules(l)
	return mode.Title
}

// TitleMusic and EndMusic name the music of l's mode.
func (d *Design) TitleMusic(l Level) string {
	mode, _ := d.rules(l)
	return mode.TitleMusic
}

func (d *Design) EndMusic(l Level) string {
	mode, _ := d.rules(l)
	return mode.EndMusic
}

// FieldMusic names the music of l's surface.
func (d *Design) FieldMusic(l Level) string {
	_, stage := d.rules(l)
	return d.cfg.Surfaces[stage.Surface].Music
}

// Surface names the surface of l.
func (d *Design) Surface(l Level) string {
	_, stage := d.rules(l)
	return stage.Surface
}

// Field builds the play area of l.
func (d *Design) Field(l Level) *Field {
	_, stage := d.rules(l)
	fc := d.cfg.Field
	f := &Field{
		Surface:      stage.Surface,
		MaxSize:      core.Size{W: fc.Width, H: fc.Height},
		GroundHeight: fc.GroundHeight,
		StartX:       fc.Width - fc.JumperStart,
	}
	for _, w := range d.cfg.Surfaces[stage.Surface].Walls {
		f.Obstacles = append(f.Obstacles, core.Box{
			Origin: core.Vec{X: w.X, Y: w.Y},
			Size:   core.Size{W: w.W, H: w.H},
		})
	}
	return f
}

// Jumper builds a full-life jumper for l.
func (d *Design) Jumper(l Level, sw *clock.Stopwatch) *Jumper {
	mode, _ := d.rules(l)
	jc := mode.Jumper
	return NewJumper(JumperParam{
		MaxLife:        jc.MaxLife,
		MaxAccel:       jc.MaxAccel,
		WalkDistance:   jc.WalkDistance,
		WalkPeriod:     jc.WalkPeriod,
		KeepJumpHeight: jc.KeepJumpHeight,
		JoyRepeatCount: jc.JoyRepeatCount,
	}, d.spriteSize(), sw, d.rng)
}

// Ball builds the next ball for l and records its parameters.
func (d *Design) Ball(l Level, sw *clock.Stopwatch) *Ball {
	_, stage := d.rules(l)
	bc := stage.Ball

	param := BallParam{
		Kind:         bc.Kind,
		SpinDistance: float64(d.spinDistance(bc.SpinDistance)),
		SpinPeriod:   bc.SpinPeriod,
		Points: map[BallAction]int{
			BallSpin:  bc.Points.Spin,
			BallBurst: bc.Points.Burst,
		},
	}
	if lc := bc.Leap; lc != nil {
		param.MaxAccel = lc.Accel - dice(d.rng, lc.AccelSpan)
		param.FirstY = lc.FirstY
		if n := len(d.prev); n > 0 && d.prev[n-1].FirstY == lc.FirstY {
			param.FirstY = lc.AltFirstY
		}
	}
	d.prev = append(d.prev, param)

	d.nextID++
	logger.Debug("ball param", "id", d.nextID, "distance", param.SpinDistance, "accel", param.MaxAccel, "first_y", param.FirstY)
	return NewBall(d.nextID, param, d.spriteSize(), sw)
}

// spinDistance draws a speed, steering away from runs of fast or slow
// balls by looking at the last two speeds.
func (d *Design) spinDistance(dc config.DistanceConfig) int {
	if dc.Span == 0 {
		return dc.Base
	}
	recent := 0.0
	if n := len(d.prev); n > 1 {
		recent = d.prev[n-1].SpinDistance + d.prev[n-2].SpinDistance
	}
	switch {
	case recent <= float64(dc.Low):
		return dc.Fast
	case recent >= float64(dc.High):
		return dc.Slow
	default:
		return dc.Base + dice(d.rng, dc.Span)
	}
}

// NextBallWait returns how long a new ball must wait before spinning, or
// false when the stage's ball cap is reached.
func (d *Design) NextBallWait(l Level, balls []*Ball) (int, bool) {
	if len(balls) == 0 {
		return 0, true
	}
	_, stage := d.rules(l)
	sp := stage.Spawn
	if sp.Cap > 0 && len(balls) >= sp.Cap {
		return 0, false
	}
	return sp.WaitMs + dice(d.rng, sp.WaitSpan)*sp.WaitStepMs, true
}

// CanSpin reports whether a stopped ball may start rolling: its own wait
// has elapsed and the newest rolling ball is far enough from the left edge.
func (d *Design) CanSpin(l Level, f *Field, b *Ball, last *Ball) bool {
	spin := b.SpinReady()
	if last != nil {
		_, stage := d.rules(l)
		gap := 0.0
		if div := stage.Spawn.GapDivisor; div > 0 {
			gap = f.MaxSize.W / float64(div)
		}
		if last.Left() < gap {
			spin = false
		}
	}
	return spin
}

// PlayLimitMs is the stage time limit.
func (d *Design) PlayLimitMs(l Level) int {
	_, stage := d.rules(l)
	return stage.PlayLimitMs
}

// RecoveryLife is how many lives Ready may restore.
func (d *Design) RecoveryLife(l Level) int {
	mode, _ := d.rules(l)
	return mode.RecoveryLife
}

// BonusPoint is the stage clear award for the jumper's remaining life.
// Only a full or one-down life pays.
func (d *Design) BonusPoint(l Level, j *Jumper) int {
	mode, _ := d.rules(l)
	life, maxLife := j.Life(), j.Param.MaxLife
	switch life {
	case maxLife:
		return int(math.Floor(float64(life) * mode.Bonus.FullRate))
	case maxLife - 1:
		return int(math.Floor(float64(life) * mode.Bonus.OneDownRate))
	default:
		return 0
	}
}
