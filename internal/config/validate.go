package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem in the configuration as one joined error.
func (c JumpBoyConfig) Validate() error {
	var errs []error

	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}

	f := c.Field
	if f.Width <= 0 || f.GroundHeight <= 0 {
		errs = append(errs, fmt.Errorf("field: width and ground_height must be positive"))
	}
	if f.SpriteSize <= 0 || f.SpriteSize*2 > f.GroundHeight {
		errs = append(errs, fmt.Errorf("field: sprite_size %.0f does not fit ground_height %.0f", f.SpriteSize, f.GroundHeight))
	}
	if f.JumperStart < 0 || f.JumperStart > f.Width {
		errs = append(errs, fmt.Errorf("field: jumper_start %.0f outside width %.0f", f.JumperStart, f.Width))
	}

	if len(c.Modes) == 0 {
		errs = append(errs, errors.New("no modes configured"))
	}
	for i, m := range c.Modes {
		j := m.Jumper
		if j.MaxLife <= 0 {
			errs = append(errs, fmt.Errorf("mode %d (%s): max_life must be positive", i, m.Name))
		}
		if j.MaxAccel >= 0 {
			errs = append(errs, fmt.Errorf("mode %d (%s): max_accel must be negative", i, m.Name))
		}
		if j.WalkDistance <= 0 || j.WalkPeriod <= 0 {
			errs = append(errs, fmt.Errorf("mode %d (%s): walk_distance and walk_period must be positive", i, m.Name))
		}
		if j.JoyRepeatCount <= 0 {
			errs = append(errs, fmt.Errorf("mode %d (%s): joy_repeat_count must be positive", i, m.Name))
		}
		if m.RecoveryLife < 0 {
			errs = append(errs, fmt.Errorf("mode %d (%s): recovery_life must not be negative", i, m.Name))
		}
	}

	if len(c.Stages) == 0 {
		errs = append(errs, errors.New("no stages configured"))
	}
	for i, s := range c.Stages {
		if _, ok := c.Surfaces[s.Surface]; !ok {
			errs = append(errs, fmt.Errorf("stage %d: unknown surface %q", i+1, s.Surface))
		}
		if s.PlayLimitMs <= 0 {
			errs = append(errs, fmt.Errorf("stage %d: play_limit_ms must be positive", i+1))
		}
		if err := s.Ball.validate(); err != nil {
			errs = append(errs, fmt.Errorf("stage %d: %w", i+1, err))
		}
		sp := s.Spawn
		if sp.Cap < 0 || sp.WaitMs < 0 || sp.WaitSpan < 0 || sp.GapDivisor < 0 {
			errs = append(errs, fmt.Errorf("stage %d: spawn values must not be negative", i+1))
		}
		if sp.WaitSpan > 0 && sp.WaitStepMs <= 0 {
			errs = append(errs, fmt.Errorf("stage %d: spawn wait_span needs wait_step_ms", i+1))
		}
	}

	return errors.Join(errs...)
}

func (b BallConfig) validate() error {
	d := b.SpinDistance
	if d.Base < 0 || d.Span < 0 {
		return errors.New("ball: spin_distance must not be negative")
	}
	if d.Base+d.Span == 0 {
		return errors.New("ball: spin_distance is zero")
	}
	if d.Span > 0 && (d.Fast <= 0 || d.Slow <= 0 || d.Low >= d.High) {
		return errors.New("ball: randomised spin_distance needs fast, slow and low < high")
	}
	if b.SpinPeriod <= 0 {
		return errors.New("ball: spin_period must be positive")
	}
	if b.Leap != nil {
		if b.Leap.Accel >= 0 || b.Leap.AccelSpan < 0 {
			return errors.New("ball: leap accel must be negative")
		}
		if b.Leap.FirstY < 0 || b.Leap.AltFirstY < 0 {
			return errors.New("ball: leap heights must not be negative")
		}
	}
	return nil
}
