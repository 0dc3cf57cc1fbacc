// Package config provides YAML-based configuration loading for the
// Jump Boy stage table: field geometry, per-mode jumper tuning and the
// per-stage ball, spawn and timing parameters.
package config

// JumpBoyConfig contains all configuration for the game.
type JumpBoyConfig struct {
	FPS      int                      `yaml:"fps"`
	Field    FieldConfig              `yaml:"field"`
	Surfaces map[string]SurfaceConfig `yaml:"surfaces"`
	Modes    []ModeConfig             `yaml:"modes"`
	Stages   []StageConfig            `yaml:"stages"`
}

// FieldConfig defines the play area in world pixels.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	SpriteSize   float64 `yaml:"sprite_size"`
	// JumperStart is the distance from the right edge to the jumper's
	// starting left edge.
	JumperStart float64 `yaml:"jumper_start"`
}

// SurfaceConfig describes one field surface (road, grass, ...).
type SurfaceConfig struct {
	Music string       `yaml:"music"`
	Walls []WallConfig `yaml:"walls"`
}

// WallConfig is an obstacle box used as a bounce boundary for balls.
type WallConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ModeConfig contains per-mode settings (normal boy, hard girl).
type ModeConfig struct {
	Name         string       `yaml:"name"`
	Title        string       `yaml:"title"`
	ScoreTitle   string       `yaml:"score_title"`
	TitleMusic   string       `yaml:"title_music"`
	EndMusic     string       `yaml:"end_music"`
	RecoveryLife int          `yaml:"recovery_life"`
	Bonus        BonusConfig  `yaml:"bonus"`
	Jumper       JumperConfig `yaml:"jumper"`
}

// BonusConfig defines the stage clear life bonus.
// Full life pays life*FullRate, one life down pays floor(life*OneDownRate).
type BonusConfig struct {
	FullRate    float64 `yaml:"full_rate"`
	OneDownRate float64 `yaml:"one_down_rate"`
}

// JumperConfig defines jumper physics and life parameters.
type JumperConfig struct {
	MaxLife        int     `yaml:"max_life"`
	MaxAccel       int     `yaml:"max_accel"` // Kick on the first jump frame (negative = up)
	WalkDistance   float64 `yaml:"walk_distance"`
	WalkPeriod     int     `yaml:"walk_period"`
	KeepJumpHeight float64 `yaml:"keep_jump_height"`
	JoyRepeatCount int     `yaml:"joy_repeat_count"`
}

// StageConfig contains the parameters of one stage. The table applies to
// every mode.
type StageConfig struct {
	Surface     string      `yaml:"surface"`
	PlayLimitMs int         `yaml:"play_limit_ms"`
	Ball        BallConfig  `yaml:"ball"`
	Spawn       SpawnConfig `yaml:"spawn"`
}

// BallConfig defines how balls of a stage move and score.
type BallConfig struct {
	Kind         string         `yaml:"kind"`
	SpinDistance DistanceConfig `yaml:"spin_distance"`
	SpinPeriod   int            `yaml:"spin_period"`
	Leap         *LeapConfig    `yaml:"leap,omitempty"`
	Points       PointsConfig   `yaml:"points"`
}

// DistanceConfig draws a per-ball horizontal speed.
// With Span == 0 the speed is always Base. Otherwise the speed is
// Base+rand(0..Span), unless the last two speeds summed to <= Low (forces
// Fast) or >= High (forces Slow).
type DistanceConfig struct {
	Base int `yaml:"base"`
	Span int `yaml:"span"`
	Low  int `yaml:"low"`
	High int `yaml:"high"`
	Fast int `yaml:"fast"`
	Slow int `yaml:"slow"`
}

// LeapConfig enables a vertical bounce arc.
// The kick is Accel-rand(0..AccelSpan). A ball starts FirstY above the
// ground, or AltFirstY when the previous ball used FirstY.
type LeapConfig struct {
	Accel     int     `yaml:"accel"`
	AccelSpan int     `yaml:"accel_span"`
	FirstY    float64 `yaml:"first_y"`
	AltFirstY float64 `yaml:"alt_first_y"`
}

// PointsConfig is the score paid per ball action.
type PointsConfig struct {
	Spin  int `yaml:"spin"`
	Burst int `yaml:"burst"`
}

// SpawnConfig throttles ball creation.
// The wait before a new ball may spin is WaitMs+rand(0..WaitSpan)*WaitStepMs.
// Cap limits live balls (0 = no cap). A stopped ball may only spin once the
// newest spinning ball has moved Width/GapDivisor from the left edge
// (GapDivisor 0 disables the gap).
type SpawnConfig struct {
	Cap        int `yaml:"cap"`
	WaitMs     int `yaml:"wait_ms"`
	WaitSpan   int `yaml:"wait_span"`
	WaitStepMs int `yaml:"wait_step_ms"`
	GapDivisor int `yaml:"gap_divisor"`
}

// Mode returns the mode config at index, or false if out of range.
func (c JumpBoyConfig) Mode(mode int) (ModeConfig, bool) {
	if mode < 0 || mode >= len(c.Modes) {
		return ModeConfig{}, false
	}
	return c.Modes[mode], true
}

// Stage returns the stage config at index, or false if out of range.
func (c JumpBoyConfig) Stage(stage int) (StageConfig, bool) {
	if stage < 0 || stage >= len(c.Stages) {
		return StageConfig{}, false
	}
	return c.Stages[stage], true
}
