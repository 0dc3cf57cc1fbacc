package jumpboy

// SoundID identifies a sound effect handed to the Audio collaborator.
type SoundID int

const (
	SoundJumperWalk SoundID = iota
	SoundJumperJump
	SoundJumperDamage
	SoundJumperFallDown
	SoundJumperJoy

	SoundBallSpin
	SoundBallBounce
	SoundBallBurst
	SoundBallLeap

	SoundReady
	SoundPause
	SoundTimeUp
	SoundGameOver
	SoundStageClear
	SoundSelect
	SoundRestart
	SoundStart
	SoundRecoverLife
	SoundTitle
)

var soundNames = [...]string{
	SoundJumperWalk:     "jumper_walk",
	SoundJumperJump:     "jumper_jump",
	SoundJumperDamage:   "jumper_damage",
	SoundJumperFallDown: "jumper_fall_down",
	SoundJumperJoy:      "jumper_joy",
	SoundBallSpin:       "ball_spin",
	SoundBallBounce:     "ball_bounce",
	SoundBallBurst:      "ball_burst",
	SoundBallLeap:       "ball_leap",
	SoundReady:          "ready",
	SoundPause:          "pause",
	SoundTimeUp:         "time_up",
	SoundGameOver:       "game_over",
	SoundStageClear:     "stage_clear",
	SoundSelect:         "select",
	SoundRestart:        "restart",
	SoundStart:          "start",
	SoundRecoverLife:    "recover_life",
	SoundTitle:          "title",
}

func (s SoundID) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// Audio plays sound effects and background music. Calls are
// fire-and-forget; the simulation never depends on their outcome.
type Audio interface {
	PlaySound(id SoundID)
	PlayMusic(name string)
	StopMusic()
}

// LogAudio is an Audio that only logs what would be played.
type LogAudio struct{}

func (LogAudio) PlaySound(id SoundID) { logger.Debug("sound", "id", id) }
func (LogAudio) PlayMusic(name string) { logger.Debug("music play", "name", name) }
func (LogAudio) StopMusic()           { logger.Debug("music stop") }

// BellAudio rings the terminal bell for the sounds that matter to a player
// without speakers: damage, game over and stage clear.
type BellAudio struct {
	LogAudio
	Ring func()
}

func (b BellAudio) PlaySound(id SoundID) {
	b.LogAudio.PlaySound(id)
	switch id {
	case SoundJumperDamage, SoundGameOver, SoundStageClear:
		if b.Ring != nil {
			b.Ring()
		}
	}
}
