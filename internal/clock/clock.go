// Package clock provides frame-quantized time for the simulation.
// All durations derive from an integer frame counter and a fixed frame rate,
// so two runs fed the same frames observe the same milliseconds.
package clock

// NoLimit marks a timer that is never over.
const NoLimit = -1

// Stopwatch counts frames and converts them to milliseconds.
type Stopwatch struct {
	fps   int
	frame int
}

// NewStopwatch creates a stopwatch ticking at fps frames per second.
func NewStopwatch(fps int) *Stopwatch {
	if fps <= 0 {
		fps = 30
	}
	return &Stopwatch{fps: fps}
}

// FPS returns the configured frame rate.
func (s *Stopwatch) FPS() int {
	return s.fps
}

// Frame returns the number of frames counted so far.
func (s *Stopwatch) Frame() int {
	return s.frame
}

// Update advances the stopwatch by one frame.
func (s *Stopwatch) Update() {
	s.frame++
}

// NowMs returns the elapsed milliseconds since the stopwatch was created.
func (s *Stopwatch) NowMs() int {
	return s.msAt(s.frame)
}

func (s *Stopwatch) msAt(frame int) int {
	return frame * 1000 / s.fps
}

// Timer is a pausable interval measured against a Stopwatch.
type Timer struct {
	sw         *Stopwatch
	startFrame int
	running    bool
	offsetMs   int
	limitMs    int
}

// NewTimer creates a timer with the given limit. A negative limit means the
// timer is never over. When autoStart is false the timer stays detached
// until Resume or Reset is called.
func NewTimer(sw *Stopwatch, limitMs int, autoStart bool) *Timer {
	t := &Timer{sw: sw, limitMs: limitMs}
	if autoStart {
		t.Resume()
	}
	return t
}

// ElapsedMs returns the accumulated running time in milliseconds.
func (t *Timer) ElapsedMs() int {
	ms := t.offsetMs
	if t.running {
		ms += t.sw.NowMs() - t.sw.msAt(t.startFrame)
	}
	return ms
}

// Over reports whether a limit is set and the elapsed time reached it.
func (t *Timer) Over() bool {
	return t.limitMs >= 0 && t.ElapsedMs() >= t.limitMs
}

// Running reports whether the timer is attached to the stopwatch.
func (t *Timer) Running() bool {
	return t.running
}

// Pause folds the elapsed time into the offset and detaches the timer.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.offsetMs = t.ElapsedMs()
	t.running = false
}

// Resume re-anchors a paused timer on the current frame.
// Resuming a running timer is a no-op.
func (t *Timer) Resume() {
	if t.running {
		return
	}
	t.startFrame = t.sw.Frame()
	t.running = true
}

// Reset restarts the timer from zero on the current frame.
func (t *Timer) Reset() {
	t.startFrame = t.sw.Frame()
	t.running = true
	t.offsetMs = 0
}

// LimitMs returns the configured limit, or NoLimit.
func (t *Timer) LimitMs() int {
	return t.limitMs
}

// SetLimit changes the limit without touching elapsed time.
func (t *Timer) SetLimit(ms int) {
	t.limitMs = ms
}

// RemainingMs returns the time left before the limit, never negative.
func (t *Timer) RemainingMs() int {
	if t.limitMs < 0 {
		return 0
	}
	return max(t.limitMs-t.ElapsedMs(), 0)
}
