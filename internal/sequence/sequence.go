// Package sequence runs ordered, timed steps one frame at a time.
//
// Each step waits for its delay, then its Process function is called once per
// frame until it reports completion. A completed step may hand back a value
// (typically the next scene), which ends the frame and is returned to the
// caller. At most one step does work per frame.
package sequence

import "github.com/vovakirdan/jumpboy/internal/clock"

// ProcessFunc does one frame of a step's work. first is true on the first
// call. The timer is the step's delay timer; a step may change its limit and
// reset it to pace repeated work. Returning true completes the step.
type ProcessFunc func(first bool, timer *clock.Timer) bool

// Step describes one entry of a Sequence.
type Step[T any] struct {
	DelayMs int
	Process ProcessFunc
	// Next is optional. When set it runs once the step completes and its
	// result is returned from Update.
	Next func() (T, bool)
}

type stepState[T any] struct {
	step    Step[T]
	timer   *clock.Timer
	started bool
	ended   bool
}

// Sequence is an ordered list of steps.
type Sequence[T any] struct {
	steps []*stepState[T]
}

// New builds a sequence whose delay timers run against sw.
// Timers stay detached until the sequence first reaches their step.
func New[T any](sw *clock.Stopwatch, steps ...Step[T]) *Sequence[T] {
	s := &Sequence[T]{steps: make([]*stepState[T], 0, len(steps))}
	for _, st := range steps {
		if st.Process == nil {
			st.Process = Done
		}
		s.steps = append(s.steps, &stepState[T]{
			step:  st,
			timer: clock.NewTimer(sw, st.DelayMs, false),
		})
	}
	return s
}

// Done is a ProcessFunc that completes immediately.
func Done(bool, *clock.Timer) bool {
	return true
}

// Update advances the current step by one frame. It returns the value
// produced by a completing step's Next, if any.
func (s *Sequence[T]) Update() (T, bool) {
	var zero T
	for _, st := range s.steps {
		if st.ended {
			continue
		}

		st.timer.Resume()
		if !st.timer.Over() {
			return zero, false
		}

		first := !st.started
		st.started = true
		if !st.step.Process(first, st.timer) {
			return zero, false
		}

		st.ended = true
		if st.step.Next != nil {
			return st.step.Next()
		}
		return zero, false
	}
	return zero, false
}

// Ended reports whether every step has completed.
func (s *Sequence[T]) Ended() bool {
	for _, st := range s.steps {
		if !st.ended {
			return false
		}
	}
	return true
}

// Current returns the index of the first unfinished step, or -1 once the
// sequence has ended.
func (s *Sequence[T]) Current() int {
	for i, st := range s.steps {
		if !st.ended {
			return i
		}
	}
	return -1
}
