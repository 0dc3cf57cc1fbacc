package sequence

import (
	"testing"

	"github.com/vovakirdan/jumpboy/internal/clock"
)

func TestSequenceRunsStepsInOrder(t *testing.T) {
	sw := clock.NewStopwatch(30)
	var calls []string

	seq := New(sw,
		Step[string]{
			Process: func(first bool, _ *clock.Timer) bool {
				calls = append(calls, "a")
				return true
			},
		},
		Step[string]{
			DelayMs: 100,
			Process: func(first bool, _ *clock.Timer) bool {
				calls = append(calls, "b")
				return true
			},
			Next: func() (string, bool) { return "next", true },
		},
	)

	var (
		got       string
		ok        bool
		doneFrame int
	)
	for frame := 1; frame <= 10 && !ok; frame++ {
		sw.Update()
		got, ok = seq.Update()
		doneFrame = frame
	}

	if !ok || got != "next" {
		t.Fatalf("Update() = (%q, %v), expected (\"next\", true)", got, ok)
	}
	// Step a completes on frame 1, step b starts its delay on frame 2 and
	// reaches 100ms three frames later.
	if doneFrame != 5 {
		t.Errorf("transition on frame %d, expected 5", doneFrame)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("calls = %v, expected [a b]", calls)
	}
	if !seq.Ended() {
		t.Error("Ended() = false after all steps completed")
	}
}

func TestSequenceZeroDelayCostsAFrame(t *testing.T) {
	sw := clock.NewStopwatch(30)
	frames := map[string]int{}
	frame := 0

	seq := New(sw,
		Step[int]{Process: func(bool, *clock.Timer) bool { frames["a"] = frame; return true }},
		Step[int]{Process: func(bool, *clock.Timer) bool { frames["b"] = frame; return true }},
	)

	for frame = 1; frame <= 3; frame++ {
		sw.Update()
		seq.Update()
	}

	if frames["a"] != 1 || frames["b"] != 2 {
		t.Errorf("step frames = %v, expected a=1 b=2", frames)
	}
}

func TestSequenceProcessFirstFlag(t *testing.T) {
	sw := clock.NewStopwatch(30)
	var firsts []bool

	seq := New(sw, Step[int]{
		Process: func(first bool, _ *clock.Timer) bool {
			firsts = append(firsts, first)
			return len(firsts) == 3
		},
	})

	for i := 0; i < 5; i++ {
		sw.Update()
		seq.Update()
	}

	expected := []bool{true, false, false}
	if len(firsts) != len(expected) {
		t.Fatalf("Process called %d times, expected %d", len(firsts), len(expected))
	}
	for i := range expected {
		if firsts[i] != expected[i] {
			t.Errorf("call %d first = %v, expected %v", i, firsts[i], expected[i])
		}
	}
}

func TestSequenceTimerRepacing(t *testing.T) {
	// A step can reset its own timer to run once per interval.
	sw := clock.NewStopwatch(30)
	ticks := 0

	seq := New(sw, Step[int]{
		Process: func(first bool, timer *clock.Timer) bool {
			if !first {
				ticks++
				if ticks == 3 {
					return true
				}
			}
			timer.SetLimit(1000)
			timer.Reset()
			return false
		},
	})

	frames := 0
	for !seq.Ended() && frames < 200 {
		sw.Update()
		seq.Update()
		frames++
	}

	if ticks != 3 {
		t.Errorf("ticks = %d, expected 3", ticks)
	}
	// First call on frame 1, then one call per 30 frames.
	if frames != 91 {
		t.Errorf("ended after %d frames, expected 91", frames)
	}
}

func TestSequenceNextWithoutValue(t *testing.T) {
	sw := clock.NewStopwatch(30)
	seq := New(sw,
		Step[int]{Next: func() (int, bool) { return 0, false }},
		Step[int]{Next: func() (int, bool) { return 7, true }},
	)

	sw.Update()
	if _, ok := seq.Update(); ok {
		t.Error("first step should not produce a value")
	}
	if seq.Current() != 1 {
		t.Errorf("Current() = %d, expected 1", seq.Current())
	}

	sw.Update()
	v, ok := seq.Update()
	if !ok || v != 7 {
		t.Errorf("Update() = (%d, %v), expected (7, true)", v, ok)
	}
	if seq.Current() != -1 {
		t.Errorf("Current() = %d, expected -1", seq.Current())
	}
}
