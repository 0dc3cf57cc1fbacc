package core

import "testing"

func TestInputFrameQueries(t *testing.T) {
	tests := []struct {
		name      string
		actions   []Action
		confirmed bool
		holding   bool
		cancelled bool
	}{
		{"empty", nil, false, false, false},
		{"pressed", []Action{ActionConfirm}, true, true, false},
		{"held only", []Action{ActionHold}, false, true, false},
		{"cancel", []Action{ActionCancel}, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if f.Confirmed() != tc.confirmed {
				t.Errorf("Confirmed() = %v, expected %v", f.Confirmed(), tc.confirmed)
			}
			if f.Holding() != tc.holding {
				t.Errorf("Holding() = %v, expected %v", f.Holding(), tc.holding)
			}
			if f.Cancelled() != tc.cancelled {
				t.Errorf("Cancelled() = %v, expected %v", f.Cancelled(), tc.cancelled)
			}
		})
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionConfirm) {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionConfirm) {
		t.Error("Clone() should not share storage with the cloned frame")
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero InputFrame should report no actions")
	}
	zero.Set(ActionHold)
	if !zero.Holding() {
		t.Error("Set() on zero InputFrame should allocate")
	}
}
