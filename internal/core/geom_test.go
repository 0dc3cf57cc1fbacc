package core

import "testing"

func TestBoxEdges(t *testing.T) {
	b := Box{Origin: Vec{X: 16, Y: 96}, Size: Size{W: 16, H: 16}}

	if b.Left() != 16 || b.Right() != 32 {
		t.Errorf("horizontal edges = [%v, %v], expected [16, 32]", b.Left(), b.Right())
	}
	if b.Top() != 96 || b.Bottom() != 112 {
		t.Errorf("vertical edges = [%v, %v], expected [96, 112]", b.Top(), b.Bottom())
	}
	if c := b.Center(); c != (Vec{X: 24, Y: 104}) {
		t.Errorf("Center() = %+v, expected {24 104}", c)
	}
}

func TestBoxHit(t *testing.T) {
	size := Size{W: 16, H: 16}
	base := Box{Origin: Vec{X: 0, Y: 0}, Size: size}

	tests := []struct {
		name  string
		other Box
		hit   bool
	}{
		{"same box", base, true},
		{"top-left corner inside", Box{Origin: Vec{X: -8, Y: -8}, Size: size}, true},
		{"touching edge counts", Box{Origin: Vec{X: 16, Y: 0}, Size: size}, true},
		{"apart", Box{Origin: Vec{X: 40, Y: 0}, Size: size}, false},
		{
			// A wide flat box crossing the square: the boxes overlap but
			// no corner of the square lies inside it.
			"cross shape is missed",
			Box{Origin: Vec{X: -10, Y: 6}, Size: Size{W: 36, H: 4}},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Hit(tc.other); got != tc.hit {
				t.Errorf("Hit() = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestBoxHitIsAsymmetric(t *testing.T) {
	big := Box{Origin: Vec{X: 0, Y: 0}, Size: Size{W: 32, H: 32}}
	small := Box{Origin: Vec{X: 8, Y: 8}, Size: Size{W: 8, H: 8}}

	if !small.Hit(big) {
		t.Error("small.Hit(big) = false, expected true")
	}
	if big.Hit(small) {
		t.Error("big.Hit(small) = true, expected false")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClampHelpers(t *testing.T) {
	if Clamp(15, 0, 10) != 10 || Clamp(-1, 0, 10) != 0 || Clamp(4, 0, 10) != 4 {
		t.Error("Clamp() returned a value outside the range")
	}
	if ClampF(120, 8, 104) != 104 || ClampF(0, 8, 104) != 8 {
		t.Error("ClampF() returned a value outside the range")
	}
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs() mismatch")
	}
}
