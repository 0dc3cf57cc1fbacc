package jumpboy

import "github.com/vovakirdan/jumpboy/internal/core"

// Field is the play area. Obstacles only bound ball movement; they are
// not drawn differently from the ground.
type Field struct {
	Surface      string
	MaxSize      core.Size
	GroundHeight float64
	ScrollPos    core.Vec
	Obstacles    []core.Box
	// StartX is the left edge the jumper walks to before a stage starts.
	StartX float64
}

func (f *Field) Left() float64   { return -f.ScrollPos.X }
func (f *Field) Right() float64  { return f.MaxSize.W - f.ScrollPos.X }
func (f *Field) Top() float64    { return -f.ScrollPos.Y }
func (f *Field) Bottom() float64 { return f.GroundHeight - f.ScrollPos.Y }

// obstacle returns o shifted into screen space.
func (f *Field) obstacle(o core.Box) core.Box {
	return core.Box{Origin: core.Vec{X: o.Origin.X - f.ScrollPos.X, Y: o.Origin.Y - f.ScrollPos.Y}, Size: o.Size}
}

// LeftEnd returns the outermost obstacle right edge at or left of origin
// whose vertical span contains origin.Y.
func (f *Field) LeftEnd(origin core.Vec) (float64, bool) {
	end, found := 0.0, false
	for _, o := range f.Obstacles {
		o = f.obstacle(o)
		if origin.Y < o.Top() || origin.Y > o.Bottom() {
			continue
		}
		if o.Right() <= origin.X && (!found || o.Right() < end) {
			end, found = o.Right(), true
		}
	}
	return end, found
}

// RightEnd returns the outermost obstacle left edge at or right of origin
// whose vertical span contains origin.Y. Taking the outermost edge lets a
// ball spawned outside the field pass the entry wall and bounce off the far
// one.
func (f *Field) RightEnd(origin core.Vec) (float64, bool) {
	end, found := 0.0, false
	for _, o := range f.Obstacles {
		o = f.obstacle(o)
		if origin.Y < o.Top() || origin.Y > o.Bottom() {
			continue
		}
		if origin.X <= o.Left() && (!found || o.Left() > end) {
			end, found = o.Left(), true
		}
	}
	return end, found
}
