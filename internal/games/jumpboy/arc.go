package jumpboy

import "github.com/vovakirdan/jumpboy/internal/core"

// arc integrates a vertical ballistic trajectory on positions:
// next = y + (y - prevY) + accel. kick is the acceleration the arc was
// started with; while accel still equals kick the arc is on its first frame.
type arc struct {
	accel int
	kick  int
	prevY float64
}

func (a *arc) start(kick int, y float64) {
	a.accel = kick
	a.kick = kick
	a.prevY = y
}

func (a *arc) kicking() bool {
	return a.accel == a.kick
}

// step advances y by one frame, clamped to [minY, maxY], and resets accel
// to the constant downward pull.
func (a *arc) step(y, minY, maxY float64) float64 {
	next := core.ClampF(y+(y-a.prevY)+float64(a.accel), minY, maxY)
	a.prevY = y
	a.accel = 1
	return next
}

// centerBounds returns the allowed center range for a sprite of height h.
func centerBounds(f *Field, h float64) (float64, float64) {
	return f.Top() + h/2, f.Bottom() - h/2
}
