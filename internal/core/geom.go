// Package core holds the types shared by the game and the platform: world
// geometry, the per-tick input frame, the character screen and the runtime
// config. It imports nothing outside the standard library so the game
// stays testable without a terminal.
package core

// Vec is a point or offset in world pixels.
type Vec struct {
	X, Y float64
}

// Add returns v shifted by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is a width/height pair in world pixels.
type Size struct {
	W, H float64
}

// Box is an axis-aligned box in world pixels, anchored at its top-left corner.
// Edges are inclusive on both sides.
type Box struct {
	Origin Vec
	Size   Size
}

func (b Box) Left() float64   { return b.Origin.X }
func (b Box) Right() float64  { return b.Origin.X + b.Size.W }
func (b Box) Top() float64    { return b.Origin.Y }
func (b Box) Bottom() float64 { return b.Origin.Y + b.Size.H }

// Center returns the midpoint of the box.
func (b Box) Center() Vec {
	return Vec{X: b.Origin.X + b.Size.W/2, Y: b.Origin.Y + b.Size.H/2}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec {
	return Vec{X: b.Right(), Y: b.Bottom()}
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Vec) bool {
	return b.Left() <= p.X && p.X <= b.Right() && b.Top() <= p.Y && p.Y <= b.Bottom()
}

// Hit reports whether b's top-left or bottom-right corner lies inside other.
// This is a corner test, not a full overlap test: crossing shapes where no
// tested corner is enclosed report false, and the result is not symmetric.
func (b Box) Hit(other Box) bool {
	return other.Contains(b.Origin) || other.Contains(b.Max())
}

// Rect is a cell rectangle on a Screen, used when projecting world boxes.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right and Bottom are exclusive.
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}

// ClampF is Clamp for world coordinates.
func ClampF(val, lo, hi float64) float64 {
	return min(max(val, lo), hi)
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
