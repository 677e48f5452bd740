package sim

import (
	"math"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
)

// Camera smoothly follows a world point and maps world units onto a view
// of arbitrary size. Scale fits the virtual view into the real one.
type Camera struct {
	X, Y  float64
	Scale float64

	virtualW, virtualH float64
	viewW, viewH       float64
}

// NewCamera creates a camera for a virtual view of w by h world units.
func NewCamera(w, h float64) *Camera {
	return &Camera{Scale: 1, virtualW: w, virtualH: h, viewW: w, viewH: h}
}

// Resize sets the real view size and refits the scale.
func (c *Camera) Resize(w, h float64) {
	c.viewW, c.viewH = w, h
	if c.virtualW <= 0 || c.virtualH <= 0 {
		c.Scale = 1
		return
	}
	c.Scale = math.Min(w/c.virtualW, h/c.virtualH)
}

// Follow moves the camera towards target. decay is the fraction of the
// offset left after one second.
func (c *Camera) Follow(target core.Vec2, dt, decay float64) {
	t := 1 - math.Pow(decay, dt)
	c.X += (target.X - c.X) * t
	c.Y += (target.Y - c.Y) * t
}

// WorldToScreen maps a world point into view coordinates.
func (c *Camera) WorldToScreen(p core.Vec2) core.Vec2 {
	return core.V((p.X-c.X)*c.Scale+c.viewW/2, (p.Y-c.Y)*c.Scale+c.viewH/2)
}

// ScreenToWorld maps a view point back into the world.
func (c *Camera) ScreenToWorld(p core.Vec2) core.Vec2 {
	if c.Scale == 0 {
		return core.V(c.X, c.Y)
	}
	return core.V((p.X-c.viewW/2)/c.Scale+c.X, (p.Y-c.viewH/2)/c.Scale+c.Y)
}
