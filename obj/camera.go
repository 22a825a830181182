package obj

import (
	"math"

	"github.com/milk9111/citydash/common"
)

// Camera scrolls horizontally to keep the player centered, within the map.
type Camera struct {
	OffsetX float64
	OffsetY float64

	ViewWidth  float64
	ViewHeight float64
	MapWidth   float64

	// Rate is the exponential follow rate per second. Higher follows faster.
	Rate float64
}

func NewCamera(viewW, viewH, mapW, rate float64) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH, MapWidth: mapW, Rate: rate}
}

func (c *Camera) maxOffset() float64 {
	return math.Max(0, c.MapWidth-c.ViewWidth)
}

// Target is the clamped offset that would center a body at x with width w.
func (c *Camera) Target(x, w float64) float64 {
	return common.Clamp(x+w/2-c.ViewWidth/2, 0, c.maxOffset())
}

// Update eases OffsetX toward the target. dt is in seconds. The result is
// clamped again because a large rate*dt overshoots.
func (c *Camera) Update(x, w, dt float64) {
	c.OffsetX = common.Lerp(c.OffsetX, c.Target(x, w), c.Rate*dt)
	c.OffsetX = common.Clamp(c.OffsetX, 0, c.maxOffset())
}

// SnapTo places the camera on the target immediately, e.g. after a level load.
func (c *Camera) SnapTo(x, w float64) {
	c.OffsetX = c.Target(x, w)
}

// Nudge shifts the view horizontally, staying inside the map.
func (c *Camera) Nudge(dx float64) {
	c.OffsetX = common.Clamp(c.OffsetX+dx, 0, c.maxOffset())
}

// ToScreen converts world coordinates to view coordinates.
func (c *Camera) ToScreen(wx, wy float64) (float64, float64) {
	return wx - c.OffsetX, wy - c.OffsetY
}
