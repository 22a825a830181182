package obj

import "github.com/milk9111/citydash/common"

// Car is a static hazard.
type Car struct {
	Box    common.Rect
	Active bool
}

// Hits reports whether an active car overlaps r.
func (c *Car) Hits(r common.Rect) bool {
	return c != nil && c.Active && c.Box.Intersects(r)
}
