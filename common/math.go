package common

import "math"

const (
	TileSize = 32

	// BaseWidth and BaseHeight are the logical viewport size in pixels.
	BaseWidth  = 1280
	BaseHeight = 800

	// FrameRate is the simulation rate the per-frame constants are tuned for.
	FrameRate = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// TileIndex converts a world coordinate to a tile index. Negative coordinates
// map to negative indices.
func TileIndex(world float64, tileSize int) int {
	return int(math.Floor(world / float64(tileSize)))
}
