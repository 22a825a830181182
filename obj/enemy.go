package obj

import (
	"math"

	"github.com/milk9111/citydash/common"
)

// EnemyTuning sizes the patrol and its hitbox, in pixels.
type EnemyTuning struct {
	Size        float64
	Speed       float64
	MovingRange float64
	HitboxSize  float64
}

func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{Size: 30, Speed: 5, MovingRange: 200, HitboxSize: 5}
}

// Enemy patrols back and forth around CenterX. X and Y are the body center.
type Enemy struct {
	X, Y      float64
	CenterX   float64
	Direction int

	tuning EnemyTuning
}

func NewEnemy(x, y float64, tuning EnemyTuning) *Enemy {
	return &Enemy{X: x, Y: y, CenterX: x, Direction: 1, tuning: tuning}
}

// Update moves the enemy one step. It turns around when it leaves its range
// or when either side of its body, sampled at its vertical center, would enter
// a solid tile; in the second case it also goes back to where it was.
func (e *Enemy) Update(grid *TileGrid) {
	oldX := e.X
	e.X += e.tuning.Speed * float64(e.Direction)

	reverse := math.Abs(e.X-e.CenterX) > e.tuning.MovingRange/2

	half := e.tuning.Size / 2
	ts := grid.TileSize()
	row := common.TileIndex(e.Y, ts)
	left := common.TileIndex(e.X-half, ts)
	right := common.TileIndex(e.X+half, ts)
	if grid.IsSolid(left, row) || grid.IsSolid(right, row) {
		e.X = oldX
		reverse = true
	}

	if reverse {
		e.Direction = -e.Direction
	}
}

// Bounds is the drawn body.
func (e *Enemy) Bounds() common.Rect {
	half := e.tuning.Size / 2
	return common.Rect{X: e.X - half, Y: e.Y - half, Width: e.tuning.Size, Height: e.tuning.Size}
}

// Hitbox is the small square around the center that hurts the player.
func (e *Enemy) Hitbox() common.Rect {
	hs := e.tuning.HitboxSize
	off := math.Floor(hs / 2)
	return common.Rect{X: e.X - off, Y: e.Y - off, Width: hs, Height: hs}
}
