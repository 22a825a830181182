package obj

import (
	"fmt"

	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/levels"
)

const defaultExitFraction = 0.95

// Level is a loaded map: the collision grid, its hazards and placements.
type Level struct {
	Name string
	Next string

	Grid *TileGrid
	Cars []*Car

	SpawnX, SpawnY float64

	HasEnemy     bool
	EnemyX       float64
	EnemyY       float64
	EnemyRange   float64
	ExitFraction float64
}

// NewLevel builds the runtime level from its description.
func NewLevel(desc *levels.Level) (*Level, error) {
	if desc == nil {
		return nil, fmt.Errorf("level: nil description")
	}
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", desc.Name, err)
	}
	grid, err := NewTileGrid(desc.Width, desc.Height, common.TileSize, desc.Cells())
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", desc.Name, err)
	}

	lvl := &Level{
		Name:         desc.Name,
		Next:         desc.Next,
		Grid:         grid,
		SpawnX:       desc.Spawn.X,
		SpawnY:       desc.Spawn.Y,
		ExitFraction: desc.Exit,
	}
	if lvl.ExitFraction == 0 {
		lvl.ExitFraction = defaultExitFraction
	}
	for _, c := range desc.Cars {
		lvl.Cars = append(lvl.Cars, &Car{
			Box:    common.Rect{X: c.X, Y: c.Y, Width: c.W, Height: c.H},
			Active: true,
		})
	}
	if desc.Enemy != nil {
		lvl.HasEnemy = true
		lvl.EnemyX = desc.Enemy.X
		lvl.EnemyY = desc.Enemy.Y
		lvl.EnemyRange = desc.Enemy.Range
	}
	return lvl, nil
}

// LoadLevel loads an embedded level by name.
func LoadLevel(name string) (*Level, error) {
	desc, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return nil, err
	}
	return NewLevel(desc)
}

// ReachedExit reports whether a body's right edge crossed the exit line.
func (l *Level) ReachedExit(r common.Rect) bool {
	return r.Right() >= l.ExitFraction*l.Grid.PixelWidth()
}
