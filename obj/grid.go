package obj

import (
	"errors"
	"fmt"

	"github.com/milk9111/citydash/common"
)

var ErrInvalidGrid = errors.New("tile grid: invalid dimensions")

// TileGrid is the static collision map. Cells are stored row-major in a
// single buffer; anything outside the grid counts as solid.
type TileGrid struct {
	width    int
	height   int
	tileSize int
	cells    []bool
}

// NewTileGrid copies cells (len width*height, row-major) into a new grid.
func NewTileGrid(width, height, tileSize int, cells []bool) (*TileGrid, error) {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles of %dpx", ErrInvalidGrid, width, height, tileSize)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidGrid, len(cells), width, height)
	}
	return &TileGrid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		cells:    append([]bool(nil), cells...),
	}, nil
}

func (g *TileGrid) Width() int    { return g.width }
func (g *TileGrid) Height() int   { return g.height }
func (g *TileGrid) TileSize() int { return g.tileSize }

func (g *TileGrid) PixelWidth() float64  { return float64(g.width * g.tileSize) }
func (g *TileGrid) PixelHeight() float64 { return float64(g.height * g.tileSize) }

// IsSolid reports the occupancy of a tile. Out-of-range tiles are solid.
func (g *TileGrid) IsSolid(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= g.width || ty >= g.height {
		return true
	}
	return g.cells[ty*g.width+tx]
}

// CheckCollision reports whether the world point lies in a solid tile.
func (g *TileGrid) CheckCollision(wx, wy float64) bool {
	return g.IsSolid(common.TileIndex(wx, g.tileSize), common.TileIndex(wy, g.tileSize))
}

// TileTop returns the world y of the top edge of tile row ty.
func (g *TileGrid) TileTop(ty int) float64 {
	return float64(ty * g.tileSize)
}
