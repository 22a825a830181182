package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/citydash/obj"
)

// drawTiles draws only the columns inside the view.
func (r *Renderer) drawTiles(screen *ebiten.Image, grid *obj.TileGrid, cam *obj.Camera) {
	ts := float64(grid.TileSize())
	first := int(math.Floor(cam.OffsetX / ts))
	last := int(math.Ceil((cam.OffsetX + cam.ViewWidth) / ts))
	if first < 0 {
		first = 0
	}
	if last > grid.Width() {
		last = grid.Width()
	}

	for ty := 0; ty < grid.Height(); ty++ {
		for tx := first; tx < last; tx++ {
			if !grid.IsSolid(tx, ty) {
				continue
			}
			x, y, w, h := screenRect(cam, float64(tx)*ts, float64(ty)*ts, ts, ts)
			vector.FillRect(screen, x, y, w, h, tileColor, false)
			vector.StrokeRect(screen, x, y, w, h, 1, tileEdge, false)
		}
	}
}

func (r *Renderer) drawCars(screen *ebiten.Image, cars []*obj.Car, cam *obj.Camera) {
	for _, c := range cars {
		if c == nil || !c.Active {
			continue
		}
		b := c.Box
		if b.Right() < cam.OffsetX || b.X > cam.OffsetX+cam.ViewWidth {
			continue
		}
		x, y, w, h := screenRect(cam, b.X, b.Y, b.Width, b.Height)
		vector.FillRect(screen, x, y+h*0.35, w, h*0.45, carColor, false)
		vector.FillRect(screen, x+w*0.2, y+h*0.1, w*0.6, h*0.3, carColor, false)
		vector.FillRect(screen, x+w*0.28, y+h*0.15, w*0.44, h*0.2, carWindow, false)
		vector.FillRect(screen, x+w*0.12, y+h*0.8, w*0.2, h*0.2, tileEdge, false)
		vector.FillRect(screen, x+w*0.68, y+h*0.8, w*0.2, h*0.2, tileEdge, false)
		if r.Debug {
			vector.StrokeRect(screen, x, y, w, h, 1, hitboxColor, false)
		}
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *obj.Enemy, cam *obj.Camera) {
	b := e.Bounds()
	x, y, w, h := screenRect(cam, b.X, b.Y, b.Width, b.Height)
	vector.FillRect(screen, x, y, w, h, enemyColor, false)
	if r.Debug {
		hb := e.Hitbox()
		x, y, w, h = screenRect(cam, hb.X, hb.Y, hb.Width, hb.Height)
		vector.StrokeRect(screen, x, y, w, h, 1, playerFlash, false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *obj.Player, cam *obj.Camera, now int64) {
	clr := playerColor
	if p.Flashing(now) {
		clr = playerFlash
	}
	x, y, w, h := screenRect(cam, p.X, p.Y, p.Width, p.Height)
	vector.FillRect(screen, x, y, w, h, clr, false)
	if r.Debug {
		vector.StrokeRect(screen, x, y, w, h, 1, hitboxColor, false)
	}
}
