package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/obj"
	"github.com/milk9111/citydash/system"
)

const (
	hudMargin  = 10
	heartPixel = 3
	// minimapFraction is the minimap width as a share of the view width.
	minimapFraction = 0.20
)

var heartShape = []string{
	".XX.XX.",
	"XXXXXXX",
	"XXXXXXX",
	".XXXXX.",
	"..XXX..",
	"...X...",
}

func (r *Renderer) drawHUD(screen *ebiten.Image, w *system.World) {
	r.drawText(screen, "Time: "+common.FormatElapsed(w.Elapsed), hudMargin, hudMargin, colornames.White)

	heartW := float32(len(heartShape[0])*heartPixel + 6)
	for i := 0; i < w.Player.Health.Current; i++ {
		drawHeart(screen, hudMargin+float32(i)*heartW, hudMargin+20, colornames.Red)
	}
	for i := w.Player.Health.Current; i < w.Player.Health.Max; i++ {
		drawHeart(screen, hudMargin+float32(i)*heartW, hudMargin+20, colornames.Dimgray)
	}
}

func drawHeart(screen *ebiten.Image, x, y float32, clr color.Color) {
	for row, line := range heartShape {
		for col, c := range line {
			if c != 'X' {
				continue
			}
			vector.FillRect(screen, x+float32(col*heartPixel), y+float32(row*heartPixel), heartPixel, heartPixel, clr, false)
		}
	}
}

// minimap caches the rasterized tiles of the current level.
type minimap struct {
	level *obj.Level
	img   *ebiten.Image
	scale float64
}

func (m *minimap) rebuild(lvl *obj.Level, viewW float64) {
	grid := lvl.Grid
	m.level = lvl
	m.scale = viewW * minimapFraction / grid.PixelWidth()

	w := max(1, int(grid.PixelWidth()*m.scale))
	h := max(1, int(grid.PixelHeight()*m.scale))
	m.img = ebiten.NewImage(w, h)
	m.img.Fill(color.NRGBA{A: 160})

	ts := float64(grid.TileSize()) * m.scale
	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			if grid.IsSolid(tx, ty) {
				vector.FillRect(m.img, float32(float64(tx)*ts), float32(float64(ty)*ts), float32(ts)+0.5, float32(ts)+0.5, colornames.Gray, false)
			}
		}
	}
	for _, c := range lvl.Cars {
		vector.FillRect(m.img, float32(c.Box.X*m.scale), float32(c.Box.Y*m.scale),
			float32(c.Box.Width*m.scale), float32(c.Box.Height*m.scale), carColor, false)
	}
}

func (m *minimap) draw(screen *ebiten.Image, w *system.World) {
	if m.level != w.Level || m.img == nil {
		if m.img != nil {
			m.img.Deallocate()
		}
		m.rebuild(w.Level, w.Camera.ViewWidth)
	}

	iw := float64(m.img.Bounds().Dx())
	ox := w.Camera.ViewWidth - iw - hudMargin
	oy := float64(hudMargin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(m.img, op)

	ih := float32(m.img.Bounds().Dy())
	vx := float32(ox + w.Camera.OffsetX*m.scale)
	vector.StrokeRect(screen, vx, float32(oy), float32(w.Camera.ViewWidth*m.scale), ih, 1, colornames.White, false)

	p := w.Player
	vector.FillRect(screen, float32(ox+p.X*m.scale), float32(oy+p.Y*m.scale),
		float32(max(2, p.Width*m.scale)), float32(max(2, p.Height*m.scale)), colornames.Lime, false)
	if w.Enemy != nil {
		vector.FillRect(screen, float32(ox+w.Enemy.X*m.scale)-1, float32(oy+w.Enemy.Y*m.scale)-1, 3, 3, enemyColor, false)
	}
}
