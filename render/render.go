package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/citydash/obj"
	"github.com/milk9111/citydash/system"
)

var (
	skyColor     = color.RGBA{R: 24, G: 26, B: 38, A: 255}
	tileColor    = colornames.Dimgray
	tileEdge     = colornames.Darkslategray
	carColor     = colornames.Orange
	carWindow    = colornames.Lightsteelblue
	enemyColor   = colornames.Red
	playerColor  = colornames.Crimson
	playerFlash  = colornames.White
	hitboxColor  = color.NRGBA{R: 255, G: 0, B: 0, A: 200}
	hitOverlay   = color.NRGBA{R: 255, A: 60}
	deathOverlay = color.NRGBA{R: 255, A: 120}
)

// Renderer draws a World. It keeps only caches; all game state is read from
// the world at draw time.
type Renderer struct {
	Debug bool

	face    text.Face
	minimap minimap
}

func New(debug bool) *Renderer {
	return &Renderer{
		Debug: debug,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders one frame. now is the same millisecond clock the world is
// stepped with.
func (r *Renderer) Draw(screen *ebiten.Image, w *system.World, now int64) {
	screen.Fill(skyColor)
	if w == nil || w.Level == nil {
		return
	}
	cam := w.Camera

	r.drawTiles(screen, w.Level.Grid, cam)
	r.drawCars(screen, w.Level.Cars, cam)
	if w.Enemy != nil {
		r.drawEnemy(screen, w.Enemy, cam)
	}
	r.drawPlayer(screen, w.Player, cam, now)
	drawParticles(screen, w.Player.Particles.Live(), cam)
	if w.Weather != nil {
		drawWeather(screen, w.Weather, cam, now)
	}

	switch {
	case w.GameOver():
		fillScreen(screen, deathOverlay)
	case w.Player.Health.Invulnerable(now):
		fillScreen(screen, hitOverlay)
	}

	r.drawHUD(screen, w)
	r.minimap.draw(screen, w)

	if r.Debug {
		ps := w.Player.Particles
		status := fmt.Sprintf("FPS: %.1f  level: %s  x: %.0f y: %.0f  vy: %.2f  particles: %d/%d",
			ebiten.ActualFPS(), w.Level.Name, w.Player.X, w.Player.Y, w.Player.VelocityY, ps.Count(), ps.Capacity())
		if w.Weather != nil {
			status += fmt.Sprintf("  %s: %d/%d", w.Weather.Kind(), w.Weather.Count(), w.Weather.Capacity())
		}
		ebitenutil.DebugPrintAt(screen, status, 10, int(cam.ViewHeight)-20)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func screenRect(cam *obj.Camera, x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := cam.ToScreen(x, y)
	return float32(sx), float32(sy), float32(w), float32(h)
}
