package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/citydash/component"
	"github.com/milk9111/citydash/obj"
)

func faded(c color.RGBA, alpha float64) color.NRGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}

func drawParticles(screen *ebiten.Image, particles []component.Particle, cam *obj.Camera) {
	for i := range particles {
		p := &particles[i]
		size := float64(p.Size)
		x, y, w, h := screenRect(cam, p.Pos.X-size/2, p.Pos.Y-size/2, size, size)
		vector.FillRect(screen, x, y, w, h, faded(p.Color, p.Fade()), false)
	}
}

func drawWeather(screen *ebiten.Image, weather *component.Weather, cam *obj.Camera, now int64) {
	particles := weather.Live()
	switch weather.Kind() {
	case component.WeatherRain:
		for i := range particles {
			p := &particles[i]
			sx, sy := cam.ToScreen(p.Pos.X, p.Pos.Y)
			if sx < -20 || sx > cam.ViewWidth+20 {
				continue
			}
			// streak trails behind the drop and stretches with its speed
			tx := sx - p.Vel.X
			ty := sy - p.Vel.Y*0.8
			vector.StrokeLine(screen, float32(sx), float32(sy), float32(tx), float32(ty),
				float32(p.Size)/2, faded(p.Color, 0.6*p.Fade()+0.2), true)
		}
	case component.WeatherSnow:
		for i := range particles {
			p := &particles[i]
			sx, sy := cam.ToScreen(p.Pos.X, p.Pos.Y)
			if sx < -10 || sx > cam.ViewWidth+10 {
				continue
			}
			twinkle := 0.65 + 0.35*math.Sin(float64(now)*0.005+p.Pos.X)
			clr := faded(p.Color, twinkle)
			r := float32(p.Size)
			x, y := float32(sx), float32(sy)
			vector.StrokeLine(screen, x-r, y, x+r, y, 1, clr, true)
			vector.StrokeLine(screen, x, y-r, x, y+r, 1, clr, true)
			vector.FillRect(screen, x-1, y-1, 2, 2, clr, false)
		}
	}
}

func fillScreen(screen *ebiten.Image, clr color.Color) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
}
