package component

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/jakecoffman/cp"
)

// WeatherKind selects the spawn pattern and per-frame forces.
type WeatherKind int

const (
	WeatherRain WeatherKind = iota
	WeatherSnow
)

func (k WeatherKind) String() string {
	switch k {
	case WeatherRain:
		return "rain"
	case WeatherSnow:
		return "snow"
	default:
		return fmt.Sprintf("weather(%d)", int(k))
	}
}

// ParseWeatherKind accepts "rain" or "snow".
func ParseWeatherKind(s string) (WeatherKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rain":
		return WeatherRain, nil
	case "snow":
		return WeatherSnow, nil
	}
	return 0, fmt.Errorf("weather: unknown kind %q", s)
}

var (
	rainColor = color.RGBA{R: 150, G: 200, B: 255, A: 255}
	snowColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	rainWind      = 0.3
	rainGravity   = 0.1
	snowGravity   = 0.05
	snowSwayAmp   = 2.0
	snowSwayFreq  = 0.001
	snowSwayPhase = 0.01
)

// WeatherTuning holds the spawn cadence and recycling bounds.
type WeatherTuning struct {
	SpawnIntervalMs int64
	Batch           int
	SpawnBuffer     float64
	Margin          float64
	Lifetime        int
}

// DefaultWeatherTuning matches the shipped weather.yaml.
func DefaultWeatherTuning() WeatherTuning {
	return WeatherTuning{
		SpawnIntervalMs: 50,
		Batch:           5,
		SpawnBuffer:     200,
		Margin:          50,
		Lifetime:        1000,
	}
}

// WeatherView is the part of the world the weather spawns into.
type WeatherView struct {
	MapWidth  float64
	MapHeight float64
	CameraX   float64
	ViewWidth float64
}

// spawnSpan returns the x range rain may spawn in: the camera view widened by
// the spawn buffer and clipped to the map.
func (v WeatherView) spawnSpan(buffer float64) (float64, float64) {
	start := math.Max(0, v.CameraX-buffer)
	end := math.Min(v.MapWidth, v.CameraX+v.ViewWidth+buffer)
	return start, end
}

// Weather keeps a particle pool filled with recurring rain or snow.
type Weather struct {
	system    *ParticleSystem
	kind      WeatherKind
	lastSpawn int64
	tuning    WeatherTuning
	rng       *rand.Rand
}

func NewWeather(capacity int, kind WeatherKind, tuning WeatherTuning, rng *rand.Rand) (*Weather, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	ps, err := NewParticleSystem(capacity, rng)
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	return &Weather{
		system: ps,
		kind:   kind,
		tuning: tuning,
		rng:    rng,
	}, nil
}

func (w *Weather) Kind() WeatherKind { return w.kind }

func (w *Weather) Live() []Particle { return w.system.Live() }

func (w *Weather) Count() int { return w.system.Count() }

// Reset drops every particle and restarts the spawn cadence.
func (w *Weather) Reset() {
	w.system.Reset()
	w.lastSpawn = 0
}

// Capacity is the pool size.
func (w *Weather) Capacity() int { return w.system.Capacity() }

// SetTuning swaps cadence and bounds without touching live particles.
func (w *Weather) SetTuning(t WeatherTuning) { w.tuning = t }

// SetKind switches the pattern. Live particles are dropped so old and new
// kinds never mix.
func (w *Weather) SetKind(kind WeatherKind) {
	if kind == w.kind {
		return
	}
	w.kind = kind
	w.Reset()
}

// Update spawns a batch when the interval elapsed, applies the per-kind
// forces, recycles particles that left the map and advances the pool.
func (w *Weather) Update(now int64, view WeatherView, dt float64) {
	if now-w.lastSpawn > w.tuning.SpawnIntervalMs {
		for i := 0; i < w.tuning.Batch; i++ {
			w.spawn(now, view)
		}
		w.lastSpawn = now
	}

	w.system.each(func(p *Particle) {
		switch w.kind {
		case WeatherRain:
			p.Vel.Y += rainGravity
			p.Vel.X += float64(w.rng.Intn(10)-5) * 0.01
		case WeatherSnow:
			p.Vel.X = math.Sin(float64(now)*snowSwayFreq+p.Pos.X*snowSwayPhase) * snowSwayAmp
			p.Vel.Y += snowGravity
		}

		if p.Pos.Y > view.MapHeight || p.Pos.X < -w.tuning.Margin || p.Pos.X > view.MapWidth+w.tuning.Margin {
			p.Pos = cp.Vector{X: w.spawnX(view), Y: w.spawnY()}
			p.Lifetime = w.tuning.Lifetime
		}
	})

	w.system.Update(dt)
}

func (w *Weather) spawn(now int64, view WeatherView) {
	pos := cp.Vector{X: w.spawnX(view), Y: w.spawnY()}
	switch w.kind {
	case WeatherRain:
		vel := cp.Vector{
			X: rainWind * float64(w.rng.Intn(3)-1),
			Y: 15 + float64(w.rng.Intn(5)),
		}
		w.system.Spawn(pos, rainColor, vel, w.tuning.Lifetime, 2)
	case WeatherSnow:
		vel := cp.Vector{
			X: math.Sin(float64(now)*snowSwayFreq) * snowSwayAmp,
			Y: 3 + float64(w.rng.Intn(100))/100,
		}
		w.system.Spawn(pos, snowColor, vel, w.tuning.Lifetime, 3)
	}
}

func (w *Weather) spawnX(view WeatherView) float64 {
	if w.kind == WeatherRain {
		start, end := view.spawnSpan(w.tuning.SpawnBuffer)
		return start + w.randUpTo(end-start)
	}
	return w.randUpTo(view.MapWidth)
}

func (w *Weather) spawnY() float64 {
	return -10 - float64(w.rng.Intn(50))
}

// randUpTo returns an integer-valued float in [0, n), or 0 when n < 1.
func (w *Weather) randUpTo(n float64) float64 {
	if n < 1 {
		return 0
	}
	return float64(w.rng.Intn(int(n)))
}
