package component

import (
	"errors"
	"image/color"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/citydash/common"
)

const (
	// particleGravity is added to vy every update.
	particleGravity = 0.1
	// jitterSteps and jitterScale give a spawn velocity jitter in [-1.0, 0.9].
	jitterSteps = 20
	jitterScale = 0.1
)

var ErrInvalidCapacity = errors.New("particles: capacity must be positive")

// Particle is a short-lived visual primitive.
type Particle struct {
	Pos         cp.Vector
	Vel         cp.Vector
	Lifetime    int
	MaxLifetime int
	Color       color.RGBA
	Size        int
}

// Fade returns the remaining life as a fraction in [0, 1], used as opacity.
func (p *Particle) Fade() float64 {
	if p.MaxLifetime <= 0 || p.Lifetime <= 0 {
		return 0
	}
	f := float64(p.Lifetime) / float64(p.MaxLifetime)
	if f > 1 {
		return 1
	}
	return f
}

// ParticleSystem is a fixed-capacity pool. Live particles always occupy
// particles[:count]; their order carries no meaning.
type ParticleSystem struct {
	particles []Particle
	count     int
	rng       *rand.Rand
}

// NewParticleSystem allocates a pool of the given capacity. A nil rng gets a
// fixed-seed source.
func NewParticleSystem(capacity int, rng *rand.Rand) (*ParticleSystem, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ParticleSystem{
		particles: make([]Particle, capacity),
		rng:       rng,
	}, nil
}

func (ps *ParticleSystem) Capacity() int { return len(ps.particles) }

func (ps *ParticleSystem) Count() int { return ps.count }

// Live returns the live particles. The slice aliases the pool and is only
// valid until the next Spawn or Update.
func (ps *ParticleSystem) Live() []Particle {
	return ps.particles[:ps.count]
}

// Reset drops every live particle.
func (ps *ParticleSystem) Reset() {
	ps.count = 0
}

// Spawn adds a particle with a small random velocity jitter. When the pool is
// full the particle is dropped and Spawn reports false.
func (ps *ParticleSystem) Spawn(pos cp.Vector, c color.RGBA, vel cp.Vector, lifetime, size int) bool {
	if ps.count >= len(ps.particles) {
		return false
	}
	ps.particles[ps.count] = Particle{
		Pos:         pos,
		Vel:         cp.Vector{X: vel.X + ps.jitter(), Y: vel.Y + ps.jitter()},
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
		Color:       c,
		Size:        size,
	}
	ps.count++
	return true
}

func (ps *ParticleSystem) jitter() float64 {
	return float64(ps.rng.Intn(jitterSteps)-jitterSteps/2) * jitterScale
}

// Update advances every live particle by dt seconds (normalized to 60fps
// steps) and removes the ones whose lifetime ran out.
func (ps *ParticleSystem) Update(dt float64) {
	scale := dt * common.FrameRate
	for i := 0; i < ps.count; {
		p := &ps.particles[i]
		p.Pos = p.Pos.Add(p.Vel.Mult(scale))
		p.Vel.Y += particleGravity
		p.Lifetime--

		if p.Lifetime <= 0 {
			// swap with the last live particle and re-examine slot i
			ps.count--
			ps.particles[i] = ps.particles[ps.count]
			continue
		}
		i++
	}
}

// each applies fn to every live particle in place.
func (ps *ParticleSystem) each(fn func(p *Particle)) {
	for i := 0; i < ps.count; i++ {
		fn(&ps.particles[i])
	}
}
