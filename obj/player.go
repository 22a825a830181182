package obj

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/component"
)

var (
	dustColor   = color.RGBA{R: 180, G: 160, B: 140, A: 255}
	impactColor = color.RGBA{R: 220, G: 220, B: 255, A: 255}
)

const (
	dustLifetime   = 30
	impactLifetime = 40
	impactSize     = 3
	// flashPeriodMs is the on/off cycle of the hit tint.
	flashPeriodMs = 100
)

// PlayerTuning holds the movement constants, in pixels and pixels/frame.
type PlayerTuning struct {
	Gravity           float64
	JumpForce         float64
	MoveSpeed         float64
	MaxHealth         int
	InvulnerabilityMs int64
	ParticleCapacity  int
	DustInterval      int
	LandingBurst      int
}

func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Gravity:           0.73,
		JumpForce:         -20,
		MoveSpeed:         15,
		MaxHealth:         3,
		InvulnerabilityMs: component.DefaultInvulnerabilityMs,
		ParticleCapacity:  1000,
		DustInterval:      3,
		LandingBurst:      15,
	}
}

type Player struct {
	common.Rect
	VelocityY float64
	Grounded  bool

	Health    *component.Health
	Particles *component.ParticleSystem

	tuning      PlayerTuning
	wasGrounded bool
	frames      int
	rng         *rand.Rand
}

func NewPlayer(x, y, width, height float64, tuning PlayerTuning, rng *rand.Rand) (*Player, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("player: invalid size %vx%v", width, height)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	ps, err := component.NewParticleSystem(tuning.ParticleCapacity, rng)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	health := component.NewHealth(tuning.MaxHealth)
	health.Window = tuning.InvulnerabilityMs

	return &Player{
		Rect:        common.Rect{X: x, Y: y, Width: width, Height: height},
		Health:      health,
		Particles:   ps,
		tuning:      tuning,
		wasGrounded: true,
		rng:         rng,
	}, nil
}

// Update runs one physics frame. The steps run in a fixed order because each
// reads the position the previous one resolved.
func (p *Player) Update(in Input, grid *TileGrid) {
	p.frames++

	prevBottom := p.Bottom()
	p.VelocityY += p.tuning.Gravity
	p.Y += p.VelocityY
	p.resolveGround(grid, prevBottom)

	p.move(in, grid)

	if in.Jump && p.Grounded {
		p.VelocityY = p.tuning.JumpForce
		p.Grounded = false
	}

	p.emitEffects(in)
	p.wasGrounded = p.Grounded
}

// resolveGround snaps the feet to the top of the first solid tile under the
// center column. While falling every row between the old and new foot
// position is checked so a fast fall cannot pass through a thin floor.
func (p *Player) resolveGround(grid *TileGrid, prevBottom float64) {
	ts := grid.TileSize()
	col := common.TileIndex(p.X+p.Width/2, ts)
	last := common.TileIndex(p.Bottom(), ts)
	first := last
	if p.VelocityY > 0 {
		first = common.TileIndex(prevBottom, ts)
	}

	for row := first; row <= last; row++ {
		if grid.IsSolid(col, row) {
			p.Y = grid.TileTop(row) - p.Height
			p.VelocityY = 0
			p.Grounded = true
			return
		}
	}
	p.Grounded = false
}

func (p *Player) move(in Input, grid *TileGrid) {
	maxX := math.Max(0, grid.PixelWidth()-p.Width)

	if in.Left {
		newX := math.Max(0, p.X-p.tuning.MoveSpeed)
		if newX < p.X && p.columnFree(grid, newX) {
			p.X = newX
		}
	}
	if in.Right {
		newX := math.Min(maxX, p.X+p.tuning.MoveSpeed)
		if newX > p.X && p.columnFree(grid, newX+p.Width-1) {
			p.X = newX
		}
	}
}

// columnFree checks the leading edge at both the top and the bottom of the
// body so the player cannot slip through a diagonal gap.
func (p *Player) columnFree(grid *TileGrid, wx float64) bool {
	return !grid.CheckCollision(wx, p.Y) && !grid.CheckCollision(wx, p.Bottom()-1)
}

func (p *Player) emitEffects(in Input) {
	footX := p.X + p.Width/2

	if p.Grounded && in.Moving() && p.tuning.DustInterval > 0 && p.frames%p.tuning.DustInterval == 0 {
		vx := 0.5
		if in.Left {
			vx = -0.5
		}
		p.Particles.Spawn(
			cp.Vector{X: footX, Y: p.Bottom() - 5},
			dustColor,
			cp.Vector{X: vx},
			dustLifetime,
			2+p.rng.Intn(3),
		)
	}

	if p.Grounded && !p.wasGrounded {
		for i := 0; i < p.tuning.LandingBurst; i++ {
			vel := cp.Vector{
				X: float64(p.rng.Intn(10)-5) * 0.3,
				Y: -float64(p.rng.Intn(5)) * 0.5,
			}
			p.Particles.Spawn(cp.Vector{X: footX, Y: p.Bottom()}, impactColor, vel, impactLifetime, impactSize)
		}
	}
}

// Flashing reports whether the hit tint is on at now. It blinks while the
// invulnerability window is open.
func (p *Player) Flashing(now int64) bool {
	return p.Health.Invulnerable(now) && now%flashPeriodMs < flashPeriodMs/2
}
