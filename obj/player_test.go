package obj

import (
	"math/rand"
	"testing"
)

func newTestPlayer(t *testing.T, x, y, w, h float64) *Player {
	t.Helper()
	p, err := NewPlayer(x, y, w, h, DefaultPlayerTuning(), rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	cases := []struct {
		name   string
		height float64
	}{
		{"square", 32},
		{"tall", 64},
		{"odd", 45},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := floorGrid(t, 10, 5)
			p := newTestPlayer(t, 50, 0, 32, c.height)
			want := 32*4 - c.height

			for i := 0; i < 200; i++ {
				p.Update(Input{}, g)
			}
			for i := 0; i < 50; i++ {
				p.Update(Input{}, g)
				if p.Y != want || p.Y+p.Height != 128 {
					t.Fatalf("frame %d: y = %v, want %v", i, p.Y, want)
				}
				if p.VelocityY != 0 || !p.Grounded {
					t.Fatalf("frame %d: vy=%v grounded=%v", i, p.VelocityY, p.Grounded)
				}
			}
		})
	}
}

func TestPlayerDoesNotTunnelThroughThinFloor(t *testing.T) {
	// 1x40 column with a one-tile floor at row 30 and nothing below.
	cells := make([]bool, 40)
	cells[30] = true
	g, err := NewTileGrid(1, 40, 32, cells)
	if err != nil {
		t.Fatalf("NewTileGrid: %v", err)
	}
	p := newTestPlayer(t, 0, 0, 8, 8)
	p.VelocityY = 40 // faster than a tile per frame

	for i := 0; i < 100; i++ {
		p.Update(Input{}, g)
	}
	if p.Bottom() != 30*32 {
		t.Fatalf("player should rest on row 30, bottom=%v", p.Bottom())
	}
}

func TestPlayerHorizontalClamp(t *testing.T) {
	g := floorGrid(t, 10, 5)
	p := newTestPlayer(t, 5, 96, 32, 32)
	maxX := g.PixelWidth() - p.Width

	p.Update(Input{Left: true}, g)
	if p.X != 0 {
		t.Fatalf("left move should clamp to 0, got %v", p.X)
	}

	for i := 0; i < 40; i++ {
		p.Update(Input{Right: true}, g)
		if p.X < 0 || p.X > maxX {
			t.Fatalf("x=%v outside [0, %v]", p.X, maxX)
		}
	}
	if p.X != maxX {
		t.Fatalf("right move should clamp to %v, got %v", maxX, p.X)
	}

	for i := 0; i < 40; i++ {
		p.Update(Input{Left: true}, g)
		if p.X < 0 || p.X > maxX {
			t.Fatalf("x=%v outside [0, %v]", p.X, maxX)
		}
	}
	if p.X != 0 {
		t.Fatalf("expected to reach the left edge, got %v", p.X)
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	const w, h = 10, 5
	cells := make([]bool, w*h)
	for x := 0; x < w; x++ {
		cells[(h-1)*w+x] = true
	}
	for y := 0; y < h; y++ {
		cells[y*w+5] = true
	}
	g, err := NewTileGrid(w, h, 32, cells)
	if err != nil {
		t.Fatalf("NewTileGrid: %v", err)
	}
	p := newTestPlayer(t, 50, 96, 32, 32)

	for i := 0; i < 20; i++ {
		p.Update(Input{Right: true}, g)
		if p.Right() > 5*32 {
			t.Fatalf("player entered the wall: right edge %v", p.Right())
		}
	}
	if p.X != 125 {
		t.Fatalf("expected to stop at 125, got %v", p.X)
	}
}

func TestPlayerJump(t *testing.T) {
	g := floorGrid(t, 10, 5)
	p := newTestPlayer(t, 50, 96, 32, 32)
	p.Update(Input{}, g)
	if !p.Grounded {
		t.Fatalf("expected grounded before jumping")
	}

	p.Update(Input{Jump: true}, g)
	if p.Grounded || p.VelocityY != DefaultPlayerTuning().JumpForce {
		t.Fatalf("jump not applied: grounded=%v vy=%v", p.Grounded, p.VelocityY)
	}
	startY := p.Y
	p.Update(Input{Jump: true}, g)
	if p.Y >= startY {
		t.Fatalf("player should rise, y=%v start=%v", p.Y, startY)
	}
	if p.VelocityY >= 0 || p.Grounded {
		t.Fatalf("airborne jump input must be ignored: vy=%v", p.VelocityY)
	}
}

func TestPlayerLandingBurst(t *testing.T) {
	g := floorGrid(t, 10, 5)
	p := newTestPlayer(t, 50, 0, 32, 32)
	for i := 0; i < 200; i++ {
		p.Update(Input{}, g)
	}
	if got := p.Particles.Count(); got != DefaultPlayerTuning().LandingBurst {
		t.Fatalf("expected exactly one landing burst of %d, got %d", DefaultPlayerTuning().LandingBurst, got)
	}
}

func TestPlayerDust(t *testing.T) {
	g := floorGrid(t, 100, 5)
	p := newTestPlayer(t, 50, 96, 32, 32)
	p.Update(Input{}, g)
	before := p.Particles.Count()

	tuning := DefaultPlayerTuning()
	frames := tuning.DustInterval * 4
	for i := 0; i < frames; i++ {
		p.Update(Input{Right: true}, g)
	}
	if got := p.Particles.Count() - before; got != 4 {
		t.Fatalf("expected 4 dust puffs over %d frames, got %d", frames, got)
	}
	for _, part := range p.Particles.Live()[before:] {
		if part.Color != dustColor || part.Size < 2 || part.Size > 4 {
			t.Fatalf("unexpected dust particle %+v", part)
		}
	}
}

func TestPlayerFlashing(t *testing.T) {
	p := newTestPlayer(t, 0, 0, 32, 32)
	if p.Flashing(1000) {
		t.Fatalf("no flash without a hit")
	}
	p.Health.ApplyHit(1000)
	if !p.Flashing(1010) {
		t.Fatalf("expected tint in the first half of the period")
	}
	if p.Flashing(1060) {
		t.Fatalf("expected no tint in the second half of the period")
	}
	if p.Flashing(1510) {
		t.Fatalf("no flash once the window closed")
	}
}
