package system

import (
	"testing"

	"github.com/milk9111/citydash/common"
	"github.com/milk9111/citydash/obj"
)

func newTestPlayer(t *testing.T, x, y float64) *obj.Player {
	t.Helper()
	p, err := obj.NewPlayer(x, y, 32, 32, obj.DefaultPlayerTuning(), nil)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestResolveHitsEdgeTouchingIsNotAHit(t *testing.T) {
	p := newTestPlayer(t, 0, 0)
	car := &obj.Car{Box: common.Rect{X: 32, Y: 0, Width: 32, Height: 32}, Active: true}
	if ResolveHits(p, nil, []*obj.Car{car}, 1000) {
		t.Fatalf("rectangles sharing an edge must not collide")
	}
	if p.Health.Current != 3 {
		t.Fatalf("health changed: %d", p.Health.Current)
	}
}

func TestResolveHitsInvulnerabilityWindow(t *testing.T) {
	p := newTestPlayer(t, 0, 0)
	car := &obj.Car{Box: common.Rect{X: 10, Y: 10, Width: 80, Height: 80}, Active: true}
	cars := []*obj.Car{car}

	steps := []struct {
		now        int64
		wantHit    bool
		wantHealth int
	}{
		{1000, true, 2},
		{1016, false, 2},
		{1250, false, 2},
		{1499, false, 2},
		{1500, true, 1},
		{1700, false, 1},
		{2000, true, 0},
		{2600, false, 0},
	}
	for _, s := range steps {
		got := ResolveHits(p, nil, cars, s.now)
		if got != s.wantHit || p.Health.Current != s.wantHealth {
			t.Fatalf("t=%d: hit=%v health=%d, want hit=%v health=%d",
				s.now, got, p.Health.Current, s.wantHit, s.wantHealth)
		}
	}
}

func TestResolveHitsTargets(t *testing.T) {
	cases := []struct {
		name  string
		enemy *obj.Enemy
		car   *obj.Car
		want  bool
	}{
		{"nothing", nil, nil, false},
		{"enemy_hitbox", obj.NewEnemy(20, 20, obj.DefaultEnemyTuning()), nil, true},
		// The body overlaps but the 5x5 hitbox does not.
		{"enemy_body_only", obj.NewEnemy(45, 20, obj.DefaultEnemyTuning()), nil, false},
		{"active_car", nil, &obj.Car{Box: common.Rect{X: 20, Y: 20, Width: 80, Height: 80}, Active: true}, true},
		{"inactive_car", nil, &obj.Car{Box: common.Rect{X: 20, Y: 20, Width: 80, Height: 80}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(t, 0, 0)
			var cars []*obj.Car
			if c.car != nil {
				cars = append(cars, c.car)
			}
			if got := ResolveHits(p, c.enemy, cars, 1000); got != c.want {
				t.Fatalf("ResolveHits = %v, want %v", got, c.want)
			}
		})
	}
}
