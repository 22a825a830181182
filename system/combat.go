package system

import "github.com/milk9111/citydash/obj"

// ResolveHits tests the player's body against the enemy hitbox and every
// active car. Overlap uses exclusive edges. A hit costs one health point and
// opens the invulnerability window; while the window is open further contact
// is ignored. Reports whether health was lost this call.
func ResolveHits(player *obj.Player, enemy *obj.Enemy, cars []*obj.Car, now int64) bool {
	if player == nil || player.Health == nil {
		return false
	}
	if !player.Health.IsAlive() || player.Health.Invulnerable(now) {
		return false
	}

	body := player.Rect
	touching := enemy != nil && enemy.Hitbox().Intersects(body)
	for _, c := range cars {
		if touching {
			break
		}
		touching = c.Hits(body)
	}
	if !touching {
		return false
	}
	return player.Health.ApplyHit(now)
}
