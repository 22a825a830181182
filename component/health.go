package component

// DefaultInvulnerabilityMs is the post-hit window during which further hits
// are ignored.
const DefaultInvulnerabilityMs = 500

// Health tracks hit points and a timed invulnerability window.
type Health struct {
	Max     int
	Current int

	// IsHit is true while the invulnerability window is open.
	IsHit  bool
	HitAt  int64
	Window int64

	OnDamage func(h *Health)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max, Window: DefaultInvulnerabilityMs}
}

// IsAlive reports whether any hit points remain.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Tick closes the invulnerability window once Window ms passed since the hit,
// whether or not contact ended.
func (h *Health) Tick(now int64) {
	if h == nil || !h.IsHit {
		return
	}
	if now-h.HitAt >= h.Window {
		h.IsHit = false
	}
}

// Invulnerable reports whether a hit at now would be ignored.
func (h *Health) Invulnerable(now int64) bool {
	return h != nil && h.IsHit && now-h.HitAt < h.Window
}

// ApplyHit removes one hit point and opens the window. Returns false when the
// hit was absorbed by an open window or the entity is already dead.
func (h *Health) ApplyHit(now int64) bool {
	if h == nil || h.Current <= 0 {
		return false
	}
	h.Tick(now)
	if h.IsHit {
		return false
	}
	h.Current--
	h.IsHit = true
	h.HitAt = now
	if h.OnDamage != nil {
		h.OnDamage(h)
	}
	if h.Current <= 0 && h.OnDeath != nil {
		h.OnDeath(h)
	}
	return true
}
