package obj

// Input is the per-tick snapshot of the logical keys. It is read-only for the
// simulation.
type Input struct {
	Left  bool
	Right bool
	Jump  bool

	// Weather selection, edge-triggered by the poller.
	Rain         bool
	Snow         bool
	ClearWeather bool
}

// Moving reports whether a horizontal key is held.
func (in Input) Moving() bool {
	return in.Left || in.Right
}
