package obj

import "math/rand"

// Shake is a short horizontal camera jitter that decays on its own.
type Shake struct {
	Remaining float64

	Duration  float64
	Decay     float64
	Amplitude int
}

func NewShake(duration, decay float64, amplitude int) Shake {
	return Shake{Duration: duration, Decay: decay, Amplitude: amplitude}
}

// Trigger restarts the shake at full duration.
func (s *Shake) Trigger() {
	s.Remaining = s.Duration
}

func (s *Shake) Active() bool {
	return s.Remaining > 0
}

// Step returns this frame's horizontal offset in [-Amplitude, Amplitude) and
// decays the shake. It returns 0 once the shake ran out.
func (s *Shake) Step(rng *rand.Rand) float64 {
	if s.Remaining <= 0 {
		return 0
	}
	s.Remaining -= s.Decay
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	if s.Amplitude <= 0 {
		return 0
	}
	return float64(rng.Intn(2*s.Amplitude) - s.Amplitude)
}
