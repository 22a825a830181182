package common

import (
	"fmt"
	"time"
)

// Clock reports monotonic time in milliseconds.
type Clock interface {
	Now() int64
}

type wallClock struct {
	start time.Time
}

// NewWallClock returns a clock that counts milliseconds since its creation.
func NewWallClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to.
type ManualClock struct {
	Ms int64
}

func (c *ManualClock) Now() int64 { return c.Ms }

func (c *ManualClock) Advance(ms int64) { c.Ms += ms }

// FormatElapsed renders seconds as mm:ss. Minutes keep growing past 99.
func FormatElapsed(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
