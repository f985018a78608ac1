package audio

import "time"

// ManualClock is a TimeSource driven by hand, for deterministic tests.
type ManualClock struct {
	T    time.Duration
	Done bool
}

func (c *ManualClock) Now() time.Duration { return c.T }
func (c *ManualClock) Ended() bool        { return c.Done }

func (c *ManualClock) Advance(d time.Duration) { c.T += d }
