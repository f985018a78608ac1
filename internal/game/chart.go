package game

import "time"

// Chart is the time-ordered note arena for one track. Note.ID is the
// index into Notes and never changes, so terminal status updates stay O(1)
// without aliasing live pointers around.
type Chart struct {
	Notes []Note
}

func (c *Chart) Len() int {
	return len(c.Notes)
}

// End is the target time of the last note, or zero for an empty chart.
func (c *Chart) End() time.Duration {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}

// Reset clears all per-session note state so a chart can be replayed.
func (c *Chart) Reset() {
	for i := range c.Notes {
		c.Notes[i].Status = StatusPending
		c.Notes[i].HitTime = 0
	}
}
