package perception

import (
	"math"
	"testing"
	"time"
)

func TestTrackerDerivesVelocityFromDeltas(t *testing.T) {
	tr := DefaultTracker{}
	base := time.Now()
	tr.apply(&palmUpdate{Hand: "left", X: 0, Y: 1}, base)
	tr.apply(&palmUpdate{Hand: "left", X: 0.1, Y: 0.9}, base.Add(50*time.Millisecond))

	frame := tr.left.frame(base.Add(50 * time.Millisecond))
	if !frame.Present {
		t.Fatal("hand absent after two updates")
	}
	if math.Abs(frame.Velocity.X-2) > 1e-9 || math.Abs(frame.Velocity.Y+2) > 1e-9 {
		t.Fatal("velocity", frame.Velocity)
	}
}

func TestTrackerZeroDeltaKeepsVelocity(t *testing.T) {
	tr := DefaultTracker{}
	base := time.Now()
	tr.apply(&palmUpdate{Hand: "right", X: 0}, base)
	tr.apply(&palmUpdate{Hand: "right", X: 0.1}, base.Add(50*time.Millisecond))
	before := tr.right.velocity

	// Same timestamp again, the estimate must survive instead of
	// dividing by zero
	tr.apply(&palmUpdate{Hand: "right", X: 0.3}, base.Add(50*time.Millisecond))
	if tr.right.velocity != before {
		t.Fatal("velocity changed on zero delta", before, tr.right.velocity)
	}
}

func TestTrackerStaleHandGoesAbsent(t *testing.T) {
	tr := DefaultTracker{}
	base := time.Now()
	tr.apply(&palmUpdate{Hand: "left", X: 0.2}, base)

	if !tr.left.frame(base.Add(staleAfter)).Present {
		t.Fatal("hand absent inside the staleness window")
	}
	if tr.left.frame(base.Add(staleAfter + time.Millisecond)).Present {
		t.Fatal("stale hand still present")
	}
}

func TestTrackerIgnoresUnknownHand(t *testing.T) {
	tr := DefaultTracker{}
	tr.apply(&palmUpdate{Hand: "tentacle", X: 1}, time.Now())
	if tr.left.seen || tr.right.seen {
		t.Fatal("unknown hand label updated a palm")
	}
}
