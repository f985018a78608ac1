package game

import (
	"testing"
	"time"
)

func TestTravelIsPureInterpolation(t *testing.T) {
	n := Note{Time: 10 * time.Second}

	// At spawn lead the note sits on the spawn plane
	if d := n.Travel(10*time.Second - SpawnLead); d != 0 {
		t.Fatal("travel at spawn", d)
	}
	// On time it sits on the player plane
	if d := n.Travel(10 * time.Second); d != PlayerPlane {
		t.Fatal("travel on time", d)
	}
	// Half a second late it has overshot by half the speed
	if d := n.Travel(10*time.Second + 500*time.Millisecond); d != PlayerPlane+NoteSpeed/2 {
		t.Fatal("travel late", d)
	}
}

func TestLaneHandSplit(t *testing.T) {
	for index, expected := range []Hand{HandLeft, HandLeft, HandRight, HandRight} {
		if h := LaneHand(uint8(index)); h != expected {
			t.Fatal("column", index, "hand", h)
		}
	}
}

func TestDirectionVectorsAreUnit(t *testing.T) {
	for _, d := range []CutDirection{CutUp, CutDown, CutLeft, CutRight} {
		if l := d.Vector().Length(); l != 1 {
			t.Fatal("direction", d, "length", l)
		}
	}
	if v := CutAny.Vector(); v != (Vec3{}) {
		t.Fatal("any direction has a vector", v)
	}
}

func TestChartReset(t *testing.T) {
	c := Chart{Notes: []Note{
		{ID: 0, Time: time.Second, Status: StatusHit, HitTime: time.Second},
		{ID: 1, Time: 2 * time.Second, Status: StatusMissed},
	}}
	c.Reset()
	for _, n := range c.Notes {
		if n.Status != StatusPending || n.HitTime != 0 {
			t.Fatal("note not reset", n)
		}
	}
	if c.End() != 2*time.Second {
		t.Fatal("chart end", c.End())
	}
}
