package chart

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

func generate(t *testing.T, bpm float64, offset, duration time.Duration, seed int64) *game.Chart {
	t.Helper()
	g := DefaultGenerator{}
	c, err := g.Generate(bpm, offset, duration, rand.New(rand.NewSource(seed)))
	if nil != err {
		t.Fatal("unable to generate chart", err)
	}
	return c
}

func TestGenerateSorted(t *testing.T) {
	for _, bpm := range []float64{60, 93.7, 120, 174, 240} {
		c := generate(t, bpm, 0, 90*time.Second, 1)
		for i := 1; i < len(c.Notes); i++ {
			if c.Notes[i].Time < c.Notes[i-1].Time {
				t.Log("bpm", bpm, "note", i, c.Notes[i].Time, "<", c.Notes[i-1].Time)
				t.Fail()
			}
		}
	}
}

func TestGenerateLeadIn(t *testing.T) {
	c := generate(t, 120, 0, 60*time.Second, 2)
	if len(c.Notes) == 0 {
		t.Fatal("empty chart")
	}
	if c.Notes[0].Time != 2*time.Second {
		t.Fatal("first note at", c.Notes[0].Time, "want 2s")
	}
	for _, n := range c.Notes {
		if n.Time < 2*time.Second {
			t.Log("note before lead-in", n)
			t.Fail()
		}
		// One beat of stream tail may straddle the end
		if n.Time > 60*time.Second+500*time.Millisecond {
			t.Log("note past track end", n)
			t.Fail()
		}
	}
}

func TestGenerateIDsAreArenaIndices(t *testing.T) {
	c := generate(t, 120, 0, 60*time.Second, 3)
	for i, n := range c.Notes {
		if n.ID != i {
			t.Fatal("note", i, "has id", n.ID)
		}
		if n.Status != game.StatusPending {
			t.Fatal("fresh note not pending", n)
		}
	}
}

func TestGenerateLanesMatchHands(t *testing.T) {
	c := generate(t, 150, 0, 2*time.Minute, 4)
	for _, n := range c.Notes {
		if n.Hand == game.HandLeft && n.Index > 1 {
			t.Log("left note on right column", n)
			t.Fail()
		}
		if n.Hand == game.HandRight && n.Index < 2 {
			t.Log("right note on left column", n)
			t.Fail()
		}
		if n.Layer > 2 {
			t.Log("layer out of range", n)
			t.Fail()
		}
	}
}

func TestGenerateOffsetShiftsUniformly(t *testing.T) {
	const seed = 7
	base := generate(t, 135, 0, 90*time.Second, seed)
	for _, offset := range []time.Duration{-250 * time.Millisecond, 40 * time.Millisecond, 3 * time.Second} {
		shifted := generate(t, 135, offset, 90*time.Second, seed)
		if len(shifted.Notes) != len(base.Notes) {
			t.Fatal("note count changed with offset", len(shifted.Notes), len(base.Notes))
		}
		for i := range base.Notes {
			p, q := base.Notes[i], shifted.Notes[i]
			if q.Time != p.Time+offset {
				t.Log("offset", offset, "note", i, q.Time, "want", p.Time+offset)
				t.Fail()
			}
			if q.Index != p.Index || q.Layer != p.Layer || q.Direction != p.Direction {
				t.Log("offset changed more than time", p, q)
				t.Fail()
			}
		}
	}
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	g := DefaultGenerator{}
	rng := rand.New(rand.NewSource(1))
	for _, test := range []struct {
		bpm      float64
		duration time.Duration
	}{
		{0, time.Minute},
		{-120, time.Minute},
		{math.NaN(), time.Minute},
		{math.Inf(1), time.Minute},
		{120, 0},
		{120, -time.Second},
	} {
		if _, err := g.Generate(test.bpm, 0, test.duration, rng); nil == err {
			t.Log("expected error for", test)
			t.Fail()
		}
	}
}

func TestGenerateDoublesArePaired(t *testing.T) {
	// The second pattern window (beats 16-31) emits doubles on beats 16 and 24
	c := generate(t, 120, 0, 16*time.Second, 5)
	interval := 500 * time.Millisecond
	for _, beat := range []int{16, 24} {
		at := time.Duration(beat) * interval
		var left, right *game.Note
		for i := range c.Notes {
			n := &c.Notes[i]
			if n.Time != at {
				continue
			}
			if n.Hand == game.HandLeft {
				left = n
			} else {
				right = n
			}
		}
		if left == nil || right == nil {
			t.Fatal("missing double at beat", beat)
		}
		if left.Index != 0 || right.Index != 3 {
			t.Fatal("double not on outermost columns", left, right)
		}
		if left.Layer != 1 || right.Layer != 1 {
			t.Fatal("double not on middle layer", left, right)
		}
	}
}
