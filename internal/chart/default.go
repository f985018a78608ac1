package chart

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

const (
	leadInBeats   = 4
	beatStep      = 2
	patternPeriod = 16 // beats per pattern window
)

type DefaultGenerator struct{}

// laneFor picks one of the hand's two permitted columns.
func laneFor(hand game.Hand, rng *rand.Rand) uint8 {
	base := uint8(0)
	if hand == game.HandRight {
		base = 2
	}
	return base + uint8(rng.Intn(2))
}

func (g *DefaultGenerator) Generate(bpm float64, offset, duration time.Duration, rng *rand.Rand) (*game.Chart, error) {
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
		return nil, fmt.Errorf("chart: bpm %v is not a positive number", bpm)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("chart: duration %v is not positive", duration)
	}

	interval := time.Duration(float64(time.Minute) / bpm)
	totalBeats := int(math.Ceil(duration.Seconds() / 60.0 * bpm))

	notes := []game.Note{}
	add := func(t time.Duration, index, layer uint8, dir game.CutDirection) {
		notes = append(notes, game.Note{
			Time:      t,
			Index:     index,
			Layer:     layer,
			Hand:      game.LaneHand(index),
			Direction: dir,
		})
	}

	for beat := leadInBeats; beat < totalBeats; beat += beatStep {
		// The offset shifts the whole chart before sorting, so latency
		// compensation can not reorder anything.
		t := offset + time.Duration(beat)*interval

		switch (beat / patternPeriod) % 3 {
		case 0:
			// Distributed singles, hand alternating on beat-group parity
			hand := game.HandLeft
			if (beat/beatStep)%2 == 1 {
				hand = game.HandRight
			}
			add(t, laneFor(hand, rng), 0, game.CutAny)
		case 1:
			// Wide doubles on the outermost columns, sparse on purpose
			if beat%8 == 0 {
				add(t, 0, 1, game.CutDown)
				add(t, 3, 1, game.CutDown)
			}
		case 2:
			// Streams, the right note trails by one beat interval
			add(t, laneFor(game.HandLeft, rng), 0, game.CutAny)
			add(t+interval, laneFor(game.HandRight, rng), 0, game.CutAny)
		}
	}

	// The streams pattern interleaves a note one interval late, so the
	// sequence is not ordered until sorted here.
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	for i := range notes {
		notes[i].ID = i
	}

	return &game.Chart{Notes: notes}, nil
}
