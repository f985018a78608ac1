package tempo

import (
	"math"
	"testing"
	"time"
)

// impulseTrain builds an onset signal with a click every period frames,
// starting at the given frame.
func impulseTrain(length, start, period int) []float64 {
	flux := make([]float64, length)
	for i := start; i < length; i += period {
		flux[i] = 1
	}
	return flux
}

func TestEstimateBPMFindsClickTrack(t *testing.T) {
	const frameRate = 86.0
	for _, test := range []struct {
		period int
		bpm    float64
	}{
		{43, 120}, // 0.5s apart
		{86, 60},  // 1.0s apart
		{26, 198.46},
	} {
		flux := impulseTrain(int(frameRate)*20, 0, test.period)
		bpm := estimateBPM(flux, frameRate)
		if math.Abs(bpm-test.bpm) > 1 {
			t.Log("period", test.period, "estimated", bpm, "want about", test.bpm)
			t.Fail()
		}
	}
}

func TestFirstOnsetFindsTheFirstClick(t *testing.T) {
	const frameRate = 86.0
	flux := impulseTrain(int(frameRate)*20, 30, 43)
	onset := firstOnset(flux, frameRate)
	seconds := 30.0 / frameRate
	expected := time.Duration(seconds * float64(time.Second))
	if d := onset - expected; d < -time.Millisecond || d > time.Millisecond {
		t.Fatal("onset", onset, "want", expected)
	}
}

func TestFirstOnsetFlatSignal(t *testing.T) {
	flux := make([]float64, 200)
	for i := range flux {
		flux[i] = 0.5
	}
	if onset := firstOnset(flux, 86.0); onset != 0 {
		t.Fatal("flat signal produced an onset at", onset)
	}
}

func TestAnalyzeRejectsMissingFile(t *testing.T) {
	a := DefaultAnalyzer{}
	if _, _, err := a.Analyze("./does-not-exist.mp3"); nil == err {
		t.Fatal("expected an error for a missing file")
	}
}
