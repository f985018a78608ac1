package tempo

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"path"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/mjibson/go-dsp/fft"
)

const (
	windowSize = 1024
	hopSize    = 512

	// Only the head of the track is analyzed, tempo rarely changes and
	// decoding a whole album track would stall song selection
	analyzeLimit = 60 * time.Second

	minBPM = 60.0
	maxBPM = 200.0
)

// DefaultAnalyzer estimates tempo from spectral flux onsets and the lag
// that best autocorrelates them, and the chart offset from the first
// strong onset.
type DefaultAnalyzer struct{}

func (a *DefaultAnalyzer) Analyze(file string) (float64, time.Duration, error) {
	f, err := os.Open(file)
	if nil != err {
		return 0, 0, fmt.Errorf("unable to open audio file: %w", err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch path.Ext(file) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return 0, 0, fmt.Errorf("unsupported audio format %q", path.Ext(file))
	}
	if nil != err {
		f.Close()
		return 0, 0, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	defer streamer.Close()

	mono := decodeMono(streamer, format.SampleRate.N(analyzeLimit))
	flux := spectralFlux(mono)
	frameRate := float64(format.SampleRate) / hopSize
	if len(flux) < int(2*frameRate) {
		return 0, 0, fmt.Errorf("track too short to analyze (%d onset frames)", len(flux))
	}

	return estimateBPM(flux, frameRate), firstOnset(flux, frameRate), nil
}

func decodeMono(streamer beep.Streamer, limit int) []float64 {
	mono := make([]float64, 0, limit)
	buf := make([][2]float64, hopSize)
	for len(mono) < limit {
		n, ok := streamer.Stream(buf)
		for _, s := range buf[:n] {
			mono = append(mono, (s[0]+s[1])/2)
		}
		if !ok {
			break
		}
	}
	return mono
}

// spectralFlux is the per-hop sum of positive magnitude change across
// the spectrum, a cheap but serviceable onset signal.
func spectralFlux(mono []float64) []float64 {
	if len(mono) < windowSize {
		return nil
	}
	var flux []float64
	prev := make([]float64, windowSize/2)
	window := make([]float64, windowSize)
	for start := 0; start+windowSize <= len(mono); start += hopSize {
		for i := range window {
			// Hann window keeps block edges from smearing the spectrum
			w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(windowSize-1))
			window[i] = mono[start+i] * w
		}
		spectrum := fft.FFTReal(window)

		sum := 0.0
		for i := 0; i < windowSize/2; i++ {
			mag := cmplx.Abs(spectrum[i])
			if d := mag - prev[i]; d > 0 {
				sum += d
			}
			prev[i] = mag
		}
		flux = append(flux, sum)
	}
	return flux
}

// estimateBPM scans candidate beat lags and keeps the one whose
// autocorrelation of the onset signal is strongest.
func estimateBPM(flux []float64, frameRate float64) float64 {
	minLag := int(math.Round(60 / maxBPM * frameRate))
	maxLag := int(math.Round(60 / minBPM * frameRate))
	if maxLag >= len(flux) {
		maxLag = len(flux) - 1
	}

	bestLag, bestScore := minLag, -1.0
	for lag := minLag; lag <= maxLag; lag++ {
		sum := 0.0
		for i := 0; i+lag < len(flux); i++ {
			sum += flux[i] * flux[i+lag]
		}
		score := sum / float64(len(flux)-lag)
		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}
	return 60 * frameRate / float64(bestLag)
}

// firstOnset is the time of the first onset clearly above the noise
// floor, which is where the chart's first beat should land.
func firstOnset(flux []float64, frameRate float64) time.Duration {
	mean := 0.0
	for _, f := range flux {
		mean += f
	}
	mean /= float64(len(flux))
	variance := 0.0
	for _, f := range flux {
		d := f - mean
		variance += d * d
	}
	stdev := math.Sqrt(variance / float64(len(flux)))

	threshold := mean + 2*stdev
	for i, f := range flux {
		if f > threshold {
			return time.Duration(float64(i) / frameRate * float64(time.Second))
		}
	}
	return 0
}
