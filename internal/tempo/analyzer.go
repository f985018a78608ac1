package tempo

import "time"

// Analyzer suggests chart parameters for a track. It is an optional
// collaborator, callers fall back to manual values when it fails.
type Analyzer interface {
	Analyze(file string) (bpm float64, offset time.Duration, err error)
}
