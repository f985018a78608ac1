package library

import "time"

// Song is one user-added track. Every entry is an equally valid chart
// input, the core does not special-case any of them.
type Song struct {
	ID     string
	Title  string
	Audio  string // path to the audio file
	BPM    float64
	Offset time.Duration
}

type Library interface {
	Init() error
	Deinit()

	Add(song *Song) error
	Remove(id string) error
	Songs() ([]Song, error)
}
