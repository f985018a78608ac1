package score

import (
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
	"git.lost.host/meutraa/sabre/internal/gesture"
)

type Scorer interface {
	Init() error
	Deinit()

	// ApplyHit awards points for a cut and returns the amount. The
	// multiplier reflects the streak before this hit's combo increment.
	ApplyHit(st *game.State, quality gesture.Quality) int64

	// ApplyMiss resets the combo and, outside no-fail mode, drains
	// health. It reports true exactly once, on the miss that empties it.
	ApplyMiss(st *game.State) bool

	// Save the state of this performance
	Save(play *Play) error

	// Load up previous performances for the song
	Load(songID string) ([]Play, error)
}

// Play is one finished session, as persisted.
type Play struct {
	ID       string
	SongID   string
	Score    int64
	MaxCombo int
	Hits     int
	Misses   int
	NoFail   bool
	At       time.Time
}

// Multiplier is a step function of the current combo.
func Multiplier(combo int) int64 {
	switch {
	case combo > 30:
		return 8
	case combo > 20:
		return 4
	case combo > 10:
		return 2
	}
	return 1
}
