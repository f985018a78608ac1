package audio

import "time"

// TimeSource is the authoritative playback clock, polled once per tick.
// Now never goes backwards, but it may legitimately not advance between
// two consecutive polls.
type TimeSource interface {
	Now() time.Duration
	Ended() bool
}

type Player interface {
	TimeSource

	// Start may fail, for example when the output device can not be
	// opened. Callers must treat that as recoverable.
	Start() error
	Pause()
	Resume()
	Close() error
}
