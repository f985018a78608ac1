package track

import (
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

// Manager owns the spawn cursor and the set of admitted, unresolved notes.
type Manager interface {
	// Spawn admits every pending note whose lead time has arrived and
	// returns their ids. The cursor only ever moves forward.
	Spawn(now time.Duration) []int

	// Active returns the ids of admitted notes that are not yet resolved,
	// in chart order. The slice is only valid until the next tick.
	Active() []int

	Note(id int) *game.Note

	// MarkHit resolves a note as cut. Resolving a note twice is an
	// invariant violation and is rejected.
	MarkHit(id int, now time.Duration) error

	// SweepMisses resolves every active note that has passed the miss
	// plane and compacts the active set. Runs after collision checks so
	// boundary cuts win.
	SweepMisses(now time.Duration) []int

	// Exhausted reports whether every note in the chart is resolved.
	Exhausted() bool

	// Reset rewinds the cursor and clears all note state for a replay.
	Reset()
}
