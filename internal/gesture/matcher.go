package gesture

import (
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

type Quality uint8

const (
	NoMatch Quality = iota
	CutOk
	CutGood
)

func (q Quality) String() string {
	switch q {
	case CutOk:
		return "ok"
	case CutGood:
		return "good"
	}
	return "none"
}

// Matcher decides whether the frame of the hand a note belongs to cuts it
// this tick. Callers pass the frame for note.Hand, an absent frame can
// never match.
type Matcher interface {
	Evaluate(n *game.Note, hand game.HandFrame, now time.Duration) Quality
}
