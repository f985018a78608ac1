package gesture

import (
	"math"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

type DefaultMatcher struct{}

func (m *DefaultMatcher) Evaluate(n *game.Note, hand game.HandFrame, now time.Duration) Quality {
	// Only notes in the band straddling the player plane are considered,
	// so far-away notes never cost a distance computation.
	if math.Abs(n.Travel(now)-game.PlayerPlane) > game.CutWindow {
		return NoMatch
	}
	if !hand.Present {
		return NoMatch
	}
	if hand.Position.Sub(n.Target(now)).Length() > game.CutRadius {
		return NoMatch
	}

	fast := hand.Speed() >= game.MinCutSpeed
	if n.Direction == game.CutAny {
		if fast {
			return CutGood
		}
		return CutOk
	}
	if fast && hand.Velocity.Normalized().Dot(n.Direction.Vector()) >= game.DirectionDot {
		return CutGood
	}
	return CutOk
}
