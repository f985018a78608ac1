package perception

import (
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

// pulseDuration keeps a synthetic cut alive for a few ticks so the
// collision band always sees it.
const pulseDuration = 120 * time.Millisecond

type pulse struct {
	frame game.HandFrame
	until time.Time
}

// KeySimulator fakes the tracker, one key per column, so the game is
// playable without a camera. Each press becomes a fast downward cut at
// the column's target. The host forwards presses from its key channel.
type KeySimulator struct {
	left  pulse
	right pulse
}

func (s *KeySimulator) Ready() bool { return true }

func (s *KeySimulator) Press(index uint8) {
	if index > 3 {
		return
	}
	p := pulse{
		frame: game.HandFrame{
			Position: game.Vec3{X: game.LaneX(index), Y: game.LayerY(0)},
			Velocity: game.Vec3{Y: -2 * game.MinCutSpeed},
			Present:  true,
		},
		until: time.Now().Add(pulseDuration),
	}
	if game.LaneHand(index) == game.HandLeft {
		s.left = p
	} else {
		s.right = p
	}
}

func (s *KeySimulator) Sample() game.Hands {
	now := time.Now()
	var hands game.Hands
	if s.left.until.After(now) {
		hands.Left = s.left.frame
	}
	if s.right.until.After(now) {
		hands.Right = s.right.frame
	}
	return hands
}
