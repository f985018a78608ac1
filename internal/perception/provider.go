package perception

import "git.lost.host/meutraa/sabre/internal/game"

// Provider supplies the hand frames for the current tick. Sample is
// called exactly once at tick start by the owning loop, detection is
// best-effort and either hand may come back absent.
type Provider interface {
	Ready() bool
	Sample() game.Hands
}
