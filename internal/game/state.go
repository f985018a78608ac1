package game

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseVictory
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// State is the mutable session tally, owned by the session controller and
// passed explicitly through every scoring call.
type State struct {
	Score  int64
	Combo  int
	Health float64
	NoFail bool // set before the session starts, immutable after
}

// NewState returns the tally for a fresh session.
func NewState(noFail bool) State {
	return State{Health: HealthMax, NoFail: noFail}
}
