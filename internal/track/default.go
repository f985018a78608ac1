package track

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

type DefaultManager struct {
	chart  *game.Chart
	cursor int   // first note not yet admitted
	active []int // admitted, unresolved note ids in chart order
}

func NewDefaultManager(chart *game.Chart) *DefaultManager {
	return &DefaultManager{
		chart:  chart,
		active: make([]int, 0, 64),
	}
}

func (m *DefaultManager) Note(id int) *game.Note {
	return &m.chart.Notes[id]
}

func (m *DefaultManager) Active() []int {
	return m.active
}

func (m *DefaultManager) Spawn(now time.Duration) []int {
	first := len(m.active)
	// The chart is time ordered, so admission is a contiguous prefix and
	// the scan stops at the first note that is still too far out.
	for m.cursor < m.chart.Len() {
		n := &m.chart.Notes[m.cursor]
		if n.Time-game.SpawnLead > now {
			break
		}
		n.Status = game.StatusActive
		m.active = append(m.active, m.cursor)
		m.cursor++
	}
	return m.active[first:]
}

func (m *DefaultManager) MarkHit(id int, now time.Duration) error {
	n := &m.chart.Notes[id]
	if n.Status != game.StatusActive {
		return fmt.Errorf("track: note %d is %v, refusing to hit it", id, n.Status)
	}
	n.Status = game.StatusHit
	n.HitTime = now
	return nil
}

func (m *DefaultManager) SweepMisses(now time.Duration) []int {
	var missed []int
	kept := m.active[:0]
	for _, id := range m.active {
		n := &m.chart.Notes[id]
		switch {
		case n.Status != game.StatusActive:
			// resolved earlier this tick, drop from the set
		case n.Travel(now) > game.PlayerPlane+game.MissMargin:
			n.Status = game.StatusMissed
			missed = append(missed, id)
		default:
			kept = append(kept, id)
		}
	}
	m.active = kept
	return missed
}

func (m *DefaultManager) Exhausted() bool {
	return m.cursor >= m.chart.Len() && len(m.active) == 0
}

func (m *DefaultManager) Reset() {
	m.chart.Reset()
	m.cursor = 0
	m.active = m.active[:0]
}
