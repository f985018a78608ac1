package track

import (
	"testing"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

func testChart(times ...time.Duration) *game.Chart {
	notes := make([]game.Note, len(times))
	for i, at := range times {
		notes[i] = game.Note{ID: i, Time: at, Hand: game.LaneHand(uint8(i % 4)), Index: uint8(i % 4)}
	}
	return &game.Chart{Notes: notes}
}

func TestSpawnAdmitsAtLeadTime(t *testing.T) {
	m := NewDefaultManager(testChart(2 * time.Second))

	if ids := m.Spawn(2*time.Second - game.SpawnLead - time.Millisecond); len(ids) != 0 {
		t.Fatal("note admitted before lead time", ids)
	}
	ids := m.Spawn(2*time.Second - game.SpawnLead)
	if len(ids) != 1 || ids[0] != 0 {
		t.Fatal("note not admitted at lead time", ids)
	}
	if m.Note(0).Status != game.StatusActive {
		t.Fatal("admitted note not active", m.Note(0))
	}

	// The cursor never yields the same note twice
	if ids := m.Spawn(10 * time.Second); len(ids) != 0 {
		t.Fatal("note admitted twice", ids)
	}
}

func TestSpawnAdmitsContiguousPrefix(t *testing.T) {
	m := NewDefaultManager(testChart(time.Second, 2*time.Second, 3*time.Second, 40*time.Second))
	ids := m.Spawn(3 * time.Second)
	if len(ids) != 3 {
		t.Fatal("want first three notes admitted, got", ids)
	}
	if len(m.Active()) != 3 {
		t.Fatal("active set", m.Active())
	}
	if m.Note(3).Status != game.StatusPending {
		t.Fatal("far note admitted early")
	}
}

func TestSweepMarksLateNotesMissed(t *testing.T) {
	m := NewDefaultManager(testChart(2 * time.Second))
	m.Spawn(2 * time.Second)

	// Still inside the margin
	if missed := m.SweepMisses(2*time.Second + 100*time.Millisecond); len(missed) != 0 {
		t.Fatal("missed inside margin", missed)
	}
	missed := m.SweepMisses(2*time.Second + 200*time.Millisecond)
	if len(missed) != 1 || missed[0] != 0 {
		t.Fatal("want note 0 missed, got", missed)
	}
	if m.Note(0).Status != game.StatusMissed {
		t.Fatal("status after sweep", m.Note(0).Status)
	}
	if len(m.Active()) != 0 {
		t.Fatal("missed note kept active")
	}

	// A hand arriving one tick later must not resurrect the note
	if err := m.MarkHit(0, 2*time.Second+250*time.Millisecond); nil == err {
		t.Fatal("hit accepted after miss")
	}
	if m.Note(0).Status != game.StatusMissed {
		t.Fatal("terminal status changed", m.Note(0).Status)
	}
}

func TestMarkHitIsTerminal(t *testing.T) {
	m := NewDefaultManager(testChart(2 * time.Second))
	m.Spawn(2 * time.Second)

	if err := m.MarkHit(0, 1900*time.Millisecond); nil != err {
		t.Fatal("unable to hit active note", err)
	}
	n := m.Note(0)
	if n.Status != game.StatusHit || n.HitTime != 1900*time.Millisecond {
		t.Fatal("hit not recorded", n)
	}
	if err := m.MarkHit(0, 2*time.Second); nil == err {
		t.Fatal("double hit accepted")
	}

	// The sweep drops the resolved note without marking it missed
	if missed := m.SweepMisses(5 * time.Second); len(missed) != 0 {
		t.Fatal("hit note swept as miss", missed)
	}
	if n.Status != game.StatusHit {
		t.Fatal("terminal status changed", n.Status)
	}
	if !m.Exhausted() {
		t.Fatal("manager not exhausted after resolving everything")
	}
}

func TestMarkHitRejectsPendingNote(t *testing.T) {
	m := NewDefaultManager(testChart(20 * time.Second))
	if err := m.MarkHit(0, time.Second); nil == err {
		t.Fatal("hit accepted for unspawned note")
	}
}
