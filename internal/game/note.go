package game

import (
	"time"
)

type Hand uint8

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	if h == HandLeft {
		return "left"
	}
	return "right"
}

type CutDirection uint8

const (
	CutAny CutDirection = iota
	CutUp
	CutDown
	CutLeft
	CutRight
)

// Vector returns the unit direction a cut must travel in, or the zero
// vector for CutAny.
func (d CutDirection) Vector() Vec3 {
	switch d {
	case CutUp:
		return Vec3{Y: 1}
	case CutDown:
		return Vec3{Y: -1}
	case CutLeft:
		return Vec3{X: -1}
	case CutRight:
		return Vec3{X: 1}
	}
	return Vec3{}
}

type Status uint8

const (
	StatusPending Status = iota
	StatusActive
	StatusHit
	StatusMissed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusHit:
		return "hit"
	case StatusMissed:
		return "missed"
	}
	return "unknown"
}

// Terminal reports whether the status may never change again.
func (s Status) Terminal() bool {
	return s == StatusHit || s == StatusMissed
}

type Note struct {
	ID    int           // Stable index into the chart arena
	Time  time.Duration // The time the note should reach the player plane
	Index uint8         // The column, 0-3, two per hand
	Layer uint8         // The vertical tier, 0-2

	Hand      Hand
	Direction CutDirection

	// This is state
	Status  Status
	HitTime time.Duration // When the note was cut, only set with StatusHit
}

// Travel returns the distance the note has covered from its spawn plane,
// a pure function of the clock so there is no per-frame drift.
func (n *Note) Travel(now time.Duration) float64 {
	return PlayerPlane - (n.Time-now).Seconds()*NoteSpeed
}

// Target is the world position a cut must land on right now.
func (n *Note) Target(now time.Duration) Vec3 {
	return Vec3{
		X: LaneX(n.Index),
		Y: LayerY(n.Layer),
		Z: n.Travel(now) - PlayerPlane,
	}
}

func LaneX(index uint8) float64 {
	return (float64(index) - 1.5) * LaneSpacing
}

func LayerY(layer uint8) float64 {
	return LayerBase + float64(layer)*LayerSpacing
}

// LaneHand maps a column to the hand that owns it, left {0,1}, right {2,3}.
func LaneHand(index uint8) Hand {
	if index < 2 {
		return HandLeft
	}
	return HandRight
}
