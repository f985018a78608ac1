package game

import "time"

const (
	// World geometry, metres. Notes spawn at 0 and travel to the player
	// plane; the tracker reports palm positions in the same space.
	PlayerPlane  = 12.0
	NoteSpeed    = 8.0 // metres per second
	SpawnLead    = time.Duration(float64(time.Second) * PlayerPlane / NoteSpeed)
	MissMargin   = 1.0 // metres past the player plane before a miss
	CutWindow    = 1.2 // half-width of the collision band around the plane
	CutRadius    = 0.45
	LaneSpacing  = 0.4
	LayerBase    = 0.9
	LayerSpacing = 0.35

	// Cut quality
	MinCutSpeed  = 1.0 // metres per second
	DirectionDot = 0.3

	// Scoring
	ScoreBase    = 100
	ScoreGood    = 50
	HealthMax    = 100.0
	HealthPerHit = 2.0
	MissPenalty  = 15.0

	CountdownDuration = 3 * time.Second
)
