package chart

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
)

type Generator interface {
	Generate(bpm float64, offset, duration time.Duration, rng *rand.Rand) (*game.Chart, error)
}
