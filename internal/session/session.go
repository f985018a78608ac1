// Package session owns the game state machine and runs one simulation
// step per display frame. All mutation happens inside Tick, there is no
// concurrent writer.
package session

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/sabre/internal/audio"
	"git.lost.host/meutraa/sabre/internal/game"
	"git.lost.host/meutraa/sabre/internal/gesture"
	"git.lost.host/meutraa/sabre/internal/score"
	"git.lost.host/meutraa/sabre/internal/track"
)

type Controller struct {
	player  audio.Player
	notes   track.Manager
	matcher gesture.Matcher
	scorer  score.Scorer

	noFail bool
	phase  game.Phase
	state  game.State

	countdownLeft time.Duration

	hits, misses, maxCombo int
	good, ok               int
}

func NewController(player audio.Player, notes track.Manager, matcher gesture.Matcher, scorer score.Scorer, noFail bool) *Controller {
	return &Controller{
		player:  player,
		notes:   notes,
		matcher: matcher,
		scorer:  scorer,
		noFail:  noFail,
		state:   game.NewState(noFail),
	}
}

func (c *Controller) Phase() game.Phase { return c.phase }
func (c *Controller) State() game.State { return c.state }

func (c *Controller) CountdownRemaining() time.Duration { return c.countdownLeft }

// Counts breaks resolved notes down for the display layer.
func (c *Controller) Counts() (good, ok, miss int) {
	return c.good, c.ok, c.misses
}

// Result summarises the session for persistence.
func (c *Controller) Result() score.Play {
	return score.Play{
		Score:    c.state.Score,
		MaxCombo: c.maxCombo,
		Hits:     c.hits,
		Misses:   c.misses,
		NoFail:   c.noFail,
	}
}

// RequestStart begins the countdown. It is a no-op outside the idle
// phase or while the tracker sees no hands, duplicate UI events are
// tolerated by design.
func (c *Controller) RequestStart(trackerReady bool) {
	if c.phase != game.PhaseIdle || !trackerReady {
		return
	}
	c.state = game.NewState(c.noFail)
	c.hits, c.misses, c.maxCombo = 0, 0, 0
	c.good, c.ok = 0, 0
	c.notes.Reset()
	c.countdownLeft = game.CountdownDuration
	c.phase = game.PhaseCountdown
}

// RequestAcknowledge returns a finished session to the menu.
func (c *Controller) RequestAcknowledge() {
	if c.phase != game.PhaseVictory && c.phase != game.PhaseGameOver {
		return
	}
	c.phase = game.PhaseIdle
}

// Abort cancels the session as an explicit phase transition, never by
// tearing down mid-tick state.
func (c *Controller) Abort() {
	if c.phase == game.PhaseCountdown || c.phase == game.PhasePlaying {
		c.player.Pause()
		c.phase = game.PhaseIdle
	}
}

// Tick runs one simulation step. frameDelta is wall time since the last
// frame and only drives the countdown, gameplay uses the playback clock.
// A returned error from the countdown phase is recoverable, the
// controller has already reverted to idle.
func (c *Controller) Tick(frameDelta time.Duration, hands game.Hands) error {
	switch c.phase {
	case game.PhaseCountdown:
		c.countdownLeft -= frameDelta
		if c.countdownLeft > 0 {
			return nil
		}
		c.countdownLeft = 0
		if err := c.player.Start(); nil != err {
			c.phase = game.PhaseIdle
			return fmt.Errorf("unable to start playback: %w", err)
		}
		c.phase = game.PhasePlaying
		return nil

	case game.PhasePlaying:
		now := c.player.Now()
		c.notes.Spawn(now)

		// Collision runs before the miss sweep so a cut right on the
		// miss plane still counts
		for _, id := range c.notes.Active() {
			n := c.notes.Note(id)
			if n.Status != game.StatusActive {
				continue
			}
			quality := c.matcher.Evaluate(n, hands.For(n.Hand), now)
			if quality == gesture.NoMatch {
				continue
			}
			if err := c.notes.MarkHit(id, now); nil != err {
				return err
			}
			c.scorer.ApplyHit(&c.state, quality)
			c.hits++
			if quality == gesture.CutGood {
				c.good++
			} else {
				c.ok++
			}
			if c.state.Combo > c.maxCombo {
				c.maxCombo = c.state.Combo
			}
		}

		for range c.notes.SweepMisses(now) {
			c.misses++
			if c.scorer.ApplyMiss(&c.state) {
				c.player.Pause()
				c.phase = game.PhaseGameOver
				return nil
			}
		}

		if c.player.Ended() {
			c.phase = game.PhaseVictory
		}
	}
	return nil
}
