package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"git.lost.host/meutraa/sabre/internal/audio"
	"git.lost.host/meutraa/sabre/internal/config"
	"git.lost.host/meutraa/sabre/internal/game"
	"git.lost.host/meutraa/sabre/internal/library"
	"git.lost.host/meutraa/sabre/internal/perception"
	"git.lost.host/meutraa/sabre/internal/render"
	"git.lost.host/meutraa/sabre/internal/score"
	"git.lost.host/meutraa/sabre/internal/session"
	"git.lost.host/meutraa/sabre/internal/theme"
	"github.com/eiannone/keyboard"
	"golang.org/x/term"
)

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Session  *session.Controller
	Provider perception.Provider
	Sim      *perception.KeySimulator // nil when a real tracker feeds us
	Scorer   score.Scorer
	Player   audio.Player
	Chart    *game.Chart
	Song     *library.Song
	Keys     <-chan keyboard.KeyEvent

	rows, cols int
	cis        [4]int // column screen positions
	hitRow     int
	sideCol    int

	noteRows  []int // last rendered row per note, for clearing
	prevState []game.Status
	prevPhase game.Phase
	saved     bool
}

func (p *Program) layout() error {
	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	p.rows, p.cols = rows, columns

	mc := columns >> 1
	spacing := int(*config.ColumnSpacing)
	p.cis = [4]int{
		mc - spacing*3,
		mc - spacing,
		mc + spacing,
		mc + spacing*3,
	}
	p.hitRow = rows - int(*config.BarRow)
	p.sideCol = p.cis[0] - 30
	if p.sideCol < 2 {
		p.sideCol = 2
	}
	return nil
}

func (p *Program) Run() error {
	if err := p.layout(); nil != err {
		return err
	}
	p.noteRows = make([]int, p.Chart.Len())
	p.prevState = make([]game.Status, p.Chart.Len())
	for i := range p.noteRows {
		p.noteRows[i] = -1
	}

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer func() {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	p.Renderer.RenderLoop(func(now time.Time, frameDelta time.Duration) bool {
		if !p.handleKeys() {
			return false
		}

		hands := p.Provider.Sample()
		if err := p.Session.Tick(frameDelta, hands); nil != err {
			// Either a recoverable start failure or a broken invariant,
			// show it and stay in the menu
			p.Renderer.Fill(2, 2, fmt.Sprintf("%v", err))
		}

		p.renderField()
		p.renderStats()
		p.persistResult()
		return true
	})
	return nil
}

// handleKeys drains the presses that occured so far, false stops the loop
func (p *Program) handleKeys() bool {
	for i := 0; i < len(p.Keys); i++ {
		key := <-p.Keys
		switch {
		case key.Key == keyboard.KeyEsc:
			p.Session.Abort()
			return false
		case key.Key == keyboard.KeyEnter:
			p.Session.RequestStart(p.Provider.Ready())
		case key.Rune == 'r':
			p.Session.RequestAcknowledge()
		default:
			if index := config.KeyColumn(key.Rune); index >= 0 && nil != p.Sim {
				p.Sim.Press(uint8(index))
			}
		}
	}
	return true
}

func (p *Program) rowFor(n *game.Note, now time.Duration) int {
	// Rows per metre of remaining travel, the top of the field is spawn
	scale := float64(p.hitRow-2) / game.PlayerPlane
	remaining := game.PlayerPlane - n.Travel(now)
	return p.hitRow - int(math.Round(remaining*scale))
}

func (p *Program) renderField() {
	for i := uint8(0); i < 4; i++ {
		p.Renderer.Fill(p.hitRow, p.cis[i], p.Theme.RenderHitField(i))
	}

	now := p.Player.Now()
	for i := range p.Chart.Notes {
		n := &p.Chart.Notes[i]
		col := p.cis[n.Index]

		// Flash resolutions once, on the frame the status changed
		if n.Status != p.prevState[i] {
			switch n.Status {
			case game.StatusHit:
				p.Renderer.AddDecoration(col, p.hitRow, "\033[1;32m✦\033[0m", 12)
			case game.StatusMissed:
				p.Renderer.AddDecoration(col, p.hitRow, "\033[1;31m⨯\033[0m", 24)
			}
			p.prevState[i] = n.Status
		}

		if row := p.noteRows[i]; row >= 0 {
			p.Renderer.Fill(row, col, " ")
			p.noteRows[i] = -1
		}
		if n.Status != game.StatusActive {
			continue
		}
		row := p.rowFor(n, now)
		if row > 0 && row < p.hitRow {
			p.Renderer.Fill(row, col, p.Theme.RenderNote(n.Index, n.Layer))
			p.noteRows[i] = row
		}
	}
}

func (p *Program) renderStats() {
	st := p.Session.State()
	good, ok, miss := p.Session.Counts()

	p.Renderer.Fill(4, p.sideCol, fmt.Sprintf("      Song:  %v", p.Song.Title))
	p.Renderer.Fill(6, p.sideCol, fmt.Sprintf("     Score:  %8v", st.Score))
	p.Renderer.Fill(7, p.sideCol, fmt.Sprintf("     Combo:  %8v", st.Combo))
	p.Renderer.Fill(8, p.sideCol, fmt.Sprintf("Multiplier:  %7vx", score.Multiplier(st.Combo)))
	p.Renderer.FillColor(9, p.sideCol, p.Theme.HealthColor(st.Health), fmt.Sprintf("    Health:  %8.0f", st.Health))
	p.Renderer.Fill(11, p.sideCol, fmt.Sprintf("%v:  %8v", p.Theme.GoodLabel(), good))
	p.Renderer.Fill(12, p.sideCol, fmt.Sprintf("%v:  %8v", p.Theme.OkLabel(), ok))
	p.Renderer.Fill(13, p.sideCol, fmt.Sprintf("%v:  %8v", p.Theme.MissLabel(), miss))

	switch p.Session.Phase() {
	case game.PhaseIdle:
		p.Renderer.Fill(p.rows>>1, p.cis[1], "press enter to play")
	case game.PhaseCountdown:
		remaining := p.Session.CountdownRemaining().Seconds()
		p.Renderer.Fill(p.rows>>1, p.cis[1]+int(*config.ColumnSpacing), fmt.Sprintf("%d", int(math.Ceil(remaining))))
	case game.PhaseVictory:
		p.Renderer.Fill(p.rows>>1, p.cis[1], "track clear!  r to replay")
	case game.PhaseGameOver:
		p.Renderer.Fill(p.rows>>1, p.cis[1], "game over     r to retry")
	}
}

// persistResult saves the play once, on the frame the session finished
func (p *Program) persistResult() {
	phase := p.Session.Phase()
	if p.prevPhase == game.PhasePlaying && (phase == game.PhaseVictory || phase == game.PhaseGameOver) && !p.saved {
		play := p.Session.Result()
		play.SongID = p.Song.ID
		if err := p.Scorer.Save(&play); nil != err {
			log.Println("unable to save play:", err)
		}
		p.saved = true
	}
	if phase == game.PhaseCountdown {
		p.saved = false
	}
	p.prevPhase = phase
}
