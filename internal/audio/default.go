package audio

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

// DefaultPlayer plays one track through the speaker and reports elapsed
// time from the decoder's sample position, so the game clock can not
// drift from what is actually audible.
type DefaultPlayer struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	last     time.Duration
	started  bool
}

func NewDefaultPlayer(file string) (*DefaultPlayer, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, fmt.Errorf("unable to open audio file: %w", err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch path.Ext(file) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", path.Ext(file))
	}
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}

	return &DefaultPlayer{
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: streamer},
	}, nil
}

func (p *DefaultPlayer) Start() error {
	if p.started {
		return nil
	}
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to start playback: %w", err)
	}
	speaker.Play(p.ctrl)
	p.started = true
	return nil
}

func (p *DefaultPlayer) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

func (p *DefaultPlayer) Resume() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

func (p *DefaultPlayer) Now() time.Duration {
	if !p.started {
		return p.last
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	d := p.format.SampleRate.D(pos)
	// Seeking noise in the decoder must never move the game clock back
	if d < p.last {
		return p.last
	}
	p.last = d
	return d
}

func (p *DefaultPlayer) Ended() bool {
	if !p.started {
		return false
	}
	speaker.Lock()
	pos, length := p.streamer.Position(), p.streamer.Len()
	speaker.Unlock()
	return pos >= length
}

// Length is the decoded track duration, used as the chart duration when
// none is given explicitly.
func (p *DefaultPlayer) Length() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *DefaultPlayer) Close() error {
	return p.streamer.Close()
}
