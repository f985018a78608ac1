package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"git.lost.host/meutraa/sabre/internal/audio"
	"git.lost.host/meutraa/sabre/internal/chart"
	"git.lost.host/meutraa/sabre/internal/config"
	"git.lost.host/meutraa/sabre/internal/gesture"
	"git.lost.host/meutraa/sabre/internal/library"
	"git.lost.host/meutraa/sabre/internal/perception"
	"git.lost.host/meutraa/sabre/internal/render"
	"git.lost.host/meutraa/sabre/internal/score"
	"git.lost.host/meutraa/sabre/internal/session"
	"git.lost.host/meutraa/sabre/internal/tempo"
	"git.lost.host/meutraa/sabre/internal/theme"
	"git.lost.host/meutraa/sabre/internal/track"
	"github.com/eiannone/keyboard"
)

func main() {
	config.Parse()
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// findAudio walks a song directory for the first playable track
func findAudio(dir string) (string, error) {
	var audioFile string
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg":
			audioFile = p
		}
		return nil
	}); nil != err {
		return "", fmt.Errorf("unable to walk song directory: %w", err)
	}
	if audioFile == "" {
		return "", errors.New("unable to find an .mp3/.ogg file in given directory")
	}
	return audioFile, nil
}

// resolveSong picks the track to play, either the given directory or a
// library entry selected by number.
func resolveSong(lib library.Library, keyChannel <-chan keyboard.KeyEvent) (*library.Song, error) {
	if *config.Directory != "" {
		audioFile, err := findAudio(*config.Directory)
		if nil != err {
			return nil, err
		}
		return &library.Song{
			Title:  path.Base(*config.Directory),
			Audio:  audioFile,
			BPM:    *config.BPM,
			Offset: *config.Offset,
		}, nil
	}

	songs, err := lib.Songs()
	if nil != err {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, errors.New("the library is empty, pass a song directory or --add one")
	}
	for i, s := range songs {
		fmt.Printf("%2v) %6.1f bpm  %v\n", i, s.BPM, s.Title)
	}
	key := <-keyChannel
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index > int64(len(songs)-1) {
		return nil, fmt.Errorf("not a song index: %q", key.Rune)
	}
	return &songs[index], nil
}

func run() error {
	lib := &library.DefaultLibrary{Path: *config.LibraryPath}
	if err := lib.Init(); nil != err {
		return err
	}
	defer lib.Deinit()

	if *config.AddSong != "" {
		if *config.Directory == "" {
			return errors.New("--add needs a song directory")
		}
		audioFile, err := findAudio(*config.Directory)
		if nil != err {
			return err
		}
		song := library.Song{
			Title:  *config.AddSong,
			Audio:  audioFile,
			BPM:    *config.BPM,
			Offset: *config.Offset,
		}
		if *config.Analyze {
			analyzer := tempo.DefaultAnalyzer{}
			if bpm, offset, err := analyzer.Analyze(audioFile); nil == err {
				song.BPM, song.Offset = bpm, offset
			} else {
				log.Println("tempo analysis failed, keeping manual values:", err)
			}
		}
		if err := lib.Add(&song); nil != err {
			return err
		}
		fmt.Printf("added %v (%v, %.1f bpm)\n", song.Title, song.ID, song.BPM)
		return nil
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}()

	song, err := resolveSong(lib, keyChannel)
	if nil != err {
		return err
	}

	bpm, offset := song.BPM, song.Offset
	if *config.Analyze && *config.Directory != "" {
		// Analysis only suggests parameters, its failure never blocks play
		analyzer := tempo.DefaultAnalyzer{}
		if b, o, err := analyzer.Analyze(song.Audio); nil == err {
			bpm, offset = b, o
			log.Printf("analyzed %v: %.1f bpm, offset %v\n", song.Audio, bpm, offset)
		} else {
			log.Println("tempo analysis failed, keeping manual values:", err)
		}
	}

	player, err := audio.NewDefaultPlayer(song.Audio)
	if nil != err {
		return err
	}
	defer player.Close()

	seed := *config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator := chart.DefaultGenerator{}
	c, err := generator.Generate(bpm, offset, player.Length(), rand.New(rand.NewSource(seed)))
	if nil != err {
		return err
	}

	scorer := &score.DefaultScorer{Path: *config.ScoresPath}
	if err := scorer.Init(); nil != err {
		return err
	}
	defer scorer.Deinit()

	var provider perception.Provider
	var sim *perception.KeySimulator
	if *config.TrackerAddr != "" {
		tracker := &perception.DefaultTracker{}
		go func() {
			if err := tracker.Listen(*config.TrackerAddr); nil != err {
				log.Println("tracker stopped:", err)
			}
		}()
		provider = tracker
	} else {
		sim = &perception.KeySimulator{}
		provider = sim
	}

	controller := session.NewController(
		player,
		track.NewDefaultManager(c),
		&gesture.DefaultMatcher{},
		scorer,
		*config.NoFail,
	)

	program := &Program{
		Renderer: &render.DefaultRenderer{},
		Theme:    &theme.DefaultTheme{},
		Session:  controller,
		Provider: provider,
		Sim:      sim,
		Scorer:   scorer,
		Player:   player,
		Chart:    c,
		Song:     song,
		Keys:     keyChannel,
	}
	return program.Run()
}
