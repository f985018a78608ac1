package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory     = kingpin.Arg("directory", "Song directory with an .mp3/.ogg, plays the library when omitted").ExistingDir()
	BPM           = kingpin.Flag("bpm", "Manual tempo").Default("120").Short('b').Float64()
	Offset        = kingpin.Flag("offset", "Chart offset").Default("0ms").Short('o').Duration()
	Analyze       = kingpin.Flag("analyze", "Estimate bpm/offset from the audio").Short('a').Bool()
	NoFail        = kingpin.Flag("no-fail", "Disable health loss, scoring still applies").Bool()
	Seed          = kingpin.Flag("seed", "Chart random seed, 0 seeds from the clock").Int64()
	Keys          = kingpin.Flag("keys", "Simulator keys, one per column").Default("zx,.").Short('k').String()
	TrackerAddr   = kingpin.Flag("tracker", "Hand tracker websocket listen address, empty uses the key simulator").String()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("8ms").Short('p').Duration()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	BarRow        = kingpin.Flag("bar-row", "Console rows between hit bar and bottom").Default("4").Uint()
	LibraryPath   = kingpin.Flag("library", "Song library database").Default("./library.db").String()
	ScoresPath    = kingpin.Flag("scores", "Score history database").Default("./scores.db").String()
	AddSong       = kingpin.Flag("add", "Add the directory's song to the library under this title, then exit").String()
)

func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}

// KeyColumn maps a pressed rune to its column, or -1.
func KeyColumn(r rune) int {
	for i, c := range []rune(*Keys) {
		if r == c {
			return i
		}
	}
	return -1
}
