package score

import (
	"database/sql"
	"fmt"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
	"git.lost.host/meutraa/sabre/internal/gesture"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	Path string // database file, ./scores.db when empty
	db   *sql.DB
}

func (s *DefaultScorer) Init() error {
	path := s.Path
	if path == "" {
		path = "./scores.db"
	}
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists plays
	  (
		  id text not null primary key,
		  song text,
		  score integer,
		  max_combo integer,
		  hits integer,
		  misses integer,
		  no_fail integer,
		  at timestamp
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) ApplyHit(st *game.State, quality gesture.Quality) int64 {
	points := int64(game.ScoreBase)
	if quality == gesture.CutGood {
		points += game.ScoreGood
	}
	// The multiplier is read before the increment, a cut that starts a
	// new tier pays out at the old one
	awarded := points * Multiplier(st.Combo)
	st.Score += awarded
	st.Combo++
	st.Health += game.HealthPerHit
	if st.Health > game.HealthMax {
		st.Health = game.HealthMax
	}
	return awarded
}

func (s *DefaultScorer) ApplyMiss(st *game.State) bool {
	st.Combo = 0
	if st.NoFail {
		return false
	}
	alive := st.Health > 0
	st.Health -= game.MissPenalty
	if st.Health < 0 {
		st.Health = 0
	}
	return alive && st.Health == 0
}

func (s *DefaultScorer) Save(play *Play) error {
	if nil == s.db {
		return fmt.Errorf("scorer not initialised")
	}
	if play.ID == "" {
		play.ID = uuid.NewString()
	}
	if play.At.IsZero() {
		play.At = time.Now()
	}
	_, err := s.db.Exec(
		"insert into plays(id, song, score, max_combo, hits, misses, no_fail, at) values(?, ?, ?, ?, ?, ?, ?, ?)",
		play.ID, play.SongID, play.Score, play.MaxCombo, play.Hits, play.Misses, play.NoFail, play.At,
	)
	if nil != err {
		return fmt.Errorf("unable to save play: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(songID string) ([]Play, error) {
	if nil == s.db {
		return nil, fmt.Errorf("scorer not initialised")
	}
	rows, err := s.db.Query(
		"select id, song, score, max_combo, hits, misses, no_fail, at from plays where song = ? order by score desc",
		songID,
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load plays: %w", err)
	}
	defer rows.Close()

	plays := []Play{}
	for rows.Next() {
		var p Play
		if err := rows.Scan(&p.ID, &p.SongID, &p.Score, &p.MaxCombo, &p.Hits, &p.Misses, &p.NoFail, &p.At); nil != err {
			return nil, err
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}
