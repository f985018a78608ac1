package library

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultLibrary struct {
	Path string // database file, ./library.db when empty
	db   *sql.DB
}

func (l *DefaultLibrary) Init() error {
	path := l.Path
	if path == "" {
		path = "./library.db"
	}
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists songs
	  (
		  id text not null primary key,
		  title text,
		  audio text,
		  bpm real,
		  offset_ns integer
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	l.db = db
	return nil
}

func (l *DefaultLibrary) Deinit() {
	if nil != l.db {
		l.db.Close()
	}
}

func (l *DefaultLibrary) Add(song *Song) error {
	if song.Audio == "" {
		return fmt.Errorf("library: song has no audio source")
	}
	if song.BPM <= 0 {
		return fmt.Errorf("library: song bpm %v is not positive", song.BPM)
	}
	if song.ID == "" {
		song.ID = uuid.NewString()
	}
	_, err := l.db.Exec(
		"insert into songs(id, title, audio, bpm, offset_ns) values(?, ?, ?, ?, ?)",
		song.ID, song.Title, song.Audio, song.BPM, song.Offset.Nanoseconds(),
	)
	if nil != err {
		return fmt.Errorf("unable to add song: %w", err)
	}
	return nil
}

func (l *DefaultLibrary) Remove(id string) error {
	if _, err := l.db.Exec("delete from songs where id = ?", id); nil != err {
		return fmt.Errorf("unable to remove song: %w", err)
	}
	return nil
}

func (l *DefaultLibrary) Songs() ([]Song, error) {
	rows, err := l.db.Query("select id, title, audio, bpm, offset_ns from songs order by title")
	if nil != err {
		return nil, fmt.Errorf("unable to list songs: %w", err)
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var s Song
		var offset int64
		if err := rows.Scan(&s.ID, &s.Title, &s.Audio, &s.BPM, &offset); nil != err {
			return nil, err
		}
		s.Offset = time.Duration(offset)
		songs = append(songs, s)
	}
	return songs, rows.Err()
}
