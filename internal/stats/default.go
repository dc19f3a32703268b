package stats

import (
	"database/sql"
	"encoding/json"
	"time"

	"git.lost.host/meutraa/termdraw/internal/draw"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultRecorder struct {
	db     *sql.DB
	frames []draw.Stats
}

// FramesCompact stores a session column by column, which keeps the JSON
// small for long runs.
type FramesCompact struct {
	Cells  []int
	Moves  []int
	Styles []int
	Bytes  []int
}

func compactFrames(frames []draw.Stats) FramesCompact {
	fc := FramesCompact{
		Cells:  make([]int, len(frames)),
		Moves:  make([]int, len(frames)),
		Styles: make([]int, len(frames)),
		Bytes:  make([]int, len(frames)),
	}
	for i, f := range frames {
		fc.Cells[i] = f.Cells
		fc.Moves[i] = f.Moves
		fc.Styles[i] = f.Styles
		fc.Bytes[i] = f.Bytes
	}
	return fc
}

func uncompactFrames(fc FramesCompact) []draw.Stats {
	n := len(fc.Cells)
	if len(fc.Moves) < n {
		n = len(fc.Moves)
	}
	if len(fc.Styles) < n {
		n = len(fc.Styles)
	}
	if len(fc.Bytes) < n {
		n = len(fc.Bytes)
	}
	frames := make([]draw.Stats, n)
	for i := range frames {
		frames[i] = draw.Stats{
			Cells:  fc.Cells[i],
			Moves:  fc.Moves[i],
			Styles: fc.Styles[i],
			Bytes:  fc.Bytes[i],
		}
	}
	return frames
}

func (s *DefaultRecorder) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}
	// A single connection, so an in-memory database is shared by every query
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists sessions
	  (
		  id integer not null primary key,
		  scene text,
		  width integer,
		  height integer,
		  started integer,
		  frames bytearray
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultRecorder) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultRecorder) Record(stats draw.Stats) {
	s.frames = append(s.frames, stats)
}

func (s *DefaultRecorder) Save(session Session) error {
	data, err := json.Marshal(compactFrames(s.frames))
	if nil != err {
		return err
	}
	_, err = s.db.Exec(
		"insert into sessions(scene, width, height, started, frames) values(?, ?, ?, ?, ?)",
		session.Scene, session.Width, session.Height, session.Started.UnixNano(), data,
	)
	if nil != err {
		return err
	}
	s.frames = nil
	return nil
}

func (s *DefaultRecorder) Load(scene string) ([]History, error) {
	histories := []History{}
	rows, err := s.db.Query("select scene, width, height, started, frames from sessions where scene = ? order by id", scene)
	if nil != err {
		return histories, err
	}
	defer rows.Close()
	for rows.Next() {
		var h History
		var started int64
		var data []byte
		if err := rows.Scan(&h.Scene, &h.Width, &h.Height, &started, &data); nil != err {
			return histories, err
		}
		var fc FramesCompact
		if err := json.Unmarshal(data, &fc); nil != err {
			return histories, err
		}
		h.Started = time.Unix(0, started)
		h.Frames = uncompactFrames(fc)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}
