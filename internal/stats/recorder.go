package stats

import (
	"time"

	"git.lost.host/meutraa/termdraw/internal/draw"
)

// Recorder keeps the per frame output statistics of a session.
type Recorder interface {
	Init(path string) error
	Deinit()

	// Record adds the statistics of one frame to the current session
	Record(s draw.Stats)

	// Save stores the frames recorded so far and starts a new session
	Save(session Session) error

	// Load returns the stored sessions of a scene, oldest first
	Load(scene string) ([]History, error)
}

type Session struct {
	Scene         string
	Width, Height int
	Started       time.Time
}

type History struct {
	Session
	Frames []draw.Stats
}

type Summary struct {
	Frames   int
	Cells    int
	Moves    int
	Styles   int
	Bytes    int
	MaxBytes int
}

// BytesPerFrame is the mean output size, 0 for an empty session.
func (s Summary) BytesPerFrame() float64 {
	if s.Frames == 0 {
		return 0
	}
	return float64(s.Bytes) / float64(s.Frames)
}

func Summarise(frames []draw.Stats) Summary {
	var s Summary
	for _, f := range frames {
		s.Frames++
		s.Cells += f.Cells
		s.Moves += f.Moves
		s.Styles += f.Styles
		s.Bytes += f.Bytes
		if f.Bytes > s.MaxBytes {
			s.MaxBytes = f.Bytes
		}
	}
	return s
}
