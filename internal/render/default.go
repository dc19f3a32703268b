package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"git.lost.host/meutraa/termdraw/internal/draw"
	"git.lost.host/meutraa/termdraw/internal/region"
	"git.lost.host/meutraa/termdraw/internal/stats"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out      *os.File
	Draw     *draw.Draw
	Recorder stats.Recorder // optional

	restoreState *term.State
	active       bool
}

// Size returns the dimensions of the terminal behind f.
func Size(f *os.File) (width, height int, err error) {
	width, height, err = term.GetSize(int(f.Fd()))
	if nil != err {
		return 0, 0, fmt.Errorf("unable to get terminal size: %w", err)
	}
	return width, height, nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Init puts the output terminal in raw mode. The Draw clears the screen and
// hides the cursor with its first frame.
func (r *DefaultRenderer) Init() error {
	if !isTerminal(r.Out) {
		return errors.New("output is not a terminal")
	}
	state, err := term.MakeRaw(int(r.Out.Fd()))
	if nil != err {
		return fmt.Errorf("unable to enter raw mode: %w", err)
	}
	r.restoreState = state
	r.active = true
	return nil
}

// Deinit shows the cursor at the bottom of the screen and restores the
// terminal mode saved by Init. Calls after the first do nothing.
func (r *DefaultRenderer) Deinit() error {
	if !r.active {
		return nil
	}
	r.active = false
	_, werr := io.WriteString(r.Out, r.Draw.Cleanup())
	if err := term.Restore(int(r.Out.Fd()), r.restoreState); nil != err {
		return fmt.Errorf("unable to restore terminal: %w", err)
	}
	return werr
}

func (r *DefaultRenderer) Frame(reg *region.Region) error {
	out := r.Draw.Apply(reg)
	if nil != r.Recorder {
		r.Recorder.Record(r.Draw.Stats())
	}
	if out == "" {
		return nil
	}
	// One write per frame keeps partial frames off the screen
	_, err := io.WriteString(r.Out, out)
	return err
}

// RenderLoop draws a frame every period until frame or wait returns false.
// wait is given the deadline of the next frame and should block until then,
// returning early only to redraw sooner.
func (r *DefaultRenderer) RenderLoop(
	period time.Duration,
	frame func(now time.Time) (*region.Region, bool),
	wait func(deadline time.Time) bool,
) error {
	deadline := time.Now()
	for {
		reg, cont := frame(time.Now())
		if !cont {
			return nil
		}
		if err := r.Frame(reg); nil != err {
			return err
		}

		// Frames are paced from the previous deadline, not from when the
		// frame finished, unless the loop has fallen behind.
		now := time.Now()
		deadline = deadline.Add(period)
		if deadline.Before(now) {
			deadline = now
		}

		if !wait(deadline) {
			return nil
		}
	}
}
