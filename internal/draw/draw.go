// Package draw turns a desired region into the escape sequences that bring a
// terminal from its last drawn state to that region.
//
// The terminal is never queried. Draw keeps its own copy of what it believes
// is on the screen and only ever synchronises in one direction, so the cached
// region must always equal what the returned output produces on a real
// terminal.
package draw

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/termdraw/internal/region"
)

// Stats counts the work done by the last call to Apply.
type Stats struct {
	Cells  int // characters written
	Moves  int // cursor positioning sequences
	Styles int // style sequences, including the initial reset
	Bytes  int // length of the returned output
}

type Draw struct {
	screen     *region.Region // what the terminal shows
	preamble   []string
	started    bool
	lineGlitch bool
	refresh    bool
	stats      Stats
}

// New returns a Draw for a terminal of the given size. The size is fixed; a
// resized terminal needs a new Draw.
func New(width, height int) *Draw {
	return &Draw{
		screen:     region.New(width, height),
		lineGlitch: true,
	}
}

func (d *Draw) Width() int  { return d.screen.Width() }
func (d *Draw) Height() int { return d.screen.Height() }

// SetLineGlitch records whether the terminal has the VT100 line glitch (xenl).
// Without it the bottom-right cell is never written, since doing so would
// wrap and scroll the whole display.
func (d *Draw) SetLineGlitch(lineGlitch bool) {
	d.lineGlitch = lineGlitch
}

func (d *Draw) LineGlitch() bool {
	return d.lineGlitch
}

// QueuePreamble appends s to the text emitted ahead of the first frame.
func (d *Draw) QueuePreamble(s string) {
	d.preamble = append(d.preamble, s)
}

// Refresh makes the next Apply rewrite every cell regardless of the cache.
func (d *Draw) Refresh() {
	d.refresh = true
}

func (d *Draw) Stats() Stats {
	return d.stats
}

// Apply returns the output that turns the screen into r and updates the
// cache to match. r must have the dimensions the Draw was created with;
// cells outside r are treated as default cells. No I/O is performed.
func (d *Draw) Apply(r *region.Region) string {
	height := d.screen.Height()
	width := d.screen.Width()

	var out strings.Builder
	stats := Stats{}

	if !d.started {
		out.WriteString(initScreen)
		for _, p := range d.preamble {
			out.WriteString(p)
		}
		d.preamble = nil
		d.started = true
	}

	refresh := d.refresh
	d.refresh = false

	def := region.DefaultCell()

	// contig is set while the previous column of this row was just written,
	// leaving the cursor where the next character goes
	contig := false
	redo := false
	var lastFormat *region.Format
	lastRow, lastCol := -1, -1

	for y := 0; y < height; y++ {
		x := 0
		for x < width {
			if !d.lineGlitch && y == height-1 && x == width-1 {
				break
			}

			oc := d.screen.CellAt(x, y)
			nc, ok := r.Cell(x, y)
			if !ok {
				nc = def
			}

			if !redo && !refresh && *oc == nc {
				contig = false
				x += oc.Width()
				continue
			}
			redo = false

			if !contig {
				if lastRow == y {
					if lastCol >= 0 {
						skip := x - lastCol - 1
						if skip == 1 {
							// Rewriting the one skipped cell is shorter
							// than any movement sequence.
							redo = true
							contig = true
							x--
							continue
						}
						writeCursorForward(&out, skip)
					} else {
						writeColumn(&out, x)
					}
				} else {
					writeCursorPos(&out, x, y)
				}
				stats.Moves++
			}

			if nil == lastFormat {
				lastFormat = &region.Format{}
				out.WriteString(resetStyle)
				stats.Styles++
			}

			if f := nc.Format(); *lastFormat != f {
				writeStyle(&out, f)
				*lastFormat = f
				stats.Styles++
			}

			out.WriteRune(nc.Content())
			x += nc.Width()
			stats.Cells++

			contig = true
			lastRow = y
			lastCol = x - 1

			oc.SetFrom(nc)
		}
	}

	stats.Bytes = out.Len()
	d.stats = stats
	return out.String()
}

// Cleanup returns the sequence that leaves the cursor visible at the bottom
// left of the screen, where the shell prompt should appear. The Draw must not
// be used afterwards.
func (d *Draw) Cleanup() string {
	return "\033[" + strconv.FormatInt(int64(d.Height()), 10) + ";1f" + showCursor
}
