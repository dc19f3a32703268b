package draw

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/termdraw/internal/region"
)

const (
	// Home, clear the whole screen and hide the cursor
	initScreen = "\033[H\033[2J\033[?25l"
	resetStyle = "\033[0m"
	showCursor = "\033[?25h"
)

// writeCursorPos moves to an absolute 0-indexed cell
func writeCursorPos(b *strings.Builder, x, y int) {
	b.WriteString("\033[")
	b.WriteString(strconv.FormatInt(int64(y+1), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(x+1), 10))
	b.WriteString("f")
}

// writeColumn moves to a 0-indexed column on the current row
func writeColumn(b *strings.Builder, x int) {
	b.WriteString("\033[")
	b.WriteString(strconv.FormatInt(int64(x+1), 10))
	b.WriteString("G")
}

func writeCursorForward(b *strings.Builder, n int) {
	b.WriteString("\033[")
	b.WriteString(strconv.FormatInt(int64(n), 10))
	b.WriteString("C")
}

// writeStyle emits one SGR sequence that resets and then asserts f
func writeStyle(b *strings.Builder, f region.Format) {
	b.WriteString("\033[0")
	if f.Bold {
		b.WriteString(";1")
	}
	if f.Reverse {
		b.WriteString(";7")
	}
	writeColour(b, f.Fg, 38)
	writeColour(b, f.Bg, 48)
	b.WriteString("m")
}

// writeColour appends the parameters of one channel, extended is 38 or 48.
// Indexed16 codes already name their channel and are passed through.
func writeColour(b *strings.Builder, c region.Colour, extended int) {
	switch {
	case c.IsDefault():
	case c.IsIndexed16():
		code, _ := c.Index()
		b.WriteString(";")
		b.WriteString(strconv.FormatInt(int64(code), 10))
	case c.IsIndexed256():
		i, _ := c.Index()
		b.WriteString(";")
		b.WriteString(strconv.FormatInt(int64(extended), 10))
		b.WriteString(";5;")
		b.WriteString(strconv.FormatInt(int64(i), 10))
	case c.IsRGB():
		r, g, bl, _ := c.RGBValues()
		b.WriteString(";")
		b.WriteString(strconv.FormatInt(int64(extended), 10))
		b.WriteString(";2;")
		b.WriteString(strconv.FormatInt(int64(r), 10))
		b.WriteString(";")
		b.WriteString(strconv.FormatInt(int64(g), 10))
		b.WriteString(";")
		b.WriteString(strconv.FormatInt(int64(bl), 10))
	default:
		// Region resolves UseExisting when a format is stored, so nothing
		// that went through a Cell can carry it here.
		panic("draw: UseExisting colour reached the encoder")
	}
}

// Style returns the SGR sequence that resets the terminal style and asserts f.
// It is meant for building preamble text. f must not contain UseExisting.
func Style(f region.Format) string {
	var b strings.Builder
	writeStyle(&b, f)
	return b.String()
}
