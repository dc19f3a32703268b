// Package region holds the desired contents of one frame: a fixed size grid
// of styled cells. It knows nothing about terminals or escape sequences.
package region

type Point struct {
	X, Y int
}

type Region struct {
	width, height int
	rows          [][]Cell
	cursor        *Point
}

func New(width, height int) *Region {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([][]Cell, height)
	for y := range rows {
		row := make([]Cell, width)
		for x := range row {
			row[x] = DefaultCell()
		}
		rows[y] = row
	}
	return &Region{width: width, height: height, rows: rows}
}

func (r *Region) Width() int  { return r.width }
func (r *Region) Height() int { return r.height }

func (r *Region) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.width && y < r.height
}

// Cell returns a copy of the cell at (x, y). Out of range it returns
// DefaultCell and false.
func (r *Region) Cell(x, y int) (Cell, bool) {
	if nil == r || !r.inside(x, y) {
		return DefaultCell(), false
	}
	return r.rows[y][x], true
}

// CellAt returns the cell at (x, y) for modification, or nil when out of range.
func (r *Region) CellAt(x, y int) *Cell {
	if nil == r || !r.inside(x, y) {
		return nil
	}
	return &r.rows[y][x]
}

// SetChar writes ch in the default style and returns the width written.
// Writes off the edge of the region are dropped and return 0.
func (r *Region) SetChar(x, y int, ch rune) int {
	c := r.CellAt(x, y)
	if nil == c {
		return 0
	}
	c.Reset()
	return c.SetContent(ch)
}

// SetCharStyled writes ch with the format f and returns the width written.
func (r *Region) SetCharStyled(x, y int, ch rune, f Format) int {
	c := r.CellAt(x, y)
	if nil == c {
		return 0
	}
	c.SetFormat(f)
	return c.SetContent(ch)
}

// DrawString writes s left to right from (x, y) in the default style without
// wrapping. It returns the number of columns written.
func (r *Region) DrawString(x, y int, s string) int {
	return r.drawString(x, s, func(x int, ch rune) int {
		return r.SetChar(x, y, ch)
	})
}

func (r *Region) DrawStringStyled(x, y int, s string, f Format) int {
	return r.drawString(x, s, func(x int, ch rune) int {
		return r.SetCharStyled(x, y, ch, f)
	})
}

func (r *Region) drawString(x int, s string, set func(x int, ch rune) int) int {
	written := 0
	for _, ch := range s {
		if x >= r.width {
			break
		}
		w := set(x, ch)
		if w == 0 {
			// Clipped on the left, the character still takes its column
			w = 1
		} else {
			written += w
		}
		x += w
	}
	return written
}

// FillRect paints the clipped rectangle with ch in the format f.
func (r *Region) FillRect(x, y, w, h int, ch rune, f Format) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.SetCharStyled(col, row, ch, f)
		}
	}
}

// Clear resets every cell to the default cell.
func (r *Region) Clear() {
	for y := range r.rows {
		for x := range r.rows[y] {
			r.rows[y][x].Clear()
		}
	}
}

// Cursor returns the logical cursor stored by the caller, if any.
func (r *Region) Cursor() (Point, bool) {
	if nil == r.cursor {
		return Point{}, false
	}
	return *r.cursor, true
}

// SetCursor stores p, or forgets the cursor when p is nil. The region never
// interprets it.
func (r *Region) SetCursor(p *Point) {
	if nil == p {
		r.cursor = nil
		return
	}
	cp := *p
	r.cursor = &cp
}
