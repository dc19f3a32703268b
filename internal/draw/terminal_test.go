package draw

import (
	"fmt"
	"strconv"
	"strings"

	"git.lost.host/meutraa/termdraw/internal/region"
)

// vt is a minimal terminal that understands exactly the sequences Draw
// emits, so tests can check what a real screen would show.
type vt struct {
	width, height int
	grid          *region.Region
	x, y          int
	format        region.Format
	cursorHidden  bool
}

func newVT(width, height int) *vt {
	return &vt{width: width, height: height, grid: region.New(width, height)}
}

func (t *vt) write(out string) error {
	rs := []rune(out)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\033' {
			if err := t.put(rs[i]); nil != err {
				return err
			}
			continue
		}
		if i+1 >= len(rs) || rs[i+1] != '[' {
			return fmt.Errorf("bare escape at %d", i)
		}
		j := i + 2
		for j < len(rs) && (rs[j] < '@' || rs[j] > '~') {
			j++
		}
		if j >= len(rs) {
			return fmt.Errorf("unterminated sequence at %d", i)
		}
		if err := t.csi(string(rs[i+2:j]), rs[j]); nil != err {
			return err
		}
		i = j
	}
	return nil
}

func (t *vt) put(ch rune) error {
	if t.x >= t.width {
		// Autowrap from the pending position after the last column
		if t.y+1 >= t.height {
			return fmt.Errorf("write of %q scrolled the screen", ch)
		}
		t.x, t.y = 0, t.y+1
	}
	c := t.grid.CellAt(t.x, t.y)
	c.SetContent(ch)
	c.SetFormat(t.format)
	// Past the last column the cursor waits for the next write to wrap.
	t.x++
	return nil
}

func params(s string) []int {
	if s == "" {
		return nil
	}
	ps := []int{}
	for _, p := range strings.Split(s, ";") {
		n, _ := strconv.Atoi(p)
		ps = append(ps, n)
	}
	return ps
}

func (t *vt) csi(arg string, final rune) error {
	if strings.HasPrefix(arg, "?25") {
		t.cursorHidden = final == 'l'
		return nil
	}
	ps := params(arg)
	switch final {
	case 'H', 'f':
		t.y, t.x = 0, 0
		if len(ps) == 2 {
			t.y, t.x = ps[0]-1, ps[1]-1
		}
	case 'G':
		t.x = ps[0] - 1
	case 'C':
		t.x += ps[0]
	case 'J':
		t.grid.Clear()
	case 'm':
		return t.sgr(ps)
	default:
		return fmt.Errorf("unexpected sequence %q%c", arg, final)
	}
	return nil
}

func (t *vt) sgr(ps []int) error {
	if len(ps) == 0 {
		ps = []int{0}
	}
	extended := func(i int) (region.Colour, int) {
		if ps[i+1] == 5 {
			return region.Indexed256(uint8(ps[i+2])), i + 2
		}
		return region.RGB(uint8(ps[i+2]), uint8(ps[i+3]), uint8(ps[i+4])), i + 4
	}
	for i := 0; i < len(ps); i++ {
		p := ps[i]
		switch {
		case p == 0:
			t.format = region.Format{}
		case p == 1:
			t.format.Bold = true
		case p == 7:
			t.format.Reverse = true
		case p >= 30 && p <= 37, p >= 90 && p <= 97:
			t.format.Fg = region.Indexed16(uint8(p))
		case p >= 40 && p <= 47, p >= 100 && p <= 107:
			t.format.Bg = region.Indexed16(uint8(p))
		case p == 38:
			t.format.Fg, i = extended(i)
		case p == 48:
			t.format.Bg, i = extended(i)
		default:
			return fmt.Errorf("unexpected SGR parameter %d", p)
		}
	}
	return nil
}
