package theme

import (
	"git.lost.host/meutraa/termdraw/internal/region"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTheme uses the xterm 256 colour palette, which every terminal the
// renderer targets can show.
type DefaultTheme struct{}

func (t *DefaultTheme) Ramp(ramp Ramp) []region.Colour {
	switch ramp {
	case Blue:
		return indexed(blueRamp)
	case Green:
		return indexed(greenRamp)
	}
	return indexed(greyRamp)
}

func (t *DefaultTheme) Palette() Palette {
	return station
}

// TrueColourTheme fades between the ends of each ramp in 24-bit colour.
type TrueColourTheme struct {
	ramps map[Ramp][]region.Colour
}

func NewTrueColourTheme() *TrueColourTheme {
	return &TrueColourTheme{
		ramps: map[Ramp][]region.Colour{
			Grey:  fade("#080808", "#eeeeee", len(greyRamp)),
			Blue:  fade("#00005f", "#87ffff", len(blueRamp)),
			Green: fade("#005f00", "#00ff00", len(greenRamp)),
		},
	}
}

func (t *TrueColourTheme) Ramp(ramp Ramp) []region.Colour {
	if r, ok := t.ramps[ramp]; ok {
		return r
	}
	return t.ramps[Grey]
}

func (t *TrueColourTheme) Palette() Palette {
	return station
}

var (
	greyRamp = []uint8{
		232, 233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243,
		244, 245, 246, 247, 248, 249, 250, 251, 252, 253, 254, 255,
	}
	blueRamp = []uint8{
		17, 18, 18, 19, 19, 20, 20, 21, 27, 32, 33,
		38, 39, 44, 45, 45, 81, 81, 51, 51, 123, 123,
	}
	greenRamp = []uint8{22, 22, 22, 28, 28, 34, 34, 40, 40, 46, 46, 46}

	station = Palette{
		Yellow:       region.RGB(0xf5, 0xcf, 0x75),
		OffWhite:     region.RGB(0xe0, 0xe0, 0xe0),
		Red:          region.RGB(0xff, 0x91, 0xad),
		GreenLight:   region.RGB(0x48, 0xd5, 0x97),
		GreenDark:    region.RGB(0x11, 0x27, 0x25),
		GreenDarkest: region.RGB(0x0b, 0x14, 0x18),
	}
)

func indexed(codes []uint8) []region.Colour {
	ramp := make([]region.Colour, len(codes))
	for i, c := range codes {
		ramp[i] = region.Indexed256(c)
	}
	return ramp
}

// fade blends from one hex colour to another in Lab space. Both ends are
// compile time constants, so parse errors cannot happen.
func fade(from, to string, steps int) []region.Colour {
	a, _ := colorful.Hex(from)
	b, _ := colorful.Hex(to)
	ramp := make([]region.Colour, steps)
	for i := range ramp {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
		ramp[i] = region.RGB(r, g, bl)
	}
	return ramp
}
