package region

type colourKind uint8

const (
	kindDefault colourKind = iota
	kindIndexed16
	kindIndexed256
	kindRGB
	kindUseExisting
)

// Colour is one channel (foreground or background) of a cell's style.
// The zero value is the terminal's default colour.
type Colour struct {
	kind    colourKind
	r, g, b uint8 // Index is stored in r for the palette kinds
}

var (
	// Default asserts nothing, leaving the terminal's ambient colour
	Default = Colour{}
	// UseExisting keeps whatever colour the cell already has on this channel
	UseExisting = Colour{kind: kindUseExisting}
)

// Indexed16 is a colour from the base palette given as its SGR code, which
// picks the channel too: 30-37 and 90-97 are foreground, 40-47 and 100-107
// background. The code is written to the terminal as is.
func Indexed16(code uint8) Colour {
	return Colour{kind: kindIndexed16, r: code}
}

// Indexed256 selects from the 8-bit xterm palette
func Indexed256(code uint8) Colour {
	return Colour{kind: kindIndexed256, r: code}
}

func RGB(r, g, b uint8) Colour {
	return Colour{kind: kindRGB, r: r, g: g, b: b}
}

func (c Colour) IsDefault() bool     { return c.kind == kindDefault }
func (c Colour) IsIndexed16() bool   { return c.kind == kindIndexed16 }
func (c Colour) IsIndexed256() bool  { return c.kind == kindIndexed256 }
func (c Colour) IsRGB() bool         { return c.kind == kindRGB }
func (c Colour) IsUseExisting() bool { return c.kind == kindUseExisting }

// Index returns the SGR code of an Indexed16 colour or the palette index of an
// Indexed256 one.
func (c Colour) Index() (uint8, bool) {
	if c.kind != kindIndexed16 && c.kind != kindIndexed256 {
		return 0, false
	}
	return c.r, true
}

// RGBValues returns the components of an RGB colour.
func (c Colour) RGBValues() (r, g, b uint8, ok bool) {
	if c.kind != kindRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// resolve replaces UseExisting with the colour currently held by the channel
func (c Colour) resolve(existing Colour) Colour {
	if c.kind == kindUseExisting {
		return existing
	}
	return c
}
