package theme

import "git.lost.host/meutraa/termdraw/internal/region"

type Ramp uint8

const (
	Grey Ramp = iota
	Blue
	Green
)

// Palette colours the station scene.
type Palette struct {
	Yellow       region.Colour
	OffWhite     region.Colour
	Red          region.Colour
	GreenLight   region.Colour
	GreenDark    region.Colour
	GreenDarkest region.Colour
}

type Theme interface {
	// Ramp returns colours from darkest to brightest
	Ramp(ramp Ramp) []region.Colour
	Palette() Palette
}
