package region

// Format is the display style of a cell. The zero value is the default style.
// Formats are compared with ==, which the diff engine depends on.
type Format struct {
	Bold    bool
	Reverse bool
	Fg      Colour
	Bg      Colour
}

func (f Format) WithBold() Format {
	f.Bold = true
	return f
}

func (f Format) WithReverse() Format {
	f.Reverse = true
	return f
}

func (f Format) resolve(existing Format) Format {
	f.Fg = f.Fg.resolve(existing.Fg)
	f.Bg = f.Bg.resolve(existing.Bg)
	return f
}
