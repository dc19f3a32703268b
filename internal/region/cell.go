package region

// Cell is one character position of a Region.
//
// Two cells are equal (==) when content, width and format all match. The zero
// Cell is stored as DefaultCell, so a region only ever holds cells at least
// one column wide.
type Cell struct {
	content rune
	width   int
	format  Format
}

// DefaultCell is a space in the default style.
func DefaultCell() Cell {
	return Cell{content: ' ', width: 1}
}

// SetContent stores ch and returns the number of columns it occupies.
func (c *Cell) SetContent(ch rune) int {
	// Every character is one column wide.
	c.content = ch
	c.width = 1
	return c.width
}

func (c *Cell) Content() rune  { return c.content }
func (c *Cell) Width() int {
	if c.width < 1 {
		return 1
	}
	return c.width
}
func (c *Cell) Format() Format { return c.format }

func (c *Cell) Clear() {
	c.SetFrom(DefaultCell())
}

// Reset sets the format back to the default style, keeping the content.
func (c *Cell) Reset() {
	c.format = Format{}
}

func (c *Cell) Bold() {
	c.format.Bold = true
}

func (c *Cell) Reverse() {
	c.format.Reverse = true
}

// SetFormat stores f. UseExisting channels keep the colour the cell already
// has, so a stored format never holds UseExisting.
func (c *Cell) SetFormat(f Format) {
	c.format = f.resolve(c.format)
}

// SetFrom copies content, width and format from other. A zero Cell is copied
// as DefaultCell.
func (c *Cell) SetFrom(other Cell) {
	if other.content == 0 {
		other.content = ' '
	}
	if other.width < 1 {
		other.width = 1
	}
	*c = other
}
