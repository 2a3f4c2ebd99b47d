package urlspan

import "image/color"

// CellFlags is a bitmask of cell attributes relevant to URL scanning and rendering.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagUnderline
	CellFlagReverse
	// CellFlagWideChar marks a character occupying two columns.
	CellFlagWideChar
	// CellFlagWideCharSpacer marks the second column of a wide character.
	CellFlagWideCharSpacer
	// CellFlagLeadingWideCharSpacer fills the last column of a row when a wide
	// character did not fit and was wrapped onto the next row.
	CellFlagLeadingWideCharSpacer
	// CellFlagWrapLine marks the last cell of a row that continues on the next row (soft wrap).
	CellFlagWrapLine
)

// Cell stores the character, colors, and attributes for one grid position.
type Cell struct {
	Char  rune
	Fg    color.Color
	Bg    color.Color
	Flags CellFlags
}

// NewCell creates a cell initialized with space character and default colors.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   &NamedColor{Name: NamedColorForeground},
		Bg:   &NamedColor{Name: NamedColorBackground},
	}
}

// Reset clears all attributes and sets the cell to default state.
func (c *Cell) Reset() {
	*c = NewCell()
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsWide returns true if this cell contains a wide character.
func (c *Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is the second cell of a wide character.
func (c *Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// RenderableCell is one visited cell as seen by the renderer: its position,
// character, resolved colors and flags. Trailing wide spacers are never rendered.
type RenderableCell struct {
	Point Point
	Char  rune
	Fg    color.RGBA
	Bg    color.RGBA
	Flags CellFlags
}

// HasFlag returns true if the specified flag is set.
func (c RenderableCell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// end returns the last column covered by the cell.
func (c RenderableCell) end() Point {
	end := c.Point
	if c.HasFlag(CellFlagWideChar) {
		end.Col++
	}
	return end
}
