package urlspan

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// The color cube (16-231) and grayscale ramp (232-255) are filled in by init.
}

func init() {
	// 6x6x6 color cube (16-231), 51 per step
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	// Grayscale (232-255), from 8 to 238 in steps of 10
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// Named color indices for semantic colors (used with NamedColor).
const (
	NamedColorForeground = 256 // Default foreground text color
	NamedColorBackground = 257 // Default background color
	NamedColorCursor     = 258 // Cursor color, drawn as the foreground
)

// IndexedColor references a color by palette index (0-255).
type IndexedColor struct {
	Index int
}

// RGBA implements color.Color by resolving against DefaultPalette.
func (c *IndexedColor) RGBA() (r, g, b, a uint32) {
	return ResolveColor(c, true).RGBA()
}

// NamedColor references a color by semantic name (foreground, background, or 0-15).
type NamedColor struct {
	Name int
}

// RGBA implements color.Color by resolving against the defaults.
func (c *NamedColor) RGBA() (r, g, b, a uint32) {
	return ResolveColor(c, c.Name != NamedColorBackground).RGBA()
}

// ResolveColor converts a color.Color to RGBA using the default palette.
// A nil color resolves to the default foreground or background depending on fg.
// Resolved colors are comparable with ==, which is how segment boundaries are found.
func ResolveColor(c color.Color, fg bool) color.RGBA {
	if c == nil {
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case *IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return DefaultPalette[v.Index]
		}
	case *NamedColor:
		// 0-15 alias the palette; the rest are the semantic defaults.
		switch {
		case v.Name >= 0 && v.Name < 16:
			return DefaultPalette[v.Name]
		case v.Name == NamedColorForeground, v.Name == NamedColorCursor:
			return DefaultForeground
		case v.Name == NamedColorBackground:
			return DefaultBackground
		}
	default:
		// Any other color.Color, reduced from 16 to 8 bits per channel.
		r, g, b, a := c.RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	}

	if fg {
		return DefaultForeground
	}
	return DefaultBackground
}
