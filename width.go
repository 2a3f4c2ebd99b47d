package urlspan

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the number of grid columns a string occupies.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
