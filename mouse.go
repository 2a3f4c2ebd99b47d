package urlspan

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// Mouse is the pointer state consulted when deciding which URL to highlight.
type Mouse struct {
	// InsideTextArea is false when the pointer is over padding, borders or
	// other chrome around the grid.
	InsideTextArea bool
	// Point is the grid cell under the pointer, relative to the text area.
	Point Point
	// Buttons holds the buttons currently pressed.
	Buttons tcell.ButtonMask
}

// MouseFromEvent converts a tcell mouse event into grid coordinates relative to
// area, which is the text area in screen cells. The event modifiers are returned
// alongside for use with Tracker.Highlighted.
func MouseFromEvent(ev *tcell.EventMouse, area image.Rectangle) (Mouse, tcell.ModMask) {
	x, y := ev.Position()
	inside := image.Pt(x, y).In(area)

	return Mouse{
		InsideTextArea: inside,
		Point:          Point{Row: y - area.Min.Y, Col: x - area.Min.X},
		Buttons:        ev.Buttons(),
	}, ev.Modifiers()
}
