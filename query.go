package urlspan

import "github.com/gdamore/tcell/v2"

// FindAt returns the first committed URL containing p.
func (t *Tracker) FindAt(p Point) (URL, bool) {
	for _, u := range t.urls {
		if u.Contains(p) {
			return u.clone(), true
		}
	}
	return URL{}, false
}

// Highlighted returns the URL under the mouse when every precondition for
// highlighting it is met:
//   - no text selection is active
//   - the mouse is inside the text area
//   - a launcher is configured
//   - the held modifiers exactly match the configured ones (plus Shift when the
//     application has enabled mouse reporting)
//   - the primary button is not pressed
func (t *Tracker) Highlighted(cfg URLConfig, mouse Mouse, mods tcell.ModMask, mouseMode, selection bool) (URL, bool) {
	required, err := cfg.Mods()
	if err != nil {
		return URL{}, false
	}
	if mouseMode {
		required |= tcell.ModShift
	}

	if selection ||
		!mouse.InsideTextArea ||
		cfg.Launcher == nil ||
		required != mods ||
		mouse.Buttons&tcell.ButtonPrimary != 0 {
		return URL{}, false
	}

	return t.FindAt(mouse.Point)
}
