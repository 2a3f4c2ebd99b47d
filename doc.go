// Package urlspan finds URLs in a rendered terminal grid and tracks where they
// are on screen, so they can be underlined, hovered and opened.
//
// # Quick Start
//
// Feed ANSI output to a [Screen], scan it, and ask what is under the mouse:
//
//	screen := urlspan.NewScreen(urlspan.WithSize(24, 80))
//	screen.WriteString("see https://example.org/docs for details\r\n")
//
//	tracker := screen.Scan()
//	for _, u := range tracker.URLs() {
//	    fmt.Println(u.Start(), u.End(), screen.Text(u))
//	}
//
//	if u, ok := tracker.FindAt(urlspan.Point{Row: 0, Col: 10}); ok {
//	    fmt.Println("hovering", screen.Text(u))
//	}
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Tracker]: consumes [RenderableCell]s in scan order and builds [URL]s
//   - [Classifier]: a per-character URL recognizer; [Locator] is the default
//   - [URL]: a possibly wrapped, multi-colored region made of [Segment]s
//   - [Screen]: an ANSI screen that produces renderable cells
//
// # Scanning
//
// A Tracker backs one render pass. Cells must arrive in row-major order; when
// a cell is skipped, or a row ends without a soft wrap, the match in progress
// is dropped. Soft-wrapped rows continue the URL on the next row, and wide
// characters that wrapped early (leaving a leading spacer) are handled.
//
// Any cell source works, not just [Screen]:
//
//	tracker := urlspan.NewTracker()
//	for _, cell := range cells {
//	    tracker.Update(cell, cols)
//	}
//
// # Trailing Characters
//
// Punctuation at the end of a URL ("https://example.org." or "(see
// https://example.org)") is only excluded when the URL is queried:
// [URL.End] subtracts the trailing exclude count reported by the classifier,
// while the stored segments keep every accepted cell.
//
// # Highlighting
//
// [Tracker.Highlighted] applies the usual gating before a hit test: no
// selection, pointer inside the text area, a launcher configured, the exact
// modifiers from [URLConfig] (plus Shift when the application grabbed the
// mouse) and no pressed button.
//
// # Rendering
//
// [URL.Rects] turns the visible part of a URL into underline rectangles,
// one per row per color run. [Screen.Screenshot] renders the whole screen with
// the given URLs underlined.
package urlspan
