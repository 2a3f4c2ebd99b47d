package urlspan

import (
	"fmt"
	"image/color"
)

// Snapshot is a serializable capture of the screen text and the URLs found on it.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []string       `json:"lines"`
	URLs   []URLSnapshot  `json:"urls"`
}

// SnapshotSize holds screen dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds the cursor position.
type SnapshotCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotPoint is a grid position.
type SnapshotPoint struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// URLSnapshot describes one committed URL.
type URLSnapshot struct {
	Start           SnapshotPoint     `json:"start"`
	End             SnapshotPoint     `json:"end"`
	TrailingExclude int               `json:"trailing_exclude,omitempty"`
	Segments        []SegmentSnapshot `json:"segments"`
	Text            string            `json:"text,omitempty"`
}

// SegmentSnapshot describes one stored segment, untrimmed.
type SegmentSnapshot struct {
	Start SnapshotPoint `json:"start"`
	End   SnapshotPoint `json:"end"`
	Color string        `json:"color"`
}

// Snapshot describes every committed URL. text, if non-nil, fills in the
// characters of each URL (Screen.Text fits).
func (t *Tracker) Snapshot(text func(URL) string) []URLSnapshot {
	snaps := make([]URLSnapshot, 0, len(t.urls))
	for _, u := range t.urls {
		snap := URLSnapshot{
			Start:           snapshotPoint(u.Start()),
			End:             snapshotPoint(u.End()),
			TrailingExclude: u.trailingExclude,
			Segments:        make([]SegmentSnapshot, len(u.segments)),
		}
		for i, seg := range u.segments {
			snap.Segments[i] = SegmentSnapshot{
				Start: snapshotPoint(seg.Start),
				End:   snapshotPoint(seg.End),
				Color: colorToHex(seg.Color),
			}
		}
		if text != nil {
			snap.Text = text(u)
		}
		snaps = append(snaps, snap)
	}
	return snaps
}

// Snapshot scans the screen and captures its text together with the URLs found.
func (s *Screen) Snapshot() *Snapshot {
	tracker := s.Scan()

	s.mu.RLock()
	snap := &Snapshot{
		Size:   SnapshotSize{Rows: s.rows, Cols: s.cols},
		Cursor: SnapshotCursor{Row: s.cursor.Row, Col: s.cursor.Col},
		Lines:  make([]string, s.rows),
	}
	for row := 0; row < s.rows; row++ {
		snap.Lines[row] = s.active.LineContent(row)
	}
	s.mu.RUnlock()

	snap.URLs = tracker.Snapshot(s.Text)
	return snap
}

func snapshotPoint(p Point) SnapshotPoint {
	return SnapshotPoint{Row: p.Row, Col: p.Col}
}

// colorToHex converts a color to hex string.
func colorToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
