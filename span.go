package urlspan

import "image/color"

// Segment is an inclusive run of cells sharing one foreground color.
type Segment struct {
	Start Point
	End   Point
	Color color.RGBA
}

// URL is one recognized URL-like region. It may cross soft wraps and color
// changes, so it is stored as an ordered list of segments.
//
// The trailing exclude count is applied only when End is computed; the stored
// segments always cover every accepted cell.
type URL struct {
	segments        []Segment
	trailingExclude int
	cols            int
}

// Start returns the first cell of the URL.
func (u URL) Start() Point {
	return u.segments[0].Start
}

// End returns the last cell of the URL, excluding the trailing cells the
// classifier currently judges not to be part of it.
func (u URL) End() Point {
	return u.segments[len(u.segments)-1].End.Sub(u.cols, u.trailingExclude)
}

// Contains returns true if p lies within [Start, End] in reading order.
func (u URL) Contains(p Point) bool {
	return p.InRange(u.Start(), u.End())
}

// Segments returns a copy of the stored segments, untrimmed.
func (u URL) Segments() []Segment {
	return append([]Segment(nil), u.segments...)
}

// TrailingExclude returns the number of cells excluded from the tail of the URL.
func (u URL) TrailingExclude() int {
	return u.trailingExclude
}

// Cols returns the grid width the URL was built against.
func (u URL) Cols() int {
	return u.cols
}

// VisibleSegments drops segments starting after clip and clips the end of the
// remaining ones to clip. Passing End() yields the underline to draw.
func (u URL) VisibleSegments(clip Point) []Segment {
	visible := make([]Segment, 0, len(u.segments))
	for _, seg := range u.segments {
		if clip.Before(seg.Start) {
			continue
		}
		seg.End = minPoint(seg.End, clip)
		visible = append(visible, seg)
	}
	return visible
}

// extend grows the URL by the cells [start, end]. A cell with the same color as
// the last segment extends it; otherwise a new segment is started.
func (u *URL) extend(start, end Point, fg color.RGBA, trailingExclude int) {
	if n := len(u.segments); n > 0 && u.segments[n-1].Color == fg {
		u.segments[n-1].End = end
	} else {
		u.segments = append(u.segments, Segment{Start: start, End: end, Color: fg})
	}

	u.trailingExclude = trailingExclude
}

func (u URL) clone() URL {
	u.segments = append([]Segment(nil), u.segments...)
	return u
}
