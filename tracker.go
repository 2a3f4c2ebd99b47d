package urlspan

import "image/color"

// schemeCell is a cell seen while the classifier was still matching a scheme.
type schemeCell struct {
	point Point
	fg    color.RGBA
}

// Tracker recognizes URLs in a stream of rendered cells.
//
// Cells must be fed in grid scan order through Update. Whenever cells are
// skipped, a row ends without a soft wrap, or the classifier gives up, the
// in-progress match is discarded; URLs already committed are kept.
//
// A Tracker backs a single render pass and is not safe for concurrent use.
// Queries (FindAt, Highlighted, URLs) must run after the pass is complete.
type Tracker struct {
	newClassifier ClassifierFactory
	classifier    Classifier
	state         Location
	urls          []URL
	schemeBuffer  []schemeCell
	lastPoint     Point
	hasLast       bool
}

// TrackerOption configures a Tracker during construction.
type TrackerOption func(*Tracker)

// WithClassifier sets the factory used to create a classifier on every reset.
// Defaults to NewLocator.
func WithClassifier(factory ClassifierFactory) TrackerOption {
	return func(t *Tracker) {
		if factory != nil {
			t.newClassifier = factory
		}
	}
}

// NewTracker creates an empty tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		newClassifier: NewLocator,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.classifier = t.newClassifier()
	return t
}

// Update feeds one rendered cell of a grid that is cols columns wide.
func (t *Tracker) Update(cell RenderableCell, cols int) {
	point := cell.Point
	end := cell.end()

	// Reset when cells have been skipped.
	if point != (Point{}) && (!t.hasLast || point.Sub(cols, 1) != t.lastPoint) {
		t.Reset()
	}
	t.lastPoint, t.hasLast = end, true

	// The leading spacer stands in for a wide character wrapped to the next row.
	if cell.HasFlag(CellFlagLeadingWideCharSpacer) {
		if t.state.State == StateURL {
			exclude := t.state.TrailingExclude
			if exclude != 0 {
				exclude++
			}
			t.extend(point, end, cell.Fg, exclude)
		}
		return
	}

	last := t.state
	t.state = t.classifier.Advance(cell.Char)

	switch {
	// Any entry into a URL starts a new one, led by the buffered scheme cells.
	case t.state.State == StateURL && last.State != StateURL:
		t.urls = append(t.urls, URL{cols: cols, trailingExclude: t.state.TrailingExclude})

		for _, sc := range t.schemeBuffer {
			t.extend(sc.point, sc.point, sc.fg, t.state.TrailingExclude)
		}
		t.schemeBuffer = t.schemeBuffer[:0]

		t.extend(point, end, cell.Fg, t.state.TrailingExclude)
	case t.state.State == StateURL && last.State == StateURL:
		t.extend(point, end, cell.Fg, t.state.TrailingExclude)
	case t.state.State == StateScheme:
		t.schemeBuffer = append(t.schemeBuffer, schemeCell{point: point, fg: cell.Fg})
	case t.state.State == StateIdle:
		t.Reset()
	}

	// URLs never continue across a hard line break.
	if end.Col+1 == cols && !cell.HasFlag(CellFlagWrapLine) {
		t.Reset()
	}
}

// extend grows the current (last committed) URL.
func (t *Tracker) extend(start, end Point, fg color.RGBA, trailingExclude int) {
	if len(t.urls) == 0 {
		return
	}
	t.urls[len(t.urls)-1].extend(start, end, fg, trailingExclude)
}

// Reset discards the in-progress match and starts a fresh classifier.
// Committed URLs are kept. Calling Reset repeatedly is harmless.
func (t *Tracker) Reset() {
	t.classifier = t.newClassifier()
	t.state = Location{}
	t.schemeBuffer = t.schemeBuffer[:0]
}

// URLs returns copies of all committed URLs in commit order.
func (t *Tracker) URLs() []URL {
	urls := make([]URL, len(t.urls))
	for i, u := range t.urls {
		urls[i] = u.clone()
	}
	return urls
}

// Len returns the number of committed URLs.
func (t *Tracker) Len() int {
	return len(t.urls)
}
