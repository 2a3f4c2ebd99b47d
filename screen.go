package urlspan

import (
	"sync"

	"github.com/danielgatis/go-ansicode"
)

// Ensure Screen implements ansicode.Handler
var _ ansicode.Handler = (*Screen)(nil)

// ScreenMode is a bitmask of the screen behaviors that affect cell layout.
type ScreenMode uint32

const (
	// ModeInsert shifts characters right instead of overwriting them.
	ModeInsert ScreenMode = 1 << iota
	// ModeOrigin makes cursor positioning relative to the scroll region.
	ModeOrigin
	// ModeLineWrap enables automatic line wrapping at the last column.
	ModeLineWrap
	// ModeLineFeedNewLine makes line feed also move to column 0.
	ModeLineFeedNewLine
	// ModeReportMouseClicks enables mouse click reporting.
	ModeReportMouseClicks
	// ModeReportCellMouseMotion enables cell based mouse motion reporting.
	ModeReportCellMouseMotion
	// ModeReportAllMouseMotion enables reporting of all mouse motion events.
	ModeReportAllMouseMotion
	// ModeAlternateScreen is set while the alternate grid is active.
	ModeAlternateScreen
)

const modeMouse = ModeReportMouseClicks | ModeReportCellMouseMotion | ModeReportAllMouseMotion

const (
	// DEFAULT_ROWS is the default number of screen rows.
	DEFAULT_ROWS = 24
	// DEFAULT_COLS is the default number of screen columns.
	DEFAULT_COLS = 80
)

// cursor is the write position. Col may equal cols while a wrap is pending.
type cursor struct {
	Row int
	Col int
}

// Screen is a minimal ANSI screen: it decodes a byte stream into a grid of
// cells and hands those cells to a Tracker in scan order.
//
// All methods are safe for concurrent use.
type Screen struct {
	mu sync.RWMutex

	rows int
	cols int

	primary   *Grid
	alternate *Grid
	active    *Grid

	cursor      cursor
	savedCursor *cursor

	// attributes applied to newly printed characters
	template Cell

	scrollTop    int
	scrollBottom int // exclusive

	modes   ScreenMode
	decoder *ansicode.Decoder
}

// ScreenOption configures a Screen during construction.
type ScreenOption func(*Screen)

// WithSize sets the screen dimensions.
// Values <= 0 are replaced with defaults (24x80).
func WithSize(rows, cols int) ScreenOption {
	if rows <= 0 {
		rows = DEFAULT_ROWS
	}
	if cols <= 0 {
		cols = DEFAULT_COLS
	}

	return func(s *Screen) {
		s.rows = rows
		s.cols = cols
	}
}

// NewScreen creates a blank screen with line wrapping enabled.
func NewScreen(opts ...ScreenOption) *Screen {
	s := &Screen{
		rows: DEFAULT_ROWS,
		cols: DEFAULT_COLS,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.primary = NewGrid(s.rows, s.cols)
	s.alternate = NewGrid(s.rows, s.cols)
	s.active = s.primary

	s.template = NewCell()
	s.scrollBottom = s.rows
	s.modes = ModeLineWrap

	s.decoder = ansicode.NewDecoder(s)

	return s
}

// Write feeds raw bytes (text and escape sequences) to the screen.
func (s *Screen) Write(data []byte) (int, error) {
	return s.decoder.Write(data)
}

// WriteString is a convenience wrapper around Write.
func (s *Screen) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Rows returns the number of rows.
func (s *Screen) Rows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Cols returns the number of columns.
func (s *Screen) Cols() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cols
}

// Cell returns a copy of the cell at (row, col) and whether it exists.
func (s *Screen) Cell(row, col int) (Cell, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cell := s.active.Cell(row, col)
	if cell == nil {
		return Cell{}, false
	}
	return *cell, true
}

// CursorPos returns the cursor position (0-based).
func (s *Screen) CursorPos() (row, col int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.Row, s.cursor.Col
}

// HasMode returns true if every bit of mode is set.
func (s *Screen) HasMode(mode ScreenMode) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes&mode == mode
}

// MouseMode returns true if the application asked for mouse reports.
// Highlighting then additionally requires Shift.
func (s *Screen) MouseMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes&modeMouse != 0
}

// IsAlternateScreen returns true if the alternate grid is active.
func (s *Screen) IsAlternateScreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active == s.alternate
}

// LineContent returns the text of a row, trimming trailing spaces.
func (s *Screen) LineContent(row int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.LineContent(row)
}

// IsWrapped returns true if the row continues on the next row.
func (s *Screen) IsWrapped(row int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.IsWrapped(row)
}

// HasDirty returns true if the grid changed since the last ClearDirty call.
func (s *Screen) HasDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.HasDirty()
}

// ClearDirty resets the dirty state, typically after a scan.
func (s *Screen) ClearDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.ClearDirty()
}

// Resize changes the screen dimensions. Content is kept at the top-left and
// the scroll region is reset.
func (s *Screen) Resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rows <= 0 || cols <= 0 {
		return
	}

	s.primary.Resize(rows, cols)
	s.alternate.Resize(rows, cols)
	s.rows = rows
	s.cols = cols
	s.scrollTop = 0
	s.scrollBottom = rows
	s.cursor.Row = clamp(s.cursor.Row, 0, rows-1)
	s.cursor.Col = clamp(s.cursor.Col, 0, cols-1)
}

// RenderableCells returns every visible cell in scan order.
func (s *Screen) RenderableCells() []RenderableCell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.RenderableCells(Point{}, Point{Row: s.rows - 1, Col: s.cols - 1})
}

// CellsBetween returns the visible cells between start and end (inclusive).
func (s *Screen) CellsBetween(start, end Point) []RenderableCell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.RenderableCells(start, end)
}

// Scan runs a fresh Tracker over the whole screen and returns it.
func (s *Screen) Scan(opts ...TrackerOption) *Tracker {
	s.mu.RLock()
	cols := s.cols
	cells := s.active.RenderableCells(Point{}, Point{Row: s.rows - 1, Col: s.cols - 1})
	s.mu.RUnlock()

	t := NewTracker(opts...)
	for _, cell := range cells {
		t.Update(cell, cols)
	}
	return t
}

// Text returns the characters of u, from Start to End, skipping spacer cells.
func (s *Screen) Text(u URL) string {
	if len(u.segments) == 0 {
		return ""
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.Text(u.Start(), u.End())
}

// String returns the screen content as text, one line per row.
func (s *Screen) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []byte
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			out = append(out, '\n')
		}
		out = append(out, s.active.LineContent(row)...)
	}
	return string(out)
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// effectiveRow returns the effective row considering origin mode.
func (s *Screen) effectiveRow(row int) int {
	if s.modes&ModeOrigin != 0 {
		return row + s.scrollTop
	}
	return row
}

// scrollIfNeeded scrolls the region when the cursor has left it.
func (s *Screen) scrollIfNeeded() {
	if s.cursor.Row >= s.scrollBottom {
		n := s.cursor.Row - s.scrollBottom + 1
		s.active.ScrollUp(s.scrollTop, s.scrollBottom, n)
		s.cursor.Row = s.scrollBottom - 1
	} else if s.cursor.Row < s.scrollTop {
		n := s.scrollTop - s.cursor.Row
		s.active.ScrollDown(s.scrollTop, s.scrollBottom, n)
		s.cursor.Row = s.scrollTop
	}
}

