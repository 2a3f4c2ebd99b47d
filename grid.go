package urlspan

// Grid stores a 2D array of cells and tracks which rows wrap onto the next one.
type Grid struct {
	rows    int
	cols    int
	cells   [][]Cell
	wrapped []bool // true if the row continues on the next row (soft wrap)
	dirty   bool
}

// NewGrid creates a grid with the given dimensions, filled with blank cells.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([][]Cell, rows),
		wrapped: make([]bool, rows),
	}

	for i := range g.cells {
		g.cells[i] = newRow(cols)
	}

	return g
}

func newRow(cols int) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = NewCell()
	}
	return row
}

// Rows returns the grid height in character rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width in character columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Cell returns a pointer to the cell at (row, col).
// Returns nil if coordinates are out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return &g.cells[row][col]
}

// SetCell replaces the cell at (row, col).
func (g *Grid) SetCell(row, col int, cell Cell) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row][col] = cell
	g.dirty = true
}

// HasDirty returns true if any cell changed since the last ClearDirty call.
func (g *Grid) HasDirty() bool {
	return g.dirty
}

// ClearDirty resets the dirty state.
func (g *Grid) ClearDirty() {
	g.dirty = false
}

// ClearRowRange resets cells in the row from startCol (inclusive) to endCol (exclusive).
func (g *Grid) ClearRowRange(row, startCol, endCol int) {
	if row < 0 || row >= g.rows {
		return
	}
	startCol = max(startCol, 0)
	endCol = min(endCol, g.cols)
	for col := startCol; col < endCol; col++ {
		g.cells[row][col].Reset()
	}
	g.dirty = true
}

// ClearRow resets all cells in the row and clears its wrap flag.
func (g *Grid) ClearRow(row int) {
	g.ClearRowRange(row, 0, g.cols)
	g.SetWrapped(row, false)
}

// ClearAll resets every cell in the grid.
func (g *Grid) ClearAll() {
	for row := range g.cells {
		g.ClearRow(row)
	}
}

// ScrollUp shifts lines up by n positions within [top, bottom).
// Bottom lines are cleared.
func (g *Grid) ScrollUp(top, bottom, n int) {
	top, bottom, n = g.scrollBounds(top, bottom, n)
	if n <= 0 {
		return
	}

	for row := top; row < bottom-n; row++ {
		g.cells[row] = g.cells[row+n]
		g.wrapped[row] = g.wrapped[row+n]
	}
	for row := bottom - n; row < bottom; row++ {
		g.cells[row] = newRow(g.cols)
		g.wrapped[row] = false
	}
	g.dirty = true
}

// ScrollDown shifts lines down by n positions within [top, bottom).
// Top lines are cleared.
func (g *Grid) ScrollDown(top, bottom, n int) {
	top, bottom, n = g.scrollBounds(top, bottom, n)
	if n <= 0 {
		return
	}

	for row := bottom - 1; row >= top+n; row-- {
		g.cells[row] = g.cells[row-n]
		g.wrapped[row] = g.wrapped[row-n]
	}
	for row := top; row < top+n; row++ {
		g.cells[row] = newRow(g.cols)
		g.wrapped[row] = false
	}
	g.dirty = true
}

func (g *Grid) scrollBounds(top, bottom, n int) (int, int, int) {
	top = max(top, 0)
	bottom = min(bottom, g.rows)
	if top >= bottom {
		return top, bottom, 0
	}
	return top, bottom, min(n, bottom-top)
}

// InsertBlanks inserts n blank cells at (row, col), shifting existing characters right.
func (g *Grid) InsertBlanks(row, col, n int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols || n <= 0 {
		return
	}

	line := g.cells[row]
	for c := g.cols - 1; c >= col+n; c-- {
		line[c] = line[c-n]
	}
	for c := col; c < col+n && c < g.cols; c++ {
		line[c].Reset()
	}
	g.dirty = true
}

// DeleteChars removes n characters at (row, col), shifting remaining characters left.
func (g *Grid) DeleteChars(row, col, n int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols || n <= 0 {
		return
	}

	line := g.cells[row]
	for c := col; c < g.cols-n; c++ {
		line[c] = line[c+n]
	}
	for c := max(g.cols-n, col); c < g.cols; c++ {
		line[c].Reset()
	}
	g.dirty = true
}

// Resize changes grid dimensions, keeping content at the top-left corner.
func (g *Grid) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = newRow(cols)
		if i < g.rows {
			copy(cells[i], g.cells[i])
		}
	}

	wrapped := make([]bool, rows)
	copy(wrapped, g.wrapped)

	g.cells = cells
	g.wrapped = wrapped
	g.rows = rows
	g.cols = cols
	g.dirty = true
}

// IsWrapped returns true if the row continues on the next row.
func (g *Grid) IsWrapped(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	return g.wrapped[row]
}

// SetWrapped sets whether the row was wrapped or ended with an explicit newline.
func (g *Grid) SetWrapped(row int, wrapped bool) {
	if row < 0 || row >= g.rows {
		return
	}
	g.wrapped[row] = wrapped
}

// LineContent returns the text content of a row, trimming trailing spaces.
// Wide character spacers are skipped.
func (g *Grid) LineContent(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}

	last := -1
	for col := g.cols - 1; col >= 0; col-- {
		cell := &g.cells[row][col]
		if cell.Char != ' ' && cell.Char != 0 && !cell.IsWideSpacer() {
			last = col
			break
		}
	}

	return g.Text(Point{Row: row}, Point{Row: row, Col: last})
}

// Text returns the characters between start and end (inclusive), following
// soft wraps. Spacer cells are skipped.
func (g *Grid) Text(start, end Point) string {
	if end.Before(start) || start.Row < 0 || start.Row >= g.rows || g.cols <= 0 {
		return ""
	}
	start.Col = clamp(start.Col, 0, g.cols-1)

	var runes []rune
	for p := start; !end.Before(p) && p.Row < g.rows; p = p.Add(g.cols) {
		cell := &g.cells[p.Row][p.Col]
		if cell.IsWideSpacer() || cell.HasFlag(CellFlagLeadingWideCharSpacer) {
			continue
		}
		if cell.Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, cell.Char)
		}
	}
	return string(runes)
}

// renderable converts the cell at p into its rendered form.
func (g *Grid) renderable(p Point) RenderableCell {
	cell := &g.cells[p.Row][p.Col]
	rc := RenderableCell{
		Point: p,
		Char:  cell.Char,
		Fg:    ResolveColor(cell.Fg, true),
		Bg:    ResolveColor(cell.Bg, false),
		Flags: cell.Flags,
	}
	if cell.HasFlag(CellFlagReverse) {
		rc.Fg, rc.Bg = rc.Bg, rc.Fg
	}
	// A wide character in the last two columns ends the row too.
	if rc.end().Col == g.cols-1 && g.wrapped[p.Row] {
		rc.Flags |= CellFlagWrapLine
	}
	return rc
}

// RenderableCells returns the cells between start and end (inclusive) in scan
// order. Trailing wide spacers are omitted, since their wide character covers them.
func (g *Grid) RenderableCells(start, end Point) []RenderableCell {
	if g.cols <= 0 || end.Before(start) {
		return nil
	}

	start.Row = max(start.Row, 0)
	start.Col = clamp(start.Col, 0, g.cols-1)
	if last := (Point{Row: g.rows - 1, Col: g.cols - 1}); last.Before(end) {
		end = last
	}

	var cells []RenderableCell
	for p := start; !end.Before(p); p = p.Add(g.cols) {
		if g.cells[p.Row][p.Col].IsWideSpacer() {
			continue
		}
		cells = append(cells, g.renderable(p))
	}
	return cells
}
