package urlspan

// Point identifies a cell location in the grid (0-based, row-major).
type Point struct {
	Row int
	Col int
}

// Before returns true if this point comes before other in reading order (top-to-bottom, left-to-right).
func (p Point) Before(other Point) bool {
	if p.Row < other.Row {
		return true
	}
	if p.Row == other.Row && p.Col < other.Col {
		return true
	}
	return false
}

// Equal returns true if both row and column match.
func (p Point) Equal(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to or after other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Before(other):
		return -1
	case p.Equal(other):
		return 0
	default:
		return 1
	}
}

// InRange returns true if start <= p <= end in reading order.
func (p Point) InRange(start, end Point) bool {
	return !p.Before(start) && !end.Before(p)
}

// Add moves the point one cell forward, wrapping to the next row at cols.
func (p Point) Add(cols int) Point {
	p.Col++
	if p.Col >= cols {
		p.Col = 0
		p.Row++
	}
	return p
}

// Sub moves the point n cells backward, borrowing whole rows of cols cells.
// Retreating past the origin clamps to (0, 0).
func (p Point) Sub(cols, n int) Point {
	if cols <= 0 || n <= 0 {
		return p
	}

	index := p.Row*cols + p.Col - n
	if index <= 0 {
		return Point{}
	}
	return Point{Row: index / cols, Col: index % cols}
}

// minPoint returns the earlier of two points.
func minPoint(a, b Point) Point {
	if b.Before(a) {
		return b
	}
	return a
}
