package urlspan

import (
	"testing"
)

func TestPointBefore(t *testing.T) {
	tests := []struct {
		a, b     Point
		expected bool
	}{
		{Point{0, 0}, Point{0, 1}, true},
		{Point{0, 5}, Point{1, 0}, true},
		{Point{1, 0}, Point{0, 5}, false},
		{Point{2, 2}, Point{2, 2}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.expected {
			t.Errorf("%v.Before(%v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestPointCompare(t *testing.T) {
	if (Point{0, 1}).Compare(Point{0, 2}) != -1 {
		t.Error("expected -1")
	}
	if (Point{3, 3}).Compare(Point{3, 3}) != 0 {
		t.Error("expected 0")
	}
	if (Point{4, 0}).Compare(Point{3, 9}) != 1 {
		t.Error("expected 1")
	}
}

func TestPointAdd(t *testing.T) {
	tests := []struct {
		p        Point
		cols     int
		expected Point
	}{
		{Point{0, 0}, 10, Point{0, 1}},
		{Point{0, 8}, 10, Point{0, 9}},
		{Point{0, 9}, 10, Point{1, 0}},
		{Point{4, 79}, 80, Point{5, 0}},
	}

	for _, tt := range tests {
		if got := tt.p.Add(tt.cols); got != tt.expected {
			t.Errorf("%v.Add(%d) = %v, want %v", tt.p, tt.cols, got, tt.expected)
		}
	}
}

func TestPointSub(t *testing.T) {
	tests := []struct {
		p        Point
		cols, n  int
		expected Point
	}{
		{Point{0, 5}, 10, 0, Point{0, 5}},
		{Point{0, 5}, 10, 1, Point{0, 4}},
		{Point{1, 0}, 10, 1, Point{0, 9}},
		{Point{2, 3}, 10, 14, Point{0, 9}},
		{Point{2, 3}, 10, 23, Point{0, 0}},
		{Point{0, 2}, 10, 5, Point{0, 0}},
		{Point{1, 1}, 10, 100, Point{0, 0}},
	}

	for _, tt := range tests {
		if got := tt.p.Sub(tt.cols, tt.n); got != tt.expected {
			t.Errorf("%v.Sub(%d, %d) = %v, want %v", tt.p, tt.cols, tt.n, got, tt.expected)
		}
	}
}

func TestPointAddSubRoundTrip(t *testing.T) {
	p := Point{Row: 3, Col: 7}
	q := p
	for i := 0; i < 25; i++ {
		q = q.Add(8)
	}
	if got := q.Sub(8, 25); got != p {
		t.Errorf("expected %v after round trip, got %v", p, got)
	}
}

func TestPointInRange(t *testing.T) {
	start, end := Point{1, 5}, Point{2, 3}

	if !(Point{1, 5}).InRange(start, end) {
		t.Error("start should be in range")
	}
	if !(Point{2, 3}).InRange(start, end) {
		t.Error("end should be in range")
	}
	if !(Point{1, 79}).InRange(start, end) {
		t.Error("wrapped middle should be in range")
	}
	if (Point{1, 4}).InRange(start, end) {
		t.Error("point before start should not be in range")
	}
	if (Point{2, 4}).InRange(start, end) {
		t.Error("point after end should not be in range")
	}
}
