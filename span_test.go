package urlspan

import (
	"image/color"
	"testing"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestURLExtendMergesSameColor(t *testing.T) {
	u := URL{cols: 10}
	u.extend(Point{0, 2}, Point{0, 2}, red, 0)
	u.extend(Point{0, 3}, Point{0, 3}, red, 0)
	u.extend(Point{0, 4}, Point{0, 4}, red, 0)

	if len(u.segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(u.segments))
	}
	if u.Start() != (Point{0, 2}) || u.End() != (Point{0, 4}) {
		t.Errorf("unexpected bounds %v..%v", u.Start(), u.End())
	}
}

func TestURLExtendSplitsOnColor(t *testing.T) {
	u := URL{cols: 10}
	u.extend(Point{0, 2}, Point{0, 2}, red, 0)
	u.extend(Point{0, 3}, Point{0, 3}, blue, 0)
	u.extend(Point{0, 4}, Point{0, 4}, red, 0)

	segs := u.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[1].Start != (Point{0, 3}) || segs[1].End != (Point{0, 3}) || segs[1].Color != blue {
		t.Errorf("unexpected middle segment %+v", segs[1])
	}
}

func TestURLEndAppliesTrailingExclude(t *testing.T) {
	u := URL{cols: 10}
	u.extend(Point{0, 5}, Point{1, 3}, red, 0)

	tests := []struct {
		exclude  int
		expected Point
	}{
		{0, Point{1, 3}},
		{1, Point{1, 2}},
		{4, Point{0, 9}},
		{5, Point{0, 8}},
	}

	for _, tt := range tests {
		u.trailingExclude = tt.exclude
		if got := u.End(); got != tt.expected {
			t.Errorf("exclude %d: End() = %v, want %v", tt.exclude, got, tt.expected)
		}
	}

	if len(u.segments) != 1 || u.segments[0].End != (Point{1, 3}) {
		t.Error("stored segments must not be modified by End()")
	}
}

func TestURLVisibleSegments(t *testing.T) {
	u := URL{cols: 20}
	u.extend(Point{0, 0}, Point{0, 4}, red, 0)
	u.extend(Point{0, 5}, Point{0, 9}, blue, 0)
	u.extend(Point{0, 10}, Point{0, 12}, red, 4)

	visible := u.VisibleSegments(u.End())
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible segments, got %d", len(visible))
	}
	if visible[1].End != (Point{0, 8}) {
		t.Errorf("expected clipped end (0,8), got %v", visible[1].End)
	}
	if visible[0].End != (Point{0, 4}) {
		t.Errorf("expected untouched first segment, got %v", visible[0].End)
	}
}

func TestURLContains(t *testing.T) {
	u := URL{cols: 10}
	u.extend(Point{0, 8}, Point{1, 2}, red, 0)

	if !u.Contains(Point{0, 9}) || !u.Contains(Point{1, 0}) {
		t.Error("expected wrapped cells to be contained")
	}
	if u.Contains(Point{0, 7}) || u.Contains(Point{1, 3}) {
		t.Error("expected outside cells not to be contained")
	}
}

func TestURLCloneIsIndependent(t *testing.T) {
	u := URL{cols: 10}
	u.extend(Point{0, 0}, Point{0, 0}, red, 0)

	c := u.clone()
	u.extend(Point{0, 1}, Point{0, 1}, blue, 0)

	if len(c.segments) != 1 {
		t.Errorf("clone should not observe later extends, got %d segments", len(c.segments))
	}
}
