package urlspan

import (
	"image/color"
	"testing"
)

func TestNewCell(t *testing.T) {
	cell := NewCell()

	if cell.Char != ' ' {
		t.Errorf("expected space, got '%c'", cell.Char)
	}
	if got := ResolveColor(cell.Fg, true); got != DefaultForeground {
		t.Errorf("expected default foreground, got %v", got)
	}
	if got := ResolveColor(cell.Bg, false); got != DefaultBackground {
		t.Errorf("expected default background, got %v", got)
	}
	if cell.Flags != 0 {
		t.Error("expected no flags")
	}
}

func TestCellReset(t *testing.T) {
	cell := NewCell()
	cell.Char = 'A'
	cell.Fg = color.RGBA{255, 0, 0, 255}
	cell.SetFlag(CellFlagBold | CellFlagWideChar)

	cell.Reset()

	if cell.Char != ' ' {
		t.Errorf("expected space after reset, got '%c'", cell.Char)
	}
	if cell.Flags != 0 {
		t.Error("expected no flags after reset")
	}
	if got := ResolveColor(cell.Fg, true); got != DefaultForeground {
		t.Errorf("expected default foreground after reset, got %v", got)
	}
}

func TestCellFlags(t *testing.T) {
	cell := NewCell()

	cell.SetFlag(CellFlagBold)
	if !cell.HasFlag(CellFlagBold) {
		t.Error("expected bold flag")
	}

	cell.SetFlag(CellFlagUnderline)
	if !cell.HasFlag(CellFlagBold) || !cell.HasFlag(CellFlagUnderline) {
		t.Error("expected both flags")
	}

	cell.ClearFlag(CellFlagBold)
	if cell.HasFlag(CellFlagBold) {
		t.Error("expected bold flag to be cleared")
	}
	if !cell.HasFlag(CellFlagUnderline) {
		t.Error("expected underline flag to remain")
	}
}

func TestCellWide(t *testing.T) {
	cell := NewCell()

	cell.SetFlag(CellFlagWideChar)
	if !cell.IsWide() {
		t.Error("expected cell to be wide")
	}

	spacer := NewCell()
	spacer.SetFlag(CellFlagWideCharSpacer)
	if !spacer.IsWideSpacer() {
		t.Error("expected cell to be spacer")
	}
	if spacer.IsWide() {
		t.Error("spacer should not be wide")
	}
}

func TestRenderableCellEnd(t *testing.T) {
	narrow := RenderableCell{Point: Point{Row: 2, Col: 4}}
	if got := narrow.end(); got != (Point{Row: 2, Col: 4}) {
		t.Errorf("narrow end = %v, want (2,4)", got)
	}

	wide := RenderableCell{Point: Point{Row: 2, Col: 4}, Flags: CellFlagWideChar}
	if got := wide.end(); got != (Point{Row: 2, Col: 5}) {
		t.Errorf("wide end = %v, want (2,5)", got)
	}
}

func TestResolveColor(t *testing.T) {
	rgb := color.RGBA{10, 20, 30, 255}

	tests := []struct {
		name string
		c    color.Color
		fg   bool
		want color.RGBA
	}{
		{"nil fg", nil, true, DefaultForeground},
		{"nil bg", nil, false, DefaultBackground},
		{"rgba", rgb, true, rgb},
		{"indexed", &IndexedColor{Index: 1}, true, DefaultPalette[1]},
		{"indexed cube", &IndexedColor{Index: 196}, true, DefaultPalette[196]},
		{"indexed out of range", &IndexedColor{Index: 300}, false, DefaultBackground},
		{"named red", &NamedColor{Name: 1}, true, DefaultPalette[1]},
		{"named foreground", &NamedColor{Name: NamedColorForeground}, false, DefaultForeground},
		{"named background", &NamedColor{Name: NamedColorBackground}, true, DefaultBackground},
		{"gray16", color.Gray16{Y: 0xffff}, true, color.RGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColor(tt.c, tt.fg); got != tt.want {
				t.Errorf("ResolveColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndexedAndRGBACompareEqual(t *testing.T) {
	indexed := ResolveColor(&IndexedColor{Index: 5}, true)
	direct := ResolveColor(DefaultPalette[5], true)
	if indexed != direct {
		t.Errorf("indexed %v != rgba %v", indexed, direct)
	}
}

func TestDefaultPaletteGrayscale(t *testing.T) {
	if got := DefaultPalette[232]; got != (color.RGBA{8, 8, 8, 255}) {
		t.Errorf("palette[232] = %v", got)
	}
	if got := DefaultPalette[255]; got != (color.RGBA{238, 238, 238, 255}) {
		t.Errorf("palette[255] = %v", got)
	}
	if got := DefaultPalette[16]; got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("palette[16] = %v", got)
	}
}
