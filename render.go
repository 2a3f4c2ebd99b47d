package urlspan

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// CellMetrics describes the pixel geometry of one grid cell.
type CellMetrics struct {
	Width  int
	Height int
	// Baseline is the offset of the text baseline from the top of the cell.
	Baseline int
	// UnderlineY is the offset of the underline from the top of the cell.
	UnderlineY int
	// Thickness is the underline height in pixels.
	Thickness int
}

// MetricsFromFace derives cell metrics from a monospace font face.
func MetricsFromFace(face font.Face) CellMetrics {
	metrics := face.Metrics()

	adv, _ := face.GlyphAdvance('M')
	width := adv.Ceil()
	if width == 0 {
		width = 7 // basicfont fallback
	}
	height := metrics.Height.Ceil()
	if height == 0 {
		height = 13
	}

	thickness := max(1, height/14)
	baseline := metrics.Ascent.Ceil()

	return CellMetrics{
		Width:      width,
		Height:     height,
		Baseline:   baseline,
		UnderlineY: clamp(baseline+2, 0, height-thickness),
		Thickness:  thickness,
	}
}

// UnderlineRect is one underline stroke in pixels.
type UnderlineRect struct {
	image.Rectangle
	Color color.RGBA
}

// Rects returns the underline strokes for the visible part of the URL: one per
// row touched by each visible segment, drawn in the segment's color.
func (u URL) Rects(m CellMetrics) []UnderlineRect {
	if len(u.segments) == 0 || u.cols <= 0 {
		return nil
	}

	var rects []UnderlineRect
	for _, seg := range u.VisibleSegments(u.End()) {
		for row := seg.Start.Row; row <= seg.End.Row; row++ {
			startCol, endCol := 0, u.cols-1
			if row == seg.Start.Row {
				startCol = seg.Start.Col
			}
			if row == seg.End.Row {
				endCol = seg.End.Col
			}

			y := row*m.Height + m.UnderlineY
			rects = append(rects, UnderlineRect{
				Rectangle: image.Rect(startCol*m.Width, y, (endCol+1)*m.Width, y+m.Thickness),
				Color:     seg.Color,
			})
		}
	}
	return rects
}

// DrawUnderlines strokes the underline of every URL onto dst.
func DrawUnderlines(dst draw.Image, m CellMetrics, urls ...URL) {
	for _, u := range urls {
		for _, r := range u.Rects(m) {
			draw.Draw(dst, r.Rectangle.Intersect(dst.Bounds()), image.NewUniform(r.Color), image.Point{}, draw.Src)
		}
	}
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the screen and underlines the given URLs.
// A nil face uses basicfont.Face7x13.
func (s *Screen) Screenshot(face font.Face, urls ...URL) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := MetricsFromFace(face)

	s.mu.RLock()
	cells := s.active.RenderableCells(Point{}, Point{Row: s.rows - 1, Col: s.cols - 1})
	img := image.NewRGBA(image.Rect(0, 0, s.cols*m.Width, s.rows*m.Height))
	s.mu.RUnlock()

	draw.Draw(img, img.Bounds(), image.NewUniform(DefaultBackground), image.Point{}, draw.Src)

	for _, cell := range cells {
		x := cell.Point.Col * m.Width
		y := cell.Point.Row * m.Height

		w := m.Width
		if cell.HasFlag(CellFlagWideChar) {
			w *= 2
		}
		draw.Draw(img, image.Rect(x, y, x+w, y+m.Height), image.NewUniform(cell.Bg), image.Point{}, draw.Src)

		if cell.Char != 0 && cell.Char != ' ' {
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(cell.Fg),
				Face: face,
				Dot:  fixed.P(x, y+m.Baseline),
			}
			d.DrawString(string(cell.Char))
		}

		if cell.HasFlag(CellFlagUnderline) {
			uy := y + m.UnderlineY
			draw.Draw(img, image.Rect(x, uy, x+w, uy+m.Thickness), image.NewUniform(cell.Fg), image.Point{}, draw.Src)
		}
	}

	DrawUnderlines(img, m, urls...)
	return img
}
