package drawutil

import (
	"image"

	"github.com/wesen/figdraw/pkg/cellbuf"
)

// Box-drawing runes used for rectangle outlines.
const (
	cornerTL   = '┌'
	cornerTR   = '┐'
	cornerBL   = '└'
	cornerBR   = '┘'
	horizontal = '─'
	vertical   = '│'
	dashH      = '╌'
	dashV      = '╎'
)

// pointChar returns the line character for a point based on its local
// direction (looking at the next or previous point).
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// DrawLine draws a Bresenham line into buf with per-point line characters.
// Coordinates are buffer-local cells.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		buf.Set(p.X, p.Y, pointChar(pts, i), style)
	}
}

// DrawRect outlines the cells of r with box-drawing characters. The
// outline occupies the first and last row and column of r. A single
// row or column degenerates to a straight run.
func DrawRect(buf *cellbuf.Buffer, r image.Rectangle, style cellbuf.StyleKey) {
	drawRect(buf, r, style, horizontal, vertical)
}

// DrawDashedRect is DrawRect with dashed edges and plain corners.
func DrawDashedRect(buf *cellbuf.Buffer, r image.Rectangle, style cellbuf.StyleKey) {
	drawRect(buf, r, style, dashH, dashV)
}

func drawRect(buf *cellbuf.Buffer, r image.Rectangle, style cellbuf.StyleKey, h, v rune) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	switch {
	case x0 == x1 && y0 == y1:
		buf.Set(x0, y0, '□', style)
		return
	case y0 == y1:
		for x := x0; x <= x1; x++ {
			buf.Set(x, y0, h, style)
		}
		return
	case x0 == x1:
		for y := y0; y <= y1; y++ {
			buf.Set(x0, y, v, style)
		}
		return
	}
	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, h, style)
		buf.Set(x, y1, h, style)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, v, style)
		buf.Set(x1, y, v, style)
	}
	buf.Set(x0, y0, cornerTL, style)
	buf.Set(x1, y0, cornerTR, style)
	buf.Set(x0, y1, cornerBL, style)
	buf.Set(x1, y1, cornerBR, style)
}

// FillRect sets every cell of r to ch.
func FillRect(buf *cellbuf.Buffer, r image.Rectangle, ch rune, style cellbuf.StyleKey) {
	r = r.Canon()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buf.Set(x, y, ch, style)
		}
	}
}

// DrawPolygon draws the closed outline through pts, including the
// edge from the last point back to the first.
func DrawPolygon(buf *cellbuf.Buffer, pts []image.Point, style cellbuf.StyleKey) {
	switch len(pts) {
	case 0:
		return
	case 1:
		buf.Set(pts[0].X, pts[0].Y, '·', style)
		return
	}
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		DrawLine(buf, p.X, p.Y, q.X, q.Y, style)
	}
}

// FillEllipse sets ch on every cell whose center lies inside the
// ellipse inscribed in r. Rectangles too small to hold an ellipse
// cell get their center cell filled.
func FillEllipse(buf *cellbuf.Buffer, r image.Rectangle, ch rune, style cellbuf.StyleKey) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	filled := false
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				buf.Set(x, y, ch, style)
				filled = true
			}
		}
	}
	if !filled {
		buf.Set((r.Min.X+r.Max.X-1)/2, (r.Min.Y+r.Max.Y-1)/2, ch, style)
	}
}
