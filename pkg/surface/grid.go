// Package surface implements drawing.Surface for the places a canvas gets
// shown: a terminal cell buffer, a raster image that can be written as PNG,
// and a Recorder that keeps the primitive calls for inspection.
package surface

import "image"

// Grid maps world coordinates onto terminal cells. Each cell covers
// CellW×CellH world units.
type Grid struct {
	CellW, CellH int
}

// DefaultGrid reflects the roughly 1:2 aspect of a terminal cell.
var DefaultGrid = Grid{CellW: 2, CellH: 4}

func (g Grid) valid() Grid {
	if g.CellW <= 0 || g.CellH <= 0 {
		return DefaultGrid
	}
	return g
}

// CellOf returns the cell containing world point p.
func (g Grid) CellOf(p image.Point) image.Point {
	g = g.valid()
	return image.Pt(floorDiv(p.X, g.CellW), floorDiv(p.Y, g.CellH))
}

// WorldOf returns the world point at the center of cell c.
func (g Grid) WorldOf(c image.Point) image.Point {
	g = g.valid()
	return image.Pt(c.X*g.CellW+g.CellW/2, c.Y*g.CellH+g.CellH/2)
}

// CellRect returns the smallest cell rectangle covering world rectangle r.
func (g Grid) CellRect(r image.Rectangle) image.Rectangle {
	g = g.valid()
	r = r.Canon()
	return image.Rect(
		floorDiv(r.Min.X, g.CellW), floorDiv(r.Min.Y, g.CellH),
		ceilDiv(r.Max.X, g.CellW), ceilDiv(r.Max.Y, g.CellH),
	)
}

// WorldRect returns the world rectangle covered by cell rectangle c.
func (g Grid) WorldRect(c image.Rectangle) image.Rectangle {
	g = g.valid()
	return image.Rect(c.Min.X*g.CellW, c.Min.Y*g.CellH, c.Max.X*g.CellW, c.Max.Y*g.CellH)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
