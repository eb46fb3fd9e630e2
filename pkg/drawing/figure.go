package drawing

import (
	"image"
	"slices"

	"github.com/wesen/figdraw/pkg/geom"
)

// FigureID identifies a figure in a canvas arena. IDs are never reused.
type FigureID int

// NoFigure is the absent figure.
const NoFigure FigureID = -1

// FigureKind is the closed set of figure shapes.
type FigureKind int

const (
	KindRectangle FigureKind = iota
	KindFilledRectangle
	KindLine
	KindPolygon
	KindConnectingLine
)

var kindNames = [...]string{"rectangle", "filled rectangle", "line", "polygon", "connecting line"}

func (k FigureKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "figure?"
}

// Figure is an arena entry. Its fields are read through accessors and
// mutated only through the owning Canvas.
//
// Location and size are a cache of the figure's bounds. Rectangles own them
// directly; lines, polygons and connecting lines recompute them from their
// points after every change.
type Figure struct {
	ID   FigureID
	Kind FigureKind

	location image.Point
	size     image.Point
	selected bool
	added    bool
	handles  []*Handle

	// points holds line endpoints (start, end), polygon vertices, or the
	// free end of a connecting line.
	points []image.Point

	// start and end are the figures a connecting line is bound to.
	start FigureID
	end   FigureID
}

// Location returns the origin of the figure's bounds.
func (f *Figure) Location() image.Point { return f.location }

// Size returns the extent of the figure's bounds.
func (f *Figure) Size() image.Point { return f.size }

// Bounds returns the figure's bounding rectangle.
func (f *Figure) Bounds() image.Rectangle { return geom.RectAt(f.location, f.size) }

// Selected reports the selection flag.
func (f *Figure) Selected() bool { return f.selected }

// Handles returns the figure's handles in paint order.
func (f *Figure) Handles() []*Handle { return slices.Clone(f.handles) }

// Points returns a copy of the figure's points.
func (f *Figure) Points() []image.Point { return slices.Clone(f.points) }

// StartFigure returns the figure a connecting line starts at.
func (f *Figure) StartFigure() FigureID { return f.start }

// EndFigure returns the figure a connecting line ends at, or NoFigure
// while its end is free.
func (f *Figure) EndFigure() FigureID { return f.end }

// scalable reports whether location and size may be set directly.
func (f *Figure) scalable() bool {
	switch f.Kind {
	case KindRectangle, KindFilledRectangle, KindPolygon:
		return true
	}
	return false
}

// ── Derived geometry ──

// liveBounds computes the bounds from the figure's authoritative state.
func (c *Canvas) liveBounds(f *Figure) image.Rectangle {
	switch f.Kind {
	case KindLine:
		return geom.RectFromPoints(f.points[0], f.points[1])
	case KindPolygon:
		// each vertex contributes a unit square
		b := image.Rectangle{Min: f.points[0], Max: f.points[0]}
		for _, p := range f.points[1:] {
			b = geom.ExtendWithPoint(b, p)
		}
		b.Max = b.Max.Add(image.Pt(1, 1))
		return b
	case KindConnectingLine:
		return geom.Inflate(geom.RectFromPoints(c.lineStart(f), c.lineEnd(f)), 1, 1)
	default:
		return f.Bounds()
	}
}

// recompute re-establishes location/size from the authoritative state.
func (c *Canvas) recompute(f *Figure) {
	b := c.liveBounds(f)
	f.location = b.Min
	f.size = geom.Size(b)
}

func (c *Canvas) expandedBounds(f *Figure) image.Rectangle {
	hs := c.opts.HandleSize
	return geom.Inflate(f.Bounds(), hs.X/2+1, hs.Y/2+1)
}

// lineStart returns the effective start point of a line or connecting line.
func (c *Canvas) lineStart(f *Figure) image.Point {
	if f.Kind == KindConnectingLine {
		return c.centerOf(f.start)
	}
	return f.points[0]
}

// lineEnd returns the effective end point of a line or connecting line.
func (c *Canvas) lineEnd(f *Figure) image.Point {
	if f.Kind == KindConnectingLine {
		if f.end != NoFigure {
			return c.centerOf(f.end)
		}
		return f.points[0]
	}
	return f.points[1]
}

func (c *Canvas) centerOf(id FigureID) image.Point {
	f := c.lookup(id)
	if f == nil {
		return image.Point{}
	}
	return c.locate(f, CenterLocator(id))
}

// ── Hit testing ──

func (c *Canvas) touches(f *Figure, p image.Point) bool {
	r := c.opts.TouchRadius
	switch f.Kind {
	case KindRectangle:
		b := f.Bounds()
		tl, br := b.Min, b.Max
		tr, bl := image.Pt(br.X, tl.Y), image.Pt(tl.X, br.Y)
		return geom.LinePointIntersect(tl, tr, p, r) ||
			geom.LinePointIntersect(tr, br, p, r) ||
			geom.LinePointIntersect(br, bl, p, r) ||
			geom.LinePointIntersect(bl, tl, p, r)
	case KindFilledRectangle:
		return geom.ContainsPoint(f.Bounds(), p)
	case KindLine:
		return geom.LinePointIntersect(f.points[0], f.points[1], p, r)
	case KindPolygon:
		n := len(f.points)
		for i := range n {
			if geom.LinePointIntersect(f.points[i], f.points[(i+1)%n], p, r) {
				return true
			}
		}
		return false
	case KindConnectingLine:
		if f.end == NoFigure {
			return false
		}
		return geom.LinePointIntersect(c.lineStart(f), c.lineEnd(f), p, r)
	}
	return false
}

// ── Painting ──

func (c *Canvas) paintFigure(s Surface, f *Figure) {
	switch f.Kind {
	case KindRectangle:
		s.DrawRectangle(f.Bounds(), StyleOutline)
	case KindFilledRectangle:
		s.FillRectangle(f.Bounds(), StyleFillLight)
		s.DrawRectangle(f.Bounds(), StyleOutline)
	case KindLine, KindConnectingLine:
		s.DrawLine(c.lineStart(f), c.lineEnd(f), StyleOutline)
	case KindPolygon:
		s.DrawPolygon(f.Points(), StyleOutline)
	}
}

// ── Raw mutations ──
//
// These change authoritative state only. Callers wrap them in mutate so
// bounds, dependents and damage follow.

func (c *Canvas) moveTo(f *Figure, p image.Point) {
	switch f.Kind {
	case KindPolygon:
		c.shift(f, p.Sub(f.location))
	default:
		f.location = p
	}
}

func (c *Canvas) resize(f *Figure, size image.Point) {
	if f.Kind != KindPolygon {
		f.size = size
		return
	}
	origin, old := f.location, f.size
	sx, sy := 1.0, 1.0
	if old.X != 0 {
		sx = float64(size.X) / float64(old.X)
	}
	if old.Y != 0 {
		sy = float64(size.Y) / float64(old.Y)
	}
	for i, v := range f.points {
		f.points[i] = image.Pt(geom.Prorata(origin.X, v.X, sx), geom.Prorata(origin.Y, v.Y, sy))
	}
}

func (c *Canvas) shift(f *Figure, d image.Point) {
	switch f.Kind {
	case KindRectangle, KindFilledRectangle:
		f.location = f.location.Add(d)
	case KindLine, KindPolygon:
		for i := range f.points {
			f.points[i] = f.points[i].Add(d)
		}
	case KindConnectingLine:
		// fully determined by the figures it connects
	}
}
