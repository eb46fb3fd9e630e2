package drawing

import (
	"fmt"
	"image"

	"github.com/wesen/figdraw/pkg/geom"
)

// LocatorKind is the closed set of locator behaviours.
type LocatorKind int

const (
	// LocPoint is vertex Index of the owning figure's points.
	LocPoint LocatorKind = iota
	// LocProportional is the fraction (RX, RY) of the figure's bounds.
	// Setting it translates the whole figure.
	LocProportional

	// Reshaping locators sit on a corner or edge midpoint of the bounds.
	// Setting one resizes the figure while the opposite side stays put.
	LocTopLeft
	LocTopMid
	LocTopRight
	LocLeftMid
	LocRightMid
	LocBottomLeft
	LocBottomMid
	LocBottomRight
)

var locatorNames = [...]string{
	"point", "proportional",
	"top-left", "top-mid", "top-right", "left-mid", "right-mid",
	"bottom-left", "bottom-mid", "bottom-right",
}

func (k LocatorKind) String() string {
	if int(k) < len(locatorNames) {
		return locatorNames[k]
	}
	return "locator?"
}

// Reshaping reports whether k is one of the eight corner/edge kinds.
func (k LocatorKind) Reshaping() bool {
	return k >= LocTopLeft && k <= LocBottomRight
}

// Locator is a position derived from a figure. It is a plain value; the
// canvas resolves it against the arena each time it is read or set.
type Locator struct {
	Kind   LocatorKind
	Figure FigureID
	Index  int     // LocPoint
	RX, RY float64 // LocProportional
}

// PointLocator locates vertex i of a figure.
func PointLocator(id FigureID, i int) Locator {
	return Locator{Kind: LocPoint, Figure: id, Index: i}
}

// ProportionalLocator locates the fraction (rx, ry) of a figure's bounds.
func ProportionalLocator(id FigureID, rx, ry float64) Locator {
	return Locator{Kind: LocProportional, Figure: id, RX: rx, RY: ry}
}

// CenterLocator locates the center of a figure's bounds.
func CenterLocator(id FigureID) Locator {
	return ProportionalLocator(id, 0.5, 0.5)
}

// ReshapeLocator locates a corner or edge midpoint of a figure.
func ReshapeLocator(id FigureID, kind LocatorKind) Locator {
	return Locator{Kind: kind, Figure: id}
}

// reshapeKinds lists the reshaping handles in the order rectangles carry them.
var reshapeKinds = [...]LocatorKind{
	LocTopLeft, LocTopMid, LocTopRight,
	LocLeftMid, LocRightMid,
	LocBottomLeft, LocBottomMid, LocBottomRight,
}

// reshapeFunc returns the bounds implied by dragging a corner or edge to p,
// and false when a resulting dimension would not exceed limit.
type reshapeFunc func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool)

var reshapers = map[LocatorKind]reshapeFunc{
	LocTopLeft: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: p, Max: b.Max},
			p.X < b.Max.X-limit.X && p.Y < b.Max.Y-limit.Y
	},
	LocTopMid: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: image.Pt(b.Min.X, p.Y), Max: b.Max},
			p.Y < b.Max.Y-limit.Y
	},
	LocTopRight: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: image.Pt(b.Min.X, p.Y), Max: image.Pt(p.X, b.Max.Y)},
			b.Min.X+limit.X < p.X && p.Y < b.Max.Y-limit.Y
	},
	LocLeftMid: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: image.Pt(p.X, b.Min.Y), Max: b.Max},
			p.X < b.Max.X-limit.X
	},
	LocRightMid: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: b.Min, Max: image.Pt(p.X, b.Max.Y)},
			b.Min.X+limit.X < p.X
	},
	LocBottomLeft: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: image.Pt(p.X, b.Min.Y), Max: image.Pt(b.Max.X, p.Y)},
			p.X < b.Max.X-limit.X && b.Min.Y+limit.Y < p.Y
	},
	LocBottomMid: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: b.Min, Max: image.Pt(b.Max.X, p.Y)},
			b.Min.Y+limit.Y < p.Y
	},
	LocBottomRight: func(b image.Rectangle, p, limit image.Point) (image.Rectangle, bool) {
		return image.Rectangle{Min: b.Min, Max: p},
			b.Min.X+limit.X < p.X && b.Min.Y+limit.Y < p.Y
	},
}

// locate resolves l against f without checking l.Figure.
func (c *Canvas) locate(f *Figure, l Locator) image.Point {
	b := f.Bounds()
	midX := b.Min.X + b.Dx()/2
	midY := b.Min.Y + b.Dy()/2
	switch l.Kind {
	case LocPoint:
		if l.Index < 0 || l.Index >= len(f.points) {
			return image.Point{}
		}
		return f.points[l.Index]
	case LocProportional:
		return image.Pt(geom.Prorata(b.Min.X, b.Max.X, l.RX), geom.Prorata(b.Min.Y, b.Max.Y, l.RY))
	case LocTopLeft:
		return b.Min
	case LocTopMid:
		return image.Pt(midX, b.Min.Y)
	case LocTopRight:
		return image.Pt(b.Max.X, b.Min.Y)
	case LocLeftMid:
		return image.Pt(b.Min.X, midY)
	case LocRightMid:
		return image.Pt(b.Max.X, midY)
	case LocBottomLeft:
		return image.Pt(b.Min.X, b.Max.Y)
	case LocBottomMid:
		return image.Pt(midX, b.Max.Y)
	case LocBottomRight:
		return b.Max
	}
	return image.Point{}
}

// Locate returns the live position of l.
func (c *Canvas) Locate(l Locator) (image.Point, error) {
	f, err := c.fig(l.Figure)
	if err != nil {
		return image.Point{}, err
	}
	return c.locate(f, l), nil
}

// SetLocatorLocation moves l to p with kind-specific effect: a point
// locator moves its vertex, a proportional locator translates the whole
// figure, and a reshaping locator resizes the figure. A reshape that would
// shrink the figure to the minimum size or below is ignored.
func (c *Canvas) SetLocatorLocation(l Locator, p image.Point) error {
	f, err := c.fig(l.Figure)
	if err != nil {
		return err
	}
	switch {
	case l.Kind == LocPoint:
		if l.Index < 0 || l.Index >= len(f.points) {
			return fmt.Errorf("%w: %s has no point %d", ErrUnsupported, f.Kind, l.Index)
		}
		c.mutate(f, func() { f.points[l.Index] = p })
		return nil
	case l.Kind == LocProportional:
		d := p.Sub(c.locate(f, l))
		c.mutate(f, func() { c.shift(f, d) })
		return nil
	case l.Kind.Reshaping():
		if !f.scalable() {
			return fmt.Errorf("%w: reshape %s", ErrUnsupported, f.Kind)
		}
		r, ok := reshapers[l.Kind](f.Bounds(), p, c.opts.MinSize)
		if !ok {
			Logger().Debug("reshape rejected", "figure", f.ID, "locator", l.Kind, "point", p)
			return nil
		}
		c.mutate(f, func() {
			c.moveTo(f, r.Min)
			c.resize(f, geom.Size(r))
		})
		return nil
	}
	return fmt.Errorf("%w: locator kind %d", ErrUnsupported, l.Kind)
}

// TranslateLocator moves l by d through its own setter semantics.
func (c *Canvas) TranslateLocator(l Locator, d image.Point) error {
	p, err := c.Locate(l)
	if err != nil {
		return err
	}
	return c.SetLocatorLocation(l, p.Add(d))
}

// RelativeLocator returns a proportional locator at p's fraction of the
// figure's bounds. A zero dimension yields fraction 0.
func (c *Canvas) RelativeLocator(id FigureID, p image.Point) (Locator, error) {
	f, err := c.fig(id)
	if err != nil {
		return Locator{}, err
	}
	b := f.Bounds()
	var rx, ry float64
	if b.Dx() != 0 {
		rx = float64(p.X-b.Min.X) / float64(b.Dx())
	}
	if b.Dy() != 0 {
		ry = float64(p.Y-b.Min.Y) / float64(b.Dy())
	}
	return ProportionalLocator(id, rx, ry), nil
}
