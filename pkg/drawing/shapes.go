package drawing

import (
	"fmt"
	"image"

	"github.com/wesen/figdraw/pkg/geom"
)

// newFigure allocates a figure in the arena. It is not on the canvas until
// AddFigure is called.
func (c *Canvas) newFigure(kind FigureKind, init func(f *Figure)) *Figure {
	f := &Figure{
		ID:    FigureID(c.figures.NextID()),
		Kind:  kind,
		start: NoFigure,
		end:   NoFigure,
	}
	init(f)
	c.figures.AddNode(f)
	c.recompute(f)
	return f
}

func rectangleHandles(id FigureID) []*Handle {
	hs := []*Handle{
		newHandle(HandlePlain, CenterLocator(id)),
		newHandle(HandleConnector, CenterLocator(id)),
	}
	for _, k := range reshapeKinds {
		hs = append(hs, newHandle(HandlePlain, ReshapeLocator(id, k)))
	}
	return hs
}

// NewRectangle creates an outlined rectangle.
func (c *Canvas) NewRectangle(loc, size image.Point) FigureID {
	return c.newRectangle(KindRectangle, loc, size)
}

// NewFilledRectangle creates a filled rectangle, which is hit anywhere in
// its interior rather than only on its edges.
func (c *Canvas) NewFilledRectangle(loc, size image.Point) FigureID {
	return c.newRectangle(KindFilledRectangle, loc, size)
}

func (c *Canvas) newRectangle(kind FigureKind, loc, size image.Point) FigureID {
	f := c.newFigure(kind, func(f *Figure) {
		f.location, f.size = loc, size
		f.handles = rectangleHandles(f.ID)
	})
	return f.ID
}

// NewLine creates a line from start to end.
func (c *Canvas) NewLine(start, end image.Point) FigureID {
	f := c.newFigure(KindLine, func(f *Figure) {
		f.points = []image.Point{start, end}
		f.handles = []*Handle{
			newHandle(HandlePlain, CenterLocator(f.ID)),
			newHandle(HandlePlain, PointLocator(f.ID, 0)),
			newHandle(HandlePlain, PointLocator(f.ID, 1)),
		}
	})
	return f.ID
}

// NewPolygon creates a polygon with a single vertex.
func (c *Canvas) NewPolygon(start image.Point) FigureID {
	f := c.newFigure(KindPolygon, func(f *Figure) {
		f.points = []image.Point{start}
		f.handles = []*Handle{newHandle(HandlePlain, PointLocator(f.ID, 0))}
	})
	return f.ID
}

// NewConnectingLine creates a line from the center of start to the free
// point end and makes it follow start.
func (c *Canvas) NewConnectingLine(start FigureID, end image.Point) (FigureID, error) {
	if _, err := c.fig(start); err != nil {
		return NoFigure, err
	}
	f := c.newFigure(KindConnectingLine, func(f *Figure) {
		f.start = start
		f.points = []image.Point{end}
	})
	c.figures.AddEdge(int(start), int(f.ID), DependsStart)
	return f.ID, nil
}

// ── Location and size ──

// SetLocation moves a figure so its bounds start at p. Lines and
// connecting lines are positioned by their endpoints and return
// ErrUnsupported.
func (c *Canvas) SetLocation(id FigureID, p image.Point) error {
	f, err := c.fig(id)
	if err != nil {
		return err
	}
	if !f.scalable() {
		return fmt.Errorf("%w: set location of %s", ErrUnsupported, f.Kind)
	}
	c.mutate(f, func() { c.moveTo(f, p) })
	return nil
}

// SetSize resizes a figure. Polygons scale their vertices about the bounds
// origin; a zero current dimension scales by 1. Polygon bounds include one
// unit past the farthest vertex, so the resulting size can fall short of the
// request by one: a 51×51 triangle asked for 102×102 ends up 101×101. Lines
// and connecting lines return ErrUnsupported.
func (c *Canvas) SetSize(id FigureID, size image.Point) error {
	f, err := c.fig(id)
	if err != nil {
		return err
	}
	if !f.scalable() {
		return fmt.Errorf("%w: set size of %s", ErrUnsupported, f.Kind)
	}
	c.mutate(f, func() { c.resize(f, size) })
	return nil
}

// Translate moves a figure by d. A connecting line cannot be moved on its
// own and is left unchanged.
func (c *Canvas) Translate(id FigureID, d image.Point) error {
	f, err := c.fig(id)
	if err != nil {
		return err
	}
	c.mutate(f, func() { c.shift(f, d) })
	return nil
}

// ── Lines ──

func (c *Canvas) line(id FigureID) (*Figure, error) {
	f, err := c.fig(id)
	if err != nil {
		return nil, err
	}
	if f.Kind != KindLine {
		return nil, fmt.Errorf("%w: %s is not a line", ErrUnsupported, f.Kind)
	}
	return f, nil
}

// SetLineEnd moves the end point of a line.
func (c *Canvas) SetLineEnd(id FigureID, p image.Point) error {
	if _, err := c.line(id); err != nil {
		return err
	}
	return c.SetLocatorLocation(PointLocator(id, 1), p)
}

// LineLength returns the truncated length of a line.
func (c *Canvas) LineLength(id FigureID) (int, error) {
	f, err := c.line(id)
	if err != nil {
		return 0, err
	}
	return geom.Length(f.points[0], f.points[1]), nil
}

// ── Polygons ──

func (c *Canvas) polygon(id FigureID) (*Figure, error) {
	f, err := c.fig(id)
	if err != nil {
		return nil, err
	}
	if f.Kind != KindPolygon {
		return nil, fmt.Errorf("%w: %s is not a polygon", ErrUnsupported, f.Kind)
	}
	return f, nil
}

// AddPoint appends a vertex and its handle to a polygon.
func (c *Canvas) AddPoint(id FigureID, p image.Point) error {
	f, err := c.polygon(id)
	if err != nil {
		return err
	}
	c.mutate(f, func() {
		f.points = append(f.points, p)
		f.handles = append(f.handles, newHandle(HandlePlain, PointLocator(id, len(f.points)-1)))
	})
	return nil
}

// SetLastPoint moves the most recently added vertex of a polygon.
func (c *Canvas) SetLastPoint(id FigureID, p image.Point) error {
	f, err := c.polygon(id)
	if err != nil {
		return err
	}
	return c.SetLocatorLocation(PointLocator(id, len(f.points)-1), p)
}

// CountPoints returns the number of vertices of a polygon, or 0 for any
// other figure.
func (c *Canvas) CountPoints(id FigureID) int {
	f, err := c.polygon(id)
	if err != nil {
		return 0
	}
	return len(f.points)
}

// ── Connecting lines ──

func (c *Canvas) connection(id FigureID) (*Figure, error) {
	f, err := c.fig(id)
	if err != nil {
		return nil, err
	}
	if f.Kind != KindConnectingLine {
		return nil, fmt.Errorf("%w: %s is not a connecting line", ErrUnsupported, f.Kind)
	}
	return f, nil
}

// SetEndFigure binds the end of a connecting line to the center of target
// and makes the line follow it. Binding to the start figure returns
// ErrSelfConnection; binding that would close a dependency loop returns
// ErrCycle.
func (c *Canvas) SetEndFigure(line, target FigureID) error {
	f, err := c.connection(line)
	if err != nil {
		return err
	}
	if _, err := c.fig(target); err != nil {
		return err
	}
	if target == f.start {
		return fmt.Errorf("%w: #%d", ErrSelfConnection, target)
	}
	if target != f.end && c.figures.Reachable(int(line), int(target)) {
		return fmt.Errorf("%w: #%d→#%d", ErrCycle, target, line)
	}
	c.mutate(f, func() {
		c.unbindEnd(f)
		f.end = target
		c.figures.AddEdge(int(target), int(line), DependsEnd)
	})
	return nil
}

// SetEndLocation moves the free end of a connecting line to p. A line
// whose end is bound to a figure is released from it first.
func (c *Canvas) SetEndLocation(line FigureID, p image.Point) error {
	f, err := c.connection(line)
	if err != nil {
		return err
	}
	c.mutate(f, func() {
		c.unbindEnd(f)
		f.points[0] = p
	})
	return nil
}

// EndLocation returns the effective end point of a connecting line.
func (c *Canvas) EndLocation(line FigureID) (image.Point, error) {
	f, err := c.connection(line)
	if err != nil {
		return image.Point{}, err
	}
	return c.lineEnd(f), nil
}

func (c *Canvas) unbindEnd(f *Figure) {
	if f.end == NoFigure {
		return
	}
	c.figures.RemoveEdge(int(f.end), int(f.ID))
	f.end = NoFigure
}
