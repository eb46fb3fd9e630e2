package tools

import (
	"fmt"
	"image"

	"github.com/wesen/figdraw/pkg/drawing"
	"github.com/wesen/figdraw/pkg/geom"
)

// MinSides is the smallest polygon the polygon tool builds.
const MinSides = 3

// Polygon builds a polygon one click per vertex. The vertex after the
// last click follows the pointer until the next click fixes it; once the
// polygon has its full vertex count the next click finishes it.
type Polygon struct {
	Base

	sides  int
	figure drawing.FigureID
}

// NewPolygon creates a polygon tool for figures with the given number of
// sides. Counts below MinSides are raised to MinSides.
func NewPolygon(c *drawing.Canvas, sides int) *Polygon {
	return &Polygon{Base: Base{canvas: c}, sides: max(sides, MinSides), figure: drawing.NoFigure}
}

// Sides returns the vertex count of polygons built from now on.
func (t *Polygon) Sides() int { return t.sides }

// SetSides changes the vertex count of subsequently constructed polygons.
func (t *Polygon) SetSides(n int) error {
	if n < MinSides {
		return fmt.Errorf("%w: %d", ErrInvalidSides, n)
	}
	t.sides = n
	return nil
}

// Figure returns the polygon under construction, or NoFigure.
func (t *Polygon) Figure() drawing.FigureID { return t.figure }

// SetActive abandons an unfinished polygon on deactivation. The partial
// polygon stays on the canvas.
func (t *Polygon) SetActive(active bool) {
	t.Base.SetActive(active)
	if !active {
		t.figure = drawing.NoFigure
	}
}

func (t *Polygon) PointerDown(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft {
		return
	}
	c := t.canvas
	f := c.Figure(t.figure)
	switch {
	case f == nil:
		t.figure = c.NewPolygon(p)
		check("add polygon", c.AddFigure(t.figure))
		// the second copy of the first vertex follows the pointer
		check("add vertex", c.AddPoint(t.figure, p))
	case c.CountPoints(t.figure) < t.sides:
		old := f.Bounds()
		check("add vertex", c.AddPoint(t.figure, p))
		c.Repaint(geom.Union(f.Bounds(), old))
	default:
		old := f.Bounds()
		t.figure = drawing.NoFigure
		c.Repaint(old)
	}
}

// PointerMove drags the floating vertex regardless of the button held.
func (t *Polygon) PointerMove(b drawing.Button, p image.Point) {
	c := t.canvas
	f := c.Figure(t.figure)
	if f == nil {
		return
	}
	old := c.ExpandedBounds(t.figure)
	check("move vertex", c.SetLastPoint(t.figure, p))
	c.Repaint(geom.Union(f.Bounds(), old))
}

// PointerUp does nothing; the polygon stays under construction between
// clicks.
func (t *Polygon) PointerUp(drawing.Button, image.Point) {}
