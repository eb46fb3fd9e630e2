package tools

import (
	"image"

	"github.com/wesen/figdraw/pkg/drawing"
	"github.com/wesen/figdraw/pkg/geom"
)

// Selection picks figures, drags them or their handles, and rubber-bands
// a selection rectangle over empty canvas.
type Selection struct {
	Base

	box     image.Rectangle
	start   image.Point
	handle  *drawing.Handle
	figure  drawing.FigureID
	locator drawing.Locator
}

// NewSelection creates a selection tool for c.
func NewSelection(c *drawing.Canvas) *Selection {
	return &Selection{Base: Base{canvas: c}, figure: drawing.NoFigure}
}

// SetActive records the activation flag and keeps the current selection.
func (t *Selection) SetActive(active bool) {
	t.active = active
}

// PointerDown grabs the last handle of a selected figure under p, else
// the figure under p, else starts a selection rectangle.
func (t *Selection) PointerDown(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft {
		return
	}
	c := t.canvas
	t.handle = nil
	for _, id := range c.SelectedFigures() {
		for _, h := range c.Figure(id).Handles() {
			if c.HandleTouches(h, p) {
				t.handle = h
			}
		}
	}
	if t.handle != nil {
		check("select handle", c.SetHandleSelected(t.handle, true))
		return
	}

	c.ClearSelected()
	t.figure = c.FindFigureAtPoint(p)
	if t.figure != drawing.NoFigure {
		check("select figure", c.SetSelected(t.figure, true))
		check("raise figure", c.SetTopFigure(t.figure))
		l, err := c.RelativeLocator(t.figure, p)
		check("grab figure", err)
		t.locator = l
		return
	}

	t.start = p
	t.box = geom.RectAt(p, image.Point{})
	c.SetSelectionRectangle(t.box)
	c.Repaint(geom.Inflate(t.box, 1, 1))
}

// PointerMove drags whatever PointerDown grabbed.
func (t *Selection) PointerMove(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft {
		return
	}
	c := t.canvas
	switch {
	case t.handle != nil:
		check("drag handle", c.SetHandleLocation(t.handle, p))
	case t.figure != drawing.NoFigure:
		check("drag figure", c.SetLocatorLocation(t.locator, p))
	default:
		old := geom.Inflate(t.box, 1, 1)
		t.box = geom.RectFromPoints(t.start, p)
		c.SetSelectionRectangle(t.box)
		c.Repaint(geom.Union(old, geom.Inflate(t.box, 1, 1)))
	}
}

// PointerUp releases the grabbed handle or figure, or drops the selection
// rectangle while keeping what it selected.
func (t *Selection) PointerUp(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft {
		return
	}
	c := t.canvas
	switch {
	case t.handle != nil:
		check("release handle", c.SetHandleSelected(t.handle, false))
		t.handle = nil
	case t.figure != drawing.NoFigure:
		t.figure = drawing.NoFigure
	default:
		c.SetSelectionRectangle(image.Rectangle{})
		c.Repaint(geom.Inflate(t.box, 1, 1))
		t.box = image.Rectangle{}
	}
}
