package tools

import (
	"image"

	"github.com/wesen/figdraw/pkg/drawing"
	"github.com/wesen/figdraw/pkg/geom"
)

// Construction creates a figure on press and stretches it between the
// press point and the pointer while dragging.
type Construction struct {
	Base

	newFigure func(p image.Point) drawing.FigureID
	figure    drawing.FigureID
	start     image.Point
}

func newConstruction(c *drawing.Canvas, newFigure func(p image.Point) drawing.FigureID) *Construction {
	return &Construction{Base: Base{canvas: c}, newFigure: newFigure, figure: drawing.NoFigure}
}

// NewRectangle creates a tool that draws outlined rectangles.
func NewRectangle(c *drawing.Canvas) *Construction {
	return newConstruction(c, func(p image.Point) drawing.FigureID {
		return c.NewRectangle(p, image.Point{})
	})
}

// NewFilledRectangle creates a tool that draws filled rectangles.
func NewFilledRectangle(c *drawing.Canvas) *Construction {
	return newConstruction(c, func(p image.Point) drawing.FigureID {
		return c.NewFilledRectangle(p, image.Point{})
	})
}

// Figure returns the figure under construction, or NoFigure.
func (t *Construction) Figure() drawing.FigureID { return t.figure }

func (t *Construction) PointerDown(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft {
		return
	}
	t.start = p
	t.figure = t.newFigure(p)
	check("add figure", t.canvas.AddFigure(t.figure))
}

func (t *Construction) PointerMove(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft || t.figure == drawing.NoFigure {
		return
	}
	c := t.canvas
	f := c.Figure(t.figure)
	if f == nil {
		t.figure = drawing.NoFigure
		return
	}
	old := f.Bounds()
	r := geom.RectFromPoints(t.start, p)
	check("place figure", c.SetLocation(t.figure, r.Min))
	check("size figure", c.SetSize(t.figure, geom.Size(r)))
	c.Repaint(geom.Inflate(old, 1, 1))
}

func (t *Construction) PointerUp(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft {
		return
	}
	t.figure = drawing.NoFigure
}

// Line draws straight lines and discards lines shorter than
// drawing.MinLineLength on release.
type Line struct {
	Construction
}

// NewLine creates a line tool for c.
func NewLine(c *drawing.Canvas) *Line {
	return &Line{Construction: *newConstruction(c, func(p image.Point) drawing.FigureID {
		return c.NewLine(p, p)
	})}
}

func (t *Line) PointerMove(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft || t.figure == drawing.NoFigure {
		return
	}
	c := t.canvas
	f := c.Figure(t.figure)
	if f == nil {
		t.figure = drawing.NoFigure
		return
	}
	old := f.Bounds()
	check("stretch line", c.SetLineEnd(t.figure, p))
	c.Repaint(geom.Inflate(old, 1, 1))
}

func (t *Line) PointerUp(b drawing.Button, p image.Point) {
	if b != drawing.ButtonLeft || t.figure == drawing.NoFigure {
		return
	}
	if n, err := t.canvas.LineLength(t.figure); err == nil && n < drawing.MinLineLength {
		check("discard short line", t.canvas.RemoveFigure(t.figure))
	}
	t.figure = drawing.NoFigure
}
