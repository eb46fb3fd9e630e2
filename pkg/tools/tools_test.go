package tools

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/wesen/figdraw/pkg/drawing"
)

func newCanvas() *drawing.Canvas {
	return drawing.NewCanvas(drawing.Options{})
}

func drag(c *drawing.Canvas, from, to image.Point) {
	c.PointerDown(drawing.ButtonLeft, from)
	c.PointerMove(drawing.ButtonLeft, to)
	c.PointerUp(drawing.ButtonLeft, to)
}

func click(c *drawing.Canvas, p image.Point) {
	c.PointerDown(drawing.ButtonLeft, p)
	c.PointerUp(drawing.ButtonLeft, p)
}

func rect(t *testing.T, c *drawing.Canvas, x, y, w, h int) drawing.FigureID {
	t.Helper()
	id := c.NewRectangle(image.Pt(x, y), image.Pt(w, h))
	if err := c.AddFigure(id); err != nil {
		t.Fatal(err)
	}
	return id
}

// ── Construction ──

func TestRectangleTool(t *testing.T) {
	tests := []struct {
		name     string
		from, to image.Point
	}{
		{"down-right", image.Pt(10, 10), image.Pt(110, 60)},
		{"up-left", image.Pt(110, 60), image.Pt(10, 10)},
		{"up-right", image.Pt(10, 60), image.Pt(110, 10)},
	}
	for _, tc := range tests {
		c := newCanvas()
		c.SetActiveTool(NewRectangle(c))
		drag(c, tc.from, tc.to)

		ids := c.Figures()
		if len(ids) != 1 {
			t.Fatalf("%s: expected 1 figure, got %d", tc.name, len(ids))
		}
		if got := c.Figure(ids[0]).Bounds(); got != image.Rect(10, 10, 110, 60) {
			t.Errorf("%s: bounds %v", tc.name, got)
		}
	}
}

func TestFilledRectangleTool(t *testing.T) {
	c := newCanvas()
	c.SetActiveTool(NewFilledRectangle(c))
	drag(c, image.Pt(0, 0), image.Pt(40, 30))
	f := c.Figure(c.Figures()[0])
	if f.Kind != drawing.KindFilledRectangle {
		t.Errorf("kind %s", f.Kind)
	}
}

func TestToolsIgnoreOtherButtons(t *testing.T) {
	c := newCanvas()
	c.SetActiveTool(NewRectangle(c))
	c.PointerDown(drawing.ButtonRight, image.Pt(0, 0))
	c.PointerMove(drawing.ButtonRight, image.Pt(50, 50))
	c.PointerUp(drawing.ButtonRight, image.Pt(50, 50))
	if n := len(c.Figures()); n != 0 {
		t.Errorf("right button created %d figures", n)
	}
}

func TestConstructionMoveWithoutPressIsIgnored(t *testing.T) {
	c := newCanvas()
	c.SetActiveTool(NewRectangle(c))
	c.PointerMove(drawing.ButtonLeft, image.Pt(50, 50))
	if n := len(c.Figures()); n != 0 {
		t.Errorf("move without press created %d figures", n)
	}
}

func TestLineToolKeepsLongLines(t *testing.T) {
	c := newCanvas()
	c.SetActiveTool(NewLine(c))
	drag(c, image.Pt(0, 0), image.Pt(100, 0))
	ids := c.Figures()
	if len(ids) != 1 {
		t.Fatalf("expected 1 line, got %d", len(ids))
	}
	if !c.Touches(ids[0], image.Pt(50, 0)) {
		t.Error("line should touch (50,0)")
	}
}

func TestLineToolDiscardsShortLines(t *testing.T) {
	c := newCanvas()
	c.SetActiveTool(NewLine(c))
	drag(c, image.Pt(0, 0), image.Pt(6, 6))
	if n := len(c.Figures()); n != 0 {
		t.Errorf("short line kept, %d figures", n)
	}
	drag(c, image.Pt(0, 0), image.Pt(10, 0))
	if n := len(c.Figures()); n != 1 {
		t.Errorf("line of length 10 should be kept, %d figures", n)
	}
}

// ── Polygon ──

func TestPolygonToolTriangle(t *testing.T) {
	c := newCanvas()
	tool := NewPolygon(c, 3)
	c.SetActiveTool(tool)

	click(c, image.Pt(0, 0))
	c.PointerMove(drawing.ButtonNone, image.Pt(50, 0))
	click(c, image.Pt(50, 0))
	c.PointerMove(drawing.ButtonNone, image.Pt(50, 50))
	click(c, image.Pt(50, 50))

	id := tool.Figure()
	if id != drawing.NoFigure {
		t.Fatal("polygon should be finished after the third click")
	}
	ids := c.Figures()
	if len(ids) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(ids))
	}
	want := []image.Point{{0, 0}, {50, 0}, {50, 50}}
	if got := c.Figure(ids[0]).Points(); !slices.Equal(got, want) {
		t.Errorf("vertices %v, want %v", got, want)
	}
}

func TestPolygonToolFloatingVertex(t *testing.T) {
	c := newCanvas()
	tool := NewPolygon(c, 5)
	c.SetActiveTool(tool)

	click(c, image.Pt(10, 10))
	if n := c.CountPoints(tool.Figure()); n != 2 {
		t.Fatalf("first click should place the start twice, got %d points", n)
	}
	c.PointerMove(drawing.ButtonNone, image.Pt(40, 20))
	pts := c.Figure(tool.Figure()).Points()
	if pts[1] != image.Pt(40, 20) {
		t.Errorf("floating vertex %v, want (40,20)", pts[1])
	}
}

func TestPolygonToolSetSides(t *testing.T) {
	c := newCanvas()
	tool := NewPolygon(c, 3)
	if err := tool.SetSides(2); !errors.Is(err, ErrInvalidSides) {
		t.Errorf("expected ErrInvalidSides, got %v", err)
	}
	if err := tool.SetSides(4); err != nil {
		t.Fatal(err)
	}
	c.SetActiveTool(tool)
	for _, p := range []image.Point{{0, 0}, {40, 0}, {40, 40}, {0, 40}} {
		c.PointerMove(drawing.ButtonNone, p)
		click(c, p)
	}
	if tool.Figure() != drawing.NoFigure {
		t.Error("quadrilateral should be finished after four clicks")
	}
	if n := c.CountPoints(c.Figures()[0]); n != 4 {
		t.Errorf("expected 4 vertices, got %d", n)
	}
}

func TestPolygonToolDeactivationAbandons(t *testing.T) {
	c := newCanvas()
	tool := NewPolygon(c, 3)
	c.SetActiveTool(tool)
	click(c, image.Pt(0, 0))
	c.SetActiveTool(NewSelection(c))
	if tool.Figure() != drawing.NoFigure {
		t.Error("deactivated polygon tool should drop its figure")
	}
}

// ── Selection ──

func TestSelectionClickSelectsAndRaises(t *testing.T) {
	c := newCanvas()
	a := rect(t, c, 0, 0, 50, 50)
	b := rect(t, c, 200, 0, 50, 50)
	c.SetActiveTool(NewSelection(c))

	click(c, image.Pt(0, 25))
	if got := c.SelectedFigures(); !slices.Equal(got, []drawing.FigureID{a}) {
		t.Errorf("selected %v, want [%d]", got, a)
	}
	if got := c.Figures(); !slices.Equal(got, []drawing.FigureID{b, a}) {
		t.Errorf("paint order %v, want A on top", got)
	}

	click(c, image.Pt(400, 400))
	if len(c.SelectedFigures()) != 0 {
		t.Error("clicking empty canvas should clear the selection")
	}
}

func TestSelectionDragMovesFigure(t *testing.T) {
	c := newCanvas()
	a := rect(t, c, 0, 0, 50, 50)
	c.SetActiveTool(NewSelection(c))

	drag(c, image.Pt(50, 25), image.Pt(60, 35))
	if got := c.Figure(a).Location(); got != image.Pt(10, 10) {
		t.Errorf("location %v, want (10,10)", got)
	}
}

func TestSelectionDragHandleReshapes(t *testing.T) {
	c := newCanvas()
	a := rect(t, c, 0, 0, 50, 50)
	c.SetActiveTool(NewSelection(c))

	click(c, image.Pt(0, 25))
	drag(c, image.Pt(50, 50), image.Pt(120, 80))
	if got := c.Figure(a).Bounds(); got != image.Rect(0, 0, 120, 80) {
		t.Errorf("bounds %v, want (0,0)-(120,80)", got)
	}
}

func TestSelectionRubberBand(t *testing.T) {
	c := newCanvas()
	a := rect(t, c, 0, 0, 50, 50)
	rect(t, c, 80, 80, 50, 50)
	c.SetActiveTool(NewSelection(c))

	c.PointerDown(drawing.ButtonLeft, image.Pt(-10, -10))
	c.PointerMove(drawing.ButtonLeft, image.Pt(100, 100))
	if got := c.SelectionRectangle(); got != image.Rect(-10, -10, 100, 100) {
		t.Errorf("band %v", got)
	}
	c.PointerUp(drawing.ButtonLeft, image.Pt(100, 100))

	if got := c.SelectedFigures(); !slices.Equal(got, []drawing.FigureID{a}) {
		t.Errorf("selected %v, want [%d]", got, a)
	}
	if c.SelectionRectangle() != (image.Rectangle{}) {
		t.Error("band should be cleared on release")
	}
}

func TestSelectionConnectorDrag(t *testing.T) {
	c := newCanvas()
	a := rect(t, c, 0, 0, 50, 50)
	b := rect(t, c, 200, 0, 50, 50)
	c.SetActiveTool(NewSelection(c))

	click(c, image.Pt(0, 25))
	// center and connector share (25,25); the connector is the later handle
	drag(c, image.Pt(25, 25), image.Pt(200, 25))

	var line drawing.FigureID = drawing.NoFigure
	for _, id := range c.Figures() {
		if c.Figure(id).Kind == drawing.KindConnectingLine {
			line = id
		}
	}
	if line == drawing.NoFigure {
		t.Fatal("expected a connecting line")
	}
	f := c.Figure(line)
	if f.StartFigure() != a || f.EndFigure() != b {
		t.Errorf("line #%d→#%d, want #%d→#%d", f.StartFigure(), f.EndFigure(), a, b)
	}
	if got := c.Figure(a).Location(); got != image.Pt(0, 0) {
		t.Errorf("dragging the connector moved A to %v", got)
	}
}

func TestActivationClearsSelection(t *testing.T) {
	c := newCanvas()
	a := rect(t, c, 0, 0, 50, 50)
	sel := NewSelection(c)
	c.SetActiveTool(sel)
	_ = c.SetSelected(a, true)

	c.SetActiveTool(sel)
	if !c.Figure(a).Selected() {
		t.Error("activating the selection tool must keep the selection")
	}
	c.SetActiveTool(NewRectangle(c))
	if c.Figure(a).Selected() {
		t.Error("activating a construction tool must clear the selection")
	}
}

// ── Bindings ──

func TestBindingErrors(t *testing.T) {
	c := newCanvas()
	if err := (&Binding{Name: "x", Tool: NewSelection(c)}).Activate(); !errors.Is(err, ErrNotBound) {
		t.Errorf("missing canvas: %v", err)
	}
	if err := (&Binding{Name: "x", Canvas: c}).Activate(); !errors.Is(err, ErrNotBound) {
		t.Errorf("missing tool: %v", err)
	}
	if err := (&Binding{Name: "x"}).SetSides(4); !errors.Is(err, ErrNotBound) {
		t.Errorf("SetSides without tool: %v", err)
	}
	sel := &Binding{Name: "Select", Canvas: c, Tool: NewSelection(c)}
	if err := sel.SetSides(4); !errors.Is(err, ErrWrongTool) {
		t.Errorf("SetSides on selection: %v", err)
	}
}

func TestDefaultPalette(t *testing.T) {
	c := newCanvas()
	palette := DefaultPalette(c)
	var names []string
	for _, b := range palette {
		names = append(names, b.Name)
	}
	want := []string{"Select", "Line", "Rectangle", "Filled Rectangle", "Triangle", "Pentagon", "N-gon"}
	if !slices.Equal(names, want) {
		t.Errorf("palette %v", names)
	}

	ngon := palette[len(palette)-1]
	if err := ngon.SetSides(7); err != nil {
		t.Fatal(err)
	}
	if ngon.Sides() != 7 {
		t.Errorf("sides %d, want 7", ngon.Sides())
	}
	if err := palette[2].Activate(); err != nil {
		t.Fatal(err)
	}
	if !palette[2].Active() || palette[0].Active() {
		t.Error("only the rectangle binding should be active")
	}
}
