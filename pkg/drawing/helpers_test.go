package drawing

import (
	"fmt"
	"image"
	"testing"

	"github.com/wesen/figdraw/pkg/geom"
)

// recorder is a Surface that logs each primitive as a string.
type recorder struct {
	calls []string
}

func (r *recorder) DrawLine(p1, p2 image.Point, s Style) {
	r.calls = append(r.calls, fmt.Sprintf("line %v %v %s", p1, p2, s))
}

func (r *recorder) DrawRectangle(b image.Rectangle, s Style) {
	r.calls = append(r.calls, fmt.Sprintf("rect %v %s", b, s))
}

func (r *recorder) FillRectangle(b image.Rectangle, s Style) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v %s", b, s))
}

func (r *recorder) DrawPolygon(pts []image.Point, s Style) {
	r.calls = append(r.calls, fmt.Sprintf("poly %v %s", pts, s))
}

func (r *recorder) FillEllipse(b image.Rectangle, s Style) {
	r.calls = append(r.calls, fmt.Sprintf("ellipse %v %s", b, s))
}

func newTestCanvas() *Canvas {
	return NewCanvas(Options{})
}

func addRect(t *testing.T, c *Canvas, x, y, w, h int) FigureID {
	t.Helper()
	id := c.NewRectangle(image.Pt(x, y), image.Pt(w, h))
	if err := c.AddFigure(id); err != nil {
		t.Fatalf("AddFigure: %v", err)
	}
	return id
}

func handleOf(t *testing.T, c *Canvas, id FigureID, kind LocatorKind) *Handle {
	t.Helper()
	for _, h := range c.Figure(id).Handles() {
		if h.Locator.Kind == kind && h.Kind == HandlePlain {
			return h
		}
	}
	t.Fatalf("figure #%d has no %s handle", id, kind)
	return nil
}

func connectorOf(t *testing.T, c *Canvas, id FigureID) *Handle {
	t.Helper()
	for _, h := range c.Figure(id).Handles() {
		if h.Kind == HandleConnector {
			return h
		}
	}
	t.Fatalf("figure #%d has no connector", id)
	return nil
}

// checkInvariant asserts that the cached bounds agree with the live ones.
func checkInvariant(t *testing.T, c *Canvas, id FigureID) {
	t.Helper()
	f := c.Figure(id)
	if f == nil {
		t.Fatalf("figure #%d missing", id)
	}
	if got, want := f.Bounds(), c.liveBounds(f); got != want {
		t.Errorf("#%d %s: cached bounds %v, live bounds %v", id, f.Kind, got, want)
	}
	if f.Bounds() != geom.RectAt(f.Location(), f.Size()) {
		t.Errorf("#%d: bounds disagree with location/size", id)
	}
}
