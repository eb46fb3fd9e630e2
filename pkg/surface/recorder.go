package surface

import (
	"fmt"
	"image"
	"strings"

	"github.com/wesen/figdraw/pkg/drawing"
)

// Call is one recorded primitive.
type Call struct {
	Op     string
	Rect   image.Rectangle
	Points []image.Point
	Style  drawing.Style
}

func (c Call) String() string {
	switch c.Op {
	case "line":
		return fmt.Sprintf("line %v-%v %s", c.Points[0], c.Points[1], c.Style)
	case "polygon":
		parts := make([]string, len(c.Points))
		for i, p := range c.Points {
			parts[i] = p.String()
		}
		return fmt.Sprintf("polygon [%s] %s", strings.Join(parts, " "), c.Style)
	default:
		return fmt.Sprintf("%s %v %s", c.Op, c.Rect, c.Style)
	}
}

// Recorder is a drawing.Surface that keeps every call it receives.
type Recorder struct {
	Calls []Call
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Ops returns the operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// String lists the calls one per line.
func (r *Recorder) String() string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Recorder) DrawLine(p1, p2 image.Point, s drawing.Style) {
	r.Calls = append(r.Calls, Call{Op: "line", Points: []image.Point{p1, p2}, Style: s})
}

func (r *Recorder) DrawRectangle(rc image.Rectangle, s drawing.Style) {
	r.Calls = append(r.Calls, Call{Op: "rect", Rect: rc, Style: s})
}

func (r *Recorder) FillRectangle(rc image.Rectangle, s drawing.Style) {
	r.Calls = append(r.Calls, Call{Op: "fill-rect", Rect: rc, Style: s})
}

func (r *Recorder) DrawPolygon(pts []image.Point, s drawing.Style) {
	r.Calls = append(r.Calls, Call{Op: "polygon", Points: append([]image.Point(nil), pts...), Style: s})
}

func (r *Recorder) FillEllipse(rc image.Rectangle, s drawing.Style) {
	r.Calls = append(r.Calls, Call{Op: "ellipse", Rect: rc, Style: s})
}
