package drawing

import (
	"image"

	"github.com/wesen/figdraw/pkg/geom"
)

// HandleKind is the closed set of handle behaviours.
type HandleKind int

const (
	// HandlePlain moves its locator when dragged.
	HandlePlain HandleKind = iota
	// HandleConnector spawns a connecting line from its owner when
	// selected and binds it to whatever figure it is released over.
	HandleConnector
)

func (k HandleKind) String() string {
	if k == HandleConnector {
		return "connector"
	}
	return "plain"
}

// Handle is a fixed-size glyph bound to a locator of its owning figure.
type Handle struct {
	Kind    HandleKind
	Locator Locator

	selected bool
	line     FigureID // connecting line spawned by a selected connector
}

func newHandle(kind HandleKind, l Locator) *Handle {
	return &Handle{Kind: kind, Locator: l, line: NoFigure}
}

// Owner returns the figure the handle belongs to.
func (h *Handle) Owner() FigureID { return h.Locator.Figure }

// Selected reports whether the handle is being dragged.
func (h *Handle) Selected() bool { return h.selected }

// Line returns the connecting line a selected connector is dragging, or
// NoFigure.
func (h *Handle) Line() FigureID { return h.line }

// HandleLocation returns the live position of the handle's locator.
func (c *Canvas) HandleLocation(h *Handle) (image.Point, error) {
	return c.Locate(h.Locator)
}

// HandleBounds returns the handle's hit box centred on its locator.
func (c *Canvas) HandleBounds(h *Handle) image.Rectangle {
	f := c.lookup(h.Owner())
	if f == nil {
		return image.Rectangle{}
	}
	hs := c.opts.HandleSize
	p := c.locate(f, h.Locator)
	return geom.RectAt(image.Pt(p.X-hs.X/2, p.Y-hs.Y/2), hs)
}

// HandleTouches reports whether p is inside the handle's hit box. The box
// is closed on all four sides.
func (c *Canvas) HandleTouches(h *Handle, p image.Point) bool {
	f := c.lookup(h.Owner())
	if f == nil {
		return false
	}
	hs := c.opts.HandleSize
	l := c.locate(f, h.Locator)
	return abs(p.X-l.X) <= hs.X/2 && abs(p.Y-l.Y) <= hs.Y/2
}

// SetHandleSelected flips the handle's selection flag and repaints it.
//
// Selecting a connector creates a connecting line from the owner to the
// connector's position. Deselecting it looks up the figure under the
// line's free end: over nothing or over the owner the line is removed,
// otherwise the line is bound to that figure.
func (c *Canvas) SetHandleSelected(h *Handle, selected bool) error {
	if _, err := c.fig(h.Owner()); err != nil {
		return err
	}
	h.selected = selected
	c.Repaint(geom.Inflate(c.HandleBounds(h), 1, 1))
	if h.Kind != HandleConnector {
		return nil
	}
	if selected {
		return c.spawnConnection(h)
	}
	return c.resolveConnection(h)
}

func (c *Canvas) spawnConnection(h *Handle) error {
	p, err := c.HandleLocation(h)
	if err != nil {
		return err
	}
	line, err := c.NewConnectingLine(h.Owner(), p)
	if err != nil {
		return err
	}
	h.line = line
	return c.AddFigure(line)
}

func (c *Canvas) resolveConnection(h *Handle) error {
	line := h.line
	h.line = NoFigure
	f := c.lookup(line)
	if f == nil {
		return nil
	}
	target := c.FindFigureAtPoint(f.points[0])
	if target == NoFigure || target == h.Owner() {
		Logger().Debug("connection discarded", "line", line, "target", target)
		return c.RemoveFigure(line)
	}
	if err := c.SetEndFigure(line, target); err != nil {
		Logger().Debug("connection rejected", "line", line, "target", target, "err", err)
		return c.RemoveFigure(line)
	}
	Logger().Debug("connection bound", "line", line, "start", h.Owner(), "end", target)
	return nil
}

// SetHandleLocation drags the handle to p. A plain handle moves its
// locator; a connector leaves its owner in place and moves the free end of
// the line it spawned.
func (c *Canvas) SetHandleLocation(h *Handle, p image.Point) error {
	if h.Kind == HandleConnector {
		if h.line == NoFigure {
			return nil
		}
		return c.SetEndLocation(h.line, p)
	}
	old := c.HandleBounds(h)
	if err := c.SetLocatorLocation(h.Locator, p); err != nil {
		return err
	}
	c.Repaint(geom.Inflate(geom.Union(old, c.HandleBounds(h)), 1, 1))
	return nil
}

func (c *Canvas) paintHandle(s Surface, h *Handle) {
	b := c.HandleBounds(h)
	switch {
	case h.Kind == HandleConnector && h.selected:
		s.FillEllipse(b, StyleFillSelected)
	case h.Kind == HandleConnector:
		s.FillEllipse(b, StyleFill)
	case h.selected:
		s.DrawRectangle(b, StyleOutlineSelected)
	default:
		s.DrawRectangle(b, StyleOutline)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
