// Package drawing is the figure model of the editor: figures, locators and
// handles held in an arena, the dependency edges that keep connecting
// lines attached to the figures they join, and the damage regions that
// tell a surface what to redraw.
//
// All state is owned by a Canvas and mutated synchronously by its methods.
// A Canvas is not safe for concurrent use.
package drawing

import (
	"fmt"
	"image"

	"github.com/wesen/figdraw/pkg/geom"
	"github.com/wesen/figdraw/pkg/graphmodel"
)

// Dependency labels a dependency edge by the end of the connecting line
// that follows the source figure.
type Dependency int

const (
	DependsStart Dependency = iota
	DependsEnd
)

// Canvas owns the figure arena, the paint order, the selection rectangle,
// the active tool and the accumulated damage.
type Canvas struct {
	opts      Options
	figures   *graphmodel.Graph[*Figure, Dependency]
	selection image.Rectangle
	tool      Tool

	damage   image.Rectangle
	damaged  bool
	onDamage DamageFunc
}

// NewCanvas creates an empty canvas. Zero option fields take defaults.
func NewCanvas(opts Options) *Canvas {
	return &Canvas{
		opts:    opts.withDefaults(),
		figures: graphmodel.New[*Figure, Dependency](),
	}
}

// Options returns the effective canvas options.
func (c *Canvas) Options() Options { return c.opts }

// ── Arena access ──

func (c *Canvas) lookup(id FigureID) *Figure {
	if n := c.figures.Node(int(id)); n != nil {
		return n.Data
	}
	return nil
}

func (c *Canvas) fig(id FigureID) (*Figure, error) {
	if f := c.lookup(id); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: #%d", ErrNoFigure, id)
}

// Figure returns the figure with the given ID, or nil. The result is a
// read-only view; mutate it through the canvas.
func (c *Canvas) Figure(id FigureID) *Figure {
	return c.lookup(id)
}

// Figures returns the IDs of the figures on the canvas in paint order,
// bottom first.
func (c *Canvas) Figures() []FigureID {
	var ids []FigureID
	for _, n := range c.figures.Nodes() {
		if n.Data.added {
			ids = append(ids, n.Data.ID)
		}
	}
	return ids
}

// Dependents returns the figures that follow id, in edge order.
func (c *Canvas) Dependents(id FigureID) []FigureID {
	var ids []FigureID
	for _, e := range c.figures.OutEdges(int(id)) {
		ids = append(ids, FigureID(e.ToID))
	}
	return ids
}

// ── Propagation ──

// mutate applies change to f and then re-establishes its bounds, updates
// every dependent depth-first and repaints old ∪ new expanded bounds.
func (c *Canvas) mutate(f *Figure, change func()) {
	old := c.expandedBounds(f)
	change()
	c.recompute(f)
	c.notify(f.ID)
	c.Repaint(geom.Union(old, c.expandedBounds(f)))
}

// notify updates the dependents of id. The dependency graph is acyclic, so
// the recursion terminates.
func (c *Canvas) notify(id FigureID) {
	for _, e := range c.figures.OutEdges(int(id)) {
		if dep := c.lookup(FigureID(e.ToID)); dep != nil {
			c.mutate(dep, func() {})
		}
	}
}

// ── Membership ──

// AddFigure puts a created figure on top of the paint order and repaints
// its bounds. Adding a figure twice has no effect.
func (c *Canvas) AddFigure(id FigureID) error {
	f, err := c.fig(id)
	if err != nil {
		return err
	}
	if f.added {
		return nil
	}
	f.added = true
	c.figures.Raise(int(id))
	c.Repaint(f.Bounds())
	Logger().Debug("figure added", "id", id, "kind", f.Kind)
	return nil
}

// RemoveFigure deletes a figure from the canvas and the arena and repaints
// its expanded bounds. Connecting lines that follow it are removed too.
func (c *Canvas) RemoveFigure(id FigureID) error {
	f, err := c.fig(id)
	if err != nil {
		return err
	}
	dependents := c.Dependents(id)
	c.Repaint(c.expandedBounds(f))
	c.figures.RemoveNode(int(id))
	Logger().Debug("figure removed", "id", id, "kind", f.Kind, "dependents", len(dependents))
	for _, dep := range dependents {
		if c.lookup(dep) != nil {
			if err := c.RemoveFigure(dep); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindFigureAtPoint returns the figure that touches p, or NoFigure. The
// scan runs from the top of the paint order unless the canvas was
// configured with HitBottomMost.
func (c *Canvas) FindFigureAtPoint(p image.Point) FigureID {
	n := c.figures.Find(c.opts.HitOrder == HitTopMost, func(f *Figure) bool {
		return f.added && c.touches(f, p)
	})
	if n == nil {
		return NoFigure
	}
	return n.Data.ID
}

// SetTopFigure moves a figure to the front of the paint order.
func (c *Canvas) SetTopFigure(id FigureID) error {
	f, err := c.fig(id)
	if err != nil {
		return err
	}
	c.figures.Raise(int(id))
	c.Repaint(f.Bounds())
	return nil
}

// ── Selection ──

// SetSelected sets a figure's selection flag and repaints its expanded
// bounds. Other figures are unaffected.
func (c *Canvas) SetSelected(id FigureID, selected bool) error {
	f, err := c.fig(id)
	if err != nil {
		return err
	}
	f.selected = selected
	c.Repaint(c.expandedBounds(f))
	return nil
}

// ClearSelected deselects every figure on the canvas.
func (c *Canvas) ClearSelected() {
	for _, id := range c.Figures() {
		if f := c.lookup(id); f.selected {
			_ = c.SetSelected(id, false)
		}
	}
}

// SelectedFigures returns the selected figures in paint order.
func (c *Canvas) SelectedFigures() []FigureID {
	var ids []FigureID
	for _, id := range c.Figures() {
		if c.lookup(id).selected {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetSelectionRectangle stores the rubber-band rectangle. A non-zero
// rectangle selects exactly the figures whose bounds it fully contains;
// the zero rectangle clears the band and leaves selection alone.
func (c *Canvas) SetSelectionRectangle(r image.Rectangle) {
	c.selection = r
	if r == (image.Rectangle{}) {
		return
	}
	for _, id := range c.Figures() {
		f := c.lookup(id)
		if in := geom.Contains(r, f.Bounds()); in != f.selected {
			_ = c.SetSelected(id, in)
		}
	}
}

// SelectionRectangle returns the current rubber-band rectangle.
func (c *Canvas) SelectionRectangle() image.Rectangle { return c.selection }

// ── Damage ──

// OnDamage installs a callback that receives every repaint request.
func (c *Canvas) OnDamage(fn DamageFunc) { c.onDamage = fn }

// Repaint records r as needing redraw and forwards it to the damage
// callback.
func (c *Canvas) Repaint(r image.Rectangle) {
	if c.damaged {
		c.damage = geom.Union(c.damage, r)
	} else {
		c.damage, c.damaged = r, true
	}
	if c.onDamage != nil {
		c.onDamage(r)
	}
}

// Damage returns the union of all regions repainted since the last
// TakeDamage, and whether there were any.
func (c *Canvas) Damage() (image.Rectangle, bool) { return c.damage, c.damaged }

// TakeDamage returns the accumulated damage and resets it.
func (c *Canvas) TakeDamage() (image.Rectangle, bool) {
	r, ok := c.damage, c.damaged
	c.damage, c.damaged = image.Rectangle{}, false
	return r, ok
}

// ── Painting ──

// Paint draws the selection band, every figure in paint order with the
// handles of selected figures, and the band's outline on top.
func (c *Canvas) Paint(s Surface) {
	band := c.selection != (image.Rectangle{})
	if band {
		s.FillRectangle(c.selection, StyleFillLight)
	}
	for _, id := range c.Figures() {
		f := c.lookup(id)
		c.paintFigure(s, f)
		if f.selected {
			for _, h := range f.handles {
				c.paintHandle(s, h)
			}
		}
	}
	if band {
		s.DrawRectangle(c.selection, StyleOutlineSelected)
	}
}

// ── Queries ──

// Touches reports whether p hits the figure.
func (c *Canvas) Touches(id FigureID, p image.Point) bool {
	f := c.lookup(id)
	return f != nil && c.touches(f, p)
}

// ExpandedBounds returns the figure's bounds inflated to enclose its
// handles, or the zero rectangle for an unknown ID.
func (c *Canvas) ExpandedBounds(id FigureID) image.Rectangle {
	f := c.lookup(id)
	if f == nil {
		return image.Rectangle{}
	}
	return c.expandedBounds(f)
}

// Describe returns a one-line summary of a figure.
func (c *Canvas) Describe(id FigureID) string {
	f := c.lookup(id)
	if f == nil {
		return fmt.Sprintf("#%d (gone)", id)
	}
	b := f.Bounds()
	switch f.Kind {
	case KindLine:
		return fmt.Sprintf("%s #%d %v→%v len %d", f.Kind, id, f.points[0], f.points[1],
			geom.Length(f.points[0], f.points[1]))
	case KindPolygon:
		return fmt.Sprintf("%s #%d %d points at %v %dx%d", f.Kind, id, len(f.points), b.Min, b.Dx(), b.Dy())
	case KindConnectingLine:
		if f.end == NoFigure {
			return fmt.Sprintf("%s #%d #%d→%v", f.Kind, id, f.start, f.points[0])
		}
		return fmt.Sprintf("%s #%d #%d→#%d", f.Kind, id, f.start, f.end)
	}
	return fmt.Sprintf("%s #%d at %v %dx%d", f.Kind, id, b.Min, b.Dx(), b.Dy())
}
