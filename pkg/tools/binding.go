package tools

import (
	"errors"
	"fmt"

	"github.com/wesen/figdraw/pkg/drawing"
)

var (
	// ErrNotBound is returned when a binding is used without a canvas or
	// a tool.
	ErrNotBound = errors.New("binding has no canvas or tool")
	// ErrWrongTool is returned when a polygon parameter is set on a
	// binding whose tool does not build polygons.
	ErrWrongTool = errors.New("binding is not bound to a polygon tool")
	// ErrInvalidSides is returned for vertex counts below MinSides.
	ErrInvalidSides = errors.New("polygon needs at least 3 sides")
)

// Binding connects a palette widget to a canvas and the tool it activates.
type Binding struct {
	Name   string
	Key    string // keyboard shortcut, may be empty
	Canvas *drawing.Canvas
	Tool   drawing.Tool
}

// Activate makes the bound tool the canvas's active tool.
func (b *Binding) Activate() error {
	if b.Canvas == nil {
		return fmt.Errorf("%w: %q has no canvas", ErrNotBound, b.Name)
	}
	if b.Tool == nil {
		return fmt.Errorf("%w: %q has no tool", ErrNotBound, b.Name)
	}
	b.Canvas.SetActiveTool(b.Tool)
	drawing.Logger().Debug("tool activated", "tool", b.Name)
	return nil
}

// Active reports whether the bound tool is the canvas's active tool.
func (b *Binding) Active() bool {
	return b.Canvas != nil && b.Tool != nil && b.Canvas.ActiveTool() == b.Tool
}

// SetSides forwards a vertex count to the bound polygon tool.
func (b *Binding) SetSides(n int) error {
	if b.Tool == nil {
		return fmt.Errorf("%w: %q has no tool", ErrNotBound, b.Name)
	}
	p, ok := b.Tool.(*Polygon)
	if !ok {
		return fmt.Errorf("%w: %q", ErrWrongTool, b.Name)
	}
	return p.SetSides(n)
}

// Sides returns the vertex count of the bound polygon tool, or 0.
func (b *Binding) Sides() int {
	if p, ok := b.Tool.(*Polygon); ok {
		return p.Sides()
	}
	return 0
}

// NgonSides lists the vertex counts offered for the n-gon tool.
var NgonSides = []int{3, 4, 5, 6, 7, 8}

// DefaultPalette returns the stock tool set bound to c, selection first.
func DefaultPalette(c *drawing.Canvas) []*Binding {
	return []*Binding{
		{Name: "Select", Key: "s", Canvas: c, Tool: NewSelection(c)},
		{Name: "Line", Key: "l", Canvas: c, Tool: NewLine(c)},
		{Name: "Rectangle", Key: "r", Canvas: c, Tool: NewRectangle(c)},
		{Name: "Filled Rectangle", Key: "f", Canvas: c, Tool: NewFilledRectangle(c)},
		{Name: "Triangle", Key: "t", Canvas: c, Tool: NewPolygon(c, 3)},
		{Name: "Pentagon", Key: "g", Canvas: c, Tool: NewPolygon(c, 5)},
		{Name: "N-gon", Key: "n", Canvas: c, Tool: NewPolygon(c, NgonSides[0])},
	}
}
