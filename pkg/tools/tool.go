// Package tools implements the pointer-driven editing tools that a canvas
// forwards events to: selection and dragging, rectangle and line
// construction, and click-by-click polygon construction. A Binding connects
// a tool to the widget that activates it.
package tools

import (
	"image"

	"github.com/wesen/figdraw/pkg/drawing"
)

// Base is the shared part of every tool: the canvas it edits and its
// activation flag. It ignores all pointer events.
type Base struct {
	canvas *drawing.Canvas
	active bool
}

// Canvas returns the canvas the tool edits.
func (b *Base) Canvas() *drawing.Canvas { return b.canvas }

// Active reports whether the tool currently receives events.
func (b *Base) Active() bool { return b.active }

// SetActive records the activation flag. Activating a tool clears the
// canvas selection.
func (b *Base) SetActive(active bool) {
	b.active = active
	if active {
		b.canvas.ClearSelected()
	}
}

func (b *Base) PointerDown(drawing.Button, image.Point) {}
func (b *Base) PointerMove(drawing.Button, image.Point) {}
func (b *Base) PointerUp(drawing.Button, image.Point)   {}

// check logs a failed canvas operation; pointer callbacks cannot return
// errors.
func check(op string, err error) {
	if err != nil {
		drawing.Logger().Warn("tool operation failed", "op", op, "err", err)
	}
}
