package editorui

import (
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/figdraw/pkg/drawing"
)

var buttons = map[tea.MouseButton]drawing.Button{
	tea.MouseLeft:   drawing.ButtonLeft,
	tea.MouseMiddle: drawing.ButtonMiddle,
	tea.MouseRight:  drawing.ButtonRight,
}

// worldPoint maps a screen cell inside the canvas region to the world
// point at the cell's center.
func (m Model) worldPoint(x, y int, canvasRect image.Rectangle) image.Point {
	cell := image.Pt(x, y).Sub(canvasRect.Min)
	return m.term.Grid.WorldOf(cell)
}

// handleMouse forwards mouse events inside the canvas to the active tool.
func (m Model) handleMouse(msg tea.MouseMsg, canvasRect image.Rectangle) Model {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	if m.sidesOpen || !image.Pt(mouse.X, mouse.Y).In(canvasRect) {
		return m
	}
	p := m.worldPoint(mouse.X, mouse.Y, canvasRect)
	b := buttons[mouse.Button]

	switch msg.(type) {
	case tea.MouseClickMsg:
		m.canvas.PointerDown(b, p)
	case tea.MouseMotionMsg:
		m.canvas.PointerMove(b, p)
	case tea.MouseReleaseMsg:
		// releases do not always carry the button
		if b == drawing.ButtonNone {
			b = drawing.ButtonLeft
		}
		m.canvas.PointerUp(b, p)
	}
	return m
}
