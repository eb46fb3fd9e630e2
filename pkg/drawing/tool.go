package drawing

import "image"

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "none"
}

// Tool consumes pointer events forwarded by the canvas. A tool is told
// when it becomes active and when it stops being active.
type Tool interface {
	SetActive(active bool)
	PointerDown(b Button, p image.Point)
	PointerMove(b Button, p image.Point)
	PointerUp(b Button, p image.Point)
}

// SetActiveTool deactivates the current tool and activates t, which
// receives every later pointer event.
func (c *Canvas) SetActiveTool(t Tool) {
	if c.tool != nil {
		c.tool.SetActive(false)
	}
	c.tool = t
	if t != nil {
		t.SetActive(true)
	}
}

// ClearActiveTool deactivates the current tool. Pointer events are dropped
// until another tool is activated.
func (c *Canvas) ClearActiveTool() {
	c.SetActiveTool(nil)
}

// ActiveTool returns the tool receiving pointer events, or nil.
func (c *Canvas) ActiveTool() Tool { return c.tool }

// PointerDown forwards a button press to the active tool.
func (c *Canvas) PointerDown(b Button, p image.Point) {
	if c.tool != nil {
		c.tool.PointerDown(b, p)
	}
}

// PointerMove forwards pointer motion to the active tool.
func (c *Canvas) PointerMove(b Button, p image.Point) {
	if c.tool != nil {
		c.tool.PointerMove(b, p)
	}
}

// PointerUp forwards a button release to the active tool.
func (c *Canvas) PointerUp(b Button, p image.Point) {
	if c.tool != nil {
		c.tool.PointerUp(b, p)
	}
}
