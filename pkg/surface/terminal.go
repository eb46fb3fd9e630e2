package surface

import (
	"image"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/figdraw/pkg/cellbuf"
	"github.com/wesen/figdraw/pkg/drawing"
	"github.com/wesen/figdraw/pkg/drawutil"
)

// cellbuf style keys used by the terminal surface.
const (
	KeyBackground cellbuf.StyleKey = iota
	KeyGrid
	KeyOutline
	KeyOutlineSelected
	KeyFillLight
	KeyFill
	KeyFillSelected
)

func c(hex string) color.Color { return lipgloss.Color(hex) }

var canvasBG = c("#080e0b")

// DefaultStyles maps the terminal style keys to the editor palette.
func DefaultStyles() map[cellbuf.StyleKey]lipgloss.Style {
	base := lipgloss.NewStyle().Background(canvasBG)
	return map[cellbuf.StyleKey]lipgloss.Style{
		KeyBackground:      base.Foreground(c("#1a3a2a")),
		KeyGrid:            base.Foreground(c("#0e2e20")),
		KeyOutline:         base.Foreground(c("#00d4a0")),
		KeyOutlineSelected: base.Foreground(c("#ff5555")).Bold(true),
		KeyFillLight:       base.Foreground(c("#1a6a4a")),
		KeyFill:            base.Foreground(c("#00ffc8")),
		KeyFillSelected:    base.Foreground(c("#ff5555")),
	}
}

var styleKeys = map[drawing.Style]cellbuf.StyleKey{
	drawing.StyleOutline:         KeyOutline,
	drawing.StyleOutlineSelected: KeyOutlineSelected,
	drawing.StyleFillLight:       KeyFillLight,
	drawing.StyleFill:            KeyFill,
	drawing.StyleFillSelected:    KeyFillSelected,
}

var fillRunes = map[drawing.Style]rune{
	drawing.StyleFillLight:    '░',
	drawing.StyleFill:         '█',
	drawing.StyleFillSelected: '█',
}

// Terminal paints a canvas into a persistent cell buffer. Redraw only
// touches the cells covering the damaged world rectangle, so the
// buffer can be kept between frames.
type Terminal struct {
	Grid Grid
	// GridX and GridY space the background dots in cells; zero disables them.
	GridX, GridY int

	buf    *cellbuf.Buffer
	styles map[cellbuf.StyleKey]lipgloss.Style
}

// NewTerminal creates a w×h cell surface.
func NewTerminal(w, h int, grid Grid) *Terminal {
	return &Terminal{
		Grid:   grid.valid(),
		buf:    cellbuf.New(w, h, KeyBackground),
		styles: DefaultStyles(),
	}
}

// Buffer exposes the backing cell buffer.
func (t *Terminal) Buffer() *cellbuf.Buffer { return t.buf }

// Size returns the surface size in cells.
func (t *Terminal) Size() (w, h int) { return t.buf.W, t.buf.H }

// Resize replaces the buffer when the size changes. It reports whether
// a new buffer was allocated, in which case the caller must redraw
// everything.
func (t *Terminal) Resize(w, h int) bool {
	if w == t.buf.W && h == t.buf.H {
		return false
	}
	t.buf = cellbuf.New(w, h, KeyBackground)
	return true
}

// WorldBounds is the world rectangle visible through the surface.
func (t *Terminal) WorldBounds() image.Rectangle {
	return t.Grid.WorldRect(t.buf.Bounds())
}

// Redraw repaints the cells covering the world rectangle damage.
func (t *Terminal) Redraw(cv *drawing.Canvas, damage image.Rectangle) {
	cells := t.Grid.CellRect(damage)
	t.buf.SetClip(cells)
	defer t.buf.ClearClip()
	if t.buf.Clip().Empty() {
		return
	}
	t.buf.Fill(KeyBackground)
	if t.GridX > 0 && t.GridY > 0 {
		drawutil.DrawGrid(t.buf, 0, 0, t.GridX, t.GridY, KeyGrid)
	}
	cv.Paint(t)
}

// RedrawAll repaints the whole buffer.
func (t *Terminal) RedrawAll(cv *drawing.Canvas) {
	t.Redraw(cv, t.WorldBounds())
}

// Render returns the styled buffer contents.
func (t *Terminal) Render() string {
	return t.buf.Render(t.styles)
}

// String returns the buffer contents without styling.
func (t *Terminal) String() string {
	return t.buf.String()
}

func (t *Terminal) cell(p image.Point) image.Point { return t.Grid.CellOf(p) }

// DrawLine implements drawing.Surface.
func (t *Terminal) DrawLine(p1, p2 image.Point, s drawing.Style) {
	a, b := t.cell(p1), t.cell(p2)
	drawutil.DrawLine(t.buf, a.X, a.Y, b.X, b.Y, styleKeys[s])
}

// DrawRectangle implements drawing.Surface. Selected outlines are dashed.
func (t *Terminal) DrawRectangle(r image.Rectangle, s drawing.Style) {
	cells := t.Grid.CellRect(r)
	if s == drawing.StyleOutlineSelected {
		drawutil.DrawDashedRect(t.buf, cells, styleKeys[s])
		return
	}
	drawutil.DrawRect(t.buf, cells, styleKeys[s])
}

// FillRectangle implements drawing.Surface.
func (t *Terminal) FillRectangle(r image.Rectangle, s drawing.Style) {
	drawutil.FillRect(t.buf, t.Grid.CellRect(r), fillRune(s), styleKeys[s])
}

// DrawPolygon implements drawing.Surface.
func (t *Terminal) DrawPolygon(pts []image.Point, s drawing.Style) {
	cells := make([]image.Point, len(pts))
	for i, p := range pts {
		cells[i] = t.cell(p)
	}
	drawutil.DrawPolygon(t.buf, cells, styleKeys[s])
}

// FillEllipse implements drawing.Surface.
func (t *Terminal) FillEllipse(r image.Rectangle, s drawing.Style) {
	drawutil.FillEllipse(t.buf, t.Grid.CellRect(r), '●', styleKeys[s])
}

func fillRune(s drawing.Style) rune {
	if r, ok := fillRunes[s]; ok {
		return r
	}
	return '▒'
}
