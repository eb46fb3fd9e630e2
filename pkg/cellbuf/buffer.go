// Package cellbuf provides a 2D character buffer with per-cell styling
// and run-merged Lipgloss rendering.
//
// Each cell holds a rune and a StyleKey. At render time the caller
// provides a map[StyleKey]lipgloss.Style, so the buffer knows nothing
// about colors. A clip rectangle restricts writes, which lets a caller
// repaint only a damaged region of a persistent buffer.
//
// All runes are assumed to be single-width.
package cellbuf

import "image"

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]

	clip image.Rectangle
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: defaultStyle}
		}
		b.Cells[y] = row
	}
	b.clip = b.Bounds()
	return b
}

// Bounds returns the full buffer rectangle in cell coordinates.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// Clip returns the current clip rectangle.
func (b *Buffer) Clip() image.Rectangle {
	return b.clip
}

// SetClip restricts subsequent writes to r intersected with the buffer.
func (b *Buffer) SetClip(r image.Rectangle) {
	b.clip = r.Intersect(b.Bounds())
}

// ClearClip makes the whole buffer writable again.
func (b *Buffer) ClearClip() {
	b.clip = b.Bounds()
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Writes outside the buffer or
// the clip rectangle are silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if image.Pt(x, y).In(b.clip) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// At returns the cell at (x, y), or a zero Cell outside the buffer.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.Cells[y][x]
}

// Fill resets every cell inside the clip to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	b.ClearRect(b.clip, style)
}

// ClearRect resets the cells of r (clipped) to spaces with the given style.
func (b *Buffer) ClearRect(r image.Rectangle, style StyleKey) {
	r = r.Intersect(b.clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}
