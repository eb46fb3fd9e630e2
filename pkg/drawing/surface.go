package drawing

import "image"

// Style is one of the fixed pens and brushes the model paints with.
type Style int

const (
	StyleOutline         Style = iota // black pen
	StyleOutlineSelected              // red pen
	StyleFillLight                    // light gray brush
	StyleFill                         // black brush
	StyleFillSelected                 // red brush
)

var styleNames = [...]string{"outline", "outline-selected", "fill-light", "fill", "fill-selected"}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "style?"
}

// Surface receives the drawing primitives produced by Canvas.Paint.
type Surface interface {
	DrawLine(p1, p2 image.Point, s Style)
	DrawRectangle(r image.Rectangle, s Style)
	FillRectangle(r image.Rectangle, s Style)
	DrawPolygon(pts []image.Point, s Style)
	FillEllipse(r image.Rectangle, s Style)
}

// DamageFunc is called with every region the model asks to repaint.
type DamageFunc func(r image.Rectangle)
