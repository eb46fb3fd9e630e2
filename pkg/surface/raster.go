package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/wesen/figdraw/pkg/drawing"
)

var (
	_ drawing.Surface = (*Raster)(nil)
	_ drawing.Surface = (*Terminal)(nil)
	_ drawing.Surface = (*Recorder)(nil)
)

// ErrEmptyCanvas is returned when there is nothing to render.
var ErrEmptyCanvas = errors.New("canvas has no figures")

var rasterColors = map[drawing.Style]color.Color{
	drawing.StyleOutline:         color.Black,
	drawing.StyleOutlineSelected: color.RGBA{R: 0xff, A: 0xff},
	drawing.StyleFillLight:       color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
	drawing.StyleFill:            color.Black,
	drawing.StyleFillSelected:    color.RGBA{R: 0xff, A: 0xff},
}

// Raster paints a canvas onto an RGBA image through a gg context.
// World coordinates are offset by the origin of the rectangle passed to
// NewRaster and multiplied by the scale.
type Raster struct {
	dc     *gg.Context
	origin image.Point
	scale  float64
}

// NewRaster creates a white image covering the world rectangle bounds.
func NewRaster(bounds image.Rectangle, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	bounds = bounds.Canon()
	w := max(1, int(float64(bounds.Dx())*scale))
	h := max(1, int(float64(bounds.Dy())*scale))
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineWidth(1.0)
	return &Raster{dc: dc, origin: bounds.Min, scale: scale}
}

// SetLabelFont loads the Go Mono face at the given size for Label.
func (r *Raster) SetLabelFont(size float64) error {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse label font: %w", err)
	}
	r.dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	return nil
}

// Label writes text with its top-left corner at world point p.
func (r *Raster) Label(p image.Point, text string) {
	x, y := r.xy(p)
	r.dc.SetColor(color.Black)
	r.dc.DrawStringAnchored(text, x, y, 0, 1)
}

func (r *Raster) xy(p image.Point) (float64, float64) {
	return float64(p.X-r.origin.X)*r.scale + 0.5, float64(p.Y-r.origin.Y)*r.scale + 0.5
}

func (r *Raster) rect(rc image.Rectangle) (x, y, w, h float64) {
	rc = rc.Canon()
	x, y = r.xy(rc.Min)
	return x, y, float64(rc.Dx()) * r.scale, float64(rc.Dy()) * r.scale
}

func (r *Raster) pen(s drawing.Style) {
	r.dc.SetColor(rasterColors[s])
}

// DrawLine implements drawing.Surface.
func (r *Raster) DrawLine(p1, p2 image.Point, s drawing.Style) {
	x1, y1 := r.xy(p1)
	x2, y2 := r.xy(p2)
	r.pen(s)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

// DrawRectangle implements drawing.Surface.
func (r *Raster) DrawRectangle(rc image.Rectangle, s drawing.Style) {
	r.pen(s)
	r.dc.DrawRectangle(r.rect(rc))
	r.dc.Stroke()
}

// FillRectangle implements drawing.Surface.
func (r *Raster) FillRectangle(rc image.Rectangle, s drawing.Style) {
	r.pen(s)
	r.dc.DrawRectangle(r.rect(rc))
	r.dc.Fill()
}

// DrawPolygon implements drawing.Surface.
func (r *Raster) DrawPolygon(pts []image.Point, s drawing.Style) {
	if len(pts) == 0 {
		return
	}
	r.pen(s)
	r.dc.MoveTo(r.xy(pts[0]))
	for _, p := range pts[1:] {
		r.dc.LineTo(r.xy(p))
	}
	r.dc.ClosePath()
	r.dc.Stroke()
}

// FillEllipse implements drawing.Surface.
func (r *Raster) FillEllipse(rc image.Rectangle, s drawing.Style) {
	x, y, w, h := r.rect(rc)
	r.pen(s)
	r.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	r.dc.Fill()
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the image as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// SavePNG writes the image as PNG to path.
func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

// SnapshotOptions controls Snapshot.
type SnapshotOptions struct {
	Scale   float64
	Padding int
	// Labels writes each figure's id next to its top-left corner.
	Labels    bool
	LabelSize float64
}

// Snapshot renders every figure on the canvas into a raster sized to the
// figures' extent plus padding.
func Snapshot(cv *drawing.Canvas, opts SnapshotOptions) (*Raster, error) {
	ids := cv.Figures()
	if len(ids) == 0 {
		return nil, fmt.Errorf("snapshot: %w", ErrEmptyCanvas)
	}
	var bounds image.Rectangle
	for i, id := range ids {
		eb := cv.ExpandedBounds(id)
		if i == 0 {
			bounds = eb
			continue
		}
		bounds = bounds.Union(eb)
	}
	bounds = bounds.Inset(-opts.Padding)
	r := NewRaster(bounds, opts.Scale)
	cv.Paint(r)
	if opts.Labels {
		size := opts.LabelSize
		if size <= 0 {
			size = 10
		}
		if err := r.SetLabelFont(size); err != nil {
			return nil, err
		}
		for _, id := range ids {
			r.Label(cv.Figure(id).Bounds().Min, fmt.Sprintf("#%d", id))
		}
	}
	return r, nil
}
