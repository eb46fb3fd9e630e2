package drawing

import (
	"image"

	"github.com/wesen/figdraw/pkg/geom"
)

// HitOrder selects which figure wins when several touch a point.
type HitOrder int

const (
	// HitTopMost scans from the front of the paint order.
	HitTopMost HitOrder = iota
	// HitBottomMost scans from the back of the paint order.
	HitBottomMost
)

func (o HitOrder) String() string {
	if o == HitBottomMost {
		return "bottom"
	}
	return "top"
}

// Options tunes the geometry of a Canvas. Zero fields take the defaults.
type Options struct {
	// MinSize is the smallest extent a reshaping handle may produce.
	// A reshape must leave each affected dimension strictly larger.
	MinSize image.Point
	// HandleSize is the width and height of a handle's hit box.
	HandleSize image.Point
	// TouchRadius is the error radius for edge and segment hit tests.
	TouchRadius int
	HitOrder    HitOrder
}

const (
	defaultMinSize     = 20
	defaultHandleSize  = 8
	defaultTouchRadius = geom.DefaultRadius

	// MinLineLength is the length below which the line tool discards a
	// freshly drawn line.
	MinLineLength = 10
)

// DefaultOptions returns the stock canvas geometry.
func DefaultOptions() Options {
	return Options{
		MinSize:     image.Pt(defaultMinSize, defaultMinSize),
		HandleSize:  image.Pt(defaultHandleSize, defaultHandleSize),
		TouchRadius: defaultTouchRadius,
		HitOrder:    HitTopMost,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinSize.X <= 0 {
		o.MinSize.X = d.MinSize.X
	}
	if o.MinSize.Y <= 0 {
		o.MinSize.Y = d.MinSize.Y
	}
	if o.HandleSize.X <= 0 {
		o.HandleSize.X = d.HandleSize.X
	}
	if o.HandleSize.Y <= 0 {
		o.HandleSize.Y = d.HandleSize.Y
	}
	if o.TouchRadius <= 0 {
		o.TouchRadius = d.TouchRadius
	}
	return o
}
