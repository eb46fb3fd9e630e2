// Package geom provides the integer geometry kernel used by the figure
// model: rectangles built from corners, segment/point proximity, proportional
// interpolation and the rectangle algebra behind damage regions.
//
// Points and sizes are image.Point values; rectangles are image.Rectangle
// values whose Min is the origin and whose Dx/Dy is the extent.
package geom

import (
	"image"
	"math"
)

// DefaultRadius is the stock hit-test tolerance in world units.
const DefaultRadius = 3

// RectAt returns the rectangle with origin loc and extent size.
func RectAt(loc, size image.Point) image.Rectangle {
	return image.Rectangle{Min: loc, Max: loc.Add(size)}
}

// RectFromPoints returns the normalized rectangle spanned by two arbitrary
// corners. The result is the same for (a, b) and (b, a).
func RectFromPoints(a, b image.Point) image.Rectangle {
	loc := image.Pt(min(a.X, b.X), min(a.Y, b.Y))
	size := image.Pt(abs(a.X-b.X), abs(a.Y-b.Y))
	return RectAt(loc, size)
}

// Size returns the extent of r.
func Size(r image.Rectangle) image.Point {
	return image.Pt(r.Dx(), r.Dy())
}

// LineMidpoint returns the midpoint of the segment (start, end), rounding
// towards the smaller coordinate.
func LineMidpoint(start, end image.Point) image.Point {
	return image.Pt(
		min(start.X, end.X)+abs(end.X-start.X)/2,
		min(start.Y, end.Y)+abs(end.Y-start.Y)/2,
	)
}

// LinePointIntersect reports whether a circle of the given radius centered
// at center touches the segment (start, end).
//
// The center is projected onto the segment's line. If the projection falls
// before start the distance to start is used, after end the distance to end,
// and otherwise the perpendicular distance. A zero-length segment behaves
// like a point and touches within the radius. All products are computed in
// int64 so squared deltas of large coordinates cannot overflow.
func LinePointIntersect(start, end, center image.Point, radius int) bool {
	x0, y0 := int64(center.X), int64(center.Y)
	x1, y1 := int64(start.X), int64(start.Y)
	x2, y2 := int64(end.X), int64(end.Y)
	r2 := Square(int64(radius))

	p := Dot(x1-x2, y1-y2, x0-x1, y0-y1)
	q := Dot(x2-x1, y2-y1, x0-x2, y0-y2)

	switch {
	case start == end:
		return r2 > Pythagoras(x1-x0, y1-y0)
	case p > 0: // start is the closest point
		return r2 > Pythagoras(x1-x0, y1-y0)
	case q > 0: // end is the closest point
		return r2 > Pythagoras(x2-x0, y2-y0)
	default:
		return r2*Pythagoras(x1-x2, y1-y2) > Square(Cross(x1-x0, y1-y0, x2-x1, y2-y1))
	}
}

// Prorata interpolates linearly from u towards v by the fraction s and
// rounds to the nearest integer (halves round up).
func Prorata(u, v int, s float64) int {
	return u + int(math.Floor(0.5+s*float64(v-u)))
}

// Square returns x*x.
func Square(x int64) int64 { return x * x }

// Pythagoras returns the squared length of the vector (x, y).
func Pythagoras(x, y int64) int64 { return Square(x) + Square(y) }

// Dot returns the dot product of (x, y) and (z, w).
func Dot(x, y, z, w int64) int64 { return x*z + y*w }

// Cross returns the scalar cross product of (x, y) and (z, w).
func Cross(x, y, z, w int64) int64 { return x*w - z*y }

// Length returns the integer (truncated) length of the segment (a, b).
func Length(a, b image.Point) int {
	return int(math.Sqrt(float64(Pythagoras(int64(b.X-a.X), int64(b.Y-a.Y)))))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
