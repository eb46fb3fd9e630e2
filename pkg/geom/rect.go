package geom

import "image"

// Union returns the smallest rectangle containing both a and b.
//
// Unlike image.Rectangle.Union, an empty operand still contributes its
// origin: a zero-size rectangle at (10,10) unioned with one at (50,50)
// covers both positions.
func Union(a, b image.Rectangle) image.Rectangle {
	a, b = a.Canon(), b.Canon()
	return image.Rect(
		min(a.Min.X, b.Min.X), min(a.Min.Y, b.Min.Y),
		max(a.Max.X, b.Max.X), max(a.Max.Y, b.Max.Y),
	)
}

// Inflate grows r by dx on the left and right and by dy on the top and
// bottom. Negative values shrink it.
func Inflate(r image.Rectangle, dx, dy int) image.Rectangle {
	return image.Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}

// Contains reports whether inner lies entirely within outer. Edges may
// coincide. Empty rectangles are compared by coordinates, so a zero-size
// rectangle is contained only when its origin is inside outer.
func Contains(outer, inner image.Rectangle) bool {
	return outer.Min.X <= inner.Min.X && inner.Max.X <= outer.Max.X &&
		outer.Min.Y <= inner.Min.Y && inner.Max.Y <= outer.Max.Y
}

// ContainsPoint reports whether p lies in r, treating the left and top
// edges as inside and the right and bottom edges as outside.
func ContainsPoint(r image.Rectangle, p image.Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// ExtendWithPoint returns r grown just enough to include p. If p is
// already inside r, r is returned unchanged.
func ExtendWithPoint(r image.Rectangle, p image.Point) image.Rectangle {
	if ContainsPoint(r, p) {
		return r
	}
	return Union(r, image.Rectangle{Min: p, Max: p})
}
