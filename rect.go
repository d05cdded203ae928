package pathgeom

import (
	"fmt"
	"math"
)

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the right and
// down (for positive sizes) from the origin. Width and height are ensured to be
// non-negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", r.X0, r.Y0, r.X1, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns the origin of the rectangle.
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions. Negative
// amounts shrink it; a rectangle never shrinks past zero width or height, and
// collapses onto its center instead.
func (r Rect) Inflate(width, height float64) Rect {
	r = r.Abs()
	c := r.Center()
	out := Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
	if out.X0 > out.X1 {
		out.X0, out.X1 = c.X, c.X
	}
	if out.Y0 > out.Y1 {
		out.Y0, out.Y1 = c.Y, c.Y
	}
	return out
}

// Resize scales the rectangle's width and height by ratio, keeping its center.
func (r Rect) Resize(ratio float64) Rect {
	c := r.Center()
	w := r.Width() * ratio * 0.5
	h := r.Height() * ratio * 0.5
	return Rect{
		X0: c.X - w,
		Y0: c.Y - h,
		X1: c.X + w,
		Y1: c.Y + h,
	}
}

// RelativePoint maps a point in the unit square onto the rectangle, so that
// (0, 0) is the origin and (1, 1) the opposite corner.
func (r Rect) RelativePoint(rel Point) Point {
	return Point{
		X: r.X0 + rel.X*r.Width(),
		Y: r.Y0 + rel.Y*r.Height(),
	}
}

// ArcPoint returns the point on the ellipse inscribed in r at the given angle
// in degrees. 0° is the top center, and angles increase clockwise for a
// y-down coordinate system.
func (r Rect) ArcPoint(degrees float64) Point {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return r.RelativePoint(Pt(0.5+0.5*sin, 0.5-0.5*cos))
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// Stretch describes how content is fit into a layout rectangle.
type Stretch int

const (
	// StretchNone keeps the content's natural size. Geometry sources treat it
	// like StretchFill.
	StretchNone Stretch = iota
	// StretchFill fills the rectangle, ignoring the aspect ratio.
	StretchFill
	// StretchUniform fits the largest rectangle of the given aspect ratio
	// inside the bounds.
	StretchUniform
	// StretchUniformToFill covers the bounds with the smallest rectangle of the
	// given aspect ratio.
	StretchUniformToFill
)

func (s Stretch) String() string {
	switch s {
	case StretchNone:
		return "None"
	case StretchFill:
		return "Fill"
	case StretchUniform:
		return "Uniform"
	case StretchUniformToFill:
		return "UniformToFill"
	default:
		return fmt.Sprintf("Stretch(%d)", int(s))
	}
}

// StretchBounds returns the rectangle that content with the given aspect ratio
// occupies when stretched into bounds. The result is centered on bounds.
func StretchBounds(bounds Rect, stretch Stretch, aspect Size) Rect {
	if stretch == StretchNone {
		stretch = StretchFill
	}
	if stretch == StretchFill || !aspect.HasValidArea() {
		return bounds
	}
	c := bounds.Center()
	w, h := bounds.Width(), bounds.Height()
	narrow := aspect.Width*h < w*aspect.Height
	switch stretch {
	case StretchUniform:
		if narrow {
			w = h * aspect.Width / aspect.Height
		} else {
			h = w * aspect.Height / aspect.Width
		}
	case StretchUniformToFill:
		if narrow {
			h = w * aspect.Height / aspect.Width
		} else {
			w = h * aspect.Width / aspect.Height
		}
	}
	return Rect{
		X0: c.X - w/2,
		Y0: c.Y - h/2,
		X1: c.X + w/2,
		Y1: c.Y + h/2,
	}
}
