package pathgeom

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/jinzhu/copier"
)

type FillRule int

const (
	// A point is inside if a ray from it crosses the outline an odd number of
	// times.
	EvenOdd FillRule = iota
	// A point is inside if the outline winds around it a non-zero number of
	// times.
	Nonzero
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "EvenOdd"
	case Nonzero:
		return "Nonzero"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Figure is one contiguous sub-path: a start point and the segments that
// follow it.
type Figure struct {
	Start    Point
	Segments []Segment
	Closed   bool
	Filled   bool
}

// All iterates over the figure's segments, together with the point each
// segment starts at.
func (f *Figure) All() iter.Seq2[Point, Segment] {
	return func(yield func(Point, Segment) bool) {
		cur := f.Start
		for _, s := range f.Segments {
			if !yield(cur, s) {
				return
			}
			cur = s.End(cur)
		}
	}
}

// LastPoint returns the point the figure's last segment ends at, or the start
// point if the figure has no segments.
func (f *Figure) LastPoint() Point {
	cur := f.Start
	for _, s := range f.Segments {
		cur = s.End(cur)
	}
	return cur
}

// SimpleSegments iterates over the lowered segments of the figure. For closed
// figures this includes the chord back to the start point, unless the figure
// already ends there.
func (f *Figure) SimpleSegments() iter.Seq[SimpleSegment] {
	return func(yield func(SimpleSegment) bool) {
		last := f.Start
		for start, s := range f.All() {
			for seg := range s.SimpleSegments(start) {
				if !yield(seg) {
					return
				}
				last = seg.End()
			}
		}
		if f.Closed && last != f.Start {
			yield(Line{last, f.Start}.Seg())
		}
	}
}

// Flatten returns the polyline approximating the figure. A closed figure's
// polyline ends with its first point.
func (f *Figure) Flatten(tolerance float64) []Point {
	return f.AppendFlattened(nil, tolerance)
}

// AppendFlattened is like [Figure.Flatten] but appends to dst.
func (f *Figure) AppendFlattened(dst []Point, tolerance float64) []Point {
	first := len(dst)
	dst = append(dst, f.Start)
	for start, s := range f.All() {
		dst = s.AppendFlattened(dst, start, tolerance)
	}
	if f.Closed && dst[len(dst)-1] != dst[first] {
		dst = append(dst, f.Start)
	}
	return dst
}

func (f *Figure) Transform(aff Affine) Figure {
	out := Figure{
		Start:    f.Start.Transform(aff),
		Segments: make([]Segment, 0, len(f.Segments)),
		Closed:   f.Closed,
		Filled:   f.Filled,
	}
	for start, s := range f.All() {
		out.Segments = append(out.Segments, s.Transform(start, aff))
	}
	return out
}

// PolylineFigure returns a figure starting at points[0] with a single poly
// line through the remaining points. It panics if points is empty.
func PolylineFigure(points []Point, closed, filled bool) Figure {
	f := Figure{Start: points[0], Closed: closed, Filled: filled}
	if len(points) > 1 {
		f.Segments = []Segment{{Kind: PolyLineSegment, Points: slices.Clone(points[1:])}}
	}
	return f
}

// Geometry is a set of figures sharing a fill rule.
type Geometry struct {
	FillRule FillRule
	Figures  []Figure
}

// PolylineGeometry returns a geometry consisting of a single polyline figure.
// An empty point list results in a geometry without figures.
func PolylineGeometry(points []Point, closed, filled bool) *Geometry {
	g := &Geometry{}
	if len(points) > 0 {
		g.Figures = []Figure{PolylineFigure(points, closed, filled)}
	}
	return g
}

// Flatten returns one polyline per figure.
func (g *Geometry) Flatten(tolerance float64) [][]Point {
	out := make([][]Point, len(g.Figures))
	for i := range g.Figures {
		out[i] = g.Figures[i].Flatten(tolerance)
	}
	return out
}

// Bounds returns the smallest rectangle enclosing every figure. The bounds of
// a geometry without figures are the zero rectangle.
func (g *Geometry) Bounds() Rect {
	var (
		out  Rect
		seen bool
	)
	add := func(r Rect) {
		if !seen {
			out = r
			seen = true
		} else {
			out = out.Union(r)
		}
	}
	for i := range g.Figures {
		f := &g.Figures[i]
		add(NewRectFromPoints(f.Start, f.Start))
		for seg := range f.SimpleSegments() {
			if seg.Kind == SimpleLine {
				add(NewRectFromPoints(seg.P0, seg.P1))
			} else {
				add(seg.Cubic().BoundingBox())
			}
		}
	}
	return out
}

// Transform returns a transformed copy of the geometry. Arcs are converted to
// cubic Béziers.
func (g *Geometry) Transform(aff Affine) *Geometry {
	out := &Geometry{FillRule: g.FillRule, Figures: make([]Figure, len(g.Figures))}
	for i := range g.Figures {
		out.Figures[i] = g.Figures[i].Transform(aff)
	}
	return out
}

// Equal reports whether two geometries have the same fill rule and identical
// figures. Two nil geometries are equal.
func (g *Geometry) Equal(o *Geometry) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.FillRule != o.FillRule {
		return false
	}
	return slices.EqualFunc(g.Figures, o.Figures, func(a, b Figure) bool {
		if a.Start != b.Start || a.Closed != b.Closed || a.Filled != b.Filled {
			return false
		}
		return slices.EqualFunc(a.Segments, b.Segments, func(x, y Segment) bool {
			return x.Kind == y.Kind && x.Arc == y.Arc && slices.Equal(x.Points, y.Points)
		})
	})
}

// Clone returns a deep copy of the geometry.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{}
	if err := copier.CopyWithOption(out, g, copier.Option{DeepCopy: true}); err != nil {
		Logger().Error("pathgeom.Geometry.Clone", "err", err)
	}
	return out
}

// RectGeometry returns a closed figure outlining r. Non-zero radii round the
// corners with elliptical arcs; radii are clamped to half the rectangle's
// size. It returns nil if r has no area.
func RectGeometry(r Rect, radiusX, radiusY float64) *Geometry {
	r = r.Abs()
	if !r.Size().HasValidArea() {
		return nil
	}
	f := Figure{Closed: true, Filled: true}
	if radiusX*radiusY == 0 {
		f.Start = Pt(r.X0, r.Y0)
		f.Segments = []Segment{{
			Kind:   PolyLineSegment,
			Points: []Point{Pt(r.X1, r.Y0), Pt(r.X1, r.Y1), Pt(r.X0, r.Y1)},
		}}
		return &Geometry{Figures: []Figure{f}}
	}

	w2, h2 := r.Width()/2, r.Height()/2
	edgeX := math.Abs(radiusX) < w2
	edgeY := math.Abs(radiusY) < h2
	rx := min(math.Abs(radiusX), w2)
	ry := min(math.Abs(radiusY), h2)
	corner := func(end Point) Segment {
		return ArcTo(end, Sz(rx, ry), 0, false, true)
	}

	f.Start = Pt(r.X0, r.Y0+ry)
	f.Segments = append(f.Segments, corner(Pt(r.X0+rx, r.Y0)))
	if edgeX {
		f.Segments = append(f.Segments, LineTo(Pt(r.X1-rx, r.Y0)))
	}
	f.Segments = append(f.Segments, corner(Pt(r.X1, r.Y0+ry)))
	if edgeY {
		f.Segments = append(f.Segments, LineTo(Pt(r.X1, r.Y1-ry)))
	}
	f.Segments = append(f.Segments, corner(Pt(r.X1-rx, r.Y1)))
	if edgeX {
		f.Segments = append(f.Segments, LineTo(Pt(r.X0+rx, r.Y1)))
	}
	f.Segments = append(f.Segments, corner(Pt(r.X0, r.Y1-ry)))
	return &Geometry{Figures: []Figure{f}}
}

// EllipseGeometry returns a closed figure made of two half-ellipse arcs, from
// the top of the ellipse to its bottom and back. It returns nil if either
// radius is zero.
func EllipseGeometry(center Point, radiusX, radiusY float64) *Geometry {
	rx, ry := math.Abs(radiusX), math.Abs(radiusY)
	if !Sz(2*rx, 2*ry).HasValidArea() {
		return nil
	}
	top := Pt(center.X, center.Y-ry)
	bottom := Pt(center.X, center.Y+ry)
	f := Figure{
		Start:  top,
		Closed: true,
		Filled: true,
		Segments: []Segment{
			ArcTo(bottom, Sz(rx, ry), 0, true, true),
			ArcTo(top, Sz(rx, ry), 0, true, true),
		},
	}
	return &Geometry{Figures: []Figure{f}}
}

// LineGeometry returns an open, unfilled figure with a single line. It returns
// nil if the end points coincide.
func LineGeometry(p0, p1 Point) *Geometry {
	if p0 == p1 {
		return nil
	}
	f := Figure{Start: p0, Segments: []Segment{LineTo(p1)}}
	return &Geometry{Figures: []Figure{f}}
}
