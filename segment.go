package pathgeom

import (
	"fmt"
	"iter"
	"slices"
)

type SegmentKind int

const (
	// A line from the current point to Points[0].
	LineSegment SegmentKind = iota + 1
	// A quadratic Bézier with control point Points[0] ending at Points[1].
	QuadSegment
	// A cubic Bézier with control points Points[0] and Points[1] ending at
	// Points[2].
	CubicSegment
	// An elliptical arc ending at Points[0], described by Arc.
	ArcSegment
	// A chain of lines through Points.
	PolyLineSegment
	// A chain of quadratic Béziers, two points per piece.
	PolyQuadSegment
	// A chain of cubic Béziers, three points per piece.
	PolyCubicSegment
)

func (k SegmentKind) String() string {
	switch k {
	case LineSegment:
		return "Line"
	case QuadSegment:
		return "Quad"
	case CubicSegment:
		return "Cubic"
	case ArcSegment:
		return "Arc"
	case PolyLineSegment:
		return "PolyLine"
	case PolyQuadSegment:
		return "PolyQuad"
	case PolyCubicSegment:
		return "PolyCubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// groupSize returns the number of points that make up one piece of a segment
// of this kind.
func (k SegmentKind) groupSize() int {
	switch k {
	case QuadSegment, PolyQuadSegment:
		return 2
	case CubicSegment, PolyCubicSegment:
		return 3
	default:
		return 1
	}
}

// ArcParams describes the ellipse an [ArcSegment] lies on. Rotation is the
// rotation of the ellipse's x axis in degrees.
type ArcParams struct {
	Radii          Size
	Rotation       float64
	LargeArc       bool
	SweepClockwise bool
}

// Segment is one piece of a [Figure]. It is a tagged union over all segment
// kinds; Kind determines how Points (and, for arcs, Arc) are interpreted. A
// segment starts at the current point of its figure, which is the end point of
// the previous segment or the figure's start.
type Segment struct {
	Kind   SegmentKind
	Points []Point
	Arc    ArcParams
}

func LineTo(pt Point) Segment {
	return Segment{Kind: LineSegment, Points: []Point{pt}}
}

func QuadTo(p1, p2 Point) Segment {
	return Segment{Kind: QuadSegment, Points: []Point{p1, p2}}
}

func CubicTo(p1, p2, p3 Point) Segment {
	return Segment{Kind: CubicSegment, Points: []Point{p1, p2, p3}}
}

// ArcTo returns an elliptical arc to end. rotation is in degrees.
func ArcTo(end Point, radii Size, rotation float64, largeArc, sweepClockwise bool) Segment {
	return Segment{
		Kind:   ArcSegment,
		Points: []Point{end},
		Arc: ArcParams{
			Radii:          radii,
			Rotation:       rotation,
			LargeArc:       largeArc,
			SweepClockwise: sweepClockwise,
		},
	}
}

// PolyLineTo returns a chain of lines through pts. pts must not be empty.
func PolyLineTo(pts ...Point) (Segment, error) {
	return newPoly("PolyLineTo", PolyLineSegment, pts)
}

// PolyQuadTo returns a chain of quadratic Béziers. The number of points must be
// a positive multiple of two.
func PolyQuadTo(pts ...Point) (Segment, error) {
	return newPoly("PolyQuadTo", PolyQuadSegment, pts)
}

// PolyCubicTo returns a chain of cubic Béziers. The number of points must be a
// positive multiple of three.
func PolyCubicTo(pts ...Point) (Segment, error) {
	return newPoly("PolyCubicTo", PolyCubicSegment, pts)
}

func newPoly(fn string, kind SegmentKind, pts []Point) (Segment, error) {
	g := kind.groupSize()
	if len(pts) == 0 || len(pts)%g != 0 {
		return Segment{}, argErrorf(fn, "got %d points, want a positive multiple of %d", len(pts), g)
	}
	return Segment{Kind: kind, Points: slices.Clone(pts)}, nil
}

func (s Segment) String() string {
	if s.Kind == ArcSegment {
		return fmt.Sprintf("%s(%v, %v)", s.Kind, s.Points, s.Arc)
	}
	return fmt.Sprintf("%s(%v)", s.Kind, s.Points)
}

// PointCount returns the number of defining points of the segment. Trailing
// points of poly Béziers that don't complete a piece are not counted.
func (s Segment) PointCount() int {
	if s.Kind < LineSegment || s.Kind > PolyCubicSegment {
		return 0
	}
	g := s.Kind.groupSize()
	return len(s.Points) / g * g
}

// Point returns the segment's defining point with the given index. An index
// of -1 returns the last point, which is where the segment ends.
func (s Segment) Point(index int) (Point, error) {
	n := s.PointCount()
	if n == 0 || index < -1 || index >= n {
		return Point{}, argErrorf("Segment.Point", "index %d out of range for %s segment with %d points", index, s.Kind, n)
	}
	if index == -1 {
		index = n - 1
	}
	return s.Points[index], nil
}

// End returns the point the segment ends at, or start if the segment has no
// points.
func (s Segment) End(start Point) Point {
	if n := s.PointCount(); n > 0 {
		return s.Points[n-1]
	}
	return start
}

// SimpleSegments lowers the segment, starting at start, to lines and cubic
// Béziers. Quadratics are degree-elevated and arcs converted with
// [ArcToBezier]; an arc whose end points coincide yields nothing.
func (s Segment) SimpleSegments(start Point) iter.Seq[SimpleSegment] {
	return func(yield func(SimpleSegment) bool) {
		pts := s.Points[:s.PointCount()]
		switch s.Kind {
		case LineSegment, PolyLineSegment:
			p0 := start
			for _, p := range pts {
				if !yield(Line{p0, p}.Seg()) {
					return
				}
				p0 = p
			}
		case QuadSegment, PolyQuadSegment:
			p0 := start
			for i := 0; i < len(pts); i += 2 {
				if !yield(QuadBez{p0, pts[i], pts[i+1]}.Seg()) {
					return
				}
				p0 = pts[i+1]
			}
		case CubicSegment, PolyCubicSegment:
			p0 := start
			for i := 0; i < len(pts); i += 3 {
				if !yield(CubicBez{p0, pts[i], pts[i+1], pts[i+2]}.Seg()) {
					return
				}
				p0 = pts[i+2]
			}
		case ArcSegment:
			if len(pts) == 0 {
				return
			}
			for seg := range s.toBezier(start).Segments(start) {
				if !yield(seg) {
					return
				}
			}
		}
	}
}

func (s Segment) toBezier(start Point) ArcApprox {
	a := s.Arc
	return ArcToBezier(start, a.Radii, a.Rotation, a.LargeArc, a.SweepClockwise, s.Points[0])
}

// AppendFlattened appends the polyline approximating the segment to dst and
// returns the extended slice. The start point is not appended, so that
// consecutive segments chain without duplicates. Lines and polylines
// contribute their points verbatim.
func (s Segment) AppendFlattened(dst []Point, start Point, tolerance float64) []Point {
	for seg := range s.SimpleSegments(start) {
		dst = seg.Flatten(dst, tolerance)
	}
	return dst
}

// AppendFlattenedParams is like [Segment.AppendFlattened] but also records a
// parameter for every point. Parameters are local to the line or cubic piece
// that produced the point and restart at each piece.
func (s Segment) AppendFlattenedParams(dst []Point, params []float64, start Point, tolerance float64) ([]Point, []float64) {
	for seg := range s.SimpleSegments(start) {
		dst, params = seg.FlattenParams(dst, params, tolerance)
	}
	return dst, params
}

// Transform applies aff to the segment. Arcs are not closed under affine
// transforms and are lowered to a poly cubic (or a line) first, which is why
// the segment's start point is needed.
func (s Segment) Transform(start Point, aff Affine) Segment {
	if s.Kind == ArcSegment {
		if len(s.Points) == 0 {
			return Segment{Kind: PolyCubicSegment}
		}
		approx := s.toBezier(start)
		switch approx.Kind {
		case ArcLine:
			return LineTo(approx.Points[0].Transform(aff))
		case ArcNone:
			return Segment{Kind: PolyCubicSegment}
		}
		s = Segment{Kind: PolyCubicSegment, Points: approx.Points}
	}
	out := Segment{Kind: s.Kind, Points: make([]Point, len(s.Points)), Arc: s.Arc}
	for i, p := range s.Points {
		out.Points[i] = p.Transform(aff)
	}
	return out
}
