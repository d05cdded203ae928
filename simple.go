package pathgeom

import (
	"fmt"
)

type SimpleKind int

const (
	// A straight line from P0 to P1.
	SimpleLine SimpleKind = iota + 1
	// A cubic Bézier with control points P0 through P3.
	SimpleCubic
)

func (k SimpleKind) String() string {
	switch k {
	case SimpleLine:
		return "SimpleLine"
	case SimpleCubic:
		return "SimpleCubic"
	default:
		return fmt.Sprintf("SimpleKind(%d)", int(k))
	}
}

// SimpleSegment is the normalized form every [Segment] lowers to: either a
// line or a cubic Bézier. For lines, P2 and P3 are unused.
type SimpleSegment struct {
	Kind SimpleKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg SimpleSegment) String() string {
	switch seg.Kind {
	case SimpleLine:
		return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
	case SimpleCubic:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		return "InvalidSimpleSegment"
	}
}

func (seg SimpleSegment) Start() Point { return seg.P0 }

func (seg SimpleSegment) End() Point {
	if seg.Kind == SimpleLine {
		return seg.P1
	}
	return seg.P3
}

// Line returns the line represented by this segment. This is only valid when
// Kind == SimpleLine.
func (seg SimpleSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic converts seg to a cubic Bézier. Lines become cubics with their control
// points at a third and two thirds of the way, which keeps the parametrization
// uniform.
func (seg SimpleSegment) Cubic() CubicBez {
	switch seg.Kind {
	case SimpleLine:
		return CubicBez{
			seg.P0,
			seg.P0.Lerp(seg.P1, 1.0/3.0),
			seg.P0.Lerp(seg.P1, 2.0/3.0),
			seg.P1,
		}
	case SimpleCubic:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg SimpleSegment) Eval(t float64) Point {
	if seg.Kind == SimpleLine {
		return seg.Line().Eval(t)
	}
	return seg.Cubic().Eval(t)
}

func (seg SimpleSegment) Transform(aff Affine) SimpleSegment {
	return SimpleSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

// Flatten appends the segment's polyline to dst, without its start point. A
// line contributes only its end point.
func (seg SimpleSegment) Flatten(dst []Point, tolerance float64) []Point {
	switch seg.Kind {
	case SimpleLine:
		return append(dst, seg.P1)
	case SimpleCubic:
		return seg.Cubic().Flatten(dst, tolerance, true)
	default:
		return dst
	}
}

// FlattenParams is like [SimpleSegment.Flatten] but also records the curve
// parameter of every appended point.
func (seg SimpleSegment) FlattenParams(dst []Point, params []float64, tolerance float64) ([]Point, []float64) {
	switch seg.Kind {
	case SimpleLine:
		return append(dst, seg.P1), append(params, 1)
	case SimpleCubic:
		return seg.Cubic().FlattenParams(dst, params, tolerance, true)
	default:
		return dst, params
	}
}
