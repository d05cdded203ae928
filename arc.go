package pathgeom

import (
	"fmt"
	"iter"
	"math"
)

type ArcKind int

const (
	// The arc's start and end points coincide; nothing is drawn.
	ArcNone ArcKind = iota + 1
	// At least one radius collapsed; the arc is a straight line to its end
	// point.
	ArcLine
	// The arc is approximated by a single cubic Bézier.
	ArcCubic
	// The arc is approximated by two to four cubic Béziers.
	ArcPolyCubic
)

func (k ArcKind) String() string {
	switch k {
	case ArcNone:
		return "ArcNone"
	case ArcLine:
		return "ArcLine"
	case ArcCubic:
		return "ArcCubic"
	case ArcPolyCubic:
		return "ArcPolyCubic"
	default:
		return fmt.Sprintf("ArcKind(%d)", int(k))
	}
}

// ArcApprox is the result of [ArcToBezier].
//
// For ArcLine, Points holds the end point. For ArcCubic and ArcPolyCubic it
// holds the control points and end point of each piece, three per piece, with
// the previous piece's end point (or the arc's start point) acting as the
// piece's start point.
type ArcApprox struct {
	Kind   ArcKind
	Points []Point
}

// Segments returns the approximation as simple segments starting at start.
func (a ArcApprox) Segments(start Point) iter.Seq[SimpleSegment] {
	return func(yield func(SimpleSegment) bool) {
		switch a.Kind {
		case ArcLine:
			yield(Line{start, a.Points[0]}.Seg())
		case ArcCubic, ArcPolyCubic:
			p0 := start
			for i := 0; i+2 < len(a.Points); i += 3 {
				c := CubicBez{p0, a.Points[i], a.Points[i+1], a.Points[i+2]}
				if !yield(c.Seg()) {
					return
				}
				p0 = c.P3
			}
		}
	}
}

const arcFuzz = 1e-6

// ArcToBezier approximates the elliptical arc from start to end with cubic
// Béziers, using the endpoint parameterization of SVG and XAML arcs. rotation
// is the x-axis rotation of the ellipse in degrees. With sweepClockwise set,
// the arc is drawn in the direction of positive angles, which is clockwise in a
// y-down coordinate system.
//
// Radii that are too small to span the chord are scaled up uniformly until the
// arc becomes a half ellipse. Negative radii are treated as positive.
func ArcToBezier(start Point, radii Size, rotation float64, largeArc, sweepClockwise bool, end Point) ArcApprox {
	const fuzz2 = arcFuzz * arcFuzz

	hx := 0.5 * (end.X - start.X)
	hy := 0.5 * (end.Y - start.Y)
	half2 := hx*hx + hy*hy
	if half2 < fuzz2 {
		return ArcApprox{Kind: ArcNone}
	}
	rx, okx := acceptRadius(half2, fuzz2, radii.Width)
	ry, oky := acceptRadius(half2, fuzz2, radii.Height)
	if !okx || !oky {
		return ArcApprox{Kind: ArcLine, Points: []Point{end}}
	}

	cos, sin := 1.0, 0.0
	if math.Abs(rotation) >= arcFuzz {
		sin, cos = math.Sincos(-rotation * math.Pi / 180)
		hx, hy = hx*cos-hy*sin, hx*sin+hy*cos
	}

	// Work in the frame where the ellipse is the unit circle.
	hx /= rx
	hy /= ry
	d := hx*hx + hy*hy
	var cx, cy float64
	scaled := false
	if d > 1 {
		// The radii are too small; grow them until the chord is a diameter.
		s := math.Sqrt(d)
		rx *= s
		ry *= s
		hx /= s
		hy /= s
		scaled = true
	} else {
		k := math.Sqrt((1 - d) / d)
		if largeArc != sweepClockwise {
			cx, cy = -k*hy, k*hx
		} else {
			cx, cy = k*hy, -k*hx
		}
	}
	p := Vec(-hx-cx, -hy-cy)
	pEnd := Vec(hx-cx, hy-cy)

	m := Affine{
		N0: cos * rx,
		N1: -sin * rx,
		N2: sin * ry,
		N3: cos * ry,
		N4: 0.5 * (end.X + start.X),
		N5: 0.5 * (end.Y + start.Y),
	}
	if !scaled {
		m.N4 += m.N0*cx + m.N2*cy
		m.N5 += m.N1*cx + m.N3*cy
	}

	cosArc, sinArc, pieces := arcAngle(p, pEnd, largeArc, sweepClockwise)
	dist := bezierDistance(cosArc)
	if !sweepClockwise {
		dist = -dist
	}

	pts := make([]Point, 0, 3*pieces)
	rhs := Vec(-dist*p.Y, dist*p.X)
	for i := 1; i < pieces; i++ {
		p3 := Vec(p.X*cosArc-p.Y*sinArc, p.X*sinArc+p.Y*cosArc)
		p4 := Vec(-dist*p3.Y, dist*p3.X)
		pts = append(pts,
			Point(p.Add(rhs)).Transform(m),
			Point(p3.Sub(p4)).Transform(m),
			Point(p3).Transform(m))
		p = p3
		rhs = p4
	}
	p4 := Vec(-dist*pEnd.Y, dist*pEnd.X)
	pts = append(pts,
		Point(p.Add(rhs)).Transform(m),
		Point(pEnd.Sub(p4)).Transform(m),
		end)

	if pieces == 1 {
		return ArcApprox{Kind: ArcCubic, Points: pts}
	}
	return ArcApprox{Kind: ArcPolyCubic, Points: pts}
}

// acceptRadius rejects radii that are negligible compared to the half chord.
func acceptRadius(half2, fuzz2, r float64) (float64, bool) {
	ok := !(r*r <= half2*fuzz2)
	if ok && r < 0 {
		r = -r
	}
	return r, ok
}

// arcAngle splits the arc between two points on the unit circle into pieces
// spanning at most 90° each and returns the cosine and sine of a piece's angle.
func arcAngle(start, end Vec2, largeArc, sweepClockwise bool) (cos, sin float64, pieces int) {
	cos = start.Dot(end)
	sin = start.Cross(end)
	if cos >= 0 {
		if !largeArc {
			return cos, sin, 1
		}
		pieces = 4
	} else if largeArc {
		pieces = 3
	} else {
		pieces = 2
	}
	a := math.Atan2(sin, cos)
	if sweepClockwise {
		if a < 0 {
			a += 2 * math.Pi
		}
	} else if a > 0 {
		a -= 2 * math.Pi
	}
	a /= float64(pieces)
	sin, cos = math.Sincos(a)
	return cos, sin, pieces
}

// bezierDistance returns the distance from the end points of a unit circular
// arc to the control points of the cubic approximating it, given the dot
// product of the arc's radius vectors. The cubic agrees with the arc at its end
// points, end tangents and midpoint.
func bezierDistance(dot float64) float64 {
	const r = 1.0
	r2 := r * r
	a := 0.5 * (r2 + dot)
	if a < 0 {
		return 0
	}
	h := r2 - a
	if h <= 0 {
		return 0
	}
	sq := math.Sqrt(h)
	n := 4 * (r - math.Sqrt(a)) / 3
	if n <= sq*1e-6 {
		return 0
	}
	return n / sq
}
