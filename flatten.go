package pathgeom

import (
	"math"
)

// DefaultTolerance is the flattening tolerance used when a non-positive
// tolerance is requested.
const DefaultTolerance = 0.25

const (
	// A flattened cubic has at most 2^maxForwardLevel interior points. The
	// subdivision depth and the leaves' forward differencing levels share
	// this budget.
	maxForwardLevel = 20
)

func effectiveTolerance(tolerance float64) float64 {
	if !(tolerance > 0) {
		return DefaultTolerance
	}
	return tolerance
}

// Flatten appends a polyline approximating the cubic to dst and returns the
// extended slice. Every point of the curve is within roughly tolerance of the
// polyline. A non-positive tolerance is replaced by [DefaultTolerance].
//
// If skipFirst is true, the start point is not appended, which is useful when
// chaining curves that share end points. The end point is always appended.
//
// A cubic with infinite or NaN control points flattens to its end points.
func (c CubicBez) Flatten(dst []Point, tolerance float64, skipFirst bool) []Point {
	s := flattenSink{points: dst}
	flattenCubic(c, tolerance, skipFirst, &s)
	return s.points
}

// FlattenParams is like [CubicBez.Flatten] but additionally appends the curve
// parameter of every emitted point to params.
func (c CubicBez) FlattenParams(dst []Point, params []float64, tolerance float64, skipFirst bool) ([]Point, []float64) {
	s := flattenSink{points: dst, params: params, withParams: true}
	flattenCubic(c, tolerance, skipFirst, &s)
	return s.points, s.params
}

// Flatten flattens the quadratic by way of its degree-elevated cubic. See
// [CubicBez.Flatten].
func (q QuadBez) Flatten(dst []Point, tolerance float64, skipFirst bool) []Point {
	return q.Raise().Flatten(dst, tolerance, skipFirst)
}

// FlattenParams is like [QuadBez.Flatten] but also records curve parameters.
func (q QuadBez) FlattenParams(dst []Point, params []float64, tolerance float64, skipFirst bool) ([]Point, []float64) {
	return q.Raise().FlattenParams(dst, params, tolerance, skipFirst)
}

type flattenSink struct {
	points     []Point
	params     []float64
	withParams bool
}

func (s *flattenSink) add(pt Point, u float64) {
	s.points = append(s.points, pt)
	if s.withParams {
		s.params = append(s.params, u)
	}
}

func flattenCubic(c CubicBez, tolerance float64, skipFirst bool, s *flattenSink) {
	tolerance = effectiveTolerance(tolerance)
	if !skipFirst {
		s.add(c.P0, 0)
	}
	if c.IsInf() || c.IsNaN() {
		s.add(c.P3, 1)
		return
	}
	if isChordMonotone(c, tolerance*tolerance) {
		f := newAdaptiveFlattener(c, tolerance, tolerance)
		var pt Point
		var u float64
		for f.next(&pt, &u) {
			s.add(pt, u)
		}
	} else {
		x := c.P3.X - c.P2.X + c.P1.X - c.P0.X
		y := c.P3.Y - c.P2.Y + c.P1.Y - c.P0.Y
		inv := 1 / tolerance
		depth := log8(roundToUint32(math.Hypot(x, y)*inv + 0.5))
		if depth != 0 {
			depth--
		}
		maxLevel := maxForwardLevel - depth
		if depth != 0 {
			midpointSubdivision(c, depth, 0, 1, 0.75*inv, maxLevel, s)
		} else {
			forwardDifferencing(c, 0, 1, 0.75*inv, maxLevel, s)
		}
	}
	s.add(c.P3, 1)
}

// isChordMonotone reports whether both inner control points project onto the
// chord, in order.
func isChordMonotone(c CubicBez, sqTolerance float64) bool {
	chord2 := c.P0.DistanceSquared(c.P3)
	if chord2 <= sqTolerance {
		return false
	}
	chord := c.P3.Sub(c.P0)
	d1 := chord.Dot(c.P1.Sub(c.P0))
	if d1 < 0 || d1 > chord2 {
		return false
	}
	d2 := chord.Dot(c.P2.Sub(c.P0))
	if d2 < 0 || d2 > chord2 {
		return false
	}
	return d1 <= d2
}

func midpointSubdivision(c CubicBez, depth uint, left, right, invTolerance float64, maxLevel uint, s *flattenSink) {
	l, r := c.Subdivide()
	depth--
	mid := (left + right) * 0.5
	if depth != 0 {
		midpointSubdivision(l, depth, left, mid, invTolerance, maxLevel, s)
		s.add(r.P0, mid)
		midpointSubdivision(r, depth, mid, right, invTolerance, maxLevel, s)
	} else {
		forwardDifferencing(l, left, mid, invTolerance, maxLevel, s)
		s.add(r.P0, mid)
		forwardDifferencing(r, mid, right, invTolerance, maxLevel, s)
	}
}

// forwardDifferencing emits the interior points of c at 2^n evenly spaced
// parameters, where n ≤ maxLevel is chosen from the curve's deviation from its
// chord.
func forwardDifferencing(c CubicBez, left, right, invTolerance float64, maxLevel uint, s *flattenSink) {
	d1 := c.P1.Sub(c.P0)
	d2 := c.P2.Sub(c.P1)
	d3 := c.P3.Sub(c.P2)
	e1 := d2.Sub(d1)
	e2 := d3.Sub(d2)
	f := e2.Sub(e1)

	chord := c.P3.Sub(c.P0)
	length := chord.Hypot()
	var est float64
	if IsVerySmall(length) {
		est = max(0, c.P1.Distance(c.P0), c.P2.Distance(c.P0))
	} else {
		est = max(0,
			math.Abs(e1.Cross(chord)/length),
			math.Abs(e2.Cross(chord)/length))
	}

	var n uint
	if est > 0 {
		q := est * invTolerance
		if q < math.MaxInt32 {
			n = log4(uint32(q + 0.5))
		} else {
			n = log4Float(q)
		}
	}
	n = min(n, maxLevel)

	k := -int(n)
	ddx := ldexp(3*e1.X, 2*k)
	ddy := ldexp(3*e1.Y, 2*k)
	dddx := ldexp(6*f.X, 3*k)
	dddy := ldexp(6*f.Y, 3*k)
	dx := ldexp(3*d1.X, k) + ddx + dddx/6
	dy := ldexp(3*d1.Y, k) + ddy + dddy/6
	ddx = 2*ddx + dddx
	ddy = 2*ddy + dddy

	x, y := c.P0.X, c.P0.Y
	steps := 1 << n
	du := (right - left) / float64(steps)
	u := left
	for i := 1; i < steps; i++ {
		x += dx
		y += dy
		u += du
		s.add(Pt(x, y), u)
		dx += ddx
		dy += ddy
		ddx += dddx
		ddy += dddy
	}
}

// adaptiveFlattener steps along a cubic with forward differences, halving the
// step while the step's chord is not flat enough and doubling it again while a
// looser bound holds. a, b, c and d are the polynomial coefficients of the
// curve, reparametrized so that one step covers [0, 1].
type adaptiveFlattener struct {
	ax, ay float64
	bx, by float64
	cx, cy float64
	dx, dy float64

	steps      int
	level      uint
	flatness   float64
	distance   float64
	param      float64
	paramDelta float64
}

func newAdaptiveFlattener(c CubicBez, flatness, distance float64) *adaptiveFlattener {
	return &adaptiveFlattener{
		ax:         -c.P0.X + 3*(c.P1.X-c.P2.X) + c.P3.X,
		ay:         -c.P0.Y + 3*(c.P1.Y-c.P2.Y) + c.P3.Y,
		bx:         3 * (c.P0.X - 2*c.P1.X + c.P2.X),
		by:         3 * (c.P0.Y - 2*c.P1.Y + c.P2.Y),
		cx:         3 * (c.P1.X - c.P0.X),
		cy:         3 * (c.P1.Y - c.P0.Y),
		dx:         c.P0.X,
		dy:         c.P0.Y,
		steps:      1,
		flatness:   3 * flatness,
		distance:   distance,
		paramDelta: 1,
	}
}

// next advances by one step and stores the reached point and its parameter.
// It returns false once the step that reaches the end of the curve has been
// taken; that point is not meant to be emitted, as callers append the exact end
// point themselves.
func (f *adaptiveFlattener) next(pt *Point, u *float64) bool {
	// A step never covers less than 2^-maxForwardLevel of the curve.
	for f.level < maxForwardLevel && f.mustSubdivide(f.flatness) {
		f.halve()
	}
	if f.steps&1 == 0 {
		for f.steps > 1 && !f.mustSubdivide(f.flatness*0.25) {
			f.double()
		}
	}
	f.step()
	*pt = Pt(f.dx, f.dy)
	*u = f.param
	return f.steps != 0
}

func (f *adaptiveFlattener) halve() {
	f.ax *= 0.125
	f.ay *= 0.125
	f.bx *= 0.25
	f.by *= 0.25
	f.cx *= 0.5
	f.cy *= 0.5
	f.paramDelta *= 0.5
	f.steps <<= 1
	f.level++
}

func (f *adaptiveFlattener) double() {
	f.ax *= 8
	f.ay *= 8
	f.bx *= 4
	f.by *= 4
	f.cx *= 2
	f.cy *= 2
	f.paramDelta *= 2
	f.steps >>= 1
	f.level--
}

func (f *adaptiveFlattener) step() {
	f.dx += f.ax + f.bx + f.cx
	f.dy += f.ay + f.by + f.cy
	f.cx = 3*f.ax + 2*f.bx + f.cx
	f.cy = 3*f.ay + 2*f.by + f.cy
	f.bx = 3*f.ax + f.bx
	f.by = 3*f.ay + f.by
	f.steps--
	f.param += f.paramDelta
}

// mustSubdivide reports whether the tangents at either end of the next step
// deviate from the step's chord by more than the flatness bound, measured in
// the L1 norm of the chord.
func (f *adaptiveFlattener) mustSubdivide(flatness float64) bool {
	nx := -(f.ay + f.by + f.cy)
	ny := f.ax + f.bx + f.cx
	l1 := math.Abs(nx) + math.Abs(ny)
	if l1 <= f.distance {
		return false
	}
	l1 *= flatness
	if math.Abs(f.cx*nx+f.cy*ny) > l1 {
		return true
	}
	return math.Abs((f.bx+2*f.cx)*nx+(f.by+2*f.cy)*ny) > l1
}

func roundToUint32(v float64) uint32 {
	switch {
	case v >= math.MaxUint32:
		return math.MaxUint32
	case v > 0:
		return uint32(v)
	default:
		return 0
	}
}

func log8(i uint32) uint {
	var n uint
	for i != 0 {
		i >>= 3
		n++
	}
	return n
}

func log4(i uint32) uint {
	var n uint
	for i != 0 {
		i >>= 2
		n++
	}
	return n
}

func log4Float(d float64) uint {
	var n uint
	for d > 1 && n < 1024 {
		d *= 0.25
		n++
	}
	return n
}
