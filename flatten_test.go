package pathgeom

import (
	"fmt"
	"math"
	"testing"
)

func distanceToPolyline(pt Point, poly []Point) float64 {
	best := pt.Distance(poly[0])
	for i := 1; i < len(poly); i++ {
		best = min(best, Line{poly[i-1], poly[i]}.distanceToPoint(pt))
	}
	return best
}

var flattenCurves = []CubicBez{
	// monotone arch
	{Pt(0, 0), Pt(33, 50), Pt(66, 50), Pt(100, 0)},
	// self-intersecting loop
	{Pt(0, 0), Pt(150, 100), Pt(-50, 100), Pt(100, 0)},
	// large monotone S
	{Pt(0, 0), Pt(1000, 2000), Pt(2000, -1000), Pt(3000, 1000)},
	// large loop, deep subdivision
	{Pt(0, 0), Pt(3000, 1000), Pt(-1000, 1000), Pt(2000, 0)},
	// closed loop with a zero-length chord
	{Pt(10, 10), Pt(60, 80), Pt(-40, 80), Pt(10, 10)},
}

func TestFlattenDeviation(t *testing.T) {
	for _, tol := range []float64{0.1, 0.25, 1} {
		for i, c := range flattenCurves {
			t.Run(fmt.Sprintf("%d/%g", i, tol), func(t *testing.T) {
				poly := c.Flatten(nil, tol, false)
				const samples = 2000
				for j := 0; j <= samples; j++ {
					pt := c.Eval(float64(j) / samples)
					if d := distanceToPolyline(pt, poly); d > 3*tol {
						t.Fatalf("curve point %v is %g away from the polyline, tolerance %g", pt, d, tol)
					}
				}
			})
		}
	}
}

func TestFlattenParams(t *testing.T) {
	for i, c := range flattenCurves {
		pts, params := c.FlattenParams(nil, nil, 0.25, false)
		if len(pts) != len(params) {
			t.Fatalf("%d: got %d points and %d parameters", i, len(pts), len(params))
		}
		if params[0] != 0 || params[len(params)-1] != 1 {
			t.Errorf("%d: parameters span [%g, %g], want [0, 1]", i, params[0], params[len(params)-1])
		}
		for j := range pts {
			if j > 0 && params[j] <= params[j-1] {
				t.Fatalf("%d: parameters not increasing at %d: %v", i, j, params)
			}
			if d := c.Eval(params[j]).Distance(pts[j]); d > 1e-6 {
				t.Errorf("%d: point %d is %g away from the curve at its parameter", i, j, d)
			}
		}
	}
}

func TestFlattenEndpoints(t *testing.T) {
	c := flattenCurves[0]
	pts := c.Flatten(nil, 0.25, false)
	diff(t, c.P0, pts[0])
	diff(t, c.P3, pts[len(pts)-1])

	skipped := c.Flatten(nil, 0.25, true)
	diff(t, pts[1:], skipped)

	prefix := []Point{Pt(-1, -1)}
	appended := c.Flatten(prefix, 0.25, true)
	diff(t, append([]Point{Pt(-1, -1)}, pts[1:]...), appended)
}

func TestFlattenDegenerate(t *testing.T) {
	p := Pt(5, 7)
	c := CubicBez{p, p, p, p}
	diff(t, []Point{p, p}, c.Flatten(nil, 0.25, false))

	pts, params := c.FlattenParams(nil, nil, 0.25, false)
	diff(t, []Point{p, p}, pts)
	diff(t, []float64{0, 1}, params)
}

func TestFlattenBounded(t *testing.T) {
	for _, c := range []CubicBez{
		{Pt(0, 0), Pt(math.Inf(1), 0), Pt(0, 0), Pt(1, 1)},
		{Pt(0, 0), Pt(1, math.NaN()), Pt(2, 2), Pt(3, 0)},
		{Pt(math.Inf(-1), 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)},
	} {
		pts := c.Flatten(nil, 0.25, false)
		if len(pts) != 2 || pts[1] != c.P3 {
			t.Errorf("%v: got %d points, want the two end points", c, len(pts))
		}
		pts, params := c.FlattenParams(nil, nil, 0.25, true)
		if len(pts) != 1 || len(params) != 1 || params[0] != 1 {
			t.Errorf("%v: got %v, %v, want only the end point", c, pts, params)
		}
	}

	huge := []CubicBez{
		{Pt(0, 0), Pt(1e300, 0), Pt(0, 1e300), Pt(1, 1)},
		{Pt(0, 0), Pt(1e300, 0), Pt(2e300, 0), Pt(3e300, 1e300)},
	}
	for _, c := range huge {
		if n := len(c.Flatten(nil, 1e-9, false)); n > 1<<20+2 {
			t.Errorf("%v: got %d points, want at most %d", c, n, 1<<20+2)
		}
	}
}

func TestFlattenStraight(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	diff(t, []Point{Pt(0, 0), Pt(3, 0)}, c.Flatten(nil, 0.25, false))
}

func TestFlattenDefaultTolerance(t *testing.T) {
	c := flattenCurves[1]
	want := c.Flatten(nil, DefaultTolerance, false)
	for _, tol := range []float64{0, -3} {
		diff(t, want, c.Flatten(nil, tol, false))
	}
}

func TestFlattenQuadratic(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	diff(t, CubicBez{Pt(0, 0), Pt(100.0/3, 200.0/3), Pt(200.0/3, 200.0/3), Pt(100, 0)}, q.Raise(), pointComparer)

	pts := q.Flatten(nil, 0.25, false)
	diff(t, q.Raise().Flatten(nil, 0.25, false), pts)
	for j := 0; j <= 500; j++ {
		pt := q.Eval(float64(j) / 500)
		if d := distanceToPolyline(pt, pts); d > 0.5 {
			t.Fatalf("quadratic point %v is %g away from the polyline", pt, d)
		}
	}
}

func TestLogEstimates(t *testing.T) {
	tests := []struct {
		in       uint32
		log8     uint
		log4     uint
		log4Flt  uint
		floatArg float64
	}{
		{0, 0, 0, 0, 1},
		{1, 1, 1, 1, 2},
		{7, 1, 2, 1, 4},
		{8, 2, 2, 2, 5},
		{800, 4, 5, 5, 1000},
	}
	for _, tt := range tests {
		if got := log8(tt.in); got != tt.log8 {
			t.Errorf("log8(%d) = %d, want %d", tt.in, got, tt.log8)
		}
		if got := log4(tt.in); got != tt.log4 {
			t.Errorf("log4(%d) = %d, want %d", tt.in, got, tt.log4)
		}
		if got := log4Float(tt.floatArg); got != tt.log4Flt {
			t.Errorf("log4Float(%g) = %d, want %d", tt.floatArg, got, tt.log4Flt)
		}
	}
}
