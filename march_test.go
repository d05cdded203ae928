package pathgeom

import (
	"errors"
	"math"
	"testing"
)

type stop struct {
	Reason    MarchStopReason
	ArcLength float64
	Remain    float64
}

func lShape(t *testing.T) *Polyline {
	t.Helper()
	p, err := NewPolyline([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMarchFixedStep(t *testing.T) {
	p := lShape(t)
	var got []float64
	var pts []Point
	err := March(p, 0, 0, FixedStep(3, func(loc MarchLocation) bool {
		got = append(got, loc.ArcLength(p))
		pts = append(pts, loc.Point(p))
		return true
	}))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0, 3, 6, 9, 12, 15, 18}, got, floatComparer)
	diff(t, Pt(10, 2), pts[4], pointComparer)

	var n int
	March(p, 0, 0, FixedStep(1, func(MarchLocation) bool {
		n++
		return n < 2
	}))
	if n != 2 {
		t.Errorf("visit was called %d times after returning false, want 2", n)
	}
}

func TestMarchConsumesTotalLength(t *testing.T) {
	for _, step := range []float64{0.7, 3, 10, 25} {
		p := lShape(t)
		var consumed float64
		var last MarchStopReason
		March(p, 0, step, func(loc MarchLocation) float64 {
			last = loc.Reason
			switch loc.Reason {
			case CompleteStep:
				consumed += step
				return step
			case CompletePolyline:
				consumed += step - loc.Remain
			}
			return math.NaN()
		})
		if last != CompletePolyline {
			t.Errorf("step %g: last reason is %s, want CompletePolyline", step, last)
		}
		if math.Abs(consumed-p.TotalLength()) > 1e-9 {
			t.Errorf("step %g: consumed %g, want %g", step, consumed, p.TotalLength())
		}
	}
}

func TestMarchBackward(t *testing.T) {
	p := lShape(t)
	var got []stop
	steps := []float64{-10, math.NaN()}
	err := March(p, 1, -5, func(loc MarchLocation) float64 {
		got = append(got, stop{loc.Reason, loc.ArcLength(p), loc.Remain})
		next := steps[0]
		steps = steps[1:]
		return next
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []stop{
		{CompleteStep, 5, 0},
		{CompletePolyline, 0, -5},
	}, got, floatComparer)
}

func TestMarchCorners(t *testing.T) {
	p := closedSquare(t)
	record := func(threshold float64) []stop {
		var got []stop
		MarchCorners(p, 0, 0, threshold, func(loc MarchLocation) float64 {
			got = append(got, stop{loc.Reason, loc.ArcLength(p), loc.Remain})
			switch loc.Reason {
			case CompleteStep:
				return 15
			case CornerPoint:
				return loc.Remain
			}
			return math.NaN()
		})
		return got
	}

	diff(t, []stop{
		{CompleteStep, 0, 0},
		{CornerPoint, 10, 5},
		{CompleteStep, 15, 0},
		{CornerPoint, 20, 10},
		{CompleteStep, 30, 0},
		{CornerPoint, 30, 15},
		{CompletePolyline, 40, 5},
	}, record(100), floatComparer)

	// Right angles aren't sharper than 45°.
	diff(t, []stop{
		{CompleteStep, 0, 0},
		{CompleteStep, 15, 0},
		{CompleteStep, 30, 0},
		{CompletePolyline, 40, 5},
	}, record(45), floatComparer)
}

func TestMarchLocation(t *testing.T) {
	loc := newMarchLocation(CompleteStep, 0, 12, -2, 0)
	diff(t, MarchLocation{Reason: CompleteStep, Ratio: 1, Before: 10, After: 0}, loc)

	loc = newMarchLocation(CompleteStep, 0, 0, 0, 0)
	if loc.Ratio != 0 {
		t.Errorf("got ratio %g for a zero-length segment, want 0", loc.Ratio)
	}
}

func TestMarchInvalidStart(t *testing.T) {
	p := lShape(t)
	fn := func(MarchLocation) float64 { return math.NaN() }
	for _, idx := range []int{-1, 2, 3} {
		if err := March(p, idx, 0, fn); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("index %d: got %v, want ErrInvalidArgument", idx, err)
		}
	}
	if err := March(nil, 0, 0, fn); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil polyline: got %v, want ErrInvalidArgument", err)
	}
}
