package pathgeom

import (
	"math"
	"slices"
	"testing"
)

func square(closed bool) Figure {
	return Figure{
		Start:    Pt(0, 0),
		Segments: []Segment{LineTo(Pt(10, 0)), LineTo(Pt(10, 10))},
		Closed:   closed,
		Filled:   true,
	}
}

func TestFigureFlatten(t *testing.T) {
	open := square(false)
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, open.Flatten(0.25))

	closed := square(true)
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0)}, closed.Flatten(0.25))

	// Already ends at the start point.
	closed.Segments = append(closed.Segments, LineTo(Pt(0, 0)))
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0)}, closed.Flatten(0.25))

	empty := Figure{Start: Pt(3, 3), Closed: true}
	diff(t, []Point{Pt(3, 3)}, empty.Flatten(0.25))
}

func TestFigureSimpleSegments(t *testing.T) {
	closed := square(true)
	got := slices.Collect(closed.SimpleSegments())
	diff(t, []SimpleSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(10, 10)}.Seg(),
		Line{Pt(10, 10), Pt(0, 0)}.Seg(),
	}, got)

	open := square(false)
	if n := len(slices.Collect(open.SimpleSegments())); n != 2 {
		t.Errorf("got %d segments for an open figure, want 2", n)
	}

	var starts []Point
	for start := range closed.All() {
		starts = append(starts, start)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, starts)
	diff(t, Pt(10, 10), closed.LastPoint())
}

func TestGeometryBounds(t *testing.T) {
	g := &Geometry{Figures: []Figure{{
		Start:    Pt(0, 0),
		Segments: []Segment{CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))},
	}}}
	diff(t, Rect{0, 0, 10, 7.5}, g.Bounds(), floatComparer)

	g.Figures = append(g.Figures, Figure{Start: Pt(-5, 20)})
	diff(t, Rect{-5, 0, 10, 20}, g.Bounds(), floatComparer)

	diff(t, Rect{}, (&Geometry{}).Bounds())
}

func TestGeometryTransform(t *testing.T) {
	g := &Geometry{FillRule: Nonzero, Figures: []Figure{square(true)}}
	got := g.Transform(Scale(2, 3))
	want := &Geometry{FillRule: Nonzero, Figures: []Figure{{
		Start:    Pt(0, 0),
		Segments: []Segment{LineTo(Pt(20, 0)), LineTo(Pt(20, 30))},
		Closed:   true,
		Filled:   true,
	}}}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGeometryCloneAndEqual(t *testing.T) {
	g := MustParse("F1 M0,0 L10,0 A5,5 0 0 1 10,10 Z")
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatalf("clone %v differs from %v", c, g)
	}
	c.Figures[0].Segments[0].Points[0] = Pt(-1, -1)
	if g.Equal(c) {
		t.Error("modifying the clone modified the original")
	}
	if got := g.Figures[0].Segments[0].Points[0]; got != Pt(10, 0) {
		t.Errorf("got %v, want (10, 0)", got)
	}

	var nilGeom *Geometry
	if !nilGeom.Equal(nil) || nilGeom.Equal(g) || nilGeom.Clone() != nil {
		t.Error("nil geometry handling is wrong")
	}
}

func TestPolylineGeometry(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	g := PolylineGeometry(pts, true, false)
	if len(g.Figures) != 1 {
		t.Fatalf("got %d figures, want 1", len(g.Figures))
	}
	f := g.Figures[0]
	if !f.Closed || f.Filled {
		t.Errorf("got closed=%t filled=%t", f.Closed, f.Filled)
	}
	diff(t, append(slices.Clone(pts), pts[0]), f.Flatten(0.25))

	if n := len(PolylineGeometry(nil, false, false).Figures); n != 0 {
		t.Errorf("got %d figures for no points", n)
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{0, 0, 100, 50}

	plain := RectGeometry(r, 0, 10)
	diff(t, []Point{Pt(0, 0), Pt(100, 0), Pt(100, 50), Pt(0, 50), Pt(0, 0)}, plain.Figures[0].Flatten(0.25))

	rounded := RectGeometry(r, 10, 5)
	if n := len(rounded.Figures[0].Segments); n != 8 {
		t.Errorf("got %d segments, want 4 corners and 4 edges", n)
	}
	// A radius of half the height leaves no vertical edges.
	pill := RectGeometry(r, 10, 25)
	if n := len(pill.Figures[0].Segments); n != 6 {
		t.Errorf("got %d segments, want 6", n)
	}
	clamped := RectGeometry(r, 1000, 1000)
	if n := len(clamped.Figures[0].Segments); n != 4 {
		t.Errorf("got %d segments, want 4 corners", n)
	}

	for _, g := range []*Geometry{rounded, pill, clamped} {
		pts := g.Figures[0].Flatten(0.1)
		if pts[0] != pts[len(pts)-1] {
			t.Errorf("polyline isn't closed: %v", pts)
		}
		b := g.Bounds()
		diff(t, r, b, floatComparer)
	}

	if RectGeometry(Rect{0, 0, 0, 10}, 0, 0) != nil {
		t.Error("got geometry for an empty rectangle")
	}
}

func TestEllipseGeometry(t *testing.T) {
	center := Pt(50, 50)
	g := EllipseGeometry(center, 20, 10)
	f := g.Figures[0]
	if !f.Closed || !f.Filled || f.Start != Pt(50, 40) {
		t.Fatalf("got %+v", f)
	}
	pts := f.Flatten(0.1)
	for _, p := range pts {
		dx, dy := (p.X-center.X)/20, (p.Y-center.Y)/10
		if d := math.Abs(dx*dx + dy*dy - 1); d > 0.01 {
			t.Fatalf("point %v is off the ellipse by %g", p, d)
		}
	}
	if pts[0] != pts[len(pts)-1] {
		t.Error("polyline isn't closed")
	}
	diff(t, Rect{30, 40, 70, 60}, g.Bounds(), approxFloat(1e-3))

	if EllipseGeometry(center, 0, 10) != nil {
		t.Error("got geometry for a flat ellipse")
	}
}

func TestLineGeometry(t *testing.T) {
	g := LineGeometry(Pt(0, 0), Pt(10, 0))
	f := g.Figures[0]
	if f.Closed || f.Filled {
		t.Errorf("got closed=%t filled=%t, want an open unfilled figure", f.Closed, f.Filled)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, f.Flatten(0))
	if LineGeometry(Pt(1, 1), Pt(1, 1)) != nil {
		t.Error("got geometry for a zero-length line")
	}
}
