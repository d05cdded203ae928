package pathgeom

import (
	"errors"
	"math"
	"testing"
)

func TestParseClosedFigure(t *testing.T) {
	g, err := Parse("M0,0 L10,0 L10,10 Z")
	if err != nil {
		t.Fatal(err)
	}
	want := &Geometry{Figures: []Figure{{
		Start:    Pt(0, 0),
		Segments: []Segment{LineTo(Pt(10, 0)), LineTo(Pt(10, 10))},
		Closed:   true,
		Filled:   true,
	}}}
	diff(t, want, g)
}

func TestParseEquivalent(t *testing.T) {
	tests := []struct{ a, b string }{
		{"M0,0 H5 V5", "M0,0 L5,0 L5,5"},
		{"M0,0 10,0 10,10", "M0,0 L10,0 L10,10"},
		{"m1,1 2,0 0,2", "M1,1 L3,1 L3,3"},
		{"M10,10 l5,5 h5 v-5", "M10,10 L15,15 L20,15 L20,10"},
		{"M10,10 c1,1 2,2 3,3 q1,0 1,1", "M10,10 C11,11 12,12 13,13 Q14,13 14,14"},
		{"M0,0 L1,1,2,2 3,3", "M0,0 L1,1 L2,2 L3,3"},
		{"M0 0\tL1\n1\r\nL2 2", "M0,0 L1,1 L2,2"},
		{"M0 0 L1 1", "M0,0 L1,1"},
		{"M0,0 a5,5 0 0 1 10,0", "M0,0 A5,5 0 0 1 10,0"},
		{"M12345678,0", "M12345678.0,0"},
		{"M-1.5e1,+.5 L1E2,2.", "M-15,0.5 L100,2"},
		{"M0,0 L5,5 S10,10 15,5", "M0,0 L5,5 C5,5 10,10 15,5"},
		{"M0,0 C0,10 10,10 10,0 S20,-10 20,0", "M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0"},
		{"M0,0 c0,10 10,10 10,0 s10,-10 10,0", "M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0"},
	}
	for _, tt := range tests {
		a, err := Parse(tt.a)
		if err != nil {
			t.Errorf("%q: %s", tt.a, err)
			continue
		}
		b := MustParse(tt.b)
		if !a.Equal(b) {
			t.Errorf("%q parsed to %v, want %v", tt.a, a, b)
		}
	}
}

func TestParseFillRule(t *testing.T) {
	for in, want := range map[string]FillRule{
		"M0,0":       EvenOdd,
		"F0 M0,0":    EvenOdd,
		"F1M0,0":     Nonzero,
		"  F 1 M0 0": Nonzero,
	} {
		g, err := Parse(in)
		if err != nil {
			t.Errorf("%q: %s", in, err)
			continue
		}
		if g.FillRule != want {
			t.Errorf("%q: got %v, want %v", in, g.FillRule, want)
		}
	}
}

func TestParseFigures(t *testing.T) {
	g := MustParse("M0,0 L1,1 M5,5 L6,6")
	if len(g.Figures) != 2 || g.Figures[0].Closed || g.Figures[1].Closed {
		t.Fatalf("got %v, want two open figures", g.Figures)
	}
	diff(t, Pt(5, 5), g.Figures[1].Start)

	// A command after Z starts a new figure at the closed figure's start.
	g = MustParse("M2,2 L10,0 Z l0,10")
	if len(g.Figures) != 2 {
		t.Fatalf("got %d figures, want 2", len(g.Figures))
	}
	if !g.Figures[0].Closed || g.Figures[1].Closed {
		t.Errorf("got closed flags %t, %t", g.Figures[0].Closed, g.Figures[1].Closed)
	}
	diff(t, Pt(2, 2), g.Figures[1].Start)
	diff(t, []Segment{LineTo(Pt(2, 12))}, g.Figures[1].Segments)

	g = MustParse("M0,0 A10,10 0 1 0 10,10")
	diff(t, []Segment{ArcTo(Pt(10, 10), Sz(10, 10), 0, true, false)}, g.Figures[0].Segments)

	for _, in := range []string{"", "   "} {
		g, err := Parse(in)
		if err != nil || len(g.Figures) != 0 {
			t.Errorf("%q: got %v, %v, want an empty geometry", in, g, err)
		}
	}
}

func TestParseAfterClose(t *testing.T) {
	// Z moves the current point back to the figure's start, not to its last
	// point, so relative commands after Z are relative to (0, 0).
	g := MustParse("M0,0 L10,0 L10,10 Z l5,5 h1")
	want := Figure{
		Start:    Pt(0, 0),
		Segments: []Segment{LineTo(Pt(5, 5)), LineTo(Pt(6, 5))},
		Filled:   true,
	}
	diff(t, want, g.Figures[1])

	g = MustParse("M1,1 L10,0 z m2,2")
	diff(t, Pt(3, 3), g.Figures[1].Start)
}

func TestParseSpecialNumbers(t *testing.T) {
	g := MustParse("M Infinity,-Infinity L NaN,0")
	start := g.Figures[0].Start
	if !math.IsInf(start.X, 1) || !math.IsInf(start.Y, -1) {
		t.Errorf("got %v, want (+Inf, -Inf)", start)
	}
	if pt := g.Figures[0].Segments[0].Points[0]; !math.IsNaN(pt.X) {
		t.Errorf("got %v, want NaN", pt)
	}
}

func TestParseNumberRounding(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"-258484911452847.34", -258484911452847.34},
		{"1.7976931348623157e308", math.MaxFloat64},
		{"5e-324", math.SmallestNonzeroFloat64},
		{"0.30000000000000004", 0.30000000000000004},
		{"1e400", math.Inf(1)},
		{"-1e-400", 0},
	}
	for _, tt := range tests {
		g, err := Parse("M" + tt.in + ",0")
		if err != nil {
			t.Errorf("%s: %s", tt.in, err)
			continue
		}
		if got := g.Figures[0].Start.X; got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"L0,0", 0},
		{"  l0,0", 2},
		{"F", 1},
		{"F2 M0,0", 1},
		{"M0,0 X1,1", 5},
		{"M0,0 L", 6},
		{"M0", 2},
		{",M0,0", 0},
		{"M,0 0", 1},
		{"M0,,0", 3},
		{"M0,0, L1,1", 6},
		{"M0,0 L1,1,", 10},
		{"M+,0", 1},
		{"M1e,0", 1},
		{"M Inf,0", 2},
		{"M0,0 A10,10 0 2 1 10,10", 14},
		{"M0,0 A10,10 0 0 0.5 10,10", 16},
		{"M0,0 Z 5,5", 7},
		{"M0,0 L1,1 é", 10},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("%q: got %v, want ErrInvalidPath", tt.in, err)
			continue
		}
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("%q: got %T, want *FormatError", tt.in, err)
		}
		if ferr.Offset != tt.offset {
			t.Errorf("%q: got offset %d, want %d (%s)", tt.in, ferr.Offset, tt.offset, ferr)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse didn't panic")
		}
	}()
	MustParse("L0,0")
}
