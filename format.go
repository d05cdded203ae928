package pathgeom

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatOptions specifies optional settings for [Format] and [WriteText].
type FormatOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// Format converts a geometry to path mini-language text that [Parse] accepts.
//
// See [WriteText] for a version that writes to an [io.Writer] instead of
// returning a string.
//
// The mini-language has no notion of unfilled figures; Filled isn't
// preserved. Poly segments are written as repeated commands and parse back as
// individual segments.
func Format(g *Geometry, opts FormatOptions) string {
	sb := &strings.Builder{}
	WriteText(sb, g, opts)
	return sb.String()
}

// WriteText converts a geometry to path mini-language text and writes it to
// w.
//
// See [Format] for a version that returns a string instead.
func WriteText(w io.Writer, g *Geometry, opts FormatOptions) error {
	var err error
	write := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		return FormatNumber(n, opts)
	}
	point := func(pt Point) string {
		return format(pt.X) + "," + format(pt.Y)
	}
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}

	first := true
	sep := func() {
		if !first {
			write(" ")
		}
		first = false
	}
	if g.FillRule == Nonzero {
		sep()
		write("F1")
	}
	for i := range g.Figures {
		f := &g.Figures[i]
		sep()
		write("M" + point(f.Start))
		for _, s := range f.Segments {
			pts := s.Points[:s.PointCount()]
			if len(pts) == 0 {
				continue
			}
			sep()
			switch s.Kind {
			case LineSegment, PolyLineSegment:
				write("L")
				for j, pt := range pts {
					if j > 0 {
						write(" ")
					}
					write(point(pt))
				}
			case QuadSegment, PolyQuadSegment:
				write("Q")
				for j := 0; j < len(pts); j += 2 {
					if j > 0 {
						write(" ")
					}
					writef("%s %s", point(pts[j]), point(pts[j+1]))
				}
			case CubicSegment, PolyCubicSegment:
				write("C")
				for j := 0; j < len(pts); j += 3 {
					if j > 0 {
						write(" ")
					}
					writef("%s %s %s", point(pts[j]), point(pts[j+1]), point(pts[j+2]))
				}
			case ArcSegment:
				a := s.Arc
				writef("A%s,%s %s %s %s %s",
					format(a.Radii.Width), format(a.Radii.Height),
					format(a.Rotation), flag(a.LargeArc), flag(a.SweepClockwise),
					point(pts[0]))
			default:
				panic("unreachable")
			}
		}
		if f.Closed {
			sep()
			write("Z")
		}
	}
	return err
}

// FormatNumber formats a single coordinate the way [Format] does.
func FormatNumber(n float64, opts FormatOptions) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
