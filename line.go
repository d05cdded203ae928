package pathgeom

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point {
	return l.P0
}

func (l Line) End() Point {
	return l.P1
}

// Normal returns the unit normal of the line. See [Normal].
func (l Line) Normal() Vec2 {
	return Normal(l.P0, l.P1)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Seg() SimpleSegment {
	return SimpleSegment{Kind: SimpleLine, P0: l.P0, P1: l.P1}
}

// distanceToPoint returns the distance from pt to the closest point on the
// line segment.
func (l Line) distanceToPoint(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	d2 := d.Hypot2()
	if d2 == 0 {
		return pt.Distance(l.P0)
	}
	t := Clamp(pt.Sub(l.P0).Dot(d)/d2, 0, 1)
	return pt.Distance(l.Eval(t))
}
