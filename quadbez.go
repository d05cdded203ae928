package pathgeom

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Raise returns the cubic Bézier that exactly represents this quadratic. The
// inner control points sit at 2/3 of the way from each end point towards the
// quadratic's control point.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Lerp(q.P1, 2.0/3.0),
		q.P1.Lerp(q.P2, 1.0/3.0),
		q.P2,
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// Seg returns the quadratic as a cubic segment.
func (q QuadBez) Seg() SimpleSegment {
	return q.Raise().Seg()
}
