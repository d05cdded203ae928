package pathgeom

import (
	"math"
	"slices"

	"golang.org/x/image/math/fixed"
)

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

// get returns the stored value, computing and storing it first if the option
// isn't set.
func (opt *option[T]) get(compute func() T) T {
	if !opt.isSet {
		opt.set(compute())
	}
	return opt.value
}

// Polyline wraps an immutable sequence of at least two points and lazily
// computes per-vertex data over it. Each derived slice has one entry per
// point and is computed on first access.
//
// The slices returned by a Polyline's methods are shared and must not be
// modified. A Polyline isn't safe for concurrent use.
type Polyline struct {
	points []Point

	lengths     option[[]float64]
	normals     option[[]Vec2]
	angles      option[[]float64]
	accumulated option[[]float64]
}

// NewPolyline returns a polyline over a copy of points.
func NewPolyline(points []Point) (*Polyline, error) {
	if len(points) < 2 {
		return nil, argErrorf("NewPolyline", "need at least 2 points, got %d", len(points))
	}
	return &Polyline{points: slices.Clone(points)}, nil
}

// Points returns the polyline's points.
func (p *Polyline) Points() []Point { return p.points }

// Len returns the number of points.
func (p *Polyline) Len() int { return len(p.points) }

// IsClosed reports whether the first and last points are equal.
func (p *Polyline) IsClosed() bool {
	return p.points[0] == p.points[len(p.points)-1]
}

// Difference returns the vector from point i to the following point, wrapping
// around to the first point after the last.
func (p *Polyline) Difference(i int) Vec2 {
	return p.points[(i+1)%len(p.points)].Sub(p.points[i])
}

// Lengths returns the length of the segment starting at each point. The last
// entry is the distance from the last point back to the first.
func (p *Polyline) Lengths() []float64 {
	return p.lengths.get(func() []float64 {
		out := make([]float64, len(p.points))
		for i := range out {
			out[i] = p.Difference(i).Hypot()
		}
		return out
	})
}

// Normals returns the unit normal of the segment starting at each point. The
// last point has no segment of its own and repeats the previous normal.
func (p *Polyline) Normals() []Vec2 {
	return p.normals.get(func() []Vec2 {
		n := len(p.points)
		out := make([]Vec2, n)
		for i := range n - 1 {
			out[i] = Line{p.points[i], p.points[i+1]}.Normal()
		}
		out[n-1] = out[n-2]
		return out
	})
}

// Angles returns, for each vertex, the cosine of the angle between the
// incoming segment reversed and the outgoing segment. A straight continuation
// is −1 and a full reversal is 1. The end points of an open polyline are 1;
// on a closed polyline they join the last segment to the first.
func (p *Polyline) Angles() []float64 {
	return p.angles.get(func() []float64 {
		normals := p.Normals()
		n := len(p.points)
		out := make([]float64, n)
		for i := 1; i < n-1; i++ {
			out[i] = -normals[i-1].Dot(normals[i])
		}
		if p.IsClosed() {
			out[0] = -normals[0].Dot(normals[n-2])
			out[n-1] = out[0]
		} else {
			out[0] = 1
			out[n-1] = 1
		}
		return out
	})
}

// AccumulatedLengths returns the arc length from the first point to each
// point.
func (p *Polyline) AccumulatedLengths() []float64 {
	return p.accumulated.get(func() []float64 {
		lengths := p.Lengths()
		out := make([]float64, len(p.points))
		for i := 1; i < len(out); i++ {
			out[i] = out[i-1] + lengths[i-1]
		}
		return out
	})
}

// TotalLength returns the arc length from the first point to the last.
func (p *Polyline) TotalLength() float64 {
	acc := p.AccumulatedLengths()
	return acc[len(acc)-1]
}

// SmoothNormal returns the normal at fraction ∈ [0, 1] along the segment
// starting at index. Within cornerRadius of either end of the segment, the
// normal blends towards the neighbouring segment's normal so that normals
// rotate continuously around corners. A cornerRadius ≤ 0 returns the
// segment's own normal.
func (p *Polyline) SmoothNormal(index int, fraction, cornerRadius float64) Vec2 {
	normals := p.Normals()
	if cornerRadius <= 0 {
		return normals[index]
	}
	n := len(p.points)
	closed := p.IsClosed()
	prevIndex := func() int {
		prev := index - 1
		if prev < 0 && closed {
			prev = n - 2
		}
		return prev
	}
	nextIndex := func() int {
		next := index + 1
		if closed && next >= n-1 {
			next = 0
		}
		return next
	}

	length := p.Lengths()[index]
	if IsVerySmall(length) {
		prev, next := prevIndex(), nextIndex()
		if prev < 0 || next >= n {
			return normals[index]
		}
		return normals[next].Lerp(normals[prev], 0.5).Normalize()
	}
	r := min(cornerRadius/length, 0.5)
	if fraction <= r {
		if prev := prevIndex(); prev >= 0 {
			return normals[index].Lerp(normals[prev], (r-fraction)/(2*r)).Normalize()
		}
	} else if fraction >= 1-r {
		if next := nextIndex(); next < n {
			return normals[index].Lerp(normals[next], (fraction+r-1)/(2*r)).Normalize()
		}
	}
	return normals[index]
}

// Fixed returns the polyline's points in 26.6 fixed point, the format used
// by golang.org/x/image/vector and font rasterizers.
func (p *Polyline) Fixed() []fixed.Point26_6 {
	out := make([]fixed.Point26_6, len(p.points))
	for i, pt := range p.points {
		out[i] = ToFixed(pt)
	}
	return out
}

// ToFixed converts a point to 26.6 fixed point, rounding to the nearest 1/64.
// Coordinates outside the representable range saturate.
func ToFixed(pt Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toInt26_6(pt.X), Y: toInt26_6(pt.Y)}
}

func toInt26_6(v float64) fixed.Int26_6 {
	const lim = math.MaxInt32 / 64
	switch {
	case math.IsNaN(v):
		return 0
	case v >= lim:
		return math.MaxInt32
	case v <= -lim:
		return math.MinInt32
	}
	return fixed.Int26_6(math.Round(v * 64))
}
