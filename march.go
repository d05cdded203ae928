package pathgeom

import (
	"fmt"
	"math"
)

// MarchStopReason describes why [March] stopped and invoked its callback.
type MarchStopReason int

const (
	// The distance requested by the callback has been consumed.
	CompleteStep MarchStopReason = iota + 1
	// The end of the polyline was reached before the requested distance was
	// consumed. In backward marches, this is the start of the polyline.
	CompletePolyline
	// A vertex sharper than the corner threshold was crossed. Only reported
	// by [MarchCorners].
	CornerPoint
)

func (r MarchStopReason) String() string {
	switch r {
	case CompleteStep:
		return "CompleteStep"
	case CompletePolyline:
		return "CompletePolyline"
	case CornerPoint:
		return "CornerPoint"
	default:
		return fmt.Sprintf("MarchStopReason(%d)", int(r))
	}
}

// MarchLocation is a position along a polyline, reported by [March].
type MarchLocation struct {
	Reason MarchStopReason
	// Index of the segment containing the location. The segment runs from
	// point Index to point Index+1.
	Index int
	// Position along the segment, Before/(Before+After), or 0 for segments of
	// (nearly) zero length.
	Ratio float64
	// Distance from the start of the segment.
	Before float64
	// Distance to the end of the segment.
	After float64
	// Distance of the requested step that wasn't consumed. Zero for
	// CompleteStep.
	Remain float64
}

func newMarchLocation(reason MarchStopReason, index int, before, after, remain float64) MarchLocation {
	total := before + after
	return MarchLocation{
		Reason: reason,
		Index:  index,
		Ratio:  Clamp(SafeDivide(before, total, 0), 0, 1),
		Before: Clamp(before, 0, total),
		After:  Clamp(after, 0, total),
		Remain: remain,
	}
}

// Point returns the location's position on p.
func (l MarchLocation) Point(p *Polyline) Point {
	return p.points[l.Index].Lerp(p.points[l.Index+1], l.Ratio)
}

// Normal returns the normal at the location on p. See [Polyline.SmoothNormal]
// for the meaning of cornerRadius.
func (l MarchLocation) Normal(p *Polyline, cornerRadius float64) Vec2 {
	return p.SmoothNormal(l.Index, l.Ratio, cornerRadius)
}

// ArcLength returns the distance along p from its first point to the
// location.
func (l MarchLocation) ArcLength(p *Polyline) float64 {
	acc := p.AccumulatedLengths()
	return Lerp(acc[l.Index], acc[l.Index+1], l.Ratio)
}

// MarchFunc is called by [March] every time it stops. It returns the
// distance of the next step. Negative distances march backwards. NaN, or any
// other non-finite value, ends the march.
type MarchFunc func(loc MarchLocation) float64

// March walks along p, starting at the beginning of segment startIndex and
// first stepping startDistance. Every time a step completes or the end of the
// polyline is reached, fn is called to determine the next step.
//
// A startDistance of zero immediately reports a CompleteStep at the starting
// point. The march only ends when fn returns a non-finite value; returning
// the location's Remain after CompletePolyline, without changing direction,
// reports CompletePolyline again.
func March(p *Polyline, startIndex int, startDistance float64, fn MarchFunc) error {
	return march(p, startIndex, startDistance, 0, fn, "March")
}

// MarchCorners is like [March] but additionally stops with reason
// CornerPoint on vertices whose angle is sharper than cornerThreshold,
// specified in degrees. A vertex is only reported after at least one other
// stop, so that the starting vertex isn't reported. The location's Remain is
// the distance still left in the current step; fn may return it to continue
// unaffected.
func MarchCorners(p *Polyline, startIndex int, startDistance, cornerThreshold float64, fn MarchFunc) error {
	return march(p, startIndex, startDistance, cornerThreshold, fn, "MarchCorners")
}

func march(p *Polyline, startIndex int, startDistance, cornerThreshold float64, fn MarchFunc, name string) error {
	if p == nil {
		return argErrorf(name, "nil polyline")
	}
	n := len(p.points)
	if startIndex < 0 || startIndex > n-2 {
		return argErrorf(name, "start index %d out of range [0, %d]", startIndex, n-2)
	}

	lengths := p.Lengths()
	angles := p.Angles()
	cornerCos := math.Cos(cornerThreshold * math.Pi / 180)
	isCorner := func(vertex int) bool {
		return cornerThreshold != 0 && angles[vertex] > cornerCos
	}

	var (
		i       = startIndex
		remain  = startDistance
		before  = 0.0
		stopped = false
	)
	for IsFinite(remain) {
		length := lengths[i]
		switch {
		case IsVerySmall(remain):
			remain = fn(newMarchLocation(CompleteStep, i, before, length-before, remain))
			stopped = true
		case remain > 0:
			if LessThanOrClose(before+remain, length) {
				before += remain
				remain = fn(newMarchLocation(CompleteStep, i, before, length-before, 0))
				stopped = true
			} else if i < n-2 {
				remain -= length - before
				before = 0
				i++
				if stopped && isCorner(i) {
					remain = fn(newMarchLocation(CornerPoint, i, 0, lengths[i], remain))
				}
			} else {
				remain -= length - before
				before = length
				remain = fn(newMarchLocation(CompletePolyline, i, before, 0, remain))
				stopped = true
			}
		default:
			if GreaterThanOrClose(before+remain, 0) {
				before += remain
				remain = fn(newMarchLocation(CompleteStep, i, before, length-before, 0))
				stopped = true
			} else if i > 0 {
				remain += before
				i--
				before = lengths[i]
				if stopped && isCorner(i+1) {
					remain = fn(newMarchLocation(CornerPoint, i, before, 0, remain))
				}
			} else {
				remain += before
				before = 0
				remain = fn(newMarchLocation(CompletePolyline, i, 0, length, remain))
				stopped = true
			}
		}
	}
	return nil
}

// FixedStep returns a [MarchFunc] that advances by step and calls visit at
// every completed step, including the starting point when the march starts
// with a zero distance. Marching ends when visit returns false or the end of
// the polyline is reached. Corner stops are passed through without calling
// visit.
func FixedStep(step float64, visit func(loc MarchLocation) bool) MarchFunc {
	return func(loc MarchLocation) float64 {
		switch loc.Reason {
		case CompleteStep:
			if !visit(loc) {
				return math.NaN()
			}
			return step
		case CompletePolyline:
			return math.NaN()
		default:
			return loc.Remain
		}
	}
}
