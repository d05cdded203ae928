package effect

import (
	"math"
	"math/rand/v2"

	"honnef.co/go/pathgeom"
)

const (
	// Mean length of the pieces a segment is resampled into.
	sketchSegmentLength = 8.0
	// Segments no longer than this are kept as is.
	sketchMinLength = 4.0
	// Spread of the displacement along and across the curve, relative to the
	// sampling interval divided by sketchSegmentLength.
	sketchTangentVariance = 1.0
	sketchNormalVariance  = 0.5
)

// SketchEffect makes geometry look hand drawn. Every simple segment is
// resampled at roughly equal intervals and the samples are displaced randomly
// along and across the curve.
//
// The displacements are derived from the effect's seed alone, so recomputing
// the same input produces the same output.
type SketchEffect struct {
	Node
	seed uint64
}

// NewSketch returns a sketch effect with a fixed seed.
func NewSketch(seed uint64) *SketchEffect {
	return &SketchEffect{seed: seed}
}

// Sketch returns a sketch effect with a random seed.
func Sketch() *SketchEffect {
	return NewSketch(rand.Uint64())
}

func (e *SketchEffect) Seed() uint64 { return e.seed }

func (e *SketchEffect) ProcessGeometry(input *pathgeom.Geometry) bool {
	return e.Process(input, e.update)
}

// Clone returns a new sketch effect with a fresh random seed.
func (e *SketchEffect) Clone() Effect { return Sketch() }

// Equal reports whether o is a sketch effect. Seeds aren't compared.
func (e *SketchEffect) Equal(o Effect) bool {
	_, ok := o.(*SketchEffect)
	return ok
}

func (e *SketchEffect) update(input, prev *pathgeom.Geometry) (*pathgeom.Geometry, bool) {
	if input == nil {
		return nil, prev != nil
	}
	rng := newRandomEngine(e.seed)
	out := &pathgeom.Geometry{
		FillRule: input.FillRule,
		Figures:  make([]pathgeom.Figure, len(input.Figures)),
	}
	for i := range input.Figures {
		out.Figures[i] = sketchFigure(&input.Figures[i], rng)
	}
	if out.Equal(prev) {
		return prev, false
	}
	slogger().Debug("effect: sketch recomputed", "figures", len(out.Figures), "seed", e.seed)
	return out, true
}

func sketchFigure(f *pathgeom.Figure, rng *randomEngine) pathgeom.Figure {
	if len(f.Segments) == 0 {
		return pathgeom.Figure{Start: f.Start, Closed: f.Closed, Filled: f.Filled}
	}
	pts := make([]pathgeom.Point, 0, len(f.Segments)*3)
	for seg := range f.SimpleSegments() {
		flat := seg.Flatten([]pathgeom.Point{seg.Start()}, 0)
		poly, err := pathgeom.NewPolyline(flat)
		if err == nil && poly.TotalLength() > sketchMinLength {
			pts = append(pts, sketchPolyline(poly, rng)...)
		} else {
			pts = append(pts, flat[:len(flat)-1]...)
		}
	}
	if !f.Closed {
		pts = append(pts, f.LastPoint())
	}
	if len(pts) == 0 {
		pts = append(pts, f.Start)
	}
	return pathgeom.PolylineFigure(pts, f.Closed, f.Filled)
}

// sketchPolyline samples p at equal intervals, excluding its last point, and
// disturbs every sample but the first.
func sketchPolyline(p *pathgeom.Polyline, rng *randomEngine) []pathgeom.Point {
	length := p.TotalLength()
	count := max(2, int(math.Ceil(length/sketchSegmentLength)))
	interval := length / float64(count)
	scale := interval / sketchSegmentLength

	pts := make([]pathgeom.Point, 0, count)
	normals := make([]pathgeom.Vec2, 0, count)
	pathgeom.March(p, 0, 0, pathgeom.FixedStep(interval, func(loc pathgeom.MarchLocation) bool {
		if len(pts) == count {
			return false
		}
		pts = append(pts, loc.Point(p))
		normals = append(normals, loc.Normal(p, 0))
		return true
	}))

	for i := 1; i < len(pts); i++ {
		g := rng.gaussian(0, sketchTangentVariance*scale)
		u := rng.uniform(-sketchNormalVariance, sketchNormalVariance) * scale
		n := normals[i]
		pts[i] = pathgeom.Pt(pts[i].X+n.X*u-n.Y*g, pts[i].Y+n.X*g+n.Y*u)
	}
	return pts
}
