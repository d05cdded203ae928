package effect

import (
	"math"

	"honnef.co/go/pathgeom"
)

// Parameters are the properties of a shape that a geometry source reads.
type Parameters interface {
	Stretch() pathgeom.Stretch
	// StrokeThickness returns the thickness of the stroke, and false if the
	// shape isn't stroked.
	StrokeThickness() (float64, bool)
	// GeometryEffect returns the effect applied to the shape's geometry, or
	// nil.
	GeometryEffect() Effect
}

// HalfStrokeThickness returns half the absolute stroke thickness, or 0 for
// unstroked shapes and non-finite thicknesses.
func HalfStrokeThickness(params Parameters) float64 {
	t, ok := params.StrokeThickness()
	if !ok || !pathgeom.IsFinite(t) {
		return 0
	}
	return math.Abs(t) / 2
}

// InsetBounds returns layout shrunk by half the stroke thickness on every
// side, so that the stroke stays within the layout bounds.
func InsetBounds(layout pathgeom.Rect, params Parameters) pathgeom.Rect {
	h := HalfStrokeThickness(params)
	return layout.Inflate(-h, -h)
}

// Builder computes the geometry of a [Source].
type Builder[P Parameters] interface {
	// LogicalBounds returns the rectangle the geometry is laid out in.
	LogicalBounds(layout pathgeom.Rect, params P) pathgeom.Rect
	// Build returns the geometry for the given parameters and logical bounds
	// and reports whether it differs from prev. Builders return prev itself
	// when nothing changed.
	Build(params P, logical pathgeom.Rect, prev *pathgeom.Geometry) (*pathgeom.Geometry, bool)
}

// Source produces a shape's geometry from its parameters and layout bounds
// and runs it through the shape's effect. It only rebuilds when it has been
// invalidated or the bounds changed.
type Source[P Parameters] struct {
	builder     Builder[P]
	invalidated bool

	cached   *pathgeom.Geometry
	geometry *pathgeom.Geometry
	logical  pathgeom.Rect
	layout   pathgeom.Rect
}

// NewSource returns an invalidated source that builds geometry with b.
func NewSource[P Parameters](b Builder[P]) *Source[P] {
	return &Source[P]{builder: b, invalidated: true}
}

// Geometry returns the output geometry, after the effect has been applied.
func (s *Source[P]) Geometry() *pathgeom.Geometry { return s.geometry }

// LogicalBounds returns the bounds the geometry was last built for.
func (s *Source[P]) LogicalBounds() pathgeom.Rect { return s.logical }

// LayoutBounds returns the layout bounds of the last update.
func (s *Source[P]) LayoutBounds() pathgeom.Rect { return s.layout }

// InvalidateGeometry marks the source as invalidated and reports whether it
// wasn't already. TemplateChanged additionally drops the cached geometry.
func (s *Source[P]) InvalidateGeometry(reasons Reasons) bool {
	if reasons&TemplateChanged != 0 {
		s.cached = nil
	}
	if s.invalidated {
		return false
	}
	s.invalidated = true
	return true
}

// UpdateGeometry brings the geometry up to date and reports whether it
// changed. A change in the logical bounds forces the effect to recompute
// even if it hasn't been invalidated.
func (s *Source[P]) UpdateGeometry(params P, layout pathgeom.Rect) bool {
	logical := s.builder.LogicalBounds(layout, params)
	changed := s.layout != layout || s.logical != logical
	if s.invalidated || changed {
		s.layout = layout
		s.logical = logical
		var built bool
		s.cached, built = s.builder.Build(params, logical, s.cached)
		changed = changed || built
		if s.applyEffect(params, changed) {
			changed = true
		}
		slogger().Debug("effect: source updated", "bounds", logical, "changed", changed)
	}
	s.invalidated = false
	return changed
}

func (s *Source[P]) applyEffect(params P, force bool) bool {
	changed := false
	out := s.cached
	if e := attachedEffect(params); e != nil {
		if force {
			changed = true
			e.InvalidateGeometry(ParentInvalidated)
		}
		if e.ProcessGeometry(s.cached) {
			changed = true
		}
		out = e.Output()
	}
	if s.geometry != out {
		changed = true
		s.geometry = out
	}
	return changed
}

// attachedEffect returns the effect of params if it is attached to params
// itself, and nil otherwise.
func attachedEffect(params Parameters) Effect {
	e := params.GeometryEffect()
	if e == nil {
		return nil
	}
	if owner, ok := params.(Invalidator); !ok || e.Parent() != owner {
		return nil
	}
	return e
}

// PathParameters are the parameters of a [PathSource].
type PathParameters interface {
	Parameters
	// Data returns the geometry to lay out, in its own coordinate space.
	Data() *pathgeom.Geometry
}

// PathSource lays out arbitrary geometry. Unless the stretch is
// StretchNone, the geometry is scaled to the logical bounds, preserving its
// aspect ratio for the uniform stretch modes.
type PathSource struct{}

func (PathSource) LogicalBounds(layout pathgeom.Rect, params PathParameters) pathgeom.Rect {
	return InsetBounds(layout, params)
}

func (PathSource) Build(params PathParameters, logical pathgeom.Rect, prev *pathgeom.Geometry) (*pathgeom.Geometry, bool) {
	data := params.Data()
	if data == nil {
		return nil, prev != nil
	}
	var out *pathgeom.Geometry
	if params.Stretch() == pathgeom.StretchNone {
		out = data.Clone()
	} else {
		out = data.Transform(fitTransform(data.Bounds(), params.Stretch(), logical))
	}
	if out.Equal(prev) {
		return prev, false
	}
	return out, true
}

// fitTransform maps from onto the part of logical selected by stretch.
// Degenerate axes are translated but not scaled.
func fitTransform(from pathgeom.Rect, stretch pathgeom.Stretch, logical pathgeom.Rect) pathgeom.Affine {
	to := pathgeom.StretchBounds(logical, stretch, from.Size())
	sx := pathgeom.SafeDivide(to.Width(), from.Width(), 1)
	sy := pathgeom.SafeDivide(to.Height(), from.Height(), 1)
	return pathgeom.Translate(pathgeom.Vec(to.X0, to.Y0)).
		Mul(pathgeom.Scale(sx, sy)).
		Mul(pathgeom.Translate(pathgeom.Vec(-from.X0, -from.Y0)))
}

// PolygonParameters are the parameters of a [PolygonSource].
type PolygonParameters interface {
	Parameters
	// PointCount is the number of corners, rounded and clamped to [3, 100].
	PointCount() float64
	// InnerRadius is the radius of the inner vertices of a star, relative to
	// the outer radius and clamped to [0, 1]. A value of 1 produces a regular
	// polygon.
	InnerRadius() float64
}

// PolygonSource produces regular polygons and stars inscribed in the logical
// bounds, with the first vertex at the top.
type PolygonSource struct{}

const (
	minPolygonPoints = 3
	maxPolygonPoints = 100
)

func (PolygonSource) LogicalBounds(layout pathgeom.Rect, params PolygonParameters) pathgeom.Rect {
	return pathgeom.StretchBounds(InsetBounds(layout, params), params.Stretch(), pathgeom.Sz(1, 1))
}

func (PolygonSource) Build(params PolygonParameters, logical pathgeom.Rect, prev *pathgeom.Geometry) (*pathgeom.Geometry, bool) {
	count := minPolygonPoints
	if pc := params.PointCount(); !math.IsNaN(pc) {
		count = int(pathgeom.Clamp(math.Round(pc), minPolygonPoints, maxPolygonPoints))
	}
	inner := 1.0
	if ir := params.InnerRadius(); !math.IsNaN(ir) {
		inner = pathgeom.Clamp(ir, 0, 1)
	}

	step := 360 / float64(count)
	var pts []pathgeom.Point
	if inner < 1 {
		// The inner radius is relative to the inscribed circle of the
		// regular polygon, not to its corners.
		innerBounds := logical.Resize(inner * math.Cos(math.Pi/float64(count)))
		pts = make([]pathgeom.Point, 0, 2*count)
		for i := range count {
			angle := step * float64(i)
			pts = append(pts, logical.ArcPoint(angle), innerBounds.ArcPoint(angle+step/2))
		}
	} else {
		pts = make([]pathgeom.Point, 0, count)
		for i := range count {
			pts = append(pts, logical.ArcPoint(step*float64(i)))
		}
	}

	out := pathgeom.PolylineGeometry(pts, true, true)
	if out.Equal(prev) {
		return prev, false
	}
	return out, true
}
