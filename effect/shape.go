package effect

import "honnef.co/go/pathgeom"

// geometrySource is the part of a [Source] that [Shape] needs without
// knowing its parameter type.
type geometrySource interface {
	Invalidator
	Geometry() *pathgeom.Geometry
}

// Shape holds the properties shared by all shapes and owns the shape's
// effect. It is embedded by concrete shapes such as [RegularPolygon] and
// [Path], which connect it to a geometry source.
//
// Setting a property invalidates the geometry; [Shape.Arrange] recomputes
// it.
type Shape struct {
	// self is the embedding shape. Effects are attached to it, so that the
	// source recognizes them as belonging to its parameters.
	self    Invalidator
	source  geometrySource
	arrange func(layout pathgeom.Rect) bool

	stretch   pathgeom.Stretch
	thickness float64
	stroked   bool
	effect    Effect
	rendered  *pathgeom.Geometry
}

func (s *Shape) init(self Invalidator, source geometrySource, arrange func(pathgeom.Rect) bool) {
	s.self = self
	s.source = source
	s.arrange = arrange
	s.stretch = pathgeom.StretchFill
}

// InvalidateGeometry invalidates the shape's geometry source.
func (s *Shape) InvalidateGeometry(reasons Reasons) bool {
	return s.source.InvalidateGeometry(reasons)
}

func (s *Shape) Stretch() pathgeom.Stretch { return s.stretch }

func (s *Shape) SetStretch(stretch pathgeom.Stretch) {
	if s.stretch != stretch {
		s.stretch = stretch
		s.InvalidateGeometry(PropertyChanged)
	}
}

func (s *Shape) StrokeThickness() (float64, bool) { return s.thickness, s.stroked }

// SetStroke makes the shape stroked with the given thickness.
func (s *Shape) SetStroke(thickness float64) {
	if !s.stroked || s.thickness != thickness {
		s.thickness = thickness
		s.stroked = true
		s.InvalidateGeometry(PropertyChanged)
	}
}

// ClearStroke makes the shape unstroked.
func (s *Shape) ClearStroke() {
	if s.stroked {
		s.stroked = false
		s.InvalidateGeometry(PropertyChanged)
	}
}

func (s *Shape) GeometryEffect() Effect { return s.effect }

// SetGeometryEffect replaces the shape's effect. The previous effect is
// detached. An effect that is already attached to another shape or effect is
// cloned, and the clone is attached instead.
func (s *Shape) SetGeometryEffect(e Effect) {
	old := s.effect
	if old == e {
		return
	}
	if old != nil && old.Parent() == s.self {
		old.Detach()
	}
	if e != nil && e.Parent() != nil {
		e = e.Clone()
	}
	s.effect = e
	if e != nil {
		e.Attach(s.self)
	}
}

// Arrange lays the shape out in the given bounds and returns its geometry,
// reporting whether it changed since the last call.
func (s *Shape) Arrange(layout pathgeom.Rect) (*pathgeom.Geometry, bool) {
	changed := s.arrange(layout)
	if changed {
		s.rendered = s.source.Geometry()
	}
	return s.rendered, changed
}

// RenderedGeometry returns the geometry produced by the most recent
// [Shape.Arrange].
func (s *Shape) RenderedGeometry() *pathgeom.Geometry { return s.rendered }

// RegularPolygon is a shape drawing a regular polygon or star.
type RegularPolygon struct {
	Shape
	pointCount  float64
	innerRadius float64
}

var _ PolygonParameters = (*RegularPolygon)(nil)

// NewRegularPolygon returns a hexagon that fills its layout bounds.
func NewRegularPolygon() *RegularPolygon {
	p := &RegularPolygon{pointCount: 6, innerRadius: 1}
	src := NewSource[PolygonParameters](PolygonSource{})
	p.init(p, src, func(layout pathgeom.Rect) bool {
		return src.UpdateGeometry(p, layout)
	})
	return p
}

func (p *RegularPolygon) PointCount() float64 { return p.pointCount }

func (p *RegularPolygon) SetPointCount(n float64) {
	if p.pointCount != n {
		p.pointCount = n
		p.InvalidateGeometry(PropertyChanged)
	}
}

func (p *RegularPolygon) InnerRadius() float64 { return p.innerRadius }

func (p *RegularPolygon) SetInnerRadius(r float64) {
	if p.innerRadius != r {
		p.innerRadius = r
		p.InvalidateGeometry(PropertyChanged)
	}
}

// Path is a shape drawing arbitrary geometry.
type Path struct {
	Shape
	data *pathgeom.Geometry
}

var _ PathParameters = (*Path)(nil)

// NewPath returns a path shape drawing data at its own coordinates.
func NewPath(data *pathgeom.Geometry) *Path {
	p := &Path{data: data}
	src := NewSource[PathParameters](PathSource{})
	p.init(p, src, func(layout pathgeom.Rect) bool {
		return src.UpdateGeometry(p, layout)
	})
	p.stretch = pathgeom.StretchNone
	return p
}

func (p *Path) Data() *pathgeom.Geometry { return p.data }

// SetData replaces the path's geometry. The geometry must not be modified
// afterwards.
func (p *Path) SetData(data *pathgeom.Geometry) {
	if p.data != data {
		p.data = data
		p.InvalidateGeometry(PropertyChanged)
	}
}
