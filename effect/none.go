package effect

import "honnef.co/go/pathgeom"

// NoneEffect passes its input through unchanged.
type NoneEffect struct {
	Node
}

// None returns a new pass-through effect.
func None() *NoneEffect { return &NoneEffect{} }

func (e *NoneEffect) ProcessGeometry(input *pathgeom.Geometry) bool {
	return e.Process(input, func(input, _ *pathgeom.Geometry) (*pathgeom.Geometry, bool) {
		return input, false
	})
}

func (e *NoneEffect) Clone() Effect { return None() }

// Equal reports whether o is a pass-through effect. A nil effect counts as
// one.
func (e *NoneEffect) Equal(o Effect) bool {
	if o == nil {
		return true
	}
	_, ok := o.(*NoneEffect)
	return ok
}
