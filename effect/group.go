package effect

import "honnef.co/go/pathgeom"

// GroupEffect applies its children in order, feeding each child's output
// into the next one.
type GroupEffect struct {
	Node
	children []Effect
}

// NewGroup returns a group of the given effects and attaches them to it.
// Effects that are already attached elsewhere are cloned first.
func NewGroup(children ...Effect) *GroupEffect {
	g := &GroupEffect{children: make([]Effect, 0, len(children))}
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent() != nil {
			c = c.Clone()
		}
		c.Attach(g)
		g.children = append(g.children, c)
	}
	return g
}

// Children returns the group's effects. The slice must not be modified.
func (g *GroupEffect) Children() []Effect { return g.children }

// InvalidateGeometry invalidates the group. Invalidations that don't come
// from a child are passed on to all children, whose input is about to
// change.
func (g *GroupEffect) InvalidateGeometry(reasons Reasons) bool {
	if reasons&ChildInvalidated == 0 {
		for _, c := range g.children {
			c.InvalidateGeometry(ParentInvalidated)
		}
	}
	return g.Node.InvalidateGeometry(reasons)
}

func (g *GroupEffect) ProcessGeometry(input *pathgeom.Geometry) bool {
	return g.Process(input, g.update)
}

func (g *GroupEffect) update(input, prev *pathgeom.Geometry) (*pathgeom.Geometry, bool) {
	out := input
	changed := false
	for _, c := range g.children {
		if changed {
			c.InvalidateGeometry(ParentInvalidated)
		}
		if c.ProcessGeometry(out) {
			changed = true
		}
		out = c.Output()
	}
	return out, changed || out != prev
}

func (g *GroupEffect) Clone() Effect {
	children := make([]Effect, len(g.children))
	for i, c := range g.children {
		children[i] = c.Clone()
	}
	return NewGroup(children...)
}

func (g *GroupEffect) Equal(o Effect) bool {
	og, ok := o.(*GroupEffect)
	if !ok || len(og.children) != len(g.children) {
		return false
	}
	for i, c := range g.children {
		if !c.Equal(og.children[i]) {
			return false
		}
	}
	return true
}
