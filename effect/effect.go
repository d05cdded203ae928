// Package effect implements geometry effects: nodes that transform one
// geometry into another and cache the result until they are invalidated.
//
// Effects form a chain owned by a shape. Invalidation travels upwards from an
// effect to the shape that owns it (ChildInvalidated) and downwards from a
// geometry source into its effect (ParentInvalidated). Every node forwards an
// invalidation at most once per dirty period, so the two directions can't
// loop.
//
// Nothing in this package is safe for concurrent use. Effects are expected to
// be driven from a single layout goroutine.
package effect

import (
	"fmt"
	"log/slog"
	"strings"

	"honnef.co/go/pathgeom"
)

func slogger() *slog.Logger { return pathgeom.Logger() }

// Reasons is a set of reasons for invalidating a geometry.
type Reasons uint8

const (
	PropertyChanged Reasons = 1 << iota
	Animated
	ChildInvalidated
	ParentInvalidated
	TemplateChanged
)

func (r Reasons) String() string {
	if r == 0 {
		return "0"
	}
	names := [...]string{"PropertyChanged", "Animated", "ChildInvalidated", "ParentInvalidated", "TemplateChanged"}
	var parts []string
	for i, name := range names {
		if r&(1<<i) != 0 {
			parts = append(parts, name)
			r &^= 1 << i
		}
	}
	if r != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint8(r)))
	}
	return strings.Join(parts, "|")
}

// Invalidator is implemented by everything that caches geometry and can be
// told that the cache is stale. It reports whether the call changed the
// receiver's state, that is, whether it wasn't already invalidated.
type Invalidator interface {
	InvalidateGeometry(reasons Reasons) bool
}

// Effect is a node in an effect chain.
type Effect interface {
	Invalidator

	// ProcessGeometry recomputes the output from input if the effect is
	// invalidated, and reports whether the output changed.
	ProcessGeometry(input *pathgeom.Geometry) bool
	// Output returns the most recently computed output.
	Output() *pathgeom.Geometry

	// Parent returns the shape or effect the effect is attached to, or nil.
	Parent() Invalidator
	// Attach detaches the effect from its current parent, if any, and
	// attaches it to parent, invalidating both.
	Attach(parent Invalidator)
	// Detach drops the cached output and notifies the former parent.
	Detach()

	// Clone returns a detached copy of the effect.
	Clone() Effect
	// Equal reports whether o is an effect of the same kind and
	// configuration.
	Equal(o Effect) bool
}

// Node implements the caching and invalidation parts of [Effect]. Effects
// embed it and implement ProcessGeometry by calling [Node.Process] with
// their own update function.
//
// The zero value is a detached, invalidated node.
type Node struct {
	output *pathgeom.Geometry
	valid  bool
	parent Invalidator
}

// InvalidateGeometry marks the node as invalidated. Unless the invalidation
// came from the parent, the parent is notified with ChildInvalidated. It
// returns false, and does nothing, if the node was already invalidated.
func (n *Node) InvalidateGeometry(reasons Reasons) bool {
	if !n.valid {
		return false
	}
	n.valid = false
	if reasons&ParentInvalidated == 0 && n.parent != nil {
		n.parent.InvalidateGeometry(ChildInvalidated)
	}
	return true
}

// Invalidated reports whether the node's output is stale.
func (n *Node) Invalidated() bool { return !n.valid }

// Process calls update if the node is invalidated and stores its result as
// the node's output. update receives the input and the previous output, and
// reports whether the output changed.
func (n *Node) Process(input *pathgeom.Geometry, update func(input, prev *pathgeom.Geometry) (*pathgeom.Geometry, bool)) bool {
	if n.valid {
		return false
	}
	out, changed := update(input, n.output)
	n.output = out
	n.valid = true
	return changed
}

func (n *Node) Output() *pathgeom.Geometry { return n.output }

func (n *Node) Parent() Invalidator { return n.parent }

func (n *Node) Attach(parent Invalidator) {
	if n.parent != nil {
		n.Detach()
	}
	n.valid = false
	n.output = nil
	if parent != nil {
		n.parent = parent
		parent.InvalidateGeometry(ChildInvalidated)
	}
}

func (n *Node) Detach() {
	n.valid = false
	n.output = nil
	if p := n.parent; p != nil {
		n.parent = nil
		p.InvalidateGeometry(ChildInvalidated)
	}
}

// UpdateGeometry runs input through chain and returns the result, together
// with whether it differs from the chain's previous output. The chain is
// recomputed even if it isn't invalidated. A nil chain returns input
// unchanged.
func UpdateGeometry(chain Effect, input *pathgeom.Geometry) (*pathgeom.Geometry, bool) {
	if chain == nil {
		return input, false
	}
	chain.InvalidateGeometry(ParentInvalidated)
	changed := chain.ProcessGeometry(input)
	return chain.Output(), changed
}
