package effect

import (
	"maps"
	"slices"
)

// registry maps the textual shorthands for effects to prototypes. It is never
// modified after initialization.
var registry = map[string]Effect{
	"None":   None(),
	"Sketch": NewSketch(0),
}

// Names returns the names of all registered effects, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns a new, detached instance of the effect registered under
// name.
func Lookup(name string) (Effect, bool) {
	proto, ok := registry[name]
	if !ok {
		return nil, false
	}
	return proto.Clone(), true
}

// NameOf returns the name under which an effect equal to e is registered. A
// nil effect is named "None".
func NameOf(e Effect) (string, bool) {
	for _, name := range Names() {
		if registry[name].Equal(e) {
			return name, true
		}
	}
	return "", false
}
