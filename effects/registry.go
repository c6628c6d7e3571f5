// File: registry.go
// Role: the flat, indexed effect catalog (spec §4.2). Order is fixed at
// config-build time — struct, then attr, then dyadic — and shared by
// every other component that walks θ by index (spec §3: "Order of indices
// is fixed at configuration time and shared across all components").
package effects

import "fmt"

// Registry is the resolved, ordered list of effects for one estimation
// task. It is built once by the driver and never mutated afterward.
type Registry struct {
	effects []Effect
	byName  map[string]int
}

// NewRegistry builds a Registry from already-resolved effects, in the
// order struct, then attr, then dyadic (spec §4.3 step 2). Duplicate
// names are rejected — a config listing the same effect twice is a
// config-semantics error, and this is the check that catches it.
func NewRegistry(structEffects, attrEffects, dyadicEffects []Effect) (*Registry, error) {
	r := &Registry{byName: make(map[string]int)}
	for _, group := range [][]Effect{structEffects, attrEffects, dyadicEffects} {
		for _, e := range group {
			if _, dup := r.byName[e.Name]; dup {
				return nil, fmt.Errorf("effects: duplicate effect name %q", e.Name)
			}
			r.byName[e.Name] = len(r.effects)
			r.effects = append(r.effects, e)
		}
	}

	return r, nil
}

// Len returns the parameter count p (spec §3).
func (r *Registry) Len() int { return len(r.effects) }

// InOrder returns the effects in fixed registry order; the slice is
// read-only.
func (r *Registry) InOrder() []Effect { return r.effects }

// ByName resolves an effect name to its registry index, or (-1, false).
func (r *Registry) ByName(name string) (int, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return -1, false
	}

	return idx, true
}

// Names returns the effect names in registry order, for θ/dzA stream
// headers (spec §4.7).
func (r *Registry) Names() []string {
	out := make([]string, len(r.effects))
	for i, e := range r.effects {
		out[i] = e.Name
	}

	return out
}

// HasArc reports whether "Arc" is among the struct effects — used by the
// driver to enforce spec §4.4's "config error to list Arc among the
// structural effects when IFD is enabled".
func (r *Registry) HasArc() bool {
	_, ok := r.ByName("Arc")

	return ok
}
