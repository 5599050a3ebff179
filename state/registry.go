// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDependencyCycle is returned when the declared prerequisite graph
// contains a cycle. It always indicates a defect in the property
// declarations, never in runtime input.
var ErrDependencyCycle = errors.New("state: dependency cycle")

// Condition decides whether a requirement applies to a target snapshot.
type Condition func(s *State) bool

// requirement is one declared prerequisite edge.
type requirement struct {
	prereq *Property
	when   Condition
}

// Property describes one orthogonal facet of driver state.
// Properties are created by [Registry.Define] and are immutable once the
// registry is sealed.
type Property struct {
	reg      *Registry
	index    int
	name     string
	def      Value
	format   func(Value) string
	requires []requirement
}

// Option configures a property at definition time.
type Option func(*Property)

// WithFormat sets the function used to render the property's values.
func WithFormat(f func(Value) string) Option {
	return func(p *Property) {
		p.format = f
	}
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// Index returns the dense declaration index of the property.
func (p *Property) Index() int { return p.index }

// Default returns the value the property holds in the default snapshot.
func (p *Property) Default() Value { return p.def }

// Registry returns the registry that defined the property.
func (p *Property) Registry() *Registry { return p.reg }

// String implements fmt.Stringer.
func (p *Property) String() string { return p.name }

// Format renders a value of this property.
func (p *Property) Format(v Value) string {
	if p.format == nil {
		return FormatDecimal(v)
	}
	return p.format(v)
}

// Prerequisites returns the properties that must be settled before a
// change to p may be trusted under target snapshot s, in declaration order
// of the requirements.
func (p *Property) Prerequisites(s *State) []*Property {
	if len(p.requires) == 0 {
		return nil
	}
	out := make([]*Property, 0, len(p.requires))
	for _, req := range p.requires {
		if req.when == nil || req.when(s) {
			out = append(out, req.prereq)
		}
	}
	return out
}

// Registry is a sealed vocabulary of properties together with their
// dependency graph.
//
// A Registry is built once at startup: Define and Require are not safe for
// concurrent use and panic after Seal. A sealed Registry is read-only and
// safe for concurrent use.
type Registry struct {
	props  []*Property
	byName map[string]*Property
	sealed bool
	def    *State
}

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Property)}
}

// Define declares a new property with the given name and default value.
// Define panics if the registry is sealed or the name is already taken.
func (r *Registry) Define(name string, def Value, opts ...Option) *Property {
	if r.sealed {
		panic("state: Define called on sealed registry")
	}
	if _, dup := r.byName[name]; dup {
		panic("state: Define called twice for " + name)
	}
	p := &Property{
		reg:   r,
		index: len(r.props),
		name:  name,
		def:   def,
	}
	for _, opt := range opts {
		opt(p)
	}
	r.props = append(r.props, p)
	r.byName[name] = p
	return p
}

// Require declares prereq as an unconditional prerequisite of p.
func (r *Registry) Require(p, prereq *Property) {
	r.RequireWhen(p, prereq, nil)
}

// RequireWhen declares prereq as a prerequisite of p for target snapshots
// where when returns true. A nil condition always applies.
//
// Cycle detection in Seal considers every declared edge regardless of its
// condition, so a sealed registry is acyclic for every reachable snapshot.
func (r *Registry) RequireWhen(p, prereq *Property, when Condition) {
	if r.sealed {
		panic("state: Require called on sealed registry")
	}
	r.mustOwn(p)
	r.mustOwn(prereq)
	p.requires = append(p.requires, requirement{prereq: prereq, when: when})
}

// Seal freezes the registry, verifies the dependency graph is acyclic and
// creates the default snapshot. Seal returns an error wrapping
// ErrDependencyCycle naming the cycle path if one exists; the registry
// stays unsealed in that case.
func (r *Registry) Seal() error {
	if r.sealed {
		return nil
	}
	if err := r.detectCycles(); err != nil {
		return err
	}
	values := make([]Value, len(r.props))
	for i, p := range r.props {
		values[i] = p.def
	}
	r.def = &State{reg: r, root: &root{values: values}}
	r.sealed = true
	return nil
}

// Sealed reports whether Seal has completed successfully.
func (r *Registry) Sealed() bool { return r.sealed }

// Default returns the registry's default snapshot. Every call returns the
// same snapshot. Default panics if the registry is not sealed.
func (r *Registry) Default() *State {
	if !r.sealed {
		panic("state: Default called on unsealed registry")
	}
	return r.def
}

// Len returns the number of defined properties.
func (r *Registry) Len() int { return len(r.props) }

// Property returns the property with the given declaration index.
func (r *Registry) Property(index int) *Property { return r.props[index] }

// Properties returns all properties in declaration order.
func (r *Registry) Properties() []*Property {
	out := make([]*Property, len(r.props))
	copy(out, r.props)
	return out
}

// Lookup finds a property by name.
func (r *Registry) Lookup(name string) (*Property, bool) {
	p, ok := r.byName[name]
	return p, ok
}

func (r *Registry) mustOwn(p *Property) {
	if p == nil || p.reg != r {
		panic("state: property belongs to another registry")
	}
}

// detectCycles walks every declared edge with a three-colour depth-first
// search and reports the first cycle found.
func (r *Registry) detectCycles() error {
	const (
		unvisited = iota
		visiting
		done
	)
	color := make([]uint8, len(r.props))
	var path []*Property

	var visit func(p *Property) error
	visit = func(p *Property) error {
		switch color[p.index] {
		case done:
			return nil
		case visiting:
			return cycleError(path, p)
		}
		color[p.index] = visiting
		path = append(path, p)
		for _, req := range p.requires {
			if err := visit(req.prereq); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		color[p.index] = done
		return nil
	}

	for _, p := range r.props {
		if color[p.index] == unvisited {
			if err := visit(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// cycleError formats the part of path starting at the repeated property.
func cycleError(path []*Property, repeated *Property) error {
	start := 0
	for i, p := range path {
		if p == repeated {
			start = i
			break
		}
	}
	names := make([]string, 0, len(path)-start+1)
	for _, p := range path[start:] {
		names = append(names, p.name)
	}
	names = append(names, repeated.name)
	return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(names, " -> "))
}
