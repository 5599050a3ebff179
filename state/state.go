// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"sort"
	"strings"
)

// maxDelta bounds the number of overrides a snapshot carries before they
// are folded into a fresh root.
const maxDelta = 16

// root is a flat, immutable array holding one value per property.
type root struct {
	values []Value
}

// entry overrides the root value of one property.
type entry struct {
	index int
	value Value
}

// State is an immutable snapshot assigning a value to every property of a
// registry. The zero value is not usable; snapshots come from
// [Registry.Default] and derivations of it.
//
// State is safe for concurrent use.
type State struct {
	reg   *Registry
	root  *root
	delta []entry // sorted by index, never equal to the root value
}

// Registry returns the registry the snapshot belongs to.
func (s *State) Registry() *Registry { return s.reg }

// Get returns the value of p in s.
func (s *State) Get(p *Property) Value {
	s.reg.mustOwn(p)
	return s.get(p.index)
}

func (s *State) get(index int) Value {
	if i, ok := s.find(index); ok {
		return s.delta[i].value
	}
	return s.root.values[index]
}

// find locates index in the delta.
func (s *State) find(index int) (int, bool) {
	i := sort.Search(len(s.delta), func(i int) bool { return s.delta[i].index >= index })
	return i, i < len(s.delta) && s.delta[i].index == index
}

// With returns a snapshot equal to s except that p holds v. If p already
// holds v, With returns s itself.
func (s *State) With(p *Property, v Value) *State {
	s.reg.mustOwn(p)
	if s.get(p.index) == v {
		return s
	}

	rootValue := s.root.values[p.index]
	i, found := s.find(p.index)
	switch {
	case found && v == rootValue:
		delta := make([]entry, 0, len(s.delta)-1)
		delta = append(delta, s.delta[:i]...)
		delta = append(delta, s.delta[i+1:]...)
		return &State{reg: s.reg, root: s.root, delta: delta}
	case found:
		delta := make([]entry, len(s.delta))
		copy(delta, s.delta)
		delta[i].value = v
		return &State{reg: s.reg, root: s.root, delta: delta}
	}

	if len(s.delta) >= maxDelta {
		return s.compact(entry{index: p.index, value: v})
	}
	delta := make([]entry, 0, len(s.delta)+1)
	delta = append(delta, s.delta[:i]...)
	delta = append(delta, entry{index: p.index, value: v})
	delta = append(delta, s.delta[i:]...)
	return &State{reg: s.reg, root: s.root, delta: delta}
}

// compact folds the delta and the extra overrides into a new root.
func (s *State) compact(extra ...entry) *State {
	values := make([]Value, len(s.root.values))
	copy(values, s.root.values)
	for _, e := range s.delta {
		values[e.index] = e.value
	}
	for _, e := range extra {
		values[e.index] = e.value
	}
	return &State{reg: s.reg, root: &root{values: values}}
}

// Diff returns the properties whose values differ between s and o, in
// declaration order. Snapshots derived from a common root only compare
// the properties either of them overrides.
func (s *State) Diff(o *State) []*Property {
	if s.reg != o.reg {
		panic("state: Diff between snapshots of different registries")
	}
	if s == o {
		return nil
	}

	var out []*Property
	if s.root == o.root {
		i, j := 0, 0
		for i < len(s.delta) || j < len(o.delta) {
			var index int
			switch {
			case j >= len(o.delta) || (i < len(s.delta) && s.delta[i].index < o.delta[j].index):
				index = s.delta[i].index
				i++
			case i >= len(s.delta) || o.delta[j].index < s.delta[i].index:
				index = o.delta[j].index
				j++
			default:
				index = s.delta[i].index
				i++
				j++
			}
			if s.get(index) != o.get(index) {
				out = append(out, s.reg.props[index])
			}
		}
		return out
	}

	for index := range s.root.values {
		if s.get(index) != o.get(index) {
			out = append(out, s.reg.props[index])
		}
	}
	return out
}

// Equal reports whether s and o hold the same value for every property.
func (s *State) Equal(o *State) bool {
	return len(s.Diff(o)) == 0
}

// String lists the properties that differ from the default snapshot.
func (s *State) String() string {
	diff := s.reg.Default().Diff(s)
	if len(diff) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range diff {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.name)
		sb.WriteByte('=')
		sb.WriteString(p.Format(s.get(p.index)))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Mutable returns a mutable copy of s for updating several properties
// before producing a single derived snapshot.
func (s *State) Mutable() *MutableState {
	return &MutableState{base: s}
}

// MutableState accumulates property updates on top of a base snapshot.
// It is not safe for concurrent use.
type MutableState struct {
	base    *State
	pending []entry // sorted by index
}

// Set assigns v to p and returns m for chaining.
func (m *MutableState) Set(p *Property, v Value) *MutableState {
	m.base.reg.mustOwn(p)
	i := sort.Search(len(m.pending), func(i int) bool { return m.pending[i].index >= p.index })
	if i < len(m.pending) && m.pending[i].index == p.index {
		m.pending[i].value = v
		return m
	}
	m.pending = append(m.pending, entry{})
	copy(m.pending[i+1:], m.pending[i:])
	m.pending[i] = entry{index: p.index, value: v}
	return m
}

// Get returns the value of p including pending updates.
func (m *MutableState) Get(p *Property) Value {
	m.base.reg.mustOwn(p)
	i := sort.Search(len(m.pending), func(i int) bool { return m.pending[i].index >= p.index })
	if i < len(m.pending) && m.pending[i].index == p.index {
		return m.pending[i].value
	}
	return m.base.get(p.index)
}

// Snapshot returns an immutable snapshot with every pending update
// applied. If no update changes a value, Snapshot returns the base
// snapshot itself. m may keep being used afterwards.
func (m *MutableState) Snapshot() *State {
	base := m.base
	changed := false
	for _, e := range m.pending {
		if base.get(e.index) != e.value {
			changed = true
			break
		}
	}
	if !changed {
		return base
	}

	merged := make([]entry, 0, len(base.delta)+len(m.pending))
	i, j := 0, 0
	for i < len(base.delta) || j < len(m.pending) {
		var e entry
		switch {
		case j >= len(m.pending) || (i < len(base.delta) && base.delta[i].index < m.pending[j].index):
			e = base.delta[i]
			i++
		case i >= len(base.delta) || m.pending[j].index < base.delta[i].index:
			e = m.pending[j]
			j++
		default:
			e = m.pending[j]
			i++
			j++
		}
		if base.root.values[e.index] != e.value {
			merged = append(merged, e)
		}
	}

	out := &State{reg: base.reg, root: base.root, delta: merged}
	if len(merged) > maxDelta {
		out = (&State{reg: base.reg, root: base.root}).compact(merged...)
	}
	m.base = out
	m.pending = m.pending[:0]
	return out
}
