// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import "github.com/gogpu/glcmd/state"

// Operation is one recorded draw or clear: the snapshot that must be in
// effect when it runs, the properties it reads directly, and its effect.
//
// Operations are immutable and may be shared between command buffers.
type Operation struct {
	target  *state.State
	deps    []*state.Property
	effect  Instruction
	program *Program
	binding *Binding
}

// State returns the snapshot captured when the operation was recorded.
func (o *Operation) State() *state.State { return o.target }

// Dependencies returns the first-order dependency set of the operation.
func (o *Operation) Dependencies() []*state.Property {
	out := make([]*state.Property, len(o.deps))
	copy(out, o.deps)
	return out
}

// Effect returns the instruction that performs the operation.
func (o *Operation) Effect() Instruction { return o.effect }

// Resolve returns the full dependency set of the operation evaluated
// against its own snapshot, prerequisites first.
func (o *Operation) Resolve() ([]*state.Property, error) {
	return o.target.Registry().Resolve(o.deps, o.target)
}
