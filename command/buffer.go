// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"fmt"
	"strings"

	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/state"
)

// CommandBuffer is an immutable compiled program together with the
// operations it was linked from and the resources they reference.
//
// The program is linked against the default state. A short prologue
// restores the default of every property the program reads before setting
// it and leaves changed, so a replay starting from the state a previous
// replay left behind behaves like one starting from the default state.
//
// A CommandBuffer is safe for concurrent use, but replays against one
// driver must be serialized by the caller.
type CommandBuffer struct {
	ctx       *Context
	ops       []*Operation
	prologue  []Instruction
	program   []Instruction
	realized  *state.State
	resources []Resource
}

// Execute replays the prologue and the program on d. No analysis happens
// at replay. d must be in the default state or in the state a previous
// Execute of cb left it in.
//
// If d implements driver.ErrorReporter, its error is checked once after
// the program has run.
func (cb *CommandBuffer) Execute(d driver.Driver) error {
	if d == nil {
		return invalidf("nil driver")
	}
	for i := range cb.prologue {
		cb.prologue[i].exec(d)
	}
	for i := range cb.program {
		cb.program[i].exec(d)
	}
	if r, ok := d.(driver.ErrorReporter); ok {
		if err := r.Err(); err != nil {
			return fmt.Errorf("command: replay on %s: %w", cb.ctx, err)
		}
	}
	return nil
}

// Context returns the context the buffer was recorded for.
func (cb *CommandBuffer) Context() *Context { return cb.ctx }

// Instructions returns a copy of the compiled program.
func (cb *CommandBuffer) Instructions() []Instruction {
	out := make([]Instruction, len(cb.program))
	copy(out, cb.program)
	return out
}

// Prologue returns a copy of the transitions Execute runs before the
// program. It is empty when the program never relies on a starting value
// it later changes.
func (cb *CommandBuffer) Prologue() []Instruction {
	out := make([]Instruction, len(cb.prologue))
	copy(out, cb.prologue)
	return out
}

// Operations returns the recorded operations in order.
func (cb *CommandBuffer) Operations() []*Operation {
	out := make([]*Operation, len(cb.ops))
	copy(out, cb.ops)
	return out
}

// Realized returns the driver state after a replay from the default state.
// Requested state that no operation read is not part of it.
func (cb *CommandBuffer) Realized() *state.State { return cb.realized }

// Resources returns every distinct resource the buffer's operations read,
// in first-use order.
func (cb *CommandBuffer) Resources() []Resource {
	out := make([]Resource, len(cb.resources))
	copy(out, cb.resources)
	return out
}

// Transitions returns the number of state transitions in the program,
// not counting the prologue.
func (cb *CommandBuffer) Transitions() int {
	n := 0
	for i := range cb.program {
		if cb.program[i].Kind == KindTransition {
			n++
		}
	}
	return n
}

// String disassembles the program, one instruction per line. The prologue
// is not included.
func (cb *CommandBuffer) String() string {
	var sb strings.Builder
	for i := range cb.program {
		sb.WriteString(cb.program[i].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
