// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"fmt"

	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/glstate"
	"github.com/gogpu/glcmd/state"
)

// Kind identifies the type of an instruction.
type Kind uint8

const (
	KindTransition   Kind = iota // Set one property
	KindDrawArrays               // Non-indexed draw
	KindDrawElements             // Indexed draw
	KindClear                    // Clear framebuffer layers
)

var kindNames = [...]string{
	KindTransition:   "Transition",
	KindDrawArrays:   "DrawArrays",
	KindDrawElements: "DrawElements",
	KindClear:        "Clear",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Instruction is one entry of a compiled program. Only the fields relevant
// to Kind are set.
type Instruction struct {
	Kind Kind

	// KindTransition
	Property *state.Property
	Value    state.Value

	// KindDrawArrays and KindDrawElements
	Mode  driver.DrawMode
	First int32
	Count int32

	// KindDrawElements
	IndexType driver.IndexType
	Offset    uintptr

	// KindClear
	Layers driver.Layer
}

// transition returns the instruction setting p to v.
func transition(p *state.Property, v state.Value) Instruction {
	return Instruction{Kind: KindTransition, Property: p, Value: v}
}

// String disassembles the instruction.
func (in Instruction) String() string {
	switch in.Kind {
	case KindTransition:
		return fmt.Sprintf("set %s = %s", in.Property.Name(), in.Property.Format(in.Value))
	case KindDrawArrays:
		return fmt.Sprintf("draw %s first=%d count=%d", in.Mode, in.First, in.Count)
	case KindDrawElements:
		return fmt.Sprintf("draw_elements %s count=%d type=%s offset=%d", in.Mode, in.Count, in.IndexType, in.Offset)
	case KindClear:
		return "clear " + in.Layers.String()
	}
	return in.Kind.String()
}

// exec issues the instruction on d.
func (in *Instruction) exec(d driver.Driver) {
	switch in.Kind {
	case KindTransition:
		glstate.Apply(d, in.Property, in.Value)
	case KindDrawArrays:
		d.DrawArrays(in.Mode, in.First, in.Count)
	case KindDrawElements:
		d.DrawElements(in.Mode, in.Count, in.IndexType, in.Offset)
	case KindClear:
		d.Clear(in.Layers)
	}
}
