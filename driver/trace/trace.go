// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package trace provides a driver that records every call it receives and
// shadows the GL state those calls establish.
//
// The trace driver is registered as "trace":
//
//	import _ "github.com/gogpu/glcmd/driver/trace"
//
//	d := driver.Must("trace").(*trace.Driver)
package trace

import (
	"fmt"
	"maps"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcmd/driver"
)

func init() {
	driver.Register("trace", func() (driver.Driver, error) {
		return New(), nil
	})
}

// TextureKey identifies one texture binding point.
type TextureKey struct {
	Unit   uint32
	Target driver.TextureTarget
}

// Snapshot is the GL state shadowed by the trace driver.
type Snapshot struct {
	VertexArray    uint32
	Program        uint32
	StorageBuffers map[uint32]uint32
	UniformBuffers map[uint32]uint32
	Textures       map[TextureKey]uint32

	StencilTest        bool
	StencilMask        uint32
	StencilCompare     gputypes.CompareFunction
	StencilReference   int32
	StencilCompareMask uint32
	StencilOperations  [3]driver.StencilOperation

	DepthTest    bool
	DepthCompare gputypes.CompareFunction
	DepthWrite   bool
}

// DefaultSnapshot returns the state of a freshly created GL context.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		StorageBuffers:     map[uint32]uint32{},
		UniformBuffers:     map[uint32]uint32{},
		Textures:           map[TextureKey]uint32{},
		StencilMask:        ^uint32(0),
		StencilCompare:     gputypes.CompareFunctionAlways,
		StencilCompareMask: ^uint32(0),
		DepthCompare:       gputypes.CompareFunctionLess,
		DepthWrite:         true,
	}
}

func (s Snapshot) clone() Snapshot {
	s.StorageBuffers = maps.Clone(s.StorageBuffers)
	s.UniformBuffers = maps.Clone(s.UniformBuffers)
	s.Textures = maps.Clone(s.Textures)
	return s
}

// Draw is the shadowed state in effect when a draw or clear was issued.
type Draw struct {
	Call  string
	State Snapshot
}

// Driver records calls and shadows the state they set.
// The zero value is not usable; create drivers with New.
//
// Driver is not safe for concurrent use.
type Driver struct {
	calls   []string
	draws   []Draw
	current Snapshot
	err     error
}

// New creates a trace driver starting from DefaultSnapshot.
func New() *Driver {
	return &Driver{current: DefaultSnapshot()}
}

// Calls returns the recorded calls in order.
func (d *Driver) Calls() []string {
	out := make([]string, len(d.calls))
	copy(out, d.calls)
	return out
}

// Draws returns the draw and clear calls with the state they observed.
func (d *Driver) Draws() []Draw {
	out := make([]Draw, len(d.draws))
	copy(out, d.draws)
	return out
}

// State returns a copy of the current shadowed state.
func (d *Driver) State() Snapshot {
	return d.current.clone()
}

// Reset forgets recorded calls and draws but keeps the shadowed state,
// like a live context between frames.
func (d *Driver) Reset() {
	d.calls = d.calls[:0]
	d.draws = d.draws[:0]
}

// Fail makes the next Err call return err.
func (d *Driver) Fail(err error) {
	d.err = err
}

// Err implements driver.ErrorReporter.
func (d *Driver) Err() error {
	err := d.err
	d.err = nil
	return err
}

func (d *Driver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *Driver) recordDraw(format string, args ...any) {
	d.record(format, args...)
	d.draws = append(d.draws, Draw{Call: d.calls[len(d.calls)-1], State: d.current.clone()})
}

// BindVertexArray implements driver.Driver.
func (d *Driver) BindVertexArray(vao uint32) {
	d.record("BindVertexArray(%d)", vao)
	d.current.VertexArray = vao
}

// UseProgram implements driver.Driver.
func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram(%d)", program)
	d.current.Program = program
}

// BindBufferBase implements driver.Driver.
func (d *Driver) BindBufferBase(target driver.BufferTarget, index, buffer uint32) {
	d.record("BindBufferBase(%s, %d, %d)", target, index, buffer)
	switch target {
	case driver.ShaderStorageBuffer:
		d.current.StorageBuffers[index] = buffer
	case driver.UniformBuffer:
		d.current.UniformBuffers[index] = buffer
	}
}

// BindTexture implements driver.Driver.
func (d *Driver) BindTexture(unit uint32, target driver.TextureTarget, texture uint32) {
	d.record("BindTexture(%d, %s, %d)", unit, target, texture)
	d.current.Textures[TextureKey{Unit: unit, Target: target}] = texture
}

// SetEnabled implements driver.Driver.
func (d *Driver) SetEnabled(c driver.Capability, enabled bool) {
	if enabled {
		d.record("Enable(%s)", c)
	} else {
		d.record("Disable(%s)", c)
	}
	switch c {
	case driver.StencilTest:
		d.current.StencilTest = enabled
	case driver.DepthTest:
		d.current.DepthTest = enabled
	}
}

// StencilMask implements driver.Driver.
func (d *Driver) StencilMask(mask uint32) {
	d.record("StencilMask(%#x)", mask)
	d.current.StencilMask = mask
}

// StencilCompare implements driver.Driver.
func (d *Driver) StencilCompare(fn gputypes.CompareFunction) {
	d.record("StencilCompare(%s)", driver.CompareName(fn))
	d.current.StencilCompare = fn
}

// StencilReference implements driver.Driver.
func (d *Driver) StencilReference(ref int32) {
	d.record("StencilReference(%d)", ref)
	d.current.StencilReference = ref
}

// StencilCompareMask implements driver.Driver.
func (d *Driver) StencilCompareMask(mask uint32) {
	d.record("StencilCompareMask(%#x)", mask)
	d.current.StencilCompareMask = mask
}

// StencilOperation implements driver.Driver.
func (d *Driver) StencilOperation(outcome driver.StencilOutcome, op driver.StencilOperation) {
	d.record("StencilOperation(%s, %s)", outcome, op)
	if int(outcome) < len(d.current.StencilOperations) {
		d.current.StencilOperations[outcome] = op
	}
}

// DepthCompare implements driver.Driver.
func (d *Driver) DepthCompare(fn gputypes.CompareFunction) {
	d.record("DepthCompare(%s)", driver.CompareName(fn))
	d.current.DepthCompare = fn
}

// DepthMask implements driver.Driver.
func (d *Driver) DepthMask(write bool) {
	d.record("DepthMask(%t)", write)
	d.current.DepthWrite = write
}

// DrawArrays implements driver.Driver.
func (d *Driver) DrawArrays(mode driver.DrawMode, first, count int32) {
	d.recordDraw("DrawArrays(%s, %d, %d)", mode, first, count)
}

// DrawElements implements driver.Driver.
func (d *Driver) DrawElements(mode driver.DrawMode, count int32, typ driver.IndexType, offset uintptr) {
	d.recordDraw("DrawElements(%s, %d, %s, %d)", mode, count, typ, offset)
}

// Clear implements driver.Driver.
func (d *Driver) Clear(layers driver.Layer) {
	d.recordDraw("Clear(%s)", layers)
}
