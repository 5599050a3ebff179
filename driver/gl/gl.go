// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build gl

// Package gl is a driver for OpenGL 4.3 core contexts, built on go-gl.
//
// The package is only compiled with the gl build tag. It registers itself
// as "gl":
//
//	import _ "github.com/gogpu/glcmd/driver/gl"
//
//	d, err := driver.New("gl") // a GL context must be current
//
// The driver issues calls on whichever context is current on the calling
// thread. Callers must lock the OS thread the context is bound to.
package gl

import (
	"fmt"
	"strings"

	gogl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcmd/driver"
)

func init() {
	driver.Register("gl", func() (driver.Driver, error) {
		d, err := New()
		if err != nil {
			return nil, err
		}
		return d, nil
	})
}

// Driver issues driver calls on the current OpenGL context.
//
// GL sets the stencil comparison with its reference and mask in one call,
// and the three stencil operations in another. Driver keeps the last value
// of each so the orthogonal driver.Driver calls can be combined.
type Driver struct {
	stencilFunc uint32
	stencilRef  int32
	stencilMask uint32
	stencilOps  [3]uint32
	activeUnit  uint32
}

// New loads the GL entry points of the current context and returns a
// driver assuming that context is in its default state.
func New() (*Driver, error) {
	if err := gogl.Init(); err != nil {
		return nil, fmt.Errorf("gl: init: %w", err)
	}
	keep := driver.StencilKeep.GL()
	return &Driver{
		stencilFunc: driver.CompareGL(gputypes.CompareFunctionAlways),
		stencilMask: ^uint32(0),
		stencilOps:  [3]uint32{keep, keep, keep},
		activeUnit:  driver.GLTexture0,
	}, nil
}

// BindVertexArray implements driver.Driver.
func (d *Driver) BindVertexArray(vao uint32) { gogl.BindVertexArray(vao) }

// UseProgram implements driver.Driver.
func (d *Driver) UseProgram(program uint32) { gogl.UseProgram(program) }

// BindBufferBase implements driver.Driver.
func (d *Driver) BindBufferBase(target driver.BufferTarget, index, buffer uint32) {
	gogl.BindBufferBase(target.GL(), index, buffer)
}

// BindTexture implements driver.Driver.
func (d *Driver) BindTexture(unit uint32, target driver.TextureTarget, texture uint32) {
	if active := driver.GLTexture0 + unit; active != d.activeUnit {
		gogl.ActiveTexture(active)
		d.activeUnit = active
	}
	gogl.BindTexture(target.GL(), texture)
}

// SetEnabled implements driver.Driver.
func (d *Driver) SetEnabled(c driver.Capability, enabled bool) {
	if enabled {
		gogl.Enable(c.GL())
	} else {
		gogl.Disable(c.GL())
	}
}

// StencilMask implements driver.Driver.
func (d *Driver) StencilMask(mask uint32) { gogl.StencilMask(mask) }

// StencilCompare implements driver.Driver.
func (d *Driver) StencilCompare(fn gputypes.CompareFunction) {
	d.stencilFunc = driver.CompareGL(fn)
	gogl.StencilFunc(d.stencilFunc, d.stencilRef, d.stencilMask)
}

// StencilReference implements driver.Driver.
func (d *Driver) StencilReference(ref int32) {
	d.stencilRef = ref
	gogl.StencilFunc(d.stencilFunc, d.stencilRef, d.stencilMask)
}

// StencilCompareMask implements driver.Driver.
func (d *Driver) StencilCompareMask(mask uint32) {
	d.stencilMask = mask
	gogl.StencilFunc(d.stencilFunc, d.stencilRef, d.stencilMask)
}

// StencilOperation implements driver.Driver.
func (d *Driver) StencilOperation(outcome driver.StencilOutcome, op driver.StencilOperation) {
	d.stencilOps[outcome] = op.GL()
	gogl.StencilOp(d.stencilOps[0], d.stencilOps[1], d.stencilOps[2])
}

// DepthCompare implements driver.Driver.
func (d *Driver) DepthCompare(fn gputypes.CompareFunction) { gogl.DepthFunc(driver.CompareGL(fn)) }

// DepthMask implements driver.Driver.
func (d *Driver) DepthMask(write bool) { gogl.DepthMask(write) }

// DrawArrays implements driver.Driver.
func (d *Driver) DrawArrays(mode driver.DrawMode, first, count int32) {
	gogl.DrawArrays(mode.GL(), first, count)
}

// DrawElements implements driver.Driver.
func (d *Driver) DrawElements(mode driver.DrawMode, count int32, typ driver.IndexType, offset uintptr) {
	gogl.DrawElements(mode.GL(), count, typ.GL(), gogl.PtrOffset(int(offset)))
}

// Clear implements driver.Driver.
func (d *Driver) Clear(layers driver.Layer) { gogl.Clear(layers.GL()) }

// Err drains the GL error queue. It implements driver.ErrorReporter.
func (d *Driver) Err() error {
	var codes []string
	for code := gogl.GetError(); code != gogl.NO_ERROR; code = gogl.GetError() {
		codes = append(codes, errorName(code))
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("gl: %s", strings.Join(codes, ", "))
}

func errorName(code uint32) string {
	switch code {
	case gogl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gogl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gogl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gogl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gogl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gogl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gogl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	}
	return fmt.Sprintf("GL error %#x", code)
}
