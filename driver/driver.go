// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import "github.com/gogpu/gputypes"

// Driver is the live state machine a command program replays against.
//
// Each state method sets exactly one facet and leaves every other facet
// alone; implementations backed by APIs that set several facets in one
// call (glStencilFunc, glStencilOp) must combine them internally.
//
// A Driver is not safe for concurrent use. Callers that share one driver
// between goroutines serialize replays themselves.
type Driver interface {
	// BindVertexArray binds the vertex array object with the given name.
	BindVertexArray(vao uint32)

	// UseProgram makes the given program current.
	UseProgram(program uint32)

	// BindBufferBase binds buffer to the indexed binding point of target.
	BindBufferBase(target BufferTarget, index, buffer uint32)

	// BindTexture binds texture to target on the given texture unit.
	BindTexture(unit uint32, target TextureTarget, texture uint32)

	// SetEnabled enables or disables a fixed-function capability.
	SetEnabled(c Capability, enabled bool)

	// StencilMask sets the stencil write mask.
	StencilMask(mask uint32)

	// StencilCompare sets the stencil comparison function.
	StencilCompare(fn gputypes.CompareFunction)

	// StencilReference sets the stencil reference value.
	StencilReference(ref int32)

	// StencilCompareMask sets the mask applied before the stencil comparison.
	StencilCompareMask(mask uint32)

	// StencilOperation sets the action taken for one stencil test outcome.
	StencilOperation(outcome StencilOutcome, op StencilOperation)

	// DepthCompare sets the depth comparison function.
	DepthCompare(fn gputypes.CompareFunction)

	// DepthMask enables or disables depth buffer writes.
	DepthMask(write bool)

	// DrawArrays draws count vertices starting at first.
	DrawArrays(mode DrawMode, first, count int32)

	// DrawElements draws count indices of the given type from the bound
	// element buffer, starting at byte offset.
	DrawElements(mode DrawMode, count int32, typ IndexType, offset uintptr)

	// Clear clears the given framebuffer layers.
	Clear(layers Layer)
}

// ErrorReporter is implemented by drivers that accumulate errors while
// executing (the GL error flag). Replay queries it once after running a
// program.
type ErrorReporter interface {
	// Err returns and clears the first error recorded since the last call.
	Err() error
}
