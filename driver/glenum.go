// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import "github.com/gogpu/gputypes"

// GL numeric values of the enumerations in this package.
const (
	glPoints        = 0x0000
	glLines         = 0x0001
	glLineLoop      = 0x0002
	glLineStrip     = 0x0003
	glTriangles     = 0x0004
	glTriangleStrip = 0x0005
	glTriangleFan   = 0x0006
	glQuads         = 0x0007

	glUnsignedByte  = 0x1401
	glUnsignedShort = 0x1403
	glUnsignedInt   = 0x1405

	glNever    = 0x0200
	glLess     = 0x0201
	glEqual    = 0x0202
	glLequal   = 0x0203
	glGreater  = 0x0204
	glNotequal = 0x0205
	glGequal   = 0x0206
	glAlways   = 0x0207

	glZero     = 0x0000
	glInvert   = 0x150A
	glKeep     = 0x1E00
	glReplace  = 0x1E01
	glIncr     = 0x1E02
	glDecr     = 0x1E03
	glIncrWrap = 0x8507
	glDecrWrap = 0x8508

	glDepthBufferBit   = 0x0100
	glStencilBufferBit = 0x0400
	glColorBufferBit   = 0x4000

	glTexture1D      = 0x0DE0
	glTexture2D      = 0x0DE1
	glTexture3D      = 0x806F
	glTextureCubeMap = 0x8513
	glTexture1DArray = 0x8C18
	glTexture2DArray = 0x8C1A
	glTextureBuffer  = 0x8C2A

	glUniformBuffer       = 0x8A11
	glShaderStorageBuffer = 0x90D2

	glDepthTest   = 0x0B71
	glStencilTest = 0x0B90

	// GLTexture0 is the value of GL_TEXTURE0; unit n is GLTexture0+n.
	GLTexture0 = 0x84C0
)

// GL returns the GL primitive mode.
func (m DrawMode) GL() uint32 {
	switch m {
	case Points:
		return glPoints
	case Lines:
		return glLines
	case LineStrip:
		return glLineStrip
	case LineLoop:
		return glLineLoop
	case Triangles:
		return glTriangles
	case TriangleStrip:
		return glTriangleStrip
	case TriangleFan:
		return glTriangleFan
	case Quads:
		return glQuads
	}
	panic("driver: invalid draw mode " + m.String())
}

// GL returns the GL index type.
func (t IndexType) GL() uint32 {
	switch t {
	case UnsignedByte:
		return glUnsignedByte
	case UnsignedShort:
		return glUnsignedShort
	case UnsignedInt:
		return glUnsignedInt
	}
	panic("driver: invalid index type " + t.String())
}

// GL returns the GL buffer target.
func (t BufferTarget) GL() uint32 {
	switch t {
	case ShaderStorageBuffer:
		return glShaderStorageBuffer
	case UniformBuffer:
		return glUniformBuffer
	}
	panic("driver: invalid buffer target " + t.String())
}

// GL returns the GL texture target.
func (t TextureTarget) GL() uint32 {
	switch t {
	case Texture1D:
		return glTexture1D
	case Texture2D:
		return glTexture2D
	case Texture3D:
		return glTexture3D
	case Texture1DArray:
		return glTexture1DArray
	case Texture2DArray:
		return glTexture2DArray
	case TextureCubeMap:
		return glTextureCubeMap
	case TextureBuffer:
		return glTextureBuffer
	}
	panic("driver: invalid texture target " + t.String())
}

// GL returns the GL capability.
func (c Capability) GL() uint32 {
	switch c {
	case StencilTest:
		return glStencilTest
	case DepthTest:
		return glDepthTest
	}
	panic("driver: invalid capability " + c.String())
}

// GL returns the GL stencil operation.
func (op StencilOperation) GL() uint32 {
	switch op {
	case StencilKeep:
		return glKeep
	case StencilZero:
		return glZero
	case StencilReplace:
		return glReplace
	case StencilIncrementClamp:
		return glIncr
	case StencilDecrementClamp:
		return glDecr
	case StencilInvert:
		return glInvert
	case StencilIncrementWrap:
		return glIncrWrap
	case StencilDecrementWrap:
		return glDecrWrap
	}
	panic("driver: invalid stencil operation " + op.String())
}

// GL returns the glClear bit mask for l.
func (l Layer) GL() uint32 {
	var bits uint32
	if l.Has(LayerColor) {
		bits |= glColorBufferBit
	}
	if l.Has(LayerDepth) {
		bits |= glDepthBufferBit
	}
	if l.Has(LayerStencil) {
		bits |= glStencilBufferBit
	}
	return bits
}

// CompareGL returns the GL comparison function for fn.
func CompareGL(fn gputypes.CompareFunction) uint32 {
	switch fn {
	case gputypes.CompareFunctionNever:
		return glNever
	case gputypes.CompareFunctionLess:
		return glLess
	case gputypes.CompareFunctionEqual:
		return glEqual
	case gputypes.CompareFunctionLessEqual:
		return glLequal
	case gputypes.CompareFunctionGreater:
		return glGreater
	case gputypes.CompareFunctionNotEqual:
		return glNotequal
	case gputypes.CompareFunctionGreaterEqual:
		return glGequal
	case gputypes.CompareFunctionAlways:
		return glAlways
	}
	panic("driver: invalid comparison " + CompareName(fn))
}
