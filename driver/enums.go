// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// ErrUnknownName is returned by the Parse functions for unrecognized names.
var ErrUnknownName = errors.New("driver: unknown name")

// DrawMode is the primitive type assembled from vertices.
type DrawMode uint8

const (
	Points DrawMode = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	Quads
)

var drawModeNames = [...]string{
	Points:        "POINTS",
	Lines:         "LINES",
	LineStrip:     "LINE_STRIP",
	LineLoop:      "LINE_LOOP",
	Triangles:     "TRIANGLES",
	TriangleStrip: "TRIANGLE_STRIP",
	TriangleFan:   "TRIANGLE_FAN",
	Quads:         "QUADS",
}

// Valid reports whether m is a known draw mode.
func (m DrawMode) Valid() bool { return int(m) < len(drawModeNames) }

// String returns the GL-style name of the draw mode.
func (m DrawMode) String() string {
	if m.Valid() {
		return drawModeNames[m]
	}
	return fmt.Sprintf("DrawMode(%d)", uint8(m))
}

// Topology returns the WebGPU primitive topology equivalent to m. Line
// loops, triangle fans and quads have no equivalent.
func (m DrawMode) Topology() (gputypes.PrimitiveTopology, bool) {
	switch m {
	case Points:
		return gputypes.PrimitiveTopologyPointList, true
	case Lines:
		return gputypes.PrimitiveTopologyLineList, true
	case LineStrip:
		return gputypes.PrimitiveTopologyLineStrip, true
	case Triangles:
		return gputypes.PrimitiveTopologyTriangleList, true
	case TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	}
	return 0, false
}

// ParseDrawMode parses a draw mode name such as "triangles".
func ParseDrawMode(s string) (DrawMode, error) {
	for i, name := range drawModeNames {
		if strings.EqualFold(s, name) {
			return DrawMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: draw mode %q", ErrUnknownName, s)
}

// IndexType is the width of the elements of an index buffer.
type IndexType uint8

const (
	UnsignedByte IndexType = iota
	UnsignedShort
	UnsignedInt
)

var indexTypeNames = [...]string{
	UnsignedByte:  "UINT8",
	UnsignedShort: "UINT16",
	UnsignedInt:   "UINT32",
}

// Valid reports whether t is a known index type.
func (t IndexType) Valid() bool { return int(t) < len(indexTypeNames) }

// String returns the name of the index type.
func (t IndexType) String() string {
	if t.Valid() {
		return indexTypeNames[t]
	}
	return fmt.Sprintf("IndexType(%d)", uint8(t))
}

// Size returns the size of one index in bytes.
func (t IndexType) Size() int {
	switch t {
	case UnsignedByte:
		return 1
	case UnsignedShort:
		return 2
	case UnsignedInt:
		return 4
	}
	return 0
}

// Format returns the WebGPU index format equivalent to t. 8-bit indices
// have no equivalent.
func (t IndexType) Format() (gputypes.IndexFormat, bool) {
	switch t {
	case UnsignedShort:
		return gputypes.IndexFormatUint16, true
	case UnsignedInt:
		return gputypes.IndexFormatUint32, true
	}
	return 0, false
}

// ParseIndexType parses an index type name such as "uint16".
func ParseIndexType(s string) (IndexType, error) {
	for i, name := range indexTypeNames {
		if strings.EqualFold(s, name) {
			return IndexType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: index type %q", ErrUnknownName, s)
}

// BufferTarget is an indexed buffer binding point.
type BufferTarget uint8

const (
	ShaderStorageBuffer BufferTarget = iota
	UniformBuffer
)

// String returns the name of the buffer target.
func (t BufferTarget) String() string {
	switch t {
	case ShaderStorageBuffer:
		return "SHADER_STORAGE_BUFFER"
	case UniformBuffer:
		return "UNIFORM_BUFFER"
	}
	return fmt.Sprintf("BufferTarget(%d)", uint8(t))
}

// TextureTarget is the kind of texture bound to a texture unit. Every unit
// has an independent binding per target.
type TextureTarget uint8

const (
	Texture1D TextureTarget = iota
	Texture2D
	Texture3D
	Texture1DArray
	Texture2DArray
	TextureCubeMap
	TextureBuffer

	// TextureTargetCount is the number of texture targets.
	TextureTargetCount = iota
)

var textureTargetNames = [...]string{
	Texture1D:      "1D",
	Texture2D:      "2D",
	Texture3D:      "3D",
	Texture1DArray: "1D_ARRAY",
	Texture2DArray: "2D_ARRAY",
	TextureCubeMap: "CUBE_MAP",
	TextureBuffer:  "BUFFER",
}

// Valid reports whether t is a known texture target.
func (t TextureTarget) Valid() bool { return int(t) < len(textureTargetNames) }

// String returns the name of the texture target.
func (t TextureTarget) String() string {
	if t.Valid() {
		return textureTargetNames[t]
	}
	return fmt.Sprintf("TextureTarget(%d)", uint8(t))
}

// ParseTextureTarget parses a texture target name such as "2d" or "cube_map".
func ParseTextureTarget(s string) (TextureTarget, error) {
	for i, name := range textureTargetNames {
		if strings.EqualFold(s, name) {
			return TextureTarget(i), nil
		}
	}
	return 0, fmt.Errorf("%w: texture target %q", ErrUnknownName, s)
}

// Capability is a fixed-function feature toggled with SetEnabled.
type Capability uint8

const (
	StencilTest Capability = iota
	DepthTest
)

// String returns the name of the capability.
func (c Capability) String() string {
	switch c {
	case StencilTest:
		return "STENCIL_TEST"
	case DepthTest:
		return "DEPTH_TEST"
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// StencilOperation is the action applied to a stencil value.
type StencilOperation uint8

const (
	StencilKeep StencilOperation = iota
	StencilZero
	StencilReplace
	StencilIncrementClamp
	StencilDecrementClamp
	StencilInvert
	StencilIncrementWrap
	StencilDecrementWrap
)

var stencilOperationNames = [...]string{
	StencilKeep:           "KEEP",
	StencilZero:           "ZERO",
	StencilReplace:        "REPLACE",
	StencilIncrementClamp: "INCREMENT_CLAMP",
	StencilDecrementClamp: "DECREMENT_CLAMP",
	StencilInvert:         "INVERT",
	StencilIncrementWrap:  "INCREMENT_WRAP",
	StencilDecrementWrap:  "DECREMENT_WRAP",
}

// Valid reports whether op is a known stencil operation.
func (op StencilOperation) Valid() bool { return int(op) < len(stencilOperationNames) }

// String returns the name of the stencil operation.
func (op StencilOperation) String() string {
	if op.Valid() {
		return stencilOperationNames[op]
	}
	return fmt.Sprintf("StencilOperation(%d)", uint8(op))
}

// ParseStencilOperation parses a stencil operation name such as "replace".
func ParseStencilOperation(s string) (StencilOperation, error) {
	for i, name := range stencilOperationNames {
		if strings.EqualFold(s, name) {
			return StencilOperation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: stencil operation %q", ErrUnknownName, s)
}

// StencilOutcome selects which stencil test result a StencilOperation
// applies to.
type StencilOutcome uint8

const (
	// StencilFail applies when the stencil test fails.
	StencilFail StencilOutcome = iota
	// StencilDepthFail applies when the stencil test passes and the depth test fails.
	StencilDepthFail
	// StencilPass applies when both tests pass.
	StencilPass
)

// String returns the name of the outcome.
func (o StencilOutcome) String() string {
	switch o {
	case StencilFail:
		return "FAIL"
	case StencilDepthFail:
		return "DEPTH_FAIL"
	case StencilPass:
		return "PASS"
	}
	return fmt.Sprintf("StencilOutcome(%d)", uint8(o))
}

// Layer is a set of framebuffer layers. Values combine with bitwise OR.
type Layer uint8

const (
	LayerColor Layer = 1 << iota
	LayerDepth
	LayerStencil

	// LayerAll selects every layer.
	LayerAll = LayerColor | LayerDepth | LayerStencil
)

var layerNames = []struct {
	layer Layer
	name  string
}{
	{LayerColor, "COLOR"},
	{LayerDepth, "DEPTH"},
	{LayerStencil, "STENCIL"},
}

// Valid reports whether l is a non-empty combination of known layers.
func (l Layer) Valid() bool { return l != 0 && l&^LayerAll == 0 }

// Has reports whether l includes every layer of other.
func (l Layer) Has(other Layer) bool { return l&other == other }

// String returns the layer names joined with "|".
func (l Layer) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
	parts := make([]string, 0, len(layerNames))
	for _, ln := range layerNames {
		if l.Has(ln.layer) {
			parts = append(parts, ln.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseLayer parses a single layer name such as "depth".
func ParseLayer(s string) (Layer, error) {
	for _, ln := range layerNames {
		if strings.EqualFold(s, ln.name) {
			return ln.layer, nil
		}
	}
	return 0, fmt.Errorf("%w: layer %q", ErrUnknownName, s)
}

var compareNames = map[gputypes.CompareFunction]string{
	gputypes.CompareFunctionNever:        "NEVER",
	gputypes.CompareFunctionLess:         "LESS",
	gputypes.CompareFunctionEqual:        "EQUAL",
	gputypes.CompareFunctionLessEqual:    "LESS_EQUAL",
	gputypes.CompareFunctionGreater:      "GREATER",
	gputypes.CompareFunctionNotEqual:     "NOT_EQUAL",
	gputypes.CompareFunctionGreaterEqual: "GREATER_EQUAL",
	gputypes.CompareFunctionAlways:       "ALWAYS",
}

// ValidCompare reports whether fn is a concrete comparison function.
func ValidCompare(fn gputypes.CompareFunction) bool {
	_, ok := compareNames[fn]
	return ok
}

// CompareName returns the name of a comparison function.
func CompareName(fn gputypes.CompareFunction) string {
	if name, ok := compareNames[fn]; ok {
		return name
	}
	return fmt.Sprintf("CompareFunction(%d)", uint32(fn))
}

// ParseCompare parses a comparison function name such as "less_equal".
func ParseCompare(s string) (gputypes.CompareFunction, error) {
	for fn, name := range compareNames {
		if strings.EqualFold(s, name) {
			return fn, nil
		}
	}
	return 0, fmt.Errorf("%w: comparison %q", ErrUnknownName, s)
}
