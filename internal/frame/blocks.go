// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

// objectBlock is the body of program, vertex_array and buffer blocks.
type objectBlock struct {
	ID uint32 `hcl:"id"`
}

type textureBlock struct {
	ID     uint32 `hcl:"id"`
	Target string `hcl:"target"`
}

type useProgramBlock struct {
	Program string `hcl:"program"`
}

type bindBlock struct {
	VertexArray    *string             `hcl:"vertex_array,optional"`
	StorageBuffers []*bufferSlotBlock  `hcl:"storage_buffer,block"`
	UniformBuffers []*bufferSlotBlock  `hcl:"uniform_buffer,block"`
	Textures       []*textureUnitBlock `hcl:"texture,block"`
}

type bufferSlotBlock struct {
	Slot   uint32 `hcl:"slot"`
	Buffer string `hcl:"buffer"`
}

type textureUnitBlock struct {
	Unit    uint32 `hcl:"unit"`
	Texture string `hcl:"texture"`
}

type stencilBlock struct {
	Test        *bool   `hcl:"test,optional"`
	WriteMask   *uint32 `hcl:"write_mask,optional"`
	Compare     *string `hcl:"compare,optional"`
	Reference   *int32  `hcl:"reference,optional"`
	CompareMask *uint32 `hcl:"compare_mask,optional"`
	Fail        *string `hcl:"fail,optional"`
	DepthFail   *string `hcl:"depth_fail,optional"`
	Pass        *string `hcl:"pass,optional"`
}

type depthBlock struct {
	Test      *bool   `hcl:"test,optional"`
	Compare   *string `hcl:"compare,optional"`
	WriteMask *bool   `hcl:"write_mask,optional"`
}

type drawArraysBlock struct {
	Mode  string `hcl:"mode"`
	First int32  `hcl:"first,optional"`
	Count int32  `hcl:"count"`
}

type drawElementsBlock struct {
	Mode       string `hcl:"mode"`
	Type       string `hcl:"type"`
	Count      int32  `hcl:"count"`
	FirstIndex int32  `hcl:"first_index,optional"`
}

type clearBlock struct {
	Layers []string `hcl:"layers"`
}

type executeBlock struct {
	Frame string `hcl:"frame"`
}
