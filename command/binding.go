// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"github.com/gogpu/glcmd/glstate"
	"github.com/gogpu/glcmd/state"
)

// BufferBinding attaches a buffer to an indexed binding slot.
type BufferBinding struct {
	Slot   uint32
	Buffer *Buffer
}

// TextureBinding attaches a texture to a texture unit. The binding point
// within the unit is the texture's target.
type TextureBinding struct {
	Unit    uint32
	Texture *Texture
}

// Binding is the set of resources a draw reads. A nil VertexArray leaves
// the bound vertex array untouched and out of the draw's dependencies.
type Binding struct {
	VertexArray    *VertexArray
	StorageBuffers []BufferBinding
	UniformBuffers []BufferBinding
	Textures       []TextureBinding
}

func (b *Binding) clone() *Binding {
	if b == nil {
		return nil
	}
	out := &Binding{VertexArray: b.VertexArray}
	out.StorageBuffers = append([]BufferBinding(nil), b.StorageBuffers...)
	out.UniformBuffers = append([]BufferBinding(nil), b.UniformBuffers...)
	out.Textures = append([]TextureBinding(nil), b.Textures...)
	return out
}

// validate checks every resource against ctx and its limits.
func (b *Binding) validate(ctx *Context) error {
	limits := ctx.Limits()
	if b.VertexArray != nil && !ctx.same(b.VertexArray.ctx) {
		return ErrCrossContext
	}
	if err := validateBuffers(ctx, "storage", b.StorageBuffers, limits.StorageBuffers); err != nil {
		return err
	}
	if err := validateBuffers(ctx, "uniform", b.UniformBuffers, limits.UniformBuffers); err != nil {
		return err
	}

	type unitTarget struct {
		unit   uint32
		target uint8
	}
	seen := make(map[unitTarget]bool, len(b.Textures))
	for _, tb := range b.Textures {
		switch {
		case tb.Texture == nil:
			return invalidf("nil texture at unit %d", tb.Unit)
		case !ctx.same(tb.Texture.ctx):
			return ErrCrossContext
		case tb.Unit >= limits.TextureUnits:
			return invalidf("texture unit %d out of range [0, %d)", tb.Unit, limits.TextureUnits)
		case !tb.Texture.target.Valid():
			return invalidf("texture target %s", tb.Texture.target)
		}
		key := unitTarget{tb.Unit, uint8(tb.Texture.target)}
		if seen[key] {
			return invalidf("texture unit %d target %s bound twice", tb.Unit, tb.Texture.target)
		}
		seen[key] = true
	}
	return nil
}

func validateBuffers(ctx *Context, kind string, bindings []BufferBinding, limit uint32) error {
	seen := make(map[uint32]bool, len(bindings))
	for _, bb := range bindings {
		switch {
		case bb.Buffer == nil:
			return invalidf("nil %s buffer at slot %d", kind, bb.Slot)
		case !ctx.same(bb.Buffer.ctx):
			return ErrCrossContext
		case bb.Slot >= limit:
			return invalidf("%s buffer slot %d out of range [0, %d)", kind, bb.Slot, limit)
		case seen[bb.Slot]:
			return invalidf("%s buffer slot %d bound twice", kind, bb.Slot)
		}
		seen[bb.Slot] = true
	}
	return nil
}

// apply sets every facet the binding names.
func (b *Binding) apply(m *state.MutableState) {
	if b.VertexArray != nil {
		m.Set(glstate.VertexArray, state.Value(b.VertexArray.name))
	}
	for _, bb := range b.StorageBuffers {
		m.Set(glstate.StorageBuffer(bb.Slot), state.Value(bb.Buffer.name))
	}
	for _, bb := range b.UniformBuffers {
		m.Set(glstate.UniformBuffer(bb.Slot), state.Value(bb.Buffer.name))
	}
	for _, tb := range b.Textures {
		m.Set(glstate.Texture(tb.Unit, tb.Texture.target), state.Value(tb.Texture.name))
	}
}

// dependencies appends the properties a draw through b reads directly.
func (b *Binding) dependencies(deps []*state.Property) []*state.Property {
	if b == nil {
		return deps
	}
	if b.VertexArray != nil {
		deps = append(deps, glstate.VertexArray)
	}
	for _, bb := range b.StorageBuffers {
		deps = append(deps, glstate.StorageBuffer(bb.Slot))
	}
	for _, bb := range b.UniformBuffers {
		deps = append(deps, glstate.UniformBuffer(bb.Slot))
	}
	for _, tb := range b.Textures {
		deps = append(deps, glstate.Texture(tb.Unit, tb.Texture.target))
	}
	return deps
}

// resources reports every resource the binding references to add.
func (b *Binding) resources(add func(Resource)) {
	if b.VertexArray != nil {
		add(b.VertexArray)
	}
	for _, bb := range b.StorageBuffers {
		add(bb.Buffer)
	}
	for _, bb := range b.UniformBuffers {
		add(bb.Buffer)
	}
	for _, tb := range b.Textures {
		add(tb.Texture)
	}
}
