// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/gogpu/glcmd/command"
	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/glstate"
)

// operation records one block of a frame on b.
func (c *compiler) operation(b *command.Builder, block *hclsyntax.Block, ectx *hcl.EvalContext) error {
	switch block.Type {
	case "use_program":
		var body useProgramBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		p, err := lookup(c.programs, "program", body.Program)
		if err != nil {
			return err
		}
		return b.UseProgram(p)

	case "bind":
		var body bindBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		binding, err := c.binding(&body)
		if err != nil {
			return err
		}
		return b.Bind(binding)

	case "stencil":
		var body stencilBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		return stencil(b, &body)

	case "depth":
		var body depthBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		return depth(b, &body)

	case "draw_arrays":
		var body drawArraysBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		mode, err := driver.ParseDrawMode(body.Mode)
		if err != nil {
			return err
		}
		return b.DrawArrays(mode, body.First, body.Count)

	case "draw_elements":
		var body drawElementsBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		mode, err := driver.ParseDrawMode(body.Mode)
		if err != nil {
			return err
		}
		typ, err := driver.ParseIndexType(body.Type)
		if err != nil {
			return err
		}
		return b.DrawElements(mode, typ, body.Count, body.FirstIndex)

	case "clear":
		var body clearBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		var layers driver.Layer
		for _, name := range body.Layers {
			l, err := driver.ParseLayer(name)
			if err != nil {
				return err
			}
			layers |= l
		}
		return b.Clear(layers)

	case "execute":
		var body executeBlock
		if err := decode(block, ectx, &body); err != nil {
			return err
		}
		fr, err := lookup(c.file.byName, "frame", body.Frame)
		if err != nil {
			return err
		}
		return b.Execute(fr.Buffer)
	}
	return fmt.Errorf("%w: block type %q", ErrUnsupported, block.Type)
}

func (c *compiler) binding(body *bindBlock) (*command.Binding, error) {
	binding := &command.Binding{}
	if body.VertexArray != nil {
		vao, err := lookup(c.vertexArrays, "vertex_array", *body.VertexArray)
		if err != nil {
			return nil, err
		}
		binding.VertexArray = vao
	}
	for _, s := range body.StorageBuffers {
		buf, err := lookup(c.buffers, "buffer", s.Buffer)
		if err != nil {
			return nil, err
		}
		binding.StorageBuffers = append(binding.StorageBuffers, command.BufferBinding{Slot: s.Slot, Buffer: buf})
	}
	for _, s := range body.UniformBuffers {
		buf, err := lookup(c.buffers, "buffer", s.Buffer)
		if err != nil {
			return nil, err
		}
		binding.UniformBuffers = append(binding.UniformBuffers, command.BufferBinding{Slot: s.Slot, Buffer: buf})
	}
	for _, s := range body.Textures {
		tex, err := lookup(c.textures, "texture", s.Texture)
		if err != nil {
			return nil, err
		}
		binding.Textures = append(binding.Textures, command.TextureBinding{Unit: s.Unit, Texture: tex})
	}
	return binding, nil
}

func stencil(b *command.Builder, body *stencilBlock) error {
	if body.Test != nil {
		if err := b.StencilTest(*body.Test); err != nil {
			return err
		}
	}
	if body.WriteMask != nil {
		if err := b.StencilWriteMask(*body.WriteMask); err != nil {
			return err
		}
	}
	if body.Compare != nil {
		fn, err := driver.ParseCompare(*body.Compare)
		if err != nil {
			return err
		}
		if err := b.StencilCompare(fn); err != nil {
			return err
		}
	}
	if body.Reference != nil {
		if err := b.StencilReference(*body.Reference); err != nil {
			return err
		}
	}
	if body.CompareMask != nil {
		if err := b.StencilCompareMask(*body.CompareMask); err != nil {
			return err
		}
	}
	if body.Fail == nil && body.DepthFail == nil && body.Pass == nil {
		return nil
	}

	// Unnamed outcomes keep their requested operation.
	var ops [3]driver.StencilOperation
	for i, name := range [...]*string{body.Fail, body.DepthFail, body.Pass} {
		outcome := driver.StencilOutcome(i)
		if name == nil {
			ops[i] = driver.StencilOperation(b.State().Get(glstate.StencilOperationProperty(outcome)))
			continue
		}
		op, err := driver.ParseStencilOperation(*name)
		if err != nil {
			return err
		}
		ops[i] = op
	}
	return b.StencilOperation(ops[0], ops[1], ops[2])
}

func depth(b *command.Builder, body *depthBlock) error {
	if body.Test != nil {
		if err := b.DepthTest(*body.Test); err != nil {
			return err
		}
	}
	if body.Compare != nil {
		fn, err := driver.ParseCompare(*body.Compare)
		if err != nil {
			return err
		}
		if err := b.DepthCompare(fn); err != nil {
			return err
		}
	}
	if body.WriteMask != nil {
		if err := b.DepthWriteMask(*body.WriteMask); err != nil {
			return err
		}
	}
	return nil
}
