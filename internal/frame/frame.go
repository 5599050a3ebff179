// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/gogpu/glcmd"
	"github.com/gogpu/glcmd/command"
	"github.com/gogpu/glcmd/driver"
)

var (
	// ErrUnsupported is returned for blocks and attributes the format does
	// not define.
	ErrUnsupported = errors.New("frame: unsupported")

	// ErrDuplicate is returned when two declarations share a type and label.
	ErrDuplicate = errors.New("frame: duplicate declaration")

	// ErrUnknownObject is returned when a reference names no declaration.
	ErrUnknownObject = errors.New("frame: unknown object")
)

// Frame is one compiled frame block.
type Frame struct {
	Name   string
	Buffer *command.CommandBuffer
}

// File is a compiled frame file.
type File struct {
	Frames []*Frame
	byName map[string]*Frame
}

// Frame returns the frame with the given label.
func (f *File) Frame(name string) (*Frame, bool) {
	fr, ok := f.byName[name]
	return fr, ok
}

// Load reads and compiles the frame file at path.
func Load(path string, ctx *command.Context, opts ...command.BuilderOption) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	return Compile(src, path, ctx, opts...)
}

// Compile compiles frame file source. filename is used in diagnostics.
// Every frame is built for ctx with opts.
func Compile(src []byte, filename string, ctx *command.Context, opts ...command.BuilderOption) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("frame: parse %s: %w", filename, diags)
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("frame: %s: %w: non-native syntax", filename, ErrUnsupported)
	}
	if attr := firstAttribute(body.Attributes); attr != nil {
		return nil, fmt.Errorf("%s: %w: top-level attribute %q", attr.SrcRange, ErrUnsupported, attr.Name)
	}

	c := &compiler{
		ctx:          ctx,
		opts:         opts,
		programs:     make(map[string]*command.Program),
		vertexArrays: make(map[string]*command.VertexArray),
		buffers:      make(map[string]*command.Buffer),
		textures:     make(map[string]*command.Texture),
		file:         &File{byName: make(map[string]*Frame)},
	}

	// Objects first, so frames may reference objects declared after them.
	for _, block := range body.Blocks {
		if block.Type == "frame" {
			continue
		}
		if err := c.declare(block); err != nil {
			return nil, err
		}
	}
	for _, block := range body.Blocks {
		if block.Type != "frame" {
			continue
		}
		if err := c.frame(block); err != nil {
			return nil, err
		}
	}
	return c.file, nil
}

type compiler struct {
	ctx          *command.Context
	opts         []command.BuilderOption
	programs     map[string]*command.Program
	vertexArrays map[string]*command.VertexArray
	buffers      map[string]*command.Buffer
	textures     map[string]*command.Texture
	file         *File
}

func decode(block *hclsyntax.Block, ectx *hcl.EvalContext, v any) error {
	if diags := gohcl.DecodeBody(block.Body, ectx, v); diags.HasErrors() {
		return diags
	}
	return nil
}

// firstAttribute returns the attribute that appears first in the source.
func firstAttribute(attrs hclsyntax.Attributes) *hclsyntax.Attribute {
	var first *hclsyntax.Attribute
	for _, attr := range attrs {
		if first == nil || attr.SrcRange.Start.Byte < first.SrcRange.Start.Byte {
			first = attr
		}
	}
	return first
}

func label(block *hclsyntax.Block) (string, error) {
	if len(block.Labels) != 1 {
		return "", fmt.Errorf("%s: %s block needs exactly one label", block.DefRange(), block.Type)
	}
	return block.Labels[0], nil
}

// declare registers one object block.
func (c *compiler) declare(block *hclsyntax.Block) error {
	name, err := label(block)
	if err != nil {
		return err
	}
	dup := func(exists bool) error {
		if exists {
			return fmt.Errorf("%s: %w: %s %q", block.DefRange(), ErrDuplicate, block.Type, name)
		}
		return nil
	}

	switch block.Type {
	case "program", "vertex_array", "buffer":
		var body objectBlock
		if err := decode(block, nil, &body); err != nil {
			return err
		}
		switch block.Type {
		case "program":
			if err := dup(c.programs[name] != nil); err != nil {
				return err
			}
			c.programs[name] = c.ctx.Program(body.ID)
		case "vertex_array":
			if err := dup(c.vertexArrays[name] != nil); err != nil {
				return err
			}
			c.vertexArrays[name] = c.ctx.VertexArray(body.ID)
		default:
			if err := dup(c.buffers[name] != nil); err != nil {
				return err
			}
			c.buffers[name] = c.ctx.Buffer(body.ID)
		}
	case "texture":
		var body textureBlock
		if err := decode(block, nil, &body); err != nil {
			return err
		}
		target, err := driver.ParseTextureTarget(body.Target)
		if err != nil {
			return fmt.Errorf("%s: %w", block.DefRange(), err)
		}
		if err := dup(c.textures[name] != nil); err != nil {
			return err
		}
		c.textures[name] = c.ctx.Texture(target, body.ID)
	default:
		return fmt.Errorf("%s: %w: block type %q", block.DefRange(), ErrUnsupported, block.Type)
	}
	return nil
}

func names[V any](m map[string]V) cty.Value {
	vals := make(map[string]cty.Value, len(m))
	for k := range m {
		vals[k] = cty.StringVal(k)
	}
	return cty.ObjectVal(vals)
}

// evalContext exposes every declared object, and every frame compiled so
// far, as type.label references evaluating to the label.
func (c *compiler) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"program":      names(c.programs),
			"vertex_array": names(c.vertexArrays),
			"buffer":       names(c.buffers),
			"texture":      names(c.textures),
			"frame":        names(c.file.byName),
		},
	}
}

// frame compiles one frame block.
func (c *compiler) frame(block *hclsyntax.Block) error {
	name, err := label(block)
	if err != nil {
		return err
	}
	if _, exists := c.file.byName[name]; exists {
		return fmt.Errorf("%s: %w: frame %q", block.DefRange(), ErrDuplicate, name)
	}
	if attr := firstAttribute(block.Body.Attributes); attr != nil {
		return fmt.Errorf("%s: %w: frame attribute %q", attr.SrcRange, ErrUnsupported, attr.Name)
	}

	b := command.NewBuilder(c.ctx, c.opts...)
	ectx := c.evalContext()
	for _, op := range block.Body.Blocks {
		if len(op.Labels) != 0 {
			return fmt.Errorf("%s: %s block takes no labels", op.DefRange(), op.Type)
		}
		if err := c.operation(b, op, ectx); err != nil {
			return fmt.Errorf("frame %q: %s: %w", name, op.DefRange(), err)
		}
	}
	cb, err := b.Build()
	if err != nil {
		return fmt.Errorf("frame %q: %w", name, err)
	}

	fr := &Frame{Name: name, Buffer: cb}
	c.file.Frames = append(c.file.Frames, fr)
	c.file.byName[name] = fr

	glcmd.Logger().Debug("frame: compiled",
		"frame", name,
		"operations", len(cb.Operations()),
		"instructions", len(cb.Instructions()),
	)
	return nil
}

func lookup[V any](m map[string]V, kind, name string) (V, error) {
	v, ok := m[name]
	if !ok {
		return v, fmt.Errorf("%w: %s %q", ErrUnknownObject, kind, name)
	}
	return v, nil
}
