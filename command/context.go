// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/glstate"
)

// Limits bounds the binding slots a context offers.
type Limits struct {
	StorageBuffers uint32
	UniformBuffers uint32
	TextureUnits   uint32
}

// DefaultLimits returns the largest limits the compiler can track.
func DefaultLimits() Limits {
	return Limits{
		StorageBuffers: glstate.MaxStorageBuffers,
		UniformBuffers: glstate.MaxUniformBuffers,
		TextureUnits:   glstate.MaxTextureUnits,
	}
}

// Validate reports whether every limit is within the tracked capacities.
func (l Limits) Validate() error {
	switch {
	case l.StorageBuffers > glstate.MaxStorageBuffers:
		return invalidf("storage buffer limit %d exceeds %d", l.StorageBuffers, glstate.MaxStorageBuffers)
	case l.UniformBuffers > glstate.MaxUniformBuffers:
		return invalidf("uniform buffer limit %d exceeds %d", l.UniformBuffers, glstate.MaxUniformBuffers)
	case l.TextureUnits > glstate.MaxTextureUnits:
		return invalidf("texture unit limit %d exceeds %d", l.TextureUnits, glstate.MaxTextureUnits)
	}
	return nil
}

// Context is the identity of one driver context. Resources and command
// buffers created for a context may only be used with builders of the same
// context.
type Context struct {
	id     uuid.UUID
	label  string
	limits Limits
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithLimits overrides DefaultLimits.
func WithLimits(l Limits) ContextOption {
	return func(c *Context) {
		c.limits = l
	}
}

// WithLabel sets a human-readable label used in String and log records.
func WithLabel(label string) ContextOption {
	return func(c *Context) {
		c.label = label
	}
}

// NewContext creates a context with a fresh random identity.
func NewContext(opts ...ContextOption) (*Context, error) {
	c := &Context{
		id:     uuid.New(),
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.limits.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// same reports whether c and o carry the same identity. Resources are
// checked against their context this way.
func (c *Context) same(o *Context) bool {
	return o != nil && c.id == o.id
}

// ID returns the unique identity of the context.
func (c *Context) ID() uuid.UUID { return c.id }

// Label returns the label set with WithLabel.
func (c *Context) Label() string { return c.label }

// Limits returns the binding limits of the context.
func (c *Context) Limits() Limits { return c.limits }

// String implements fmt.Stringer.
func (c *Context) String() string {
	if c.label == "" {
		return "context " + c.id.String()
	}
	return fmt.Sprintf("context %q (%s)", c.label, c.id)
}

// VertexArray returns a handle to vertex array object name.
func (c *Context) VertexArray(name uint32) *VertexArray {
	return &VertexArray{object{ctx: c, name: name}}
}

// Buffer returns a handle to buffer object name.
func (c *Context) Buffer(name uint32) *Buffer {
	return &Buffer{object{ctx: c, name: name}}
}

// Program returns a handle to program object name.
func (c *Context) Program(name uint32) *Program {
	return &Program{object{ctx: c, name: name}}
}

// Texture returns a handle to texture object name of the given target.
func (c *Context) Texture(target driver.TextureTarget, name uint32) *Texture {
	return &Texture{object: object{ctx: c, name: name}, target: target}
}
