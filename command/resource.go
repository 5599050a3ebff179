// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"fmt"

	"github.com/gogpu/glcmd/driver"
)

// Resource is a driver object owned by a Context.
type Resource interface {
	// Context returns the owning context.
	Context() *Context
	// Name returns the driver object name.
	Name() uint32
}

type object struct {
	ctx  *Context
	name uint32
}

func (o *object) Context() *Context { return o.ctx }
func (o *object) Name() uint32      { return o.name }

// VertexArray is a vertex array object handle.
type VertexArray struct{ object }

// String implements fmt.Stringer.
func (v *VertexArray) String() string { return fmt.Sprintf("vertex_array(%d)", v.name) }

// Buffer is a buffer object handle.
type Buffer struct{ object }

// String implements fmt.Stringer.
func (b *Buffer) String() string { return fmt.Sprintf("buffer(%d)", b.name) }

// Program is a linked program object handle.
type Program struct{ object }

// String implements fmt.Stringer.
func (p *Program) String() string { return fmt.Sprintf("program(%d)", p.name) }

// Texture is a texture object handle.
type Texture struct {
	object
	target driver.TextureTarget
}

// Target returns the texture target the texture was created for.
func (t *Texture) Target() driver.TextureTarget { return t.target }

// String implements fmt.Stringer.
func (t *Texture) String() string { return fmt.Sprintf("texture(%s, %d)", t.target, t.name) }

// resourceSet keeps every distinct resource referenced by a buffer, in
// first-use order.
//
// resourceSet is not safe for concurrent use.
type resourceSet struct {
	seen map[Resource]struct{}
	list []Resource
}

func newResourceSet() *resourceSet {
	return &resourceSet{
		seen: make(map[Resource]struct{}, 16),
		list: make([]Resource, 0, 16),
	}
}

// add records r unless it is already present.
func (s *resourceSet) add(r Resource) {
	if _, ok := s.seen[r]; ok {
		return
	}
	s.seen[r] = struct{}{}
	s.list = append(s.list, r)
}

func (s *resourceSet) addAll(rs []Resource) {
	for _, r := range rs {
		s.add(r)
	}
}

// slice returns a copy of the resources in first-use order.
func (s *resourceSet) slice() []Resource {
	out := make([]Resource, len(s.list))
	copy(out, s.list)
	return out
}
