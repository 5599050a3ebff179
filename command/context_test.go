// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gogpu/glcmd/driver"
)

func TestNewContext(t *testing.T) {
	a := newTestContext(t, WithLabel("main"))
	b := newTestContext(t)

	if a.ID() == uuid.Nil || a.ID() == b.ID() {
		t.Errorf("contexts should get distinct non-nil ids, got %s and %s", a.ID(), b.ID())
	}
	if a.Limits() != DefaultLimits() {
		t.Errorf("Limits() = %+v, want %+v", a.Limits(), DefaultLimits())
	}
	if got := a.String(); !strings.Contains(got, `"main"`) || !strings.Contains(got, a.ID().String()) {
		t.Errorf("String() = %q, want label and id", got)
	}
	if got := b.String(); got != "context "+b.ID().String() {
		t.Errorf("String() = %q", got)
	}
}

func TestNewContextLimits(t *testing.T) {
	tests := []struct {
		name    string
		limits  Limits
		wantErr bool
	}{
		{"default", DefaultLimits(), false},
		{"smaller", Limits{StorageBuffers: 1, UniformBuffers: 1, TextureUnits: 1}, false},
		{"zero", Limits{}, false},
		{"too many storage buffers", Limits{StorageBuffers: 17, UniformBuffers: 1, TextureUnits: 1}, true},
		{"too many uniform buffers", Limits{StorageBuffers: 1, UniformBuffers: 17, TextureUnits: 1}, true},
		{"too many texture units", Limits{StorageBuffers: 1, UniformBuffers: 1, TextureUnits: 33}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewContext(WithLimits(tt.limits))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewContext() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewContext() = %v", err)
			}
			if ctx.Limits() != tt.limits {
				t.Errorf("Limits() = %+v, want %+v", ctx.Limits(), tt.limits)
			}
		})
	}
}

func TestResourceHandles(t *testing.T) {
	ctx := newTestContext(t)
	tex := ctx.Texture(driver.Texture3D, 8)

	resources := []struct {
		r    Resource
		name uint32
		str  string
	}{
		{ctx.VertexArray(1), 1, "vertex_array(1)"},
		{ctx.Buffer(2), 2, "buffer(2)"},
		{ctx.Program(3), 3, "program(3)"},
		{tex, 8, "texture(3D, 8)"},
	}
	for _, tt := range resources {
		if tt.r.Context() != ctx {
			t.Errorf("%v: Context() is not the creating context", tt.r)
		}
		if tt.r.Name() != tt.name {
			t.Errorf("%v: Name() = %d, want %d", tt.r, tt.r.Name(), tt.name)
		}
		if s, ok := tt.r.(interface{ String() string }); !ok || s.String() != tt.str {
			t.Errorf("String() = %v, want %q", tt.r, tt.str)
		}
	}
	if tex.Target() != driver.Texture3D {
		t.Errorf("Target() = %s, want 3D", tex.Target())
	}
}

func TestResourcesMatchByIdentity(t *testing.T) {
	ctx := newTestContext(t)
	twin := *ctx
	other := newTestContext(t)

	tests := []struct {
		name  string
		owner *Context
		cross bool
	}{
		{"same context", ctx, false},
		{"copy with the same id", &twin, false},
		{"other context", other, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(ctx)
			err := b.Bind(&Binding{
				VertexArray:    tt.owner.VertexArray(1),
				UniformBuffers: []BufferBinding{{Buffer: tt.owner.Buffer(2)}},
			})
			if got := errors.Is(err, ErrCrossContext); got != tt.cross {
				t.Errorf("Bind() error = %v, cross-context = %t, want %t", err, got, tt.cross)
			}
			err = b.UseProgram(tt.owner.Program(3))
			if got := errors.Is(err, ErrCrossContext); got != tt.cross {
				t.Errorf("UseProgram() error = %v, cross-context = %t, want %t", err, got, tt.cross)
			}

			inner := NewBuilder(tt.owner)
			cb, err := inner.Build()
			if err != nil {
				t.Fatal(err)
			}
			err = b.Execute(cb)
			if got := errors.Is(err, ErrCrossContext); got != tt.cross {
				t.Errorf("Execute() error = %v, cross-context = %t, want %t", err, got, tt.cross)
			}
		})
	}
}
