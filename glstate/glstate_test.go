// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/driver/trace"
	"github.com/gogpu/glcmd/state"
)

func TestRegistrySealed(t *testing.T) {
	if !Registry().Sealed() {
		t.Fatal("registry should be sealed at init")
	}
	want := 2 + MaxStorageBuffers + MaxUniformBuffers + MaxTextureUnits*driver.TextureTargetCount + 8 + 3
	if got := Registry().Len(); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if len(appliers) != Registry().Len() {
		t.Errorf("len(appliers) = %d, want %d", len(appliers), Registry().Len())
	}
}

func TestFamilyNames(t *testing.T) {
	tests := []struct {
		p    *state.Property
		want string
	}{
		{Program, "BOUND_PROGRAM"},
		{VertexArray, "BOUND_VAO"},
		{StorageBuffer(0), "BOUND_SSBO[0]"},
		{StorageBuffer(15), "BOUND_SSBO[15]"},
		{UniformBuffer(3), "BOUND_UBO[3]"},
		{Texture(0, driver.Texture2D), "BOUND_TEXTURE[0][2D]"},
		{Texture(31, driver.TextureCubeMap), "BOUND_TEXTURE[31][CUBE_MAP]"},
		{StencilOperationProperty(driver.StencilDepthFail), "STENCIL_DEPTH_FAIL"},
	}
	for _, tt := range tests {
		if got := tt.p.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
		if p, ok := Registry().Lookup(tt.want); !ok || p != tt.p {
			t.Errorf("Lookup(%q) did not return the property", tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	s := Default()
	tests := []struct {
		p    *state.Property
		want string
	}{
		{Program, "0"},
		{StencilTest, "false"},
		{StencilWriteMask, "0xffffffff"},
		{StencilCompareMask, "0xffffffff"},
		{StencilCompare, "ALWAYS"},
		{StencilReference, "0"},
		{StencilPass, "KEEP"},
		{DepthTest, "false"},
		{DepthCompare, "LESS"},
		{DepthWriteMask, "true"},
	}
	for _, tt := range tests {
		if got := tt.p.Format(s.Get(tt.p)); got != tt.want {
			t.Errorf("%s default = %s, want %s", tt.p, got, tt.want)
		}
	}
}

// The shadow state of a fresh trace driver must agree with Default, since
// the linker assumes Default on an untouched context.
func TestDefaultMatchesFreshContext(t *testing.T) {
	d := trace.New()
	for _, p := range Registry().Properties() {
		Apply(d, p, Default().Get(p))
	}
	unbound := cmpopts.IgnoreMapEntries(func(_ any, v uint32) bool { return v == 0 })
	if diff := cmp.Diff(trace.DefaultSnapshot(), d.State(), unbound); diff != "" {
		t.Errorf("applying Default changed the fresh context (-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		p    *state.Property
		v    state.Value
		want string
	}{
		{Program, 7, "UseProgram(7)"},
		{VertexArray, 3, "BindVertexArray(3)"},
		{StorageBuffer(2), 9, "BindBufferBase(SHADER_STORAGE_BUFFER, 2, 9)"},
		{UniformBuffer(1), 4, "BindBufferBase(UNIFORM_BUFFER, 1, 4)"},
		{Texture(5, driver.Texture3D), 8, "BindTexture(5, 3D, 8)"},
		{StencilTest, state.Bool(true), "Enable(STENCIL_TEST)"},
		{DepthTest, state.Bool(false), "Disable(DEPTH_TEST)"},
		{StencilWriteMask, 0xff, "StencilMask(0xff)"},
		{StencilCompare, state.Value(gputypes.CompareFunctionEqual), "StencilCompare(EQUAL)"},
		{StencilReference, state.Int32(-2), "StencilReference(-2)"},
		{StencilCompareMask, 0x0f, "StencilCompareMask(0xf)"},
		{StencilFail, state.Value(driver.StencilZero), "StencilOperation(FAIL, ZERO)"},
		{StencilDepthFail, state.Value(driver.StencilInvert), "StencilOperation(DEPTH_FAIL, INVERT)"},
		{StencilPass, state.Value(driver.StencilReplace), "StencilOperation(PASS, REPLACE)"},
		{DepthCompare, state.Value(gputypes.CompareFunctionGreater), "DepthCompare(GREATER)"},
		{DepthWriteMask, state.Bool(false), "DepthMask(false)"},
	}
	for _, tt := range tests {
		t.Run(tt.p.Name(), func(t *testing.T) {
			d := trace.New()
			Apply(d, tt.p, tt.v)
			calls := d.Calls()
			if len(calls) != 1 || calls[0] != tt.want {
				t.Errorf("Apply() calls = %v, want [%s]", calls, tt.want)
			}
		})
	}
}

func TestApplyForeignPropertyPanics(t *testing.T) {
	r := state.NewRegistry()
	p := r.Define("OTHER", 0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Apply(trace.New(), p, 1)
}

func TestStencilPrerequisitesOnlyWhenEnabled(t *testing.T) {
	off := Default()
	if got := StencilTest.Prerequisites(off); len(got) != 0 {
		t.Errorf("disabled STENCIL_TEST prerequisites = %v, want none", got)
	}

	on := off.With(StencilTest, state.Bool(true))
	got, err := Registry().Resolve([]*state.Property{StencilTest}, on)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 8 {
		t.Fatalf("Resolve(STENCIL_TEST) = %v, want 8 properties", got)
	}
	if got[len(got)-1] != StencilTest {
		t.Errorf("STENCIL_TEST must come after its parameters, got %v", got)
	}
}

func TestDepthPrerequisitesOnlyWhenEnabled(t *testing.T) {
	if got := DepthTest.Prerequisites(Default()); len(got) != 0 {
		t.Errorf("disabled DEPTH_TEST prerequisites = %v, want none", got)
	}
	on := Default().With(DepthTest, state.Bool(true))
	got := DepthTest.Prerequisites(on)
	if len(got) != 2 || got[0] != DepthCompare || got[1] != DepthWriteMask {
		t.Errorf("enabled DEPTH_TEST prerequisites = %v", got)
	}
}

func TestFamilyAccessorsPanicOutOfRange(t *testing.T) {
	for name, fn := range map[string]func(){
		"storage": func() { StorageBuffer(MaxStorageBuffers) },
		"uniform": func() { UniformBuffer(MaxUniformBuffers) },
		"texture": func() { Texture(MaxTextureUnits, driver.Texture2D) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}
