// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build gl

package gl

import (
	"testing"

	gogl "github.com/go-gl/gl/v4.3-core/gl"

	"github.com/gogpu/glcmd/driver"
)

func TestRegistered(t *testing.T) {
	if !driver.IsRegistered("gl") {
		t.Error("gl driver should register itself")
	}
}

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{gogl.INVALID_ENUM, "GL_INVALID_ENUM"},
		{gogl.INVALID_OPERATION, "GL_INVALID_OPERATION"},
		{gogl.OUT_OF_MEMORY, "GL_OUT_OF_MEMORY"},
		{0x1234, "GL error 0x1234"},
	}
	for _, tt := range tests {
		if got := errorName(tt.code); got != tt.want {
			t.Errorf("errorName(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

// The GL numeric values in package driver must agree with the go-gl
// constants the driver passes them to.
func TestEnumValuesMatchGoGL(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"TRIANGLES", driver.Triangles.GL(), gogl.TRIANGLES},
		{"TRIANGLE_FAN", driver.TriangleFan.GL(), gogl.TRIANGLE_FAN},
		{"UNSIGNED_SHORT", driver.UnsignedShort.GL(), gogl.UNSIGNED_SHORT},
		{"SHADER_STORAGE_BUFFER", driver.ShaderStorageBuffer.GL(), gogl.SHADER_STORAGE_BUFFER},
		{"UNIFORM_BUFFER", driver.UniformBuffer.GL(), gogl.UNIFORM_BUFFER},
		{"TEXTURE_2D_ARRAY", driver.Texture2DArray.GL(), gogl.TEXTURE_2D_ARRAY},
		{"TEXTURE_CUBE_MAP", driver.TextureCubeMap.GL(), gogl.TEXTURE_CUBE_MAP},
		{"STENCIL_TEST", driver.StencilTest.GL(), gogl.STENCIL_TEST},
		{"INCR_WRAP", driver.StencilIncrementWrap.GL(), gogl.INCR_WRAP},
		{"INVERT", driver.StencilInvert.GL(), gogl.INVERT},
		{"STENCIL_BUFFER_BIT", driver.LayerStencil.GL(), gogl.STENCIL_BUFFER_BIT},
		{"TEXTURE0", driver.GLTexture0, gogl.TEXTURE0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}
