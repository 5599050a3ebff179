// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glstate declares the GL driver state tracked by the command
// compiler.
//
// Every facet is a [state.Property] of one process-wide registry, sealed at
// init. Indexed bindings are families of distinct properties: one per
// storage buffer slot, one per uniform buffer slot and one per texture unit
// and target pair.
//
// Fixed-function parameters only matter while their test is enabled.
// STENCIL_TEST therefore requires the stencil write mask, comparison,
// reference, compare mask and operations only in snapshots where the
// stencil test is on, and DEPTH_TEST requires DEPTH_COMPARE and
// DEPTH_WRITE_MASK only where the depth test is on.
package glstate

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/state"
)

// Binding capacities. Context limits may not exceed these.
const (
	MaxStorageBuffers = 16
	MaxUniformBuffers = 16
	MaxTextureUnits   = 32
)

var registry = state.NewRegistry()

// applier realizes one property value on a driver.
type applier func(d driver.Driver, v state.Value)

var appliers []applier

func define(name string, def state.Value, apply applier, opts ...state.Option) *state.Property {
	p := registry.Define(name, def, opts...)
	appliers = append(appliers, apply)
	return p
}

var (
	// Program is the program object in use.
	Program = define("BOUND_PROGRAM", 0, func(d driver.Driver, v state.Value) {
		d.UseProgram(v.Uint32())
	})

	// VertexArray is the bound vertex array object.
	VertexArray = define("BOUND_VAO", 0, func(d driver.Driver, v state.Value) {
		d.BindVertexArray(v.Uint32())
	})
)

var (
	storageBuffers [MaxStorageBuffers]*state.Property
	uniformBuffers [MaxUniformBuffers]*state.Property
	textures       [MaxTextureUnits][driver.TextureTargetCount]*state.Property
)

func init() {
	for i := range storageBuffers {
		slot := uint32(i)
		storageBuffers[i] = define(fmt.Sprintf("BOUND_SSBO[%d]", i), 0, func(d driver.Driver, v state.Value) {
			d.BindBufferBase(driver.ShaderStorageBuffer, slot, v.Uint32())
		})
	}
	for i := range uniformBuffers {
		slot := uint32(i)
		uniformBuffers[i] = define(fmt.Sprintf("BOUND_UBO[%d]", i), 0, func(d driver.Driver, v state.Value) {
			d.BindBufferBase(driver.UniformBuffer, slot, v.Uint32())
		})
	}
	for u := range textures {
		unit := uint32(u)
		for t := range textures[u] {
			target := driver.TextureTarget(t)
			textures[u][t] = define(fmt.Sprintf("BOUND_TEXTURE[%d][%s]", u, target), 0, func(d driver.Driver, v state.Value) {
				d.BindTexture(unit, target, v.Uint32())
			})
		}
	}

	declareFixedFunction()

	if err := registry.Seal(); err != nil {
		panic(err)
	}
}

// StorageBuffer returns the property for shader storage buffer slot i.
// It panics if i is not below MaxStorageBuffers.
func StorageBuffer(i uint32) *state.Property {
	return storageBuffers[i]
}

// UniformBuffer returns the property for uniform buffer slot i.
// It panics if i is not below MaxUniformBuffers.
func UniformBuffer(i uint32) *state.Property {
	return uniformBuffers[i]
}

// Texture returns the property for the texture bound to unit for target.
// It panics if unit is not below MaxTextureUnits or target is invalid.
func Texture(unit uint32, target driver.TextureTarget) *state.Property {
	return textures[unit][target]
}

// Registry returns the sealed registry holding every GL property.
func Registry() *state.Registry { return registry }

// Default returns the state of a freshly created GL context.
func Default() *state.State { return registry.Default() }

// Apply issues the driver call that sets p to v.
// Apply panics if p does not belong to Registry.
func Apply(d driver.Driver, p *state.Property, v state.Value) {
	if p.Registry() != registry {
		panic("glstate: property " + p.Name() + " is not a GL property")
	}
	appliers[p.Index()](d, v)
}

// FormatCompare renders a comparison function value.
func FormatCompare(v state.Value) string {
	return driver.CompareName(gputypes.CompareFunction(v))
}

// FormatStencilOperation renders a stencil operation value.
func FormatStencilOperation(v state.Value) string {
	return driver.StencilOperation(v).String()
}
