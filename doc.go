// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glcmd compiles recorded rendering work into minimal, replayable
// GL command programs.
//
// # Overview
//
// Changing pipeline state (bound buffers, programs, texture units, stencil
// parameters) is usually the dominant cost of a GL renderer. An
// immediate-mode renderer re-issues every state change every frame even
// when most of it is already in effect. glcmd records a frame once through
// a builder, computes the minimal set of state transitions each operation
// actually needs, and produces a command buffer that replays that program
// with no further analysis.
//
// # Quick Start
//
//	ctx, _ := command.NewContext()
//	b := command.NewBuilder(ctx)
//	_ = b.UseProgram(ctx.Program(7))
//	_ = b.Bind(&command.Binding{
//	    VertexArray: ctx.VertexArray(3),
//	    StorageBuffers: []command.BufferBinding{{Slot: 0, Buffer: ctx.Buffer(9)}},
//	})
//	_ = b.DrawArrays(driver.Triangles, 0, 6)
//	buf, _ := b.Build()
//
//	// every frame
//	_ = buf.Execute(d)
//
// # Architecture
//
// The module is organized into:
//   - state: properties, the dependency graph and copy-on-write snapshots
//   - glstate: the GL property vocabulary and how each facet is realized
//   - driver: the replay target interface, GL enums and driver registry
//   - command: contexts, resources, the builder, the linker and command buffers
//
// # Logging
//
// glcmd is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog] logger.
package glcmd
