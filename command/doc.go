// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package command records GL rendering operations and compiles them into
// replayable command buffers with a minimal set of state transitions.
//
// A [Builder] tracks the state each operation expects as an immutable
// [state.State] snapshot. Binding and fixed-function calls only update that
// requested state; draw and clear calls capture it together with the
// properties the operation reads directly. [Builder.Build] then links the
// recorded operations: for each one it resolves the transitive dependency
// set against the operation's own snapshot, emits transitions for the
// properties whose realized value differs, and emits the operation itself.
// State that no operation reads is never realized, so calls overwritten
// before anything depends on them cost nothing at replay.
//
// # Example
//
//	ctx, _ := command.NewContext(command.WithLabel("main"))
//	b := command.NewBuilder(ctx)
//	_ = b.UseProgram(ctx.Program(7))
//	_ = b.Bind(&command.Binding{
//		VertexArray:    ctx.VertexArray(3),
//		StorageBuffers: []command.BufferBinding{{Slot: 0, Buffer: ctx.Buffer(9)}},
//	})
//	_ = b.DrawArrays(driver.Triangles, 0, 6)
//	cb, _ := b.Build()
//
//	for range frames {
//		_ = cb.Execute(d)
//	}
//
// A compiled buffer replays correctly on a driver in the default state of
// package glstate, and on a driver a previous replay of the same buffer
// left behind: [CommandBuffer.Execute] first runs a prologue resetting the
// properties the program relies on but changes. Any other starting state
// is undefined.
//
// # Thread Safety
//
// A Builder is not safe for concurrent use. A CommandBuffer is immutable
// and may be shared between goroutines, but replays against one driver must
// be serialized by the caller.
package command
