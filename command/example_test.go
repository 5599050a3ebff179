// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command_test

import (
	"fmt"
	"log"

	"github.com/gogpu/glcmd/command"
	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/driver/trace"
)

func Example() {
	ctx, err := command.NewContext(command.WithLabel("example"))
	if err != nil {
		log.Fatal(err)
	}

	b := command.NewBuilder(ctx)
	_ = b.UseProgram(ctx.Program(7))
	_ = b.Bind(&command.Binding{
		VertexArray:    ctx.VertexArray(3),
		StorageBuffers: []command.BufferBinding{{Slot: 0, Buffer: ctx.Buffer(9)}},
	})
	_ = b.StencilWriteMask(0x01) // overwritten before anything reads it
	_ = b.StencilWriteMask(0xff)
	_ = b.DrawArrays(driver.Triangles, 0, 6)
	_ = b.Clear(driver.LayerStencil)

	cb, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(cb)

	d := trace.New()
	if err := cb.Execute(d); err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(d.Calls()), "driver calls")

	// Output:
	// set BOUND_PROGRAM = 7
	// set BOUND_VAO = 3
	// set BOUND_SSBO[0] = 9
	// draw TRIANGLES first=0 count=6
	// set STENCIL_WRITE_MASK = 0xff
	// clear STENCIL
	// 6 driver calls
}
