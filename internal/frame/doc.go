// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame compiles HCL frame descriptions into command buffers.
//
// A frame file declares driver objects and any number of frames. Objects
// are referenced by type and label; frames are compiled in file order and
// a frame may splice any frame declared before it.
//
//	program "terrain" { id = 7 }
//	vertex_array "tiles" { id = 3 }
//	buffer "positions" { id = 9 }
//	texture "atlas" {
//	  id     = 4
//	  target = "2d"
//	}
//
//	frame "main" {
//	  use_program { program = program.terrain }
//	  bind {
//	    vertex_array = vertex_array.tiles
//	    storage_buffer {
//	      slot   = 0
//	      buffer = buffer.positions
//	    }
//	    texture {
//	      unit    = 0
//	      texture = texture.atlas
//	    }
//	  }
//	  stencil {
//	    test       = true
//	    write_mask = 255
//	    pass       = "replace"
//	  }
//	  draw_arrays {
//	    mode  = "triangles"
//	    count = 6
//	  }
//	  clear { layers = ["depth", "stencil"] }
//	}
//
//	frame "overlay" {
//	  execute { frame = frame.main }
//	  draw_elements {
//	    mode  = "triangles"
//	    type  = "uint16"
//	    count = 6
//	  }
//	}
//
// Blocks inside a frame run in source order. stencil and depth blocks set
// only the attributes they name.
package frame
