// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the live graphics context that compiled command
// programs replay against.
//
// A [Driver] exposes one method per orthogonal piece of GL state plus the
// draw and clear calls. Implementations translate them to a real API; the
// trace sub-package records them for inspection and tests.
//
// Drivers are created by name through a registry following the
// database/sql pattern:
//
//	import _ "github.com/gogpu/glcmd/driver/trace"
//
//	d, err := driver.New("trace")
//
// The package also holds the GL enumerations shared by the builder and the
// drivers, each with its GL numeric value.
package driver
