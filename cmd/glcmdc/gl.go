// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build gl

package main

import _ "github.com/gogpu/glcmd/driver/gl"
