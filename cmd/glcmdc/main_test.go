// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"flag"
	"path/filepath"
	"strings"
	"testing"
)

var scene = filepath.Join("testdata", "scene.hcl")

func TestRunPrintsPrograms(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", filepath.Join("testdata", "glcmdc.toml"), scene}, &stdout, &stderr); err != nil {
		t.Fatalf("run() = %v\n%s", err, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{
		`frame "main": 1 operations, 4 instructions, 3 transitions`,
		"set BOUND_SSBO[0] = 9",
		`frame "shadow": 1 operations, 2 instructions, 1 transitions`,
		"set STENCIL_WRITE_MASK = 0xf",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCalls(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-q", "-calls", "-replays", "2", "-frame", "main", scene}, &stdout, &stderr); err != nil {
		t.Fatalf("run() = %v", err)
	}
	want := `frame "main": driver calls of the last replay
	UseProgram(7)
	BindVertexArray(3)
	BindBufferBase(SHADER_STORAGE_BUFFER, 0, 9)
	DrawArrays(TRIANGLES, 0, 6)
`
	if got := stdout.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestRunRepeatedReplaysStartClean(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-calls", "-replays", "2", "-frame", "outline", scene}, &stdout, &stderr); err != nil {
		t.Fatalf("run() = %v", err)
	}
	want := `frame "outline": 2 operations, 4 instructions, 2 transitions
prologue set STENCIL_TEST = false
set BOUND_PROGRAM = 7
draw TRIANGLES first=0 count=3
set STENCIL_TEST = true
draw TRIANGLES first=0 count=3
frame "outline": driver calls of the last replay
	Disable(STENCIL_TEST)
	UseProgram(7)
	DrawArrays(TRIANGLES, 0, 3)
	Enable(STENCIL_TEST)
	DrawArrays(TRIANGLES, 0, 3)
`
	if got := stdout.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestRunEagerOverride(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-strategy", "eager", "-frame", "shadow", scene}, &stdout, &stderr); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if !strings.Contains(stdout.String(), "set STENCIL_WRITE_MASK = 0xf") {
		t.Errorf("output = %s", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no file", nil, "exactly one frame file"},
		{"unknown frame", []string{"-frame", "nope", scene}, `no frame "nope"`},
		{"unknown driver", []string{"-driver", "vulkan", scene}, "forgotten import"},
		{"bad strategy", []string{"-strategy", "greedy", scene}, "strategy"},
		{"negative replays", []string{"-replays", "-1", scene}, "replays"},
		{"missing file", []string{filepath.Join("testdata", "missing.hcl")}, "no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-h"}, &stdout, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("run(-h) = %v, want flag.ErrHelp", err)
	}
}
