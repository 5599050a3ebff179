// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/glcmd/command"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.ContextLimits() != command.DefaultLimits() {
		t.Errorf("ContextLimits() = %+v, want %+v", cfg.ContextLimits(), command.DefaultLimits())
	}
}

func TestDecode(t *testing.T) {
	input := `
[limits]
storage_buffers = 8
texture_units = 4

[compiler]
strategy = "eager"

[log]
level = "debug"
`
	cfg, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}

	want := Default()
	want.Limits.StorageBuffers = 8
	want.Limits.TextureUnits = 4
	want.Compiler.Strategy = "eager"
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}

	if s, _ := cfg.Strategy(); s != command.StrategyEager {
		t.Errorf("Strategy() = %s, want eager", s)
	}
	if l, _ := cfg.LogLevel(); l != slog.LevelDebug {
		t.Errorf("LogLevel() = %s, want DEBUG", l)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"unknown key", "[compiler]\noptimize = true\n", false},
		{"unknown section", "[render]\nwidth = 3\n", false},
		{"syntax", "[limits\n", false},
		{"wrong type", "[limits]\ntexture_units = \"many\"\n", false},
		{"limit too large", "[limits]\nstorage_buffers = 64\n", true},
		{"bad strategy", "[compiler]\nstrategy = \"greedy\"\n", true},
		{"bad level", "[log]\nlevel = \"loud\"\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %t, want %t (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glcmdc.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Compiler.Strategy = "eager"

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(Encode()) = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
