// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads glcmdc configuration files.
//
// Configuration is TOML. Unknown keys are rejected:
//
//	[limits]
//	storage_buffers = 8
//	uniform_buffers = 8
//	texture_units = 16
//
//	[compiler]
//	strategy = "lazy"   # or "eager"
//
//	[log]
//	level = "debug"     # debug, info, warn, error
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/glcmd/command"
)

// ErrInvalid is returned for configuration values that fail validation.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded configuration.
type Config struct {
	Limits   Limits   `toml:"limits"`
	Compiler Compiler `toml:"compiler"`
	Log      Log      `toml:"log"`
}

// Limits mirrors command.Limits.
type Limits struct {
	StorageBuffers uint32 `toml:"storage_buffers"`
	UniformBuffers uint32 `toml:"uniform_buffers"`
	TextureUnits   uint32 `toml:"texture_units"`
}

// Compiler holds linker settings.
type Compiler struct {
	Strategy string `toml:"strategy"`
}

// Log holds logging settings.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	l := command.DefaultLimits()
	return Config{
		Limits: Limits{
			StorageBuffers: l.StorageBuffers,
			UniformBuffers: l.UniformBuffers,
			TextureUnits:   l.TextureUnits,
		},
		Compiler: Compiler{Strategy: command.StrategyLazy.String()},
		Log:      Log{Level: "warn"},
	}
}

// Load reads and validates the file at path. Keys absent from the file
// keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads and validates a configuration from r.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config: unknown keys:\n%s", strict.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value.
func (c Config) Validate() error {
	if err := c.ContextLimits().Validate(); err != nil {
		return fmt.Errorf("%w: limits: %w", ErrInvalid, err)
	}
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("%w: compiler.strategy: %w", ErrInvalid, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// ContextLimits converts the limits section.
func (c Config) ContextLimits() command.Limits {
	return command.Limits{
		StorageBuffers: c.Limits.StorageBuffers,
		UniformBuffers: c.Limits.UniformBuffers,
		TextureUnits:   c.Limits.TextureUnits,
	}
}

// Strategy parses the compiler strategy.
func (c Config) Strategy() (command.Strategy, error) {
	return command.ParseStrategy(c.Compiler.Strategy)
}

// LogLevel parses the log level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
