// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed arguments: unknown
	// enumeration values, negative counts, slots beyond the context limits,
	// nil resources, or a draw with no program in use.
	ErrInvalidArgument = errors.New("command: invalid argument")

	// ErrCrossContext is returned when a resource or command buffer belongs
	// to a different context than the builder. It wraps ErrInvalidArgument.
	ErrCrossContext = fmt.Errorf("%w: resource belongs to another context", ErrInvalidArgument)

	// ErrUsedAfterBuild is returned by every Builder method called after
	// Build.
	ErrUsedAfterBuild = errors.New("command: builder used after Build")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
