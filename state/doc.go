// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package state models trackable driver state.
//
// A [Registry] owns a fixed vocabulary of [Property] descriptors. Each
// property is one orthogonal driver facet (a bound program, the buffer at
// a binding slot, the stencil write mask) with a default value and a set
// of declared prerequisites. Once sealed, a registry yields its default
// [State]: an immutable snapshot assigning a value to every property.
//
// Snapshots derive from each other copy-on-write. A derived snapshot
// shares its flat root array with its ancestors and only carries a short
// sorted list of overrides, so [State.With] copies a handful of entries
// instead of the whole vocabulary, and [State.Diff] between related
// snapshots only inspects those overrides.
//
// Prerequisites form the dependency graph used by the command compiler:
// [Registry.Resolve] returns the transitive closure of a set of properties
// against a target snapshot in topological order, prerequisites first.
package state
