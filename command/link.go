// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glcmd/glstate"
	"github.com/gogpu/glcmd/state"
)

// Strategy selects how the linker decides which transitions to emit.
type Strategy uint8

const (
	// StrategyLazy realizes only the properties an operation depends on,
	// transitively. Requested state nothing reads is never realized.
	StrategyLazy Strategy = iota

	// StrategyEager realizes every property that differs from the last
	// realized state before each operation. Transitions are still ordered
	// by prerequisites.
	StrategyEager
)

// String returns the name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLazy:
		return "lazy"
	case StrategyEager:
		return "eager"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy parses "lazy" or "eager".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "lazy", "":
		return StrategyLazy, nil
	case "eager":
		return StrategyEager, nil
	}
	return 0, invalidf("strategy %q", s)
}

// linker turns recorded operations into a flat program.
type linker struct {
	strategy Strategy
	realized *state.State
	program  []Instruction

	// Indexed by property. A property is inherited when an operation reads
	// it before the program sets it, so the program relies on the value the
	// driver starts with.
	read      []bool
	written   []bool
	inherited []*state.Property
}

func newLinker(strategy Strategy) *linker {
	n := glstate.Registry().Len()
	return &linker{
		strategy: strategy,
		realized: glstate.Default(),
		read:     make([]bool, n),
		written:  make([]bool, n),
	}
}

// link appends the transitions op needs followed by its effect.
func (l *linker) link(op *Operation) error {
	reads, err := glstate.Registry().Resolve(op.deps, op.target)
	if err != nil {
		return err
	}
	ordered := reads
	if l.strategy == StrategyEager {
		ordered, err = glstate.Registry().Resolve(l.realized.Diff(op.target), op.target)
		if err != nil {
			return err
		}
	}

	m := l.realized.Mutable()
	for _, p := range ordered {
		v := op.target.Get(p)
		if m.Get(p) == v {
			continue
		}
		l.program = append(l.program, transition(p, v))
		l.written[p.Index()] = true
		m.Set(p, v)
	}
	for _, p := range reads {
		i := p.Index()
		if l.read[i] {
			continue
		}
		l.read[i] = true
		if !l.written[i] {
			l.inherited = append(l.inherited, p)
		}
	}
	l.program = append(l.program, op.effect)
	l.realized = m.Snapshot()
	return nil
}

// prologue returns the transitions restoring every inherited property the
// program leaves changed, in declaration order. glstate declares
// prerequisites before the properties requiring them.
func (l *linker) prologue() []Instruction {
	inherited := slices.Clone(l.inherited)
	slices.SortFunc(inherited, func(a, b *state.Property) int {
		return cmp.Compare(a.Index(), b.Index())
	})
	var out []Instruction
	for _, p := range inherited {
		if v := p.Default(); l.realized.Get(p) != v {
			out = append(out, transition(p, v))
		}
	}
	return out
}

// linkAll links ops in order starting from the default state.
func linkAll(ops []*Operation, strategy Strategy) (*linker, error) {
	l := newLinker(strategy)
	for i, op := range ops {
		if err := l.link(op); err != nil {
			return nil, fmt.Errorf("command: link operation %d: %w", i, err)
		}
	}
	return l, nil
}
