// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcmd"
	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/glstate"
	"github.com/gogpu/glcmd/state"
)

// Builder records operations for one command buffer.
//
// Example:
//
//	b := command.NewBuilder(ctx)
//	_ = b.UseProgram(prog)
//	_ = b.StencilTest(true)
//	_ = b.StencilWriteMask(0xff)
//	_ = b.Clear(driver.LayerStencil)
//	cb, err := b.Build()
//
// Every method returns ErrUsedAfterBuild once Build has been called. A
// method that returns an error leaves the builder unchanged.
//
// The Builder is not safe for concurrent use.
type Builder struct {
	ctx      *Context
	strategy Strategy

	// Requested state and what produced it.
	current *state.State
	program *Program
	binding *Binding

	ops       []*Operation
	resources *resourceSet
	built     bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithStrategy selects the linking strategy. The default is StrategyLazy.
func WithStrategy(s Strategy) BuilderOption {
	return func(b *Builder) {
		b.strategy = s
	}
}

// NewBuilder creates a builder recording for ctx, starting from the
// default GL state. It panics if ctx is nil.
func NewBuilder(ctx *Context, opts ...BuilderOption) *Builder {
	if ctx == nil {
		panic("command: NewBuilder with nil context")
	}
	b := &Builder{
		ctx:       ctx,
		current:   glstate.Default(),
		ops:       make([]*Operation, 0, 32),
		resources: newResourceSet(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Context returns the context the builder records for.
func (b *Builder) Context() *Context { return b.ctx }

// State returns the currently requested state.
func (b *Builder) State() *state.State { return b.current }

// Len returns the number of recorded operations.
func (b *Builder) Len() int { return len(b.ops) }

// --------------------------------------------------------------------------
// Bindings
// --------------------------------------------------------------------------

// Bind makes binding the resource set read by subsequent draws. Every
// vertex array, buffer and texture it names is set atomically.
func (b *Builder) Bind(binding *Binding) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	if binding == nil {
		return invalidf("nil binding")
	}
	if err := binding.validate(b.ctx); err != nil {
		return err
	}
	m := b.current.Mutable()
	binding.apply(m)
	b.current = m.Snapshot()
	b.binding = binding.clone()
	return nil
}

// UseProgram makes p the program used by subsequent draws.
func (b *Builder) UseProgram(p *Program) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	if p == nil {
		return invalidf("nil program")
	}
	if !b.ctx.same(p.ctx) {
		return ErrCrossContext
	}
	b.current = b.current.With(glstate.Program, state.Value(p.name))
	b.program = p
	return nil
}

// --------------------------------------------------------------------------
// Fixed function state
// --------------------------------------------------------------------------

func (b *Builder) set(p *state.Property, v state.Value) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	b.current = b.current.With(p, v)
	return nil
}

// StencilTest enables or disables the stencil test.
func (b *Builder) StencilTest(enabled bool) error {
	return b.set(glstate.StencilTest, state.Bool(enabled))
}

// StencilWriteMask sets the mask of stencil bits draws and clears may write.
func (b *Builder) StencilWriteMask(mask uint32) error {
	return b.set(glstate.StencilWriteMask, state.Value(mask))
}

// StencilCompareMask sets the mask applied to both sides of the stencil
// comparison.
func (b *Builder) StencilCompareMask(mask uint32) error {
	return b.set(glstate.StencilCompareMask, state.Value(mask))
}

// StencilReference sets the stencil reference value.
func (b *Builder) StencilReference(ref int32) error {
	return b.set(glstate.StencilReference, state.Int32(ref))
}

// StencilCompare sets the stencil comparison function.
func (b *Builder) StencilCompare(fn gputypes.CompareFunction) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	if !driver.ValidCompare(fn) {
		return invalidf("stencil comparison %s", driver.CompareName(fn))
	}
	return b.set(glstate.StencilCompare, state.Value(fn))
}

// StencilOperation sets the operations applied when the stencil test
// fails, when it passes but the depth test fails, and when both pass.
func (b *Builder) StencilOperation(fail, depthFail, pass driver.StencilOperation) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	for _, op := range [...]driver.StencilOperation{fail, depthFail, pass} {
		if !op.Valid() {
			return invalidf("stencil operation %s", op)
		}
	}
	b.current = b.current.Mutable().
		Set(glstate.StencilFail, state.Value(fail)).
		Set(glstate.StencilDepthFail, state.Value(depthFail)).
		Set(glstate.StencilPass, state.Value(pass)).
		Snapshot()
	return nil
}

// DepthTest enables or disables the depth test.
func (b *Builder) DepthTest(enabled bool) error {
	return b.set(glstate.DepthTest, state.Bool(enabled))
}

// DepthCompare sets the depth comparison function.
func (b *Builder) DepthCompare(fn gputypes.CompareFunction) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	if !driver.ValidCompare(fn) {
		return invalidf("depth comparison %s", driver.CompareName(fn))
	}
	return b.set(glstate.DepthCompare, state.Value(fn))
}

// DepthWriteMask enables or disables writes to the depth buffer.
func (b *Builder) DepthWriteMask(write bool) error {
	return b.set(glstate.DepthWriteMask, state.Bool(write))
}

// --------------------------------------------------------------------------
// Operations
// --------------------------------------------------------------------------

// drawDependencies returns the properties a draw reads directly.
func (b *Builder) drawDependencies() []*state.Property {
	deps := make([]*state.Property, 0, 8)
	deps = append(deps, glstate.Program)
	deps = b.binding.dependencies(deps)
	return append(deps, glstate.StencilTest, glstate.DepthTest)
}

func (b *Builder) record(deps []*state.Property, effect Instruction) {
	op := &Operation{
		target:  b.current,
		deps:    deps,
		effect:  effect,
		program: b.program,
		binding: b.binding,
	}
	b.ops = append(b.ops, op)
	b.retain(op)
}

// retain keeps the resources op reads alive with the buffer.
func (b *Builder) retain(op *Operation) {
	if op.effect.Kind == KindClear {
		return
	}
	if op.program != nil {
		b.resources.add(op.program)
	}
	if op.binding != nil {
		op.binding.resources(b.resources.add)
	}
}

func (b *Builder) checkDraw(mode driver.DrawMode) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	if !mode.Valid() {
		return invalidf("draw mode %s", mode)
	}
	if b.program == nil {
		return invalidf("draw with no program in use")
	}
	return nil
}

// DrawArrays draws count vertices starting at first.
func (b *Builder) DrawArrays(mode driver.DrawMode, first, count int32) error {
	if err := b.checkDraw(mode); err != nil {
		return err
	}
	if first < 0 || count < 0 {
		return invalidf("draw range first=%d count=%d", first, count)
	}
	b.record(b.drawDependencies(), Instruction{
		Kind:  KindDrawArrays,
		Mode:  mode,
		First: first,
		Count: count,
	})
	return nil
}

// DrawElements draws count indices of type typ starting at index
// firstIndex of the element buffer of the bound vertex array.
func (b *Builder) DrawElements(mode driver.DrawMode, typ driver.IndexType, count, firstIndex int32) error {
	if err := b.checkDraw(mode); err != nil {
		return err
	}
	if !typ.Valid() {
		return invalidf("index type %s", typ)
	}
	if count < 0 || firstIndex < 0 {
		return invalidf("draw range first=%d count=%d", firstIndex, count)
	}
	b.record(b.drawDependencies(), Instruction{
		Kind:      KindDrawElements,
		Mode:      mode,
		Count:     count,
		IndexType: typ,
		Offset:    uintptr(firstIndex) * uintptr(typ.Size()),
	})
	return nil
}

// Clear clears the given framebuffer layers. Clearing the stencil layer
// depends on the stencil write mask and clearing the depth layer on the
// depth write mask.
func (b *Builder) Clear(layers driver.Layer) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	if !layers.Valid() {
		return invalidf("clear layers %s", layers)
	}
	var deps []*state.Property
	if layers.Has(driver.LayerDepth) {
		deps = append(deps, glstate.DepthWriteMask)
	}
	if layers.Has(driver.LayerStencil) {
		deps = append(deps, glstate.StencilWriteMask)
	}
	b.record(deps, Instruction{Kind: KindClear, Layers: layers})
	return nil
}

// Execute splices the operations of cb into the builder verbatim, each
// with the snapshot it was recorded with. The builder continues from the
// state, program and binding of the last spliced operation.
func (b *Builder) Execute(cb *CommandBuffer) error {
	if b.built {
		return ErrUsedAfterBuild
	}
	if cb == nil {
		return invalidf("nil command buffer")
	}
	if !b.ctx.same(cb.ctx) {
		return ErrCrossContext
	}
	if len(cb.ops) == 0 {
		return nil
	}
	b.ops = append(b.ops, cb.ops...)
	b.resources.addAll(cb.resources)

	last := cb.ops[len(cb.ops)-1]
	b.current = last.target
	b.program = last.program
	b.binding = last.binding

	glcmd.Logger().Debug("command: execute",
		"context", b.ctx.label,
		"operations", len(cb.ops),
	)
	return nil
}

// Build links the recorded operations into a command buffer. The builder
// may not be used afterwards.
func (b *Builder) Build() (*CommandBuffer, error) {
	if b.built {
		return nil, ErrUsedAfterBuild
	}
	b.built = true

	l, err := linkAll(b.ops, b.strategy)
	if err != nil {
		return nil, err
	}
	cb := &CommandBuffer{
		ctx:       b.ctx,
		ops:       b.ops,
		prologue:  l.prologue(),
		program:   l.program,
		realized:  l.realized,
		resources: b.resources.slice(),
	}
	b.ops = nil
	b.resources = nil

	glcmd.Logger().Debug("command: build",
		"context", b.ctx.label,
		"strategy", b.strategy.String(),
		"operations", len(cb.ops),
		"instructions", len(cb.program),
		"transitions", cb.Transitions(),
		"prologue", len(cb.prologue),
	)
	return cb, nil
}
