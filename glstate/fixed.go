// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/state"
)

// Stencil facets.
var (
	StencilWriteMask   *state.Property
	StencilCompare     *state.Property
	StencilReference   *state.Property
	StencilCompareMask *state.Property
	StencilFail        *state.Property
	StencilDepthFail   *state.Property
	StencilPass        *state.Property
	StencilTest        *state.Property
)

// Depth facets.
var (
	DepthCompare   *state.Property
	DepthWriteMask *state.Property
	DepthTest      *state.Property
)

// StencilOperationProperty returns the property holding the stencil
// operation for outcome.
func StencilOperationProperty(outcome driver.StencilOutcome) *state.Property {
	switch outcome {
	case driver.StencilFail:
		return StencilFail
	case driver.StencilDepthFail:
		return StencilDepthFail
	case driver.StencilPass:
		return StencilPass
	}
	panic("glstate: invalid stencil outcome " + outcome.String())
}

func stencilOperation(outcome driver.StencilOutcome) applier {
	return func(d driver.Driver, v state.Value) {
		d.StencilOperation(outcome, driver.StencilOperation(v))
	}
}

func declareFixedFunction() {
	allOnes := state.Value(^uint32(0))
	hex := state.WithFormat(state.FormatHex)
	boolean := state.WithFormat(state.FormatBool)
	compare := state.WithFormat(FormatCompare)
	op := state.WithFormat(FormatStencilOperation)

	StencilWriteMask = define("STENCIL_WRITE_MASK", allOnes, func(d driver.Driver, v state.Value) {
		d.StencilMask(v.Uint32())
	}, hex)
	StencilCompare = define("STENCIL_COMPARE", state.Value(gputypes.CompareFunctionAlways), func(d driver.Driver, v state.Value) {
		d.StencilCompare(gputypes.CompareFunction(v))
	}, compare)
	StencilReference = define("STENCIL_REFERENCE", 0, func(d driver.Driver, v state.Value) {
		d.StencilReference(v.Int32())
	}, state.WithFormat(state.FormatInt32))
	StencilCompareMask = define("STENCIL_COMPARE_MASK", allOnes, func(d driver.Driver, v state.Value) {
		d.StencilCompareMask(v.Uint32())
	}, hex)
	StencilFail = define("STENCIL_FAIL", state.Value(driver.StencilKeep), stencilOperation(driver.StencilFail), op)
	StencilDepthFail = define("STENCIL_DEPTH_FAIL", state.Value(driver.StencilKeep), stencilOperation(driver.StencilDepthFail), op)
	StencilPass = define("STENCIL_PASS", state.Value(driver.StencilKeep), stencilOperation(driver.StencilPass), op)
	StencilTest = define("STENCIL_TEST", state.Bool(false), func(d driver.Driver, v state.Value) {
		d.SetEnabled(driver.StencilTest, v.Bool())
	}, boolean)

	DepthCompare = define("DEPTH_COMPARE", state.Value(gputypes.CompareFunctionLess), func(d driver.Driver, v state.Value) {
		d.DepthCompare(gputypes.CompareFunction(v))
	}, compare)
	DepthWriteMask = define("DEPTH_WRITE_MASK", state.Bool(true), func(d driver.Driver, v state.Value) {
		d.DepthMask(v.Bool())
	}, boolean)
	DepthTest = define("DEPTH_TEST", state.Bool(false), func(d driver.Driver, v state.Value) {
		d.SetEnabled(driver.DepthTest, v.Bool())
	}, boolean)

	stencilEnabled := func(s *state.State) bool { return s.Get(StencilTest).Bool() }
	for _, p := range []*state.Property{
		StencilWriteMask, StencilCompare, StencilReference, StencilCompareMask,
		StencilFail, StencilDepthFail, StencilPass,
	} {
		registry.RequireWhen(StencilTest, p, stencilEnabled)
	}

	depthEnabled := func(s *state.State) bool { return s.Get(DepthTest).Bool() }
	registry.RequireWhen(DepthTest, DepthCompare, depthEnabled)
	registry.RequireWhen(DepthTest, DepthWriteMask, depthEnabled)
}
