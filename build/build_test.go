package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlift/build"
	"github.com/katalvlaran/parlift/core"
	"github.com/katalvlaran/parlift/internal/fixtures"
	"github.com/katalvlaran/parlift/refine"
)

func boolRV(t *testing.T, g *core.FactorGraph, name string) *core.RandVar {
	t.Helper()
	rv, err := core.NewRandVar(name, []string{"true", "false"})
	require.NoError(t, err)
	require.NoError(t, g.AddRandVar(rv))

	return rv
}

// Trivial propositional case: one RV, one unary factor.
func TestBuild_TrivialPropositional_OnePRVOneParfactor(t *testing.T) {
	g := core.NewFactorGraph()
	a := boolRV(t, g, "A")
	table := map[core.AssignmentKey]float64{
		core.EncodeAssignment([]int{0}): 0.5,
		core.EncodeAssignment([]int{1}): 0.5,
	}
	f, err := core.NewFactor("f", []*core.RandVar{a}, table)
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(f))

	c := refine.Refine(g, nil)
	pfg, rvToInd, err := build.Build(g, c.RV, c.Factor, build.Options{})
	require.NoError(t, err)

	prvs := pfg.PRVs()
	require.Len(t, prvs, 1)
	assert.Equal(t, "R0", prvs[0].Name)
	assert.True(t, prvs[0].IsPropositional())

	pfs := pfg.Parfactors()
	require.Len(t, pfs, 1)
	assert.Equal(t, map[string]float64{"true": 0.5, "false": 0.5}, pfs[0].Potentials)

	assert.Equal(t, "R0", rvToInd["A"])
}

func pairFactor(t *testing.T, g *core.FactorGraph, name string, a, b *core.RandVar, v float64) {
	t.Helper()
	table := map[core.AssignmentKey]float64{}
	for _, idx := range core.CartesianIndices([]int{2, 2}) {
		table[core.EncodeAssignment(idx)] = v
	}
	f, err := core.NewFactor(name, []*core.RandVar{a, b}, table)
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(f))
}

// Three identical star factors: 2 PRVs (one per side), each with an LV of
// domain size 3, and 1 parfactor.
func TestBuild_ThreeIdenticalPairFactors_TwoPRVsOneParfactor(t *testing.T) {
	g := core.NewFactorGraph()
	for i := 0; i < 3; i++ {
		suffix := string(rune('1' + i))
		a := boolRV(t, g, "A"+suffix)
		b := boolRV(t, g, "B"+suffix)
		pairFactor(t, g, "f"+suffix, a, b, 0.5)
	}

	c := refine.Refine(g, nil)
	pfg, rvToInd, err := build.Build(g, c.RV, c.Factor, build.Options{})
	require.NoError(t, err)

	prvs := pfg.PRVs()
	require.Len(t, prvs, 2)
	for _, p := range prvs {
		require.Len(t, p.LVs, 1)
		assert.Equal(t, 3, p.LVs[0].Size())
	}
	assert.Len(t, pfg.Parfactors(), 1)

	// every ground RV maps to an individuated PRV name
	for _, name := range []string{"A1", "A2", "A3", "B1", "B2", "B3"} {
		assert.Contains(t, rvToInd[name], "(")
	}
}

// A single factor of scope (A1,A2,A3,B) with commutative set {A1,A2,A3}
// yields one parfactor whose CRV is P, emitted via histogram keys shaped
// like "3;0, true".
func TestBuild_CommutativeScope_EmitsCountingRV(t *testing.T) {
	g := core.NewFactorGraph()
	a1 := boolRV(t, g, "A1")
	a2 := boolRV(t, g, "A2")
	a3 := boolRV(t, g, "A3")
	b := boolRV(t, g, "B")

	table := map[core.AssignmentKey]float64{}
	for _, idx := range core.CartesianIndices([]int{2, 2, 2, 2}) {
		table[core.EncodeAssignment(idx)] = 0.1
	}
	f, err := core.NewFactor("f", []*core.RandVar{a1, a2, a3, b}, table)
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(f))

	// force A1,A2,A3 into the same color (as if an upstream pass already
	// detected their symmetry) while B stays distinct, and the factor gets
	// its own single color.
	nodeColor := map[string]int{"A1": 0, "A2": 0, "A3": 0, "B": 1}
	factorColor := map[string]int{"f": 0}

	opts := build.Options{
		CommutativeArgs: build.CommutativeArgsCache{
			"f": {a1, a2, a3},
		},
		Hist: build.HistCache{
			"f": {
				build.CommutativeSetKey([]*core.RandVar{a1, a2, a3}): {
					{Histogram: []int{3, 0}, Rest: []string{"true"}, Value: 0.1},
					{Histogram: []int{2, 1}, Rest: []string{"true"}, Value: 0.1},
					{Histogram: []int{3, 0}, Rest: []string{"false"}, Value: 0.1},
				},
			},
		},
	}

	pfg, _, err := build.Build(g, nodeColor, factorColor, opts)
	require.NoError(t, err)

	pfs := pfg.Parfactors()
	require.Len(t, pfs, 1)
	pf := pfs[0]
	require.Len(t, pf.Scope, 2)
	assert.Equal(t, "R0", pf.Scope[0].Name, "CRV must be emitted first")
	assert.Contains(t, pf.Potentials, "3;0, true")
	assert.Contains(t, pf.Potentials, "2;1, true")

	p0, err := pfg.PRV("R0")
	require.NoError(t, err)
	require.Len(t, p0.CountedIn, 1)
	assert.NotNil(t, p0.CountedOver)
}

func TestBuild_MissingCommutativityAnnotation(t *testing.T) {
	g := core.NewFactorGraph()
	a1 := boolRV(t, g, "A1")
	a2 := boolRV(t, g, "A2")
	b := boolRV(t, g, "B")
	table := map[core.AssignmentKey]float64{}
	for _, idx := range core.CartesianIndices([]int{2, 2, 2}) {
		table[core.EncodeAssignment(idx)] = 0.3
	}
	f, err := core.NewFactor("f", []*core.RandVar{a1, a2, b}, table)
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(f))

	nodeColor := map[string]int{"A1": 0, "A2": 0, "B": 1}
	factorColor := map[string]int{"f": 0}

	_, _, err = build.Build(g, nodeColor, factorColor, build.Options{})
	assert.ErrorIs(t, err, build.ErrMissingCommutativityAnnotation)
}

// A star with 5 identical spokes (canonical fixture) must group every leaf
// into a single PRV with an LV of domain size 5, leaving the hub
// propositional, since the hub and leaves are never symmetric to each other.
func TestBuild_StarFixture_LeavesShareOneLV(t *testing.T) {
	g, err := fixtures.Star(6, fixtures.PrefixIDFn("L"), 0.5)
	require.NoError(t, err)

	c := refine.Refine(g, nil)
	pfg, rvToInd, err := build.Build(g, c.RV, c.Factor, build.Options{})
	require.NoError(t, err)

	prvs := pfg.PRVs()
	require.Len(t, prvs, 2)

	var leafPRVFound bool
	for _, p := range prvs {
		if p.IsPropositional() {
			assert.Equal(t, "R0", rvToInd["Center"])

			continue
		}
		leafPRVFound = true
		require.Len(t, p.LVs, 1)
		assert.Equal(t, 5, p.LVs[0].Size())
	}
	assert.True(t, leafPRVFound)
	assert.Len(t, pfg.Parfactors(), 1)
}

// Running Build twice on the same inputs yields parfactor graphs equal up
// to nothing needing remapping here, since color assignments are
// deterministic given the same (nodeColor, factorColor).
func TestBuild_Idempotence(t *testing.T) {
	g := core.NewFactorGraph()
	for i := 0; i < 3; i++ {
		suffix := string(rune('1' + i))
		a := boolRV(t, g, "A"+suffix)
		b := boolRV(t, g, "B"+suffix)
		pairFactor(t, g, "f"+suffix, a, b, 0.5)
	}
	c := refine.Refine(g, nil)

	pfg1, _, err := build.Build(g, c.RV, c.Factor, build.Options{})
	require.NoError(t, err)
	pfg2, _, err := build.Build(g, c.RV, c.Factor, build.Options{})
	require.NoError(t, err)

	assert.True(t, pfg1.Equal(pfg2))
}
