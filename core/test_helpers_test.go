package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlift/core"
)

// boolRV adds a Boolean RandVar (range {true,false}) with no evidence.
func boolRV(t *testing.T, g *core.FactorGraph, name string) *core.RandVar {
	t.Helper()
	rv, err := core.NewRandVar(name, []string{"true", "false"})
	require.NoError(t, err)
	require.NoError(t, g.AddRandVar(rv))

	return rv
}

// unaryFactor adds a known factor over a single Boolean RandVar with the
// given potentials for {true,false} respectively.
func unaryFactor(t *testing.T, g *core.FactorGraph, name string, rv *core.RandVar, pTrue, pFalse float64) *core.Factor {
	t.Helper()
	table := map[core.AssignmentKey]float64{
		core.EncodeAssignment([]int{0}): pTrue,
		core.EncodeAssignment([]int{1}): pFalse,
	}
	f, err := core.NewFactor(name, []*core.RandVar{rv}, table)
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(f))

	return f
}

// pairFactor adds a known factor over two Boolean RandVars with a uniform
// potential (every assignment maps to the same value).
func pairFactor(t *testing.T, g *core.FactorGraph, name string, a, b *core.RandVar, v float64) *core.Factor {
	t.Helper()
	table := map[core.AssignmentKey]float64{}
	for _, idx := range core.CartesianIndices([]int{2, 2}) {
		table[core.EncodeAssignment(idx)] = v
	}
	f, err := core.NewFactor(name, []*core.RandVar{a, b}, table)
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(f))

	return f
}

// unknownPairFactor adds an unknown (potential-less) factor over a and b.
func unknownPairFactor(t *testing.T, g *core.FactorGraph, name string, a, b *core.RandVar) *core.Factor {
	t.Helper()
	f, err := core.NewFactor(name, []*core.RandVar{a, b}, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(f))

	return f
}

// buildSquare returns a small connected graph: A-f1-B-f2-C-f3-A.
func buildSquare(t *testing.T) *core.FactorGraph {
	t.Helper()
	g := core.NewFactorGraph()
	a := boolRV(t, g, "A")
	b := boolRV(t, g, "B")
	c := boolRV(t, g, "C")
	pairFactor(t, g, "f1", a, b, 0.5)
	pairFactor(t, g, "f2", b, c, 0.5)
	pairFactor(t, g, "f3", c, a, 0.5)

	return g
}
