package fixtures

import (
	"fmt"

	"github.com/katalvlaran/parlift/core"
)

// IDFn generates a vertex identifier from its zero-based index. It must be a
// pure, deterministic function: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0->"0", 12->"12".
func DefaultIDFn(idx int) string {
	return fmt.Sprintf("%d", idx)
}

// PrefixIDFn returns prefix followed by the decimal index, e.g. "A0", "A1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return fmt.Sprintf("%s%d", prefix, idx)
	}
}

// boolRange is the two-valued domain most fixtures use.
var boolRange = []string{"true", "false"}

// uniformPairTable builds a two-variable potential table with value v at
// every point of the Cartesian product of two Boolean ranges.
func uniformPairTable(v float64) map[core.AssignmentKey]float64 {
	table := make(map[core.AssignmentKey]float64, 4)
	for _, idx := range core.CartesianIndices([]int{2, 2}) {
		table[core.EncodeAssignment(idx)] = v
	}

	return table
}

// Star builds a hub-and-spoke factor graph: one Boolean hub vertex "Center"
// plus n-1 Boolean leaves named by leafIDFn(1..n-1), each joined to the hub by
// an identical known binary factor holding v at every assignment. n must be
// at least 2. This is the canonical topology color refinement is expected to
// collapse into two RV colors (hub, leaves) and one factor color.
func Star(n int, leafIDFn IDFn, v float64) (*core.FactorGraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("fixtures: Star requires n>=2, got %d", n)
	}
	if leafIDFn == nil {
		leafIDFn = DefaultIDFn
	}

	g := core.NewFactorGraph()
	hub, err := core.NewRandVar("Center", boolRange)
	if err != nil {
		return nil, err
	}
	if err := g.AddRandVar(hub); err != nil {
		return nil, err
	}

	for i := 1; i < n; i++ {
		leafName := leafIDFn(i)
		leaf, err := core.NewRandVar(leafName, boolRange)
		if err != nil {
			return nil, err
		}
		if err := g.AddRandVar(leaf); err != nil {
			return nil, err
		}

		f, err := core.NewFactor(fmt.Sprintf("f_Center_%s", leafName), []*core.RandVar{hub, leaf}, uniformPairTable(v))
		if err != nil {
			return nil, err
		}
		if err := g.AddFactor(f); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Chain builds a simple path factor graph: n Boolean vertices named by
// idFn(0..n-1), joined pairwise (i-1,i) by identical known binary factors
// holding v at every assignment. n must be at least 2.
func Chain(n int, idFn IDFn, v float64) (*core.FactorGraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("fixtures: Chain requires n>=2, got %d", n)
	}
	if idFn == nil {
		idFn = DefaultIDFn
	}

	g := core.NewFactorGraph()
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = idFn(i)
		rv, err := core.NewRandVar(names[i], boolRange)
		if err != nil {
			return nil, err
		}
		if err := g.AddRandVar(rv); err != nil {
			return nil, err
		}
	}

	for i := 1; i < n; i++ {
		u := g.RandVar(names[i-1])
		w := g.RandVar(names[i])
		f, err := core.NewFactor(fmt.Sprintf("f_%s_%s", names[i-1], names[i]), []*core.RandVar{u, w}, uniformPairTable(v))
		if err != nil {
			return nil, err
		}
		if err := g.AddFactor(f); err != nil {
			return nil, err
		}
	}

	return g, nil
}
