package build_test

import (
	"fmt"

	"github.com/katalvlaran/parlift/build"
	"github.com/katalvlaran/parlift/core"
	"github.com/katalvlaran/parlift/refine"
)

// Example runs refinement followed by construction on the trivial
// propositional graph and prints the resulting PRV and parfactor names.
// Factor colors are numbered after the RandVar colors, so with one RandVar
// the single factor group has color 1.
func Example() {
	g := core.NewFactorGraph()
	a, _ := core.NewRandVar("A", []string{"true", "false"})
	_ = g.AddRandVar(a)
	table := map[core.AssignmentKey]float64{
		core.EncodeAssignment([]int{0}): 0.5,
		core.EncodeAssignment([]int{1}): 0.5,
	}
	f, _ := core.NewFactor("f", []*core.RandVar{a}, table)
	_ = g.AddFactor(f)

	c := refine.Refine(g, nil)
	pfg, rvToInd, err := build.Build(g, c.RV, c.Factor, build.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(pfg.PRVs()[0].Name, pfg.Parfactors()[0].Name, rvToInd["A"])
	// Output: R0 pf1 R0
}
