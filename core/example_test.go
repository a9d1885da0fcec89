package core_test

import (
	"fmt"

	"github.com/katalvlaran/parlift/core"
)

// Example builds the trivial propositional case: a single Boolean RandVar
// with a uniform unary factor.
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

	fmt.Println(g.HasFactor("f"), g.Degree("A"), len(g.UnknownFactors()))
	// Output: true 1 0
}
