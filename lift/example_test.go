package lift_test

import (
	"fmt"

	"github.com/katalvlaran/parlift/core"
	"github.com/katalvlaran/parlift/lift"
)

// Example lifts a single unknown factor against a known one sharing its
// symmetric shape, then prints whether it was imputed.
func Example() {
	g := core.NewFactorGraph()
	a0, _ := core.NewRandVar("A0", []string{"true", "false"})
	b0, _ := core.NewRandVar("B0", []string{"true", "false"})
	_ = g.AddRandVar(a0)
	_ = g.AddRandVar(b0)
	f1, _ := core.NewFactor("f1", []*core.RandVar{a0, b0}, nil)
	_ = g.AddFactor(f1)

	a1, _ := core.NewRandVar("A1", []string{"true", "false"})
	b1, _ := core.NewRandVar("B1", []string{"true", "false"})
	_ = g.AddRandVar(a1)
	_ = g.AddRandVar(b1)
	table := map[core.AssignmentKey]float64{}
	for _, idx := range core.CartesianIndices([]int{2, 2}) {
		table[core.EncodeAssignment(idx)] = 0.5
	}
	f2, _ := core.NewFactor("f2", []*core.RandVar{a1, b1}, table)
	_ = g.AddFactor(f2)

	_, err := lift.Lift(g, lift.Options{Threshold: 1.0}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(!f1.IsUnknown())
	// Output: true
}
