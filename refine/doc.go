// Package refine implements color refinement (color passing): a
// Weisfeiler–Leman-style fixed-point procedure that assigns equivalence-class
// colors to a factor graph's random variables and factors from iterated
// neighborhood signatures.
//
// # Color refinement
//
// Two colorings are maintained: nodeColor (RandVar → int) and factorColor
// (Factor → int), drawn from disjoint integer spaces. Refinement repeats
// until a full pass leaves both partitions unchanged:
//
//  1. Build each factor's signature: the ordered sequence of its scope's
//     node colors, in native scope order, followed by its own current color.
//     Position matters — this is not symmetric in argument position.
//  2. Reassign factor colors so that equal signatures get equal colors.
//  3. Build each RandVar's signature: the ascending-lexicographic sequence of
//     (factorColor, position-within-factor) over its incident factors, with
//     a trailing sentinel (nodeColor, 0).
//  4. Reassign RandVar colors so that equal signatures get equal colors.
//  5. Repeat until neither partition changes.
//
// Termination is guaranteed within |RandVars|+|Factors| passes, since that
// bounds the number of distinct colors. The procedure is a total function:
// it never fails.
//
// Iteration always follows each FactorGraph's insertion order, so the
// *partition* produced is deterministic across runs even though the
// specific integer labels are an implementation artifact — compare
// partitions with SamePartition, not raw color values, across independently
// produced Colorings.
package refine
