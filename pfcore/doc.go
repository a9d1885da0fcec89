// Package pfcore is the parameterized counterpart of package core: logical
// variables (LVs), parameterized random variables (PRVs), parfactors, and
// the parfactor graph (PFG) that ties them together.
//
// # Shape
//
// A PFG is bipartite over PRVs and Parfactors, mirroring core.FactorGraph's
// RV/Factor bipartition, with the same insertion-order iteration guarantee.
// The one structural difference is ownership direction: a PRV may be a
// counting random variable (CRV) inside a parfactor, which means the
// parfactor must be reachable from the PRV (PRV.CountedIn) as well as the
// reverse (Parfactor.Scope). Storing that back-reference as a pointer would
// create a reference cycle a naive Clone/Equal would loop over, so
// CountedIn holds ParfactorID handles — integers indexing into the PFG's
// own parfactor table — instead. PRV.Equal deliberately ignores CountedIn
// for the same reason.
//
// Logical variables are owned by whichever PRVs reference them; two PRVs in
// the same shared-logical-variable group point at the identical
// *LogicalVar, not a copy, so mutating one's domain would be visible from
// the other — in practice neither is ever mutated after construction.
package pfcore
