// Package parlift lifts propositional factor graphs into parfactor graphs
// for statistical relational inference.
//
// What is parlift?
//
//	A thread-safe library that takes a ground (propositional) factor graph,
//	finds the symmetries in it, and emits a compact lifted representation:
//
//	  - Core primitives: RandVars, Factors, FactorGraphs, built-in locking
//	  - Color refinement: detect which RVs/Factors are structurally
//	    interchangeable
//	  - Unknown-factor lifting: impute potential tables for factors left
//	    unspecified, from known factors with compatible symmetry
//	  - Groups-to-parfactor-graph construction: PRVs, parfactors, counting
//	    random variables
//	  - Textual emission and YAML persistence of the lifted model
//
// Under the hood, everything is organized under subpackages:
//
//	core/      — RandVar, Factor, FactorGraph and thread-safe primitives
//	refine/    — color refinement (Weisfeiler-Leman-style fixed point)
//	lift/      — unknown-factor lifting via possibly-identical relations
//	pfcore/    — LogicalVar, PRV, Parfactor, ParfactorGraph
//	build/     — groups -> parfactor graph construction
//	emit/      — textual model emission
//	glue/      — persistence, similarity scoring, query rewriting
package parlift
