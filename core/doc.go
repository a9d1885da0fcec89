// Package core defines the bipartite factor-graph data model shared by the
// rest of this module: random variables (RandVar), factors (Factor), and the
// FactorGraph that connects them.
//
// A FactorGraph is bipartite: every edge joins one RandVar to one Factor, and
// a Factor's scope (its ordered list of RandVar references) is exactly its
// edge set in native order — position matters, the scope is not resorted.
// RandVar names and Factor names each live in their own namespace: a RandVar
// and a Factor may share a name without collision.
//
// Thread-safety: a FactorGraph guards its two catalogs with separate
// sync.RWMutex locks (muRV for random variables, muF for factors), so
// callers may read concurrently with low contention. The construction
// pipeline built on top of this package is itself single-threaded; the
// locks exist so a FactorGraph can be safely inspected by diagnostics or
// tests while a pipeline stage still holds it.
//
// Core methods:
//
//	AddRandVar / RemoveRandVar / HasRandVar / RandVars   — O(1) / O(V) / O(1) / O(V)
//	AddFactor / RemoveFactor / HasFactor / Factors        — O(k) / O(F+k·d) / O(1) / O(F)
//	Neighbors(rv)                                         — O(deg) factors incident to rv
//	UnknownFactors                                        — O(F), factors with an empty table
//	Reachable / IsConnected                               — O(V+F) BFS over the bipartite graph
//	Clone / Equal / Validate                              — O(V+F)
//
// Sub-packages build on top of this one:
//
//	refine/ — color refinement
//	lift/   — unknown-factor lifting
//	pfcore/ — parameterized random variables, parfactors, parfactor graphs
//	build/  — parfactor-graph construction
//	emit/   — textual model emission
//	glue/   — load/save, query rewriting
package core
