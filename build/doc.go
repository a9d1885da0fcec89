// Package build translates a color-refined factor graph into a parfactor
// graph: it inverts the color partitions into groups, synthesizes
// placeholder PRVs and parfactors, detects logical variables shared between
// groups, collapses commutative arguments into counting random variables,
// and produces the ground-RV-to-representative mapping the query rewriter
// needs.
//
// # Stages
//
//  1. Group extraction — invert nodeColor/factorColor into rvGroups and
//     factorGroups, in first-encounter order over the factor graph's own
//     insertion order (so output is deterministic across runs).
//  2. Placeholder PRVs and parfactors — one PRV per RV group (with a fresh
//     LV when the group has more than one member), one parfactor per
//     factor group, scopes wired from a representative factor of each group.
//  3. Shared logical variables — pairs of equal-size RV groups that are
//     consistently co-incident on every shared factor adopt the same LV
//     instance. The first consistent match found (scanning groups in the
//     first-encounter order of Stage 1) wins; later candidate matches for an
//     already-assigned group are ignored.
//  4. Counting random variables — when a factor's scope collapsed into
//     fewer distinct PRVs than its raw arity, the collapsed arguments
//     become a CRV via an externally supplied commutative-argument cache
//     and histogram cache; Build fails with ErrMissingCommutativityAnnotation
//     if the cache lacks an entry for a factor that needs one.
//  5. rvToIndividual — one string name per ground RV, consumed by the
//     query rewriter (package glue) to translate original variable names
//     into their lifted representation.
//
// Build is total given well-formed caches; it is the caller's
// responsibility to keep FG alive for the duration of the call, since
// every stage reads FG's neighborhoods directly.
package build
