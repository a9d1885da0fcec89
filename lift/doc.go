// Package lift implements unknown-factor lifting: an extension of color
// refinement (package refine) that provisionally matches unknown factors to
// known ones through symmetric-neighborhood candidate search, picks the
// largest mutually-compatible subset, and adopts potentials from it before
// handing the graph back to refine for a final pass.
//
// # Algorithm
//
//  1. Seed colors as refine does, except every unknown factor gets a
//     unique color of its own, distinct from every known-factor color.
//  2. For each unknown factor F1, scan every other factor F2: if F2 is also
//     unknown and possibly-identical to F1, fuse it immediately (same
//     color). Otherwise F2 becomes a candidate for F1.
//  3. Within candidates[F1], compute the largest pairwise-possibly-identical
//     (LPPI) subset — a clique in the possibly-identical relation. By
//     default this uses a per-element neighborhood proxy (Options.ExactLPPI =
//     false); set it to true for an exact bounded Bron–Kerbosch search
//     instead.
//  4. If |S| / |candidates[F1]| ≥ Options.Threshold, fuse every member of S
//     into F1's color and impute F1's potential table from an arbitrary
//     member of S. Otherwise F1 stays isolated.
//  5. Re-run refine.Refine with the augmented seed coloring; this final
//     pass may re-split erroneous fusions.
//
// Two factors are possibly-identical when at least one is unknown (or their
// tables are equal) and their neighborhoods are symmetric: same scope size,
// and a bijection between scopes preserving (range, evidence, incident
// factor count) per pair. Since that per-pair constraint has no relational
// term between distinct scope positions, such a bijection exists iff the
// multisets of (range, evidence, degree) tuples over both scopes are equal
// — which is how symmetricNeighborhood is implemented, rather than an
// explicit bipartite matching search.
package lift
