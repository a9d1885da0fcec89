// Package emit serializes a parfactor graph into the textual model syntax
// consumed by an external inference engine: type declarations,
// guaranteed-individuals declarations, random function declarations, and
// factor/parfactor statements.
//
// Range translation currently supports booleans only; any other range
// fails with ErrUnsupportedRange rather than guessing a mapping. Potential
// lists are emitted in strictly descending lexicographic order of
// assignment key so that two emitters given the same parfactor always agree
// byte-for-byte. Parfactors whose
// scope contains no LVs at all use the bare `factor` keyword; everything
// else uses `parfactor` with its LVs declared up front and a stable
// `X1, X2, …` placeholder naming for scope positions, with CRV arguments
// rendered via the counting bracket syntax `#(LV X)[PRV(X)]`, CRV first.
package emit
