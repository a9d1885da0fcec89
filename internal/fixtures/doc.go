// Package fixtures builds canonical core.FactorGraph topologies for tests
// (package build's tests use Star): stars and chains over Boolean random
// variables, with deterministic names and uniform potential tables.
package fixtures
