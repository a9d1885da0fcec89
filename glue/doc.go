// Package glue provides the external interfaces around the core pipeline:
// loading a persisted factor graph and its queries, a rough similarity
// score between two factor graphs (used by an instance generator to pick
// fixtures, but exposed here since it only needs package core), and
// rewriting a query expressed over original RV names into the statement
// list the external inference engine expects.
//
// The on-disk format is this module's own choice: a YAML document holding
// the factor graph and its query list, read and written with
// gopkg.in/yaml.v3 — already an indirect dependency of the test toolchain,
// promoted here to direct use.
package glue
