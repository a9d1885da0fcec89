package glue

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parlift/core"
)

type rvDoc struct {
	Name     string   `yaml:"name"`
	Range    []string `yaml:"range"`
	Evidence *string  `yaml:"evidence,omitempty"`
}

type factorDoc struct {
	Name       string                         `yaml:"name"`
	Scope      []string                       `yaml:"scope"`
	Potentials map[core.AssignmentKey]float64 `yaml:"potentials,omitempty"`
}

type queryDoc struct {
	QueryVar string            `yaml:"query_var"`
	Evidence map[string]string `yaml:"evidence,omitempty"`
}

type modelDoc struct {
	RandVars []rvDoc     `yaml:"rand_vars"`
	Factors  []factorDoc `yaml:"factors"`
	Queries  []queryDoc  `yaml:"queries,omitempty"`
}

// Save writes g and queries as a single YAML document to w: a persisted
// (FactorGraph, queries) blob. Factor potentials are taken from Table(), so
// an unknown factor fused by the lifter is persisted with its imputed table
// rather than as still-unknown.
func Save(w io.Writer, g *core.FactorGraph, queries []Query) error {
	doc := modelDoc{}
	for _, rv := range g.RandVars() {
		doc.RandVars = append(doc.RandVars, rvDoc{Name: rv.Name, Range: rv.Range, Evidence: rv.Evidence})
	}
	for _, f := range g.Factors() {
		scope := make([]string, len(f.Scope))
		for i, rv := range f.Scope {
			scope[i] = rv.Name
		}
		doc.Factors = append(doc.Factors, factorDoc{Name: f.Name, Scope: scope, Potentials: f.Table()})
	}
	for _, q := range queries {
		doc.Queries = append(doc.Queries, queryDoc{QueryVar: q.QueryVar, Evidence: q.Evidence})
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(doc)
}

// Load reads a document written by Save and reconstructs the factor graph
// and query list.
func Load(r io.Reader) (*core.FactorGraph, []Query, error) {
	var doc modelDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("glue: decode: %w", err)
	}

	g := core.NewFactorGraph()
	for _, rvd := range doc.RandVars {
		var rv *core.RandVar
		var err error
		if rvd.Evidence != nil {
			rv, err = core.NewRandVarWithEvidence(rvd.Name, rvd.Range, *rvd.Evidence)
		} else {
			rv, err = core.NewRandVar(rvd.Name, rvd.Range)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("glue: rand var %s: %w", rvd.Name, err)
		}
		if err := g.AddRandVar(rv); err != nil {
			return nil, nil, fmt.Errorf("glue: rand var %s: %w", rvd.Name, err)
		}
	}

	for _, fd := range doc.Factors {
		scope := make([]*core.RandVar, len(fd.Scope))
		for i, name := range fd.Scope {
			rv := g.RandVar(name)
			if rv == nil {
				return nil, nil, fmt.Errorf("glue: factor %s: %w", fd.Name, core.ErrRandVarNotFound)
			}
			scope[i] = rv
		}
		f, err := core.NewFactor(fd.Name, scope, fd.Potentials)
		if err != nil {
			return nil, nil, fmt.Errorf("glue: factor %s: %w", fd.Name, err)
		}
		if err := g.AddFactor(f); err != nil {
			return nil, nil, fmt.Errorf("glue: factor %s: %w", fd.Name, err)
		}
	}

	queries := make([]Query, len(doc.Queries))
	for i, qd := range doc.Queries {
		queries[i] = Query{QueryVar: qd.QueryVar, Evidence: qd.Evidence}
	}

	return g, queries, nil
}
