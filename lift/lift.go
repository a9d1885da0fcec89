package lift

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/parlift/core"
	"github.com/katalvlaran/parlift/refine"
)

// Lift runs the unknown-factor lifter on g and returns the final, refined
// Coloring. seed, if non-nil, replaces the initial coloring pass. Lift
// fails with ErrInvalidThreshold when opts.Threshold ∉ [0,1].
func Lift(g *core.FactorGraph, opts Options, seed *refine.Coloring) (*refine.Coloring, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	l := &lifter{
		g:     g,
		opts:  opts,
		cache: newPossiblyIdenticalCache(g),
	}
	l.rvs = g.RandVars()
	l.factors = g.Factors()
	l.unknown = g.UnknownFactors()

	if seed != nil {
		l.nodeColor = seed.RV
		l.factorColor = seed.Factor
	} else {
		l.seedColors()
	}

	l.candidateSearch()
	l.adopt()

	final := refine.Refine(g, &refine.Coloring{RV: l.nodeColor, Factor: l.factorColor})

	return final, nil
}

type lifter struct {
	g     *core.FactorGraph
	opts  Options
	cache *possiblyIdenticalCache

	rvs     []*core.RandVar
	factors []*core.Factor
	unknown []*core.Factor

	candidates  map[string][]*core.Factor
	nodeColor   map[string]int
	factorColor map[string]int
}

// seedColors initializes nodeColor the same way refine does, and
// factorColor by bucketing known factors on table equality while giving
// every unknown factor a unique color starting at |Fs|+1.
func (l *lifter) seedColors() {
	l.nodeColor = make(map[string]int, len(l.rvs))
	seenRV := make(map[string]int)
	next := 0
	for _, rv := range l.rvs {
		ev := "∅"
		if rv.Evidence != nil {
			ev = *rv.Evidence
		}
		key := strings.Join(rv.Range, ",") + "|" + ev
		c, ok := seenRV[key]
		if !ok {
			c = next
			seenRV[key] = c
			next++
		}
		l.nodeColor[rv.Name] = c
	}

	l.factorColor = make(map[string]int, len(l.factors))
	seenF := make(map[string]int)
	nextKnown := 0
	for _, f := range l.factors {
		if f.IsUnknown() {
			continue
		}
		key := tableKey(f)
		c, ok := seenF[key]
		if !ok {
			c = nextKnown
			seenF[key] = c
			nextKnown++
		}
		l.factorColor[f.Name] = c
	}

	nextUnknown := len(l.factors) + 1
	for _, f := range l.unknown {
		l.factorColor[f.Name] = nextUnknown
		nextUnknown++
	}
}

// candidateSearch scans, for each unknown F1, every other factor (in
// insertion order, for determinism) and tests possibly-identical. Unknown
// matches fuse immediately; known matches become candidates for adopt.
func (l *lifter) candidateSearch() {
	l.candidates = make(map[string][]*core.Factor, len(l.unknown))
	for _, f1 := range l.unknown {
		for _, f2 := range l.factors {
			if f2.Name == f1.Name {
				continue
			}
			if !l.cache.possiblyIdentical(f1, f2) {
				continue
			}
			if f2.IsUnknown() {
				l.factorColor[f2.Name] = l.factorColor[f1.Name]

				continue
			}
			l.candidates[f1.Name] = append(l.candidates[f1.Name], f2)
		}
	}
}

// adopt takes each unknown factor with candidates, computes the LPPI
// subset, and fuses+imputes when it clears the threshold.
func (l *lifter) adopt() {
	for _, f1 := range l.unknown {
		cands := l.candidates[f1.Name]
		if len(cands) == 0 {
			continue
		}
		subset := l.lppiSubset(cands)
		if float64(len(subset))/float64(len(cands)) < l.opts.Threshold {
			continue
		}
		for _, f2 := range subset {
			l.factorColor[f2.Name] = l.factorColor[f1.Name]
		}
		f1.Impute(subset[0].Table())
	}
}

// tableKey renders f's effective potential table as a deterministic string,
// suitable for bucketing factors by table equality (map iteration order is
// not itself stable, so keys are sorted before joining).
func tableKey(f *core.Factor) string {
	table := f.Table()
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(table[core.AssignmentKey(k)], 'g', -1, 64))
		sb.WriteByte(';')
	}

	return sb.String()
}
