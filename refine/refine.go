package refine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/parlift/core"
)

// Refine runs color refinement on g to its fixed point and returns the
// resulting Coloring. seed, if non-nil, replaces the initial coloring pass;
// the refinement loop afterwards runs identically either way. Refine is
// total: it never returns an error.
func Refine(g *core.FactorGraph, seed *Coloring) *Coloring {
	r := &refiner{
		g:       g,
		rvs:     g.RandVars(),
		factors: g.Factors(),
	}
	r.rvNames = namesOf(r.rvs)
	r.factorNames = factorNamesOf(r.factors)
	r.factorOffset = len(r.rvs)

	if seed != nil {
		r.nodeColor = canonicalize(r.rvNames, seed.RV, 0)
		r.factorColor = canonicalize(r.factorNames, seed.Factor, r.factorOffset)
	} else {
		r.nodeColor = canonicalize(r.rvNames, r.initNodeColors(), 0)
		r.factorColor = canonicalize(r.factorNames, r.initFactorColors(), r.factorOffset)
	}

	r.loop()

	return &Coloring{RV: r.nodeColor, Factor: r.factorColor}
}

// refiner holds the mutable state for one refinement run: an init/loop
// split keeps the fixed-point iteration itself free of setup bookkeeping.
type refiner struct {
	g       *core.FactorGraph
	rvs     []*core.RandVar
	factors []*core.Factor

	rvNames      []string
	factorNames  []string
	factorOffset int

	nodeColor   map[string]int
	factorColor map[string]int
}

// loop repeats the refinement pass until neither coloring changes.
func (r *refiner) loop() {
	for {
		newFactorColor := canonicalize(r.factorNames, r.factorSignatures(), r.factorOffset)
		newNodeColor := canonicalize(r.rvNames, r.rvSignatures(newFactorColor), 0)

		changed := !mapsEqual(r.factorColor, newFactorColor) || !mapsEqual(r.nodeColor, newNodeColor)
		r.factorColor = newFactorColor
		r.nodeColor = newNodeColor
		if !changed {
			return
		}
	}
}

// initNodeColors buckets RandVars by (range, evidence) tuple equality,
// assigning fresh integers in encounter order.
func (r *refiner) initNodeColors() map[string]int {
	bucket := make(map[string]int, len(r.rvs))
	seen := make(map[string]int)
	next := 0
	for _, rv := range r.rvs {
		key := rvInitKey(rv)
		c, ok := seen[key]
		if !ok {
			c = next
			seen[key] = c
			next++
		}
		bucket[rv.Name] = c
	}

	return bucket
}

func rvInitKey(rv *core.RandVar) string {
	ev := "∅"
	if rv.Evidence != nil {
		ev = *rv.Evidence
	}

	return strings.Join(rv.Range, ",") + "|" + ev
}

// initFactorColors buckets Factors by effective potential-table equality:
// identical tables, including the empty table shared by every unknown
// factor, get the same color at this stage. Package lift overrides this
// for unknown factors by passing a seed Coloring instead.
func (r *refiner) initFactorColors() map[string]int {
	bucket := make(map[string]int, len(r.factors))
	seen := make(map[string]int)
	next := 0
	for _, f := range r.factors {
		key := factorTableKey(f)
		c, ok := seen[key]
		if !ok {
			c = next
			seen[key] = c
			next++
		}
		bucket[f.Name] = c
	}

	return bucket
}

func factorTableKey(f *core.Factor) string {
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

// factorSignatures builds, for each factor, the ordered sequence of its
// scope's node colors followed by its own current color.
func (r *refiner) factorSignatures() map[string]int {
	sig := make(map[string]string, len(r.factors))
	for _, f := range r.factors {
		var sb strings.Builder
		for _, rv := range f.Scope {
			sb.WriteString(strconv.Itoa(r.nodeColor[rv.Name]))
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(r.factorColor[f.Name]))
		sig[f.Name] = sb.String()
	}

	return bucketize(r.factorNames, sig)
}

// rvSignatures builds, for each RandVar, the ascending-lexicographic
// sequence of (factorColor, position) over incident factors plus the
// sentinel (nodeColor, 0).
func (r *refiner) rvSignatures(factorColor map[string]int) map[string]int {
	sig := make(map[string]string, len(r.rvs))
	for _, rv := range r.rvs {
		type pair struct{ c, pos int }
		var pairs []pair
		for _, f := range r.g.Neighbors(rv.Name) {
			pos := scopePosition(f, rv.Name)
			pairs = append(pairs, pair{c: factorColor[f.Name], pos: pos})
		}
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].c != pairs[j].c {
				return pairs[i].c < pairs[j].c
			}

			return pairs[i].pos < pairs[j].pos
		})

		var sb strings.Builder
		for _, p := range pairs {
			sb.WriteString(strconv.Itoa(p.c))
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(p.pos))
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(r.nodeColor[rv.Name]))
		sb.WriteString(":0")
		sig[rv.Name] = sb.String()
	}

	return bucketize(r.rvNames, sig)
}

func scopePosition(f *core.Factor, rvName string) int {
	for i, rv := range f.Scope {
		if rv.Name == rvName {
			return i
		}
	}

	return -1
}

// bucketize assigns fresh integers (0,1,2,…) to each distinct signature
// value, in the order names first appears — the one place new colors are
// minted, keeping the scheme deterministic under insertion-order iteration.
func bucketize(names []string, sig map[string]string) map[string]int {
	out := make(map[string]int, len(names))
	seen := make(map[string]int, len(names))
	next := 0
	for _, name := range names {
		s := sig[name]
		c, ok := seen[s]
		if !ok {
			c = next
			seen[s] = c
			next++
		}
		out[name] = c
	}

	return out
}

// canonicalize renumbers color to start at offset, preserving partition
// membership but making fresh-relabeled colorings from two different passes
// directly comparable with mapsEqual — the partition, not any particular
// integer, is what refinement is allowed to depend on.
func canonicalize(names []string, color map[string]int, offset int) map[string]int {
	out := make(map[string]int, len(names))
	seen := make(map[int]int, len(names))
	next := offset
	for _, name := range names {
		c := color[name]
		nc, ok := seen[c]
		if !ok {
			nc = next
			seen[c] = nc
			next++
		}
		out[name] = nc
	}

	return out
}

func mapsEqual(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}

	return true
}

func namesOf(rvs []*core.RandVar) []string {
	out := make([]string, len(rvs))
	for i, rv := range rvs {
		out[i] = rv.Name
	}

	return out
}

func factorNamesOf(fs []*core.Factor) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}

	return out
}
