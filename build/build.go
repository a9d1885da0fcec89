package build

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/parlift/core"
	"github.com/katalvlaran/parlift/pfcore"
)

// Build runs the groups→PFG construction over g using the color partitions
// nodeColor/factorColor, and returns the resulting
// ParfactorGraph together with rvToIndividual: a map from every ground RV
// name to its representative string (the propositional PRV name, or the
// PRV name applied to one LV domain element).
func Build(g *core.FactorGraph, nodeColor, factorColor map[string]int, opts Options) (*pfcore.ParfactorGraph, map[string]string, error) {
	b := &builder{
		g:           g,
		nodeColor:   nodeColor,
		factorColor: factorColor,
		opts:        opts,
		pfg:         pfcore.NewParfactorGraph(),
	}

	b.extractGroups()
	if err := b.placeholders(); err != nil {
		return nil, nil, err
	}
	b.sharedLogvars()
	if err := b.crvsAndPotentials(); err != nil {
		return nil, nil, err
	}
	rvToInd := b.rvToIndividual()

	return b.pfg, rvToInd, nil
}

type builder struct {
	g           *core.FactorGraph
	nodeColor   map[string]int
	factorColor map[string]int
	opts        Options
	pfg         *pfcore.ParfactorGraph

	rvGroupOrder     []int
	rvGroups         map[int][]*core.RandVar
	factorGroupOrder []int
	factorGroups     map[int][]*core.Factor

	prvByColor  map[int]*pfcore.PRV
	pfIDByColor map[int]pfcore.ParfactorID
}

// extractGroups implements Stage 1: invert nodeColor/factorColor into
// rvGroups/factorGroups, ordering groups by first encounter while scanning
// RVs/Factors in the factor graph's own insertion order.
func (b *builder) extractGroups() {
	b.rvGroups = make(map[int][]*core.RandVar)
	b.factorGroups = make(map[int][]*core.Factor)

	for _, rv := range b.g.RandVars() {
		c := b.nodeColor[rv.Name]
		if _, ok := b.rvGroups[c]; !ok {
			b.rvGroupOrder = append(b.rvGroupOrder, c)
		}
		b.rvGroups[c] = append(b.rvGroups[c], rv)
	}

	for _, f := range b.g.Factors() {
		c := b.factorColor[f.Name]
		if _, ok := b.factorGroups[c]; !ok {
			b.factorGroupOrder = append(b.factorGroupOrder, c)
		}
		b.factorGroups[c] = append(b.factorGroups[c], f)
	}
}

// placeholders implements Stage 2: one PRV per RV group (with a fresh LV
// when |group| > 1), one parfactor per factor group, scope wired from a
// representative factor's scope, deduplicating repeated PRV occurrences.
func (b *builder) placeholders() error {
	b.prvByColor = make(map[int]*pfcore.PRV, len(b.rvGroupOrder))
	for _, c := range b.rvGroupOrder {
		group := b.rvGroups[c]
		rng := group[0].Range
		var lvs []*pfcore.LogicalVar
		if len(group) > 1 {
			domain := make([]string, len(group))
			for i := range group {
				domain[i] = fmt.Sprintf("l%d_%d", c, i+1)
			}
			lv, err := pfcore.NewLogicalVar(fmt.Sprintf("L%d", c), domain)
			if err != nil {
				return err
			}
			lvs = []*pfcore.LogicalVar{lv}
		}
		p, err := pfcore.NewPRV(fmt.Sprintf("R%d", c), rng, lvs)
		if err != nil {
			return err
		}
		if err := b.pfg.AddPRV(p); err != nil {
			return err
		}
		b.prvByColor[c] = p
	}

	b.pfIDByColor = make(map[int]pfcore.ParfactorID, len(b.factorGroupOrder))
	for _, c := range b.factorGroupOrder {
		rep := b.factorGroups[c][0]
		scope := b.dedupScope(rep)
		pf, err := pfcore.NewParfactor(fmt.Sprintf("pf%d", c), scope, nil)
		if err != nil {
			return err
		}
		id, err := b.pfg.AddParfactor(pf)
		if err != nil {
			return err
		}
		b.pfIDByColor[c] = id
	}

	return nil
}

// dedupScope returns the PRVs corresponding to f's scope's node colors, in
// f's native order, appending each distinct PRV once.
func (b *builder) dedupScope(f *core.Factor) []*pfcore.PRV {
	seen := make(map[string]bool, len(f.Scope))
	out := make([]*pfcore.PRV, 0, len(f.Scope))
	for _, rv := range f.Scope {
		p := b.prvByColor[b.nodeColor[rv.Name]]
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}

	return out
}

// sharedLogvars implements Stage 3: scan every ordered pair of equal-size
// RV groups; if they are consistently co-incident on every shared factor,
// the later group in traversal order adopts the earlier group's LV
// instance, unless it already adopted one from an earlier match.
func (b *builder) sharedLogvars() {
	assigned := make(map[int]bool)
	for _, c1 := range b.rvGroupOrder {
		for _, c2 := range b.rvGroupOrder {
			if c1 == c2 || assigned[c2] {
				continue
			}
			g1, g2 := b.rvGroups[c1], b.rvGroups[c2]
			if len(g1) != len(g2) {
				continue
			}
			if !b.hasIdenticalLogvar(g1, g2) {
				continue
			}
			p1, p2 := b.prvByColor[c1], b.prvByColor[c2]
			if len(p1.LVs) == 0 {
				continue
			}
			p2.LVs = p1.LVs
			assigned[c2] = true
		}
	}
}

// hasIdenticalLogvar reports whether g1 and g2 admit a single consistent
// bijection across every factor they share: each shared factor must contain
// exactly one member of g1 and one of g2, and that pairing must agree with
// every other shared factor's pairing in both directions, so no RV on
// either side corresponds to two different partners on the other.
func (b *builder) hasIdenticalLogvar(g1, g2 []*core.RandVar) bool {
	names1 := rvNameSet(g1)
	names2 := rvNameSet(g2)
	commonFactors := make(map[string]*core.Factor)
	for _, rv := range g1 {
		for _, f := range b.g.Neighbors(rv.Name) {
			commonFactors[f.Name] = f
		}
	}
	forward := make(map[string]string)
	backward := make(map[string]string)
	found := false
	for _, f := range commonFactors {
		var in1, in2 *core.RandVar
		count1, count2 := 0, 0
		for _, rv := range f.Scope {
			if names1[rv.Name] {
				in1 = rv
				count1++
			}
			if names2[rv.Name] {
				in2 = rv
				count2++
			}
		}
		if count1 == 0 || count2 == 0 {
			continue
		}
		if count1 != 1 || count2 != 1 {
			return false
		}
		found = true
		if existing, ok := forward[in1.Name]; ok {
			if existing != in2.Name {
				return false
			}
		} else {
			forward[in1.Name] = in2.Name
		}
		if existing, ok := backward[in2.Name]; ok {
			if existing != in1.Name {
				return false
			}
		} else {
			backward[in2.Name] = in1.Name
		}
	}

	return found
}

func rvNameSet(rvs []*core.RandVar) map[string]bool {
	out := make(map[string]bool, len(rvs))
	for _, rv := range rvs {
		out[rv.Name] = true
	}

	return out
}

// crvsAndPotentials implements Stage 4: for each factor group, compare the
// representative factor's raw arity to its parfactor's collapsed scope
// size; copy potentials verbatim when they match, otherwise mark a CRV and
// re-encode via the commutative-args/histogram caches.
func (b *builder) crvsAndPotentials() error {
	for _, c := range b.factorGroupOrder {
		rep := b.factorGroups[c][0]
		id := b.pfIDByColor[c]
		pf, err := b.pfg.Parfactor(id)
		if err != nil {
			return err
		}

		kF := len(rep.Scope)
		kPF := len(pf.Scope)
		if kF == kPF {
			pf.Potentials = b.verbatimPotentials(rep)

			continue
		}

		if err := b.encodeCRV(rep, pf, id); err != nil {
			return err
		}
	}

	return nil
}

// verbatimPotentials converts rep's index-keyed table into the string-keyed
// form pfcore.Parfactor expects, using rep's own scope order (valid when
// kF == kPF: no argument collapsed, so positions correspond one-to-one).
func (b *builder) verbatimPotentials(rep *core.Factor) map[string]float64 {
	out := make(map[string]float64, len(rep.Table()))
	for key, v := range rep.Table() {
		idx := core.DecodeAssignment(key)
		vals := make([]string, len(idx))
		for i, rv := range rep.Scope {
			vals[i] = rv.Range[idx[i]]
		}
		out[strings.Join(vals, ",")] = v
	}

	return out
}

// encodeCRV implements Stage 4's CRV branch.
func (b *builder) encodeCRV(rep *core.Factor, pf *pfcore.Parfactor, id pfcore.ParfactorID) error {
	cArgs, ok := b.opts.CommutativeArgs[rep.Name]
	if !ok || len(cArgs) == 0 {
		return fmt.Errorf("%w: %s", ErrMissingCommutativityAnnotation, rep.Name)
	}
	setKey := CommutativeSetKey(cArgs)
	rows, ok := b.opts.Hist[rep.Name][setKey]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingCommutativityAnnotation, rep.Name)
	}

	P := b.prvByColor[b.nodeColor[cArgs[0].Name]]
	if len(P.LVs) != 1 {
		return fmt.Errorf("%w: counting PRV %s must have exactly one logical variable", ErrMissingCommutativityAnnotation, P.Name)
	}
	if err := b.pfg.MarkCounting(P, id); err != nil {
		return err
	}

	reordered := make([]*pfcore.PRV, 0, len(pf.Scope))
	reordered = append(reordered, P)
	for _, p := range pf.Scope {
		if p.Name != P.Name {
			reordered = append(reordered, p)
		}
	}
	pf.Scope = reordered

	table := make(map[string]float64, len(rows))
	for _, row := range rows {
		hist := make([]string, len(row.Histogram))
		for i, n := range row.Histogram {
			hist[i] = strconv.Itoa(n)
		}
		key := strings.Join(hist, ";")
		if len(row.Rest) > 0 {
			key += ", " + strings.Join(row.Rest, ",")
		}
		table[key] = row.Value
	}
	pf.Potentials = table

	return nil
}

// rvToIndividual implements Stage 5: for every RV in FG insertion order,
// map it to its PRV name (propositional case) or "PRVName(individual)"
// using a per-PRV counter over the LV's domain.
func (b *builder) rvToIndividual() map[string]string {
	counters := make(map[string]int)
	out := make(map[string]string, len(b.g.RandVars()))
	for _, rv := range b.g.RandVars() {
		p := b.prvByColor[b.nodeColor[rv.Name]]
		if p.IsPropositional() {
			out[rv.Name] = p.Name

			continue
		}
		i := counters[p.Name]
		individual := p.LVs[0].Domain[i]
		counters[p.Name] = i + 1
		out[rv.Name] = fmt.Sprintf("%s(%s)", p.Name, individual)
	}

	return out
}
