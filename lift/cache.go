package lift

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/parlift/core"
)

// pairKey canonicalizes an unordered pair of factor names for cache lookup.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}

	return a + "\x00" + b
}

// possiblyIdenticalCache memoizes the possibly-identical relation, keyed by
// unordered factor-name pairs, since the relation is symmetric and each pair
// is tested at most once.
type possiblyIdenticalCache struct {
	g     *core.FactorGraph
	cache map[string]bool
}

func newPossiblyIdenticalCache(g *core.FactorGraph) *possiblyIdenticalCache {
	return &possiblyIdenticalCache{g: g, cache: make(map[string]bool)}
}

// possiblyIdentical reports whether f1 and f2 are possibly-identical: at
// least one is unknown (or their tables are equal), and their neighborhoods
// are symmetric.
func (c *possiblyIdenticalCache) possiblyIdentical(f1, f2 *core.Factor) bool {
	if f1.Name == f2.Name {
		return false
	}
	key := pairKey(f1.Name, f2.Name)
	if v, ok := c.cache[key]; ok {
		return v
	}

	compatibleTables := f1.IsUnknown() || f2.IsUnknown() || f1.TableEqual(f2)
	result := compatibleTables && c.symmetricNeighborhood(f1, f2)
	c.cache[key] = result

	return result
}

// symmetricNeighborhood reports whether f1 and f2 have the same scope size
// and their scopes' (range, evidence, degree) tuple multisets are equal —
// equivalent to the existence of a bijection preserving those three
// attributes pairwise, since the bijection constraint has no cross-position
// term.
func (c *possiblyIdenticalCache) symmetricNeighborhood(f1, f2 *core.Factor) bool {
	if len(f1.Scope) != len(f2.Scope) {
		return false
	}
	t1 := c.scopeTuples(f1)
	t2 := c.scopeTuples(f2)
	sort.Strings(t1)
	sort.Strings(t2)
	for i := range t1 {
		if t1[i] != t2[i] {
			return false
		}
	}

	return true
}

func (c *possiblyIdenticalCache) scopeTuples(f *core.Factor) []string {
	out := make([]string, len(f.Scope))
	for i, rv := range f.Scope {
		ev := "∅"
		if rv.Evidence != nil {
			ev = *rv.Evidence
		}
		deg := c.g.Degree(rv.Name)
		out[i] = strings.Join(rv.Range, ",") + "|" + ev + "|" + strconv.Itoa(deg)
	}

	return out
}
