package refine

// Coloring is a pair of color assignments over a FactorGraph: RV maps
// RandVar names to colors, Factor maps Factor names to colors. The two
// co-domains never overlap.
type Coloring struct {
	RV     map[string]int
	Factor map[string]int
}

// Clone returns a deep copy of c, safe to use as a seed for a further
// refinement pass without aliasing the original maps.
func (c *Coloring) Clone() *Coloring {
	if c == nil {
		return nil
	}
	cp := &Coloring{RV: make(map[string]int, len(c.RV)), Factor: make(map[string]int, len(c.Factor))}
	for k, v := range c.RV {
		cp.RV[k] = v
	}
	for k, v := range c.Factor {
		cp.Factor[k] = v
	}

	return cp
}

// SamePartition reports whether a and b induce the same equivalence
// partition over rvNames and factorNames — i.e. two names share a color in
// a iff they share a color in b — regardless of the concrete integer labels
// used. Isomorphism invariance compares partitions, not labels.
func SamePartition(a, b *Coloring, rvNames, factorNames []string) bool {
	return samePartitionOn(a.RV, b.RV, rvNames) && samePartitionOn(a.Factor, b.Factor, factorNames)
}

func samePartitionOn(a, b map[string]int, names []string) bool {
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if (a[names[i]] == a[names[j]]) != (b[names[i]] == b[names[j]]) {
				return false
			}
		}
	}

	return true
}
