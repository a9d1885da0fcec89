package core

// Clone returns a deep copy of g. RandVar instances are duplicated once and
// shared across every Factor whose scope references them — a Factor's
// cloned Scope holds pointers into the clone's own RandVar catalog, never
// into g's, so cross-factor RandVar sharing survives the copy. Complexity:
// O(V+F).
func (g *FactorGraph) Clone() *FactorGraph {
	g.muRV.RLock()
	defer g.muRV.RUnlock()
	g.muF.RLock()
	defer g.muF.RUnlock()

	cp := NewFactorGraph()
	rvByName := make(map[string]*RandVar, len(g.rvOrder))
	for _, name := range g.rvOrder {
		nrv := g.rvs[name].clone()
		rvByName[name] = nrv
		cp.rvs[name] = nrv
		cp.rvOrder = append(cp.rvOrder, name)
	}
	for _, name := range g.factorOrder {
		nf := g.factors[name].clone(rvByName)
		cp.factors[name] = nf
		cp.factorOrder = append(cp.factorOrder, name)
		for _, rv := range nf.Scope {
			cp.incident[rv.Name] = append(cp.incident[rv.Name], name)
		}
	}

	return cp
}

// Equal reports deep equality: same RandVar names/ranges/evidence, same
// Factor names/scopes/tables. Order of insertion does not affect equality;
// scope order within a factor does.
func (g *FactorGraph) Equal(other *FactorGraph) bool {
	if other == nil {
		return false
	}
	g.muRV.RLock()
	defer g.muRV.RUnlock()
	other.muRV.RLock()
	defer other.muRV.RUnlock()
	g.muF.RLock()
	defer g.muF.RUnlock()
	other.muF.RLock()
	defer other.muF.RUnlock()

	if len(g.rvs) != len(other.rvs) || len(g.factors) != len(other.factors) {
		return false
	}
	for name, rv := range g.rvs {
		orv, ok := other.rvs[name]
		if !ok || !rv.Compatible(orv) {
			return false
		}
	}
	for name, f := range g.factors {
		of, ok := other.factors[name]
		if !ok || len(f.Scope) != len(of.Scope) {
			return false
		}
		for i, rv := range f.Scope {
			if of.Scope[i].Name != rv.Name {
				return false
			}
		}
		if !f.TableEqual(of) {
			return false
		}
	}

	return true
}
