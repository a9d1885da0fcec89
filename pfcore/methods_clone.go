package pfcore

// Clone returns a deep copy of g. LVs shared across multiple PRVs remain
// shared in the clone: each distinct LV is cloned once and every PRV
// referencing it points at that single clone.
func (g *ParfactorGraph) Clone() *ParfactorGraph {
	g.muPRV.RLock()
	defer g.muPRV.RUnlock()
	g.muPF.RLock()
	defer g.muPF.RUnlock()

	lvByName := make(map[string]*LogicalVar)
	for _, name := range g.prvOrder {
		for _, lv := range g.prvs[name].LVs {
			if _, ok := lvByName[lv.Name]; !ok {
				lvByName[lv.Name] = lv.clone()
			}
		}
	}

	cp := NewParfactorGraph()
	prvByName := make(map[string]*PRV, len(g.prvOrder))
	for _, name := range g.prvOrder {
		p := g.prvs[name].clone(lvByName)
		prvByName[name] = p
		cp.prvs[name] = p
		cp.prvOrder = append(cp.prvOrder, name)
	}

	for _, id := range g.pfOrder {
		pf := g.parfactors[id].clone(prvByName)
		cp.parfactors[id] = pf
		cp.pfOrder = append(cp.pfOrder, id)
		for _, p := range pf.Scope {
			cp.incident[p.Name] = append(cp.incident[p.Name], id)
		}
	}
	cp.nextID = g.nextID

	return cp
}

// Equal reports whether g and other have the same PRVs (by Equal) and the
// same parfactors (by name, scope-name sequence and potential table),
// compared position by position in insertion order. ParfactorID values are
// not compared, but two graphs whose PRVs or parfactors were added in a
// different order compare unequal.
func (g *ParfactorGraph) Equal(other *ParfactorGraph) bool {
	g.muPRV.RLock()
	other.muPRV.RLock()
	sameNames := equalStrings(g.prvOrder, other.prvOrder)
	if !sameNames {
		g.muPRV.RUnlock()
		other.muPRV.RUnlock()

		return false
	}
	for _, name := range g.prvOrder {
		if !g.prvs[name].Equal(other.prvs[name]) {
			g.muPRV.RUnlock()
			other.muPRV.RUnlock()

			return false
		}
	}
	g.muPRV.RUnlock()
	other.muPRV.RUnlock()

	g.muPF.RLock()
	defer g.muPF.RUnlock()
	other.muPF.RLock()
	defer other.muPF.RUnlock()

	if len(g.pfOrder) != len(other.pfOrder) {
		return false
	}
	for i, id := range g.pfOrder {
		a := g.parfactors[id]
		b := other.parfactors[other.pfOrder[i]]
		if a.Name != b.Name || !parfactorEqual(a, b) {
			return false
		}
	}

	return true
}

func parfactorEqual(a, b *Parfactor) bool {
	if len(a.Scope) != len(b.Scope) {
		return false
	}
	for i, p := range a.Scope {
		if p.Name != b.Scope[i].Name {
			return false
		}
	}
	if len(a.Potentials) != len(b.Potentials) {
		return false
	}
	for k, v := range a.Potentials {
		bv, ok := b.Potentials[k]
		if !ok || bv != v {
			return false
		}
	}

	return true
}
