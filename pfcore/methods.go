package pfcore

import "fmt"

// AddPRV registers p. Returns ErrDuplicateName if p.Name is already taken.
func (g *ParfactorGraph) AddPRV(p *PRV) error {
	g.muPRV.Lock()
	defer g.muPRV.Unlock()

	if _, ok := g.prvs[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
	}
	g.prvs[p.Name] = p
	g.prvOrder = append(g.prvOrder, p.Name)

	return nil
}

// HasPRV reports whether name is a registered PRV.
func (g *ParfactorGraph) HasPRV(name string) bool {
	g.muPRV.RLock()
	defer g.muPRV.RUnlock()
	_, ok := g.prvs[name]

	return ok
}

// PRV returns the PRV named name, or ErrPRVNotFound.
func (g *ParfactorGraph) PRV(name string) (*PRV, error) {
	g.muPRV.RLock()
	defer g.muPRV.RUnlock()
	p, ok := g.prvs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPRVNotFound, name)
	}

	return p, nil
}

// PRVs returns every PRV in insertion order.
func (g *ParfactorGraph) PRVs() []*PRV {
	g.muPRV.RLock()
	defer g.muPRV.RUnlock()
	out := make([]*PRV, len(g.prvOrder))
	for i, name := range g.prvOrder {
		out[i] = g.prvs[name]
	}

	return out
}

// LogicalVars returns every distinct LV referenced by any PRV, in the
// order each is first encountered while scanning PRVs in insertion order
// (used by package emit for type/guaranteed declarations).
func (g *ParfactorGraph) LogicalVars() []*LogicalVar {
	g.muPRV.RLock()
	defer g.muPRV.RUnlock()
	seen := make(map[string]bool)
	var out []*LogicalVar
	for _, name := range g.prvOrder {
		for _, lv := range g.prvs[name].LVs {
			if seen[lv.Name] {
				continue
			}
			seen[lv.Name] = true
			out = append(out, lv)
		}
	}

	return out
}

// AddParfactor registers pf and returns its freshly assigned ParfactorID.
// Every PRV in pf.Scope must already be registered via AddPRV.
func (g *ParfactorGraph) AddParfactor(pf *Parfactor) (ParfactorID, error) {
	g.muPRV.RLock()
	for _, p := range pf.Scope {
		if _, ok := g.prvs[p.Name]; !ok {
			g.muPRV.RUnlock()

			return 0, fmt.Errorf("%w: %s", ErrPRVNotFound, p.Name)
		}
	}
	g.muPRV.RUnlock()

	g.muPF.Lock()
	defer g.muPF.Unlock()
	id := g.nextID
	g.nextID++
	g.parfactors[id] = pf
	g.pfOrder = append(g.pfOrder, id)
	for _, p := range pf.Scope {
		g.incident[p.Name] = append(g.incident[p.Name], id)
	}

	return id, nil
}

// Parfactor returns the parfactor registered under id, or ErrParfactorNotFound.
func (g *ParfactorGraph) Parfactor(id ParfactorID) (*Parfactor, error) {
	g.muPF.RLock()
	defer g.muPF.RUnlock()
	pf, ok := g.parfactors[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrParfactorNotFound, id)
	}

	return pf, nil
}

// Parfactors returns every parfactor in insertion order.
func (g *ParfactorGraph) Parfactors() []*Parfactor {
	g.muPF.RLock()
	defer g.muPF.RUnlock()
	out := make([]*Parfactor, len(g.pfOrder))
	for i, id := range g.pfOrder {
		out[i] = g.parfactors[id]
	}

	return out
}

// Neighbors returns the ids of parfactors incident to the PRV named name,
// in insertion order.
func (g *ParfactorGraph) Neighbors(prvName string) []ParfactorID {
	g.muPF.RLock()
	defer g.muPF.RUnlock()

	return append([]ParfactorID(nil), g.incident[prvName]...)
}

// MarkCounting registers pf as id's counting parfactor for p: sets
// p.CountedOver to p's sole LV and appends id to p.CountedIn. Returns
// ErrMultipleLVs unless p has exactly one LV.
func (g *ParfactorGraph) MarkCounting(p *PRV, id ParfactorID) error {
	if len(p.LVs) != 1 {
		return fmt.Errorf("%w: %s has %d", ErrMultipleLVs, p.Name, len(p.LVs))
	}
	p.CountedOver = p.LVs[0]
	p.CountedIn = append(p.CountedIn, id)

	return nil
}

// Validate checks PFG-level invariants: every parfactor's scope references
// only registered PRVs, and name catalogs contain no duplicates (guaranteed
// by AddPRV's rejection, re-checked defensively here).
func (g *ParfactorGraph) Validate() error {
	g.muPRV.RLock()
	defer g.muPRV.RUnlock()
	g.muPF.RLock()
	defer g.muPF.RUnlock()

	seen := make(map[string]bool, len(g.prvOrder))
	for _, name := range g.prvOrder {
		if seen[name] {
			return fmt.Errorf("%w: duplicate PRV name %s", ErrInvariantViolation, name)
		}
		seen[name] = true
	}

	for _, id := range g.pfOrder {
		pf := g.parfactors[id]
		for _, p := range pf.Scope {
			if _, ok := g.prvs[p.Name]; !ok {
				return fmt.Errorf("%w: parfactor %s scopes unregistered PRV %s", ErrInvariantViolation, pf.Name, p.Name)
			}
		}
	}

	return nil
}
