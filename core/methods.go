package core

// AddRandVar inserts rv into the graph. Complexity: O(1).
func (g *FactorGraph) AddRandVar(rv *RandVar) error {
	if rv == nil || rv.Name == "" {
		return ErrEmptyName
	}
	g.muRV.Lock()
	defer g.muRV.Unlock()

	if _, ok := g.rvs[rv.Name]; ok {
		return ErrDuplicateName
	}
	g.rvs[rv.Name] = rv
	g.rvOrder = append(g.rvOrder, rv.Name)

	return nil
}

// HasRandVar reports whether name is a known RandVar. Complexity: O(1).
func (g *FactorGraph) HasRandVar(name string) bool {
	g.muRV.RLock()
	defer g.muRV.RUnlock()
	_, ok := g.rvs[name]

	return ok
}

// RandVar returns the named RandVar, or nil if absent. Complexity: O(1).
func (g *FactorGraph) RandVar(name string) *RandVar {
	g.muRV.RLock()
	defer g.muRV.RUnlock()

	return g.rvs[name]
}

// RandVars returns all RandVars in insertion order. Complexity: O(V).
func (g *FactorGraph) RandVars() []*RandVar {
	g.muRV.RLock()
	defer g.muRV.RUnlock()
	out := make([]*RandVar, 0, len(g.rvOrder))
	for _, name := range g.rvOrder {
		out = append(out, g.rvs[name])
	}

	return out
}

// RemoveRandVar deletes the named RandVar. It does not touch factors whose
// scope still references it; callers are expected to remove those factors
// first (a loaded factor graph is never edited in place during the
// pipeline, and no package of this module calls RemoveRandVar).
// Complexity: O(V).
func (g *FactorGraph) RemoveRandVar(name string) error {
	g.muRV.Lock()
	defer g.muRV.Unlock()

	if _, ok := g.rvs[name]; !ok {
		return ErrRandVarNotFound
	}
	delete(g.rvs, name)
	for i, n := range g.rvOrder {
		if n == name {
			g.rvOrder = append(g.rvOrder[:i], g.rvOrder[i+1:]...)
			break
		}
	}

	return nil
}

// AddFactor inserts f into the graph and links it to every RandVar in its
// scope (all of which must already be present). Complexity: O(k) where
// k = len(f.Scope).
func (g *FactorGraph) AddFactor(f *Factor) error {
	if f == nil || f.Name == "" {
		return ErrEmptyName
	}
	if len(f.Scope) == 0 {
		return ErrEmptyScope
	}

	g.muRV.RLock()
	for _, rv := range f.Scope {
		if _, ok := g.rvs[rv.Name]; !ok {
			g.muRV.RUnlock()

			return ErrRandVarNotFound
		}
	}
	g.muRV.RUnlock()

	g.muF.Lock()
	defer g.muF.Unlock()
	if _, ok := g.factors[f.Name]; ok {
		return ErrDuplicateName
	}
	g.factors[f.Name] = f
	g.factorOrder = append(g.factorOrder, f.Name)
	for _, rv := range f.Scope {
		g.incident[rv.Name] = append(g.incident[rv.Name], f.Name)
	}

	return nil
}

// HasFactor reports whether name is a known Factor. Complexity: O(1).
func (g *FactorGraph) HasFactor(name string) bool {
	g.muF.RLock()
	defer g.muF.RUnlock()
	_, ok := g.factors[name]

	return ok
}

// Factor returns the named Factor, or nil if absent. Complexity: O(1).
func (g *FactorGraph) Factor(name string) *Factor {
	g.muF.RLock()
	defer g.muF.RUnlock()

	return g.factors[name]
}

// Factors returns all Factors in insertion order. Complexity: O(F).
func (g *FactorGraph) Factors() []*Factor {
	g.muF.RLock()
	defer g.muF.RUnlock()
	out := make([]*Factor, 0, len(g.factorOrder))
	for _, name := range g.factorOrder {
		out = append(out, g.factors[name])
	}

	return out
}

// RemoveFactor deletes the named Factor and its incidence links.
// Complexity: O(F+k·d), where k = len(f.Scope) and d is the largest degree
// among the scope's RandVars.
func (g *FactorGraph) RemoveFactor(name string) error {
	g.muF.Lock()
	defer g.muF.Unlock()

	f, ok := g.factors[name]
	if !ok {
		return ErrFactorNotFound
	}
	delete(g.factors, name)
	for i, n := range g.factorOrder {
		if n == name {
			g.factorOrder = append(g.factorOrder[:i], g.factorOrder[i+1:]...)
			break
		}
	}
	for _, rv := range f.Scope {
		lst := g.incident[rv.Name]
		for i, n := range lst {
			if n == name {
				g.incident[rv.Name] = append(lst[:i], lst[i+1:]...)
				break
			}
		}
	}

	return nil
}

// Neighbors returns the Factors incident to the named RandVar, in the order
// they were added to the graph. Complexity: O(deg(rv)).
func (g *FactorGraph) Neighbors(rvName string) []*Factor {
	g.muF.RLock()
	defer g.muF.RUnlock()
	names := g.incident[rvName]
	out := make([]*Factor, 0, len(names))
	for _, n := range names {
		out = append(out, g.factors[n])
	}

	return out
}

// Degree returns the number of factors incident to the named RandVar.
// Complexity: O(1).
func (g *FactorGraph) Degree(rvName string) int {
	g.muF.RLock()
	defer g.muF.RUnlock()

	return len(g.incident[rvName])
}

// UnknownFactors returns the sub-list, in insertion order, of Factors whose
// potential table is empty. Complexity: O(F).
func (g *FactorGraph) UnknownFactors() []*Factor {
	g.muF.RLock()
	defer g.muF.RUnlock()
	out := make([]*Factor, 0)
	for _, name := range g.factorOrder {
		if f := g.factors[name]; f.IsUnknown() {
			out = append(out, f)
		}
	}

	return out
}

// Validate checks FactorGraph-level invariants: every Factor's Scope
// references live RandVars and names are unique within their kind. Returns
// ErrInvariantViolation on failure.
func (g *FactorGraph) Validate() error {
	g.muRV.RLock()
	defer g.muRV.RUnlock()
	g.muF.RLock()
	defer g.muF.RUnlock()

	seenRV := make(map[string]bool, len(g.rvOrder))
	for _, name := range g.rvOrder {
		if seenRV[name] {
			return ErrInvariantViolation
		}
		seenRV[name] = true
	}

	seenF := make(map[string]bool, len(g.factorOrder))
	for _, name := range g.factorOrder {
		if seenF[name] {
			return ErrInvariantViolation
		}
		seenF[name] = true

		f := g.factors[name]
		if len(f.Scope) == 0 {
			return ErrInvariantViolation
		}
		for _, rv := range f.Scope {
			if g.rvs[rv.Name] != rv {
				return ErrInvariantViolation
			}
		}
	}

	return nil
}
