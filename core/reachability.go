package core

// reachWalker carries the mutable state for one bipartite BFS: a tiny
// state object with an init/loop split keeps the traversal itself free of
// bookkeeping noise.
type reachWalker struct {
	g       *FactorGraph
	seenRV  map[string]bool
	seenF   map[string]bool
	queueRV []string
	queueF  []string
}

// Reachable returns the set of RandVar names reachable from startRV by
// alternating RandVar↔Factor hops: ordinary BFS over the bipartite graph.
// Complexity: O(V+F).
func (g *FactorGraph) Reachable(startRV string) map[string]bool {
	w := &reachWalker{
		g:      g,
		seenRV: map[string]bool{startRV: true},
		seenF:  map[string]bool{},
	}
	w.queueRV = append(w.queueRV, startRV)
	w.run()

	return w.seenRV
}

// IsConnected reports whether every RandVar and Factor in g is reachable
// from some arbitrary starting RandVar. An empty graph is trivially
// connected. Complexity: O(V+F).
func (g *FactorGraph) IsConnected() bool {
	rvs := g.RandVars()
	if len(rvs) == 0 {
		return true
	}
	w := &reachWalker{
		g:      g,
		seenRV: map[string]bool{rvs[0].Name: true},
		seenF:  map[string]bool{},
	}
	w.queueRV = append(w.queueRV, rvs[0].Name)
	w.run()

	if len(w.seenRV) != len(rvs) {
		return false
	}

	return len(w.seenF) == len(g.Factors())
}

// run drains both frontiers until neither yields a new node.
func (w *reachWalker) run() {
	for len(w.queueRV) > 0 || len(w.queueF) > 0 {
		for len(w.queueRV) > 0 {
			id := w.queueRV[0]
			w.queueRV = w.queueRV[1:]
			for _, f := range w.g.Neighbors(id) {
				if !w.seenF[f.Name] {
					w.seenF[f.Name] = true
					w.queueF = append(w.queueF, f.Name)
				}
			}
		}
		for len(w.queueF) > 0 {
			name := w.queueF[0]
			w.queueF = w.queueF[1:]
			f := w.g.Factor(name)
			for _, rv := range f.Scope {
				if !w.seenRV[rv.Name] {
					w.seenRV[rv.Name] = true
					w.queueRV = append(w.queueRV, rv.Name)
				}
			}
		}
	}
}
