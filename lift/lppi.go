package lift

import "github.com/katalvlaran/parlift/core"

// lppiSubset computes the largest pairwise-possibly-identical subset of
// cands — a clique in the possibly-identical relation restricted to cands.
// With Options.ExactLPPI it runs a bounded Bron–Kerbosch maximum-clique
// search; otherwise it uses a cheaper approximation: for each candidate,
// take the union of itself with every other candidate it is
// possibly-identical to, and return the largest such neighborhood. That
// proxy is not guaranteed to be a clique, so ExactLPPI=true exists for
// callers that need the true maximum.
func (l *lifter) lppiSubset(cands []*core.Factor) []*core.Factor {
	n := len(cands)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if l.cache.possiblyIdentical(cands[i], cands[j]) {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	if l.opts.ExactLPPI {
		return exactMaxClique(cands, adj)
	}

	return proxyLargestNeighborhood(cands, adj)
}

// proxyLargestNeighborhood approximates the largest clique by per-element
// neighborhood union, largest wins. Ties favor the earliest candidate in
// insertion order (first index found).
func proxyLargestNeighborhood(cands []*core.Factor, adj [][]bool) []*core.Factor {
	n := len(cands)
	bestIdx := 0
	bestSize := -1
	for i := 0; i < n; i++ {
		size := 1
		for j := 0; j < n; j++ {
			if j != i && adj[i][j] {
				size++
			}
		}
		if size > bestSize {
			bestSize = size
			bestIdx = i
		}
	}

	out := []*core.Factor{cands[bestIdx]}
	for j := 0; j < n; j++ {
		if j != bestIdx && adj[bestIdx][j] {
			out = append(out, cands[j])
		}
	}

	return out
}

// exactMaxClique runs Bron–Kerbosch without pivoting over the (typically
// small, single-factor-neighborhood-sized) candidate graph and returns the
// largest clique found, breaking ties toward the clique discovered first
// under a deterministic insertion-order traversal.
func exactMaxClique(cands []*core.Factor, adj [][]bool) []*core.Factor {
	n := len(cands)
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	best := []int{}
	var bk func(r, p, x []int)
	bk = func(r, p, x []int) {
		if len(p) == 0 && len(x) == 0 {
			if len(r) > len(best) {
				best = append([]int(nil), r...)
			}

			return
		}
		for i := 0; i < len(p); i++ {
			v := p[i]
			var np, nx []int
			for _, u := range p {
				if adj[v][u] {
					np = append(np, u)
				}
			}
			for _, u := range x {
				if adj[v][u] {
					nx = append(nx, u)
				}
			}
			bk(append(r, v), np, nx)
			p = append(p[:i:i], p[i+1:]...)
			x = append(x, v)
			i--
		}
	}
	bk(nil, all, nil)

	out := make([]*core.Factor, len(best))
	for i, idx := range best {
		out[i] = cands[idx]
	}
	if len(out) == 0 {
		return []*core.Factor{cands[0]}
	}

	return out
}
