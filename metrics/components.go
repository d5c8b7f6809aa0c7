// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// components.go — connected components by disjoint-set union.
//
// The DSU uses path halving in find and union by rank, so a full pass over the
// edge list costs O(E·α(V)). Loops never merge anything and parallel edges
// merge at most once, so the multigraph edge list is consumed as-is.

package metrics

import "github.com/katalvlaran/gfp/core"

// disjointSet is a union-find forest over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []uint8
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]uint8, n), sets: n}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of x, halving the path on the way up.
func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.sets--

	return true
}

// componentForest unions the endpoints of every edge of g. The edge list is
// streamed from the store, not copied.
func componentForest(g *core.Graph) *disjointSet {
	ds := newDisjointSet(g.VertexCount())
	for e := range g.AllEdges() {
		// Loops and repeated pairs are no-ops inside union.
		ds.union(e.U, e.V)
	}

	return ds
}

// ComponentLabels assigns every vertex the index of its connected component.
// Components are numbered 0..k-1 in order of their smallest vertex id.
func ComponentLabels(g *core.Graph) (labels []int, count int) {
	if g == nil {
		return nil, 0
	}
	ds := componentForest(g)

	// Visiting vertices in id order numbers roots by their smallest member.
	labels = make([]int, g.VertexCount())
	byRoot := make(map[int]int, ds.sets)
	for v := range labels {
		root := ds.find(v)
		id, ok := byRoot[root]
		if !ok {
			id = len(byRoot)
			byRoot[root] = id
		}
		labels[v] = id
	}

	return labels, len(byRoot)
}

// ComponentCount returns the number of connected components of g.
// Isolated vertices are singleton components; the empty graph has none.
func ComponentCount(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return componentForest(g).sets
}
