// SPDX-License-Identifier: MIT
// Package: gfp/core
//
// gonum.go — projection onto gonum's graph model.
//
// gonum's simple graphs forbid self-loops and parallel edges, so the
// projection is the simple view: node ids equal vertex ids, one edge per
// adjacent pair. Isolated vertices are kept as nodes.

package core

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Undirected returns a fresh gonum undirected graph holding the simple
// projection of g. The result is independent of g and may be mutated.
//
// Complexity: O(V + E).
func (g *Graph) Undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.n; v++ {
		ug.AddNode(simple.Node(v))
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.SimpleNeighbors(u) {
			if v < u {
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return ug
}

// Directed returns the simple projection as a gonum directed graph with both
// orientations of every edge, the form gonum's network algorithms expect.
//
// Complexity: O(V + E).
func (g *Graph) Directed() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for v := 0; v < g.n; v++ {
		dg.AddNode(simple.Node(v))
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.SimpleNeighbors(u) {
			dg.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return dg
}
