// SPDX-License-Identifier: MIT
// Package metrics_test contains shared fixtures for gfp/metrics tests.

package metrics_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gfp/core"
)

const eps = 1e-9

func mustGraph(t testing.TB, n int, edges []core.Edge) *core.Graph {
	t.Helper()

	g, err := core.New(n, edges)
	if err != nil {
		t.Fatalf("core.New(%d): %v", n, err)
	}

	return g
}

// completeEdges returns K_n on vertices off..off+n-1.
func completeEdges(off, n int) []core.Edge {
	var es []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			es = append(es, core.Edge{U: off + u, V: off + v})
		}
	}

	return es
}

func cycleEdges(n int) []core.Edge {
	es := make([]core.Edge, n)
	for i := range es {
		es[i] = core.Edge{U: i, V: (i + 1) % n}
	}

	return es
}

func pathEdges(n int) []core.Edge {
	es := make([]core.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		es = append(es, core.Edge{U: i, V: i + 1})
	}

	return es
}

// randomGraph draws an Erdős–Rényi G(n,p) graph from a fixed seed.
func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	var es []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				es = append(es, core.Edge{U: u, V: v})
			}
		}
	}

	return mustGraph(t, n, es)
}

// adjacency returns the dense multiplicity adjacency matrix; a loop adds 2.
func adjacency(g *core.Graph) *mat.SymDense {
	n := g.VertexCount()
	a := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		if e.U == e.V {
			a.SetSym(e.U, e.U, a.At(e.U, e.U)+2)
			continue
		}
		a.SetSym(e.U, e.V, a.At(e.U, e.V)+1)
	}

	return a
}

// countingObserver records ObserveNonConvergence calls.
type countingObserver struct {
	calls map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{calls: make(map[string]int)}
}

func (o *countingObserver) ObserveNonConvergence(algorithm string) {
	o.calls[algorithm]++
}
