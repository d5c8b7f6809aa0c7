// Package core_test provides benchmarks for core.Graph construction and scans.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gfp/core"
)

// benchEdges returns m pseudo-random edges over n vertices (fixed seed).
func benchEdges(n, m int) []core.Edge {
	rng := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, m)
	for i := range edges {
		edges[i] = core.Edge{U: rng.Intn(n), V: rng.Intn(n)}
	}

	return edges
}

// BenchmarkNew measures CSR construction for a sparse graph.
func BenchmarkNew(b *testing.B) {
	edges := benchEdges(10_000, 50_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := core.New(10_000, edges); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbors measures a full adjacency scan through the iterator.
func BenchmarkNeighbors(b *testing.B) {
	g, err := core.New(10_000, benchEdges(10_000, 50_000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := 0; v < g.VertexCount(); v++ {
			for w := range g.Neighbors(v) {
				sum += w
			}
		}
		_ = sum
	}
}
