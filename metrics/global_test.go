// SPDX-License-Identifier: MIT
// Package metrics_test verifies graph-level metrics and the triangle
// estimator against direct enumeration.

package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/gfp/core"
	"github.com/katalvlaran/gfp/metrics"
)

func extractGlobal(t *testing.T, g *core.Graph) metrics.GlobalMetrics {
	t.Helper()

	gm, err := metrics.ExtractGlobal(context.Background(), g)
	require.NoError(t, err)

	return gm
}

func TestExtractGlobal_Square(t *testing.T) {
	gm := extractGlobal(t, mustGraph(t, 4, cycleEdges(4)))
	require.Equal(t, metrics.GlobalMetrics{
		EdgeCount:      4,
		VertexCount:    4,
		MaxDegree:      2,
		ComponentCount: 1,
	}, gm)
	require.Equal(t, []float64{4, 4, 2, 0, 1, 0}, gm.Vector())
}

func TestExtractGlobal_Complete(t *testing.T) {
	for _, n := range []int{3, 4, 7} {
		gm := extractGlobal(t, mustGraph(t, n, completeEdges(0, n)))
		require.Equal(t, n*(n-1)/2, gm.EdgeCount)
		require.Equal(t, n-1, gm.MaxDegree)
		require.Equal(t, 1, gm.ComponentCount)
		require.InDelta(t, 1.0, gm.GlobalClustering, eps)
		require.InDelta(t, float64(n*(n-1)*(n-2)/6), gm.TriangleCount, eps, "K_%d", n)
	}
}

// TestExtractGlobal_DisjointCliques: k copies of K_m give k components.
func TestExtractGlobal_DisjointCliques(t *testing.T) {
	const k, m = 4, 5
	var es []core.Edge
	for i := 0; i < k; i++ {
		es = append(es, completeEdges(i*m, m)...)
	}
	g := mustGraph(t, k*m, es)

	gm := extractGlobal(t, g)
	require.Equal(t, k, gm.ComponentCount)
	require.InDelta(t, 1.0, gm.GlobalClustering, eps)
	require.InDelta(t, float64(k*10), gm.TriangleCount, eps)

	labels, count := metrics.ComponentLabels(g)
	require.Equal(t, k, count)
	for v, l := range labels {
		require.Equal(t, v/m, l)
	}
}

// TestExtractGlobal_TriangleFree: disjoint paths and even cycles close no
// triples.
func TestExtractGlobal_TriangleFree(t *testing.T) {
	es := pathEdges(6)
	for i := 0; i < 6; i++ {
		es = append(es, core.Edge{U: 6 + i, V: 6 + (i+1)%6})
	}
	gm := extractGlobal(t, mustGraph(t, 12, es))
	require.Equal(t, 2, gm.ComponentCount)
	require.Zero(t, gm.GlobalClustering)
	require.Zero(t, gm.TriangleCount)
	require.Zero(t, metrics.CountTriangles(mustGraph(t, 12, es)))
}

func TestExtractGlobal_Degenerate(t *testing.T) {
	gm := extractGlobal(t, mustGraph(t, 0, nil))
	require.Equal(t, metrics.GlobalMetrics{}, gm)

	gm = extractGlobal(t, mustGraph(t, 3, nil))
	require.Equal(t, 3, gm.ComponentCount, "isolated vertices are singleton components")
	require.Zero(t, gm.MaxDegree)

	// A loop raises the maximum degree by 2 without adding triangles.
	gm = extractGlobal(t, mustGraph(t, 2, []core.Edge{{0, 1}, {1, 1}}))
	require.Equal(t, 3, gm.MaxDegree)
	require.Equal(t, 1, gm.ComponentCount)
	require.Zero(t, gm.TriangleCount)
}

// TestTriangleEstimator checks the clustering-derived count matches direct
// enumeration.
func TestTriangleEstimator(t *testing.T) {
	shapes := map[string]*core.Graph{
		"empty":      mustGraph(t, 0, nil),
		"triangle":   mustGraph(t, 3, cycleEdges(3)),
		"multigraph": mustGraph(t, 4, []core.Edge{{0, 1}, {1, 2}, {2, 0}, {0, 1}, {2, 3}, {3, 3}}),
		"random":     randomGraph(t, 120, 0.08, 42),
		"dense":      randomGraph(t, 40, 0.5, 5),
	}
	for name, g := range shapes {
		t.Run(name, func(t *testing.T) {
			gm := extractGlobal(t, g)
			require.InDelta(t, float64(metrics.CountTriangles(g)), gm.TriangleCount, 1e-6)
		})
	}
}

// TestComponents_MatchGonum compares union-find against topo.ConnectedComponents.
func TestComponents_MatchGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, 150, 0.008, seed)
		want := len(topo.ConnectedComponents(g.Undirected()))
		require.Equal(t, want, metrics.ComponentCount(g), "seed %d", seed)
	}
}

func TestExtractGlobal_Errors(t *testing.T) {
	_, err := metrics.ExtractGlobal(context.Background(), nil)
	require.ErrorIs(t, err, metrics.ErrNilGraph)
	require.Zero(t, metrics.ComponentCount(nil))
	require.Zero(t, metrics.CountTriangles(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = metrics.ExtractGlobal(ctx, mustGraph(t, 3, cycleEdges(3)))
	require.ErrorIs(t, err, context.Canceled)
}
