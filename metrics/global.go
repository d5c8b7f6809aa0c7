// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// global.go — graph-level metrics.
//
// Definitions (k_v = simple degree, t_v = triangles through v):
//   • triples            T = Σ_v C(k_v, 2)
//   • globalClustering   C = Σ_v t_v / T   (= 3·triangles / T), 0 when T = 0
//   • triangleCount      C · T / 3, the clustering-derived estimate
//   • maxDegree          max_v Degree(v), computed directly
//
// The estimate uses the same triple count as the clustering denominator, so
// it reproduces CountTriangles up to rounding on every graph.

package metrics

import (
	"context"

	"github.com/katalvlaran/gfp/core"
)

// NumGlobalMetrics is the length of a global feature vector.
const NumGlobalMetrics = 6

// GlobalFeatureNames lists the global metrics in vector order.
var GlobalFeatureNames = [NumGlobalMetrics]string{
	"edgeCount",
	"vertexCount",
	"maxDegree",
	"globalClustering",
	"componentCount",
	"triangleCount",
}

// GlobalMetrics is the graph-level measurement record.
type GlobalMetrics struct {
	EdgeCount        int
	VertexCount      int
	MaxDegree        int
	GlobalClustering float64
	ComponentCount   int
	TriangleCount    float64
}

// Vector returns the metrics in GlobalFeatureNames order.
func (m GlobalMetrics) Vector() []float64 {
	return []float64{
		float64(m.EdgeCount),
		float64(m.VertexCount),
		float64(m.MaxDegree),
		m.GlobalClustering,
		float64(m.ComponentCount),
		m.TriangleCount,
	}
}

// ExtractGlobal computes GlobalMetrics for g. Only Workers is read from opts.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ctx.Err() on cancellation.
func ExtractGlobal(ctx context.Context, g *core.Graph, opts ...Option) (GlobalMetrics, error) {
	if g == nil {
		return GlobalMetrics{}, ErrNilGraph
	}
	o := resolve(opts)

	// Per-vertex triangles give both the clustering numerator and the estimate.
	tri, err := vertexTriangles(ctx, g, o.Workers)
	if err != nil {
		return GlobalMetrics{}, err
	}

	return globalFrom(g, tri), nil
}

// globalFrom assembles GlobalMetrics from per-vertex triangle counts.
func globalFrom(g *core.Graph, tri []int) GlobalMetrics {
	// Counts come straight from the store.
	m := GlobalMetrics{
		EdgeCount:      g.EdgeCount(),
		VertexCount:    g.VertexCount(),
		ComponentCount: ComponentCount(g),
	}

	// One sweep: max degree, closed pairs and connected triples.
	var closed, triples float64
	for v, t := range tri {
		m.MaxDegree = max(m.MaxDegree, g.Degree(v))
		closed += float64(t)
		triples += connectedTriples(g.SimpleDegree(v))
	}

	// Each triangle closes three triples, one at each corner.
	if triples > 0 {
		m.GlobalClustering = closed / triples
	}
	m.TriangleCount = m.GlobalClustering * triples / 3

	return m
}
