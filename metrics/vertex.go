// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// vertex.go — per-vertex metric extraction.
//
// Pass order (each pass completes before the next starts):
//   1. degree                         – O(V)
//   2. local clustering               – O(Σ_{(u,v)} (k_u + k_v))
//   3. twoHopAvg, neighborhood avg    – O(V + E), reads passes 1–2
//   4. PageRank                       – O(iter·(V + E))
//   5. eigenvector centrality         – O(iter·(V + E))

package metrics

import (
	"context"

	"github.com/katalvlaran/gfp/core"
)

// NumVertexMetrics is the number of per-vertex metrics.
const NumVertexMetrics = 6

// VertexMetricNames lists the per-vertex metrics in fingerprint order.
var VertexMetricNames = [NumVertexMetrics]string{
	"degree",
	"localClustering",
	"twoHopAvg",
	"neighborhoodClusteringAvg",
	"pageRank",
	"eigenvectorCentrality",
}

// VertexMetrics is the measurement record of one vertex.
type VertexMetrics struct {
	Degree                    int
	LocalClustering           float64
	TwoHopAvg                 float64
	NeighborhoodClusteringAvg float64
	PageRank                  float64
	EigenvectorCentrality     float64
}

// ExtractVertex computes VertexMetrics for every vertex of g. The result is
// indexed by vertex id and has length g.VertexCount().
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ctx.Err() on cancellation.
func ExtractVertex(ctx context.Context, g *core.Graph, opts ...Option) ([]VertexMetrics, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := resolve(opts)

	// Triangles feed clustering; count them once up front.
	tri, err := vertexTriangles(ctx, g, o.Workers)
	if err != nil {
		return nil, err
	}

	return extractVertex(ctx, g, o, tri)
}

// Extract computes both the per-vertex records and the global metrics of g
// from one shared triangle pass. It is equivalent to ExtractVertex followed
// by ExtractGlobal at roughly half the clustering cost.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ctx.Err() on cancellation.
func Extract(ctx context.Context, g *core.Graph, opts ...Option) ([]VertexMetrics, GlobalMetrics, error) {
	if g == nil {
		return nil, GlobalMetrics{}, ErrNilGraph
	}
	o := resolve(opts)

	// Shared input of local and global clustering.
	tri, err := vertexTriangles(ctx, g, o.Workers)
	if err != nil {
		return nil, GlobalMetrics{}, err
	}

	ms, err := extractVertex(ctx, g, o, tri)
	if err != nil {
		return nil, GlobalMetrics{}, err
	}

	return ms, globalFrom(g, tri), nil
}

// extractVertex runs passes 1 and 3–5 given the per-vertex triangle counts.
func extractVertex(ctx context.Context, g *core.Graph, o Options, tri []int) ([]VertexMetrics, error) {
	n := g.VertexCount()

	// Pass 1: degree with multiplicity.
	deg := make([]int, n)
	if err := forEachChunk(ctx, n, o.Workers, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			deg[v] = g.Degree(v)
		}
	}); err != nil {
		return nil, err
	}

	// Pass 2: local clustering from the precomputed triangles.
	lc := clusteringFrom(g, tri)

	// Pass 3: neighbor averages; reads deg and lc only.
	out := make([]VertexMetrics, n)
	if err := forEachChunk(ctx, n, o.Workers, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			// Sum over neighbors, parallel edges and loops included.
			var degSum, lcSum float64
			for w := range g.Neighbors(v) {
				degSum += float64(deg[w])
				lcSum += lc[w]
			}
			// Degree-0 vertices divide by 1; both sums are 0 there.
			div := float64(max(deg[v], 1))
			out[v] = VertexMetrics{
				Degree:                    deg[v],
				LocalClustering:           lc[v],
				TwoHopAvg:                 degSum / div,
				NeighborhoodClusteringAvg: lcSum / div,
			}
		}
	}); err != nil {
		return nil, err
	}

	// Passes 4–5: centralities; non-convergence is reported, not fatal.
	pr, _, err := pageRank(ctx, g, o)
	if err != nil {
		return nil, err
	}
	ev, _, err := eigenvectorCentrality(ctx, g, o)
	if err != nil {
		return nil, err
	}

	// Merge the centrality vectors into the records.
	for v := range out {
		out[v].PageRank = pr[v]
		out[v].EigenvectorCentrality = ev[v]
	}

	return out, nil
}

// LocalClustering returns the local clustering coefficient of every vertex.
func LocalClustering(ctx context.Context, g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return localClustering(ctx, g, resolve(opts).Workers)
}

func localClustering(ctx context.Context, g *core.Graph, workers int) ([]float64, error) {
	tri, err := vertexTriangles(ctx, g, workers)
	if err != nil {
		return nil, err
	}

	return clusteringFrom(g, tri), nil
}

// clusteringFrom divides closed pairs by C(k,2); vertices with k < 2 stay 0.
func clusteringFrom(g *core.Graph, tri []int) []float64 {
	lc := make([]float64, len(tri))
	for v, t := range tri {
		// k is the simple degree, so lc stays within [0,1] for multigraphs.
		if pairs := connectedTriples(g.SimpleDegree(v)); pairs > 0 {
			lc[v] = float64(t) / pairs
		}
	}

	return lc
}

// Columns transposes per-vertex records into one sequence per metric, in
// VertexMetricNames order.
func Columns(ms []VertexMetrics) [NumVertexMetrics][]float64 {
	var cols [NumVertexMetrics][]float64
	for i := range cols {
		cols[i] = make([]float64, len(ms))
	}
	for v, m := range ms {
		cols[0][v] = float64(m.Degree)
		cols[1][v] = m.LocalClustering
		cols[2][v] = m.TwoHopAvg
		cols[3][v] = m.NeighborhoodClusteringAvg
		cols[4][v] = m.PageRank
		cols[5][v] = m.EigenvectorCentrality
	}

	return cols
}
