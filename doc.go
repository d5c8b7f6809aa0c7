// Package gfp compares undirected graphs by their structural fingerprints.
//
// A graph is summarized twice:
//
//   - a 48-element vertex fingerprint: six per-vertex metrics (degree, local
//     clustering, two-hop degree average, neighborhood clustering average,
//     PageRank, eigenvector centrality), each reduced to eight statistics
//     (median, mean, std, skewness, excess kurtosis, variance, max, min);
//   - a 6-element global feature vector: edge count, vertex count, max
//     degree, global clustering, component count and triangle count.
//
// Two graphs are compared by the Canberra distance between their fingerprints
// and, separately, between their global feature vectors.
//
// Pipeline:
//
//	core.Graph ──► metrics.ExtractVertex ──► fingerprint.Build ──► 48 floats
//	           └─► metrics.ExtractGlobal ──► GlobalMetrics.Vector ──► 6 floats
//	                                        compare.Distance(a, b) ──► float64
//
// Subpackages:
//
//	core/          immutable multigraph (CSR adjacency, gonum projection)
//	metrics/       per-vertex and graph-level measurements
//	fingerprint/   statistics and the 48-element layout
//	compare/       Canberra and auxiliary distances
//	builder/       deterministic topology constructors and Price networks
//	edgelist/      edge-list file loader
//	config/        YAML + environment configuration
//	observability/ Prometheus collector
//	cmd/gfp/       command-line front end
//
// Quick start:
//
//	p := gfp.New(gfp.WithLogger(logger))
//	cmp, err := p.CompareGraphs(ctx, g1, g2)
//	fmt.Println(cmp.VertexDistance, cmp.GlobalDistance)
package gfp
