// Package metrics extracts the structural measurements a graph fingerprint is
// built from.
//
// # What
//
// Per vertex (ExtractVertex), six scalars in a fixed order:
//
//	degree                     total degree, multiplicity counted
//	localClustering            closed neighbor pairs / C(k,2), 0 when k < 2
//	twoHopAvg                  mean degree of the neighbors
//	neighborhoodClusteringAvg  mean localClustering of the neighbors
//	pageRank                   damped random-walk stationary distribution
//	eigenvectorCentrality      principal eigenvector of the adjacency matrix
//
// Per graph (ExtractGlobal), six scalars in a fixed order:
//
//	edgeCount, vertexCount, maxDegree, globalClustering, componentCount, triangleCount
//
// # Passes
//
// Vertex extraction runs dependent passes in order: degree, then local
// clustering, then the neighbor averages (which read both), then the two power
// iterations. Inside a pass every vertex is independent, so the vertex range is
// split into contiguous chunks processed by an errgroup; each goroutine writes
// only its own slice range and no locks are taken. Power iterations are
// sequential across iterations and chunked across vertices within one.
//
// # Convergence
//
// PageRank stops when the L1 change between iterates drops below the
// tolerance (default 1e-6) and eigenvector centrality when the L∞ change does
// (default 1e-6); both stop at the iteration cap (default 1000). Reaching the
// cap is not an error: the last iterate is returned, a warning is logged and
// the Observer is told.
//
// # Multigraphs
//
// Degree, the neighbor averages, PageRank and eigenvector centrality use edge
// multiplicity (a loop counts twice). Clustering and triangle counts use the
// simple projection, which keeps every clustering value in [0,1].
//
// # Usage
//
//	ms, err := metrics.ExtractVertex(ctx, g,
//		metrics.WithWorkers(4),
//		metrics.WithLogger(logger),
//	)
//	gm, err := metrics.ExtractGlobal(ctx, g)
//	vec := gm.Vector()
package metrics
