// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// eigenvector.go — eigenvector centrality by shifted power iteration.
//
// Iterates x ← (A + I)x / ‖(A + I)x‖₂ where A is the multiplicity adjacency
// matrix (a loop adds 2 to A[v][v]). A + I has the same principal eigenvector
// as A, and its spectrum is shifted away from -λ, so bipartite graphs converge
// instead of oscillating between two vectors.
//
// Starting from the uniform unit vector keeps every iterate non-negative.
// Stop when ‖x_next − x‖_∞ < EigenTolerance or after EigenMaxIterations.

package metrics

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gfp/core"
)

// EigenvectorCentrality returns the principal eigenvector of the adjacency
// matrix normalized to unit L2 norm, indexed by vertex id. An edgeless graph
// yields the uniform unit vector.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ctx.Err() if ctx is cancelled between iterations.
func EigenvectorCentrality(ctx context.Context, g *core.Graph, opts ...Option) ([]float64, Convergence, error) {
	if g == nil {
		return nil, Convergence{}, ErrNilGraph
	}

	return eigenvectorCentrality(ctx, g, resolve(opts))
}

func eigenvectorCentrality(ctx context.Context, g *core.Graph, o Options) ([]float64, Convergence, error) {
	n := g.VertexCount()
	if n == 0 {
		return []float64{}, Convergence{Converged: true}, nil
	}

	x := make([]float64, n)
	next := make([]float64, n)
	start := 1 / math.Sqrt(float64(n))
	for v := range x {
		x[v] = start
	}

	var conv Convergence
	for conv.Iterations < o.EigenMaxIterations {
		err := forEachChunk(ctx, n, o.Workers, func(lo, hi int) {
			for w := lo; w < hi; w++ {
				s := x[w]
				for v := range g.Neighbors(w) {
					s += x[v]
				}
				next[w] = s
			}
		})
		if err != nil {
			return nil, conv, err
		}
		// x has a positive entry everywhere, so the norm is positive.
		floats.Scale(1/floats.Norm(next, 2), next)

		conv.Iterations++
		conv.Residual = floats.Distance(next, x, math.Inf(1))
		x, next = next, x
		if conv.Residual < o.EigenTolerance {
			conv.Converged = true
			break
		}
	}

	if !conv.Converged {
		reportNonConvergence(o, AlgorithmEigenvector, conv, o.EigenTolerance)
	}

	return x, conv, nil
}
