// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// pagerank.go — PageRank by power iteration.
//
// Model:
//   • A walker at v follows each incident edge endpoint with probability
//     1/deg(v), so parallel edges weigh by multiplicity and a loop keeps the
//     walker at v with probability 2/deg(v).
//   • With probability 1-d it teleports to a uniform vertex.
//   • Dangling (degree 0) vertices teleport with probability 1; their mass is
//     spread uniformly so the iterate keeps summing to 1.
//
// Update (pull form, parallel over w):
//
//	next[w] = (1-d)/n + d·dangling/n + d·Σ_{v∈Neighbors(w)} pr[v]/deg(v)
//
// Stop when ‖next − pr‖₁ < Tolerance or after MaxIterations.

package metrics

import (
	"context"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gfp/core"
)

// Convergence reports how a power iteration ended.
type Convergence struct {
	Iterations int
	Residual   float64
	Converged  bool
}

// PageRank returns the PageRank score of every vertex, indexed by vertex id.
// The scores sum to 1 (up to rounding). Reaching the iteration cap is not an
// error; inspect Convergence or the logs to detect it.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ctx.Err() if ctx is cancelled between iterations.
func PageRank(ctx context.Context, g *core.Graph, opts ...Option) ([]float64, Convergence, error) {
	if g == nil {
		return nil, Convergence{}, ErrNilGraph
	}

	return pageRank(ctx, g, resolve(opts))
}

func pageRank(ctx context.Context, g *core.Graph, o Options) ([]float64, Convergence, error) {
	n := g.VertexCount()
	if n == 0 {
		return []float64{}, Convergence{Converged: true}, nil
	}

	invN := 1.0 / float64(n)
	invDeg := make([]float64, n)
	for v := range invDeg {
		if d := g.Degree(v); d > 0 {
			invDeg[v] = 1.0 / float64(d)
		}
	}

	pr := make([]float64, n)
	next := make([]float64, n)
	for v := range pr {
		pr[v] = invN
	}

	var conv Convergence
	for conv.Iterations < o.MaxIterations {
		dangling := 0.0
		for v, inv := range invDeg {
			if inv == 0 {
				dangling += pr[v]
			}
		}
		base := (1-o.Damping)*invN + o.Damping*dangling*invN

		err := forEachChunk(ctx, n, o.Workers, func(lo, hi int) {
			for w := lo; w < hi; w++ {
				in := 0.0
				for v := range g.Neighbors(w) {
					in += pr[v] * invDeg[v]
				}
				next[w] = base + o.Damping*in
			}
		})
		if err != nil {
			return nil, conv, err
		}

		conv.Iterations++
		conv.Residual = floats.Distance(next, pr, 1)
		pr, next = next, pr
		if conv.Residual < o.Tolerance {
			conv.Converged = true
			break
		}
	}

	if !conv.Converged {
		reportNonConvergence(o, AlgorithmPageRank, conv, o.Tolerance)
	}

	return pr, conv, nil
}

// reportNonConvergence logs and counts a power iteration that hit its cap.
func reportNonConvergence(o Options, algorithm string, conv Convergence, tol float64) {
	o.Logger.Warn("power iteration stopped at iteration cap; using last iterate",
		zap.String("algorithm", algorithm),
		zap.Int("iterations", conv.Iterations),
		zap.Float64("residual", conv.Residual),
		zap.Float64("tolerance", tol),
	)
	if o.Observer != nil {
		o.Observer.ObserveNonConvergence(algorithm)
	}
}
