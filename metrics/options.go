// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// options.go — functional options and documented numeric defaults.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Extraction itself never panics.
//   • Options apply in order; the last one wins.

package metrics

import (
	"errors"
	"runtime"

	"go.uber.org/zap"
)

// ErrNilGraph is returned when a nil *core.Graph is passed to an extractor.
var ErrNilGraph = errors.New("metrics: graph is nil")

// Documented defaults for the power iterations.
const (
	// DefaultDamping is the conventional PageRank damping factor.
	DefaultDamping = 0.85
	// DefaultTolerance is the L1 convergence threshold for PageRank.
	DefaultTolerance = 1e-6
	// DefaultMaxIterations caps PageRank iterations.
	DefaultMaxIterations = 1000
	// DefaultEigenTolerance is the L∞ convergence threshold for eigenvector centrality.
	DefaultEigenTolerance = 1e-6
	// DefaultEigenMaxIterations caps eigenvector iterations.
	DefaultEigenMaxIterations = 1000
)

// Algorithm names used in logs and Observer calls.
const (
	AlgorithmPageRank    = "pagerank"
	AlgorithmEigenvector = "eigenvector"
)

// Observer receives notifications about best-effort numeric results.
// *observability.Collector satisfies it.
type Observer interface {
	ObserveNonConvergence(algorithm string)
}

// Options holds the resolved extraction parameters.
type Options struct {
	Damping            float64
	Tolerance          float64
	MaxIterations      int
	EigenTolerance     float64
	EigenMaxIterations int
	Workers            int
	Logger             *zap.Logger
	Observer           Observer
}

// Option configures extraction.
type Option func(*Options)

// DefaultOptions returns the documented defaults with one worker per CPU,
// a no-op logger and no observer.
func DefaultOptions() Options {
	return Options{
		Damping:            DefaultDamping,
		Tolerance:          DefaultTolerance,
		MaxIterations:      DefaultMaxIterations,
		EigenTolerance:     DefaultEigenTolerance,
		EigenMaxIterations: DefaultEigenMaxIterations,
		Workers:            runtime.GOMAXPROCS(0),
		Logger:             zap.NewNop(),
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDamping sets the PageRank damping factor d ∈ [0,1).
func WithDamping(d float64) Option {
	if d < 0 || d >= 1 {
		panic("metrics: WithDamping(d) requires 0 <= d < 1")
	}
	return func(o *Options) { o.Damping = d }
}

// WithTolerance sets the PageRank L1 tolerance (> 0).
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("metrics: WithTolerance(tol<=0)")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the PageRank iteration cap (>= 1).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("metrics: WithMaxIterations(n<1)")
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithEigenTolerance sets the eigenvector L∞ tolerance (> 0).
func WithEigenTolerance(tol float64) Option {
	if tol <= 0 {
		panic("metrics: WithEigenTolerance(tol<=0)")
	}
	return func(o *Options) { o.EigenTolerance = tol }
}

// WithEigenMaxIterations sets the eigenvector iteration cap (>= 1).
func WithEigenMaxIterations(n int) Option {
	if n < 1 {
		panic("metrics: WithEigenMaxIterations(n<1)")
	}
	return func(o *Options) { o.EigenMaxIterations = n }
}

// WithWorkers bounds the goroutines used by one pass (>= 1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("metrics: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes non-convergence warnings to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("metrics: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithObserver attaches an Observer; nil detaches.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}
