// SPDX-License-Identifier: MIT
// Package: gfp
//
// pipeline.go — fingerprint and compare graphs.
//
// Flow per graph:
//   1. metrics.Extract   → vertex records + global metrics (one triangle pass)
//   2. fingerprint.Build → vertex fingerprint
//   3. Vector            → global features
// BuildFingerprint and GlobalFeatures run one half each. Nothing is shared
// between graphs, so CompareGraphs runs the two flows concurrently.

package gfp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gfp/compare"
	"github.com/katalvlaran/gfp/core"
	"github.com/katalvlaran/gfp/fingerprint"
	"github.com/katalvlaran/gfp/metrics"
	"github.com/katalvlaran/gfp/observability"
)

// Error sentinels callers can match with errors.Is.
var (
	ErrInvalidGraph      = core.ErrInvalidGraph
	ErrEmptyGraph        = fingerprint.ErrEmptyGraph
	ErrDimensionMismatch = compare.ErrDimensionMismatch
)

// Pipeline turns graphs into fingerprints and fingerprints into distances.
// A Pipeline is immutable after New and safe for concurrent use.
type Pipeline struct {
	metricOpts []metrics.Option
	distance   compare.Metric
	logger     *zap.Logger
	collector  *observability.Collector
}

// New returns a Pipeline using Canberra distance, default metric options and
// a no-op logger.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		distance: compare.MetricCanberra,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result holds both summaries of one graph.
type Result struct {
	Fingerprint fingerprint.Fingerprint
	Global      metrics.GlobalMetrics
}

// GlobalFeatures returns Global as a vector in metrics.GlobalFeatureNames order.
func (r Result) GlobalFeatures() []float64 { return r.Global.Vector() }

// Comparison is the outcome of CompareGraphs.
type Comparison struct {
	RunID          string
	VertexDistance float64
	GlobalDistance float64
	A, B           Result
}

// metricOptions wires the pipeline logger and collector into extraction.
func (p *Pipeline) metricOptions(log *zap.Logger) []metrics.Option {
	opts := make([]metrics.Option, 0, len(p.metricOpts)+2)
	opts = append(opts, metrics.WithLogger(log))
	if p.collector != nil {
		opts = append(opts, metrics.WithObserver(p.collector))
	}

	return append(opts, p.metricOpts...)
}

func checkGraph(method string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrInvalidGraph)
	}

	return nil
}

// BuildFingerprint returns the 48-element vertex fingerprint of g.
//
// Errors:
//   - ErrInvalidGraph if g is nil.
//   - ErrEmptyGraph if g has no vertices.
//   - ctx.Err() on cancellation.
func (p *Pipeline) BuildFingerprint(ctx context.Context, g *core.Graph) (fingerprint.Fingerprint, error) {
	if err := checkGraph("BuildFingerprint", g); err != nil {
		return nil, err
	}

	return p.buildFingerprint(ctx, g, p.logger)
}

func (p *Pipeline) buildFingerprint(ctx context.Context, g *core.Graph, log *zap.Logger) (fingerprint.Fingerprint, error) {
	if g.VertexCount() == 0 {
		return nil, fmt.Errorf("BuildFingerprint: %w", ErrEmptyGraph)
	}

	start := time.Now()
	ms, err := metrics.ExtractVertex(ctx, g, p.metricOptions(log)...)
	if err != nil {
		return nil, fmt.Errorf("BuildFingerprint: %w", err)
	}
	p.collector.ObserveStage(observability.StageVertexMetrics, time.Since(start))

	return p.fingerprintFrom(ms)
}

// fingerprintFrom reduces vertex records to the 48-element layout.
func (p *Pipeline) fingerprintFrom(ms []metrics.VertexMetrics) (fingerprint.Fingerprint, error) {
	start := time.Now()
	fp, err := fingerprint.Build(ms)
	if err != nil {
		return nil, err
	}
	p.collector.ObserveStage(observability.StageFingerprint, time.Since(start))
	p.collector.ObserveFingerprint()

	return fp, nil
}

// GlobalFeatures returns the 6-element global feature vector of g.
//
// Errors:
//   - ErrInvalidGraph if g is nil.
//   - ctx.Err() on cancellation.
func (p *Pipeline) GlobalFeatures(ctx context.Context, g *core.Graph) ([]float64, error) {
	if err := checkGraph("GlobalFeatures", g); err != nil {
		return nil, err
	}
	gm, err := p.globalMetrics(ctx, g, p.logger)
	if err != nil {
		return nil, err
	}

	return gm.Vector(), nil
}

func (p *Pipeline) globalMetrics(ctx context.Context, g *core.Graph, log *zap.Logger) (metrics.GlobalMetrics, error) {
	start := time.Now()
	gm, err := metrics.ExtractGlobal(ctx, g, p.metricOptions(log)...)
	if err != nil {
		return metrics.GlobalMetrics{}, fmt.Errorf("GlobalFeatures: %w", err)
	}
	p.collector.ObserveStage(observability.StageGlobalMetrics, time.Since(start))

	return gm, nil
}

// Compare returns the configured distance between two vectors of equal length.
//
// Errors:
//   - ErrDimensionMismatch if len(a) != len(b).
func (p *Pipeline) Compare(a, b []float64) (float64, error) {
	start := time.Now()
	d, err := compare.Distance(p.distance, a, b)
	if err != nil {
		return 0, err
	}
	p.collector.ObserveStage(observability.StageCompare, time.Since(start))

	return d, nil
}

// Fingerprint computes the vertex fingerprint and the global metrics of g.
// Both summaries describe g itself.
func (p *Pipeline) Fingerprint(ctx context.Context, g *core.Graph) (Result, error) {
	if err := checkGraph("Fingerprint", g); err != nil {
		return Result{}, err
	}

	return p.run(ctx, g, p.logger)
}

func (p *Pipeline) run(ctx context.Context, g *core.Graph, log *zap.Logger) (Result, error) {
	if g.VertexCount() == 0 {
		return Result{}, fmt.Errorf("Fingerprint: %w", ErrEmptyGraph)
	}

	// Vertex and global metrics share one triangle pass.
	start := time.Now()
	ms, gm, err := metrics.Extract(ctx, g, p.metricOptions(log)...)
	if err != nil {
		return Result{}, fmt.Errorf("Fingerprint: %w", err)
	}
	p.collector.ObserveStage(observability.StageExtract, time.Since(start))

	fp, err := p.fingerprintFrom(ms)
	if err != nil {
		return Result{}, err
	}
	log.Debug("graph fingerprinted",
		zap.Int("vertices", gm.VertexCount),
		zap.Int("edges", gm.EdgeCount),
		zap.Int("components", gm.ComponentCount),
	)

	return Result{Fingerprint: fp, Global: gm}, nil
}

// CompareGraphs fingerprints a and b concurrently and returns the distance
// between their vertex fingerprints and between their global features.
// Every log line of the run carries the same "run" id.
//
// Errors:
//   - ErrInvalidGraph if either graph is nil.
//   - ErrEmptyGraph if either graph has no vertices.
//   - ctx.Err() on cancellation.
func (p *Pipeline) CompareGraphs(ctx context.Context, a, b *core.Graph) (Comparison, error) {
	if err := checkGraph("CompareGraphs", a); err != nil {
		return Comparison{}, err
	}
	if err := checkGraph("CompareGraphs", b); err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{RunID: uuid.New().String()}
	log := p.logger.With(zap.String("run", cmp.RunID))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		cmp.A, err = p.run(egCtx, a, log.With(zap.String("graph", "a")))
		return err
	})
	eg.Go(func() error {
		var err error
		cmp.B, err = p.run(egCtx, b, log.With(zap.String("graph", "b")))
		return err
	})
	if err := eg.Wait(); err != nil {
		log.Warn("graph comparison failed", zap.Error(err))
		return Comparison{}, fmt.Errorf("CompareGraphs: %w", err)
	}

	var err error
	if cmp.VertexDistance, err = p.Compare(cmp.A.Fingerprint, cmp.B.Fingerprint); err != nil {
		return Comparison{}, err
	}
	if cmp.GlobalDistance, err = p.Compare(cmp.A.GlobalFeatures(), cmp.B.GlobalFeatures()); err != nil {
		return Comparison{}, err
	}
	p.collector.ObserveComparison()
	log.Info("graphs compared",
		zap.Stringer("distance", p.distance),
		zap.Float64("vertex_distance", cmp.VertexDistance),
		zap.Float64("global_distance", cmp.GlobalDistance),
	)

	return cmp, nil
}

var defaultPipeline = New()

// BuildFingerprint uses a default Pipeline.
func BuildFingerprint(ctx context.Context, g *core.Graph) (fingerprint.Fingerprint, error) {
	return defaultPipeline.BuildFingerprint(ctx, g)
}

// GlobalFeatures uses a default Pipeline.
func GlobalFeatures(ctx context.Context, g *core.Graph) ([]float64, error) {
	return defaultPipeline.GlobalFeatures(ctx, g)
}

// Compare returns the Canberra distance between a and b.
func Compare(a, b []float64) (float64, error) {
	return defaultPipeline.Compare(a, b)
}

// CompareGraphs uses a default Pipeline.
func CompareGraphs(ctx context.Context, a, b *core.Graph) (Comparison, error) {
	return defaultPipeline.CompareGraphs(ctx, a, b)
}
