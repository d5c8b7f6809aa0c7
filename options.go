// SPDX-License-Identifier: MIT
// Package: gfp
//
// options.go — functional options for Pipeline.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • WithMetricOptions appends; every other option overwrites.

package gfp

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gfp/compare"
	"github.com/katalvlaran/gfp/metrics"
	"github.com/katalvlaran/gfp/observability"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMetricOptions forwards options to metric extraction. They apply after
// the pipeline's own logger and observer, so they may override either.
func WithMetricOptions(opts ...metrics.Option) Option {
	return func(p *Pipeline) { p.metricOpts = append(p.metricOpts, opts...) }
}

// WithDistance selects the distance used by Compare and CompareGraphs.
func WithDistance(m compare.Metric) Option {
	if !m.Valid() {
		panic(fmt.Sprintf("gfp: WithDistance(%v)", m))
	}
	return func(p *Pipeline) { p.distance = m }
}

// WithLogger sets the pipeline logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("gfp: WithLogger(nil)")
	}
	return func(p *Pipeline) { p.logger = l }
}

// WithObserver attaches a Prometheus collector; nil detaches.
func WithObserver(c *observability.Collector) Option {
	return func(p *Pipeline) { p.collector = c }
}
