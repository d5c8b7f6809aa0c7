// SPDX-License-Identifier: MIT
// Package: gfp/observability
//
// collector.go — Prometheus metrics for fingerprint pipelines.
//
// Policy:
//   • Every Collector owns a private registry; nothing is registered on the
//     global default registry, so tests may create as many as they like.
//   • All methods are nil-safe: a nil *Collector is a valid no-op sink.

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stage labels used with ObserveStage.
const (
	StageVertexMetrics = "vertex_metrics"
	StageGlobalMetrics = "global_metrics"
	StageExtract       = "extract"
	StageFingerprint   = "fingerprint"
	StageCompare       = "compare"
)

// Collector holds the Prometheus metrics emitted by the pipeline.
type Collector struct {
	registry *prometheus.Registry

	Fingerprints  prometheus.Counter
	Comparisons   prometheus.Counter
	NonConverged  *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector whose metric names carry the namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	fingerprints := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fingerprints_total",
			Help:      "Total number of vertex fingerprints built",
		},
	)

	comparisons := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Total number of graph pair comparisons",
		},
	)

	nonConverged := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nonconverged_total",
			Help:      "Power iterations that hit the iteration cap before the tolerance",
		},
		[]string{"algorithm"},
	)

	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	registry.MustRegister(fingerprints, comparisons, nonConverged, stageDuration)

	return &Collector{
		registry:      registry,
		Fingerprints:  fingerprints,
		Comparisons:   comparisons,
		NonConverged:  nonConverged,
		StageDuration: stageDuration,
	}
}

// Registry exposes the private registry for scraping or dumping.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

// ObserveNonConvergence counts one power iteration that stopped at its cap.
func (c *Collector) ObserveNonConvergence(algorithm string) {
	if c == nil {
		return
	}
	c.NonConverged.WithLabelValues(algorithm).Inc()
}

// ObserveStage records how long a pipeline stage took.
func (c *Collector) ObserveStage(stage string, d time.Duration) {
	if c == nil {
		return
	}
	c.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveFingerprint counts one built fingerprint.
func (c *Collector) ObserveFingerprint() {
	if c == nil {
		return
	}
	c.Fingerprints.Inc()
}

// ObserveComparison counts one compared graph pair.
func (c *Collector) ObserveComparison() {
	if c == nil {
		return
	}
	c.Comparisons.Inc()
}

// WriteTextfile dumps the registry in the Prometheus text format, the way a
// node-exporter textfile collector expects it.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, c.registry)
}
