// SPDX-License-Identifier: MIT
// Package: gfp/fingerprint
//
// fingerprint.go — 6 metrics × 8 statistics, metric-major.
//
// Layout: index i holds statistic i%8 of metric i/8, with metrics in
// metrics.VertexMetricNames order and statistics in StatisticNames order.

package fingerprint

import (
	"fmt"

	"github.com/katalvlaran/gfp/metrics"
)

// Len is the length of every vertex fingerprint.
const Len = metrics.NumVertexMetrics * NumStatistics

const methodBuild = "Build"

// Fingerprint is a fixed-order structural summary of one graph.
type Fingerprint []float64

// Build reduces per-vertex metrics to a Fingerprint of length Len.
//
// Errors:
//   - ErrEmptyGraph if ms is empty.
func Build(ms []metrics.VertexMetrics) (Fingerprint, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrEmptyGraph)
	}

	fp := make(Fingerprint, 0, Len)
	for i, col := range metrics.Columns(ms) {
		s, err := Summary(col)
		if err != nil {
			return nil, fmt.Errorf("%s: metric %s: %w", methodBuild, metrics.VertexMetricNames[i], err)
		}
		v := s.Vector()
		fp = append(fp, v[:]...)
	}

	return fp, nil
}

// At returns the statistic stat of metric metric; both are indices into
// metrics.VertexMetricNames and StatisticNames.
func (f Fingerprint) At(metric, stat int) float64 {
	return f[metric*NumStatistics+stat]
}

// Label names fingerprint position i as "metric.statistic", or "" when i is
// outside [0, Len).
func Label(i int) string {
	if i < 0 || i >= Len {
		return ""
	}

	return metrics.VertexMetricNames[i/NumStatistics] + "." + StatisticNames[i%NumStatistics]
}

// Labels returns Label(i) for every position.
func Labels() []string {
	out := make([]string, Len)
	for i := range out {
		out[i] = Label(i)
	}

	return out
}
