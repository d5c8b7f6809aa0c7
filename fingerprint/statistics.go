// SPDX-License-Identifier: MIT
// Package: gfp/fingerprint
//
// statistics.go — the eight summary statistics of one metric distribution.
//
// Estimators (n = len(x), m_k = (1/n) Σ (x_i − mean)^k):
//   • median     middle order statistic; mean of the two middle ones for even n
//   • stdDev     population, √m₂
//   • skewness   m₃ / m₂^{3/2}
//   • kurtosis   excess, m₄ / m₂² − 3
//   • variance   sample, Σ (x_i − mean)² / (n − 1); 0 when n < 2
//
// A constant sequence has no spread: skewness is 0 and excess kurtosis is −3.

package fingerprint

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyGraph is returned when statistics are requested for zero vertices.
var ErrEmptyGraph = errors.New("fingerprint: graph has no vertices")

// NumStatistics is the number of statistics per metric.
const NumStatistics = 8

// StatisticNames lists the statistics in fingerprint order.
var StatisticNames = [NumStatistics]string{
	"median",
	"mean",
	"stdDev",
	"skewness",
	"kurtosis",
	"variance",
	"max",
	"min",
}

// Statistics summarizes one per-vertex metric distribution.
type Statistics struct {
	Median   float64
	Mean     float64
	StdDev   float64
	Skewness float64
	Kurtosis float64
	Variance float64
	Max      float64
	Min      float64
}

// Vector returns the statistics in StatisticNames order.
func (s Statistics) Vector() [NumStatistics]float64 {
	return [NumStatistics]float64{s.Median, s.Mean, s.StdDev, s.Skewness, s.Kurtosis, s.Variance, s.Max, s.Min}
}

// Summary computes the Statistics of x. x is not modified.
//
// Errors:
//   - ErrEmptyGraph if x is empty.
func Summary(x []float64) (Statistics, error) {
	if len(x) == 0 {
		return Statistics{}, ErrEmptyGraph
	}

	s := Statistics{
		Median: median(x),
		Mean:   stat.Mean(x, nil),
		Max:    floats.Max(x),
		Min:    floats.Min(x),
	}
	if s.Max == s.Min {
		s.Kurtosis = -3
		return s, nil
	}

	m2 := stat.Moment(2, x, nil)
	s.StdDev = math.Sqrt(m2)
	s.Skewness = stat.Moment(3, x, nil) / math.Pow(m2, 1.5)
	s.Kurtosis = stat.Moment(4, x, nil)/(m2*m2) - 3
	// max != min implies len(x) >= 2.
	s.Variance = stat.Variance(x, nil)

	return s, nil
}

func median(x []float64) float64 {
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
