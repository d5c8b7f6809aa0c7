// SPDX-License-Identifier: MIT
// Package: gfp/compare
//
// metric.go — selectable distance functions.

package compare

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric is returned by ParseMetric and Distance for names or
// values outside the supported set.
var ErrUnknownMetric = errors.New("compare: unknown metric")

// Metric selects a distance function. The zero value is Canberra.
type Metric int

const (
	MetricCanberra Metric = iota
	MetricBrayCurtis
	MetricChebyshev
	MetricCityBlock
	MetricCosine
	MetricCorrelation
)

var metricNames = [...]string{
	MetricCanberra:    "canberra",
	MetricBrayCurtis:  "braycurtis",
	MetricChebyshev:   "chebyshev",
	MetricCityBlock:   "cityblock",
	MetricCosine:      "cosine",
	MetricCorrelation: "correlation",
}

var metricFuncs = [...]func(a, b []float64) (float64, error){
	MetricCanberra:    Canberra,
	MetricBrayCurtis:  BrayCurtis,
	MetricChebyshev:   Chebyshev,
	MetricCityBlock:   CityBlock,
	MetricCosine:      Cosine,
	MetricCorrelation: Correlation,
}

// Valid reports whether m names a supported distance.
func (m Metric) Valid() bool { return m >= 0 && int(m) < len(metricNames) }

// String returns the lower-case metric name.
func (m Metric) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Metric(%d)", int(m))
	}

	return metricNames[m]
}

// ParseMetric maps a case-insensitive name to its Metric. The empty string
// selects Canberra.
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return MetricCanberra, nil
	}
	for i, n := range metricNames {
		if n == name {
			return Metric(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMetric: %q: %w", name, ErrUnknownMetric)
}

// MetricNames lists every supported metric name.
func MetricNames() []string {
	return append([]string(nil), metricNames[:]...)
}

// Distance computes the distance selected by m.
func Distance(m Metric, a, b []float64) (float64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("Distance: %v: %w", m, ErrUnknownMetric)
	}

	return metricFuncs[m](a, b)
}
